package scoring

import "sort"

// TopK returns the first k items ordered by descending score. Equal scores keep
// their encounter order. The input slice is not modified.
func TopK[T any](items []T, k int, score func(T) float64) []T {
	if k <= 0 || len(items) == 0 {
		return nil
	}

	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return score(sorted[i]) > score(sorted[j])
	})

	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k]
}

// Dedupe drops repeated strings, keeping the first occurrence of each
func Dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
