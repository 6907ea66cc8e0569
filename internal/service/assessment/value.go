package assessment

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/yourusername/assessment-api/internal/domain/entity"
	"github.com/yourusername/assessment-api/internal/inference"
	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
	"github.com/yourusername/assessment-api/internal/scoring"
)

// ProcessValue scores a work values inventory and persists the result
func (s *Service) ProcessValue(ctx context.Context, responses map[string]float64, user *entity.User) (*ValueResult, error) {
	return run(ctx, s, valueFamily, user, responses, s.scoreValue)
}

func (s *Service) scoreValue(ctx context.Context, sc *scope) (*ValueResult, error) {
	refs := sc.store.References()

	raw := s.value.PredictFeatureScores(sc.features)

	// rescale across every predicted feature before any is dropped
	rawValues := make([]float64, len(raw))
	for i, r := range raw {
		rawValues[i] = r.Value
	}
	rescaled := scoring.MinMaxRescale(rawValues, s.cfg.ValueTargetMin, s.cfg.ValueTargetMax)
	normalized := make([]inference.Score, len(raw))
	for i, r := range raw {
		normalized[i] = inference.Score{Name: r.Name, Value: rescaled[i]}
	}

	resolved, err := s.resolveDimensions(ctx, sc, valueFamily, s.mappings.Value, normalized)
	if err != nil {
		return nil, err
	}

	chart := make([]ChartEntry, 0, len(resolved))
	for _, r := range resolved {
		chart = append(chart, ChartEntry{Label: valueCategoryName(r.dimension.Name), Score: scoring.Round2(r.value)})
		sc.addScore(r.dimension.ID, r.value, r.percentage)
	}

	details := []ValueCategoryDetails{}
	var careers []string
	for _, r := range scoring.TopK(resolved, s.cfg.ValueTopK, byValue) {
		name := valueCategoryName(r.dimension.Name)

		category, err := refs.ValueCategoryByName(ctx, name)
		if errors.Is(err, apperrors.ErrNotFound) {
			sc.log.Warn("value category not found, not featured", zap.String("category", name))
			continue
		}
		if err != nil {
			return nil, err
		}

		details = append(details, ValueCategoryDetails{
			Name:            category.Name,
			Definition:      category.Definition,
			Characteristics: category.Characteristics,
			Percentage:      formatPercent(r.percentage),
		})

		found, err := refs.CareersByValueCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			sc.log.Warn("no careers for value category", zap.String("category", category.Name))
		}
		careers = append(careers, found...)
	}

	return &ValueResult{
		UserID:                sc.user.UUID,
		TestUUID:              sc.test.UUID,
		ChartData:             chart,
		ValueDetails:          details,
		CareerRecommendations: strs(scoring.Dedupe(careers)),
	}, nil
}
