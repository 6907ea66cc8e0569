package inference

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Artifacts are plain JSON exported by the training pipeline. Shapes are
// checked here so a malformed file fails at startup, not on the first request.

func floats(res gjson.Result) []float64 {
	arr := res.Array()
	out := make([]float64, len(arr))
	for i, v := range arr {
		out[i] = v.Float()
	}
	return out
}

func strs(res gjson.Result) []string {
	arr := res.Array()
	out := make([]string, len(arr))
	for i, v := range arr {
		out[i] = v.String()
	}
	return out
}

func requireArray(res gjson.Result, field string) error {
	if !res.Exists() {
		return fmt.Errorf("missing field %q", field)
	}
	if !res.IsArray() {
		return fmt.Errorf("field %q is not an array", field)
	}
	return nil
}

func parseLinearRegressor(res gjson.Result) (*LinearRegressor, error) {
	for _, f := range []string{"feature_names", "coef"} {
		if err := requireArray(res.Get(f), f); err != nil {
			return nil, err
		}
	}
	if !res.Get("intercept").Exists() {
		return nil, fmt.Errorf("missing field %q", "intercept")
	}

	m := &LinearRegressor{
		FeatureNames: strs(res.Get("feature_names")),
		Coef:         floats(res.Get("coef")),
		Intercept:    res.Get("intercept").Float(),
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseMultiOutputRegressor(res gjson.Result) (*MultiOutputRegressor, error) {
	for _, f := range []string{"feature_names", "targets", "coef", "intercept"} {
		if err := requireArray(res.Get(f), f); err != nil {
			return nil, err
		}
	}

	m := &MultiOutputRegressor{
		FeatureNames: strs(res.Get("feature_names")),
		Targets:      strs(res.Get("targets")),
		Intercept:    floats(res.Get("intercept")),
	}
	for _, row := range res.Get("coef").Array() {
		m.Coef = append(m.Coef, floats(row))
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseClassifier(res gjson.Result) (*Classifier, error) {
	for _, f := range []string{"feature_names", "classes", "coef", "intercept"} {
		if err := requireArray(res.Get(f), f); err != nil {
			return nil, err
		}
	}

	m := &Classifier{
		FeatureNames: strs(res.Get("feature_names")),
		Intercept:    floats(res.Get("intercept")),
	}
	for _, c := range res.Get("classes").Array() {
		m.Classes = append(m.Classes, int(c.Int()))
	}
	for _, row := range res.Get("coef").Array() {
		m.Coef = append(m.Coef, floats(row))
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseLabelEncoder(res gjson.Result) (*LabelEncoder, error) {
	if err := requireArray(res.Get("classes"), "classes"); err != nil {
		return nil, err
	}
	e := &LabelEncoder{Classes: strs(res.Get("classes"))}
	if len(e.Classes) == 0 {
		return nil, fmt.Errorf("label encoder has no classes")
	}
	return e, nil
}

// parseNamedRegressors reads [{"name": ..., "model": {...}}, ...]
func parseNamedRegressors(res gjson.Result, field string) ([]NamedRegressor, error) {
	if err := requireArray(res, field); err != nil {
		return nil, err
	}

	var out []NamedRegressor
	seen := make(map[string]struct{})
	for i, item := range res.Array() {
		name := item.Get("name").String()
		if name == "" {
			return nil, fmt.Errorf("%s[%d]: missing name", field, i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%s[%d]: duplicate name %q", field, i, name)
		}
		seen[name] = struct{}{}

		model, err := parseLinearRegressor(item.Get("model"))
		if err != nil {
			return nil, fmt.Errorf("%s[%d] (%s): %w", field, i, name, err)
		}
		out = append(out, NamedRegressor{Name: name, Model: model})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("field %q is empty", field)
	}
	return out, nil
}
