// Package inference wraps the pre-trained predictors behind a uniform
// predict(features) contract. Models are loaded once at startup and never
// mutated afterwards, so a single instance is shared by all requests without locking.
package inference

import (
	"fmt"
	"math"
)

// Features is a sparse questionnaire answer vector keyed by feature name
type Features map[string]float64

// Score is one named model output
type Score struct {
	Name  string
	Value float64
}

// Label is a decoded classification with the model's confidence in it
type Label struct {
	Name       string
	Confidence float64
}

// Reindex lays features out in the exact order the model expects. Missing
// features become 0 and unknown keys are ignored.
func Reindex(features Features, featureNames []string) []float64 {
	x := make([]float64, len(featureNames))
	for i, name := range featureNames {
		x[i] = features[name] // zero value when absent
	}
	return x
}

func dot(w, x []float64) float64 {
	s := 0.0
	for i := range w {
		s += w[i] * x[i]
	}
	return s
}

// LinearRegressor predicts one number: dot(coef, x) + intercept
type LinearRegressor struct {
	FeatureNames []string
	Coef         []float64
	Intercept    float64
}

func (m *LinearRegressor) validate() error {
	if len(m.FeatureNames) == 0 {
		return fmt.Errorf("no feature names")
	}
	if len(m.Coef) != len(m.FeatureNames) {
		return fmt.Errorf("coef length %d does not match %d features", len(m.Coef), len(m.FeatureNames))
	}
	return nil
}

// Predict returns the regression output for features
func (m *LinearRegressor) Predict(features Features) float64 {
	return dot(m.Coef, Reindex(features, m.FeatureNames)) + m.Intercept
}

// MultiOutputRegressor predicts one value per named target
type MultiOutputRegressor struct {
	FeatureNames []string
	Targets      []string
	Coef         [][]float64 // [target][feature]
	Intercept    []float64   // [target]
}

func (m *MultiOutputRegressor) validate() error {
	if len(m.FeatureNames) == 0 {
		return fmt.Errorf("no feature names")
	}
	if len(m.Targets) == 0 {
		return fmt.Errorf("no targets")
	}
	if len(m.Coef) != len(m.Targets) || len(m.Intercept) != len(m.Targets) {
		return fmt.Errorf("coef/intercept rows do not match %d targets", len(m.Targets))
	}
	for i, row := range m.Coef {
		if len(row) != len(m.FeatureNames) {
			return fmt.Errorf("coef row %d has %d entries, want %d", i, len(row), len(m.FeatureNames))
		}
	}
	return nil
}

// Predict returns one Score per target, in target order
func (m *MultiOutputRegressor) Predict(features Features) []Score {
	x := Reindex(features, m.FeatureNames)
	out := make([]Score, len(m.Targets))
	for i, target := range m.Targets {
		out[i] = Score{Name: target, Value: dot(m.Coef[i], x) + m.Intercept[i]}
	}
	return out
}

// Prediction is an encoded class and its probability
type Prediction struct {
	Class      int
	Confidence float64
}

// Classifier is a linear (logistic) classifier. With two classes and a single
// coefficient row it behaves as a binary sigmoid model; otherwise softmax.
type Classifier struct {
	FeatureNames []string
	Classes      []int
	Coef         [][]float64
	Intercept    []float64
}

func (m *Classifier) validate() error {
	if len(m.FeatureNames) == 0 {
		return fmt.Errorf("no feature names")
	}
	if len(m.Classes) < 2 {
		return fmt.Errorf("need at least two classes, got %d", len(m.Classes))
	}
	rows := len(m.Classes)
	if len(m.Classes) == 2 && len(m.Coef) == 1 {
		rows = 1
	}
	if len(m.Coef) != rows || len(m.Intercept) != rows {
		return fmt.Errorf("coef/intercept rows = %d/%d, want %d", len(m.Coef), len(m.Intercept), rows)
	}
	for i, row := range m.Coef {
		if len(row) != len(m.FeatureNames) {
			return fmt.Errorf("coef row %d has %d entries, want %d", i, len(row), len(m.FeatureNames))
		}
	}
	return nil
}

// Predict returns the most probable class. Ties go to the lower index.
func (m *Classifier) Predict(features Features) Prediction {
	x := Reindex(features, m.FeatureNames)

	if len(m.Coef) == 1 {
		p := sigmoid(dot(m.Coef[0], x) + m.Intercept[0])
		if p > 0.5 {
			return Prediction{Class: m.Classes[1], Confidence: p}
		}
		return Prediction{Class: m.Classes[0], Confidence: 1 - p}
	}

	logits := make([]float64, len(m.Coef))
	for i := range m.Coef {
		logits[i] = dot(m.Coef[i], x) + m.Intercept[i]
	}
	probs := softmax(logits)

	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}
	return Prediction{Class: m.Classes[best], Confidence: probs[best]}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func softmax(logits []float64) []float64 {
	maxLogit := logits[0]
	for _, l := range logits[1:] {
		if l > maxLogit {
			maxLogit = l
		}
	}
	out := make([]float64, len(logits))
	sum := 0.0
	for i, l := range logits {
		out[i] = math.Exp(l - maxLogit)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// LabelEncoder maps encoded classes back to their labels
type LabelEncoder struct {
	Classes []string
}

// Decode returns the label for an encoded class
func (e *LabelEncoder) Decode(class int) (string, error) {
	if class < 0 || class >= len(e.Classes) {
		return "", fmt.Errorf("class %d outside label range [0,%d)", class, len(e.Classes))
	}
	return e.Classes[class], nil
}
