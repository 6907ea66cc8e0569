package inference

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/yourusername/assessment-api/internal/config"
	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
)

// NamedRegressor is a single-output model bound to the name of what it predicts
type NamedRegressor struct {
	Name  string
	Model *LinearRegressor
}

func predictNamed(regs []NamedRegressor, features Features) []Score {
	out := make([]Score, len(regs))
	for i, r := range regs {
		out[i] = Score{Name: r.Name, Value: r.Model.Predict(features)}
	}
	return out
}

func namesOf(regs []NamedRegressor) []string {
	out := make([]string, len(regs))
	for i, r := range regs {
		out[i] = r.Name
	}
	return out
}

// InterestModel predicts six RIASEC scores and a Holland code
type InterestModel struct {
	scores     *MultiOutputRegressor
	classifier *Classifier
	labels     *LabelEncoder
}

// NewInterestModel assembles an interest model from its parts
func NewInterestModel(scores *MultiOutputRegressor, classifier *Classifier, labels *LabelEncoder) *InterestModel {
	return &InterestModel{scores: scores, classifier: classifier, labels: labels}
}

// ScoreKeys lists the raw score names in model order
func (m *InterestModel) ScoreKeys() []string {
	return append([]string(nil), m.scores.Targets...)
}

// PredictScores returns the raw RIASEC scores in model order
func (m *InterestModel) PredictScores(features Features) []Score {
	return m.scores.Predict(features)
}

// PredictCode classifies the responses into a Holland code label
func (m *InterestModel) PredictCode(features Features) (Label, error) {
	p := m.classifier.Predict(features)
	name, err := m.labels.Decode(p.Class)
	if err != nil {
		return Label{}, &apperrors.ModelUnavailableError{Model: "interest", Err: err}
	}
	return Label{Name: name, Confidence: p.Confidence}, nil
}

// PersonalityModel predicts one score per personality dimension, then
// classifies those scores into a personality type.
type PersonalityModel struct {
	dimensions []NamedRegressor
	classifier *Classifier
	labels     *LabelEncoder
}

// NewPersonalityModel assembles a personality model from its parts
func NewPersonalityModel(dimensions []NamedRegressor, classifier *Classifier, labels *LabelEncoder) *PersonalityModel {
	return &PersonalityModel{dimensions: dimensions, classifier: classifier, labels: labels}
}

// DimensionKeys lists the dimension outputs in model order
func (m *PersonalityModel) DimensionKeys() []string {
	return namesOf(m.dimensions)
}

// PredictDimensions returns a raw score per dimension in model order
func (m *PersonalityModel) PredictDimensions(features Features) []Score {
	return predictNamed(m.dimensions, features)
}

// PredictType classifies dimension scores keyed by dimension name
func (m *PersonalityModel) PredictType(dimensionScores []Score) (Label, error) {
	features := make(Features, len(dimensionScores))
	for _, s := range dimensionScores {
		features[s.Name] = s.Value
	}

	p := m.classifier.Predict(features)
	name, err := m.labels.Decode(p.Class)
	if err != nil {
		return Label{}, &apperrors.ModelUnavailableError{Model: "personality", Err: err}
	}
	return Label{Name: name, Confidence: p.Confidence}, nil
}

// ValueModel predicts one raw score per work value feature
type ValueModel struct {
	features []NamedRegressor
}

// NewValueModel assembles a value model from its parts
func NewValueModel(features []NamedRegressor) *ValueModel {
	return &ValueModel{features: features}
}

// FeatureKeys lists the value features in model order
func (m *ValueModel) FeatureKeys() []string {
	return namesOf(m.features)
}

// PredictFeatureScores returns a raw score per value feature in model order
func (m *ValueModel) PredictFeatureScores(features Features) []Score {
	return predictNamed(m.features, features)
}

// Models is the immutable set of loaded predictors
type Models struct {
	Interest    *InterestModel
	Personality *PersonalityModel
	Value       *ValueModel
}

// LoadModels reads and validates all three artifacts. Any failure is a
// ModelUnavailableError naming the family.
func LoadModels(cfg config.ModelsConfig) (*Models, error) {
	interest, err := LoadInterestModel(cfg.InterestPath())
	if err != nil {
		return nil, err
	}
	personality, err := LoadPersonalityModel(cfg.PersonalityPath())
	if err != nil {
		return nil, err
	}
	value, err := LoadValueModel(cfg.ValuePath())
	if err != nil {
		return nil, err
	}
	return &Models{Interest: interest, Personality: personality, Value: value}, nil
}

func readArtifact(model, path string) (gjson.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gjson.Result{}, &apperrors.ModelUnavailableError{Model: model, Err: err}
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, &apperrors.ModelUnavailableError{Model: model, Err: fmt.Errorf("%s: invalid JSON", path)}
	}
	return gjson.ParseBytes(data), nil
}

// LoadInterestModel reads an interest artifact from path
func LoadInterestModel(path string) (*InterestModel, error) {
	root, err := readArtifact("interest", path)
	if err != nil {
		return nil, err
	}
	return parseInterest(root)
}

func parseInterest(root gjson.Result) (*InterestModel, error) {
	fail := func(part string, err error) error {
		return &apperrors.ModelUnavailableError{Model: "interest", Err: fmt.Errorf("%s: %w", part, err)}
	}

	scores, err := parseMultiOutputRegressor(root.Get("scores"))
	if err != nil {
		return nil, fail("scores", err)
	}
	classifier, err := parseClassifier(root.Get("classifier"))
	if err != nil {
		return nil, fail("classifier", err)
	}
	labels, err := parseLabelEncoder(root.Get("labels"))
	if err != nil {
		return nil, fail("labels", err)
	}
	if err := checkClassesCovered(classifier, labels); err != nil {
		return nil, fail("labels", err)
	}
	return NewInterestModel(scores, classifier, labels), nil
}

// LoadPersonalityModel reads a personality artifact from path
func LoadPersonalityModel(path string) (*PersonalityModel, error) {
	root, err := readArtifact("personality", path)
	if err != nil {
		return nil, err
	}
	return parsePersonality(root)
}

func parsePersonality(root gjson.Result) (*PersonalityModel, error) {
	fail := func(part string, err error) error {
		return &apperrors.ModelUnavailableError{Model: "personality", Err: fmt.Errorf("%s: %w", part, err)}
	}

	dims, err := parseNamedRegressors(root.Get("dimensions"), "dimensions")
	if err != nil {
		return nil, fail("dimensions", err)
	}
	classifier, err := parseClassifier(root.Get("classifier"))
	if err != nil {
		return nil, fail("classifier", err)
	}
	labels, err := parseLabelEncoder(root.Get("labels"))
	if err != nil {
		return nil, fail("labels", err)
	}
	if err := checkClassesCovered(classifier, labels); err != nil {
		return nil, fail("labels", err)
	}

	// the type classifier consumes dimension outputs, so its inputs must be among them
	known := make(map[string]struct{}, len(dims))
	for _, d := range dims {
		known[d.Name] = struct{}{}
	}
	for _, f := range classifier.FeatureNames {
		if _, ok := known[f]; !ok {
			return nil, fail("classifier", fmt.Errorf("feature %q is not a predicted dimension", f))
		}
	}

	return NewPersonalityModel(dims, classifier, labels), nil
}

// LoadValueModel reads a value artifact from path
func LoadValueModel(path string) (*ValueModel, error) {
	root, err := readArtifact("value", path)
	if err != nil {
		return nil, err
	}
	return parseValue(root)
}

func parseValue(root gjson.Result) (*ValueModel, error) {
	features, err := parseNamedRegressors(root.Get("features"), "features")
	if err != nil {
		return nil, &apperrors.ModelUnavailableError{Model: "value", Err: fmt.Errorf("features: %w", err)}
	}
	return NewValueModel(features), nil
}

func checkClassesCovered(c *Classifier, labels *LabelEncoder) error {
	for _, class := range c.Classes {
		if class < 0 || class >= len(labels.Classes) {
			return fmt.Errorf("classifier class %d has no label", class)
		}
	}
	return nil
}
