package assessment

import "github.com/yourusername/assessment-api/internal/inference"

// InterestPredictor scores RIASEC interests and classifies a Holland code
type InterestPredictor interface {
	ScoreKeys() []string
	PredictScores(features inference.Features) []inference.Score
	PredictCode(features inference.Features) (inference.Label, error)
}

// PersonalityPredictor scores personality dimensions and classifies a type from them
type PersonalityPredictor interface {
	DimensionKeys() []string
	PredictDimensions(features inference.Features) []inference.Score
	PredictType(dimensionScores []inference.Score) (inference.Label, error)
}

// ValuePredictor scores work value features
type ValuePredictor interface {
	FeatureKeys() []string
	PredictFeatureScores(features inference.Features) []inference.Score
}

var (
	_ InterestPredictor    = (*inference.InterestModel)(nil)
	_ PersonalityPredictor = (*inference.PersonalityModel)(nil)
	_ ValuePredictor       = (*inference.ValueModel)(nil)
)
