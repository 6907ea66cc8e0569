package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourusername/assessment-api/internal/domain/entity"
	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
)

var (
	riasecKeys  = []string{"R_Score", "I_Score", "A_Score", "S_Score", "E_Score", "C_Score"}
	riasecNames = []string{"Realistic", "Investigative", "Artistic", "Social", "Enterprising", "Conventional"}
)

type fixture struct {
	db          *memDB
	interest    *stubInterest
	personality *stubPersonality
	value       *stubValue
	mappings    Mappings
	user        *entity.User
}

func newFixture() *fixture {
	db := newMemDB()
	db.assessmentTypes["Interests"] = &entity.AssessmentType{ID: 1, UUID: "a1", Name: "Interests"}
	db.assessmentTypes["Personality"] = &entity.AssessmentType{ID: 2, UUID: "a2", Name: "Personality"}
	db.assessmentTypes["Values"] = &entity.AssessmentType{ID: 3, UUID: "a3", Name: "Values"}

	for i, n := range riasecNames {
		db.addDimension(uint(10+i), n, 1)
	}
	db.hollandCodes["RIASEC-1"] = &entity.HollandCode{ID: 7, Code: "RIASEC-1", Type: "Realistic-Conventional", Description: "Hands-on and orderly"}
	db.keyTraits[7] = []string{"Practical", "Organized"}
	db.hollandCareers[7] = []string{"Engineer", "Engineer", "Pilot"}

	for i, n := range PersonalityDimensions {
		db.addDimension(uint(20+i), n, 2)
	}
	db.personalityTypes["ENTJ"] = &entity.PersonalityType{ID: 4, Name: "ENTJ", Title: "The Commander", Description: "Bold and decisive"}
	db.personalityTraits[4] = []entity.PersonalityTrait{
		{Trait: "Confident", IsPositive: true},
		{Trait: "Impatient", IsPositive: false},
		{Trait: "Strategic", IsPositive: true},
	}
	db.strengths[4] = []string{"Efficient"}
	db.weaknesses[4] = []string{"Stubborn"}
	db.personalityCareer[4] = []string{"Executive", "Lawyer", "Executive"}

	for i, n := range ValueFeatures[:9] {
		db.addDimension(uint(30+i), n, 3)
		cat := valueCategoryName(n)
		db.valueCategories[cat] = &entity.ValueCategory{
			ID:              uint(40 + i),
			Name:            cat,
			Definition:      cat + " definition",
			Characteristics: cat + " characteristics",
		}
	}
	db.valueCareers[40] = []string{"Engineer"}
	db.valueCareers[41] = []string{"Accountant", "Engineer"}
	db.valueCareers[42] = []string{"Designer"}

	return &fixture{
		db:          db,
		interest:    &stubInterest{scores: mkScores(riasecKeys, 5, 2, 1, 0, 3, 4), code: "RIASEC-1"},
		personality: &stubPersonality{scores: mkScores(PersonalityDimensions, 3, 1, 0, 0), label: "ENTJ"},
		value:       &stubValue{scores: mkScores(ValueFeatures[:9], 7, 7, 7, 7, 7, 7, 7, 7, 7)},
		mappings:    DefaultMappings(),
		user:        &entity.User{ID: 42, UUID: "5f0c7b1e-8a52-4c1e-9d7a-3b2f1e0d9c8b", Username: "jane"},
	}
}

func (f *fixture) service() *Service {
	return NewService(f.db, f.interest, f.personality, f.value, f.mappings, DefaultConfig(), zap.NewNop())
}

func (f *fixture) committedPercentages() []float64 {
	out := make([]float64, len(f.db.scores))
	for i, s := range f.db.scores {
		out[i] = s.Score.Data().Percentage
	}
	return out
}

func (f *fixture) assertNothingCommitted(t *testing.T) {
	t.Helper()
	assert.Empty(t, f.db.tests, "user tests")
	assert.Empty(t, f.db.scores, "scores")
	assert.Empty(t, f.db.responses, "responses")
	assert.Equal(t, 0, f.db.commits)
}

var interestAnswers = map[string]float64{"R": 5, "I": 2, "A": 1, "S": 0, "E": 3, "C": 4}

// --- interest ---

func TestProcessInterest_Scenario(t *testing.T) {
	// Arrange
	f := newFixture()
	svc := f.service()

	// Act
	res, err := svc.ProcessInterest(context.Background(), interestAnswers, f.user)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, f.user.UUID, res.UserID)
	assert.Equal(t, "RIASEC-1", res.HollandCode)
	assert.Equal(t, "Realistic-Conventional", res.TypeName)
	assert.Equal(t, []string{"Practical", "Organized"}, res.KeyTraits)
	assert.Equal(t, []string{"Engineer", "Pilot"}, res.CareerPath)

	require.Len(t, res.ChartData, 6)
	for i, entry := range res.ChartData {
		assert.Equal(t, riasecNames[i], entry.Label)
	}
	assert.Equal(t, 5.0, res.ChartData[0].Score)

	require.Len(t, res.DimensionDescriptions, 2)
	assert.Equal(t, "Realistic", res.DimensionDescriptions[0].DimensionName)
	assert.Equal(t, "Conventional", res.DimensionDescriptions[1].DimensionName)
	assert.Equal(t, "Realistic description", res.DimensionDescriptions[0].Description)

	require.Len(t, f.db.tests, 1)
	test := f.db.tests[0]
	assert.Equal(t, "Interest", test.Name)
	assert.Equal(t, uint(42), test.UserID)
	assert.True(t, test.IsCompleted)
	assert.Equal(t, test.UUID, res.TestUUID)

	assert.Equal(t, []float64{33.33, 13.33, 6.67, 0.0, 20.0, 26.67}, f.committedPercentages())
	for _, s := range f.db.scores {
		assert.Equal(t, uint(1), s.AssessmentTypeID)
		assert.Equal(t, test.ID, s.UserTestID)
		assert.Equal(t, uint(42), s.UserID)
		assert.NotEmpty(t, s.UUID)
	}

	require.Len(t, f.db.responses, 1)
	var snapshot InterestResult
	require.NoError(t, json.Unmarshal(f.db.responses[0].ResponseData, &snapshot))
	assert.Equal(t, *res, snapshot)
	assert.Equal(t, test.ID, f.db.responses[0].UserTestID)
}

func TestProcessInterest_SkipsMissingDimension(t *testing.T) {
	f := newFixture()
	delete(f.db.dimensions, "Artistic")

	res, err := f.service().ProcessInterest(context.Background(), interestAnswers, f.user)

	require.NoError(t, err)
	assert.Len(t, res.ChartData, 5)
	require.Len(t, f.db.scores, 5)
	// percentages are taken over the 14 points that resolved
	assert.Equal(t, []float64{35.71, 14.29, 0, 21.43, 28.57}, f.committedPercentages())
}

func TestProcessInterest_NoScorableDimensions(t *testing.T) {
	f := newFixture()
	for _, n := range riasecNames {
		delete(f.db.dimensions, n)
	}

	res, err := f.service().ProcessInterest(context.Background(), interestAnswers, f.user)

	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNoScorableDimensions))
	f.assertNothingCommitted(t)
	assert.Equal(t, 1, f.db.rollbacks)
}

func TestProcessInterest_DimensionOfOtherFamilyIsSkipped(t *testing.T) {
	f := newFixture()
	f.db.dimensions["Social"].AssessmentTypeID = 3

	_, err := f.service().ProcessInterest(context.Background(), interestAnswers, f.user)

	require.NoError(t, err)
	assert.Len(t, f.db.scores, 5)
}

func TestProcessInterest_UnknownHollandCode(t *testing.T) {
	f := newFixture()
	f.interest.code = "XYZ"

	_, err := f.service().ProcessInterest(context.Background(), interestAnswers, f.user)

	var missing *apperrors.ReferenceDataMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "holland_code", missing.Kind)
	assert.Equal(t, "XYZ", missing.Name)
	f.assertNothingCommitted(t)
}

func TestProcessInterest_ModelFailure(t *testing.T) {
	f := newFixture()
	f.interest.err = &apperrors.ModelUnavailableError{Model: "interest", Err: errors.New("class 9 has no label")}

	_, err := f.service().ProcessInterest(context.Background(), interestAnswers, f.user)

	assert.True(t, errors.Is(err, apperrors.ErrModelUnavailable))
	f.assertNothingCommitted(t)
}

func TestProcess_TwoSubmissionsCreateTwoTests(t *testing.T) {
	f := newFixture()
	svc := f.service()

	first, err := svc.ProcessInterest(context.Background(), interestAnswers, f.user)
	require.NoError(t, err)
	second, err := svc.ProcessInterest(context.Background(), interestAnswers, f.user)
	require.NoError(t, err)

	assert.Len(t, f.db.tests, 2)
	assert.Len(t, f.db.responses, 2)
	assert.Len(t, f.db.scores, 12)
	assert.NotEqual(t, first.TestUUID, second.TestUUID)
	assert.NotEqual(t, f.db.tests[0].ID, f.db.tests[1].ID)
}

// --- input and persistence failures ---

func TestProcess_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		responses map[string]float64
		user      *entity.User
		field     string
	}{
		{"no answers", map[string]float64{}, &entity.User{ID: 1}, "responses"},
		{"nil answers", nil, &entity.User{ID: 1}, "responses"},
		{"NaN answer", map[string]float64{"q1": math.NaN(), "q2": 1}, &entity.User{ID: 1}, "q1"},
		{"infinite answer", map[string]float64{"q1": 1, "q2": math.Inf(1)}, &entity.User{ID: 1}, "q2"},
		{"no user", map[string]float64{"q1": 1}, nil, "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.service().ProcessValue(context.Background(), tt.responses, tt.user)

			var invalid *apperrors.InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
			f.assertNothingCommitted(t)
			assert.Equal(t, 0, f.db.rollbacks, "transaction must not start")
		})
	}
}

func TestProcess_PersistenceFailureRollsBack(t *testing.T) {
	for _, op := range []string{"create_test", "save_scores", "save_response", "mark_completed"} {
		t.Run(op, func(t *testing.T) {
			f := newFixture()
			f.db.failOn = op

			_, err := f.service().ProcessPersonality(context.Background(), map[string]float64{"q1": 3}, f.user)

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrPersistence))
			f.assertNothingCommitted(t)
		})
	}
}

func TestProcess_MissingAssessmentType(t *testing.T) {
	f := newFixture()
	delete(f.db.assessmentTypes, "Values")

	_, err := f.service().ProcessValue(context.Background(), map[string]float64{"q1": 1}, f.user)

	var missing *apperrors.ReferenceDataMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "assessment_type", missing.Kind)
	assert.Equal(t, "Values", missing.Name)
	f.assertNothingCommitted(t)
}

func TestProcessInterest_SharedDimensionIsScoredOnce(t *testing.T) {
	f := newFixture()
	f.mappings.Interest["I_Score"] = "Realistic"

	res, err := f.service().ProcessInterest(context.Background(), interestAnswers, f.user)

	require.NoError(t, err)
	assert.Len(t, res.ChartData, 5)
	rows := 0
	for _, s := range f.db.scores {
		if s.DimensionID == 10 {
			rows++
		}
	}
	assert.Equal(t, 1, rows)
	assert.Len(t, f.db.scores, 5)
}

// --- personality ---

func TestProcessPersonality(t *testing.T) {
	f := newFixture()

	res, err := f.service().ProcessPersonality(context.Background(), map[string]float64{"q1": 4, "q2": 2}, f.user)

	require.NoError(t, err)
	assert.Equal(t, f.user.UUID, res.UserUUID)
	assert.Equal(t, PersonalityTypeDetails{Name: "ENTJ", Title: "The Commander", Description: "Bold and decisive"}, res.PersonalityType)
	assert.Equal(t, []DimensionScore{
		{DimensionName: "Extraversion", Score: 3, Percentage: "75.00%"},
		{DimensionName: "Intuition", Score: 1, Percentage: "25.00%"},
		{DimensionName: "Thinking", Score: 0, Percentage: "0.00%"},
		{DimensionName: "Judging", Score: 0, Percentage: "0.00%"},
	}, res.Dimensions)
	assert.Equal(t, []string{"Confident", "Strategic"}, res.Traits.Positive)
	assert.Equal(t, []string{"Impatient"}, res.Traits.Negative)
	assert.Equal(t, []string{"Efficient"}, res.Strengths)
	assert.Equal(t, []string{"Stubborn"}, res.Weaknesses)
	assert.Equal(t, []string{"Executive", "Lawyer"}, res.CareerRecommendations)

	require.Len(t, f.db.tests, 1)
	assert.Equal(t, "Personality", f.db.tests[0].Name)
	assert.Equal(t, []float64{75, 25, 0, 0}, f.committedPercentages())
}

func TestProcessPersonality_ClassifierSeesAllDimensions(t *testing.T) {
	f := newFixture()
	delete(f.db.dimensions, "Judging")

	res, err := f.service().ProcessPersonality(context.Background(), map[string]float64{"q1": 1}, f.user)

	require.NoError(t, err)
	assert.Len(t, res.Dimensions, 3)
	assert.Len(t, f.personality.gotType, 4)
}

func TestProcessPersonality_UnknownType(t *testing.T) {
	f := newFixture()
	f.personality.label = "XXXX"

	_, err := f.service().ProcessPersonality(context.Background(), map[string]float64{"q1": 1}, f.user)

	assert.True(t, errors.Is(err, apperrors.ErrReferenceDataMissing))
	f.assertNothingCommitted(t)
}

func TestProcessPersonality_NoScorableDimensions(t *testing.T) {
	f := newFixture()
	for _, n := range PersonalityDimensions {
		delete(f.db.dimensions, n)
	}

	res, err := f.service().ProcessPersonality(context.Background(), map[string]float64{"q1": 1}, f.user)

	assert.Nil(t, res)
	assert.True(t, errors.Is(err, apperrors.ErrNoScorableDimensions))
	f.assertNothingCommitted(t)
	assert.Equal(t, 1, f.db.rollbacks)
}

// --- value ---

func TestProcessValue_AllEqualScores(t *testing.T) {
	f := newFixture()

	res, err := f.service().ProcessValue(context.Background(), map[string]float64{"q1": 1}, f.user)

	require.NoError(t, err)
	require.Len(t, res.ChartData, 9)
	for _, entry := range res.ChartData {
		assert.Equal(t, 5.5, entry.Score)
	}
	assert.Equal(t, "Work-Life Balance", res.ChartData[0].Label)

	require.Len(t, res.ValueDetails, 3)
	assert.Equal(t, "Work-Life Balance", res.ValueDetails[0].Name)
	assert.Equal(t, "Financial Stability", res.ValueDetails[1].Name)
	assert.Equal(t, "Creativity and Innovation", res.ValueDetails[2].Name)
	assert.Equal(t, "11.11%", res.ValueDetails[0].Percentage)
	assert.Equal(t, "Work-Life Balance definition", res.ValueDetails[0].Definition)

	assert.Equal(t, []string{"Engineer", "Accountant", "Designer"}, res.CareerRecommendations)

	require.Len(t, f.db.scores, 9)
	for _, s := range f.db.scores {
		assert.Equal(t, 5.5, s.Score.Data().Score)
		assert.Equal(t, 11.11, s.Score.Data().Percentage)
	}
	assert.Equal(t, "Value Assessment", f.db.tests[0].Name)
}

func TestProcessValue_RescaleThenRank(t *testing.T) {
	f := newFixture()
	f.value.scores = mkScores(ValueFeatures[:3], 2, 6, 4)

	res, err := f.service().ProcessValue(context.Background(), map[string]float64{"q1": 1}, f.user)

	require.NoError(t, err)
	assert.Equal(t, []ChartEntry{
		{Label: "Work-Life Balance", Score: 1},
		{Label: "Financial Stability", Score: 10},
		{Label: "Creativity and Innovation", Score: 5.5},
	}, res.ChartData)

	require.Len(t, res.ValueDetails, 3)
	assert.Equal(t, "Financial Stability", res.ValueDetails[0].Name)
	assert.Equal(t, "60.61%", res.ValueDetails[0].Percentage)
	assert.Equal(t, "Creativity and Innovation", res.ValueDetails[1].Name)
	assert.Equal(t, "33.33%", res.ValueDetails[1].Percentage)
	assert.Equal(t, "Work-Life Balance", res.ValueDetails[2].Name)
	assert.Equal(t, "6.06%", res.ValueDetails[2].Percentage)
}

func TestProcessValue_RescalesAcrossUnresolvedFeatures(t *testing.T) {
	f := newFixture()
	f.value.scores = mkScores(ValueFeatures[:3], 2, 6, 4)
	delete(f.db.dimensions, "Work-Life Balance Score")

	res, err := f.service().ProcessValue(context.Background(), map[string]float64{"q1": 1}, f.user)

	require.NoError(t, err)
	// the dropped feature still anchored the rescale minimum
	assert.Equal(t, []ChartEntry{
		{Label: "Financial Stability", Score: 10},
		{Label: "Creativity and Innovation", Score: 5.5},
	}, res.ChartData)
	assert.Equal(t, []float64{64.52, 35.48}, f.committedPercentages())
}

func TestProcessValue_MissingCategoryIsNotFeatured(t *testing.T) {
	f := newFixture()
	delete(f.db.valueCategories, "Financial Stability")

	res, err := f.service().ProcessValue(context.Background(), map[string]float64{"q1": 1}, f.user)

	require.NoError(t, err)
	require.Len(t, res.ValueDetails, 2)
	assert.Equal(t, "Work-Life Balance", res.ValueDetails[0].Name)
	assert.Equal(t, "Creativity and Innovation", res.ValueDetails[1].Name)
	assert.Equal(t, []string{"Engineer", "Designer"}, res.CareerRecommendations)
	assert.Len(t, f.db.scores, 9)
}

func TestProcessValue_NoScorableDimensions(t *testing.T) {
	f := newFixture()
	for _, n := range ValueFeatures {
		delete(f.db.dimensions, n)
	}

	res, err := f.service().ProcessValue(context.Background(), map[string]float64{"q1": 1}, f.user)

	assert.Nil(t, res)
	assert.True(t, errors.Is(err, apperrors.ErrNoScorableDimensions))
	f.assertNothingCommitted(t)
	assert.Equal(t, 1, f.db.rollbacks)
}

// --- startup validation ---

func TestValidateReferenceData(t *testing.T) {
	f := newFixture()

	assert.NoError(t, f.service().ValidateReferenceData(context.Background()))
}

func TestValidateReferenceData_ReportsEveryProblem(t *testing.T) {
	f := newFixture()
	f.interest.scores = append(f.interest.scores, mkScores([]string{"X_Score"}, 1)...)
	delete(f.db.dimensions, "Intuition")
	f.db.dimensions["Social Impact Score"].AssessmentTypeID = 1
	f.mappings.Interest["I_Score"] = "Realistic"

	err := f.service().ValidateReferenceData(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `interest model outputs "R_Score" and "I_Score" both map to dimension "Realistic"`)
	assert.Contains(t, err.Error(), "X_Score")
	assert.Contains(t, err.Error(), "Intuition")
	assert.Contains(t, err.Error(), "Social Impact Score")
	assert.True(t, errors.Is(err, apperrors.ErrReferenceDataMissing))
}

func TestValidateReferenceData_UnmappedCatalogDimensionIsTolerated(t *testing.T) {
	f := newFixture()
	f.db.addDimension(99, "Adventurous", 1)

	assert.NoError(t, f.service().ValidateReferenceData(context.Background()))
}
