package assessment

import (
	"context"
	"errors"

	"github.com/yourusername/assessment-api/internal/domain/entity"
	"github.com/yourusername/assessment-api/internal/domain/repository"
	"github.com/yourusername/assessment-api/internal/inference"
	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
)

// memDB is an in-memory catalog plus session tables. Writes made inside
// WithinTransaction are staged and only become visible when fn succeeds.
type memDB struct {
	assessmentTypes   map[string]*entity.AssessmentType
	dimensions        map[string]*entity.Dimension
	hollandCodes      map[string]*entity.HollandCode
	keyTraits         map[uint][]string
	personalityTypes  map[string]*entity.PersonalityType
	personalityTraits map[uint][]entity.PersonalityTrait
	strengths         map[uint][]string
	weaknesses        map[uint][]string
	valueCategories   map[string]*entity.ValueCategory
	hollandCareers    map[uint][]string
	personalityCareer map[uint][]string
	valueCareers      map[uint][]string

	tests     []entity.UserTest
	scores    []entity.UserAssessmentScore
	responses []entity.UserResponse

	nextID    uint
	failOn    string
	commits   int
	rollbacks int
}

func newMemDB() *memDB {
	return &memDB{
		assessmentTypes:   map[string]*entity.AssessmentType{},
		dimensions:        map[string]*entity.Dimension{},
		hollandCodes:      map[string]*entity.HollandCode{},
		keyTraits:         map[uint][]string{},
		personalityTypes:  map[string]*entity.PersonalityType{},
		personalityTraits: map[uint][]entity.PersonalityTrait{},
		strengths:         map[uint][]string{},
		weaknesses:        map[uint][]string{},
		valueCategories:   map[string]*entity.ValueCategory{},
		hollandCareers:    map[uint][]string{},
		personalityCareer: map[uint][]string{},
		valueCareers:      map[uint][]string{},
		nextID:            1000,
	}
}

func (db *memDB) addDimension(id uint, name string, assessmentTypeID uint) {
	db.dimensions[name] = &entity.Dimension{
		ID:               id,
		Name:             name,
		Description:      name + " description",
		AssessmentTypeID: assessmentTypeID,
	}
}

func (db *memDB) WithinTransaction(ctx context.Context, fn func(ctx context.Context, store repository.Store) error) error {
	tx := &memTx{db: db}
	if err := fn(ctx, tx); err != nil {
		db.rollbacks++
		return err
	}

	completed := make(map[uint]bool, len(tx.completed))
	for _, id := range tx.completed {
		completed[id] = true
	}
	for _, t := range tx.tests {
		if completed[t.ID] {
			t.IsCompleted = true
		}
		db.tests = append(db.tests, t)
	}
	db.scores = append(db.scores, tx.scores...)
	db.responses = append(db.responses, tx.responses...)
	db.commits++
	return nil
}

var errInjected = errors.New("injected failure")

func (db *memDB) fail(op string) error {
	if db.failOn == op {
		return &apperrors.PersistenceError{Op: op, Err: errInjected}
	}
	return nil
}

// memTx is the Store handed to one transaction
type memTx struct {
	db        *memDB
	tests     []entity.UserTest
	scores    []entity.UserAssessmentScore
	responses []entity.UserResponse
	completed []uint
}

func (tx *memTx) References() repository.ReferenceRepository   { return tx }
func (tx *memTx) UserTests() repository.UserTestRepository     { return tx }
func (tx *memTx) Assessments() repository.AssessmentRepository { return tx }

// ReferenceRepository

func (tx *memTx) AssessmentTypeByName(_ context.Context, name string) (*entity.AssessmentType, error) {
	if at, ok := tx.db.assessmentTypes[name]; ok {
		return at, nil
	}
	return nil, apperrors.ErrNotFound
}

func (tx *memTx) AssessmentTypeByUUID(_ context.Context, uuid string) (*entity.AssessmentType, error) {
	for _, at := range tx.db.assessmentTypes {
		if at.UUID == uuid {
			return at, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (tx *memTx) DimensionByName(_ context.Context, name string) (*entity.Dimension, error) {
	if d, ok := tx.db.dimensions[name]; ok {
		return d, nil
	}
	return nil, apperrors.ErrNotFound
}

func (tx *memTx) DimensionNames(_ context.Context, assessmentTypeID uint) ([]string, error) {
	var out []string
	for _, d := range tx.db.dimensions {
		if d.AssessmentTypeID == assessmentTypeID {
			out = append(out, d.Name)
		}
	}
	return out, nil
}

func (tx *memTx) HollandCodeByCode(_ context.Context, code string) (*entity.HollandCode, error) {
	if hc, ok := tx.db.hollandCodes[code]; ok {
		return hc, nil
	}
	return nil, apperrors.ErrNotFound
}

func (tx *memTx) HollandKeyTraits(_ context.Context, id uint) ([]string, error) {
	return tx.db.keyTraits[id], nil
}

func (tx *memTx) PersonalityTypeByName(_ context.Context, name string) (*entity.PersonalityType, error) {
	if pt, ok := tx.db.personalityTypes[name]; ok {
		return pt, nil
	}
	return nil, apperrors.ErrNotFound
}

func (tx *memTx) PersonalityTraits(_ context.Context, id uint) ([]entity.PersonalityTrait, error) {
	return tx.db.personalityTraits[id], nil
}

func (tx *memTx) PersonalityStrengths(_ context.Context, id uint) ([]string, error) {
	return tx.db.strengths[id], nil
}

func (tx *memTx) PersonalityWeaknesses(_ context.Context, id uint) ([]string, error) {
	return tx.db.weaknesses[id], nil
}

func (tx *memTx) ValueCategoryByName(_ context.Context, name string) (*entity.ValueCategory, error) {
	if vc, ok := tx.db.valueCategories[name]; ok {
		return vc, nil
	}
	return nil, apperrors.ErrNotFound
}

func (tx *memTx) CareersByHollandCode(_ context.Context, id uint) ([]string, error) {
	return tx.db.hollandCareers[id], nil
}

func (tx *memTx) CareersByPersonalityType(_ context.Context, id uint) ([]string, error) {
	return tx.db.personalityCareer[id], nil
}

func (tx *memTx) CareersByValueCategory(_ context.Context, id uint) ([]string, error) {
	return tx.db.valueCareers[id], nil
}

// UserTestRepository

func (tx *memTx) Create(_ context.Context, test *entity.UserTest) error {
	if err := tx.db.fail("create_test"); err != nil {
		return err
	}
	tx.db.nextID++
	test.ID = tx.db.nextID
	tx.tests = append(tx.tests, *test)
	return nil
}

func (tx *memTx) MarkCompleted(_ context.Context, testID uint) error {
	if err := tx.db.fail("mark_completed"); err != nil {
		return err
	}
	tx.completed = append(tx.completed, testID)
	return nil
}

func (tx *memTx) GetByUUID(_ context.Context, userID uint, uuid string) (*entity.UserTest, error) {
	for i := range tx.db.tests {
		if t := &tx.db.tests[i]; t.UUID == uuid && t.UserID == userID {
			return t, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (tx *memTx) ListByUser(_ context.Context, userID uint, limit, offset int) ([]entity.UserTest, int64, error) {
	var out []entity.UserTest
	for _, t := range tx.db.tests {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, int64(len(out)), nil
}

func (tx *memTx) SoftDelete(_ context.Context, userID uint, uuid string) error {
	return nil
}

// AssessmentRepository

func (tx *memTx) SaveScores(_ context.Context, scores []entity.UserAssessmentScore) error {
	if err := tx.db.fail("save_scores"); err != nil {
		return err
	}
	tx.scores = append(tx.scores, scores...)
	return nil
}

func (tx *memTx) SaveResponse(_ context.Context, response *entity.UserResponse) error {
	if err := tx.db.fail("save_response"); err != nil {
		return err
	}
	tx.responses = append(tx.responses, *response)
	return nil
}

func (tx *memTx) ResponseByTest(_ context.Context, userTestID uint) (*entity.UserResponse, error) {
	for i := range tx.db.responses {
		if tx.db.responses[i].UserTestID == userTestID {
			return &tx.db.responses[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (tx *memTx) ScoresByUser(_ context.Context, userID uint) ([]entity.UserAssessmentScore, error) {
	return nil, nil
}

// predictor stubs

func mkScores(keys []string, values ...float64) []inference.Score {
	out := make([]inference.Score, len(keys))
	for i, n := range keys {
		out[i] = inference.Score{Name: n, Value: values[i]}
	}
	return out
}

func keysOf(in []inference.Score) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = s.Name
	}
	return out
}

type stubInterest struct {
	scores []inference.Score
	code   string
	err    error
}

func (s *stubInterest) ScoreKeys() []string                                { return keysOf(s.scores) }
func (s *stubInterest) PredictScores(inference.Features) []inference.Score { return s.scores }
func (s *stubInterest) PredictCode(inference.Features) (inference.Label, error) {
	return inference.Label{Name: s.code, Confidence: 0.9}, s.err
}

type stubPersonality struct {
	scores  []inference.Score
	label   string
	gotType []inference.Score
}

func (s *stubPersonality) DimensionKeys() []string                                { return keysOf(s.scores) }
func (s *stubPersonality) PredictDimensions(inference.Features) []inference.Score { return s.scores }
func (s *stubPersonality) PredictType(in []inference.Score) (inference.Label, error) {
	s.gotType = in
	return inference.Label{Name: s.label, Confidence: 0.8}, nil
}

type stubValue struct {
	scores []inference.Score
}

func (s *stubValue) FeatureKeys() []string                                     { return keysOf(s.scores) }
func (s *stubValue) PredictFeatureScores(inference.Features) []inference.Score { return s.scores }
