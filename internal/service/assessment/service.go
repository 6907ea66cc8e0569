// Package assessment scores questionnaire submissions. Each Process* call runs
// the whole pipeline (inference, normalization, reference resolution, result
// assembly, persistence) inside a single unit of work: either every score row,
// the result snapshot and the completed session are committed together, or
// nothing is.
package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/yourusername/assessment-api/internal/config"
	"github.com/yourusername/assessment-api/internal/domain/entity"
	"github.com/yourusername/assessment-api/internal/domain/repository"
	"github.com/yourusername/assessment-api/internal/inference"
	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
	"github.com/yourusername/assessment-api/internal/scoring"
	"github.com/yourusername/assessment-api/pkg/monitoring"
	"github.com/yourusername/assessment-api/pkg/tracing"
)

// Config tunes normalization and narrative selection
type Config struct {
	ValueTargetMin float64
	ValueTargetMax float64
	InterestTopK   int
	ValueTopK      int
}

// DefaultConfig rescales values to 1..10 and features 2 interests and 3 values
func DefaultConfig() Config {
	return Config{
		ValueTargetMin: scoring.DefaultTargetMin,
		ValueTargetMax: scoring.DefaultTargetMax,
		InterestTopK:   2,
		ValueTopK:      3,
	}
}

// ConfigFrom adapts the application scoring settings
func ConfigFrom(cfg config.ScoringConfig) Config {
	return Config{
		ValueTargetMin: cfg.ValueTargetMin,
		ValueTargetMax: cfg.ValueTargetMax,
		InterestTopK:   cfg.InterestTopK,
		ValueTopK:      cfg.ValueTopK,
	}
}

// Service orchestrates the three assessment families
type Service struct {
	uow         repository.UnitOfWork
	interest    InterestPredictor
	personality PersonalityPredictor
	value       ValuePredictor
	mappings    Mappings
	cfg         Config
	logger      *zap.Logger
}

// NewService creates the assessment orchestrator
func NewService(
	uow repository.UnitOfWork,
	interest InterestPredictor,
	personality PersonalityPredictor,
	value ValuePredictor,
	mappings Mappings,
	cfg Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		uow:         uow,
		interest:    interest,
		personality: personality,
		value:       value,
		mappings:    mappings,
		cfg:         cfg,
		logger:      logger.Named("assessment"),
	}
}

// scope is the state of one submission inside its transaction
type scope struct {
	store          repository.Store
	user           *entity.User
	test           *entity.UserTest
	assessmentType *entity.AssessmentType
	features       inference.Features
	scores         []entity.UserAssessmentScore
	log            *zap.Logger
}

func (sc *scope) addScore(dimensionID uint, score, percentage float64) {
	sc.scores = append(sc.scores, entity.UserAssessmentScore{
		UUID:             uuid.NewString(),
		UserID:           sc.user.ID,
		UserTestID:       sc.test.ID,
		AssessmentTypeID: sc.assessmentType.ID,
		DimensionID:      dimensionID,
		Score: datatypes.NewJSONType(entity.ScorePayload{
			Score:      scoring.Round2(score),
			Percentage: percentage,
		}),
	})
}

// resolvedScore is a model output matched to its reference dimension
type resolvedScore struct {
	key        string
	dimension  *entity.Dimension
	value      float64
	percentage float64
}

func byValue(r resolvedScore) float64 { return r.value }

func run[R any](
	ctx context.Context,
	s *Service,
	fam family,
	user *entity.User,
	responses map[string]float64,
	build func(ctx context.Context, sc *scope) (*R, error),
) (*R, error) {
	start := time.Now()
	ctx, span := tracing.Tracer.Start(ctx, "assessment."+fam.key)
	defer span.End()

	result, testUUID, err := process(ctx, s, fam, user, responses, build)

	outcome := "success"
	if err != nil {
		outcome = outcomeOf(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	} else {
		span.SetAttributes(attribute.String("assessment.test_uuid", testUUID))
	}
	monitoring.ObserveAssessment(fam.key, outcome, time.Since(start))

	log := s.logger.With(zap.String("assessment", fam.key), zap.Duration("elapsed", time.Since(start)))
	if user != nil {
		log = log.With(zap.Uint("user_id", user.ID))
	}
	switch {
	case err == nil:
		log.Info("assessment processed", zap.String("test_uuid", testUUID))
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("assessment rejected", zap.Error(err))
	default:
		log.Error("assessment failed, transaction rolled back", zap.Error(err))
	}

	return result, err
}

func process[R any](
	ctx context.Context,
	s *Service,
	fam family,
	user *entity.User,
	responses map[string]float64,
	build func(ctx context.Context, sc *scope) (*R, error),
) (*R, string, error) {
	if err := validateSubmission(user, responses); err != nil {
		return nil, "", err
	}

	var result *R
	var testUUID string
	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, store repository.Store) error {
		test := &entity.UserTest{UUID: uuid.NewString(), Name: fam.testName, UserID: user.ID}
		if err := store.UserTests().Create(ctx, test); err != nil {
			return err
		}

		at, err := store.References().AssessmentTypeByName(ctx, fam.assessmentType)
		if err != nil {
			return referenceErr(err, "assessment_type", fam.assessmentType)
		}

		sc := &scope{
			store:          store,
			user:           user,
			test:           test,
			assessmentType: at,
			features:       inference.Features(responses),
			log:            s.logger.With(zap.String("assessment", fam.key), zap.String("test_uuid", test.UUID)),
		}

		res, err := build(ctx, sc)
		if err != nil {
			return err
		}

		if err := store.Assessments().SaveScores(ctx, sc.scores); err != nil {
			return err
		}

		payload, err := json.Marshal(res)
		if err != nil {
			return fmt.Errorf("serialize %s result: %w", fam.key, err)
		}
		snapshot := &entity.UserResponse{
			UUID:             uuid.NewString(),
			UserID:           user.ID,
			UserTestID:       test.ID,
			AssessmentTypeID: at.ID,
			ResponseData:     datatypes.JSON(payload),
		}
		if err := store.Assessments().SaveResponse(ctx, snapshot); err != nil {
			return err
		}

		if err := store.UserTests().MarkCompleted(ctx, test.ID); err != nil {
			return err
		}

		result = res
		testUUID = test.UUID
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return result, testUUID, nil
}

func validateSubmission(user *entity.User, responses map[string]float64) error {
	if user == nil {
		return &apperrors.InvalidInputError{Field: "user", Reason: "requesting user is required"}
	}
	if len(responses) == 0 {
		return &apperrors.InvalidInputError{Field: "responses", Reason: "no answers submitted"}
	}

	keys := make([]string, 0, len(responses))
	for k := range responses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := responses[k]; math.IsNaN(v) || math.IsInf(v, 0) {
			return &apperrors.InvalidInputError{Field: k, Reason: "answer must be a finite number"}
		}
	}
	return nil
}

// resolveDimensions matches model outputs to catalog dimensions of the current
// assessment type. Unmatched outputs are logged and dropped; if none match the
// submission cannot be scored.
func (s *Service) resolveDimensions(
	ctx context.Context,
	sc *scope,
	fam family,
	mapping map[string]string,
	scores []inference.Score,
) ([]resolvedScore, error) {
	refs := sc.store.References()

	out := make([]resolvedScore, 0, len(scores))
	seen := make(map[uint]string, len(scores))
	for _, score := range scores {
		name, ok := mapping[score.Name]
		if !ok {
			sc.log.Warn("model output has no dimension mapping, skipping", zap.String("output", score.Name))
			monitoring.SkippedDimensions.WithLabelValues(fam.key).Inc()
			continue
		}

		dim, err := refs.DimensionByName(ctx, name)
		if errors.Is(err, apperrors.ErrNotFound) {
			sc.log.Warn("dimension not found, skipping", zap.String("dimension", name))
			monitoring.SkippedDimensions.WithLabelValues(fam.key).Inc()
			continue
		}
		if err != nil {
			return nil, err
		}
		if dim.AssessmentTypeID != sc.assessmentType.ID {
			sc.log.Warn("dimension belongs to another assessment type, skipping",
				zap.String("dimension", name), zap.Uint("assessment_type_id", dim.AssessmentTypeID))
			monitoring.SkippedDimensions.WithLabelValues(fam.key).Inc()
			continue
		}

		if prev, dup := seen[dim.ID]; dup {
			sc.log.Warn("dimension already scored by another output, skipping",
				zap.String("dimension", name), zap.String("output", score.Name), zap.String("scored_by", prev))
			monitoring.SkippedDimensions.WithLabelValues(fam.key).Inc()
			continue
		}
		seen[dim.ID] = score.Name

		out = append(out, resolvedScore{key: score.Name, dimension: dim, value: score.Value})
	}

	if len(out) == 0 {
		return nil, &apperrors.NoScorableDimensionsError{Assessment: fam.key}
	}

	values := make([]float64, len(out))
	for i, r := range out {
		values[i] = r.value
	}
	for i, p := range scoring.PercentageOfSum(values) {
		out[i].percentage = p
	}
	return out, nil
}

func referenceErr(err error, kind, name string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return &apperrors.ReferenceDataMissingError{Kind: kind, Name: name}
	}
	return err
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, apperrors.ErrReferenceDataMissing):
		return "reference_data_missing"
	case errors.Is(err, apperrors.ErrNoScorableDimensions):
		return "no_scorable_dimensions"
	case errors.Is(err, apperrors.ErrModelUnavailable):
		return "model_unavailable"
	case errors.Is(err, apperrors.ErrPersistence):
		return "persistence"
	default:
		return "error"
	}
}
