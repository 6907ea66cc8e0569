package assessment

import (
	"context"

	"go.uber.org/zap"

	"github.com/yourusername/assessment-api/internal/domain/entity"
	"github.com/yourusername/assessment-api/internal/scoring"
)

// ProcessInterest scores a RIASEC interest inventory and persists the result
func (s *Service) ProcessInterest(ctx context.Context, responses map[string]float64, user *entity.User) (*InterestResult, error) {
	return run(ctx, s, interestFamily, user, responses, s.scoreInterest)
}

func (s *Service) scoreInterest(ctx context.Context, sc *scope) (*InterestResult, error) {
	refs := sc.store.References()

	raw := s.interest.PredictScores(sc.features)
	label, err := s.interest.PredictCode(sc.features)
	if err != nil {
		return nil, err
	}

	code, err := refs.HollandCodeByCode(ctx, label.Name)
	if err != nil {
		return nil, referenceErr(err, "holland_code", label.Name)
	}

	traits, err := refs.HollandKeyTraits(ctx, code.ID)
	if err != nil {
		return nil, err
	}

	careers, err := refs.CareersByHollandCode(ctx, code.ID)
	if err != nil {
		return nil, err
	}
	if len(careers) == 0 {
		sc.log.Warn("no careers for holland code", zap.String("code", code.Code))
	}

	resolved, err := s.resolveDimensions(ctx, sc, interestFamily, s.mappings.Interest, raw)
	if err != nil {
		return nil, err
	}

	chart := make([]ChartEntry, 0, len(resolved))
	for _, r := range resolved {
		chart = append(chart, ChartEntry{Label: r.dimension.Name, Score: scoring.Round2(r.value)})
		sc.addScore(r.dimension.ID, r.value, r.percentage)
	}

	top := scoring.TopK(resolved, s.cfg.InterestTopK, byValue)
	descriptions := make([]DimensionDescription, 0, len(top))
	for _, r := range top {
		descriptions = append(descriptions, DimensionDescription{
			DimensionName: r.dimension.Name,
			Description:   r.dimension.Description,
		})
	}

	return &InterestResult{
		UserID:                sc.user.UUID,
		TestUUID:              sc.test.UUID,
		HollandCode:           code.Code,
		TypeName:              code.Type,
		Description:           code.Description,
		KeyTraits:             strs(traits),
		CareerPath:            strs(scoring.Dedupe(careers)),
		ChartData:             chart,
		DimensionDescriptions: descriptions,
	}, nil
}
