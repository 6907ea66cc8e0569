package assessment

import (
	"context"

	"go.uber.org/zap"

	"github.com/yourusername/assessment-api/internal/domain/entity"
	"github.com/yourusername/assessment-api/internal/scoring"
)

// ProcessPersonality scores a personality inventory and persists the result
func (s *Service) ProcessPersonality(ctx context.Context, responses map[string]float64, user *entity.User) (*PersonalityResult, error) {
	return run(ctx, s, personalityFamily, user, responses, s.scorePersonality)
}

func (s *Service) scorePersonality(ctx context.Context, sc *scope) (*PersonalityResult, error) {
	refs := sc.store.References()

	raw := s.personality.PredictDimensions(sc.features)
	// the type classifier sees every predicted dimension, resolved or not
	label, err := s.personality.PredictType(raw)
	if err != nil {
		return nil, err
	}

	pt, err := refs.PersonalityTypeByName(ctx, label.Name)
	if err != nil {
		return nil, referenceErr(err, "personality_type", label.Name)
	}

	resolved, err := s.resolveDimensions(ctx, sc, personalityFamily, s.mappings.Personality, raw)
	if err != nil {
		return nil, err
	}

	dimensions := make([]DimensionScore, 0, len(resolved))
	for _, r := range resolved {
		dimensions = append(dimensions, DimensionScore{
			DimensionName: r.dimension.Name,
			Score:         scoring.Round2(r.value),
			Percentage:    formatPercent(r.percentage),
		})
		sc.addScore(r.dimension.ID, r.value, r.percentage)
	}

	traits, err := refs.PersonalityTraits(ctx, pt.ID)
	if err != nil {
		return nil, err
	}
	split := PersonalityTraits{Positive: []string{}, Negative: []string{}}
	for _, t := range traits {
		if t.IsPositive {
			split.Positive = append(split.Positive, t.Trait)
		} else {
			split.Negative = append(split.Negative, t.Trait)
		}
	}

	strengths, err := refs.PersonalityStrengths(ctx, pt.ID)
	if err != nil {
		return nil, err
	}
	weaknesses, err := refs.PersonalityWeaknesses(ctx, pt.ID)
	if err != nil {
		return nil, err
	}

	careers, err := refs.CareersByPersonalityType(ctx, pt.ID)
	if err != nil {
		return nil, err
	}
	if len(careers) == 0 {
		sc.log.Warn("no careers for personality type", zap.String("type", pt.Name))
	}

	return &PersonalityResult{
		UserUUID: sc.user.UUID,
		TestUUID: sc.test.UUID,
		PersonalityType: PersonalityTypeDetails{
			Name:        pt.Name,
			Title:       pt.Title,
			Description: pt.Description,
		},
		Dimensions:            dimensions,
		Traits:                split,
		Strengths:             strs(strengths),
		Weaknesses:            strs(weaknesses),
		CareerRecommendations: strs(scoring.Dedupe(careers)),
	}, nil
}
