package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yourusername/assessment-api/internal/domain/repository"
	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
)

// Mappings translate raw model output keys into canonical dimension names
type Mappings struct {
	Interest    map[string]string
	Personality map[string]string
	Value       map[string]string
}

// ValueFeatures are the work value outputs of the value model
var ValueFeatures = []string{
	"Work-Life Balance Score",
	"Financial Stability Score",
	"Creativity and Innovation Score",
	"Helping Others Score",
	"Personal Growth Score",
	"Recognition and Achievement Score",
	"Social Impact Score",
	"Independence and Flexibility Score",
	"Stability and Security Score",
	"Teamwork and Collaboration Score",
	"Leadership and Influence Score",
}

// PersonalityDimensions are the default outputs of the personality model
var PersonalityDimensions = []string{"Extraversion", "Intuition", "Thinking", "Judging"}

// DefaultMappings returns the mapping tables matching the seeded catalog
func DefaultMappings() Mappings {
	return Mappings{
		Interest: map[string]string{
			"R_Score": "Realistic",
			"I_Score": "Investigative",
			"A_Score": "Artistic",
			"S_Score": "Social",
			"E_Score": "Enterprising",
			"C_Score": "Conventional",
		},
		Personality: IdentityMapping(PersonalityDimensions...),
		Value:       IdentityMapping(ValueFeatures...),
	}
}

// IdentityMapping maps every key onto itself
func IdentityMapping(keys ...string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		m[k] = k
	}
	return m
}

// valueCategoryName derives the category name from a value dimension name
func valueCategoryName(dimension string) string {
	return strings.TrimSpace(strings.TrimSuffix(dimension, " Score"))
}

// ValidateReferenceData checks at startup that every model output key has a
// mapping entry, that no two outputs share a dimension and that every mapped
// dimension exists under the expected assessment type. All problems are
// reported together. Catalog dimensions no output maps to are only logged.
func (s *Service) ValidateReferenceData(ctx context.Context) error {
	checks := []struct {
		fam     family
		keys    []string
		mapping map[string]string
	}{
		{interestFamily, s.interest.ScoreKeys(), s.mappings.Interest},
		{personalityFamily, s.personality.DimensionKeys(), s.mappings.Personality},
		{valueFamily, s.value.FeatureKeys(), s.mappings.Value},
	}

	var problems []error
	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, store repository.Store) error {
		refs := store.References()
		for _, c := range checks {
			at, err := refs.AssessmentTypeByName(ctx, c.fam.assessmentType)
			if err != nil {
				if !errors.Is(err, apperrors.ErrNotFound) {
					return err
				}
				problems = append(problems, &apperrors.ReferenceDataMissingError{Kind: "assessment_type", Name: c.fam.assessmentType})
				continue
			}

			targeted := make(map[string]string, len(c.keys))
			for _, key := range c.keys {
				name, ok := c.mapping[key]
				if !ok {
					problems = append(problems, fmt.Errorf("%s model output %q has no dimension mapping", c.fam.key, key))
					continue
				}
				// one score row per dimension and test
				if prev, dup := targeted[name]; dup {
					problems = append(problems, fmt.Errorf("%s model outputs %q and %q both map to dimension %q", c.fam.key, prev, key, name))
					continue
				}
				targeted[name] = key

				dim, err := refs.DimensionByName(ctx, name)
				if err != nil {
					if !errors.Is(err, apperrors.ErrNotFound) {
						return err
					}
					problems = append(problems, &apperrors.ReferenceDataMissingError{Kind: "dimension", Name: name})
					continue
				}
				if dim.AssessmentTypeID != at.ID {
					problems = append(problems, fmt.Errorf("dimension %q does not belong to assessment type %q", name, at.Name))
				}
			}

			catalog, err := refs.DimensionNames(ctx, at.ID)
			if err != nil {
				return err
			}
			for _, name := range catalog {
				if _, ok := targeted[name]; !ok {
					s.logger.Warn("catalog dimension is not produced by any model output",
						zap.String("assessment", c.fam.key), zap.String("dimension", name))
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return errors.Join(problems...)
}
