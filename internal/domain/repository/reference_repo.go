package repository

import (
	"context"

	"github.com/yourusername/assessment-api/internal/domain/entity"
)

// ReferenceRepository is the read-only catalog of dimensions, classifications and careers.
// Lookups are exact and case-sensitive, skip soft-deleted rows, and return
// apperrors.ErrNotFound when nothing matches.
type ReferenceRepository interface {
	AssessmentTypeByName(ctx context.Context, name string) (*entity.AssessmentType, error)
	AssessmentTypeByUUID(ctx context.Context, uuid string) (*entity.AssessmentType, error)

	DimensionByName(ctx context.Context, name string) (*entity.Dimension, error)
	// DimensionNames lists the names of live dimensions of one assessment type
	DimensionNames(ctx context.Context, assessmentTypeID uint) ([]string, error)

	HollandCodeByCode(ctx context.Context, code string) (*entity.HollandCode, error)
	HollandKeyTraits(ctx context.Context, hollandCodeID uint) ([]string, error)

	PersonalityTypeByName(ctx context.Context, name string) (*entity.PersonalityType, error)
	PersonalityTraits(ctx context.Context, personalityTypeID uint) ([]entity.PersonalityTrait, error)
	PersonalityStrengths(ctx context.Context, personalityTypeID uint) ([]string, error)
	PersonalityWeaknesses(ctx context.Context, personalityTypeID uint) ([]string, error)

	ValueCategoryByName(ctx context.Context, name string) (*entity.ValueCategory, error)

	// Career lookups return names in insertion order
	CareersByHollandCode(ctx context.Context, hollandCodeID uint) ([]string, error)
	CareersByPersonalityType(ctx context.Context, personalityTypeID uint) ([]string, error)
	CareersByValueCategory(ctx context.Context, valueCategoryID uint) ([]string, error)
}
