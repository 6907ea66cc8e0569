package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/assessment-api/internal/domain/entity"
)

// ReferenceRepo implements repository.ReferenceRepository
type ReferenceRepo struct {
	db *gorm.DB
}

// NewReferenceRepo creates the catalog repository
func NewReferenceRepo(db *gorm.DB) *ReferenceRepo {
	return &ReferenceRepo{db: db}
}

func (r *ReferenceRepo) AssessmentTypeByName(ctx context.Context, name string) (*entity.AssessmentType, error) {
	var at entity.AssessmentType
	err := r.db.WithContext(ctx).Where("name = ? AND is_deleted = ?", name, false).First(&at).Error
	if err != nil {
		return nil, dbError("find assessment type", err)
	}
	return &at, nil
}

func (r *ReferenceRepo) AssessmentTypeByUUID(ctx context.Context, uuid string) (*entity.AssessmentType, error) {
	var at entity.AssessmentType
	err := r.db.WithContext(ctx).Where("uuid = ? AND is_deleted = ?", uuid, false).First(&at).Error
	if err != nil {
		return nil, dbError("find assessment type", err)
	}
	return &at, nil
}

func (r *ReferenceRepo) DimensionByName(ctx context.Context, name string) (*entity.Dimension, error) {
	var dim entity.Dimension
	err := r.db.WithContext(ctx).Where("name = ? AND is_deleted = ?", name, false).First(&dim).Error
	if err != nil {
		return nil, dbError("find dimension", err)
	}
	return &dim, nil
}

func (r *ReferenceRepo) DimensionNames(ctx context.Context, assessmentTypeID uint) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&entity.Dimension{}).
		Where("assessment_type_id = ? AND is_deleted = ?", assessmentTypeID, false).
		Order("id").
		Pluck("name", &names).Error
	return names, dbError("list dimensions", err)
}

func (r *ReferenceRepo) HollandCodeByCode(ctx context.Context, code string) (*entity.HollandCode, error) {
	var hc entity.HollandCode
	err := r.db.WithContext(ctx).Where("code = ? AND is_deleted = ?", code, false).First(&hc).Error
	if err != nil {
		return nil, dbError("find holland code", err)
	}
	return &hc, nil
}

func (r *ReferenceRepo) HollandKeyTraits(ctx context.Context, hollandCodeID uint) ([]string, error) {
	var traits []string
	err := r.db.WithContext(ctx).Model(&entity.HollandKeyTrait{}).
		Where("holland_code_id = ?", hollandCodeID).
		Order("id").
		Pluck("key_trait", &traits).Error
	return traits, dbError("list holland key traits", err)
}

func (r *ReferenceRepo) PersonalityTypeByName(ctx context.Context, name string) (*entity.PersonalityType, error) {
	var pt entity.PersonalityType
	err := r.db.WithContext(ctx).Where("name = ? AND is_deleted = ?", name, false).First(&pt).Error
	if err != nil {
		return nil, dbError("find personality type", err)
	}
	return &pt, nil
}

func (r *ReferenceRepo) PersonalityTraits(ctx context.Context, personalityTypeID uint) ([]entity.PersonalityTrait, error) {
	var traits []entity.PersonalityTrait
	err := r.db.WithContext(ctx).
		Where("personality_type_id = ?", personalityTypeID).
		Order("id").
		Find(&traits).Error
	return traits, dbError("list personality traits", err)
}

func (r *ReferenceRepo) PersonalityStrengths(ctx context.Context, personalityTypeID uint) ([]string, error) {
	var strengths []string
	err := r.db.WithContext(ctx).Model(&entity.PersonalityStrength{}).
		Where("personality_type_id = ?", personalityTypeID).
		Order("id").
		Pluck("strength", &strengths).Error
	return strengths, dbError("list personality strengths", err)
}

func (r *ReferenceRepo) PersonalityWeaknesses(ctx context.Context, personalityTypeID uint) ([]string, error) {
	var weaknesses []string
	err := r.db.WithContext(ctx).Model(&entity.PersonalityWeakness{}).
		Where("personality_type_id = ?", personalityTypeID).
		Order("id").
		Pluck("weakness", &weaknesses).Error
	return weaknesses, dbError("list personality weaknesses", err)
}

func (r *ReferenceRepo) ValueCategoryByName(ctx context.Context, name string) (*entity.ValueCategory, error) {
	var vc entity.ValueCategory
	err := r.db.WithContext(ctx).Where("name = ? AND is_deleted = ?", name, false).First(&vc).Error
	if err != nil {
		return nil, dbError("find value category", err)
	}
	return &vc, nil
}

func (r *ReferenceRepo) CareersByHollandCode(ctx context.Context, hollandCodeID uint) ([]string, error) {
	return r.careers(ctx, "holland_code_id", hollandCodeID)
}

func (r *ReferenceRepo) CareersByPersonalityType(ctx context.Context, personalityTypeID uint) ([]string, error) {
	return r.careers(ctx, "personality_type_id", personalityTypeID)
}

func (r *ReferenceRepo) CareersByValueCategory(ctx context.Context, valueCategoryID uint) ([]string, error) {
	return r.careers(ctx, "value_category_id", valueCategoryID)
}

// careers lists career names by one classification column, in insertion order
func (r *ReferenceRepo) careers(ctx context.Context, column string, id uint) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&entity.Career{}).
		Where(column+" = ? AND is_deleted = ?", id, false).
		Order("id").
		Pluck("name", &names).Error
	return names, dbError("list careers", err)
}
