package entity

import (
	"time"
)

// AssessmentType identifies an assessment family ("Interests", "Personality", "Values")
type AssessmentType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UUID        string    `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the GORM table name
func (AssessmentType) TableName() string {
	return "assessment_types"
}

// Dimension is a scored axis of an assessment family ("Realistic", "Work-Life Balance Score")
type Dimension struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UUID             string    `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	Name             string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description      string    `gorm:"type:text;not null;default:''" json:"description"`
	AssessmentTypeID uint      `gorm:"not null;index" json:"assessment_type_id"`
	IsDeleted        bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Dimension) TableName() string {
	return "dimensions"
}

// HollandCode is the classification produced by the interest model
type HollandCode struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UUID        string    `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	Code        string    `gorm:"size:20;not null;uniqueIndex" json:"code"`
	Type        string    `gorm:"size:100;not null" json:"type"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (HollandCode) TableName() string {
	return "holland_codes"
}

// HollandKeyTrait is one descriptive trait of a Holland code
type HollandKeyTrait struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	HollandCodeID uint   `gorm:"not null;index" json:"holland_code_id"`
	KeyTrait      string `gorm:"size:255;not null" json:"key_trait"`
}

func (HollandKeyTrait) TableName() string {
	return "holland_key_traits"
}

// PersonalityType is the classification produced by the personality model
type PersonalityType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UUID        string    `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	Name        string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Title       string    `gorm:"size:255;not null;default:''" json:"title"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (PersonalityType) TableName() string {
	return "personality_types"
}

// PersonalityTrait is a positive or negative trait of a personality type
type PersonalityTrait struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	PersonalityTypeID uint   `gorm:"not null;index" json:"personality_type_id"`
	Trait             string `gorm:"size:255;not null" json:"trait"`
	IsPositive        bool   `gorm:"not null;default:true" json:"is_positive"`
}

func (PersonalityTrait) TableName() string {
	return "personality_traits"
}

type PersonalityStrength struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	PersonalityTypeID uint   `gorm:"not null;index" json:"personality_type_id"`
	Strength          string `gorm:"size:255;not null" json:"strength"`
}

func (PersonalityStrength) TableName() string {
	return "personality_strengths"
}

type PersonalityWeakness struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	PersonalityTypeID uint   `gorm:"not null;index" json:"personality_type_id"`
	Weakness          string `gorm:"size:255;not null" json:"weakness"`
}

func (PersonalityWeakness) TableName() string {
	return "personality_weaknesses"
}

// ValueCategory is a work value featured in the value assessment
type ValueCategory struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UUID            string    `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	Name            string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Definition      string    `gorm:"type:text;not null;default:''" json:"definition"`
	Characteristics string    `gorm:"type:text;not null;default:''" json:"characteristics"`
	IsDeleted       bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (ValueCategory) TableName() string {
	return "value_categories"
}

// Career is a recommended occupation. Exactly one of the classification
// foreign keys is expected to be set.
type Career struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UUID              string    `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	Name              string    `gorm:"size:255;not null" json:"name"`
	HollandCodeID     *uint     `gorm:"index" json:"holland_code_id,omitempty"`
	PersonalityTypeID *uint     `gorm:"index" json:"personality_type_id,omitempty"`
	ValueCategoryID   *uint     `gorm:"index" json:"value_category_id,omitempty"`
	IsDeleted         bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Career) TableName() string {
	return "careers"
}
