package entity

import (
	"time"

	"gorm.io/datatypes"
)

// UserTest is one assessment-taking session. It is created at the start of every
// submission, only ever updated to mark completion, and soft-deleted.
type UserTest struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UUID        string         `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	DraftData   datatypes.JSON `gorm:"type:jsonb" json:"draft_data,omitempty"`
	IsCompleted bool           `gorm:"not null;default:false" json:"is_completed"`
	IsDeleted   bool           `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (UserTest) TableName() string {
	return "user_tests"
}

// ScorePayload is the structured score stored for one dimension
type ScorePayload struct {
	Score      float64 `json:"score"`
	Percentage float64 `json:"percentage"`
}

// UserAssessmentScore is one row per (user, test session, dimension); immutable once written
type UserAssessmentScore struct {
	ID               uint                             `gorm:"primaryKey" json:"id"`
	UUID             string                           `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	UserID           uint                             `gorm:"not null;uniqueIndex:idx_user_test_dimension" json:"user_id"`
	UserTestID       uint                             `gorm:"not null;index;uniqueIndex:idx_user_test_dimension" json:"user_test_id"`
	UserTest         *UserTest                        `gorm:"foreignKey:UserTestID" json:"user_test,omitempty"`
	AssessmentTypeID uint                             `gorm:"not null;index" json:"assessment_type_id"`
	AssessmentType   *AssessmentType                  `gorm:"foreignKey:AssessmentTypeID" json:"assessment_type,omitempty"`
	DimensionID      uint                             `gorm:"not null;uniqueIndex:idx_user_test_dimension" json:"dimension_id"`
	Dimension        *Dimension                       `gorm:"foreignKey:DimensionID" json:"dimension,omitempty"`
	Score            datatypes.JSONType[ScorePayload] `gorm:"type:jsonb;not null" json:"score"`
	CreatedAt        time.Time                        `json:"created_at"`
}

func (UserAssessmentScore) TableName() string {
	return "user_assessment_scores"
}

// UserResponse is the write-once snapshot of a computed assessment result
type UserResponse struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	UUID             string         `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	UserID           uint           `gorm:"not null;index" json:"user_id"`
	UserTestID       uint           `gorm:"not null;uniqueIndex" json:"user_test_id"`
	AssessmentTypeID uint           `gorm:"not null;index" json:"assessment_type_id"`
	ResponseData     datatypes.JSON `gorm:"type:jsonb;not null" json:"response_data"`
	CreatedAt        time.Time      `json:"created_at"`
}

func (UserResponse) TableName() string {
	return "user_responses"
}

// UserFeedback is free-text feedback about an assessment family
type UserFeedback struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UUID             string    `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	User             *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AssessmentTypeID uint      `gorm:"not null;index" json:"assessment_type_id"`
	Feedback         string    `gorm:"type:text;not null" json:"feedback"`
	IsPromoted       bool      `gorm:"not null;default:false;index" json:"is_promoted"`
	IsDeleted        bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (UserFeedback) TableName() string {
	return "user_feedbacks"
}
