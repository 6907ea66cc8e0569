package dto

import "time"

// CreateFeedbackRequest is the body of POST /feedbacks
type CreateFeedbackRequest struct {
	AssessmentTypeUUID string `json:"assessment_type_uuid" binding:"required"`
	Feedback           string `json:"feedback" binding:"required"`
}

// FeedbackResponse exposes feedback without account details beyond the author's username
type FeedbackResponse struct {
	UUID       string    `json:"uuid"`
	Username   string    `json:"username,omitempty"`
	Avatar     string    `json:"avatar,omitempty"`
	Feedback   string    `json:"feedback"`
	IsPromoted bool      `json:"is_promoted"`
	CreatedAt  time.Time `json:"created_at"`
}
