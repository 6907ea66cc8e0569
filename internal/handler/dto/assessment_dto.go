package dto

import "time"

// SubmitAssessmentRequest carries questionnaire answers keyed by question code
type SubmitAssessmentRequest struct {
	Responses map[string]float64 `json:"responses" binding:"required"`
}

// TestSummary is one entry of a user's assessment history
type TestSummary struct {
	UUID        string    `json:"uuid"`
	Name        string    `json:"name"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// PaginatedTestsResponse is a page of TestSummary
type PaginatedTestsResponse struct {
	Items    []TestSummary `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}
