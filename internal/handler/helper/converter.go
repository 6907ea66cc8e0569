package helper

import (
	"github.com/yourusername/assessment-api/internal/domain/entity"
	"github.com/yourusername/assessment-api/internal/handler/dto"
)

// ToTestSummaries converts sessions for the history endpoint; never returns nil
func ToTestSummaries(tests []entity.UserTest) []dto.TestSummary {
	out := make([]dto.TestSummary, len(tests))
	for i, t := range tests {
		out[i] = dto.TestSummary{
			UUID:        t.UUID,
			Name:        t.Name,
			IsCompleted: t.IsCompleted,
			CreatedAt:   t.CreatedAt,
		}
	}
	return out
}

func ToFeedbackResponse(f entity.UserFeedback) dto.FeedbackResponse {
	resp := dto.FeedbackResponse{
		UUID:       f.UUID,
		Feedback:   f.Feedback,
		IsPromoted: f.IsPromoted,
		CreatedAt:  f.CreatedAt,
	}
	if f.User != nil {
		resp.Username = f.User.Username
		resp.Avatar = f.User.Avatar
	}
	return resp
}

func ToFeedbackResponses(feedbacks []entity.UserFeedback) []dto.FeedbackResponse {
	out := make([]dto.FeedbackResponse, len(feedbacks))
	for i, f := range feedbacks {
		out[i] = ToFeedbackResponse(f)
	}
	return out
}

// SanitizeForExcel prefixes values that a spreadsheet would evaluate as a formula
func SanitizeForExcel(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
