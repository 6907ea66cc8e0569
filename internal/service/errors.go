package service

import (
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
)

// Cache keys
const (
	promotedFeedbackKey = "feedback:promoted"
)

func resultCacheKey(userID uint, testUUID string) string {
	return fmt.Sprintf("assessment:result:%d:%s", userID, testUUID)
}

// parseUUID normalizes a client supplied identifier
func parseUUID(field, raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", &apperrors.InvalidInputError{Field: field, Reason: "must be a UUID"}
	}
	return id.String(), nil
}
