package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yourusername/assessment-api/internal/domain/entity"
	"github.com/yourusername/assessment-api/internal/handler/helper"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportUserScores streams every score of a user's live tests as an xlsx workbook
func (h *AssessmentHandler) ExportUserScores(c *gin.Context) {
	user, scores, err := h.results.UserScores(c.Request.Context(), c.GetString("user_uuid"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	buf, err := buildScoresWorkbook(scores)
	if err != nil {
		h.logger.Error("failed to build export", zap.String("user_uuid", user.UUID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file", "error_type": "internal"})
		return
	}

	filename := fmt.Sprintf("assessments_%s.xlsx", user.UUID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func buildScoresWorkbook(scores []entity.UserAssessmentScore) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Scores"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, fmt.Errorf("create stream writer: %w", err)
	}

	headers := []interface{}{"Test UUID", "Test Name", "Assessment Type", "Dimension", "Score", "Percentage", "Recorded At"}
	if err := sw.SetRow("A1", headers); err != nil {
		return nil, fmt.Errorf("write headers: %w", err)
	}

	for i, s := range scores {
		var testUUID, testName, assessmentType, dimension string
		if s.UserTest != nil {
			testUUID = s.UserTest.UUID
			testName = helper.SanitizeForExcel(s.UserTest.Name)
		}
		if s.AssessmentType != nil {
			assessmentType = helper.SanitizeForExcel(s.AssessmentType.Name)
		}
		if s.Dimension != nil {
			dimension = helper.SanitizeForExcel(s.Dimension.Name)
		}
		payload := s.Score.Data()
		row := []interface{}{
			testUUID,
			testName,
			assessmentType,
			dimension,
			payload.Score,
			payload.Percentage,
			s.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	return f.WriteToBuffer()
}
