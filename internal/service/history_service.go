package service

import (
	"context"
	"learning_assistant_backend/internal/analysis"
	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/util"
	"learning_assistant_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type HistoryService struct {
	Records PerformanceStore
}

func NewHistoryService(records PerformanceStore) *HistoryService {
	return &HistoryService{Records: records}
}

// GetPerformanceHistory returns the stored records oldest first, or
// util.ErrStudentNotFound when the student has none.
func (s *HistoryService) GetPerformanceHistory(ctx context.Context, studentID string) (*model.PerformanceHistoryResponse, error) {
	studentID = util.NormalizeStudentID(studentID)
	if studentID == "" {
		return nil, &analysis.InvalidInputError{Field: "student_id", Reason: "must not be empty"}
	}

	ctx, span := tracing.StartSpan(ctx, "HistoryService.GetPerformanceHistory",
		attribute.String("student_id", studentID))
	defer span.End()

	records, err := s.Records.ListByStudent(ctx, studentID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	if len(records) == 0 {
		return nil, util.ErrStudentNotFound
	}

	return &model.PerformanceHistoryResponse{
		StudentID:          studentID,
		PerformanceHistory: records,
	}, nil
}
