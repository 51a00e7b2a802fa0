package service

import (
	"context"
	"learning_assistant_backend/internal/analysis"
	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/recommend"
	"learning_assistant_backend/internal/util"
	"learning_assistant_backend/pkg/logger"
	"learning_assistant_backend/pkg/tracing"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type RecommendationService struct {
	Tables     *analysis.Tables
	Classifier analysis.Classifier
	Records    PerformanceStore
}

func NewRecommendationService(tables *analysis.Tables, classifier analysis.Classifier, records PerformanceStore) *RecommendationService {
	return &RecommendationService{
		Tables:     tables,
		Classifier: classifier,
		Records:    records,
	}
}

// GetRecommendations analyzes the given values and turns the result into a
// ranked list and a four-week plan. Values the caller leaves out come from the
// student's most recent record; util.ErrStudentNotFound is returned when there is none.
func (s *RecommendationService) GetRecommendations(ctx context.Context, q model.RecommendationQuery) (*model.RecommendationResponse, error) {
	studentID := util.NormalizeStudentID(q.StudentID)
	subject := strings.TrimSpace(q.Subject)

	ctx, span := tracing.StartSpan(ctx, "RecommendationService.GetRecommendations",
		attribute.String("student_id", studentID))
	defer span.End()

	if studentID == "" {
		return nil, &analysis.InvalidInputError{Field: "student_id", Reason: "must not be empty"}
	}

	quiz, att := q.QuizScore, q.Attendance
	if subject == "" || quiz == nil || att == nil {
		latest, err := s.Records.Latest(ctx, studentID, subject)
		if err != nil {
			tracing.RecordError(span, err)
			return nil, err
		}
		if latest == nil {
			return nil, util.ErrStudentNotFound
		}
		if subject == "" {
			subject = latest.Subject
		}
		if quiz == nil {
			quiz = &latest.QuizScore
		}
		if att == nil {
			att = &latest.Attendance
		}
		logger.Log.Debug("Filled recommendation inputs from history",
			zap.String("student_id", studentID),
			zap.String("record_id", latest.ID))
	}

	res, err := analysis.Run(s.Tables, s.Classifier, subject, *quiz, *att)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	recs := recommend.Recommend(res.Prediction.Level, res.Gaps, subject)
	span.SetAttributes(attribute.Int("recommendations", len(recs)))

	return &model.RecommendationResponse{
		StudentID:        studentID,
		Subject:          subject,
		PerformanceLevel: res.Prediction.Level,
		Recommendations:  recs,
		StudyPlan:        recommend.BuildPlan(studentID, recs),
	}, nil
}
