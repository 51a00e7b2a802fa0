package service

import (
	"context"
	"learning_assistant_backend/internal/analysis"
	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/util"
	"learning_assistant_backend/pkg/logger"
	"learning_assistant_backend/pkg/monitoring"
	"learning_assistant_backend/pkg/tracing"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type AnalysisService struct {
	Tables     *analysis.Tables
	Classifier analysis.Classifier
	Records    PerformanceStore
	Snapshots  SnapshotStore
	now        func() time.Time
}

// NewAnalysisService wires the pipeline. snapshots may be nil when Redis is disabled.
func NewAnalysisService(tables *analysis.Tables, classifier analysis.Classifier, records PerformanceStore, snapshots SnapshotStore) *AnalysisService {
	return &AnalysisService{
		Tables:     tables,
		Classifier: classifier,
		Records:    records,
		Snapshots:  snapshots,
		now:        time.Now,
	}
}

func (s *AnalysisService) Analyze(ctx context.Context, req model.AnalyzeRequest) (*model.AnalysisResponse, error) {
	studentID := util.NormalizeStudentID(req.StudentID)
	subject := strings.TrimSpace(req.Subject)

	ctx, span := tracing.StartSpan(ctx, "AnalysisService.Analyze",
		attribute.String("student_id", studentID),
		attribute.String("subject", subject))
	defer span.End()

	if studentID == "" {
		return nil, &analysis.InvalidInputError{Field: "student_id", Reason: "must not be empty"}
	}
	if req.QuizScore == nil {
		return nil, &analysis.InvalidInputError{Field: "quiz_score", Reason: "is required"}
	}
	if req.Attendance == nil {
		return nil, &analysis.InvalidInputError{Field: "attendance", Reason: "is required"}
	}

	res, err := analysis.Run(s.Tables, s.Classifier, subject, *req.QuizScore, *req.Attendance)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	if !res.Vector.KnownSubject {
		monitoring.UnknownSubjectCounter.Inc()
		logger.Log.Warn("Subject not in vocabulary, using fallback encoding",
			zap.String("student_id", studentID),
			zap.String("subject", subject))
	}
	monitoring.AnalysisCounter.WithLabelValues(res.Prediction.Level.String()).Inc()
	for _, g := range res.Gaps {
		monitoring.GapCounter.WithLabelValues(string(g.Type), string(g.Severity)).Inc()
	}
	span.SetAttributes(
		attribute.String("performance_level", res.Prediction.Level.String()),
		attribute.Int("learning_gaps", len(res.Gaps)))

	s.persist(ctx, studentID, subject, res)

	return &model.AnalysisResponse{
		StudentID:            studentID,
		Subject:              subject,
		PerformanceLevel:     res.Prediction.Level,
		PredictionConfidence: res.Prediction.Confidence,
		LearningGaps:         res.Gaps,
		FeatureImportance:    res.Prediction.FeatureImportance,
	}, nil
}

// persist records history and refreshes the chat snapshot. Failures are logged
// and never surface to the caller.
func (s *AnalysisService) persist(ctx context.Context, studentID, subject string, res analysis.Result) {
	if s.Records != nil {
		record, err := model.NewAnalysisRecord(studentID, subject, res, s.now())
		if err == nil {
			err = s.Records.Create(ctx, record)
		}
		if err != nil {
			monitoring.PersistenceFailures.WithLabelValues("history").Inc()
			logger.Log.Error("Failed to store performance record",
				zap.String("student_id", studentID),
				zap.Error(err))
		}
	}

	if s.Snapshots != nil {
		if err := s.Snapshots.Set(ctx, studentID, snapshotFromResult(subject, res)); err != nil {
			monitoring.PersistenceFailures.WithLabelValues("snapshot").Inc()
			logger.Log.Warn("Failed to cache chat snapshot",
				zap.String("student_id", studentID),
				zap.Error(err))
		}
	}
}
