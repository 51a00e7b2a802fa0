package service

import (
	"context"
	"learning_assistant_backend/internal/analysis"
	"learning_assistant_backend/internal/chatbot"
	"learning_assistant_backend/internal/model"
)

// PerformanceStore is the history persistence used by the services.
// repository.PerformanceRepository implements it.
type PerformanceStore interface {
	Create(ctx context.Context, record *model.PerformanceRecord) error
	CreateBatch(ctx context.Context, records []model.PerformanceRecord) error
	Count(ctx context.Context) (int64, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.PerformanceRecord, error)
	Latest(ctx context.Context, studentID, subject string) (*model.PerformanceRecord, error)
}

// SnapshotStore caches the chat context of a student's last analysis.
// repository.SnapshotCache implements it.
type SnapshotStore interface {
	Set(ctx context.Context, studentID string, snapshot *chatbot.Context) error
	Get(ctx context.Context, studentID string) (*chatbot.Context, error)
}

func snapshotFromResult(subject string, res analysis.Result) *chatbot.Context {
	level := res.Prediction.Level
	quiz, att := res.Vector.QuizScore, res.Vector.Attendance
	return &chatbot.Context{
		Subject:          subject,
		PerformanceLevel: &level,
		LearningGaps:     res.Gaps,
		QuizScore:        &quiz,
		Attendance:       &att,
	}
}

// snapshotFromRecord rebuilds a chat context from stored history. Dataset rows
// without a stored level get their gaps recomputed from the raw values.
func snapshotFromRecord(rec *model.PerformanceRecord) *chatbot.Context {
	quiz, att := rec.QuizScore, rec.Attendance
	c := &chatbot.Context{
		Subject:    rec.Subject,
		QuizScore:  &quiz,
		Attendance: &att,
	}
	if level, ok := rec.Level(); ok {
		c.PerformanceLevel = &level
	}
	if rec.Source == model.SourceAnalysis {
		c.LearningGaps = rec.Gaps()
	} else {
		c.LearningGaps = analysis.IdentifyGaps(analysis.Clamp(quiz), analysis.Clamp(att))
	}
	return c
}
