package service

import (
	"context"
	"learning_assistant_backend/internal/chatbot"
	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/util"
	"learning_assistant_backend/pkg/logger"
	"learning_assistant_backend/pkg/monitoring"
	"learning_assistant_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type ChatService struct {
	Responder *chatbot.Responder
	Records   PerformanceStore
	Snapshots SnapshotStore
}

func NewChatService(responder *chatbot.Responder, records PerformanceStore, snapshots SnapshotStore) *ChatService {
	return &ChatService{
		Responder: responder,
		Records:   records,
		Snapshots: snapshots,
	}
}

func (s *ChatService) Chat(ctx context.Context, req model.ChatRequest) (*chatbot.Reply, error) {
	ctx, span := tracing.StartSpan(ctx, "ChatService.Chat")
	defer span.End()

	studentID := util.NormalizeStudentID(req.StudentID)
	studentCtx := req.StudentContext
	if studentCtx == nil && studentID != "" {
		studentCtx = s.lookupContext(ctx, studentID)
	}

	reply := s.Responder.Respond(req.Message, studentCtx)

	monitoring.ChatIntentCounter.WithLabelValues(string(reply.Intent)).Inc()
	if reply.Guarded {
		monitoring.ChatGuardCounter.Inc()
		logger.Log.Warn("Chat reply replaced by fallback after denylist check",
			zap.String("student_id", studentID))
	}
	span.SetAttributes(
		attribute.String("intent", string(reply.Intent)),
		attribute.Bool("context_used", reply.ContextUsed))

	return &reply, nil
}

// lookupContext tries the cached snapshot first, then the latest stored record.
// Lookup failures degrade to a generic reply.
func (s *ChatService) lookupContext(ctx context.Context, studentID string) *chatbot.Context {
	if s.Snapshots != nil {
		snap, err := s.Snapshots.Get(ctx, studentID)
		if err != nil {
			logger.Log.Warn("Failed to read chat snapshot", zap.String("student_id", studentID), zap.Error(err))
		} else if snap != nil {
			return snap
		}
	}

	if s.Records == nil {
		return nil
	}
	latest, err := s.Records.Latest(ctx, studentID, "")
	if err != nil {
		logger.Log.Warn("Failed to load latest record for chat", zap.String("student_id", studentID), zap.Error(err))
		return nil
	}
	if latest == nil {
		return nil
	}
	return snapshotFromRecord(latest)
}
