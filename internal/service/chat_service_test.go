package service

import (
	"context"
	"learning_assistant_backend/internal/analysis"
	"learning_assistant_backend/internal/chatbot"
	"learning_assistant_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatUsesRequestContext(t *testing.T) {
	svc := NewChatService(chatbot.NewDefaultResponder(), &fakeStore{}, nil)
	level := analysis.Poor

	reply, err := svc.Chat(context.Background(), model.ChatRequest{
		Message: "How can I improve my math scores?",
		StudentContext: &chatbot.Context{
			Subject:          "Mathematics",
			PerformanceLevel: &level,
			LearningGaps: []analysis.LearningGap{
				{Type: analysis.LowQuizScore, Severity: analysis.SeverityHigh},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, chatbot.IntentImprovement, reply.Intent)
	assert.True(t, reply.ContextUsed)
	assert.Contains(t, reply.Response, string(analysis.LowQuizScore))
}

func TestChatFallsBackToSnapshotThenHistory(t *testing.T) {
	level := analysis.Good
	snaps := newFakeSnapshots()
	snaps.data["S1"] = &chatbot.Context{Subject: "Science", PerformanceLevel: &level}
	store := &fakeStore{records: []model.PerformanceRecord{
		{StudentID: "S2", Subject: "History", QuizScore: 30, Attendance: 90, Source: model.SourceDataset},
	}}
	svc := NewChatService(chatbot.NewDefaultResponder(), store, snaps)

	reply, err := svc.Chat(context.Background(), model.ChatRequest{Message: "how can I improve?", StudentID: "s1"})
	require.NoError(t, err)
	assert.True(t, reply.ContextUsed)
	assert.Contains(t, reply.Response, "Science")

	reply, err = svc.Chat(context.Background(), model.ChatRequest{Message: "how can I improve?", StudentID: "S2"})
	require.NoError(t, err)
	assert.True(t, reply.ContextUsed)
	assert.Contains(t, reply.Response, "History")
	assert.Contains(t, reply.Response, string(analysis.LowQuizScore))

	reply, err = svc.Chat(context.Background(), model.ChatRequest{Message: "how can I improve?", StudentID: "S3"})
	require.NoError(t, err)
	assert.False(t, reply.ContextUsed)
	assert.Equal(t, chatbot.IntentImprovement, reply.Intent)
}

func TestChatFallbackAndEmptyMessage(t *testing.T) {
	svc := NewChatService(chatbot.NewDefaultResponder(), nil, nil)

	reply, err := svc.Chat(context.Background(), model.ChatRequest{Message: "asdkjhaskjdh"})
	require.NoError(t, err)
	assert.Equal(t, chatbot.FallbackReply, reply.Response)
	assert.Equal(t, chatbot.IntentGeneral, reply.Intent)

	for _, msg := range []string{"", "   "} {
		reply, err = svc.Chat(context.Background(), model.ChatRequest{Message: msg, StudentID: "S1"})
		require.NoError(t, err)
		assert.Equal(t, chatbot.FallbackReply, reply.Response)
		assert.Equal(t, chatbot.IntentGeneral, reply.Intent)
	}
}
