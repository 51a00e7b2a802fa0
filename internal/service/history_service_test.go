package service

import (
	"context"
	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPerformanceHistory(t *testing.T) {
	store := &fakeStore{records: []model.PerformanceRecord{
		{StudentID: "S1", Subject: "Mathematics", QuizScore: 60},
		{StudentID: "S2", Subject: "Science", QuizScore: 70},
		{StudentID: "S1", Subject: "Science", QuizScore: 80},
	}}
	svc := NewHistoryService(store)

	resp, err := svc.GetPerformanceHistory(context.Background(), " s1 ")
	require.NoError(t, err)
	assert.Equal(t, "S1", resp.StudentID)
	require.Len(t, resp.PerformanceHistory, 2)
	assert.Equal(t, "Mathematics", resp.PerformanceHistory[0].Subject)
	assert.Equal(t, "Science", resp.PerformanceHistory[1].Subject)

	_, err = svc.GetPerformanceHistory(context.Background(), "S9")
	assert.ErrorIs(t, err, util.ErrStudentNotFound)
}
