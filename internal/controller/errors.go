package controller

import (
	"errors"
	"learning_assistant_backend/internal/analysis"
	"learning_assistant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the response envelope.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, analysis.ErrInvalidInput):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrStudentNotFound):
		util.NotFound(ctx, "Student not found")
	default:
		util.LogInternalError(ctx, err)
	}
}
