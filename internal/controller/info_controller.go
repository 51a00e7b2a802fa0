package controller

import (
	"learning_assistant_backend/internal/service"
	"learning_assistant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InfoController struct {
	Dataset service.DatasetStats
}

func NewInfoController(dataset service.DatasetStats) *InfoController {
	return &InfoController{Dataset: dataset}
}

// @Summary 服务信息
// @Description 服务名称、版本和可用接口
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router / [get]
func (c *InfoController) Root(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"message": util.ServiceName,
		"version": util.ServiceVersion,
		"status":  "running",
		"dataset": c.Dataset,
		"endpoints": gin.H{
			"analyze":         "/api/analyze-performance",
			"recommendations": "/api/recommendations/{student_id}",
			"chatbot":         "/api/chatbot",
			"history":         "/api/students/{student_id}/performance",
			"health":          "/api/health",
			"docs":            "/swagger/index.html",
		},
	})
}
