package controller

import (
	"learning_assistant_backend/internal/service"
	"learning_assistant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	HistoryService *service.HistoryService
}

func NewStudentController(historyService *service.HistoryService) *StudentController {
	return &StudentController{HistoryService: historyService}
}

// @Summary 学生成绩历史
// @Description 按时间顺序返回学生的成绩记录
// @Tags 学生
// @Produce json
// @Param student_id path string true "学生ID"
// @Success 200 {object} util.Response{data=model.PerformanceHistoryResponse}
// @Failure 404 {object} util.Response
// @Router /api/students/{student_id}/performance [get]
func (c *StudentController) GetPerformanceHistory(ctx *gin.Context) {
	resp, err := c.HistoryService.GetPerformanceHistory(ctx.Request.Context(), ctx.Param("student_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}
