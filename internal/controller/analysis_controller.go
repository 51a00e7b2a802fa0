package controller

import (
	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/service"
	"learning_assistant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	AnalysisService *service.AnalysisService
}

func NewAnalysisController(analysisService *service.AnalysisService) *AnalysisController {
	return &AnalysisController{AnalysisService: analysisService}
}

// @Summary 成绩分析
// @Description 预测学生表现等级并识别学习差距
// @Tags 分析
// @Accept json
// @Produce json
// @Param request body model.AnalyzeRequest true "学生成绩数据"
// @Success 200 {object} util.Response{data=model.AnalysisResponse}
// @Failure 400 {object} util.Response
// @Router /api/analyze-performance [post]
func (c *AnalysisController) AnalyzePerformance(ctx *gin.Context) {
	var req model.AnalyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.AnalysisService.Analyze(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}
