package controller

import (
	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/service"
	"learning_assistant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// @Summary 获取学习建议
// @Description 生成个性化建议和四周学习计划，缺省的成绩数据取自最近一次记录
// @Tags 建议
// @Produce json
// @Param student_id path string true "学生ID"
// @Param subject query string false "科目"
// @Param quiz_score query number false "测验成绩"
// @Param attendance query number false "出勤率"
// @Success 200 {object} util.Response{data=model.RecommendationResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/recommendations/{student_id} [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	quiz, err := util.ParseOptionalFloat("quiz_score", ctx.Query("quiz_score"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	attendance, err := util.ParseOptionalFloat("attendance", ctx.Query("attendance"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.RecommendationService.GetRecommendations(ctx.Request.Context(), model.RecommendationQuery{
		StudentID:  ctx.Param("student_id"),
		Subject:    ctx.Query("subject"),
		QuizScore:  quiz,
		Attendance: attendance,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}
