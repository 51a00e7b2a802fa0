package app

import (
	"learning_assistant_backend/docs"
	"learning_assistant_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/", c.info.Root)

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 成绩分析与建议
		api.POST("/analyze-performance", c.analysis.AnalyzePerformance)
		api.GET("/recommendations/:student_id", c.recommendation.GetRecommendations)

		// 学习助手
		api.POST("/chatbot", c.chat.Chat)

		// 学生历史
		api.GET("/students/:student_id/performance", c.student.GetPerformanceHistory)
	}
}
