package controller

import (
	"context"
	"learning_assistant_backend/internal/service"
	"learning_assistant_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Dataset service.DatasetStats
}

func NewHealthController(db *gorm.DB, rdb *redis.Client, dataset service.DatasetStats) *HealthController {
	return &HealthController{DB: db, Redis: rdb, Dataset: dataset}
}

// @Summary 健康检查
// @Description 检查数据库、Redis和训练数据状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	components := gin.H{
		"database": "disabled",
		"redis":    "disabled",
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil || sqlDB.PingContext(reqCtx) != nil {
			util.ServiceUnavailable(ctx, "Database unavailable")
			return
		}
		components["database"] = "up"
	}

	// Redis only backs the chat snapshot, so an outage degrades rather than fails.
	if c.Redis != nil {
		components["redis"] = "up"
		if err := c.Redis.Ping(reqCtx).Err(); err != nil {
			components["redis"] = "down"
		}
	}

	util.Success(ctx, gin.H{
		"status":       "healthy",
		"model_loaded": c.Dataset.Loaded,
		"subjects":     len(c.Dataset.Subjects),
		"components":   components,
	})
}
