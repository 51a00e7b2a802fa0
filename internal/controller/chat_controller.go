package controller

import (
	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/service"
	"learning_assistant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// @Summary 学习助手对话
// @Description 基于关键词的学习助手回复，可选学生上下文
// @Tags 对话
// @Accept json
// @Produce json
// @Param request body model.ChatRequest true "消息"
// @Success 200 {object} util.Response{data=chatbot.Reply}
// @Failure 400 {object} util.Response
// @Router /api/chatbot [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	var req model.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.ChatService.Chat(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, reply)
}
