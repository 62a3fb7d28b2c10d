package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/service"
)

// ChatHandler handles chat widget requests
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, h.chatService.Reply(c.Request.Context(), req.Text()))
}
