package handlers

import (
	"github.com/gin-gonic/gin"
	"trade-admin.backend/internal/domain/entities"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/internal/interfaces/http/middleware"
	"trade-admin.backend/internal/interfaces/http/response"
	"trade-admin.backend/internal/usecases"
)

// ChatHandler handles support-chat endpoints
type ChatHandler struct {
	chatUsecase *usecases.ChatUsecase
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatUsecase *usecases.ChatUsecase) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase}
}

// Conversations handles GET /chat/conversations
func (h *ChatHandler) Conversations(c *gin.Context) {
	conversations, err := h.chatUsecase.ListConversations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, conversations)
}

// Messages handles GET /chat/conversations/:id, where :id is the user id.
func (h *ChatHandler) Messages(c *gin.Context) {
	userID, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	messages, err := h.chatUsecase.GetConversation(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, messages)
}

// Send handles POST /chat/messages
func (h *ChatHandler) Send(c *gin.Context) {
	var input entities.CreateChatMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	adminID, ok := middleware.AdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing admin identity"))
		return
	}

	msg, err := h.chatUsecase.SendAdminReply(c.Request.Context(), &input, adminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, msg)
}
