package handlers

import (
	"github.com/gin-gonic/gin"
	"trade-admin.backend/internal/domain/entities"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/internal/interfaces/http/middleware"
	"trade-admin.backend/internal/interfaces/http/response"
	"trade-admin.backend/internal/usecases"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	auth, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, auth)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, ok := middleware.AdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing admin identity"))
		return
	}

	admin, err := h.authUsecase.GetMe(c.Request.Context(), adminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, admin)
}
