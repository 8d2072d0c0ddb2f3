package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/pkg/logger"
	"trade-admin.backend/pkg/utils"
)

// Body is the uniform response envelope
type Body struct {
	Success bool                  `json:"success"`
	Data    interface{}           `json:"data,omitempty"`
	Error   *ErrorBody            `json:"error,omitempty"`
	Meta    *utils.PaginationMeta `json:"meta,omitempty"`
}

// ErrorBody carries the machine-readable error kind plus a human message
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// OK writes a 200 response with data
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

// Created writes a 201 response with data
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Body{Success: true, Data: data})
}

// Paginated writes a 200 response with data and pagination metadata
func Paginated(c *gin.Context, data interface{}, meta utils.PaginationMeta) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data, Meta: &meta})
}

// Error maps an error to its HTTP status and writes the error envelope.
// Unclassified errors become 500s and are logged with their cause.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error(c.Request.Context(), "request failed", zap.Error(err))
		}
		c.JSON(appErr.Status, Body{
			Success: false,
			Error:   &ErrorBody{Kind: appErr.Kind, Message: appErr.Message},
		})
		return
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		c.JSON(http.StatusNotFound, Body{
			Success: false,
			Error:   &ErrorBody{Kind: "not_found", Message: "resource not found"},
		})
	case errors.Is(err, domainerrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, Body{
			Success: false,
			Error:   &ErrorBody{Kind: "validation_error", Message: err.Error()},
		})
	case errors.Is(err, domainerrors.ErrUnauthorized), errors.Is(err, domainerrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, Body{
			Success: false,
			Error:   &ErrorBody{Kind: "unauthorized", Message: "unauthorized"},
		})
	default:
		logger.Error(c.Request.Context(), "request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Body{
			Success: false,
			Error:   &ErrorBody{Kind: "storage_unavailable", Message: "internal server error"},
		})
	}
}

// BadRequest writes a 400 validation error, used for malformed request
// payloads and query parameters.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Body{
		Success: false,
		Error:   &ErrorBody{Kind: "validation_error", Message: message},
	})
}
