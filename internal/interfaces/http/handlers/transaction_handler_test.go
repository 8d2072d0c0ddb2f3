package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trade-admin.backend/internal/domain/entities"
	"trade-admin.backend/internal/interfaces/http/middleware"
	"trade-admin.backend/internal/usecases"
)

func newTransactionRouter(txRepo *txRepoStub, adminID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTransactionHandler(usecases.NewTransactionUsecase(txRepo))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextAdminID, adminID)
		c.Next()
	})
	txs := r.Group("/api/v1/transactions")
	{
		txs.GET("", h.List)
		txs.GET("/:id", h.Get)
		txs.PATCH("/:id", h.Update)
		txs.POST("/:id/approve", h.Approve)
		txs.POST("/:id/reject", h.Reject)
	}
	return r
}

func TestTransactionHandler_List_ParsesUserID(t *testing.T) {
	userID := uuid.New()
	var captured entities.TransactionFilter
	txRepo := &txRepoStub{
		listFn: func(_ context.Context, filter entities.TransactionFilter, _, _ int) ([]*entities.Transaction, int64, error) {
			captured = filter
			return []*entities.Transaction{}, 0, nil
		},
	}
	r := newTransactionRouter(txRepo, uuid.New())

	w := doJSON(t, r, http.MethodGet, "/api/v1/transactions?userId="+userID.String()+"&type=deposit", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, captured.UserID)
	assert.Equal(t, userID, *captured.UserID)
	assert.Equal(t, entities.TransactionTypeDeposit, captured.Type)
}

func TestTransactionHandler_List_MalformedUserID(t *testing.T) {
	r := newTransactionRouter(&txRepoStub{}, uuid.New())

	w := doJSON(t, r, http.MethodGet, "/api/v1/transactions?userId=12345", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionHandler_Approve(t *testing.T) {
	id := uuid.New()
	adminID := uuid.New()
	txRepo := &txRepoStub{
		getByIDFn: func(_ context.Context, txID uuid.UUID) (*entities.Transaction, error) {
			return &entities.Transaction{ID: txID, Status: entities.TransactionStatusPending}, nil
		},
		updateFn: func(_ context.Context, txID uuid.UUID, patch *entities.TransactionPatch) (*entities.Transaction, error) {
			return &entities.Transaction{ID: txID, Status: *patch.Status}, nil
		},
	}
	r := newTransactionRouter(txRepo, adminID)

	w := doJSON(t, r, http.MethodPost, "/api/v1/transactions/"+id.String()+"/approve", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"completed"`)
}

func TestTransactionHandler_Approve_NonPending(t *testing.T) {
	id := uuid.New()
	txRepo := &txRepoStub{
		getByIDFn: func(_ context.Context, txID uuid.UUID) (*entities.Transaction, error) {
			return &entities.Transaction{ID: txID, Status: entities.TransactionStatusFailed}, nil
		},
	}
	r := newTransactionRouter(txRepo, uuid.New())

	w := doJSON(t, r, http.MethodPost, "/api/v1/transactions/"+id.String()+"/approve", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
