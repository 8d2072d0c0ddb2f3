package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"trade-admin.backend/internal/domain/entities"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/internal/interfaces/http/middleware"
	"trade-admin.backend/internal/interfaces/http/response"
	"trade-admin.backend/internal/usecases"
	"trade-admin.backend/pkg/utils"
)

// TransactionHandler handles transaction review endpoints
type TransactionHandler struct {
	txUsecase *usecases.TransactionUsecase
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txUsecase *usecases.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{txUsecase: txUsecase}
}

// List handles GET /transactions
func (h *TransactionHandler) List(c *gin.Context) {
	var filter entities.TransactionFilter
	filter.Type = entities.TransactionType(c.Query("type"))
	filter.Status = entities.TransactionStatus(c.Query("status"))

	if raw := c.Query("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, fmt.Sprintf("parameter userId must be a uuid, got %q", raw))
			return
		}
		filter.UserID = &userID
	}

	page, err := queryInt(c, "page", 1)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	limit, err := queryInt(c, "limit", utils.DefaultLimit)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	txs, total, err := h.txUsecase.ListTransactions(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	p := utils.GetPaginationParams(page, limit)
	response.Paginated(c, txs, utils.CalculateMeta(total, p.Page, p.Limit))
}

// Get handles GET /transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tx, err := h.txUsecase.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tx)
}

// Update handles PATCH /transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var patch entities.TransactionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tx, err := h.txUsecase.UpdateTransaction(c.Request.Context(), id, &patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tx)
}

// Approve handles POST /transactions/:id/approve
func (h *TransactionHandler) Approve(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	adminID, ok := middleware.AdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing admin identity"))
		return
	}

	tx, err := h.txUsecase.ApproveTransaction(c.Request.Context(), id, adminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tx)
}

// Reject handles POST /transactions/:id/reject
func (h *TransactionHandler) Reject(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	adminID, ok := middleware.AdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing admin identity"))
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&body)

	tx, err := h.txUsecase.RejectTransaction(c.Request.Context(), id, adminID, body.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tx)
}
