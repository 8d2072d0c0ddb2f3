package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"trade-admin.backend/internal/domain/entities"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/internal/interfaces/http/middleware"
	"trade-admin.backend/internal/interfaces/http/response"
	"trade-admin.backend/internal/usecases"
	"trade-admin.backend/pkg/utils"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase *usecases.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// List handles GET /users. Every filter is a query parameter; a malformed
// value is the caller's error, never silently dropped.
func (h *UserHandler) List(c *gin.Context) {
	filter, err := parseUserFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
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

	users, total, err := h.userUsecase.ListUsers(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	p := utils.GetPaginationParams(page, limit)
	response.Paginated(c, users, utils.CalculateMeta(total, p.Page, p.Limit))
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userUsecase.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userUsecase.CreateUser(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// Update handles PATCH /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var patch entities.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userUsecase.UpdateUser(c.Request.Context(), id, &patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.userUsecase.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// Suspend handles POST /users/:id/suspend
func (h *UserHandler) Suspend(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	// The body is optional; a bare suspend carries no reason.
	_ = c.ShouldBindJSON(&body)

	user, err := h.userUsecase.SuspendUser(c.Request.Context(), id, body.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Activate handles POST /users/:id/activate
func (h *UserHandler) Activate(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userUsecase.ActivateUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// AdjustBalance handles POST /users/:id/balance
func (h *UserHandler) AdjustBalance(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var input entities.BalanceAdjustmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	adminID, ok := middleware.AdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing admin identity"))
		return
	}

	tx, err := h.userUsecase.AdjustBalance(c.Request.Context(), id, &input, adminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tx)
}

// BulkStatus handles POST /users/bulk/status
func (h *UserHandler) BulkStatus(c *gin.Context) {
	var body struct {
		UserIDs []uuid.UUID         `json:"userIds" binding:"required"`
		Status  entities.UserStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	affected, err := h.userUsecase.BulkUpdateStatus(c.Request.Context(), body.UserIDs, body.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"affectedCount": affected})
}

// BulkVerify handles POST /users/bulk/verify
func (h *UserHandler) BulkVerify(c *gin.Context) {
	var body struct {
		UserIDs []uuid.UUID `json:"userIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	affected, err := h.userUsecase.BulkVerifyUsers(c.Request.Context(), body.UserIDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"affectedCount": affected})
}

func parseUserFilter(c *gin.Context) (entities.UserFilter, error) {
	var filter entities.UserFilter

	filter.Status = entities.UserStatus(c.Query("status"))
	filter.KYCStatus = entities.KYCStatus(c.Query("kycStatus"))
	filter.RiskLevel = entities.RiskLevel(c.Query("riskLevel"))
	filter.Country = c.Query("country")
	filter.SearchTerm = c.Query("search")

	verified, err := queryBool(c, "verified")
	if err != nil {
		return filter, err
	}
	filter.Verified = verified

	if filter.MinBalance, err = queryFloat(c, "minBalance"); err != nil {
		return filter, err
	}
	if filter.MaxBalance, err = queryFloat(c, "maxBalance"); err != nil {
		return filter, err
	}
	if filter.RegisteredAfter, err = queryTime(c, "registeredAfter"); err != nil {
		return filter, err
	}
	if filter.RegisteredBefore, err = queryTime(c, "registeredBefore"); err != nil {
		return filter, err
	}
	return filter, nil
}

func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return id, nil
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %s must be an integer, got %q", name, raw)
	}
	return v, nil
}

func queryBool(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %s must be a boolean, got %q", name, raw)
	}
	return &v, nil
}

func queryFloat(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %s must be a number, got %q", name, raw)
	}
	return &v, nil
}

// queryTime accepts the canonical timestamp format plus bare RFC3339 and
// plain dates, which dashboards commonly send.
func queryTime(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{entities.TimestampLayout, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("parameter %s must be a timestamp, got %q", name, raw)
}
