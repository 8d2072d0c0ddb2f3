package usecases_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"trade-admin.backend/internal/domain/entities"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/internal/usecases"
)

func newUserUsecase() (*usecases.UserUsecase, *MockUserRepository, *MockTransactionRepository, *MockUnitOfWork) {
	userRepo := new(MockUserRepository)
	txRepo := new(MockTransactionRepository)
	uow := new(MockUnitOfWork)
	return usecases.NewUserUsecase(userRepo, txRepo, uow), userRepo, txRepo, uow
}

func TestUserUsecase_ListUsers_InvalidFilter(t *testing.T) {
	uc, userRepo, _, _ := newUserUsecase()

	_, _, err := uc.ListUsers(context.Background(), entities.UserFilter{
		Status: entities.UserStatus("frozen"),
	}, 1, 50)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "List")
}

func TestUserUsecase_ListUsers_NormalizesPagination(t *testing.T) {
	uc, userRepo, _, _ := newUserUsecase()

	userRepo.On("List", mock.Anything, entities.UserFilter{}, 50, 0).
		Return([]*entities.User{}, int64(0), nil).Once()

	_, _, err := uc.ListUsers(context.Background(), entities.UserFilter{}, 0, 0)
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestUserUsecase_ListUsers_ClampsLimit(t *testing.T) {
	uc, userRepo, _, _ := newUserUsecase()

	userRepo.On("List", mock.Anything, entities.UserFilter{}, 500, 1000).
		Return([]*entities.User{}, int64(0), nil).Once()

	_, _, err := uc.ListUsers(context.Background(), entities.UserFilter{}, 3, 9999)
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestUserUsecase_CreateUser_Defaults(t *testing.T) {
	uc, userRepo, _, _ := newUserUsecase()

	var created *entities.User
	userRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entities.User)
		}).
		Return(nil).Once()

	user, err := uc.CreateUser(context.Background(), &entities.CreateUserInput{
		Email:    "jane@example.com",
		FullName: "Jane Miller",
		Country:  "Germany",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, entities.UserStatusPending, user.Status)
	assert.Equal(t, entities.RiskLevelLow, user.RiskLevel)
	assert.Equal(t, entities.KYCStatusNotSubmitted, user.KYCStatus)
	assert.True(t, strings.HasPrefix(user.ReferralCode, "REF-"))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.RegisteredAt.IsZero())
	userRepo.AssertExpectations(t)
}

func TestUserUsecase_CreateUser_InvalidStatus(t *testing.T) {
	uc, userRepo, _, _ := newUserUsecase()

	_, err := uc.CreateUser(context.Background(), &entities.CreateUserInput{
		Email:    "jane@example.com",
		FullName: "Jane Miller",
		Country:  "Germany",
		Status:   entities.UserStatus("banned"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "Create")
}

func TestUserUsecase_UpdateUser_EmptyPatch(t *testing.T) {
	uc, userRepo, _, _ := newUserUsecase()

	_, err := uc.UpdateUser(context.Background(), uuid.New(), &entities.UserPatch{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "Update")
}

func TestUserUsecase_UpdateUser_InvalidEnum(t *testing.T) {
	uc, userRepo, _, _ := newUserUsecase()

	bad := entities.KYCStatus("maybe")
	_, err := uc.UpdateUser(context.Background(), uuid.New(), &entities.UserPatch{KYCStatus: &bad})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "Update")
}

func TestUserUsecase_SuspendUser_RecordsReason(t *testing.T) {
	uc, userRepo, _, _ := newUserUsecase()

	id := uuid.New()
	userRepo.On("Update", mock.Anything, id, mock.MatchedBy(func(p *entities.UserPatch) bool {
		return p.Status != nil && *p.Status == entities.UserStatusSuspended &&
			p.Notes != nil && *p.Notes == "chargeback abuse"
	})).Return(&entities.User{ID: id, Status: entities.UserStatusSuspended}, nil).Once()

	user, err := uc.SuspendUser(context.Background(), id, "chargeback abuse")
	require.NoError(t, err)
	assert.Equal(t, entities.UserStatusSuspended, user.Status)
	userRepo.AssertExpectations(t)
}

func TestUserUsecase_BulkUpdateStatus_EmptyIDs(t *testing.T) {
	uc, userRepo, _, _ := newUserUsecase()

	_, err := uc.BulkUpdateStatus(context.Background(), nil, entities.UserStatusActive)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "BulkUpdateStatus")
}

func TestUserUsecase_BulkUpdateStatus_ReportsAffectedCount(t *testing.T) {
	uc, userRepo, _, _ := newUserUsecase()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	userRepo.On("BulkUpdateStatus", mock.Anything, ids, entities.UserStatusInactive).
		Return(int64(2), nil).Once()

	affected, err := uc.BulkUpdateStatus(context.Background(), ids, entities.UserStatusInactive)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	userRepo.AssertExpectations(t)
}

func TestUserUsecase_AdjustBalance_AddCreatesBonusAudit(t *testing.T) {
	uc, userRepo, txRepo, uow := newUserUsecase()

	userID := uuid.New()
	adminID := uuid.New()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	userRepo.On("GetByID", mock.Anything, userID).
		Return(&entities.User{ID: userID, Balance: 100}, nil).Once()
	userRepo.On("AddBalance", mock.Anything, userID, 25.5).Return(nil).Once()

	var audit *entities.Transaction
	txRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			audit = args.Get(1).(*entities.Transaction)
		}).
		Return(nil).Once()

	tx, err := uc.AdjustBalance(context.Background(), userID, &entities.BalanceAdjustmentInput{
		Amount:    25.5,
		Direction: entities.BalanceAdd,
		Reason:    "goodwill credit",
	}, adminID)
	require.NoError(t, err)
	require.NotNil(t, audit)

	assert.Equal(t, entities.TransactionTypeBonus, tx.Type)
	assert.Equal(t, entities.TransactionStatusCompleted, tx.Status)
	assert.Equal(t, 25.5, tx.Amount)
	assert.Contains(t, tx.Description, "goodwill credit")
	assert.NotNil(t, tx.CompletedAt)
	userRepo.AssertExpectations(t)
	txRepo.AssertExpectations(t)
}

func TestUserUsecase_AdjustBalance_SubtractCreatesFeeAudit(t *testing.T) {
	uc, userRepo, txRepo, uow := newUserUsecase()

	userID := uuid.New()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	userRepo.On("GetByID", mock.Anything, userID).
		Return(&entities.User{ID: userID, Balance: 100}, nil).Once()
	userRepo.On("AddBalance", mock.Anything, userID, -40.0).Return(nil).Once()
	txRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	tx, err := uc.AdjustBalance(context.Background(), userID, &entities.BalanceAdjustmentInput{
		Amount:    40,
		Direction: entities.BalanceSubtract,
		Reason:    "platform fee correction",
	}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, entities.TransactionTypeFee, tx.Type)
	assert.Equal(t, -40.0, tx.Amount)
	userRepo.AssertExpectations(t)
}

func TestUserUsecase_AdjustBalance_InsufficientFunds(t *testing.T) {
	uc, userRepo, txRepo, uow := newUserUsecase()

	userID := uuid.New()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	userRepo.On("GetByID", mock.Anything, userID).
		Return(&entities.User{ID: userID, Balance: 30}, nil).Once()

	_, err := uc.AdjustBalance(context.Background(), userID, &entities.BalanceAdjustmentInput{
		Amount:    50,
		Direction: entities.BalanceSubtract,
		Reason:    "fee",
	}, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientFunds)
	userRepo.AssertNotCalled(t, "AddBalance")
	txRepo.AssertNotCalled(t, "Create")
}

func TestUserUsecase_AdjustBalance_RejectsBadInput(t *testing.T) {
	uc, _, _, uow := newUserUsecase()

	cases := []entities.BalanceAdjustmentInput{
		{Amount: 0, Direction: entities.BalanceAdd, Reason: "r"},
		{Amount: -5, Direction: entities.BalanceAdd, Reason: "r"},
		{Amount: 10, Direction: entities.BalanceAdd, Reason: "   "},
		{Amount: 10, Direction: entities.BalanceDirection("multiply"), Reason: "r"},
	}
	for _, input := range cases {
		_, err := uc.AdjustBalance(context.Background(), uuid.New(), &input, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	}
	uow.AssertNotCalled(t, "Do")
}
