package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"trade-admin.backend/internal/domain/entities"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/internal/usecases"
	"trade-admin.backend/pkg/crypto"
	"trade-admin.backend/pkg/jwt"
)

func newAuthUsecase() (*usecases.AuthUsecase, *MockAdminRepository, *jwt.JWTService) {
	adminRepo := new(MockAdminRepository)
	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	return usecases.NewAuthUsecase(adminRepo, jwtService), adminRepo, jwtService
}

func TestAuthUsecase_Login(t *testing.T) {
	uc, adminRepo, jwtService := newAuthUsecase()

	hash, err := crypto.HashPassword("s3cret")
	require.NoError(t, err)

	admin := &entities.AdminUser{
		ID:           uuid.New(),
		Email:        "ops@example.com",
		PasswordHash: hash,
		Role:         entities.AdminRoleAdmin,
	}
	adminRepo.On("GetByEmail", mock.Anything, "ops@example.com").Return(admin, nil).Once()

	resp, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "ops@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, resp.Admin.ID)

	claims, err := jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.Equal(t, string(entities.AdminRoleAdmin), claims.Role)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	uc, adminRepo, _ := newAuthUsecase()

	hash, err := crypto.HashPassword("s3cret")
	require.NoError(t, err)
	adminRepo.On("GetByEmail", mock.Anything, "ops@example.com").
		Return(&entities.AdminUser{ID: uuid.New(), PasswordHash: hash}, nil).Once()

	_, err = uc.Login(context.Background(), &entities.LoginInput{
		Email:    "ops@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	uc, adminRepo, _ := newAuthUsecase()

	adminRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	// Unknown emails are indistinguishable from wrong passwords.
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_GetMe(t *testing.T) {
	uc, adminRepo, _ := newAuthUsecase()

	id := uuid.New()
	adminRepo.On("GetByID", mock.Anything, id).
		Return(&entities.AdminUser{ID: id, Email: "ops@example.com"}, nil).Once()

	admin, err := uc.GetMe(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", admin.Email)
}
