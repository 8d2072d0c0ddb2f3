package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"trade-admin.backend/internal/domain/entities"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/internal/domain/repositories"
	"trade-admin.backend/pkg/crypto"
	"trade-admin.backend/pkg/jwt"
	"trade-admin.backend/pkg/logger"
)

// AuthUsecase handles admin authentication
type AuthUsecase struct {
	adminRepo  repositories.AdminRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(adminRepo repositories.AdminRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login verifies admin credentials and issues a token pair. Unknown emails
// and wrong passwords both map to the same invalid-credentials error.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	admin, err := u.adminRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid email or password")
	}

	if !crypto.CheckPassword(input.Password, admin.PasswordHash) {
		logger.Warn(ctx, "failed login attempt", zap.String("email", input.Email))
		return nil, domainerrors.Unauthorized("invalid email or password")
	}

	pair, err := u.jwtService.GenerateTokenPair(admin.ID, admin.Email, string(admin.Role))
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "admin logged in", zap.String("admin_id", admin.ID.String()))
	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Admin:        admin,
	}, nil
}

// GetMe returns the authenticated admin's own account.
func (u *AuthUsecase) GetMe(ctx context.Context, adminID uuid.UUID) (*entities.AdminUser, error) {
	return u.adminRepo.GetByID(ctx, adminID)
}
