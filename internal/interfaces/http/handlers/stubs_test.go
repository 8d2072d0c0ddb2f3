package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"trade-admin.backend/internal/domain/entities"
)

type userRepoStub struct {
	createFn           func(ctx context.Context, user *entities.User) error
	getByIDFn          func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	listFn             func(ctx context.Context, filter entities.UserFilter, limit, offset int) ([]*entities.User, int64, error)
	updateFn           func(ctx context.Context, id uuid.UUID, patch *entities.UserPatch) (*entities.User, error)
	deleteFn           func(ctx context.Context, id uuid.UUID) error
	bulkStatusFn       func(ctx context.Context, ids []uuid.UUID, status entities.UserStatus) (int64, error)
	bulkVerifiedFn     func(ctx context.Context, ids []uuid.UUID, verified bool) (int64, error)
	addBalanceFn       func(ctx context.Context, id uuid.UUID, delta float64) error
	statsFn            func(ctx context.Context, now time.Time) (*entities.UserStats, error)
	countryStatsFn     func(ctx context.Context) ([]entities.CountryCount, error)
	registrationsFn    func(ctx context.Context, since time.Time) ([]entities.RegistrationPoint, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &entities.User{ID: id}, nil
}

func (s *userRepoStub) List(ctx context.Context, filter entities.UserFilter, limit, offset int) ([]*entities.User, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter, limit, offset)
	}
	return []*entities.User{}, 0, nil
}

func (s *userRepoStub) Update(ctx context.Context, id uuid.UUID, patch *entities.UserPatch) (*entities.User, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, patch)
	}
	return &entities.User{ID: id}, nil
}

func (s *userRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *userRepoStub) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status entities.UserStatus) (int64, error) {
	if s.bulkStatusFn != nil {
		return s.bulkStatusFn(ctx, ids, status)
	}
	return int64(len(ids)), nil
}

func (s *userRepoStub) BulkSetVerified(ctx context.Context, ids []uuid.UUID, verified bool) (int64, error) {
	if s.bulkVerifiedFn != nil {
		return s.bulkVerifiedFn(ctx, ids, verified)
	}
	return int64(len(ids)), nil
}

func (s *userRepoStub) AddBalance(ctx context.Context, id uuid.UUID, delta float64) error {
	if s.addBalanceFn != nil {
		return s.addBalanceFn(ctx, id, delta)
	}
	return nil
}

func (s *userRepoStub) Stats(ctx context.Context, now time.Time) (*entities.UserStats, error) {
	if s.statsFn != nil {
		return s.statsFn(ctx, now)
	}
	return &entities.UserStats{}, nil
}

func (s *userRepoStub) CountryStats(ctx context.Context) ([]entities.CountryCount, error) {
	if s.countryStatsFn != nil {
		return s.countryStatsFn(ctx)
	}
	return []entities.CountryCount{}, nil
}

func (s *userRepoStub) RegistrationSeries(ctx context.Context, since time.Time) ([]entities.RegistrationPoint, error) {
	if s.registrationsFn != nil {
		return s.registrationsFn(ctx, since)
	}
	return []entities.RegistrationPoint{}, nil
}

type txRepoStub struct {
	createFn  func(ctx context.Context, tx *entities.Transaction) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entities.Transaction, error)
	listFn    func(ctx context.Context, filter entities.TransactionFilter, limit, offset int) ([]*entities.Transaction, int64, error)
	updateFn  func(ctx context.Context, id uuid.UUID, patch *entities.TransactionPatch) (*entities.Transaction, error)
}

func (s *txRepoStub) Create(ctx context.Context, tx *entities.Transaction) error {
	if s.createFn != nil {
		return s.createFn(ctx, tx)
	}
	return nil
}

func (s *txRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &entities.Transaction{ID: id}, nil
}

func (s *txRepoStub) List(ctx context.Context, filter entities.TransactionFilter, limit, offset int) ([]*entities.Transaction, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter, limit, offset)
	}
	return []*entities.Transaction{}, 0, nil
}

func (s *txRepoStub) Update(ctx context.Context, id uuid.UUID, patch *entities.TransactionPatch) (*entities.Transaction, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, patch)
	}
	return &entities.Transaction{ID: id}, nil
}

type chatRepoStub struct {
	createFn        func(ctx context.Context, msg *entities.ChatMessage) error
	listByUserFn    func(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.ChatMessage, error)
	conversationsFn func(ctx context.Context) ([]entities.ChatConversation, error)
}

func (s *chatRepoStub) Create(ctx context.Context, msg *entities.ChatMessage) error {
	if s.createFn != nil {
		return s.createFn(ctx, msg)
	}
	return nil
}

func (s *chatRepoStub) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.ChatMessage, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID, limit)
	}
	return []*entities.ChatMessage{}, nil
}

func (s *chatRepoStub) ListConversations(ctx context.Context) ([]entities.ChatConversation, error) {
	if s.conversationsFn != nil {
		return s.conversationsFn(ctx)
	}
	return []entities.ChatConversation{}, nil
}

type adminRepoStub struct {
	createFn     func(ctx context.Context, admin *entities.AdminUser) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entities.AdminUser, error)
	getByEmailFn func(ctx context.Context, email string) (*entities.AdminUser, error)
}

func (s *adminRepoStub) Create(ctx context.Context, admin *entities.AdminUser) error {
	if s.createFn != nil {
		return s.createFn(ctx, admin)
	}
	return nil
}

func (s *adminRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.AdminUser, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &entities.AdminUser{ID: id}, nil
}

func (s *adminRepoStub) GetByEmail(ctx context.Context, email string) (*entities.AdminUser, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return &entities.AdminUser{Email: email}, nil
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
