package service

import (
	"context"
	"errors"
	"time"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/port"
	"github.com/dinehall/backend/internal/core/utils"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByLogin(ctx, user.Login)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	user.Role = domain.RoleUser
	user.Balance = decimal.Zero
	user.RegisteredAt = time.Now()

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, login string, password string) (string, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *Service) GetUser(ctx context.Context, principal port.TokenPayload, userID uint64) (*domain.User, error) {
	if !principal.IsAdmin() && principal.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return s.repo.ReadUser(ctx, userID)
}

func (s *Service) ListUsers(ctx context.Context, principal port.TokenPayload) ([]*domain.User, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListUsers(ctx)
}

// ResetPassword replaces the caller's own password. The handler delivers it
// already hashed.
func (s *Service) ResetPassword(ctx context.Context, principal port.TokenPayload, password string) error {
	if password == "" {
		return domain.ErrBadRequest
	}
	return s.repo.UpdateUserPassword(ctx, principal.UserID, password)
}

// TopUpBalance credits a user's wallet. Admin only: regular wallet movement
// happens exclusively through order confirmation and restoration.
func (s *Service) TopUpBalance(ctx context.Context, principal port.TokenPayload,
	userID uint64, amount decimal.Decimal) (*domain.User, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if amount.IsNeg() || amount.IsZero() {
		return nil, domain.ErrBadRequest
	}
	user, err := s.repo.CreditUserBalance(ctx, userID, amount)
	if err != nil {
		return nil, err
	}
	return user, nil
}
