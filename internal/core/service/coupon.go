package service

import (
	"context"
	"errors"
	"time"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/port"
	"github.com/dinehall/backend/internal/core/utils"
	"go.uber.org/zap"
)

// maxCodeAttempts bounds unique code generation. With 4-digit codes the space
// is 10^4, so collisions stay rare until a few thousand coupons exist; a full
// run of misses means the codespace is effectively spent.
const maxCodeAttempts = 20

func (s *Service) generateUniqueCode(ctx context.Context) (string, error) {
	for range maxCodeAttempts {
		code, err := utils.GenerateCouponCode()
		if err != nil {
			return "", err
		}
		_, err = s.repo.ReadCouponByCode(ctx, code)
		if errors.Is(err, domain.ErrDataNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", domain.ErrCouponCodeExhausted
}

func (s *Service) validateCoupon(coupon *domain.Coupon) error {
	if coupon.Discount.IsNeg() || coupon.MinPurchase.IsNeg() || coupon.ExpiresAt.IsZero() {
		return domain.ErrBadRequest
	}
	return nil
}

func (s *Service) CreateCoupon(ctx context.Context, principal port.TokenPayload, coupon *domain.Coupon) (*domain.Coupon, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := s.validateCoupon(coupon); err != nil {
		return nil, err
	}

	code, err := s.generateUniqueCode(ctx)
	if err != nil {
		return nil, err
	}
	coupon.Code = code

	created, err := s.repo.CreateCoupon(ctx, coupon)
	if err != nil {
		s.logger.Error("Create coupon", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) CreateCouponsBatch(ctx context.Context, principal port.TokenPayload, coupons []*domain.Coupon) ([]*domain.Coupon, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if len(coupons) == 0 {
		return nil, domain.ErrBadRequest
	}
	for _, coupon := range coupons {
		if err := s.validateCoupon(coupon); err != nil {
			return nil, err
		}
	}

	created := make([]*domain.Coupon, 0, len(coupons))
	for _, coupon := range coupons {
		c, err := s.CreateCoupon(ctx, principal, coupon)
		if err != nil {
			return nil, err
		}
		created = append(created, c)
	}
	return created, nil
}

func (s *Service) GetCoupon(ctx context.Context, couponID uint64) (*domain.Coupon, error) {
	return s.repo.ReadCoupon(ctx, couponID)
}

func (s *Service) GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	if code == "" {
		return nil, domain.ErrBadRequest
	}
	return s.repo.ReadCouponByCode(ctx, code)
}

func (s *Service) UpdateCoupon(ctx context.Context, principal port.TokenPayload, coupon *domain.Coupon) (*domain.Coupon, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := s.validateCoupon(coupon); err != nil {
		return nil, err
	}
	current, err := s.repo.ReadCoupon(ctx, coupon.ID)
	if err != nil {
		return nil, err
	}
	// Codes are issued once and never rewritten.
	coupon.Code = current.Code
	return s.repo.UpdateCoupon(ctx, coupon)
}

func (s *Service) DeleteCoupon(ctx context.Context, principal port.TokenPayload, couponID uint64) error {
	if !principal.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.repo.DeleteCoupon(ctx, couponID)
}

func (s *Service) ListActiveCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	return s.repo.ListActiveCoupons(ctx, time.Now())
}

// AssignCoupon claims a coupon for a user. A coupon is claimable exactly
// once across all users.
func (s *Service) AssignCoupon(ctx context.Context, principal port.TokenPayload, userID, couponID uint64) (*domain.UserCoupon, error) {
	if !principal.IsAdmin() && principal.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if _, err := s.repo.ReadUser(ctx, userID); err != nil {
		return nil, err
	}

	coupon, err := s.repo.ReadCoupon(ctx, couponID)
	if err != nil {
		return nil, err
	}
	if !coupon.Usable(time.Now()) {
		return nil, domain.ErrCouponInvalid
	}

	claimed, err := s.repo.CountUserCouponsByCoupon(ctx, couponID)
	if err != nil {
		return nil, err
	}
	if claimed > 0 {
		return nil, domain.ErrCouponAlreadyClaimed
	}

	uc, err := s.repo.AssignUserCoupon(ctx, &domain.UserCoupon{
		UserID:   userID,
		CouponID: couponID,
		IsUsed:   false,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrCouponAlreadyClaimed
		}
		return nil, err
	}
	return uc, nil
}

func (s *Service) ListUserCoupons(ctx context.Context, principal port.TokenPayload, userID uint64, used *bool) ([]*domain.UserCoupon, error) {
	if !principal.IsAdmin() && principal.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if _, err := s.repo.ReadUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListUserCoupons(ctx, userID, used)
}
