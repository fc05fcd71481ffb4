package service

import (
	"context"
	"errors"
	"time"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/port"
	"github.com/govalues/decimal"
)

// couponTracker enforces single-use redemption of user coupons.
type couponTracker struct{}

// Validate loads the redemption with a row lock and checks it against its
// coupon: owned by the buyer, unused, active, unexpired, and the order's
// pre-discount total meets the minimum purchase. It marks nothing.
func (couponTracker) Validate(ctx context.Context, scope port.TransitionScope,
	userCouponID, userID uint64, preTotal decimal.Decimal, now time.Time) (*domain.Coupon, error) {
	uc, err := scope.UserCouponForUpdate(ctx, userCouponID)
	if err != nil {
		return nil, err
	}
	if uc.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if uc.IsUsed {
		return nil, domain.ErrCouponInvalid
	}

	coupon, err := scope.ReadCoupon(ctx, uc.CouponID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrCouponInvalid
		}
		return nil, err
	}
	if !coupon.Usable(now) {
		return nil, domain.ErrCouponInvalid
	}
	if preTotal.Cmp(coupon.MinPurchase) < 0 {
		return nil, domain.ErrCouponMinPurchase
	}
	return coupon, nil
}

// MarkUsed flips the redemption to used. A concurrent confirmation that got
// there first surfaces as domain.ErrConcurrencyConflict from the scope.
func (couponTracker) MarkUsed(ctx context.Context, scope port.TransitionScope, userCouponID uint64) error {
	return scope.MarkUserCouponUsed(ctx, userCouponID)
}
