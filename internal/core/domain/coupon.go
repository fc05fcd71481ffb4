package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type Coupon struct {
	ID          uint64
	Code        string
	Discount    decimal.Decimal
	MinPurchase decimal.Decimal
	ExpiresAt   time.Time
	IsActive    bool
}

// Usable reports whether the coupon may still be redeemed at the given moment.
func (c *Coupon) Usable(now time.Time) bool {
	return c.IsActive && c.ExpiresAt.After(now)
}

// UserCoupon is a single user's claim on a coupon. IsUsed flips false→true
// at most once, in the same transaction that debits the wallet.
type UserCoupon struct {
	ID       uint64
	UserID   uint64
	CouponID uint64
	IsUsed   bool
}
