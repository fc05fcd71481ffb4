package service

import (
	"fmt"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/govalues/decimal"
)

// CalculateTotal sums unit price × quantity over the line items. The total is
// always recomputed from the current items, never adjusted incrementally.
func CalculateTotal(items []domain.LineItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			return decimal.Zero, domain.ErrBadRequest
		}
		qty, err := decimal.New(int64(item.Quantity), 0)
		if err != nil {
			return decimal.Zero, fmt.Errorf("math error:%w", err)
		}
		line, err := item.UnitPrice.Mul(qty)
		if err != nil {
			return decimal.Zero, fmt.Errorf("math error:%w", err)
		}
		total, err = total.Add(line)
		if err != nil {
			return decimal.Zero, fmt.Errorf("math error:%w", err)
		}
	}
	return total, nil
}

// ApplyDiscount subtracts the coupon discount from the total, floored at
// zero. Eligibility is the caller's business.
func ApplyDiscount(total decimal.Decimal, coupon *domain.Coupon) (decimal.Decimal, error) {
	discounted, err := total.Sub(coupon.Discount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("math error:%w", err)
	}
	if discounted.IsNeg() {
		return decimal.Zero, nil
	}
	return discounted, nil
}
