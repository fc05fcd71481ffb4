package service

import (
	"context"
	"fmt"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/port"
	"github.com/govalues/decimal"
)

// walletLedger mediates user balance changes inside a transition scope.
type walletLedger struct{}

// Debit subtracts amount from the user's balance. The row is locked, so the
// balance check and the write are one isolated step.
func (walletLedger) Debit(ctx context.Context, scope port.TransitionScope, userID uint64, amount decimal.Decimal) error {
	if amount.IsNeg() {
		return domain.ErrBadRequest
	}
	user, err := scope.UserForUpdate(ctx, userID)
	if err != nil {
		return fmt.Errorf("lock wallet for user %d: %w", userID, err)
	}
	if user.Balance.Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}
	balance, err := user.Balance.Sub(amount)
	if err != nil {
		return fmt.Errorf("math error:%w", err)
	}
	return scope.SetUserBalance(ctx, userID, balance)
}

// Credit adds amount to the user's balance unconditionally.
func (walletLedger) Credit(ctx context.Context, scope port.TransitionScope, userID uint64, amount decimal.Decimal) error {
	if amount.IsNeg() {
		return domain.ErrBadRequest
	}
	user, err := scope.UserForUpdate(ctx, userID)
	if err != nil {
		return fmt.Errorf("lock wallet for user %d: %w", userID, err)
	}
	balance, err := user.Balance.Add(amount)
	if err != nil {
		return fmt.Errorf("math error:%w", err)
	}
	return scope.SetUserBalance(ctx, userID, balance)
}
