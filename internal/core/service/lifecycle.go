package service

import (
	"context"
	"time"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/port"
	"go.uber.org/zap"
)

type transitionEvent string

const (
	eventEditItems transitionEvent = "EDIT_ITEMS"
	eventDelete    transitionEvent = "DELETE"
	eventConfirm   transitionEvent = "CONFIRM"
	eventComplete  transitionEvent = "COMPLETE"
	eventCancel    transitionEvent = "CANCEL"
	eventRefund    transitionEvent = "REFUND"
)

type transitionKey struct {
	from  domain.OrderStatus
	event transitionEvent
}

// transitions is the complete reachable state space of an order. Any
// (status, event) pair absent here is rejected with ErrOrderStateTransition.
var transitions = map[transitionKey]domain.OrderStatus{
	{domain.OrderStatusCreated, eventEditItems}: domain.OrderStatusCreated,
	{domain.OrderStatusCreated, eventDelete}:    domain.OrderStatusCreated,
	{domain.OrderStatusCreated, eventConfirm}:   domain.OrderStatusInProgress,
	{domain.OrderStatusCreated, eventCancel}:    domain.OrderStatusCancelled,

	{domain.OrderStatusInProgress, eventComplete}: domain.OrderStatusCompleted,
	{domain.OrderStatusInProgress, eventCancel}:   domain.OrderStatusCancelled,

	{domain.OrderStatusCompleted, eventRefund}: domain.OrderStatusRefunded,
}

func nextStatus(from domain.OrderStatus, event transitionEvent) (domain.OrderStatus, error) {
	next, ok := transitions[transitionKey{from: from, event: event}]
	if !ok {
		return "", domain.ErrOrderStateTransition
	}
	return next, nil
}

type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	logger       *zap.Logger

	inventory inventoryLedger
	wallet    walletLedger
	coupons   couponTracker
}

func NewService(repo port.Repository, tokenService port.TokenService, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		logger:       logger,
	}, nil
}

// authorizeOrderAccess lets the owner and admins through.
func (s *Service) authorizeOrderAccess(principal port.TokenPayload, order *domain.Order) error {
	if principal.IsAdmin() || order.UserID == principal.UserID {
		return nil
	}
	return domain.ErrForbidden
}

func (s *Service) CreateOrder(ctx context.Context, principal port.TokenPayload,
	storeID uint64, notes, dineOption string) (*domain.Order, error) {
	if _, err := s.repo.ReadStore(ctx, storeID); err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:     principal.UserID,
		StoreID:    storeID,
		Status:     domain.OrderStatusCreated,
		OrderTime:  time.Now(),
		Notes:      notes,
		DineOption: dineOption,
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, principal port.TokenPayload, orderID uint64) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOrderAccess(principal, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) ListUserOrders(ctx context.Context, principal port.TokenPayload, userID uint64) ([]*domain.Order, error) {
	if !principal.IsAdmin() && principal.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListOrdersByUser(ctx, userID)
}

func (s *Service) ListOrders(ctx context.Context, principal port.TokenPayload) ([]*domain.Order, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListOrders(ctx)
}

func (s *Service) GetOrderStats(ctx context.Context, principal port.TokenPayload) (*port.OrderStats, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	stats := &port.OrderStats{
		Total:    int64(len(orders)),
		ByStatus: make(map[domain.OrderStatus]int64),
	}
	for _, order := range orders {
		stats.ByStatus[order.Status]++
	}
	return stats, nil
}

// DeleteOrder physically removes an order. Only allowed before confirmation:
// once ledgers have history for the order it can never be deleted.
func (s *Service) DeleteOrder(ctx context.Context, principal port.TokenPayload, orderID uint64) error {
	_, err := s.repo.ExecOrderTransition(ctx, orderID, func(ctx context.Context, scope port.TransitionScope) error {
		order := scope.Order()
		if err := s.authorizeOrderAccess(principal, order); err != nil {
			return err
		}
		if _, err := nextStatus(order.Status, eventDelete); err != nil {
			return err
		}
		for _, item := range order.Items {
			if err := scope.DeleteLineItem(ctx, item.DetailID); err != nil {
				return err
			}
		}
		return scope.DeleteOrder(ctx)
	})
	return err
}

// recomputeTotal derives the order total from its current line items and
// persists the aggregate. The stored total is only ever this derived value.
func (s *Service) recomputeTotal(ctx context.Context, scope port.TransitionScope, order *domain.Order) error {
	total, err := CalculateTotal(order.Items)
	if err != nil {
		return err
	}
	order.TotalPrice = total
	return scope.SaveOrder(ctx, order)
}

func (s *Service) AddLineItem(ctx context.Context, principal port.TokenPayload,
	orderID uint64, in port.AddLineItemInput) (*domain.Order, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrBadRequest
	}

	return s.repo.ExecOrderTransition(ctx, orderID, func(ctx context.Context, scope port.TransitionScope) error {
		order := scope.Order()
		if err := s.authorizeOrderAccess(principal, order); err != nil {
			return err
		}
		if _, err := nextStatus(order.Status, eventEditItems); err != nil {
			return err
		}

		menuItem, err := scope.MenuItemForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}

		// Stock must cover the cumulative quantity this order now implies
		// for the item, not just the delta being added.
		cumulative := in.Quantity
		for _, item := range order.Items {
			if item.ItemID == in.ItemID {
				cumulative += item.Quantity
			}
		}
		if menuItem.Stock < cumulative {
			return domain.ErrInsufficientStock
		}

		price, err := menuItem.PriceFor(in.Size)
		if err != nil {
			return err
		}

		saved, err := scope.InsertLineItem(ctx, &domain.LineItem{
			OrderID:   order.ID,
			ItemID:    in.ItemID,
			Quantity:  in.Quantity,
			UnitPrice: price,
			Size:      in.Size,
		})
		if err != nil {
			return err
		}
		order.Items = append(order.Items, *saved)

		return s.recomputeTotal(ctx, scope, order)
	})
}

func (s *Service) UpdateLineItem(ctx context.Context, principal port.TokenPayload,
	orderID uint64, in port.UpdateLineItemInput) (*domain.Order, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrBadRequest
	}

	return s.repo.ExecOrderTransition(ctx, orderID, func(ctx context.Context, scope port.TransitionScope) error {
		order := scope.Order()
		if err := s.authorizeOrderAccess(principal, order); err != nil {
			return err
		}
		if _, err := nextStatus(order.Status, eventEditItems); err != nil {
			return err
		}

		idx := -1
		for i, item := range order.Items {
			if item.DetailID == in.DetailID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrDataNotFound
		}

		menuItem, err := scope.MenuItemForUpdate(ctx, order.Items[idx].ItemID)
		if err != nil {
			return err
		}

		cumulative := in.Quantity
		for i, item := range order.Items {
			if i != idx && item.ItemID == menuItem.ID {
				cumulative += item.Quantity
			}
		}
		if menuItem.Stock < cumulative {
			return domain.ErrInsufficientStock
		}

		// Updating re-snapshots the unit price for the requested size.
		price, err := menuItem.PriceFor(in.Size)
		if err != nil {
			return err
		}

		order.Items[idx].Quantity = in.Quantity
		order.Items[idx].Size = in.Size
		order.Items[idx].UnitPrice = price
		if err := scope.UpdateLineItem(ctx, &order.Items[idx]); err != nil {
			return err
		}

		return s.recomputeTotal(ctx, scope, order)
	})
}

func (s *Service) RemoveLineItem(ctx context.Context, principal port.TokenPayload,
	orderID uint64, detailID uint64) (*domain.Order, error) {
	return s.repo.ExecOrderTransition(ctx, orderID, func(ctx context.Context, scope port.TransitionScope) error {
		order := scope.Order()
		if err := s.authorizeOrderAccess(principal, order); err != nil {
			return err
		}
		if _, err := nextStatus(order.Status, eventEditItems); err != nil {
			return err
		}

		idx := -1
		for i, item := range order.Items {
			if item.DetailID == detailID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrDataNotFound
		}

		if err := scope.DeleteLineItem(ctx, detailID); err != nil {
			return err
		}
		order.Items = append(order.Items[:idx], order.Items[idx+1:]...)

		return s.recomputeTotal(ctx, scope, order)
	})
}

// ConfirmOrder settles the order: validates an optional coupon, reserves
// stock for every line item, debits the wallet and marks the redemption —
// all in one transaction. A failure at any step leaves nothing applied.
func (s *Service) ConfirmOrder(ctx context.Context, principal port.TokenPayload,
	orderID uint64, userCouponID *uint64) (*domain.Order, error) {
	return s.repo.ExecOrderTransition(ctx, orderID, func(ctx context.Context, scope port.TransitionScope) error {
		order := scope.Order()
		if err := s.authorizeOrderAccess(principal, order); err != nil {
			return err
		}
		next, err := nextStatus(order.Status, eventConfirm)
		if err != nil {
			return err
		}
		if len(order.Items) == 0 {
			return domain.ErrBadRequest
		}

		total, err := CalculateTotal(order.Items)
		if err != nil {
			return err
		}

		final := total
		if userCouponID != nil {
			coupon, err := s.coupons.Validate(ctx, scope, *userCouponID, order.UserID, total, time.Now())
			if err != nil {
				return err
			}
			final, err = ApplyDiscount(total, coupon)
			if err != nil {
				return err
			}
		}

		if err := s.inventory.Reserve(ctx, scope, order.Items); err != nil {
			return err
		}
		if err := s.wallet.Debit(ctx, scope, order.UserID, final); err != nil {
			return err
		}
		if userCouponID != nil {
			if err := s.coupons.MarkUsed(ctx, scope, *userCouponID); err != nil {
				return err
			}
		}

		order.TotalPrice = final
		order.Status = next
		return scope.SaveOrder(ctx, order)
	})
}

func (s *Service) CompleteOrder(ctx context.Context, principal port.TokenPayload, orderID uint64) (*domain.Order, error) {
	return s.repo.ExecOrderTransition(ctx, orderID, func(ctx context.Context, scope port.TransitionScope) error {
		order := scope.Order()
		if err := s.authorizeOrderAccess(principal, order); err != nil {
			return err
		}
		next, err := nextStatus(order.Status, eventComplete)
		if err != nil {
			return err
		}
		// Payment settled at confirmation; completion has no ledger effects.
		order.Status = next
		return scope.SaveOrder(ctx, order)
	})
}

// CancelOrder aborts the order. If it had reached IN_PROGRESS the confirmed
// reservation and payment are rolled back; a still-CREATED order reserved
// nothing, so there is nothing to restore.
func (s *Service) CancelOrder(ctx context.Context, principal port.TokenPayload, orderID uint64) (*domain.Order, error) {
	return s.repo.ExecOrderTransition(ctx, orderID, func(ctx context.Context, scope port.TransitionScope) error {
		order := scope.Order()
		if err := s.authorizeOrderAccess(principal, order); err != nil {
			return err
		}
		next, err := nextStatus(order.Status, eventCancel)
		if err != nil {
			return err
		}

		if order.Status == domain.OrderStatusInProgress {
			if err := s.restore(ctx, scope, order); err != nil {
				return err
			}
		}

		order.Status = next
		return scope.SaveOrder(ctx, order)
	})
}

func (s *Service) RefundOrder(ctx context.Context, principal port.TokenPayload, orderID uint64) (*domain.Order, error) {
	return s.repo.ExecOrderTransition(ctx, orderID, func(ctx context.Context, scope port.TransitionScope) error {
		order := scope.Order()
		if err := s.authorizeOrderAccess(principal, order); err != nil {
			return err
		}
		next, err := nextStatus(order.Status, eventRefund)
		if err != nil {
			return err
		}

		if err := s.restore(ctx, scope, order); err != nil {
			return err
		}

		order.Status = next
		return scope.SaveOrder(ctx, order)
	})
}

// restore returns the confirmed order's stock and refunds the committed
// total, making confirm-then-cancel a no-op on both ledgers.
func (s *Service) restore(ctx context.Context, scope port.TransitionScope, order *domain.Order) error {
	if err := s.inventory.Release(ctx, scope, order.Items); err != nil {
		return err
	}
	return s.wallet.Credit(ctx, scope, order.UserID, order.TotalPrice)
}
