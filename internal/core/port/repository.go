package port

import (
	"context"
	"time"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/govalues/decimal"
)

// TransitionFn runs inside a single repository transaction. Every row the
// scope hands out is locked until the transaction commits or rolls back.
type TransitionFn func(ctx context.Context, scope TransitionScope) error

// TransitionScope gives one order lifecycle transition row-locked access to
// the resources it may touch: the order aggregate, menu item stock, the
// owner's wallet and a coupon redemption. Writes are not visible outside the
// transaction until commit; any error aborts all of them together.
type TransitionScope interface {
	// Order returns the aggregate as it was locked at transaction start,
	// line items included.
	Order() *domain.Order
	SaveOrder(ctx context.Context, order *domain.Order) error
	// DeleteOrder removes the scoped order row. Its line items must be
	// deleted first.
	DeleteOrder(ctx context.Context) error

	InsertLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error)
	UpdateLineItem(ctx context.Context, item *domain.LineItem) error
	DeleteLineItem(ctx context.Context, detailID uint64) error

	MenuItemForUpdate(ctx context.Context, itemID uint64) (*domain.MenuItem, error)
	SetMenuItemStock(ctx context.Context, itemID uint64, stock int32) error

	UserForUpdate(ctx context.Context, userID uint64) (*domain.User, error)
	SetUserBalance(ctx context.Context, userID uint64, balance decimal.Decimal) error

	UserCouponForUpdate(ctx context.Context, userCouponID uint64) (*domain.UserCoupon, error)
	ReadCoupon(ctx context.Context, couponID uint64) (*domain.Coupon, error)
	// MarkUserCouponUsed flips is_used false→true. It reports
	// domain.ErrConcurrencyConflict when another transaction already did.
	MarkUserCouponUsed(ctx context.Context, userCouponID uint64) error
}

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)
	ReadUser(ctx context.Context, userID uint64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUserPassword(ctx context.Context, userID uint64, password string) error
	CreditUserBalance(ctx context.Context, userID uint64, amount decimal.Decimal) (*domain.User, error)

	// Store
	CreateStore(ctx context.Context, store *domain.Store) (*domain.Store, error)
	ReadStore(ctx context.Context, storeID uint64) (*domain.Store, error)
	ListStores(ctx context.Context) ([]*domain.Store, error)
	UpdateStore(ctx context.Context, store *domain.Store) (*domain.Store, error)
	DeleteStore(ctx context.Context, storeID uint64) error

	// Menu
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	ReadMenuItem(ctx context.Context, itemID uint64) (*domain.MenuItem, error)
	ListMenuItems(ctx context.Context) ([]*domain.MenuItem, error)
	ListMenuItemsByStore(ctx context.Context, storeID uint64) ([]*domain.MenuItem, error)
	SearchMenuItems(ctx context.Context, query string) ([]*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, itemID uint64) error

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	// ExecOrderTransition locks the order row and its line items, runs fn and
	// commits everything fn wrote through the scope, or rolls it all back.
	ExecOrderTransition(ctx context.Context, orderID uint64, fn TransitionFn) (*domain.Order, error)

	// Coupon
	CreateCoupon(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	ReadCoupon(ctx context.Context, couponID uint64) (*domain.Coupon, error)
	ReadCouponByCode(ctx context.Context, code string) (*domain.Coupon, error)
	UpdateCoupon(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	DeleteCoupon(ctx context.Context, couponID uint64) error
	ListActiveCoupons(ctx context.Context, now time.Time) ([]*domain.Coupon, error)

	// UserCoupon
	AssignUserCoupon(ctx context.Context, uc *domain.UserCoupon) (*domain.UserCoupon, error)
	ReadUserCoupon(ctx context.Context, userCouponID uint64) (*domain.UserCoupon, error)
	ListUserCoupons(ctx context.Context, userID uint64, used *bool) ([]*domain.UserCoupon, error)
	CountUserCouponsByCoupon(ctx context.Context, couponID uint64) (int64, error)

	// Review
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ReadReview(ctx context.Context, reviewID uint64) (*domain.Review, error)
	ListReviewsByItem(ctx context.Context, itemID uint64) ([]*domain.Review, error)
	UpdateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	DeleteReview(ctx context.Context, reviewID uint64) error
}
