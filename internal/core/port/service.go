package port

import (
	"context"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/govalues/decimal"
)

type AddLineItemInput struct {
	ItemID   uint64
	Quantity int32
	Size     domain.ItemSize
}

type UpdateLineItemInput struct {
	DetailID uint64
	Quantity int32
	Size     domain.ItemSize
}

type OrderStats struct {
	Total    int64
	ByStatus map[domain.OrderStatus]int64
}

// OrderService is the order lifecycle state machine. Every operation takes
// the authenticated principal and either returns the updated aggregate or a
// domain sentinel; nothing is partially applied.
type OrderService interface {
	CreateOrder(ctx context.Context, principal TokenPayload, storeID uint64, notes, dineOption string) (*domain.Order, error)
	GetOrder(ctx context.Context, principal TokenPayload, orderID uint64) (*domain.Order, error)
	ListUserOrders(ctx context.Context, principal TokenPayload, userID uint64) ([]*domain.Order, error)
	ListOrders(ctx context.Context, principal TokenPayload) ([]*domain.Order, error)
	GetOrderStats(ctx context.Context, principal TokenPayload) (*OrderStats, error)
	DeleteOrder(ctx context.Context, principal TokenPayload, orderID uint64) error

	AddLineItem(ctx context.Context, principal TokenPayload, orderID uint64, in AddLineItemInput) (*domain.Order, error)
	UpdateLineItem(ctx context.Context, principal TokenPayload, orderID uint64, in UpdateLineItemInput) (*domain.Order, error)
	RemoveLineItem(ctx context.Context, principal TokenPayload, orderID uint64, detailID uint64) (*domain.Order, error)

	ConfirmOrder(ctx context.Context, principal TokenPayload, orderID uint64, userCouponID *uint64) (*domain.Order, error)
	CompleteOrder(ctx context.Context, principal TokenPayload, orderID uint64) (*domain.Order, error)
	CancelOrder(ctx context.Context, principal TokenPayload, orderID uint64) (*domain.Order, error)
	RefundOrder(ctx context.Context, principal TokenPayload, orderID uint64) (*domain.Order, error)
}

type UserService interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, login string, password string) (string, error)
	GetUser(ctx context.Context, principal TokenPayload, userID uint64) (*domain.User, error)
	ListUsers(ctx context.Context, principal TokenPayload) ([]*domain.User, error)
	ResetPassword(ctx context.Context, principal TokenPayload, password string) error
	TopUpBalance(ctx context.Context, principal TokenPayload, userID uint64, amount decimal.Decimal) (*domain.User, error)
}

type CatalogService interface {
	CreateStore(ctx context.Context, principal TokenPayload, store *domain.Store) (*domain.Store, error)
	GetStore(ctx context.Context, storeID uint64) (*domain.Store, error)
	ListStores(ctx context.Context) ([]*domain.Store, error)
	UpdateStore(ctx context.Context, principal TokenPayload, store *domain.Store) (*domain.Store, error)
	DeleteStore(ctx context.Context, principal TokenPayload, storeID uint64) error

	CreateMenuItem(ctx context.Context, principal TokenPayload, item *domain.MenuItem) (*domain.MenuItem, error)
	GetMenuItem(ctx context.Context, itemID uint64) (*domain.MenuItem, error)
	ListMenuItems(ctx context.Context) ([]*domain.MenuItem, error)
	ListMenuItemsByStore(ctx context.Context, storeID uint64) ([]*domain.MenuItem, error)
	SearchMenuItems(ctx context.Context, query string) ([]*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, principal TokenPayload, item *domain.MenuItem) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, principal TokenPayload, itemID uint64) error

	CreateReview(ctx context.Context, principal TokenPayload, review *domain.Review) (*domain.Review, error)
	ListReviewsByItem(ctx context.Context, itemID uint64) ([]*domain.Review, error)
	UpdateReview(ctx context.Context, principal TokenPayload, review *domain.Review) (*domain.Review, error)
	DeleteReview(ctx context.Context, principal TokenPayload, reviewID uint64) error
}

type CouponService interface {
	CreateCoupon(ctx context.Context, principal TokenPayload, coupon *domain.Coupon) (*domain.Coupon, error)
	CreateCouponsBatch(ctx context.Context, principal TokenPayload, coupons []*domain.Coupon) ([]*domain.Coupon, error)
	GetCoupon(ctx context.Context, couponID uint64) (*domain.Coupon, error)
	GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error)
	UpdateCoupon(ctx context.Context, principal TokenPayload, coupon *domain.Coupon) (*domain.Coupon, error)
	DeleteCoupon(ctx context.Context, principal TokenPayload, couponID uint64) error
	ListActiveCoupons(ctx context.Context) ([]*domain.Coupon, error)

	AssignCoupon(ctx context.Context, principal TokenPayload, userID, couponID uint64) (*domain.UserCoupon, error)
	ListUserCoupons(ctx context.Context, principal TokenPayload, userID uint64, used *bool) ([]*domain.UserCoupon, error)
}
