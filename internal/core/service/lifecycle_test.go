package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/port"
	"github.com/dinehall/backend/internal/core/port/mock"
	"github.com/dinehall/backend/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareScope func(repo *mock.MockRepository, scope *mock.MockTransitionScope)

// expectTransition routes ExecOrderTransition through the scope mock the way
// the real repository runs the closure inside a transaction.
func expectTransition(repo *mock.MockRepository, scope *mock.MockTransitionScope, orderID uint64) {
	repo.EXPECT().ExecOrderTransition(gomock.Any(), orderID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ uint64, fn port.TransitionFn) (*domain.Order, error) {
			if err := fn(ctx, scope); err != nil {
				return nil, err
			}
			return scope.Order(), nil
		})
}

type decMatcher struct {
	want decimal.Decimal
}

func (m decMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Cmp(m.want) == 0
}

func (m decMatcher) String() string {
	return "decimal " + m.want.String()
}

func decEq(s string) gomock.Matcher {
	return decMatcher{want: decimal.MustParse(s)}
}

func testOrder(status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:         42,
		UserID:     1,
		StoreID:    3,
		Status:     status,
		TotalPrice: decimal.MustParse("10"),
		OrderTime:  time.Now(),
		Items: []domain.LineItem{
			{DetailID: 100, OrderID: 42, ItemID: 7, Quantity: 2, UnitPrice: decimal.MustParse("5"), Size: domain.ItemSizeSmall},
		},
	}
}

func TestService_ConfirmOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	owner := port.TokenPayload{UserID: 1, Role: domain.RoleUser}

	type confirmTest struct {
		name         string
		principal    port.TokenPayload
		order        *domain.Order
		userCouponID *uint64
		mock         prepareScope
		expError     error
		expStatus    domain.OrderStatus
		expTotal     string
	}

	couponID := uint64(55)

	tests := []confirmTest{
		{
			name:      "Confirm success",
			principal: owner,
			order:     testOrder(domain.OrderStatusCreated),
			mock: func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {
				scope.EXPECT().MenuItemForUpdate(gomock.Any(), uint64(7)).
					Return(&domain.MenuItem{ID: 7, Stock: 10}, nil)
				scope.EXPECT().SetMenuItemStock(gomock.Any(), uint64(7), int32(8)).Return(nil)
				scope.EXPECT().UserForUpdate(gomock.Any(), uint64(1)).
					Return(&domain.User{ID: 1, Balance: decimal.MustParse("100")}, nil)
				scope.EXPECT().SetUserBalance(gomock.Any(), uint64(1), decEq("90")).Return(nil)
				scope.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)
			},
			expStatus: domain.OrderStatusInProgress,
			expTotal:  "10",
		},
		{
			name:         "Confirm with coupon success",
			principal:    owner,
			order:        testOrder(domain.OrderStatusCreated),
			userCouponID: &couponID,
			mock: func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {
				scope.EXPECT().UserCouponForUpdate(gomock.Any(), couponID).
					Return(&domain.UserCoupon{ID: couponID, UserID: 1, CouponID: 9, IsUsed: false}, nil)
				scope.EXPECT().ReadCoupon(gomock.Any(), uint64(9)).
					Return(&domain.Coupon{
						ID:          9,
						Discount:    decimal.MustParse("4"),
						MinPurchase: decimal.MustParse("5"),
						ExpiresAt:   time.Now().Add(time.Hour),
						IsActive:    true,
					}, nil)
				scope.EXPECT().MenuItemForUpdate(gomock.Any(), uint64(7)).
					Return(&domain.MenuItem{ID: 7, Stock: 10}, nil)
				scope.EXPECT().SetMenuItemStock(gomock.Any(), uint64(7), int32(8)).Return(nil)
				scope.EXPECT().UserForUpdate(gomock.Any(), uint64(1)).
					Return(&domain.User{ID: 1, Balance: decimal.MustParse("100")}, nil)
				scope.EXPECT().SetUserBalance(gomock.Any(), uint64(1), decEq("94")).Return(nil)
				scope.EXPECT().MarkUserCouponUsed(gomock.Any(), couponID).Return(nil)
				scope.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)
			},
			expStatus: domain.OrderStatusInProgress,
			expTotal:  "6",
		},
		{
			name:         "Confirm coupon below minimum purchase",
			principal:    owner,
			order:        testOrder(domain.OrderStatusCreated),
			userCouponID: &couponID,
			mock: func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {
				scope.EXPECT().UserCouponForUpdate(gomock.Any(), couponID).
					Return(&domain.UserCoupon{ID: couponID, UserID: 1, CouponID: 9, IsUsed: false}, nil)
				scope.EXPECT().ReadCoupon(gomock.Any(), uint64(9)).
					Return(&domain.Coupon{
						ID:          9,
						Discount:    decimal.MustParse("4"),
						MinPurchase: decimal.MustParse("50"),
						ExpiresAt:   time.Now().Add(time.Hour),
						IsActive:    true,
					}, nil)
			},
			expError: domain.ErrCouponMinPurchase,
		},
		{
			name:         "Confirm used coupon",
			principal:    owner,
			order:        testOrder(domain.OrderStatusCreated),
			userCouponID: &couponID,
			mock: func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {
				scope.EXPECT().UserCouponForUpdate(gomock.Any(), couponID).
					Return(&domain.UserCoupon{ID: couponID, UserID: 1, CouponID: 9, IsUsed: true}, nil)
			},
			expError: domain.ErrCouponInvalid,
		},
		{
			name:         "Confirm foreign coupon",
			principal:    owner,
			order:        testOrder(domain.OrderStatusCreated),
			userCouponID: &couponID,
			mock: func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {
				scope.EXPECT().UserCouponForUpdate(gomock.Any(), couponID).
					Return(&domain.UserCoupon{ID: couponID, UserID: 2, CouponID: 9, IsUsed: false}, nil)
			},
			expError: domain.ErrForbidden,
		},
		{
			name:         "Confirm loses coupon redemption race",
			principal:    owner,
			order:        testOrder(domain.OrderStatusCreated),
			userCouponID: &couponID,
			mock: func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {
				scope.EXPECT().UserCouponForUpdate(gomock.Any(), couponID).
					Return(&domain.UserCoupon{ID: couponID, UserID: 1, CouponID: 9, IsUsed: false}, nil)
				scope.EXPECT().ReadCoupon(gomock.Any(), uint64(9)).
					Return(&domain.Coupon{
						ID:          9,
						Discount:    decimal.MustParse("4"),
						MinPurchase: decimal.MustParse("5"),
						ExpiresAt:   time.Now().Add(time.Hour),
						IsActive:    true,
					}, nil)
				scope.EXPECT().MenuItemForUpdate(gomock.Any(), uint64(7)).
					Return(&domain.MenuItem{ID: 7, Stock: 10}, nil)
				scope.EXPECT().SetMenuItemStock(gomock.Any(), uint64(7), int32(8)).Return(nil)
				scope.EXPECT().UserForUpdate(gomock.Any(), uint64(1)).
					Return(&domain.User{ID: 1, Balance: decimal.MustParse("100")}, nil)
				scope.EXPECT().SetUserBalance(gomock.Any(), uint64(1), decEq("94")).Return(nil)
				// Another confirmation flipped is_used first; the whole
				// transaction aborts with it.
				scope.EXPECT().MarkUserCouponUsed(gomock.Any(), couponID).
					Return(domain.ErrConcurrencyConflict)
			},
			expError: domain.ErrConcurrencyConflict,
		},
		{
			name:      "Confirm already in progress",
			principal: owner,
			order:     testOrder(domain.OrderStatusInProgress),
			mock:      func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {},
			expError:  domain.ErrOrderStateTransition,
		},
		{
			name:      "Confirm empty order",
			principal: owner,
			order: &domain.Order{
				ID: 42, UserID: 1, StoreID: 3,
				Status:     domain.OrderStatusCreated,
				TotalPrice: decimal.Zero,
			},
			mock:     func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {},
			expError: domain.ErrBadRequest,
		},
		{
			name:      "Confirm insufficient stock",
			principal: owner,
			order:     testOrder(domain.OrderStatusCreated),
			mock: func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {
				scope.EXPECT().MenuItemForUpdate(gomock.Any(), uint64(7)).
					Return(&domain.MenuItem{ID: 7, Stock: 1}, nil)
			},
			expError: domain.ErrInsufficientStock,
		},
		{
			name:      "Confirm insufficient balance",
			principal: owner,
			order:     testOrder(domain.OrderStatusCreated),
			mock: func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {
				scope.EXPECT().MenuItemForUpdate(gomock.Any(), uint64(7)).
					Return(&domain.MenuItem{ID: 7, Stock: 10}, nil)
				scope.EXPECT().SetMenuItemStock(gomock.Any(), uint64(7), int32(8)).Return(nil)
				scope.EXPECT().UserForUpdate(gomock.Any(), uint64(1)).
					Return(&domain.User{ID: 1, Balance: decimal.MustParse("5")}, nil)
			},
			expError: domain.ErrInsufficientBalance,
		},
		{
			name:      "Confirm foreign order",
			principal: port.TokenPayload{UserID: 2, Role: domain.RoleUser},
			order:     testOrder(domain.OrderStatusCreated),
			mock:      func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {},
			expError:  domain.ErrForbidden,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			scope := mock.NewMockTransitionScope(mockCtrl)
			scope.EXPECT().Order().Return(test.order).AnyTimes()
			expectTransition(repo, scope, test.order.ID)
			test.mock(repo, scope)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.ConfirmOrder(context.Background(), test.principal, test.order.ID, test.userCouponID)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expStatus, result.Status)
			assert.True(t, decimal.MustParse(test.expTotal).Cmp(result.TotalPrice) == 0,
				"total = %s", result.TotalPrice)
		})
	}
}

func TestService_CancelOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	owner := port.TokenPayload{UserID: 1, Role: domain.RoleUser}

	type cancelTest struct {
		name     string
		order    *domain.Order
		mock     prepareScope
		expError error
	}

	tests := []cancelTest{
		{
			name:  "Cancel created touches no ledgers",
			order: testOrder(domain.OrderStatusCreated),
			mock: func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {
				scope.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:  "Cancel in progress restores stock and balance",
			order: testOrder(domain.OrderStatusInProgress),
			mock: func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {
				scope.EXPECT().MenuItemForUpdate(gomock.Any(), uint64(7)).
					Return(&domain.MenuItem{ID: 7, Stock: 8}, nil)
				scope.EXPECT().SetMenuItemStock(gomock.Any(), uint64(7), int32(10)).Return(nil)
				scope.EXPECT().UserForUpdate(gomock.Any(), uint64(1)).
					Return(&domain.User{ID: 1, Balance: decimal.MustParse("90")}, nil)
				scope.EXPECT().SetUserBalance(gomock.Any(), uint64(1), decEq("100")).Return(nil)
				scope.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "Cancel completed order",
			order:    testOrder(domain.OrderStatusCompleted),
			mock:     func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {},
			expError: domain.ErrOrderStateTransition,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			scope := mock.NewMockTransitionScope(mockCtrl)
			scope.EXPECT().Order().Return(test.order).AnyTimes()
			expectTransition(repo, scope, test.order.ID)
			test.mock(repo, scope)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.CancelOrder(context.Background(), owner, test.order.ID)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.OrderStatusCancelled, result.Status)
		})
	}
}

func TestService_RefundOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	owner := port.TokenPayload{UserID: 1, Role: domain.RoleUser}

	type refundTest struct {
		name     string
		order    *domain.Order
		mock     prepareScope
		expError error
	}

	tests := []refundTest{
		{
			name:  "Refund completed order",
			order: testOrder(domain.OrderStatusCompleted),
			mock: func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {
				scope.EXPECT().MenuItemForUpdate(gomock.Any(), uint64(7)).
					Return(&domain.MenuItem{ID: 7, Stock: 8}, nil)
				scope.EXPECT().SetMenuItemStock(gomock.Any(), uint64(7), int32(10)).Return(nil)
				scope.EXPECT().UserForUpdate(gomock.Any(), uint64(1)).
					Return(&domain.User{ID: 1, Balance: decimal.MustParse("90")}, nil)
				scope.EXPECT().SetUserBalance(gomock.Any(), uint64(1), decEq("100")).Return(nil)
				scope.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "Refund twice",
			order:    testOrder(domain.OrderStatusRefunded),
			mock:     func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {},
			expError: domain.ErrOrderStateTransition,
		},
		{
			name:     "Refund unconfirmed order",
			order:    testOrder(domain.OrderStatusCreated),
			mock:     func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {},
			expError: domain.ErrOrderStateTransition,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			scope := mock.NewMockTransitionScope(mockCtrl)
			scope.EXPECT().Order().Return(test.order).AnyTimes()
			expectTransition(repo, scope, test.order.ID)
			test.mock(repo, scope)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.RefundOrder(context.Background(), owner, test.order.ID)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.OrderStatusRefunded, result.Status)
		})
	}
}

func TestService_CompleteOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	owner := port.TokenPayload{UserID: 1, Role: domain.RoleUser}

	t.Run("Complete in progress", func(t *testing.T) {
		order := testOrder(domain.OrderStatusInProgress)
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		scope := mock.NewMockTransitionScope(mockCtrl)
		scope.EXPECT().Order().Return(order).AnyTimes()
		expectTransition(repo, scope, order.ID)
		scope.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.CompleteOrder(context.Background(), owner, order.ID)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, result.Status)
		assert.True(t, decimal.MustParse("10").Cmp(result.TotalPrice) == 0)
	})

	t.Run("Complete unconfirmed order", func(t *testing.T) {
		order := testOrder(domain.OrderStatusCreated)
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		scope := mock.NewMockTransitionScope(mockCtrl)
		scope.EXPECT().Order().Return(order).AnyTimes()
		expectTransition(repo, scope, order.ID)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.CompleteOrder(context.Background(), owner, order.ID)
		assert.ErrorIs(t, err, domain.ErrOrderStateTransition)
		assert.Nil(t, result)
	})
}

func TestService_DeleteOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	owner := port.TokenPayload{UserID: 1, Role: domain.RoleUser}

	t.Run("Delete created order", func(t *testing.T) {
		order := testOrder(domain.OrderStatusCreated)
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		scope := mock.NewMockTransitionScope(mockCtrl)
		scope.EXPECT().Order().Return(order).AnyTimes()
		expectTransition(repo, scope, order.ID)
		scope.EXPECT().DeleteLineItem(gomock.Any(), uint64(100)).Return(nil)
		scope.EXPECT().DeleteOrder(gomock.Any()).Return(nil)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		assert.NoError(t, s.DeleteOrder(context.Background(), owner, order.ID))
	})

	t.Run("Delete confirmed order", func(t *testing.T) {
		order := testOrder(domain.OrderStatusInProgress)
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		scope := mock.NewMockTransitionScope(mockCtrl)
		scope.EXPECT().Order().Return(order).AnyTimes()
		expectTransition(repo, scope, order.ID)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		err = s.DeleteOrder(context.Background(), owner, order.ID)
		assert.ErrorIs(t, err, domain.ErrOrderStateTransition)
	})
}

func TestService_AddLineItem(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	owner := port.TokenPayload{UserID: 1, Role: domain.RoleUser}

	type addTest struct {
		name     string
		order    *domain.Order
		input    port.AddLineItemInput
		mock     prepareScope
		expError error
		expTotal string
	}

	tests := []addTest{
		{
			name: "Add first item",
			order: &domain.Order{
				ID: 42, UserID: 1, StoreID: 3,
				Status:     domain.OrderStatusCreated,
				TotalPrice: decimal.Zero,
			},
			input: port.AddLineItemInput{ItemID: 7, Quantity: 2, Size: domain.ItemSizeSmall},
			mock: func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {
				scope.EXPECT().MenuItemForUpdate(gomock.Any(), uint64(7)).
					Return(&domain.MenuItem{
						ID: 7, Stock: 10,
						SmallPrice: decimal.MustParse("5"),
						LargePrice: decimal.MustParse("8"),
					}, nil)
				scope.EXPECT().InsertLineItem(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, item *domain.LineItem) (*domain.LineItem, error) {
						saved := *item
						saved.DetailID = 100
						return &saved, nil
					})
				scope.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)
			},
			expTotal: "10",
		},
		{
			name:  "Add beyond cumulative stock",
			order: testOrder(domain.OrderStatusCreated),
			input: port.AddLineItemInput{ItemID: 7, Quantity: 9, Size: domain.ItemSizeSmall},
			mock: func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {
				scope.EXPECT().MenuItemForUpdate(gomock.Any(), uint64(7)).
					Return(&domain.MenuItem{ID: 7, Stock: 10}, nil)
			},
			expError: domain.ErrInsufficientStock,
		},
		{
			name:     "Add to confirmed order",
			order:    testOrder(domain.OrderStatusInProgress),
			input:    port.AddLineItemInput{ItemID: 7, Quantity: 1, Size: domain.ItemSizeSmall},
			mock:     func(repo *mock.MockRepository, scope *mock.MockTransitionScope) {},
			expError: domain.ErrOrderStateTransition,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			scope := mock.NewMockTransitionScope(mockCtrl)
			scope.EXPECT().Order().Return(test.order).AnyTimes()
			expectTransition(repo, scope, test.order.ID)
			test.mock(repo, scope)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.AddLineItem(context.Background(), owner, test.order.ID, test.input)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.True(t, decimal.MustParse(test.expTotal).Cmp(result.TotalPrice) == 0,
				"total = %s", result.TotalPrice)
		})
	}

	t.Run("Add with zero quantity", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.AddLineItem(context.Background(), owner, 42,
			port.AddLineItemInput{ItemID: 7, Quantity: 0, Size: domain.ItemSizeSmall})
		assert.ErrorIs(t, err, domain.ErrBadRequest)
		assert.Nil(t, result)
	})
}

func TestService_UpdateLineItem(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	owner := port.TokenPayload{UserID: 1, Role: domain.RoleUser}

	t.Run("Resize re-snapshots price", func(t *testing.T) {
		order := testOrder(domain.OrderStatusCreated)
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		scope := mock.NewMockTransitionScope(mockCtrl)
		scope.EXPECT().Order().Return(order).AnyTimes()
		expectTransition(repo, scope, order.ID)
		scope.EXPECT().MenuItemForUpdate(gomock.Any(), uint64(7)).
			Return(&domain.MenuItem{
				ID: 7, Stock: 10,
				SmallPrice: decimal.MustParse("5"),
				LargePrice: decimal.MustParse("8"),
			}, nil)
		scope.EXPECT().UpdateLineItem(gomock.Any(), gomock.Any()).Return(nil)
		scope.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.UpdateLineItem(context.Background(), owner, order.ID,
			port.UpdateLineItemInput{DetailID: 100, Quantity: 3, Size: domain.ItemSizeLarge})
		assert.NoError(t, err)
		assert.True(t, decimal.MustParse("24").Cmp(result.TotalPrice) == 0,
			"total = %s", result.TotalPrice)
	})

	t.Run("Unknown detail", func(t *testing.T) {
		order := testOrder(domain.OrderStatusCreated)
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		scope := mock.NewMockTransitionScope(mockCtrl)
		scope.EXPECT().Order().Return(order).AnyTimes()
		expectTransition(repo, scope, order.ID)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.UpdateLineItem(context.Background(), owner, order.ID,
			port.UpdateLineItemInput{DetailID: 999, Quantity: 1, Size: domain.ItemSizeSmall})
		assert.ErrorIs(t, err, domain.ErrDataNotFound)
		assert.Nil(t, result)
	})
}

func TestService_RemoveLineItem(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	owner := port.TokenPayload{UserID: 1, Role: domain.RoleUser}

	t.Run("Remove item recomputes total", func(t *testing.T) {
		order := testOrder(domain.OrderStatusCreated)
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		scope := mock.NewMockTransitionScope(mockCtrl)
		scope.EXPECT().Order().Return(order).AnyTimes()
		expectTransition(repo, scope, order.ID)
		scope.EXPECT().DeleteLineItem(gomock.Any(), uint64(100)).Return(nil)
		scope.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.RemoveLineItem(context.Background(), owner, order.ID, 100)
		assert.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.True(t, result.TotalPrice.IsZero(), "total = %s", result.TotalPrice)
	})
}
