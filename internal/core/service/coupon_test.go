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

func TestService_CreateCoupon(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	admin := port.TokenPayload{UserID: 1, Role: domain.RoleAdmin}
	coupon := domain.Coupon{
		Discount:    decimal.MustParse("10"),
		MinPurchase: decimal.MustParse("50"),
		ExpiresAt:   time.Now().Add(24 * time.Hour),
		IsActive:    true,
	}

	t.Run("Create with generated code", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		repo.EXPECT().ReadCouponByCode(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDataNotFound)
		repo.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *domain.Coupon) (*domain.Coupon, error) {
				saved := *c
				saved.ID = 9
				return &saved, nil
			})

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		c := coupon
		created, err := s.CreateCoupon(context.Background(), admin, &c)
		assert.NoError(t, err)
		assert.Len(t, created.Code, 4)
	})

	t.Run("Code space exhausted", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		taken := coupon
		taken.ID = 8
		repo.EXPECT().ReadCouponByCode(gomock.Any(), gomock.Any()).Return(&taken, nil).Times(20)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		c := coupon
		created, err := s.CreateCoupon(context.Background(), admin, &c)
		assert.ErrorIs(t, err, domain.ErrCouponCodeExhausted)
		assert.Nil(t, created)
	})

	t.Run("Create as regular user", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		c := coupon
		created, err := s.CreateCoupon(context.Background(), port.TokenPayload{UserID: 2, Role: domain.RoleUser}, &c)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, created)
	})
}

func TestService_CreateCouponsBatch(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	admin := port.TokenPayload{UserID: 1, Role: domain.RoleAdmin}

	t.Run("Batch of three", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		repo.EXPECT().ReadCouponByCode(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrDataNotFound).Times(3)
		repo.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *domain.Coupon) (*domain.Coupon, error) {
				return c, nil
			}).Times(3)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		coupons := make([]*domain.Coupon, 3)
		for i := range coupons {
			coupons[i] = &domain.Coupon{
				Discount:  decimal.MustParse("5"),
				ExpiresAt: time.Now().Add(24 * time.Hour),
				IsActive:  true,
			}
		}

		created, err := s.CreateCouponsBatch(context.Background(), admin, coupons)
		assert.NoError(t, err)
		assert.Len(t, created, 3)
	})

	t.Run("Empty batch", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		created, err := s.CreateCouponsBatch(context.Background(), admin, nil)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
		assert.Nil(t, created)
	})
}

func TestService_AssignCoupon(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	owner := port.TokenPayload{UserID: 2, Role: domain.RoleUser}
	user := domain.User{ID: 2, Login: "test"}
	coupon := domain.Coupon{
		ID:        9,
		Code:      "1234",
		Discount:  decimal.MustParse("10"),
		ExpiresAt: time.Now().Add(24 * time.Hour),
		IsActive:  true,
	}

	type assignTest struct {
		name      string
		principal port.TokenPayload
		userID    uint64
		mock      func(repo *mock.MockRepository)
		expError  error
	}

	tests := []assignTest{
		{
			name:      "Claim free coupon",
			principal: owner,
			userID:    2,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadUser(gomock.Any(), uint64(2)).Return(&user, nil)
				repo.EXPECT().ReadCoupon(gomock.Any(), uint64(9)).Return(&coupon, nil)
				repo.EXPECT().CountUserCouponsByCoupon(gomock.Any(), uint64(9)).Return(int64(0), nil)
				repo.EXPECT().AssignUserCoupon(gomock.Any(), gomock.Any()).
					Return(&domain.UserCoupon{ID: 77, UserID: 2, CouponID: 9}, nil)
			},
		},
		{
			name:      "Coupon already claimed",
			principal: owner,
			userID:    2,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadUser(gomock.Any(), uint64(2)).Return(&user, nil)
				repo.EXPECT().ReadCoupon(gomock.Any(), uint64(9)).Return(&coupon, nil)
				repo.EXPECT().CountUserCouponsByCoupon(gomock.Any(), uint64(9)).Return(int64(1), nil)
			},
			expError: domain.ErrCouponAlreadyClaimed,
		},
		{
			name:      "Lost claim race",
			principal: owner,
			userID:    2,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadUser(gomock.Any(), uint64(2)).Return(&user, nil)
				repo.EXPECT().ReadCoupon(gomock.Any(), uint64(9)).Return(&coupon, nil)
				repo.EXPECT().CountUserCouponsByCoupon(gomock.Any(), uint64(9)).Return(int64(0), nil)
				repo.EXPECT().AssignUserCoupon(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrConflictingData)
			},
			expError: domain.ErrCouponAlreadyClaimed,
		},
		{
			name:      "Expired coupon",
			principal: owner,
			userID:    2,
			mock: func(repo *mock.MockRepository) {
				expired := coupon
				expired.ExpiresAt = time.Now().Add(-time.Hour)
				repo.EXPECT().ReadUser(gomock.Any(), uint64(2)).Return(&user, nil)
				repo.EXPECT().ReadCoupon(gomock.Any(), uint64(9)).Return(&expired, nil)
			},
			expError: domain.ErrCouponInvalid,
		},
		{
			name:      "Claim for another user",
			principal: owner,
			userID:    3,
			mock:      func(repo *mock.MockRepository) {},
			expError:  domain.ErrForbidden,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.AssignCoupon(context.Background(), test.principal, test.userID, 9)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, uint64(2), result.UserID)
			assert.False(t, result.IsUsed)
		})
	}
}

func TestService_UpdateCoupon(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	admin := port.TokenPayload{UserID: 1, Role: domain.RoleAdmin}

	t.Run("Code survives update", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		current := domain.Coupon{
			ID:        9,
			Code:      "1234",
			Discount:  decimal.MustParse("10"),
			ExpiresAt: time.Now().Add(24 * time.Hour),
			IsActive:  true,
		}
		repo.EXPECT().ReadCoupon(gomock.Any(), uint64(9)).Return(&current, nil)
		repo.EXPECT().UpdateCoupon(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *domain.Coupon) (*domain.Coupon, error) {
				return c, nil
			})

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		updated, err := s.UpdateCoupon(context.Background(), admin, &domain.Coupon{
			ID:        9,
			Code:      "9999",
			Discount:  decimal.MustParse("20"),
			ExpiresAt: time.Now().Add(48 * time.Hour),
			IsActive:  true,
		})
		assert.NoError(t, err)
		assert.Equal(t, "1234", updated.Code)
	})
}
