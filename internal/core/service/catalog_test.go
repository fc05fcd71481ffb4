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
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestService_SearchMenuItems(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	found := []*domain.MenuItem{
		{ID: 7, StoreID: 3, Name: "latte", Category: "coffee"},
		{ID: 8, StoreID: 3, Name: "flat white", Category: "coffee"},
	}

	t.Run("Search by fragment", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		repo.EXPECT().SearchMenuItems(gomock.Any(), "coffee").Return(found, nil)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.SearchMenuItems(context.Background(), "coffee")
		assert.NoError(t, err)
		assert.Equal(t, found, result)
	})

	t.Run("Search with empty query", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.SearchMenuItems(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrBadRequest)
		assert.Nil(t, result)
	})
}

func TestService_ListMenuItems(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	items := []*domain.MenuItem{
		{ID: 7, StoreID: 3, Name: "latte"},
		{ID: 9, StoreID: 4, Name: "ramen"},
	}

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	repo.EXPECT().ListMenuItems(gomock.Any()).Return(items, nil)

	s, err := service.NewService(repo, ts, logger)
	assert.NoError(t, err)

	result, err := s.ListMenuItems(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, items, result)
}

func TestService_UpdateReview(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	author := port.TokenPayload{UserID: 1, Role: domain.RoleUser}
	stranger := port.TokenPayload{UserID: 2, Role: domain.RoleUser}
	admin := port.TokenPayload{UserID: 3, Role: domain.RoleAdmin}

	stored := func() *domain.Review {
		return &domain.Review{
			ID: 10, UserID: 1, ItemID: 7,
			Rating: 3, Comment: "ok", ReviewTime: time.Now(),
		}
	}

	type updateTest struct {
		name      string
		principal port.TokenPayload
		review    *domain.Review
		mock      func(repo *mock.MockRepository)
		expError  error
	}

	tests := []updateTest{
		{
			name:      "Update own review",
			principal: author,
			review:    &domain.Review{ID: 10, Rating: 5, Comment: "much better"},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadReview(gomock.Any(), uint64(10)).Return(stored(), nil)
				repo.EXPECT().UpdateReview(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, review *domain.Review) (*domain.Review, error) {
						// Authorship and item survive the rewrite.
						assert.Equal(t, uint64(1), review.UserID)
						assert.Equal(t, uint64(7), review.ItemID)
						assert.Equal(t, int32(5), review.Rating)
						return review, nil
					})
			},
		},
		{
			name:      "Update as admin",
			principal: admin,
			review:    &domain.Review{ID: 10, Rating: 1, Comment: "moderated"},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadReview(gomock.Any(), uint64(10)).Return(stored(), nil)
				repo.EXPECT().UpdateReview(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, review *domain.Review) (*domain.Review, error) {
						return review, nil
					})
			},
		},
		{
			name:      "Update foreign review",
			principal: stranger,
			review:    &domain.Review{ID: 10, Rating: 5, Comment: "hijack"},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadReview(gomock.Any(), uint64(10)).Return(stored(), nil)
			},
			expError: domain.ErrForbidden,
		},
		{
			name:      "Update with bad rating",
			principal: author,
			review:    &domain.Review{ID: 10, Rating: 6},
			mock:      func(repo *mock.MockRepository) {},
			expError:  domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.UpdateReview(context.Background(), test.principal, test.review)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.review.Rating, result.Rating)
			assert.Equal(t, test.review.Comment, result.Comment)
		})
	}
}
