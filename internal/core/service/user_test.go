package service_test

import (
	"context"
	"testing"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/port"
	"github.com/dinehall/backend/internal/core/port/mock"
	"github.com/dinehall/backend/internal/core/service"
	"github.com/dinehall/backend/internal/core/utils"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository, ts *mock.MockTokenService)

func TestService_UserRegister(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type userRegisterTest struct {
		name      string
		user      domain.User
		mock      prepareMocks
		expError  error
		expResult *domain.User
	}

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		ID:       1,
		Login:    "test",
		Password: hashedPass,
		Role:     domain.RoleUser,
		Balance:  decimal.Zero,
	}

	tests := []userRegisterTest{
		{
			name: "Register good",
			user: domain.User{Login: user.Login, Password: "test"},
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&user, nil)
			},
			expError:  nil,
			expResult: &user,
		},
		{
			name: "Register already exists",
			user: domain.User{Login: user.Login, Password: "test"},
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError:  domain.ErrConflictingData,
			expResult: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo, ts)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.RegisterUser(context.Background(), &test.user)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_UserLogin(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type userLoginTest struct {
		name     string
		login    string
		password string
		mock     prepareMocks
		expError error
	}

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		ID:       1,
		Login:    "test",
		Password: hashedPass,
		Role:     domain.RoleUser,
	}

	tests := []userLoginTest{
		{
			name:     "Login good",
			login:    user.Login,
			password: "test",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
				ts.EXPECT().CreateToken(&user).Return("token", nil)
			},
			expError: nil,
		},
		{
			name:     "Password bad",
			login:    user.Login,
			password: "hacker",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Login bad",
			login:    "nobody",
			password: "test",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), "nobody").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo, ts)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			token, err := s.LoginUser(context.Background(), test.login, test.password)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestService_TopUpBalance(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	admin := port.TokenPayload{UserID: 1, Role: domain.RoleAdmin}
	regular := port.TokenPayload{UserID: 2, Role: domain.RoleUser}

	type topUpTest struct {
		name      string
		principal port.TokenPayload
		userID    uint64
		amount    decimal.Decimal
		mock      prepareMocks
		expError  error
	}

	credited := domain.User{ID: 2, Login: "test", Balance: decimal.MustParse("150")}

	tests := []topUpTest{
		{
			name:      "Top up as admin",
			principal: admin,
			userID:    2,
			amount:    decimal.MustParse("50"),
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().CreditUserBalance(gomock.Any(), uint64(2), decEq("50")).
					Return(&credited, nil)
			},
		},
		{
			name:      "Top up as regular user",
			principal: regular,
			userID:    2,
			amount:    decimal.MustParse("50"),
			mock:      func(repo *mock.MockRepository, ts *mock.MockTokenService) {},
			expError:  domain.ErrForbidden,
		},
		{
			name:      "Top up zero amount",
			principal: admin,
			userID:    2,
			amount:    decimal.Zero,
			mock:      func(repo *mock.MockRepository, ts *mock.MockTokenService) {},
			expError:  domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo, ts)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.TopUpBalance(context.Background(), test.principal, test.userID, test.amount)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, &credited, result)
		})
	}
}

func TestService_ListUsers(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	users := []*domain.User{
		{ID: 1, Login: "admin", Role: domain.RoleAdmin},
		{ID: 2, Login: "test", Role: domain.RoleUser},
	}

	t.Run("List as admin", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		repo.EXPECT().ListUsers(gomock.Any()).Return(users, nil)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.ListUsers(context.Background(), port.TokenPayload{UserID: 1, Role: domain.RoleAdmin})
		assert.NoError(t, err)
		assert.Equal(t, users, result)
	})

	t.Run("List as regular user", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.ListUsers(context.Background(), port.TokenPayload{UserID: 2, Role: domain.RoleUser})
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, result)
	})
}

func TestService_ResetPassword(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	principal := port.TokenPayload{UserID: 2, Role: domain.RoleUser}

	t.Run("Reset own password", func(t *testing.T) {
		hashed, _ := utils.HashPassword("fresh")
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		repo.EXPECT().UpdateUserPassword(gomock.Any(), uint64(2), hashed).Return(nil)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		assert.NoError(t, s.ResetPassword(context.Background(), principal, hashed))
	})

	t.Run("Reset with empty password", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		assert.ErrorIs(t, s.ResetPassword(context.Background(), principal, ""), domain.ErrBadRequest)
	})
}

func TestService_GetUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	user := domain.User{ID: 2, Login: "test"}

	t.Run("Self access", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		repo.EXPECT().ReadUser(gomock.Any(), uint64(2)).Return(&user, nil)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.GetUser(context.Background(), port.TokenPayload{UserID: 2, Role: domain.RoleUser}, 2)
		assert.NoError(t, err)
		assert.Equal(t, &user, result)
	})

	t.Run("Foreign access", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.GetUser(context.Background(), port.TokenPayload{UserID: 3, Role: domain.RoleUser}, 2)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, result)
	})
}
