package http

import (
	"net/http"
	"time"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/port"
	"github.com/dinehall/backend/internal/core/utils"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.UserService
}

func NewUserHandler(service port.UserService, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type userRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type userResponse struct {
	ID           uint64          `json:"userId"`
	Login        string          `json:"login"`
	Phone        string          `json:"phone"`
	Role         domain.UserRole `json:"role"`
	Balance      decimal.Decimal `json:"balance"`
	RegisteredAt time.Time       `json:"registeredAt"`
}

func newUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:           user.ID,
		Login:        user.Login,
		Phone:        user.Phone,
		Role:         user.Role,
		Balance:      user.Balance,
		RegisteredAt: user.RegisteredAt,
	}
}

func (uh *UserHandler) RegisterUser(ctx *gin.Context) {
	req := userRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		uh.handleError(ctx, domain.ErrInternal)
		return
	}

	user := &domain.User{
		Login:    req.Login,
		Password: hashed,
		Phone:    req.Phone,
	}

	_, err = uh.service.RegisterUser(ctx, user)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	// Token return
	uh.LoginUser(ctx)
}

func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	req := userRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, req.Login, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, struct {
		Token string `json:"token"`
	}{Token: token})
}

func (uh *UserHandler) GetUser(ctx *gin.Context) {
	userID, err := idParam(ctx, "id")
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	user, err := uh.service.GetUser(ctx, getAuthPayload(ctx), userID)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, newUserResponse(user))
}

func (uh *UserHandler) ListUsers(ctx *gin.Context) {
	users, err := uh.service.ListUsers(ctx, getAuthPayload(ctx))
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	result := make([]userResponse, 0, len(users))
	for _, user := range users {
		result = append(result, newUserResponse(user))
	}
	uh.handleSuccess(ctx, result)
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

func (uh *UserHandler) ResetPassword(ctx *gin.Context) {
	req := resetPasswordRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		uh.handleError(ctx, domain.ErrInternal)
		return
	}

	if err := uh.service.ResetPassword(ctx, getAuthPayload(ctx), hashed); err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

type topUpRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

func (uh *UserHandler) TopUpBalance(ctx *gin.Context) {
	userID, err := idParam(ctx, "id")
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	req := topUpRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	user, err := uh.service.TopUpBalance(ctx, getAuthPayload(ctx), userID, amount)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, newUserResponse(user))
}
