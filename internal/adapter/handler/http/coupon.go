package http

import (
	"net/http"
	"time"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type CouponHandler struct {
	Handler
	service port.CouponService
}

func NewCouponHandler(service port.CouponService, logger *zap.Logger) (*CouponHandler, error) {
	return &CouponHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type couponRequest struct {
	Discount    float64   `json:"discount" binding:"required,gt=0"`
	MinPurchase float64   `json:"minPurchase" binding:"gte=0"`
	ExpiresAt   time.Time `json:"expiresAt" binding:"required"`
	IsActive    bool      `json:"isActive"`
}

type couponResponse struct {
	CouponID    uint64          `json:"couponId"`
	Code        string          `json:"code"`
	Discount    decimal.Decimal `json:"discount"`
	MinPurchase decimal.Decimal `json:"minPurchase"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	IsActive    bool            `json:"isActive"`
}

func newCouponResponse(coupon *domain.Coupon) couponResponse {
	return couponResponse{
		CouponID:    coupon.ID,
		Code:        coupon.Code,
		Discount:    coupon.Discount,
		MinPurchase: coupon.MinPurchase,
		ExpiresAt:   coupon.ExpiresAt,
		IsActive:    coupon.IsActive,
	}
}

func newCouponListResponse(coupons []*domain.Coupon) []couponResponse {
	result := make([]couponResponse, 0, len(coupons))
	for _, coupon := range coupons {
		result = append(result, newCouponResponse(coupon))
	}
	return result
}

func (ch *CouponHandler) couponFromRequest(ctx *gin.Context, req couponRequest) (*domain.Coupon, bool) {
	discount, err := decimal.NewFromFloat64(req.Discount)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return nil, false
	}
	minPurchase := decimal.Zero
	if req.MinPurchase > 0 {
		minPurchase, err = decimal.NewFromFloat64(req.MinPurchase)
		if err != nil {
			ch.handleValidationError(ctx, err)
			return nil, false
		}
	}
	return &domain.Coupon{
		Discount:    discount,
		MinPurchase: minPurchase,
		ExpiresAt:   req.ExpiresAt,
		IsActive:    req.IsActive,
	}, true
}

func (ch *CouponHandler) CreateCoupon(ctx *gin.Context) {
	req := couponRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	coupon, ok := ch.couponFromRequest(ctx, req)
	if !ok {
		return
	}

	created, err := ch.service.CreateCoupon(ctx, getAuthPayload(ctx), coupon)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, newCouponResponse(created), http.StatusCreated)
}

type couponBatchRequest struct {
	Count  int           `json:"count" binding:"required,gt=0,lte=100"`
	Coupon couponRequest `json:"coupon" binding:"required"`
}

func (ch *CouponHandler) CreateCouponsBatch(ctx *gin.Context) {
	req := couponBatchRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	template, ok := ch.couponFromRequest(ctx, req.Coupon)
	if !ok {
		return
	}

	coupons := make([]*domain.Coupon, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		clone := *template
		coupons = append(coupons, &clone)
	}

	created, err := ch.service.CreateCouponsBatch(ctx, getAuthPayload(ctx), coupons)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, newCouponListResponse(created), http.StatusCreated)
}

func (ch *CouponHandler) GetCoupon(ctx *gin.Context) {
	couponID, err := idParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	coupon, err := ch.service.GetCoupon(ctx, couponID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCouponResponse(coupon))
}

func (ch *CouponHandler) GetCouponByCode(ctx *gin.Context) {
	code := ctx.Param("code")

	coupon, err := ch.service.GetCouponByCode(ctx, code)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCouponResponse(coupon))
}

func (ch *CouponHandler) UpdateCoupon(ctx *gin.Context) {
	couponID, err := idParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	req := couponRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	coupon, ok := ch.couponFromRequest(ctx, req)
	if !ok {
		return
	}
	coupon.ID = couponID

	updated, err := ch.service.UpdateCoupon(ctx, getAuthPayload(ctx), coupon)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCouponResponse(updated))
}

func (ch *CouponHandler) DeleteCoupon(ctx *gin.Context) {
	couponID, err := idParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	if err := ch.service.DeleteCoupon(ctx, getAuthPayload(ctx), couponID); err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (ch *CouponHandler) ListActiveCoupons(ctx *gin.Context) {
	coupons, err := ch.service.ListActiveCoupons(ctx)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCouponListResponse(coupons))
}

type assignCouponRequest struct {
	UserID   uint64 `json:"userId" binding:"required"`
	CouponID uint64 `json:"couponId" binding:"required"`
}

type userCouponResponse struct {
	UserCouponID uint64 `json:"userCouponId"`
	UserID       uint64 `json:"userId"`
	CouponID     uint64 `json:"couponId"`
	IsUsed       bool   `json:"isUsed"`
}

func newUserCouponResponse(uc *domain.UserCoupon) userCouponResponse {
	return userCouponResponse{
		UserCouponID: uc.ID,
		UserID:       uc.UserID,
		CouponID:     uc.CouponID,
		IsUsed:       uc.IsUsed,
	}
}

func (ch *CouponHandler) AssignCoupon(ctx *gin.Context) {
	req := assignCouponRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	assigned, err := ch.service.AssignCoupon(ctx, getAuthPayload(ctx), req.UserID, req.CouponID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, newUserCouponResponse(assigned), http.StatusCreated)
}

func (ch *CouponHandler) ListUserCoupons(ctx *gin.Context) {
	userID, err := idParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	var used *bool
	if raw, ok := ctx.GetQuery("used"); ok {
		switch raw {
		case "true":
			v := true
			used = &v
		case "false":
			v := false
			used = &v
		default:
			ch.handleError(ctx, domain.ErrBadRequest)
			return
		}
	}

	coupons, err := ch.service.ListUserCoupons(ctx, getAuthPayload(ctx), userID, used)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]userCouponResponse, 0, len(coupons))
	for _, uc := range coupons {
		result = append(result, newUserCouponResponse(uc))
	}
	ch.handleSuccess(ctx, result)
}
