package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type lineItemResponse struct {
	DetailID  uint64          `json:"detailId"`
	ItemID    uint64          `json:"itemId"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Size      domain.ItemSize `json:"size"`
}

type orderResponse struct {
	OrderID    uint64             `json:"orderId"`
	UserID     uint64             `json:"userId"`
	StoreID    uint64             `json:"storeId"`
	Status     domain.OrderStatus `json:"status"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
	OrderTime  time.Time          `json:"orderTime"`
	Notes      string             `json:"notes"`
	DineOption string             `json:"dineOption"`
	Items      []lineItemResponse `json:"items"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	items := make([]lineItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, lineItemResponse{
			DetailID:  item.DetailID,
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Size:      item.Size,
		})
	}
	return orderResponse{
		OrderID:    order.ID,
		UserID:     order.UserID,
		StoreID:    order.StoreID,
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
		OrderTime:  order.OrderTime,
		Notes:      order.Notes,
		DineOption: order.DineOption,
		Items:      items,
	}
}

func newOrderListResponse(orders []*domain.Order) []orderResponse {
	result := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, newOrderResponse(order))
	}
	return result
}

type createOrderRequest struct {
	StoreID    uint64 `json:"storeId" binding:"required"`
	Notes      string `json:"notes"`
	DineOption string `json:"dineOption"`
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.CreateOrder(ctx, getAuthPayload(ctx), req.StoreID, req.Notes, req.DineOption)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	orderID, err := idParam(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, getAuthPayload(ctx), orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ListUserOrders(ctx *gin.Context) {
	userID, err := idParam(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	orders, err := oh.service.ListUserOrders(ctx, getAuthPayload(ctx), userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderListResponse(orders))
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	orders, err := oh.service.ListOrders(ctx, getAuthPayload(ctx))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderListResponse(orders))
}

func (oh *OrderHandler) GetOrderStats(ctx *gin.Context) {
	stats, err := oh.service.GetOrderStats(ctx, getAuthPayload(ctx))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, stats)
}

func (oh *OrderHandler) DeleteOrder(ctx *gin.Context) {
	orderID, err := idParam(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	if err := oh.service.DeleteOrder(ctx, getAuthPayload(ctx), orderID); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (oh *OrderHandler) ConfirmOrder(ctx *gin.Context) {
	orderID, err := idParam(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	var userCouponID *uint64
	if raw, ok := ctx.GetQuery("userCouponId"); ok {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		userCouponID = &id
	}

	order, err := oh.service.ConfirmOrder(ctx, getAuthPayload(ctx), orderID, userCouponID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) CompleteOrder(ctx *gin.Context) {
	oh.transition(ctx, oh.service.CompleteOrder)
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	oh.transition(ctx, oh.service.CancelOrder)
}

func (oh *OrderHandler) RefundOrder(ctx *gin.Context) {
	oh.transition(ctx, oh.service.RefundOrder)
}

func (oh *OrderHandler) transition(ctx *gin.Context,
	op func(ctx context.Context, principal port.TokenPayload, orderID uint64) (*domain.Order, error)) {
	orderID, err := idParam(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := op(ctx, getAuthPayload(ctx), orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}
