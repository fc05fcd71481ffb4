package http

import (
	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/port"
	"github.com/gin-gonic/gin"
)

type addLineItemRequest struct {
	ItemID   uint64          `json:"itemId" binding:"required"`
	Quantity int32           `json:"quantity" binding:"required,gt=0"`
	Size     domain.ItemSize `json:"size" binding:"required,oneof=SMALL LARGE"`
}

type updateLineItemRequest struct {
	Quantity int32           `json:"quantity" binding:"required,gt=0"`
	Size     domain.ItemSize `json:"size" binding:"required,oneof=SMALL LARGE"`
}

func (oh *OrderHandler) AddLineItem(ctx *gin.Context) {
	orderID, err := idParam(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := addLineItemRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.AddLineItem(ctx, getAuthPayload(ctx), orderID, port.AddLineItemInput{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		Size:     req.Size,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) UpdateLineItem(ctx *gin.Context) {
	orderID, err := idParam(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	detailID, err := idParam(ctx, "detailId")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := updateLineItemRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.UpdateLineItem(ctx, getAuthPayload(ctx), orderID, port.UpdateLineItemInput{
		DetailID: detailID,
		Quantity: req.Quantity,
		Size:     req.Size,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) RemoveLineItem(ctx *gin.Context) {
	orderID, err := idParam(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	detailID, err := idParam(ctx, "detailId")
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.RemoveLineItem(ctx, getAuthPayload(ctx), orderID, detailID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}
