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

type CatalogHandler struct {
	Handler
	service port.CatalogService
}

func NewCatalogHandler(service port.CatalogService, logger *zap.Logger) (*CatalogHandler, error) {
	return &CatalogHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type storeRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

type storeResponse struct {
	StoreID  uint64 `json:"storeId"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func newStoreResponse(store *domain.Store) storeResponse {
	return storeResponse{
		StoreID:  store.ID,
		Name:     store.Name,
		Location: store.Location,
	}
}

func (ch *CatalogHandler) CreateStore(ctx *gin.Context) {
	req := storeRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	store, err := ch.service.CreateStore(ctx, getAuthPayload(ctx), &domain.Store{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, newStoreResponse(store), http.StatusCreated)
}

func (ch *CatalogHandler) GetStore(ctx *gin.Context) {
	storeID, err := idParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	store, err := ch.service.GetStore(ctx, storeID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newStoreResponse(store))
}

func (ch *CatalogHandler) ListStores(ctx *gin.Context) {
	stores, err := ch.service.ListStores(ctx)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]storeResponse, 0, len(stores))
	for _, store := range stores {
		result = append(result, newStoreResponse(store))
	}
	ch.handleSuccess(ctx, result)
}

func (ch *CatalogHandler) UpdateStore(ctx *gin.Context) {
	storeID, err := idParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	req := storeRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	store, err := ch.service.UpdateStore(ctx, getAuthPayload(ctx), &domain.Store{
		ID:       storeID,
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newStoreResponse(store))
}

func (ch *CatalogHandler) DeleteStore(ctx *gin.Context) {
	storeID, err := idParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	if err := ch.service.DeleteStore(ctx, getAuthPayload(ctx), storeID); err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

type menuItemRequest struct {
	StoreID     uint64  `json:"storeId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	SmallPrice  float64 `json:"smallPrice" binding:"required,gt=0"`
	LargePrice  float64 `json:"largePrice" binding:"required,gt=0"`
	Stock       int32   `json:"stock" binding:"gte=0"`
}

type menuItemResponse struct {
	ItemID      uint64          `json:"itemId"`
	StoreID     uint64          `json:"storeId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	SmallPrice  decimal.Decimal `json:"smallPrice"`
	LargePrice  decimal.Decimal `json:"largePrice"`
	Stock       int32           `json:"stock"`
}

func newMenuItemResponse(item *domain.MenuItem) menuItemResponse {
	return menuItemResponse{
		ItemID:      item.ID,
		StoreID:     item.StoreID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		SmallPrice:  item.SmallPrice,
		LargePrice:  item.LargePrice,
		Stock:       item.Stock,
	}
}

func (ch *CatalogHandler) menuItemFromRequest(ctx *gin.Context, req menuItemRequest) (*domain.MenuItem, bool) {
	smallPrice, err := decimal.NewFromFloat64(req.SmallPrice)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return nil, false
	}
	largePrice, err := decimal.NewFromFloat64(req.LargePrice)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return nil, false
	}
	return &domain.MenuItem{
		StoreID:     req.StoreID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		SmallPrice:  smallPrice,
		LargePrice:  largePrice,
		Stock:       req.Stock,
	}, true
}

func (ch *CatalogHandler) CreateMenuItem(ctx *gin.Context) {
	req := menuItemRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	item, ok := ch.menuItemFromRequest(ctx, req)
	if !ok {
		return
	}

	created, err := ch.service.CreateMenuItem(ctx, getAuthPayload(ctx), item)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, newMenuItemResponse(created), http.StatusCreated)
}

func (ch *CatalogHandler) GetMenuItem(ctx *gin.Context) {
	itemID, err := idParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	item, err := ch.service.GetMenuItem(ctx, itemID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newMenuItemResponse(item))
}

func (ch *CatalogHandler) ListMenuItemsByStore(ctx *gin.Context) {
	storeID, err := idParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	items, err := ch.service.ListMenuItemsByStore(ctx, storeID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, newMenuItemResponse(item))
	}
	ch.handleSuccess(ctx, result)
}

func (ch *CatalogHandler) ListMenuItems(ctx *gin.Context) {
	items, err := ch.service.ListMenuItems(ctx)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, newMenuItemResponse(item))
	}
	ch.handleSuccess(ctx, result)
}

func (ch *CatalogHandler) SearchMenuItems(ctx *gin.Context) {
	query := ctx.Query("query")
	if query == "" {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	items, err := ch.service.SearchMenuItems(ctx, query)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, newMenuItemResponse(item))
	}
	ch.handleSuccess(ctx, result)
}

func (ch *CatalogHandler) UpdateMenuItem(ctx *gin.Context) {
	itemID, err := idParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	req := menuItemRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	item, ok := ch.menuItemFromRequest(ctx, req)
	if !ok {
		return
	}
	item.ID = itemID

	updated, err := ch.service.UpdateMenuItem(ctx, getAuthPayload(ctx), item)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newMenuItemResponse(updated))
}

func (ch *CatalogHandler) DeleteMenuItem(ctx *gin.Context) {
	itemID, err := idParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	if err := ch.service.DeleteMenuItem(ctx, getAuthPayload(ctx), itemID); err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

type reviewRequest struct {
	ItemID  uint64 `json:"itemId" binding:"required"`
	Rating  int32  `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

type reviewResponse struct {
	ReviewID   uint64    `json:"reviewId"`
	UserID     uint64    `json:"userId"`
	ItemID     uint64    `json:"itemId"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	ReviewTime time.Time `json:"reviewTime"`
}

func newReviewResponse(review *domain.Review) reviewResponse {
	return reviewResponse{
		ReviewID:   review.ID,
		UserID:     review.UserID,
		ItemID:     review.ItemID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		ReviewTime: review.ReviewTime,
	}
}

func (ch *CatalogHandler) CreateReview(ctx *gin.Context) {
	req := reviewRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	review, err := ch.service.CreateReview(ctx, getAuthPayload(ctx), &domain.Review{
		ItemID:  req.ItemID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, newReviewResponse(review), http.StatusCreated)
}

func (ch *CatalogHandler) ListReviewsByItem(ctx *gin.Context) {
	itemID, err := idParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	reviews, err := ch.service.ListReviewsByItem(ctx, itemID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, newReviewResponse(review))
	}
	ch.handleSuccess(ctx, result)
}

type reviewUpdateRequest struct {
	Rating  int32  `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

func (ch *CatalogHandler) UpdateReview(ctx *gin.Context) {
	reviewID, err := idParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	req := reviewUpdateRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	review, err := ch.service.UpdateReview(ctx, getAuthPayload(ctx), &domain.Review{
		ID:      reviewID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newReviewResponse(review))
}

func (ch *CatalogHandler) DeleteReview(ctx *gin.Context) {
	reviewID, err := idParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	if err := ch.service.DeleteReview(ctx, getAuthPayload(ctx), reviewID); err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
