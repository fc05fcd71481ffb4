package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,

	domain.ErrNoUpdatedData: http.StatusBadRequest,
	domain.ErrBadRequest:    http.StatusBadRequest,

	domain.ErrOrderStateTransition: http.StatusConflict,
	domain.ErrInsufficientStock:    http.StatusConflict,
	domain.ErrInsufficientBalance:  http.StatusPaymentRequired,
	domain.ErrCouponInvalid:        http.StatusUnprocessableEntity,
	domain.ErrCouponMinPurchase:    http.StatusUnprocessableEntity,
	domain.ErrCouponAlreadyClaimed: http.StatusConflict,
	domain.ErrCouponCodeExhausted:  http.StatusConflict,
	domain.ErrConcurrencyConflict:  http.StatusConflict,
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrBadRequest.Error()})
}

// handleError maps a domain sentinel anywhere in the error chain to its
// status code. Anything unmapped is a 500.
func (h *Handler) handleError(ctx *gin.Context, err error) {
	for sentinel, statusCode := range errorStatusMap {
		if errors.Is(err, sentinel) {
			ctx.JSON(statusCode, errorResponse{Error: sentinel.Error()})
			return
		}
	}
	h.logger.Error("error processing request", zap.Error(err))
	ctx.JSON(http.StatusInternalServerError, errorResponse{Error: domain.ErrInternal.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

func idParam(ctx *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, domain.ErrBadRequest
	}
	return id, nil
}
