package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrOrderStateTransition = errors.New("operation is not allowed for current order status")
	ErrInsufficientStock    = errors.New("menu item stock is not enough")
	ErrInsufficientBalance  = errors.New("wallet balance is not enough")
	ErrCouponInvalid        = errors.New("coupon is invalid, expired or already used")
	ErrCouponMinPurchase    = errors.New("order total is below coupon minimum purchase")
	ErrCouponAlreadyClaimed = errors.New("coupon is already claimed by a user")
	ErrCouponCodeExhausted  = errors.New("could not generate a unique coupon code")
	ErrConcurrencyConflict  = errors.New("lost a concurrent update race, retry the request")
)
