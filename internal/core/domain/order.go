package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusCreated    OrderStatus = "CREATED"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

type ItemSize string

const (
	ItemSizeSmall ItemSize = "SMALL"
	ItemSizeLarge ItemSize = "LARGE"
)

// LineItem belongs to exactly one order. UnitPrice is a snapshot of the
// menu item price at add-time and never follows later catalog changes.
type LineItem struct {
	DetailID  uint64
	OrderID   uint64
	ItemID    uint64
	Quantity  int32
	UnitPrice decimal.Decimal
	Size      ItemSize
}

// Order with its line items is one consistency unit: the lifecycle service
// loads and commits them together.
type Order struct {
	ID         uint64
	UserID     uint64
	StoreID    uint64
	Status     OrderStatus
	TotalPrice decimal.Decimal
	OrderTime  time.Time
	Notes      string
	DineOption string
	Items      []LineItem
}
