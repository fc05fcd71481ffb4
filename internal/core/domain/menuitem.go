package domain

import "github.com/govalues/decimal"

// MenuItem stock is mutated only through the lifecycle transitions,
// never directly by catalog updates.
type MenuItem struct {
	ID          uint64
	StoreID     uint64
	Name        string
	Description string
	Category    string
	ImageURL    string
	SmallPrice  decimal.Decimal
	LargePrice  decimal.Decimal
	Stock       int32
}

// PriceFor returns the unit price for the requested portion size.
func (m *MenuItem) PriceFor(size ItemSize) (decimal.Decimal, error) {
	switch size {
	case ItemSizeSmall:
		return m.SmallPrice, nil
	case ItemSizeLarge:
		return m.LargePrice, nil
	default:
		return decimal.Zero, ErrBadRequest
	}
}
