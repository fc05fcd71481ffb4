package service_test

import (
	"testing"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/service"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		name     string
		items    []domain.LineItem
		expTotal string
		expError error
	}{
		{
			name:     "Empty order",
			items:    nil,
			expTotal: "0",
		},
		{
			name: "Single line",
			items: []domain.LineItem{
				{ItemID: 1, Quantity: 2, UnitPrice: decimal.MustParse("5.50")},
			},
			expTotal: "11",
		},
		{
			name: "Mixed lines",
			items: []domain.LineItem{
				{ItemID: 1, Quantity: 2, UnitPrice: decimal.MustParse("5.50")},
				{ItemID: 2, Quantity: 1, UnitPrice: decimal.MustParse("3.25")},
				{ItemID: 1, Quantity: 3, UnitPrice: decimal.MustParse("5.50")},
			},
			expTotal: "30.75",
		},
		{
			name: "Non-positive quantity",
			items: []domain.LineItem{
				{ItemID: 1, Quantity: 0, UnitPrice: decimal.MustParse("5.50")},
			},
			expError: domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			total, err := service.CalculateTotal(test.items)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			assert.NoError(t, err)
			assert.True(t, decimal.MustParse(test.expTotal).Cmp(total) == 0,
				"total = %s", total)
		})
	}
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		discount string
		expFinal string
	}{
		{name: "Partial discount", total: "30", discount: "10", expFinal: "20"},
		{name: "Exact discount", total: "10", discount: "10", expFinal: "0"},
		{name: "Discount above total floors at zero", total: "5", discount: "10", expFinal: "0"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			final, err := service.ApplyDiscount(
				decimal.MustParse(test.total),
				&domain.Coupon{Discount: decimal.MustParse(test.discount)},
			)
			assert.NoError(t, err)
			assert.True(t, decimal.MustParse(test.expFinal).Cmp(final) == 0,
				"final = %s", final)
		})
	}
}
