package utils_test

import (
	"testing"

	"github.com/dinehall/backend/internal/core/utils"
	"github.com/stretchr/testify/assert"
)

func TestGenerateCouponCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := utils.GenerateCouponCode()
		assert.NoError(t, err)
		assert.Len(t, code, 4)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "code %q has non-digit", code)
		}
	}
}
