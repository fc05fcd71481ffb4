package utils_test

import (
	"testing"

	"github.com/dinehall/backend/internal/core/utils"
	"github.com/stretchr/testify/assert"
)

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := utils.HashPassword("s3cret")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret", hashed)

	assert.NoError(t, utils.ComparePassword("s3cret", hashed))
	assert.Error(t, utils.ComparePassword("wrong", hashed))
}
