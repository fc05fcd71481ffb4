package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const couponCodeLength = 4

// GenerateCouponCode returns a random numeric code of fixed length.
// Uniqueness is the caller's problem.
func GenerateCouponCode() (string, error) {
	var code strings.Builder
	code.Grow(couponCodeLength)
	for i := 0; i < couponCodeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code.WriteByte(byte('0' + n.Int64()))
	}
	return code.String(), nil
}
