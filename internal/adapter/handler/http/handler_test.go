package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		err       error
		expStatus int
	}{
		{
			name:      "Sentinel",
			err:       domain.ErrDataNotFound,
			expStatus: http.StatusNotFound,
		},
		{
			name:      "Wrapped stock sentinel",
			err:       fmt.Errorf("lock menu item 7: %w", domain.ErrInsufficientStock),
			expStatus: http.StatusConflict,
		},
		{
			name:      "Wrapped balance sentinel",
			err:       fmt.Errorf("lock wallet for user 3: %w", domain.ErrInsufficientBalance),
			expStatus: http.StatusPaymentRequired,
		},
		{
			name:      "Unmapped error",
			err:       errors.New("connection reset"),
			expStatus: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			h := NewHandler(zap.NewNop())
			h.handleError(ctx, test.err)

			assert.Equal(t, test.expStatus, w.Code)
		})
	}
}
