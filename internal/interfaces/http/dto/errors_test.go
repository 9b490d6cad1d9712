package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"INVALID_AMOUNT", http.StatusBadRequest},
		{"DUPLICATE_PAYMENT", http.StatusConflict},
		{"OPTIMISTIC_LOCK_ERROR", http.StatusConflict},
		{"INSUFFICIENT_STOCK", http.StatusUnprocessableEntity},
		{"PERSISTENCE_FAILURE", http.StatusServiceUnavailable},
		{"UNKNOWN_OUTCOME", http.StatusInternalServerError},
		{"SOMETHING_NEW", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]int{1, 2, 3}, 45, 2, 20)

	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID("NOT_FOUND", "Resource not found", "req-abc")

	assert.False(t, resp.Success)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "req-abc", resp.Error.RequestID)
}
