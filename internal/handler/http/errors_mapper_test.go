package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-gtd/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("get task: %w", service.ErrNotFound), want: http.StatusNotFound},
		{err: service.ErrLoginTaken, want: http.StatusConflict},
		{err: fmt.Errorf("update: %w", service.ErrConflict), want: http.StatusConflict},
		{err: service.ErrTokenIsExpiredOrInvalid, want: http.StatusUnauthorized},
		{err: fmt.Errorf("%w: eof", ErrInvalidJSON), want: http.StatusBadRequest},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got, _ := statusFromError(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}
