package insights

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbes(t *testing.T) {
	var connected atomic.Bool
	handler := NewProbes(0, connected.Load).Handler()

	tests := []struct {
		path      string
		connected bool
		want      int
	}{
		{"/liveness", false, http.StatusOK},
		{"/readiness", false, http.StatusServiceUnavailable},
		{"/readiness", true, http.StatusOK},
		{"/unknown", true, http.StatusNotFound},
	}

	for _, tt := range tests {
		connected.Store(tt.connected)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.want, rec.Code, "%s (connected=%v)", tt.path, tt.connected)
	}
}
