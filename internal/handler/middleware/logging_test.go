package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		status  int
		body    string
		expects []string
	}{
		{name: "GET 200", method: http.MethodGet, status: http.StatusOK, body: "OK",
			expects: []string{`"method":"GET"`, `"uri":"/api/tasks"`, `"status":200`, `"size":2`}},
		{name: "POST 422", method: http.MethodPost, status: http.StatusUnprocessableEntity, body: `{"error":"x"}`,
			expects: []string{`"method":"POST"`, `"status":422`, `"size":13`}},
		{name: "implicit 200", method: http.MethodGet,
			expects: []string{`"status":200`, `"size":0`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(tt.method, "/api/tasks?limit=5", nil)
			req = req.WithContext(l.WithContext(req.Context()))

			WithLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			for _, s := range tt.expects {
				assert.Contains(t, buf.String(), s)
			}
			assert.Contains(t, buf.String(), `"duration":`)
		})
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.Status())
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_HijackUnsupported(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	_, _, err := w.Hijack()
	assert.Error(t, err)
}
