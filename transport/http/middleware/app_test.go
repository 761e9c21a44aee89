package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"primecm/config"
	"primecm/infras/otel/mocks"
	"primecm/transport/http/middleware"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppMiddleware_PassesThrough(t *testing.T) {
	m := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{})

	handler := m.AccessLog(m.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("ok"))
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
