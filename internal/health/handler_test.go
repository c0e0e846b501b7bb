package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	w := serve(&Handler{db: stubPinger{}, service: "service-voucher"}, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "service-voucher")
	assert.Contains(t, w.Body.String(), `"database":"ok"`)
}

func TestHealth_ReportsUnreachableDatabase(t *testing.T) {
	w := serve(&Handler{db: stubPinger{err: errors.New("dial tcp: refused")}, service: "service-voucher"}, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"unreachable"`)

	w = serve(&Handler{service: "service-voucher"}, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"unconfigured"`)
}

func TestReady(t *testing.T) {
	w := serve(&Handler{db: stubPinger{}, service: "service-voucher"}, "/ready")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(&Handler{db: stubPinger{err: errors.New("dial tcp: refused")}, service: "service-voucher"}, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "refused")

	w = serve(&Handler{service: "service-voucher"}, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
