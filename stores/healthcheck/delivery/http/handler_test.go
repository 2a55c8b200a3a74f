package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mandinga/gateway/base/ctx"
	mHealthcheck "github.com/mandinga/gateway/domain/healthcheck/mocks"
)

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	us := &mHealthcheck.HealthCheckUsecase{}
	us.On("Check", mock.Anything).Return(nil).Once()
	us.On("Check", mock.Anything).Return(errors.New("redis down")).Once()

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, us)

	rec := serve(e, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = serve(e, "/health/ready")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"redis down"}`, rec.Body.String())

	us.AssertExpectations(t)
}
