package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/suite"

	"github.com/mandinga/gateway/base/ctx"
)

type middlewareSuite struct {
	suite.Suite
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(middlewareSuite))
}

func (s *middlewareSuite) newEcho(m *GoMiddleware) *echo.Echo {
	e := echo.New()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return "req-1" },
	}))
	e.Use(m.AddContext())
	e.Use(m.CORS())
	e.Use(m.ResponseLogger())
	e.GET("/", func(c echo.Context) error {
		cont := c.Get("ctx").(ctx.Ctx)
		return c.String(http.StatusOK, ctx.Value(cont, "requestID").(string))
	})
	return e
}

func (s *middlewareSuite) TestAddContext() {
	e := s.newEcho(InitMiddleware(nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.mandinga.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("req-1", rec.Body.String())
	s.Equal("*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	s.Empty(rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func (s *middlewareSuite) TestCORSAllowList() {
	e := s.newEcho(InitMiddleware([]string{"https://app.mandinga.example"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.mandinga.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	s.Equal("https://app.mandinga.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	s.Equal("true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	s.Contains(rec.Header().Values(echo.HeaderVary), echo.HeaderOrigin)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	s.Empty(rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func (s *middlewareSuite) TestPreflight() {
	e := s.newEcho(InitMiddleware(nil))

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.mandinga.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
	s.Contains(rec.Header().Get(echo.HeaderAccessControlAllowHeaders), "x-api-key")
}
