package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mandinga/gateway/base/ctx"
	"github.com/mandinga/gateway/base/delivery"
	hcdomain "github.com/mandinga/gateway/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New will initialize the healthcheck/ resources endpoint
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/health")
	g.GET("", handler.live)
	g.GET("/ready", handler.ready)
}

func (h *healthCheckHandler) live(c echo.Context) error {
	return delivery.MakeStatusResp(c)
}

func (h *healthCheckHandler) ready(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(context); err != nil {
		return delivery.MakeErrorResp(c, http.StatusServiceUnavailable, err)
	}
	return delivery.MakeStatusResp(c)
}
