package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mandinga/gateway/base/ctx"
	"github.com/mandinga/gateway/base/delivery"
	"github.com/mandinga/gateway/domain"
	"github.com/mandinga/gateway/domain/gateway"
)

type handler struct {
	gateway gateway.Usecase
}

func New(e *echo.Echo, gatewayUsecase gateway.Usecase) {
	h := &handler{
		gateway: gatewayUsecase,
	}

	e.GET("/", h.root)
	e.POST("/", h.post)

	g := e.Group("/ccip-read")
	g.GET("", h.get)
	g.POST("", h.post)
	g.GET("/:sender/:data", h.template)
}

// root serves liveness unless it carries a CCIP-Read query
func (h *handler) root(c echo.Context) error {
	if c.QueryParam("data") == "" {
		return delivery.MakeStatusResp(c)
	}
	return h.get(c)
}

func (h *handler) get(c echo.Context) error {
	req := gateway.Request{
		Sender: c.QueryParam("sender"),
		Data:   c.QueryParam("data"),
	}
	return h.handle(c, req)
}

func (h *handler) post(c echo.Context) error {
	req := gateway.Request{}
	if err := c.Bind(&req); err != nil {
		return delivery.MakeErrorResp(c, 0, domain.ErrInvalidData)
	}
	return h.handle(c, req)
}

func (h *handler) template(c echo.Context) error {
	req := gateway.Request{
		Sender: c.Param("sender"),
		Data:   strings.TrimSuffix(c.Param("data"), ".json"),
	}
	return h.handle(c, req)
}

func (h *handler) handle(c echo.Context, req gateway.Request) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	data, err := h.gateway.Handle(ctx, req)
	if err != nil {
		ctx.WithField("err", err).Warn("ccip-read failed")
		return delivery.MakeErrorResp(c, 0, err)
	}
	return delivery.MakeDataResp(c, data)
}
