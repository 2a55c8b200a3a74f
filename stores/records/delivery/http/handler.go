package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mandinga/gateway/base/ctx"
	"github.com/mandinga/gateway/base/delivery"
	"github.com/mandinga/gateway/domain"
	"github.com/mandinga/gateway/domain/records"
)

type handler struct {
	records records.AdminUsecase
}

// New registers the record endpoints. Middlewares in adminAuth guard the
// mutation routes only.
func New(e *echo.Echo, recordsUsecase records.AdminUsecase, adminAuth ...echo.MiddlewareFunc) {
	h := &handler{
		records: recordsUsecase,
	}

	g := e.Group("/records")
	g.GET("", h.list)
	g.POST("/vault", h.upsertVault, adminAuth...)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	data, err := h.records.Records(ctx)
	if err != nil {
		return delivery.MakeErrorResp(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, data)
}

func (h *handler) upsertVault(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := records.VaultRecordInput{}
	if err := c.Bind(&p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeErrorResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, errors.New("circleName and vaultAddress are required"))
	}

	res, err := h.records.UpsertVaultRecord(ctx, p)
	if errors.Is(err, domain.ErrInvalidAddress) || errors.Is(err, domain.ErrBadParamInput) {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, err)
	} else if err != nil {
		return delivery.MakeErrorResp(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, delivery.StatusResponse{
		Status:  "ok",
		EnsName: res.EnsName,
	})
}
