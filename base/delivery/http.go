package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mandinga/gateway/domain"
)

// DataResponse is the CCIP-Read success body
type DataResponse struct {
	Data string `json:"data"`
}

// ErrorResponse is the failure body of every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by liveness and admin endpoints
type StatusResponse struct {
	Status  string `json:"status"`
	EnsName string `json:"ensName,omitempty"`
}

// StatusOf maps an error to the http status the gateway answers with
func StatusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrGatewayConfig):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrInvalidData),
		errors.Is(err, domain.ErrTruncatedName),
		errors.Is(err, domain.ErrMalformedCall),
		errors.Is(err, domain.ErrUnsupportedCall),
		errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// MakeErrorResp writes {"error": ...}. A zero status is derived from err.
func MakeErrorResp(c echo.Context, status int, err error) error {
	if status == 0 {
		status = StatusOf(err)
	}
	return c.JSON(status, ErrorResponse{Error: err.Error()})
}

func MakeDataResp(c echo.Context, data string) error {
	return c.JSON(http.StatusOK, DataResponse{Data: data})
}

func MakeStatusResp(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}
