package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mandinga/gateway/base/ctx"
	"github.com/mandinga/gateway/base/log"
	"github.com/mandinga/gateway/base/metrics"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	allowedOrigins []string
}

// InitMiddleware initialize the middleware. An empty origin list allows any origin.
func InitMiddleware(allowedOrigins []string) *GoMiddleware {
	return &GoMiddleware{
		allowedOrigins: allowedOrigins,
	}
}

// CORS will handle the CORS middleware. Allow-listed origins are echoed back
// with credentials allowed; without a list any origin is served, no credentials.
func (m *GoMiddleware) CORS() echo.MiddlewareFunc {
	origins := m.allowedOrigins
	credentials := len(origins) > 0
	if !credentials {
		origins = []string{"*"}
	}
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "x-api-key"},
		AllowCredentials: credentials,
	})
}

// AddContext adds custom context into echo
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			cont := ctx.From(c.Request().Context())
			cont = ctx.WithValue(cont, "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"host":       req.Host,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
				"origin":     req.Header.Get(echo.HeaderOrigin),
			}

			if res.Status >= 400 {
				fields["nextErr"] = err
			}

			met.BumpSum("request.count", 1, "status", strconv.Itoa(res.Status))

			logger := log.Log()
			if cont, ok := c.Get("ctx").(ctx.Ctx); ok {
				logger = cont.Logger
			}
			logger.WithFields(fields).Info("response")
			return nil
		}
	}
}
