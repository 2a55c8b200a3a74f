package healthcheck

import (
	"github.com/mandinga/gateway/base/ctx"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	// Check reports whether the record backend is reachable
	Check(context ctx.Ctx) error
}
