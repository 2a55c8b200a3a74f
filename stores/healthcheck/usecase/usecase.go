package usecase

import (
	"time"

	"github.com/mandinga/gateway/base/ctx"
	hcdomain "github.com/mandinga/gateway/domain/healthcheck"
	"github.com/mandinga/gateway/domain/records"
)

const pingTimeout = 2 * time.Second

type impl struct {
	repo records.Repository
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo records.Repository) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.repo.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping records repository failed")
		return err
	}
	return nil
}
