package cache

import (
	"errors"
	"time"

	"github.com/mandinga/gateway/base/ctx"
	"github.com/mandinga/gateway/service/cache/provider"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

type OneTimeGetter func() ([]byte, error)

// Service is a prefixed, ttl bound byte cache over a raw provider
type Service interface {
	GetByFunc(c ctx.Ctx, key string, getter OneTimeGetter) ([]byte, error)
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, value []byte) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl   time.Duration
	Pfx   string
	Cache provider.Provider
}
