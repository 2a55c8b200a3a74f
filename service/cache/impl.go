package cache

import (
	"time"

	"github.com/mandinga/gateway/base/ctx"
	"github.com/mandinga/gateway/domain/keys"
	"github.com/mandinga/gateway/service/cache/provider"
)

type impl struct {
	ttl   time.Duration
	pfx   string
	cache provider.Provider
}

func New(config ServiceConfig) Service {
	return &impl{
		ttl:   config.Ttl,
		pfx:   config.Pfx,
		cache: config.Cache,
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, getter OneTimeGetter) ([]byte, error) {
	val, err := im.Get(c, key)
	if err != nil && err != ErrNotFound {
		c.WithField("err", err).WithField("key", key).Error("Get failed")
		return nil, err
	} else if err == nil {
		// hit cache, early return
		return val, nil
	}

	// no cache, get and fill cache
	val, err = getter()
	if err != nil {
		return nil, err
	}

	if err := im.Set(c, key, val); err != nil {
		c.WithField("err", err).WithField("key", key).Error("Set failed")
	}

	return val, nil
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, error) {
	key = keys.RedisKey(im.pfx, key)

	val, _, err := im.cache.Get(c, key)
	if err == provider.ErrNotFound {
		return nil, ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return nil, err
	}
	return val, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte) error {
	key = keys.RedisKey(im.pfx, key)

	if err := im.cache.Set(c, key, value, im.ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}

	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = keys.RedisKey(im.pfx, key)

	if err := im.cache.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Del failed")
		return err
	}

	return nil
}
