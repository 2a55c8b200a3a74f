package redisclient

import (
	"context"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/mandinga/gateway/base/backoff"
	"github.com/mandinga/gateway/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	MaxIdle   int
	MaxActive int
	// Retries is how many extra dial attempts are made before giving up
	Retries int
}

// MustConnectRedis connects to one redis uri
// NOTE This function panics if the connection fails.
func MustConnectRedis(uri, password string, param ...RedisParam) *redis.Pool {
	p, err := ConnectRedis(uri, password, param...)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// ConnectRedis builds a pool for uri and checks one connection out of it
func ConnectRedis(uri, password string, param ...RedisParam) (*redis.Pool, error) {
	p := RedisParam{MaxIdle: 8, MaxActive: 64}
	if len(param) > 0 {
		p = param[0]
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	pool := &redis.Pool{
		MaxIdle:     p.MaxIdle,
		MaxActive:   p.MaxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// No need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	var err error
	b := backoff.NewExponential(500*time.Millisecond, 8*time.Second)
	for i := 0; i <= p.Retries; i++ {
		if i > 0 {
			_ = b.Wait(context.Background())
		}
		if err = ping(pool); err == nil {
			break
		}
		log.Log().WithFields(log.Fields{
			"redisURI": uri,
			"err":      err,
			"attempt":  i,
		}).Error("fail to dial Redis")
	}
	if err != nil {
		pool.Close()
		return nil, err
	}

	log.Log().WithField("redisURI", uri).Info("redis connected")
	return pool, nil
}

func ping(pool *redis.Pool) error {
	c := pool.Get()
	defer c.Close()
	_, err := c.Do("PING")
	return err
}
