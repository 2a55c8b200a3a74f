package repository

import (
	"encoding/json"

	"github.com/gomodule/redigo/redis"
	"golang.org/x/xerrors"

	"github.com/mandinga/gateway/base/ctx"
	"github.com/mandinga/gateway/domain/keys"
	"github.com/mandinga/gateway/domain/records"
)

type redisRepo struct {
	pool *redis.Pool
	key  string
}

// NewRedis keeps the zone as one JSON document under key, the same layout
// as the records file.
func NewRedis(pool *redis.Pool, key string) records.Repository {
	return &redisRepo{pool: pool, key: key}
}

func (r *redisRepo) Load(c ctx.Ctx) (records.ZoneData, error) {
	conn, err := r.pool.GetContext(c)
	if err != nil {
		return nil, xerrors.Errorf("redis conn: %w", err)
	}
	defer conn.Close()

	raw, err := redis.Bytes(conn.Do("GET", r.key))
	if err == redis.ErrNil {
		return records.ZoneData{}, nil
	} else if err != nil {
		c.WithField("err", err).WithField("key", r.key).Error("redis GET failed")
		return nil, err
	}

	data := records.ZoneData{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, xerrors.Errorf("parse %s: %w", r.key, err)
	}
	if data == nil {
		data = records.ZoneData{}
	}
	return data, nil
}

func (r *redisRepo) Save(c ctx.Ctx, data records.ZoneData) error {
	if data == nil {
		data = records.ZoneData{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return xerrors.Errorf("marshal records: %w", err)
	}

	conn, err := r.pool.GetContext(c)
	if err != nil {
		return xerrors.Errorf("redis conn: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("SET", r.key, raw); err != nil {
		c.WithField("err", err).WithField("key", r.key).Error("redis SET failed")
		return err
	}
	return nil
}

func (r *redisRepo) Ping(c ctx.Ctx) error {
	conn, err := r.pool.GetContext(c)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.Do("SET", keys.RedisKey(keys.PfxHealthCheck, r.key), "1", "EX", 30)
	return err
}
