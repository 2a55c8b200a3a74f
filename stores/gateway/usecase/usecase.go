package usecase

import (
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"

	"github.com/mandinga/gateway/base/ctx"
	"github.com/mandinga/gateway/base/log"
	"github.com/mandinga/gateway/base/metrics"
	"github.com/mandinga/gateway/domain"
	"github.com/mandinga/gateway/domain/gateway"
	"github.com/mandinga/gateway/domain/keys"
	"github.com/mandinga/gateway/domain/records"
	"github.com/mandinga/gateway/service/cache"
	"github.com/mandinga/gateway/service/cache/provider/primitive"
	"github.com/mandinga/gateway/service/resolver"
	"github.com/mandinga/gateway/service/signer"
	"github.com/mandinga/gateway/service/zone"
)

const defaultResultCacheSizeMB = 16

type GatewayCfg struct {
	PrivateKey string
	TTLSeconds int64
	Repo       records.Repository

	// ResultCacheTtl enables caching of resolver results per zone load, zero disables it
	ResultCacheTtl    time.Duration
	ResultCacheSizeMB int
}

// generation is one load of the zone. Invalidate replaces it as a whole.
type generation struct {
	once    sync.Once
	zone    *zone.Zone
	results cache.Service
	err     error
}

type impl struct {
	repo     records.Repository
	msrv     metrics.Service
	cacheTtl time.Duration
	cacheMB  int

	privateKey string
	ttlSeconds int64
	signerOnce sync.Once
	signer     *signer.Signer
	signerErr  error

	genMu sync.Mutex
	gen   *generation
}

// New validates the static config. The signer and the zone are built on the
// first request.
func New(cfg *GatewayCfg) (gateway.Usecase, error) {
	if cfg.TTLSeconds <= 0 {
		return nil, xerrors.Errorf("ttl seconds must be positive, got %d", cfg.TTLSeconds)
	}
	if cfg.Repo == nil {
		return nil, xerrors.New("records repository is required")
	}
	sizeMB := cfg.ResultCacheSizeMB
	if sizeMB <= 0 {
		sizeMB = defaultResultCacheSizeMB
	}
	return &impl{
		repo:       cfg.Repo,
		msrv:       metrics.New("gateway"),
		cacheTtl:   cfg.ResultCacheTtl,
		cacheMB:    sizeMB,
		privateKey: cfg.PrivateKey,
		ttlSeconds: cfg.TTLSeconds,
		gen:        &generation{},
	}, nil
}

func (im *impl) Handle(c ctx.Ctx, req gateway.Request) (string, error) {
	defer im.msrv.BumpTime("handle").End()

	// lowercase prefix only, hexutil alone would also take 0X
	if !strings.HasPrefix(req.Data, "0x") {
		return "", domain.ErrInvalidData
	}
	data, err := hexutil.Decode(req.Data)
	if err != nil {
		c.WithField("err", err).Debug("request data is not hex")
		return "", domain.ErrInvalidData
	}
	im.msrv.BumpHistogram("handle.data_bytes", float64(len(data)))
	c.WithFields(log.Fields{
		"sender":  req.Sender,
		"dataLen": len(data),
		"prefix":  prefix(data),
	}).Debug("ccip-read request")

	s, err := im.getSigner(c)
	if err != nil {
		return "", err
	}
	gen, err := im.getGeneration(c)
	if err != nil {
		return "", err
	}

	name, call, err := resolver.DecodeCallData(data)
	if err != nil {
		c.WithField("err", err).Debug("decode resolve call failed")
		im.msrv.BumpSum("handle.bad_request", 1)
		return "", err
	}

	result, err := im.resolve(c, gen, name, call)
	if err != nil {
		im.msrv.BumpSum("handle.bad_request", 1)
		return "", err
	}

	signed, err := s.Sign(result, data)
	if err != nil {
		c.WithField("err", err).Error("signer.Sign failed")
		return "", err
	}
	encoded, err := signer.EncodeResponse(signed)
	if err != nil {
		c.WithField("err", err).Error("signer.EncodeResponse failed")
		return "", err
	}

	c.WithFields(log.Fields{
		"name":     name,
		"selector": prefix(call),
		"expires":  signed.Expires,
	}).Debug("ccip-read signed")
	im.msrv.BumpSum("handle.signed", 1)
	return hexutil.Encode(encoded), nil
}

func (im *impl) Invalidate(c ctx.Ctx) {
	im.genMu.Lock()
	defer im.genMu.Unlock()
	im.gen = &generation{}
	c.Debug("gateway zone invalidated")
}

func (im *impl) resolve(c ctx.Ctx, gen *generation, name string, call []byte) ([]byte, error) {
	if gen.results == nil {
		return resolver.ResolveRecord(c, gen.zone, name, call)
	}
	key := hexutil.Encode(crypto.Keccak256([]byte(name), call))
	return gen.results.GetByFunc(c, key, func() ([]byte, error) {
		return resolver.ResolveRecord(c, gen.zone, name, call)
	})
}

func (im *impl) getSigner(c ctx.Ctx) (*signer.Signer, error) {
	im.signerOnce.Do(func() {
		s, err := signer.New(im.privateKey, im.ttlSeconds)
		if err != nil {
			c.WithField("err", err).Error("signer misconfigured")
			im.signerErr = xerrors.Errorf("signer: %v: %w", err, domain.ErrGatewayConfig)
			return
		}
		c.WithField("signer", s.Address().Hex()).Info("signer ready")
		im.signer = s
	})
	return im.signer, im.signerErr
}

func (im *impl) getGeneration(c ctx.Ctx) (*generation, error) {
	im.genMu.Lock()
	gen := im.gen
	im.genMu.Unlock()

	gen.once.Do(func() {
		data, err := im.repo.Load(c)
		if err != nil {
			c.WithField("err", err).Error("repo.Load failed")
			gen.err = xerrors.Errorf("load records: %v: %w", err, domain.ErrGatewayConfig)
			return
		}
		gen.zone = zone.New(data)
		if im.cacheTtl > 0 {
			gen.results = cache.New(cache.ServiceConfig{
				Ttl:   im.cacheTtl,
				Pfx:   keys.PfxResolveResult,
				Cache: primitive.NewPrimitive("resolve-result", im.cacheMB),
			})
		}
		c.WithField("names", gen.zone.Len()).Info("zone loaded")
	})

	if gen.err != nil {
		// drop the failed generation so the next request retries the load
		im.genMu.Lock()
		if im.gen == gen {
			im.gen = &generation{}
		}
		im.genMu.Unlock()
		return nil, gen.err
	}
	return gen, nil
}

func prefix(b []byte) string {
	if len(b) > 4 {
		b = b[:4]
	}
	return hexutil.Encode(b)
}
