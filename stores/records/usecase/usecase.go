package usecase

import (
	"strings"
	"sync"

	"golang.org/x/xerrors"

	"github.com/mandinga/gateway/base/ctx"
	"github.com/mandinga/gateway/base/ethereum"
	"github.com/mandinga/gateway/base/log"
	"github.com/mandinga/gateway/base/metrics"
	"github.com/mandinga/gateway/domain"
	"github.com/mandinga/gateway/domain/gateway"
	"github.com/mandinga/gateway/domain/records"
)

const (
	DefaultDomain      = "mandinga.eth"
	DefaultChainId     = uint64(5042002)
	DefaultDescription = "Mandinga circle resolver (update in records.json)."
	DefaultUrl         = "https://mandinga.example"
)

type RecordsUseCaseCfg struct {
	Repo        records.Repository
	Invalidator gateway.Invalidator

	Domain             string
	ChainId            uint64
	DefaultDescription string
	DefaultUrl         string
}

type impl struct {
	repo        records.Repository
	invalidator gateway.Invalidator
	msrv        metrics.Service

	domain      string
	coinType    string
	description string
	url         string

	// guards the load, mutate and save sequence
	mu sync.Mutex
}

func New(cfg *RecordsUseCaseCfg) (records.AdminUsecase, error) {
	if cfg.Repo == nil {
		return nil, xerrors.New("records repository is required")
	}
	coinType, err := records.CoinTypeFromChainId(cfg.ChainId)
	if err != nil {
		return nil, xerrors.Errorf("chain id %d: %w", cfg.ChainId, err)
	}
	im := &impl{
		repo:        cfg.Repo,
		invalidator: cfg.Invalidator,
		msrv:        metrics.New("records"),
		domain:      strings.ToLower(strings.TrimSuffix(cfg.Domain, ".")),
		coinType:    coinType,
		description: cfg.DefaultDescription,
		url:         cfg.DefaultUrl,
	}
	if im.domain == "" {
		im.domain = DefaultDomain
	}
	if im.description == "" {
		im.description = DefaultDescription
	}
	if im.url == "" {
		im.url = DefaultUrl
	}
	return im, nil
}

func (im *impl) UpsertVaultRecord(c ctx.Ctx, input records.VaultRecordInput) (*records.VaultRecordResult, error) {
	address, ok := ethereum.ChecksumAddress(strings.TrimSpace(input.VaultAddress))
	if !ok {
		return nil, xerrors.Errorf("vault address %q: %w", input.VaultAddress, domain.ErrInvalidAddress)
	}
	ensName := BuildEnsName(input.CircleName, im.domain)

	description := im.description
	if input.Description != nil {
		description = *input.Description
	}
	url := im.url
	if input.Url != nil {
		url = *input.Url
	}

	record := &records.ZoneRecord{
		Addresses: map[string]string{
			records.CoinTypeEth: address.Hex(),
			im.coinType:         address.Hex(),
		},
		Text: map[string]string{
			"description": description,
			"url":         url,
		},
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	data, err := im.repo.Load(c)
	if err != nil {
		c.WithField("err", err).Error("repo.Load failed")
		return nil, err
	}
	if data == nil {
		data = records.ZoneData{}
	}
	data[ensName] = record
	wildcard := records.WildcardPrefix + ensName
	if _, ok := data[wildcard]; !ok {
		data[wildcard] = &records.ZoneRecord{}
	}

	if err := im.repo.Save(c, data); err != nil {
		c.WithFields(log.Fields{"ensName": ensName, "err": err}).Error("repo.Save failed")
		return nil, err
	}

	if im.invalidator != nil {
		im.invalidator.Invalidate(c)
	}
	im.msrv.BumpSum("upsert", 1)
	im.msrv.BumpHistogram("zone.size", float64(len(data)))
	c.WithFields(log.Fields{"ensName": ensName, "vault": address.Hex()}).Info("vault record upserted")

	return &records.VaultRecordResult{EnsName: ensName}, nil
}

func (im *impl) Records(c ctx.Ctx) (records.ZoneData, error) {
	data, err := im.repo.Load(c)
	if err != nil {
		c.WithField("err", err).Error("repo.Load failed")
		return nil, err
	}
	if data == nil {
		data = records.ZoneData{}
	}
	return data, nil
}
