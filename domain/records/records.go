package records

import (
	"strings"

	"github.com/mandinga/gateway/base/ctx"
)

// WildcardPrefix is the label prefix of ENSIP-10 wildcard entries
const WildcardPrefix = "*."

// ZoneRecord is one named entry of the zone
type ZoneRecord struct {
	// Addresses maps a coin type (decimal string) to a 0x hex value
	Addresses map[string]string `json:"addresses,omitempty"`
	// Text maps a text record key to its value
	Text map[string]string `json:"text,omitempty"`
}

// IsEmpty reports whether the record holds neither addresses nor text
func (r *ZoneRecord) IsEmpty() bool {
	return r == nil || (len(r.Addresses) == 0 && len(r.Text) == 0)
}

// Clone deep copies the record
func (r *ZoneRecord) Clone() *ZoneRecord {
	if r == nil {
		return nil
	}
	res := &ZoneRecord{}
	if r.Addresses != nil {
		res.Addresses = make(map[string]string, len(r.Addresses))
		for k, v := range r.Addresses {
			res.Addresses[k] = v
		}
	}
	if r.Text != nil {
		res.Text = make(map[string]string, len(r.Text))
		for k, v := range r.Text {
			res.Text[k] = v
		}
	}
	return res
}

// ZoneData maps a fully-qualified lowercase name to its record
type ZoneData map[string]*ZoneRecord

// Clone deep copies the zone
func (z ZoneData) Clone() ZoneData {
	res := make(ZoneData, len(z))
	for name, record := range z {
		res[name] = record.Clone()
	}
	return res
}

// WithWildcards adds an empty `*.<name>` entry for every concrete name that
// has none. The receiver is modified and returned.
func (z ZoneData) WithWildcards() ZoneData {
	for name := range z {
		if strings.HasPrefix(name, WildcardPrefix) {
			continue
		}
		if _, ok := z[WildcardPrefix+name]; !ok {
			z[WildcardPrefix+name] = &ZoneRecord{}
		}
	}
	return z
}

// Repository persists the whole zone as one unit
type Repository interface {
	Load(ctx ctx.Ctx) (ZoneData, error)
	Save(ctx ctx.Ctx, data ZoneData) error
	Ping(ctx ctx.Ctx) error
}

type VaultRecordInput struct {
	CircleName   string  `json:"circleName" validate:"required"`
	VaultAddress string  `json:"vaultAddress" validate:"required"`
	Description  *string `json:"description"`
	Url          *string `json:"url"`
}

type VaultRecordResult struct {
	EnsName string `json:"ensName"`
}

// AdminUsecase is the mutation path of the zone
type AdminUsecase interface {
	UpsertVaultRecord(ctx ctx.Ctx, input VaultRecordInput) (*VaultRecordResult, error)
	Records(ctx ctx.Ctx) (ZoneData, error)
}
