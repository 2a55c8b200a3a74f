// Package zone is the in-memory record store the resolver answers from.
package zone

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/xerrors"

	"github.com/mandinga/gateway/domain"
	"github.com/mandinga/gateway/domain/records"
)

// Zone answers address and text lookups with ENSIP-10 wildcard fallback.
// It is immutable once built and safe for concurrent readers.
type Zone struct {
	data records.ZoneData
}

func New(data records.ZoneData) *Zone {
	return &Zone{data: data.Clone().WithWildcards()}
}

// Len is the number of entries including synthesized wildcards
func (z *Zone) Len() int {
	return len(z.data)
}

// Addr returns the coin type 60 address, or the zero address
func (z *Zone) Addr(name string) (common.Address, error) {
	b, err := z.AddrBytes(name, records.CoinTypeEth)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(b), nil
}

// AddrBytes returns the raw address bytes stored for coinType. A missing
// record yields 20 zero bytes for coin type 60 and an empty slice otherwise.
func (z *Zone) AddrBytes(name, coinType string) ([]byte, error) {
	value := ""
	if record := z.findName(name); record != nil {
		value = record.Addresses[coinType]
	}

	if coinType == records.CoinTypeEth {
		if value == "" {
			return common.Address{}.Bytes(), nil
		}
		if !common.IsHexAddress(value) {
			return nil, xerrors.Errorf("%s coin type %s: %w", name, coinType, domain.ErrInvalidRecord)
		}
		return common.HexToAddress(value).Bytes(), nil
	}

	if value == "" {
		return []byte{}, nil
	}
	b, err := hexutil.Decode(value)
	if err != nil {
		return nil, xerrors.Errorf("%s coin type %s: %v: %w", name, coinType, err, domain.ErrInvalidRecord)
	}
	return b, nil
}

// Text returns the text record, or "" if there is none
func (z *Zone) Text(name, key string) string {
	if record := z.findName(name); record != nil {
		return record.Text[key]
	}
	return ""
}

// findName returns the exact entry for name, otherwise the closest wildcard
// ancestor holding records: *.b.c, then *.c, then *. Empty wildcard
// placeholders do not stop the walk.
func (z *Zone) findName(name string) *records.ZoneRecord {
	if record, ok := z.data[name]; ok {
		return record
	}

	labels := strings.Split(name, ".")
	for i := 1; i < len(labels); i++ {
		if record := z.data[records.WildcardPrefix+strings.Join(labels[i:], ".")]; !record.IsEmpty() {
			return record
		}
	}
	if record := z.data["*"]; !record.IsEmpty() {
		return record
	}
	return nil
}
