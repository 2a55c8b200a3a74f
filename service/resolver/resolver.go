// Package resolver decodes ENSIP-10 resolve() payloads and answers the
// address and text resolver profiles from a record store.
package resolver

import (
	"bytes"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	goens "github.com/wealdtech/go-ens/v3"
	"golang.org/x/xerrors"

	"github.com/mandinga/gateway/base/abi"
	"github.com/mandinga/gateway/base/ctx"
	"github.com/mandinga/gateway/base/log"
	"github.com/mandinga/gateway/domain"
	"github.com/mandinga/gateway/domain/records"
	"github.com/mandinga/gateway/service/dnsname"
)

// Records is the lookup surface the dispatcher needs, see zone.Zone
type Records interface {
	Addr(name string) (common.Address, error)
	AddrBytes(name, coinType string) ([]byte, error)
	Text(name, key string) string
}

var (
	addrResult  = abi.MustNewArguments("address")
	bytesResult = abi.MustNewArguments("bytes")
	textResult  = abi.MustNewArguments("string")
)

// DecodeCallData splits a resolve(bytes name, bytes data) payload into the
// lowercased dotted name and the inner resolver call. The outer selector is
// optional.
func DecodeCallData(data []byte) (string, []byte, error) {
	if abi.HasSelector(data, abi.SigResolve) {
		data = data[4:]
	}

	m, _ := abi.MethodBySig(abi.SigResolve)
	args, err := m.Inputs.Unpack(data)
	if err != nil {
		return "", nil, xerrors.Errorf("decode resolve(bytes,bytes): %v: %w", err, domain.ErrMalformedCall)
	}
	encodedName, ok1 := args[0].([]byte)
	call, ok2 := args[1].([]byte)
	if !ok1 || !ok2 {
		return "", nil, xerrors.Errorf("decode resolve(bytes,bytes): unexpected types: %w", domain.ErrMalformedCall)
	}

	name, err := dnsname.Unpack(encodedName)
	if err != nil {
		return "", nil, err
	}
	return strings.ToLower(name), call, nil
}

// ResolveRecord dispatches call on its 4-byte selector and returns the
// ABI-encoded return value of the resolver function. The node argument is
// not used for the lookup, name is authoritative.
func ResolveRecord(c ctx.Ctx, store Records, name string, call []byte) ([]byte, error) {
	if len(call) < 4 {
		return nil, xerrors.Errorf("call of %d bytes: %w", len(call), domain.ErrUnsupportedCall)
	}
	selector := call[:4]

	switch {
	case abi.HasSelector(call, abi.SigAddr):
		args, err := unpackArgs(abi.SigAddr, call)
		if err != nil {
			return nil, err
		}
		checkNode(c, name, args[0])

		addr, err := store.Addr(name)
		if err != nil {
			return nil, err
		}
		return addrResult.Pack(addr)

	case abi.HasSelector(call, abi.SigAddrByCoinType):
		args, err := unpackArgs(abi.SigAddrByCoinType, call)
		if err != nil {
			return nil, err
		}
		checkNode(c, name, args[0])

		coinType, ok := args[1].(*big.Int)
		if !ok {
			return nil, xerrors.Errorf("coinType: %w", domain.ErrMalformedCall)
		}
		value, err := store.AddrBytes(name, coinType.String())
		if err != nil {
			return nil, err
		}
		if coinType.String() == records.CoinTypeEth {
			value = common.BytesToAddress(value).Bytes()
		}
		return bytesResult.Pack(value)

	case abi.HasSelector(call, abi.SigText):
		args, err := unpackArgs(abi.SigText, call)
		if err != nil {
			return nil, err
		}
		checkNode(c, name, args[0])

		key, ok := args[1].(string)
		if !ok {
			return nil, xerrors.Errorf("key: %w", domain.ErrMalformedCall)
		}
		return textResult.Pack(store.Text(name, key))
	}

	return nil, xerrors.Errorf("%s: %w", hexutil.Encode(selector), domain.ErrUnsupportedCall)
}

func unpackArgs(sig string, call []byte) ([]interface{}, error) {
	m, _ := abi.MethodBySig(sig)
	args, err := m.Inputs.Unpack(call[4:])
	if err != nil {
		return nil, xerrors.Errorf("decode %s: %v: %w", sig, err, domain.ErrMalformedCall)
	}
	return args, nil
}

// checkNode logs when the namehash in the call does not belong to name. The
// answer is still served for name.
func checkNode(c ctx.Ctx, name string, arg interface{}) {
	node, ok := arg.([32]byte)
	if !ok {
		return
	}
	expected, err := goens.NameHash(name)
	if err != nil {
		c.WithFields(log.Fields{"name": name, "err": err}).Debug("namehash failed, skip node check")
		return
	}
	if !bytes.Equal(expected[:], node[:]) {
		c.WithFields(log.Fields{
			"name":     name,
			"node":     hexutil.Encode(node[:]),
			"namehash": hexutil.Encode(expected[:]),
		}).Warn("resolver call node does not match dns name")
	}
}
