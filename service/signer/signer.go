// Package signer produces EIP-3668 gateway responses the off-chain resolver
// contract can verify.
package signer

import (
	"crypto/ecdsa"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"

	"github.com/mandinga/gateway/base/abi"
	"github.com/mandinga/gateway/base/ethereum"
	"github.com/mandinga/gateway/domain/gateway"
)

// responseArgs is both the digest preimage layout (result, expires, request)
// and the response layout (result, expires, signature).
var responseArgs = abi.MustNewArguments("bytes", "uint64", "bytes")

type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
	ttl     uint64
	now     func() time.Time
}

// New parses the hex private key. ttlSeconds must be positive.
func New(privateKey string, ttlSeconds int64) (*Signer, error) {
	if ttlSeconds <= 0 {
		return nil, xerrors.Errorf("ttl must be positive, got %d", ttlSeconds)
	}
	key, err := ethereum.ParsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		ttl:     uint64(ttlSeconds),
		now:     time.Now,
	}, nil
}

// Address is the account the verifier contract must trust
func (s *Signer) Address() common.Address {
	return s.address
}

// Sign expires the result ttl seconds from now and signs the digest over
// (result, expires, data). data must be the request exactly as received.
func (s *Signer) Sign(result, data []byte) (*gateway.SignedResponse, error) {
	expires := uint64(s.now().Unix()) + s.ttl
	digest, err := Digest(result, expires, data)
	if err != nil {
		return nil, err
	}
	sig, err := ethereum.SignMsg(digest, s.key)
	if err != nil {
		return nil, xerrors.Errorf("sign digest: %w", err)
	}
	return &gateway.SignedResponse{
		Result:    result,
		Expires:   expires,
		Signature: sig,
	}, nil
}

// Digest is keccak256(abi.encode(bytes result, uint64 expires, bytes request))
func Digest(result []byte, expires uint64, request []byte) ([]byte, error) {
	packed, err := responseArgs.Pack(nonNil(result), expires, nonNil(request))
	if err != nil {
		return nil, xerrors.Errorf("pack digest: %w", err)
	}
	return crypto.Keccak256(packed), nil
}

// EncodeResponse is abi.encode(bytes result, uint64 expires, bytes signature)
func EncodeResponse(res *gateway.SignedResponse) ([]byte, error) {
	packed, err := responseArgs.Pack(nonNil(res.Result), res.Expires, nonNil(res.Signature))
	if err != nil {
		return nil, xerrors.Errorf("pack response: %w", err)
	}
	return packed, nil
}

// DecodeResponse reverses EncodeResponse
func DecodeResponse(data []byte) (*gateway.SignedResponse, error) {
	values, err := responseArgs.Unpack(data)
	if err != nil {
		return nil, xerrors.Errorf("unpack response: %w", err)
	}
	return &gateway.SignedResponse{
		Result:    values[0].([]byte),
		Expires:   values[1].(uint64),
		Signature: values[2].([]byte),
	}, nil
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
