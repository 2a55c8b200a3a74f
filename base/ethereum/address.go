package ethereum

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"
)

func GenerateKey() (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	if privateKey, err := crypto.GenerateKey(); err != nil {
		return nil, nil, err
	} else {
		publicKey := privateKey.Public().(*ecdsa.PublicKey)
		return privateKey, publicKey, nil
	}
}

// ParsePrivateKey accepts a secp256k1 key as hex, with or without 0x prefix
func ParsePrivateKey(key string) (*ecdsa.PrivateKey, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, xerrors.New("empty private key")
	}
	pk, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimPrefix(key, "0x"), "0X"))
	if err != nil {
		return nil, xerrors.Errorf("invalid private key: %w", err)
	}
	return pk, nil
}

// ChecksumAddress parses an address the way EIP-55 aware tooling does:
// all-lowercase and all-uppercase hex are accepted, mixed case must carry a
// valid checksum.
func ChecksumAddress(address string) (common.Address, bool) {
	if !common.IsHexAddress(address) {
		return common.Address{}, false
	}
	addr := common.HexToAddress(address)
	body := strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X")
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return addr, true
	}
	if addr.Hex()[2:] != body {
		return common.Address{}, false
	}
	return addr, true
}
