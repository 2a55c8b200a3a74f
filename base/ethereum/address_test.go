package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrivateKey(t *testing.T) {
	// first hardhat/anvil development account
	const key = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	const addr = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

	for _, in := range []string{key, "0x" + key, " 0x" + key + "\n"} {
		pk, err := ParsePrivateKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, addr, crypto.PubkeyToAddress(pk.PublicKey).Hex())
	}

	_, err := ParsePrivateKey("")
	assert.Error(t, err)
	_, err = ParsePrivateKey("0xzz")
	assert.Error(t, err)
}

func TestChecksumAddress(t *testing.T) {
	tests := []struct {
		desc    string
		address string
		expOk   bool
	}{
		{desc: "checksummed", address: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", expOk: true},
		{desc: "lower case", address: "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266", expOk: true},
		{desc: "upper case", address: "0xF39FD6E51AAD88F6F4CE6AB8827279CFFFB92266", expOk: true},
		{desc: "bad checksum", address: "0xF39fd6e51aad88F6F4ce6aB8827279cffFb92266", expOk: false},
		{desc: "too short", address: "0x000", expOk: false},
		{desc: "not hex", address: "0xg39fd6e51aad88f6f4ce6ab8827279cfffb92266", expOk: false},
	}
	for _, tt := range tests {
		addr, ok := ChecksumAddress(tt.address)
		assert.Equal(t, tt.expOk, ok, tt.desc)
		if ok {
			assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", addr.Hex(), tt.desc)
		}
	}
}
