package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectors(t *testing.T) {
	tests := []struct {
		sig string
		exp string
	}{
		{SigResolve, "0x9061b923"},
		{SigAddr, "0x3b3b57de"},
		{SigAddrByCoinType, "0xf1cb7e06"},
		{SigText, "0x59d1d43c"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.exp, hexutil.Encode(Selector(tt.sig)), tt.sig)
	}
	assert.Nil(t, Selector("contenthash(bytes32)"))
}

func TestEncodeCall(t *testing.T) {
	req := require.New(t)
	node := [32]byte{1}

	data, err := EncodeCall(SigAddrByCoinType, node, big.NewInt(60))
	req.NoError(err)
	req.Len(data, 4+64)
	req.True(HasSelector(data, SigAddrByCoinType))
	req.False(HasSelector(data, SigAddr))

	m, ok := MethodBySig(SigAddrByCoinType)
	req.True(ok)
	args, err := m.Inputs.Unpack(data[4:])
	req.NoError(err)
	req.Equal(node, args[0].([32]byte))
	req.Equal(int64(60), args[1].(*big.Int).Int64())

	_, err = EncodeCall("contenthash(bytes32)", node)
	req.Error(err)
}

func TestNewArguments(t *testing.T) {
	args, err := NewArguments("bytes", "uint64", "bytes")
	require.NoError(t, err)

	packed, err := args.Pack([]byte{0xaa}, uint64(7), []byte{})
	require.NoError(t, err)

	values, err := args.Unpack(packed)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa}, values[0])
	assert.Equal(t, uint64(7), values[1])
	assert.Equal(t, []byte{}, values[2])

	_, err = NewArguments("uint7")
	assert.Error(t, err)
}
