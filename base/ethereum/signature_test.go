package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignMsg(t *testing.T) {
	req := require.New(t)
	privateKey, publicKey, err := GenerateKey()
	req.NoError(err)
	address := crypto.PubkeyToAddress(*publicKey)
	digest := crypto.Keccak256([]byte("gateway response"))

	sig, err := SignMsg(digest, privateKey)
	req.NoError(err)
	req.Len(sig, crypto.SignatureLength)
	req.Contains([]byte{27, 28}, sig[crypto.RecoveryIDOffset])

	signer, err := RecoverMsgSigner(digest, sig)
	req.NoError(err)
	req.Equal(address, signer)
	// recovering must not touch the caller's signature
	req.Contains([]byte{27, 28}, sig[crypto.RecoveryIDOffset])

	// the bare digest without the personal prefix recovers someone else
	other, err := ecRecover(digest, append([]byte{}, sig...))
	req.NoError(err)
	req.NotEqual(address, other)
}

func TestRecoverMsgSignerWrongSigner(t *testing.T) {
	privateKey, _, err := GenerateKey()
	require.NoError(t, err)
	_, other, err := GenerateKey()
	require.NoError(t, err)

	msg := []byte("this is signature message template 123456")
	sig, err := SignMsg(msg, privateKey)
	require.NoError(t, err)

	res, err := RecoverMsgSigner(msg, sig)
	assert.NoError(t, err)
	assert.NotEqual(t, crypto.PubkeyToAddress(*other), res)

	_, err = RecoverMsgSigner(msg, hexutil.MustDecode("0x1234"))
	assert.Error(t, err)

	bad := append([]byte{}, sig...)
	bad[crypto.RecoveryIDOffset] = 30
	_, err = RecoverMsgSigner(msg, bad)
	assert.Error(t, err)
}

func TestEcRecoverKnownVector(t *testing.T) {
	req := require.New(t)
	hash := hexutil.MustDecode("0x7d4a470c1f919efbc629d12c57cf5dbc7eee958d0b6d787f842944c0be83c8c3")
	sig := hexutil.MustDecode("0xfae5218f6165f30bf7d8798d6f1990fde8fea58c336b36c8cd3078b4d8dc2a9d0448debd2b776fb0f6bdf91d1142474d4682057d290561814172bce4641108641c")
	signer, err := ecRecover(hash, sig)
	req.NoError(err)
	req.Equal("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", signer.Hex())
}
