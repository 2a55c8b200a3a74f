package resolver

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	goens "github.com/wealdtech/go-ens/v3"
	"github.com/stretchr/testify/suite"

	"github.com/mandinga/gateway/base/abi"
	"github.com/mandinga/gateway/base/ctx"
	"github.com/mandinga/gateway/domain"
	"github.com/mandinga/gateway/domain/records"
	"github.com/mandinga/gateway/service/dnsname"
	"github.com/mandinga/gateway/service/zone"
)

const (
	tripName    = "circle-trip.mandinga.eth"
	tripAddr    = "0xAbC0000000000000000000000000000000000123"
	tripCoin    = "2152525650"
	tripCoinRaw = "0x00000000000000000000000000000000000000000000000000000000000001aa"
)

var mockCtx = ctx.Background()

type resolverSuite struct {
	suite.Suite

	store *zone.Zone
	node  [32]byte
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(resolverSuite))
}

func (s *resolverSuite) SetupSuite() {
	s.store = zone.New(records.ZoneData{
		tripName: {
			Addresses: map[string]string{"60": tripAddr, tripCoin: tripCoinRaw},
			Text:      map[string]string{"description": "trip circle", "url": "https://mandinga.example"},
		},
	})
	node, err := goens.NameHash(tripName)
	s.Require().NoError(err)
	s.node = node
}

func (s *resolverSuite) call(sig string, args ...interface{}) []byte {
	data, err := abi.EncodeCall(sig, args...)
	s.Require().NoError(err)
	return data
}

func (s *resolverSuite) TestAddr() {
	res, err := ResolveRecord(mockCtx, s.store, tripName, s.call(abi.SigAddr, s.node))
	s.Require().NoError(err)

	values, err := addrResult.Unpack(res)
	s.Require().NoError(err)
	s.Equal(common.HexToAddress(tripAddr), values[0].(common.Address))
}

func (s *resolverSuite) TestAddrUnknownName() {
	res, err := ResolveRecord(mockCtx, s.store, "nobody.mandinga.eth", s.call(abi.SigAddr, s.node))
	s.Require().NoError(err)
	s.Equal(make([]byte, 32), res)
}

func (s *resolverSuite) TestAddrByCoinType() {
	res, err := ResolveRecord(mockCtx, s.store, tripName, s.call(abi.SigAddrByCoinType, s.node, big.NewInt(60)))
	s.Require().NoError(err)
	values, err := bytesResult.Unpack(res)
	s.Require().NoError(err)
	s.Equal(common.HexToAddress(tripAddr).Bytes(), values[0].([]byte))

	coin, _ := new(big.Int).SetString(tripCoin, 10)
	res, err = ResolveRecord(mockCtx, s.store, tripName, s.call(abi.SigAddrByCoinType, s.node, coin))
	s.Require().NoError(err)
	values, err = bytesResult.Unpack(res)
	s.Require().NoError(err)
	s.Equal(hexutil.MustDecode(tripCoinRaw), values[0].([]byte))
}

func (s *resolverSuite) TestAddrByCoinTypeZeroValues() {
	res, err := ResolveRecord(mockCtx, s.store, "nobody.eth", s.call(abi.SigAddrByCoinType, s.node, big.NewInt(60)))
	s.Require().NoError(err)
	values, err := bytesResult.Unpack(res)
	s.Require().NoError(err)
	s.Equal(make([]byte, 20), values[0].([]byte))

	res, err = ResolveRecord(mockCtx, s.store, "nobody.eth", s.call(abi.SigAddrByCoinType, s.node, big.NewInt(0)))
	s.Require().NoError(err)
	values, err = bytesResult.Unpack(res)
	s.Require().NoError(err)
	s.Len(values[0].([]byte), 0)

	// coin types beyond 64 bits are plain map keys
	huge, _ := new(big.Int).SetString("340282366920938463463374607431768211456", 10)
	res, err = ResolveRecord(mockCtx, s.store, tripName, s.call(abi.SigAddrByCoinType, s.node, huge))
	s.Require().NoError(err)
	values, err = bytesResult.Unpack(res)
	s.Require().NoError(err)
	s.Len(values[0].([]byte), 0)
}

func (s *resolverSuite) TestText() {
	res, err := ResolveRecord(mockCtx, s.store, tripName, s.call(abi.SigText, s.node, "description"))
	s.Require().NoError(err)
	values, err := textResult.Unpack(res)
	s.Require().NoError(err)
	s.Equal("trip circle", values[0].(string))

	res, err = ResolveRecord(mockCtx, s.store, tripName, s.call(abi.SigText, s.node, "avatar"))
	s.Require().NoError(err)
	values, err = textResult.Unpack(res)
	s.Require().NoError(err)
	s.Equal("", values[0].(string))
}

func (s *resolverSuite) TestMismatchedNodeIsServed() {
	other, err := goens.NameHash("other.eth")
	s.Require().NoError(err)

	res, err := ResolveRecord(mockCtx, s.store, tripName, s.call(abi.SigAddr, other))
	s.Require().NoError(err)
	values, err := addrResult.Unpack(res)
	s.Require().NoError(err)
	s.Equal(common.HexToAddress(tripAddr), values[0].(common.Address))
}

func (s *resolverSuite) TestSelectorDispatch() {
	tests := []struct {
		desc   string
		call   string
		expErr error
	}{
		{desc: "addr(bytes32)", call: "0x3b3b57de" + "00"},
		{desc: "addr(bytes32,uint256)", call: "0xf1cb7e06"},
		{desc: "text(bytes32,string)", call: "0x59d1d43c"},
		{desc: "contenthash(bytes32)", call: "0xbc1c58d1", expErr: domain.ErrUnsupportedCall},
		{desc: "short call", call: "0x3b3b57", expErr: domain.ErrUnsupportedCall},
		{desc: "empty call", call: "0x", expErr: domain.ErrUnsupportedCall},
	}
	for _, tt := range tests {
		_, err := ResolveRecord(mockCtx, s.store, tripName, hexutil.MustDecode(tt.call))
		if tt.expErr != nil {
			s.ErrorIs(err, tt.expErr, tt.desc)
			continue
		}
		// known selectors with missing arguments fail decoding, not dispatch
		s.ErrorIs(err, domain.ErrMalformedCall, tt.desc)
		s.NotErrorIs(err, domain.ErrUnsupportedCall, tt.desc)
	}
}

func (s *resolverSuite) TestDecodeCallData() {
	name, err := dnsname.Pack("Circle-Trip.Mandinga.ETH")
	s.Require().NoError(err)
	inner := s.call(abi.SigText, s.node, "url")

	withSelector := s.call(abi.SigResolve, name, inner)
	m, _ := abi.MethodBySig(abi.SigResolve)
	bare, err := m.Inputs.Pack(name, inner)
	s.Require().NoError(err)

	for _, data := range [][]byte{withSelector, bare} {
		resName, call, err := DecodeCallData(data)
		s.Require().NoError(err)
		s.Equal(tripName, resName)
		s.Equal(inner, call)
	}
}

func (s *resolverSuite) TestDecodeCallDataErrors() {
	_, _, err := DecodeCallData(hexutil.MustDecode("0x9061b923deadbeef"))
	s.ErrorIs(err, domain.ErrMalformedCall)

	_, _, err = DecodeCallData(nil)
	s.ErrorIs(err, domain.ErrMalformedCall)

	truncated := s.call(abi.SigResolve, []byte("\x0bcircle"), s.call(abi.SigAddr, s.node))
	_, _, err = DecodeCallData(truncated)
	s.ErrorIs(err, domain.ErrTruncatedName)
}
