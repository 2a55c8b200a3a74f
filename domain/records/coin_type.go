package records

import (
	"strconv"

	"github.com/mandinga/gateway/domain"
)

const (
	// CoinTypeEth is the SLIP-44 coin type of ethereum mainnet
	CoinTypeEth = "60"

	evmCoinTypeFlag = uint64(0x80000000)
)

// CoinTypeFromChainId derives the ENSIP-11 coin type of an EVM chain
func CoinTypeFromChainId(chainId uint64) (string, error) {
	if chainId == 1 {
		return CoinTypeEth, nil
	}
	if chainId >= evmCoinTypeFlag {
		return "", domain.ErrInvalidChainId
	}
	return strconv.FormatUint(evmCoinTypeFlag|chainId, 10), nil
}
