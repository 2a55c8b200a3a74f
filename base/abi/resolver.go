package abi

import (
	"bytes"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"golang.org/x/xerrors"
)

const (
	SigResolve        = "resolve(bytes,bytes)"
	SigAddr           = "addr(bytes32)"
	SigAddrByCoinType = "addr(bytes32,uint256)"
	SigText           = "text(bytes32,string)"
)

// ResolverABI holds the ENSIP-10 extended resolver entry point plus the
// address and text profiles served by the gateway.
var ResolverABI abi.ABI

var methodsBySig map[string]abi.Method

func init() {
	_abi, err := abi.JSON(strings.NewReader(resolverABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	ResolverABI = _abi

	methodsBySig = make(map[string]abi.Method, len(_abi.Methods))
	for _, m := range _abi.Methods {
		methodsBySig[m.Sig] = m
	}
}

// MethodBySig looks a method up by its canonical signature, e.g. "addr(bytes32)"
func MethodBySig(sig string) (abi.Method, bool) {
	m, ok := methodsBySig[sig]
	return m, ok
}

// Selector returns the 4-byte selector of a method signature
func Selector(sig string) []byte {
	m, ok := methodsBySig[sig]
	if !ok {
		return nil
	}
	return m.ID
}

// HasSelector reports whether data starts with the selector of sig
func HasSelector(data []byte, sig string) bool {
	sel := Selector(sig)
	return sel != nil && len(data) >= len(sel) && bytes.Equal(data[:len(sel)], sel)
}

// EncodeCall packs selector and arguments of sig
func EncodeCall(sig string, args ...interface{}) ([]byte, error) {
	m, ok := methodsBySig[sig]
	if !ok {
		return nil, xerrors.Errorf("unknown method %s", sig)
	}
	packed, err := m.Inputs.Pack(args...)
	if err != nil {
		return nil, err
	}
	return append(append([]byte{}, m.ID...), packed...), nil
}

// NewArguments builds an unnamed argument list from solidity type names
func NewArguments(types ...string) (abi.Arguments, error) {
	args := make(abi.Arguments, 0, len(types))
	for _, t := range types {
		typ, err := abi.NewType(t, "", nil)
		if err != nil {
			return nil, err
		}
		args = append(args, abi.Argument{Type: typ})
	}
	return args, nil
}

// MustNewArguments is NewArguments for package level definitions
func MustNewArguments(types ...string) abi.Arguments {
	args, err := NewArguments(types...)
	if err != nil {
		panic(err)
	}
	return args
}

var resolverABIJson = `
[
  {
    "inputs": [
      { "internalType": "bytes", "name": "name", "type": "bytes" },
      { "internalType": "bytes", "name": "data", "type": "bytes" }
    ],
    "name": "resolve",
    "outputs": [
      { "internalType": "bytes", "name": "", "type": "bytes" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "bytes32", "name": "node", "type": "bytes32" }
    ],
    "name": "addr",
    "outputs": [
      { "internalType": "address payable", "name": "", "type": "address" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "bytes32", "name": "node", "type": "bytes32" },
      { "internalType": "uint256", "name": "coinType", "type": "uint256" }
    ],
    "name": "addr",
    "outputs": [
      { "internalType": "bytes", "name": "", "type": "bytes" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "bytes32", "name": "node", "type": "bytes32" },
      { "internalType": "string", "name": "key", "type": "string" }
    ],
    "name": "text",
    "outputs": [
      { "internalType": "string", "name": "", "type": "string" }
    ],
    "stateMutability": "view",
    "type": "function"
  }
]
`
