package domain

import "errors"

var (
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")
	ErrInvalidAddress = errors.New("Invalid address")
	ErrInvalidChainId = errors.New("invalid chain id")

	// resolution request errors, all surfaced as 4xx
	ErrInvalidData     = errors.New("missing or invalid data")
	ErrTruncatedName   = errors.New("truncated dns name")
	ErrMalformedCall   = errors.New("malformed resolver call")
	ErrUnsupportedCall = errors.New("unsupported resolver call")

	// ErrInvalidRecord is returned when a stored record value cannot be encoded
	ErrInvalidRecord = errors.New("invalid record value")

	// ErrGatewayConfig marks a configuration problem. The gateway refuses to
	// answer until it is fixed.
	ErrGatewayConfig = errors.New("gateway misconfigured")
)
