package gateway

import (
	"github.com/mandinga/gateway/base/ctx"
)

// Request is one CCIP-Read lookup. Sender is informational only.
type Request struct {
	Sender string `json:"sender" query:"sender" param:"sender"`
	Data   string `json:"data" query:"data" param:"data"`
}

// SignedResponse is ABI-encoded as (bytes result, uint64 expires, bytes signature)
type SignedResponse struct {
	Result    []byte
	Expires   uint64
	Signature []byte
}

// Invalidator discards cached zone state so that the next lookup reloads it
type Invalidator interface {
	Invalidate(ctx ctx.Ctx)
}

type Usecase interface {
	Invalidator
	// Handle returns the 0x-hex encoded signed response for req
	Handle(ctx ctx.Ctx, req Request) (string, error)
}
