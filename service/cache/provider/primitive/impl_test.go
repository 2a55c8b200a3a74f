package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mandinga/gateway/base/ctx"
	"github.com/mandinga/gateway/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im *impl
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("", 1).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.im.cache.Clear()
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetGet() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, 10*time.Second))
	r, ttl, err := ts.im.Get(mockCtx, k)
	ts.NoError(err)
	ts.Equal(v, r)
	ts.True(ttl > 0 && ttl <= 10*time.Second)
}

func (ts *testsuite) TestGetMissing() {
	_, _, err := ts.im.Get(mockCtx, "missing")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), 10*time.Second))
	ts.NoError(ts.im.Del(mockCtx, "k"))
	_, _, err := ts.im.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)
}
