package ctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithValue(t *testing.T) {
	c := WithValue(Background(), "requestID", "abc")
	assert.Equal(t, "abc", Value(c, "requestID"))
	assert.Nil(t, Value(c, "missing"))

	c = WithValues(c, map[string]interface{}{"name": "circle-trip.mandinga.eth"})
	assert.Equal(t, "abc", Value(c, "requestID"))
	assert.Equal(t, "circle-trip.mandinga.eth", Value(c, "name"))
}

func TestWithTimeout(t *testing.T) {
	c, cancel := WithTimeout(WithValue(Background(), "k", "v"), 10*time.Millisecond)
	defer cancel()

	<-c.Done()
	assert.Error(t, c.Err())
	assert.Equal(t, "v", Value(c, "k"))
}
