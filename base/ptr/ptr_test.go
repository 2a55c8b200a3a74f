package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	p := String("https://mandinga.example")
	assert.Equal(t, "https://mandinga.example", *p)
	assert.NotSame(t, p, String("https://mandinga.example"))
}
