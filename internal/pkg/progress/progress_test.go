package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	c := New(10)
	assert.Equal(t, 0, c.Count())
	c.Inc()
	c.Inc()
	assert.Equal(t, 2, c.Count())
}

func TestDisabled(t *testing.T) {
	c := New(0)
	c.Inc()
	assert.Equal(t, 1, c.Count())
}
