package uuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	first, second := New(), New()

	assert.Len(t, first, 36)
	assert.Equal(t, "-", first[8:9])
	assert.NotEqual(t, first, second)
}
