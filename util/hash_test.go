package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashDeterministic(t *testing.T) {
	data := []byte("select * from foo")
	assert.Equal(t, Hash(data), Hash(data))
	assert.Equal(t, SeededHash(data, 42), SeededHash(data, 42))
}

func TestSeededHashIndependence(t *testing.T) {
	data := []byte("column-value")
	seen := make(map[uint32]struct{})
	for seed := uint32(0); seed < 4; seed++ {
		seen[SeededHash(data, seed)] = struct{}{}
	}
	// Four seeds colliding to one value would make the rows useless.
	assert.Greater(t, len(seen), 1)
}

func TestNext2Power(t *testing.T) {
	assert.Equal(t, 1, Next2Power(0))
	assert.Equal(t, 1, Next2Power(1))
	assert.Equal(t, 2, Next2Power(2))
	assert.Equal(t, 4, Next2Power(3))
	assert.Equal(t, 1024, Next2Power(1000))
	assert.Equal(t, 1<<16, Next2Power(1<<16))
	assert.Equal(t, 1<<17, Next2Power(1<<16+1))
}
