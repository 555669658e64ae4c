package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct {
	x, y int
}

func TestAppendKeyDeterministic(t *testing.T) {
	assert.Equal(t, appendKey(nil, 42), appendKey(nil, 42))
	assert.Equal(t, appendKey(nil, "hello"), appendKey(nil, "hello"))
	assert.Equal(t, appendKey(nil, 1.5), appendKey(nil, 1.5))
	assert.Equal(t, appendKey(nil, point{1, 2}), appendKey(nil, point{1, 2}))
}

func TestAppendKeyDistinguishesValues(t *testing.T) {
	assert.NotEqual(t, appendKey(nil, 1), appendKey(nil, 2))
	assert.NotEqual(t, appendKey(nil, "a"), appendKey(nil, "b"))
	assert.NotEqual(t, appendKey(nil, 1.5), appendKey(nil, 2.5))
	assert.NotEqual(t, appendKey(nil, true), appendKey(nil, false))
	assert.NotEqual(t, appendKey(nil, point{1, 2}), appendKey(nil, point{2, 1}))
}

func TestAppendKeyWidths(t *testing.T) {
	// Integer keys use a fixed 8-byte encoding regardless of declared size.
	assert.Len(t, appendKey(nil, int8(7)), 8)
	assert.Len(t, appendKey(nil, int64(7)), 8)
	assert.Len(t, appendKey(nil, uint16(7)), 8)
	assert.Len(t, appendKey(nil, 3.14), 8)
	assert.Len(t, appendKey(nil, float32(3.14)), 4)
	assert.Len(t, appendKey(nil, true), 1)
}

func TestAppendKeyReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 16)
	out := appendKey(buf, int64(9))
	assert.Len(t, out, 8)

	out = appendKey(out[:0], "xyz")
	assert.Equal(t, []byte("xyz"), out)
}
