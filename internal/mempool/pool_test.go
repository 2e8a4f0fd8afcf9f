package mempool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeClass(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "small size gets minimum", input: 1, expected: 1024},
		{name: "exactly 1024", input: 1024, expected: 1024},
		{name: "just over 1024", input: 1025, expected: 2048},
		{name: "exact multiple", input: 4096, expected: 4096},
		{name: "odd number", input: 1500, expected: 2048},
		{name: "zero size", input: 0, expected: 1024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sizeClass(tt.input))
		})
	}
}

func TestGetPutFloat64(t *testing.T) {
	buf := GetFloat64(100)
	require.Len(t, buf, 100)
	require.GreaterOrEqual(t, cap(buf), 1024)
	for i := range buf {
		buf[i] = float64(i)
	}
	PutFloat64(buf)

	// Reused buffers keep their length contract regardless of prior content.
	buf2 := GetFloat64(50)
	require.Len(t, buf2, 50)
	PutFloat64(buf2)
}

func TestGetBoolResetsMask(t *testing.T) {
	buf := GetBool(64)
	require.Len(t, buf, 64)
	for i := range buf {
		buf[i] = true
	}
	PutBool(buf)

	buf2 := GetBool(64)
	require.Len(t, buf2, 64)
	for i, v := range buf2 {
		assert.False(t, v, "mask entry %d not reset", i)
	}
	PutBool(buf2)
}

func TestPutNilIsSafe(t *testing.T) {
	PutFloat64(nil)
	PutBool(nil)
}
