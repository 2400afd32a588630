package pkt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNBNSNameRawEncode(t *testing.T) {
	var raw [0x10]byte
	copy(raw[:], "ABCDEFGHIJKLMNOP")
	enc := NBNSNameRawEncode(raw)

	// 'A' = 0x41: high nibble 4 -> 'A'+4 = 'E', low nibble 1 -> 'A'+1 = 'B'.
	assert.Equal(t, byte('E'), enc[0])
	assert.Equal(t, byte('B'), enc[1])
	assert.Len(t, enc, 0x20)
}

func TestNBNSNamePad(t *testing.T) {
	buf, ok := NBNSNamePad([]byte("WORKGROUP"), 0x20)
	assert.True(t, ok)
	assert.Equal(t, []byte("WORKGROUP"), buf[:9])
	for i := 9; i < 0x0f; i++ {
		assert.Equal(t, byte(' '), buf[i])
	}
	assert.Equal(t, byte(0x20), buf[0x0f])
}

func TestNBNSNamePadTooLong(t *testing.T) {
	_, ok := NBNSNamePad(make([]byte, 16), 0)
	assert.False(t, ok)
}

func TestNBNSNameEncodeRoundTripsLength(t *testing.T) {
	enc, ok := NBNSNameEncode([]byte("WORKGROUP"), 0x1d)
	assert.True(t, ok)
	assert.Len(t, enc, 0x20)
}

func TestNBNSNameEncodeTooLong(t *testing.T) {
	_, ok := NBNSNameEncode(make([]byte, 16), 0)
	assert.False(t, ok)
}
