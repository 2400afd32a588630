package pkt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTLSHdrEncoding(t *testing.T) {
	h := NewTLSHdr(TLSContentHandshake, TLSVersionTLS1_2)
	h.SetLen(5)

	assert.Equal(t, TLSContentHandshake, h.Content)
	assert.Equal(t, TLSVersionTLS1_2, h.GetVersion())
	assert.Equal(t, uint16(5), h.GetLen())
}

func TestTLSExtHdrEncoding(t *testing.T) {
	h := NewTLSExtHdr(TLSExtServerName, 9)
	assert.Equal(t, TLSExtServerName, h.GetExt())
	assert.Equal(t, uint16(9), h.GetLen())
}

func TestPutLen24(t *testing.T) {
	buf := make([]byte, 3)
	PutLen24(buf, 0x0a0b0c)
	assert.Equal(t, []byte{0x0a, 0x0b, 0x0c}, buf)
}

