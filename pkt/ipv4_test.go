package pkt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPHdrFragOffPreservesFlags(t *testing.T) {
	h := NewIPHdr()
	h.SetDF(true)
	h.SetFragOff(185)
	assert.Equal(t, uint16(185), h.GetFragOff())
	assert.False(t, h.GetMF())

	h.SetMF(true)
	assert.Equal(t, uint16(185), h.GetFragOff(), "setting MF must not disturb frag_off")
	assert.True(t, h.GetMF())
}

func TestIPHdrFlagsIndependent(t *testing.T) {
	h := NewIPHdr()
	h.SetEvil(true)
	h.SetDF(true)
	h.SetMF(true)
	assert.True(t, h.GetMF())

	h.SetMF(false)
	assert.False(t, h.GetMF())
	// evil/df survive clearing mf
	assert.Equal(t, IPFlagEvil|IPFlagDF, Ntohs(h.FragOff))
}

func TestEthSrcFromIP(t *testing.T) {
	h := NewEthHdr(nil, nil, EthertypeIPv4)
	h.SrcFromIP([4]byte{10, 0, 0, 5})
	assert.Equal(t, [6]byte{0x02, 0x00, 10, 0, 0, 5}, h.Src)
}

func TestICMPEchoHdrRoundTrip(t *testing.T) {
	h := NewICMPEchoHdr(0x1234, 7)
	assert.Equal(t, uint16(0x1234), h.GetID())
	assert.Equal(t, uint16(7), h.GetSeq())
}
