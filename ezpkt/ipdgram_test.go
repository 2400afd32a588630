package ezpkt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapid7/resynth-go/pkt"
)

func payloadOf(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

// E5: fragmenting a 100-byte payload into three IP fragments.
func TestIpFragSequence(t *testing.T) {
	payload := payloadOf(100, 'X')
	frag := NewIpFrag(true, nil, nil, [4]byte{1, 1, 1, 1}, [4]byte{2, 2, 2, 2}, pkt.ProtoUDP, 7, false, false, payload)

	first := frag.Fragment(0, 2)
	assert.Equal(t, 16, first.Buf.LogicalLen()-pkt.IPHdrSize)
	assert.Equal(t, uint16(0), fragOffOf(t, first))
	assert.True(t, mfSetOn(t, first))

	mid := frag.Fragment(2, 2)
	assert.Equal(t, 16, mid.Buf.LogicalLen()-pkt.IPHdrSize)
	assert.Equal(t, uint16(2), fragOffOf(t, mid))
	assert.True(t, mfSetOn(t, mid))

	tail := frag.Tail(12)
	assert.Equal(t, 4, tail.Buf.LogicalLen()-pkt.IPHdrSize)
	assert.Equal(t, uint16(12), fragOffOf(t, tail))
	assert.False(t, mfSetOn(t, tail))

	// property 5: concatenating fragment payloads round-trips the original.
	var reassembled bytes.Buffer
	reassembled.Write(first.Buf.Content()[pkt.IPHdrSize:])
	reassembled.Write(mid.Buf.Content()[pkt.IPHdrSize:])
	reassembled.Write(tail.Buf.Content()[pkt.IPHdrSize:])
	require.Equal(t, payload, reassembled.Bytes())
}

func TestIpFragDatagramUnfragmented(t *testing.T) {
	payload := payloadOf(40, 'Y')
	frag := NewIpFrag(true, nil, nil, [4]byte{1, 1, 1, 1}, [4]byte{2, 2, 2, 2}, pkt.ProtoUDP, 1, false, false, payload)

	p := frag.Datagram()
	assert.False(t, mfSetOn(t, p))
	assert.Equal(t, uint16(0), fragOffOf(t, p))
	assert.Equal(t, payload, p.Buf.Content()[pkt.IPHdrSize:])
}

// rawFragOffWord reads the wire-order frag_off+flags word directly out of
// the IP header at the front of the packet's content.
func rawFragOffWord(t *testing.T, p *pkt.Packet) uint16 {
	t.Helper()
	content := p.Buf.Content()
	require.GreaterOrEqual(t, len(content), pkt.IPHdrSize)
	return uint16(content[6])<<8 | uint16(content[7])
}

func fragOffOf(t *testing.T, p *pkt.Packet) uint16 {
	return rawFragOffWord(t, p) & 0x1fff
}

func mfSetOn(t *testing.T, p *pkt.Packet) bool {
	return rawFragOffWord(t, p)&pkt.IPFlagMF != 0
}
