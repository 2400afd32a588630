package pkt

import "testing"

import "github.com/stretchr/testify/assert"

// Property 1: endianness round-trip for every typed setter/getter.
func TestEndiannessRoundTrip(t *testing.T) {
	for _, v := range []uint16{0, 1, 0x00ff, 0xff00, 0x1234, 0xffff} {
		assert.Equal(t, v, Ntohs(Htons(v)), "u16 %x", v)
	}
	for _, v := range []uint32{0, 1, 0x000000ff, 0xff000000, 0x12345678, 0xffffffff} {
		assert.Equal(t, v, Ntohl(Htonl(v)), "u32 %x", v)
	}

	h := NewIPHdr()
	h.SetID(0xbeef)
	assert.Equal(t, uint16(0xbeef), Ntohs(h.ID))

	h.SetSaddr([4]byte{10, 0, 0, 1})
	assert.Equal(t, [4]byte{10, 0, 0, 1}, h.GetSaddr())

	th := NewTCPHdr(1000, 2000)
	assert.Equal(t, uint16(1000), th.GetSport())
	assert.Equal(t, uint16(2000), th.GetDport())
	th.SetSeq(0xdeadbeef)
	assert.Equal(t, uint32(0xdeadbeef), th.GetSeq())
	th.SetAck(0xcafef00d)
	assert.Equal(t, uint32(0xcafef00d), th.GetAck())
	assert.True(t, th.HasFlag(TCPAck))

	uh := NewUDPHdr(53, 5353)
	assert.Equal(t, uint16(53), uh.GetSport())
	assert.Equal(t, uint16(5353), uh.GetDport())
}
