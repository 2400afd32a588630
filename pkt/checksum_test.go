package pkt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Property 2: ip_csum(header_with_csum_zero) == published_csum, and
// ip_csum(header_with_computed_csum) == 0. Classic RFC 1071 worked example.
func TestChecksumProperty(t *testing.T) {
	hdr := []byte{
		0x45, 0x00, 0x00, 0x73, 0x00, 0x00, 0x40, 0x00,
		0x40, 0x11, 0x00, 0x00, 0xc0, 0xa8, 0x00, 0x01,
		0xc0, 0xa8, 0x00, 0xc7,
	}

	want := Checksum(hdr)
	assert.Equal(t, uint16(0xb861), want)

	filled := make([]byte, len(hdr))
	copy(filled, hdr)
	filled[10] = byte(want >> 8)
	filled[11] = byte(want)

	assert.Equal(t, uint16(0), Checksum(filled))
}

func TestChecksumOddLength(t *testing.T) {
	// a single trailing byte is summed as if padded with a zero byte
	assert.Equal(t, uint32(0x1200), Partial([]byte{0x12}))
}

func TestIPHdrCalcCsum(t *testing.T) {
	h := NewIPHdr()
	h.SetSaddr([4]byte{192, 168, 0, 1})
	h.SetDaddr([4]byte{192, 168, 0, 199})
	h.SetProtocol(ProtoUDP)
	h.SetTotLen(0x73)

	buf := make([]byte, IPHdrSize)
	buf[0], buf[1] = h.IhlVersion, h.Tos
	buf[2], buf[3] = byte(h.TotLen), byte(h.TotLen>>8)
	buf[6], buf[7] = 0x40, 0x00
	buf[8], buf[9] = h.Ttl, h.Protocol
	buf[12], buf[13], buf[14], buf[15] = byte(h.Saddr), byte(h.Saddr>>8), byte(h.Saddr>>16), byte(h.Saddr>>24)
	buf[16], buf[17], buf[18], buf[19] = byte(h.Daddr), byte(h.Daddr>>8), byte(h.Daddr>>16), byte(h.Daddr>>24)

	h.CalcCsum(buf)
	buf[10], buf[11] = byte(h.Csum), byte(h.Csum>>8)

	assert.Equal(t, uint16(0), Checksum(buf))
}
