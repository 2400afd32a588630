package ezpkt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rapid7/resynth-go/pkt"
)

// E1: a single UDP unicast datagram carrying "hi".
func TestUdpDgramUnicast(t *testing.T) {
	src := [4]byte{10, 0, 0, 1}
	dst := [4]byte{10, 0, 0, 2}

	d := NewUdpDgram(true, nil, nil, src, dst, 1111, 53, 2)
	d.Push([]byte("hi"))
	p := d.IntoPacket()

	content := p.Buf.Content()
	assert.Equal(t, pkt.IPHdrSize+pkt.UDPHdrSize+2, len(content))

	totLen := uint16(content[2])<<8 | uint16(content[3])
	assert.Equal(t, uint16(30), totLen)
	assert.Equal(t, uint8(pkt.ProtoUDP), content[9])

	udpLen := uint16(content[pkt.IPHdrSize+4])<<8 | uint16(content[pkt.IPHdrSize+5])
	assert.Equal(t, uint16(10), udpLen)

	payload := content[pkt.IPHdrSize+pkt.UDPHdrSize:]
	assert.Equal(t, []byte{0x68, 0x69}, payload)
}

func TestUdpDgramCsumNonZero(t *testing.T) {
	d := NewUdpDgram(true, nil, nil, [4]byte{1, 1, 1, 1}, [4]byte{2, 2, 2, 2}, 1000, 2000, 2)
	d.Push([]byte("hi"))
	d.Csum()
	assert.NotEqual(t, uint16(0), d.Hdr().Csum)
}
