package ezpkt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rapid7/resynth-go/pkt"
)

// E2: an ICMP echo request, id 0x1234, seq 0, payload "PING".
func TestIcmpDgramPing(t *testing.T) {
	src := [4]byte{10, 0, 0, 1}
	dst := [4]byte{10, 0, 0, 2}
	payload := []byte("PING")

	d := NewIcmpDgram(true, nil, nil, src, dst, len(payload))
	p := d.Ping(0x1234, 0, payload)

	content := p.Buf.Content()
	icmpOff := pkt.IPHdrSize
	assert.Equal(t, uint8(pkt.ICMPEchoRequest), content[icmpOff])
	assert.Equal(t, uint8(0), content[icmpOff+1])

	idOff := icmpOff + pkt.ICMPHdrSize
	id := uint16(content[idOff])<<8 | uint16(content[idOff+1])
	seq := uint16(content[idOff+2])<<8 | uint16(content[idOff+3])
	assert.Equal(t, uint16(0x1234), id)
	assert.Equal(t, uint16(0), seq)

	gotPayload := content[idOff+pkt.ICMPEchoHdrSize:]
	assert.Equal(t, payload, gotPayload)
}

func TestIcmpDgramPong(t *testing.T) {
	d := NewIcmpDgram(true, nil, nil, [4]byte{1, 1, 1, 1}, [4]byte{2, 2, 2, 2}, 4)
	p := d.Pong(0x1234, 1, []byte("PONG"))
	content := p.Buf.Content()
	assert.Equal(t, uint8(pkt.ICMPEchoReply), content[pkt.IPHdrSize])
}
