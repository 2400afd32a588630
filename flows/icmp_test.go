package flows

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rapid7/resynth-go/pkt"
)

func icmpEchoFields(t *testing.T, src pktSource) (id, seq uint16) {
	t.Helper()
	content := src.FrameBytes()
	b := content[pkt.IPHdrSize+pkt.ICMPHdrSize:]
	id = uint16(b[0])<<8 | uint16(b[1])
	seq = uint16(b[2])<<8 | uint16(b[3])
	return
}

// E2: default echo id is 0x1234, and each call increments its own
// direction's sequence counter independently.
func TestIcmpFlowDefaultIDAndSequencing(t *testing.T) {
	cl, sv := testEndpoints()
	f := NewIcmpFlow(cl, sv, true)
	assert.Equal(t, uint16(0x1234), f.ID)

	first := f.Echo([]byte("PING")).(pktSource)
	id, seq := icmpEchoFields(t, first)
	assert.Equal(t, uint16(0x1234), id)
	assert.Equal(t, uint16(0), seq)

	second := f.Echo([]byte("PING")).(pktSource)
	_, seq = icmpEchoFields(t, second)
	assert.Equal(t, uint16(1), seq)

	reply := f.EchoReply([]byte("PING")).(pktSource)
	_, seq = icmpEchoFields(t, reply)
	assert.Equal(t, uint16(0), seq, "pong sequence is independent of ping sequence")
}
