package flows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapid7/resynth-go/pkt"
)

func tcpFields(t *testing.T, src pktSource) (seq, ack uint32, flags uint8) {
	t.Helper()
	content := src.FrameBytes()
	require.GreaterOrEqual(t, len(content), pkt.IPHdrSize+pkt.TCPHdrSize)
	b := content[pkt.IPHdrSize:]
	seq = uint32(b[4])<<24 | uint32(b[5])<<16 | uint32(b[6])<<8 | uint32(b[7])
	ack = uint32(b[8])<<24 | uint32(b[9])<<16 | uint32(b[10])<<8 | uint32(b[11])
	flags = b[13]
	return
}

// pktSource narrows resynth.PacketSource to what this test needs, avoiding
// an import cycle concern (none exists, but keeps the helper self-contained).
type pktSource interface {
	FrameBytes() []byte
}

func testEndpoints() (Endpoint, Endpoint) {
	cl := Endpoint{Sock4: Sock4{IP: [4]byte{10, 0, 0, 1}, Port: 1234}}
	sv := Endpoint{Sock4: Sock4{IP: [4]byte{10, 0, 0, 2}, Port: 80}}
	return cl, sv
}

// E3: the three-way handshake produces the spec's literal expected
// seq/ack values when both sides start from sequence 1.
func TestTcpFlowOpenHandshake(t *testing.T) {
	cl, sv := testEndpoints()
	f := NewTcpFlow(cl, sv, 1, 1, true)

	pkts := f.Open()
	require.Len(t, pkts, 3)

	syn := pkts[0].(pktSource)
	seq, ack, flags := tcpFields(t, syn)
	assert.Equal(t, uint32(1), seq)
	assert.Equal(t, uint32(0), ack)
	assert.Equal(t, pkt.TCPSyn, flags&pkt.TCPSyn)
	assert.Equal(t, uint8(0), flags&pkt.TCPAck)

	synAck := pkts[1].(pktSource)
	seq, ack, flags = tcpFields(t, synAck)
	assert.Equal(t, uint32(1), seq)
	assert.Equal(t, uint32(2), ack)
	assert.Equal(t, pkt.TCPSyn, flags&pkt.TCPSyn)
	assert.Equal(t, pkt.TCPAck, flags&pkt.TCPAck)

	finalAck := pkts[2].(pktSource)
	seq, ack, _ = tcpFields(t, finalAck)
	assert.Equal(t, uint32(2), seq)
	assert.Equal(t, uint32(2), ack)

	assert.Equal(t, uint32(2), f.ClSeq)
	assert.Equal(t, uint32(2), f.SvSeq)
}

// Property 4: sequence accounting. After an open, a message and a close,
// total bytes consumed equals data bytes plus one per SYN/FIN.
func TestTcpFlowSequenceAccounting(t *testing.T) {
	cl, sv := testEndpoints()
	f := NewTcpFlow(cl, sv, 1, 1, true)

	f.Open()
	startClSeq := f.ClSeq
	data := []byte("hello")
	f.ClientMessage(data, false, 0)
	assert.Equal(t, startClSeq+uint32(len(data)), f.ClSeq)

	startClSeq = f.ClSeq
	startSvSeq := f.SvSeq
	f.ClientClose()
	// client: FIN consumes 1; server: FIN consumes 1; ack from client: 0
	assert.Equal(t, startClSeq+1, f.ClSeq)
	assert.Equal(t, startSvSeq+1, f.SvSeq)
}

func TestTcpFlowHoleAdvancesWithoutPacket(t *testing.T) {
	cl, sv := testEndpoints()
	f := NewTcpFlow(cl, sv, 1, 1, true)
	before := f.ClSeq
	f.ClientHole(10)
	assert.Equal(t, before+10, f.ClSeq)
}

func TestTcpFlowReset(t *testing.T) {
	cl, sv := testEndpoints()
	f := NewTcpFlow(cl, sv, 5, 9, true)
	rst := f.ClientReset().(pktSource)
	_, ack, flags := tcpFields(t, rst)
	assert.Equal(t, pkt.TCPRst, flags&pkt.TCPRst)
	assert.Equal(t, uint32(9), ack)
}
