package ezpkt

import (
	"net"

	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/pkt"
)

// TcpSeg builds a single TCP segment over an IPv4 datagram. It tracks two
// counters per §4.3: dataLen (real payload bytes pushed) and extraSeq (one
// per SYN/FIN flag set), so the enclosing flow can advance its sequence
// counter by exactly SeqConsumed() after the segment is emitted.
type TcpSeg struct {
	dgram    *IpDgram
	tcpHdr   resynth.Hdr[pkt.TCPHdr]
	dataLen  int
	extraSeq int
}

// NewTcpSeg allocates a TCP segment addressed src:sport -> dst:dport with
// the given starting sequence number.
func NewTcpSeg(raw bool, srcMac, dstMac net.HardwareAddr, src, dst [4]byte, sport, dport uint16, seq uint32) *TcpSeg {
	dgram := NewIpDgram(raw, srcMac, dstMac, src, dst, pkt.ProtoTCP, pkt.TCPHdrSize+64)
	tcpHdr := resynth.Push(dgram.Packet.Buf, pkt.NewTCPHdr(sport, dport))
	dgram.IPHdr().AddTotLen(pkt.TCPHdrSize)
	resynth.Get(dgram.Packet.Buf, tcpHdr).SetSeq(seq)

	return &TcpSeg{dgram: dgram, tcpHdr: tcpHdr}
}

// Hdr returns the mutable TCP header for flag/field setters.
func (t *TcpSeg) Hdr() *pkt.TCPHdr { return resynth.Get(t.dgram.Packet.Buf, t.tcpHdr) }

// IPHdr returns the enclosing IPv4 header, for callers that need to set the
// fragment offset or other IP-level fields on this segment.
func (t *TcpSeg) IPHdr() *pkt.IPHdr { return t.dgram.IPHdr() }

// Syn sets the SYN flag, consuming one sequence number.
func (t *TcpSeg) Syn() *TcpSeg {
	t.Hdr().SetSyn()
	t.extraSeq++
	return t
}

// Fin sets the FIN flag, consuming one sequence number.
func (t *TcpSeg) Fin() *TcpSeg {
	t.Hdr().SetFin()
	t.extraSeq++
	return t
}

func (t *TcpSeg) Rst() *TcpSeg            { t.Hdr().SetRst(); return t }
func (t *TcpSeg) Psh() *TcpSeg            { t.Hdr().SetPsh(); return t }
func (t *TcpSeg) Ack(ack uint32) *TcpSeg  { t.Hdr().SetAck(ack); return t }
func (t *TcpSeg) Seq(seq uint32) *TcpSeg  { t.Hdr().SetSeq(seq); return t }
func (t *TcpSeg) Win(win uint16) *TcpSeg  { t.Hdr().SetWin(win); return t }
func (t *TcpSeg) Urp(urp uint16) *TcpSeg  { t.Hdr().SetUrp(urp); return t }

// Push appends payload bytes, tracking dataLen and the IP total-length
// field.
func (t *TcpSeg) Push(b []byte) *TcpSeg {
	t.dgram.Push(b)
	t.dataLen += len(b)
	return t
}

// DataLen is the number of real payload bytes pushed so far.
func (t *TcpSeg) DataLen() int { return t.dataLen }

// SeqConsumed is the number of sequence numbers this segment consumes:
// payload bytes plus one per SYN/FIN flag.
func (t *TcpSeg) SeqConsumed() int { return t.dataLen + t.extraSeq }

// TcpCsum computes the TCP checksum over the IPv4 pseudo-header (scoped to
// tcp_header_size + data_len), the TCP header, and the payload.
func (t *TcpSeg) TcpCsum() uint16 {
	tcpLen := uint16(pkt.TCPHdrSize + t.dataLen)
	pseudo := t.dgram.PseudoHdr(tcpLen)
	segBytes := t.dgram.Packet.Buf.Bytes(resynth.SliceFrom(t.dgram.Packet.Buf, t.tcpHdr))
	return pkt.Fold(pseudo.CsumPartial() + pkt.Partial(segBytes))
}

// IntoTransportBytes returns just the IP-payload portion: the TCP header
// and payload, excluding the IP header.
func (t *TcpSeg) IntoTransportBytes() []byte {
	return t.dgram.Packet.Buf.Bytes(resynth.SliceFrom(t.dgram.Packet.Buf, t.tcpHdr))
}

// HdrBytes returns just the fixed 20-byte TCP header, excluding any
// payload, for callers that want the header alone (e.g. a hand-assembled
// partial segment).
func (t *TcpSeg) HdrBytes() []byte {
	return resynth.AsBytes(t.dgram.Packet.Buf, t.tcpHdr)
}

// IntoPacket zeroes and recomputes the TCP checksum, finishes the IPv4
// header, and returns the completed packet.
func (t *TcpSeg) IntoPacket() *pkt.Packet {
	t.Hdr().SetCsum(0)
	t.Hdr().SetCsum(t.TcpCsum())
	return t.dgram.Finish()
}
