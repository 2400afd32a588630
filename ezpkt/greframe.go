package ezpkt

import (
	"net"

	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/pkt"
)

// GreFrame builds a GRE-encapsulated frame over an IPv4 header.
type GreFrame struct {
	dgram  *IpDgram
	greHdr resynth.Hdr[pkt.GREHdr]
	seqHdr resynth.Hdr[pkt.GREHdrSeq]
	hasSeq bool
}

// NewGreFrame allocates a GRE frame addressed src -> dst, encapsulating
// proto (the ethertype of the payload). When flags.Seq is set, an extra
// 4-byte sequence trailer is reserved and its offset recorded, and the IP
// total-length already accounts for it, per §4.3.
func NewGreFrame(raw bool, srcMac, dstMac net.HardwareAddr, src, dst [4]byte, flags pkt.GreFlags, proto uint16, payloadHint int) *GreFrame {
	overhead := pkt.GREHdrSize
	if flags.Seq {
		overhead += pkt.GREHdrSeqSize
	}
	dgram := NewIpDgram(raw, srcMac, dstMac, src, dst, pkt.ProtoGRE, overhead+payloadHint)
	greHdr := resynth.Push(dgram.Packet.Buf, pkt.NewGREHdr(flags, proto))
	dgram.IPHdr().AddTotLen(pkt.GREHdrSize)

	g := &GreFrame{dgram: dgram, greHdr: greHdr}
	if flags.Seq {
		g.seqHdr = resynth.PushHeader[pkt.GREHdrSeq](dgram.Packet.Buf)
		dgram.IPHdr().AddTotLen(pkt.GREHdrSeqSize)
		g.hasSeq = true
	}
	return g
}

// Seq writes the sequence word. It panics if this frame's flags did not
// request sequencing.
func (g *GreFrame) Seq(n uint32) *GreFrame {
	if !g.hasSeq {
		panic("resynth/ezpkt: GreFrame has no sequence field (S flag not set)")
	}
	resynth.Get(g.dgram.Packet.Buf, g.seqHdr).SetSeq(n)
	return g
}

// Push appends encapsulated payload bytes.
func (g *GreFrame) Push(b []byte) *GreFrame {
	g.dgram.Push(b)
	return g
}

// PushStruct appends a fixed-layout record (e.g. an ERSPAN type II header)
// immediately after the GRE header/sequence trailer, growing the IP
// total-length field to match.
func PushStruct[T any](g *GreFrame, value T) resynth.Hdr[T] {
	h := resynth.Push(g.dgram.Packet.Buf, value)
	g.dgram.IPHdr().AddTotLen(uint16(h.Size()))
	return h
}

// IntoPacket finishes the IPv4 header and returns the completed packet.
func (g *GreFrame) IntoPacket() *pkt.Packet {
	return g.dgram.Finish()
}
