package ezpkt

import (
	"net"

	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/pkt"
)

// IcmpDgram builds an ICMP echo request/reply datagram over an IPv4
// header.
type IcmpDgram struct {
	dgram   *IpDgram
	icmpHdr resynth.Hdr[pkt.ICMPHdr]
}

// NewIcmpDgram allocates an ICMP datagram addressed src -> dst. The
// message type/code and echo fields are filled in by Ping/Pong.
func NewIcmpDgram(raw bool, srcMac, dstMac net.HardwareAddr, src, dst [4]byte, payloadHint int) *IcmpDgram {
	dgram := NewIpDgram(raw, srcMac, dstMac, src, dst, pkt.ProtoICMP, pkt.ICMPHdrSize+pkt.ICMPEchoHdrSize+payloadHint)
	icmpHdr := resynth.PushHeader[pkt.ICMPHdr](dgram.Packet.Buf)
	dgram.IPHdr().AddTotLen(pkt.ICMPHdrSize)

	return &IcmpDgram{dgram: dgram, icmpHdr: icmpHdr}
}

// Ping emits an echo request carrying payload, per §4.3: ICMPEchoRequest,
// the given id/seq, the checksum computed over the ICMP header + echo
// header + payload only (no pseudo-header).
func (d *IcmpDgram) Ping(id, seq uint16, payload []byte) *pkt.Packet {
	return d.echo(pkt.ICMPEchoRequest, id, seq, payload)
}

// Pong emits the matching echo reply.
func (d *IcmpDgram) Pong(id, seq uint16, payload []byte) *pkt.Packet {
	return d.echo(pkt.ICMPEchoReply, id, seq, payload)
}

func (d *IcmpDgram) echo(icmpType uint8, id, seq uint16, payload []byte) *pkt.Packet {
	*resynth.Get(d.dgram.Packet.Buf, d.icmpHdr) = pkt.NewICMPHdr(icmpType, 0)
	resynth.Push(d.dgram.Packet.Buf, pkt.NewICMPEchoHdr(id, seq))
	d.dgram.IPHdr().AddTotLen(pkt.ICMPEchoHdrSize)
	d.dgram.Push(payload)

	icmpBytes := d.dgram.Packet.Buf.Bytes(resynth.SliceFrom(d.dgram.Packet.Buf, d.icmpHdr))
	resynth.Get(d.dgram.Packet.Buf, d.icmpHdr).CalcCsum(icmpBytes)

	return d.dgram.Finish()
}
