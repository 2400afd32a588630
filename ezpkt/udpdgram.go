package ezpkt

import (
	"net"

	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/pkt"
)

// UdpDgram builds a single UDP datagram over an IPv4 header.
type UdpDgram struct {
	dgram  *IpDgram
	udpHdr resynth.Hdr[pkt.UDPHdr]
}

// NewUdpDgram allocates a UDP datagram addressed src:sport -> dst:dport.
func NewUdpDgram(raw bool, srcMac, dstMac net.HardwareAddr, src, dst [4]byte, sport, dport uint16, payloadHint int) *UdpDgram {
	dgram := NewIpDgram(raw, srcMac, dstMac, src, dst, pkt.ProtoUDP, pkt.UDPHdrSize+payloadHint)
	udpHdr := resynth.Push(dgram.Packet.Buf, pkt.NewUDPHdr(sport, dport))
	dgram.IPHdr().AddTotLen(pkt.UDPHdrSize)

	return &UdpDgram{dgram: dgram, udpHdr: udpHdr}
}

// Buf exposes the underlying buffer, for builders (VxlanDgram) that embed
// further headers after the UDP header.
func (u *UdpDgram) Buf() *resynth.Buffer { return u.dgram.Packet.Buf }

// Hdr returns the mutable UDP header.
func (u *UdpDgram) Hdr() *pkt.UDPHdr { return resynth.Get(u.dgram.Packet.Buf, u.udpHdr) }

// IPHdr returns the enclosing IPv4 header, for callers that need to set the
// fragment offset before finishing.
func (u *UdpDgram) IPHdr() *pkt.IPHdr { return u.dgram.IPHdr() }

// Push appends payload bytes, updating both the IP total-length and the
// UDP length field per §4.3.
func (u *UdpDgram) Push(b []byte) *UdpDgram {
	u.dgram.Push(b)
	resynth.Get(u.dgram.Packet.Buf, u.udpHdr).AddLen(uint16(len(b)))
	return u
}

// Csum computes and sets the UDP checksum the same way TcpSeg does: a
// pseudo-header partial combined with the UDP header and payload partial.
func (u *UdpDgram) Csum() *UdpDgram {
	h := resynth.Get(u.dgram.Packet.Buf, u.udpHdr)
	pseudo := u.dgram.PseudoHdr(h.GetLen())
	udpBytes := u.dgram.Packet.Buf.Bytes(resynth.SliceFrom(u.dgram.Packet.Buf, u.udpHdr))
	h.CalcCsum(pseudo.CsumPartial(), udpBytes)
	return u
}

// IntoTransportBytes returns just the IP-payload portion: the UDP header
// and payload, excluding the IP header.
func (u *UdpDgram) IntoTransportBytes() []byte {
	return u.dgram.Packet.Buf.Bytes(resynth.SliceFrom(u.dgram.Packet.Buf, u.udpHdr))
}

// IntoPacket finishes the IPv4 header and returns the completed packet.
func (u *UdpDgram) IntoPacket() *pkt.Packet {
	return u.dgram.Finish()
}
