// Package ezpkt implements the builder layer (C4): stateless constructors
// that assemble a Buffer into a finished or in-progress packet, following
// the pattern of §4.3 — allocate, push headers in wire order, push
// payload, fix up length fields as bytes are appended, compute checksums
// last.
package ezpkt

import (
	"net"

	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/pkt"
)

// macOrSynth returns mac when it is a 6-byte hardware address, and
// otherwise (e.g. the caller supplied none) the MAC synthesized from ip,
// matching pkt.EthHdr.SrcFromIP/DestFromIP's synthesized-MAC convention.
func macOrSynth(mac net.HardwareAddr, ip [4]byte) net.HardwareAddr {
	if len(mac) == 6 {
		return mac
	}
	var h pkt.EthHdr
	h.SrcFromIP(ip)
	return net.HardwareAddr(h.Src[:])
}

// IpDgram builds an IPv4 datagram carrying an arbitrary protocol payload
// (used directly for protocols this package has no dedicated transport
// builder for, and embedded inside TcpSeg/UdpDgram/IcmpDgram/GreFrame).
type IpDgram struct {
	Packet *pkt.Packet
	ipHdr  resynth.Hdr[pkt.IPHdr]
	raw    bool
}

// NewIpDgram allocates a packet, optionally prefixed with an Ethernet
// header (raw == false), followed by an IPv4 header addressed src->dst
// carrying the given upper protocol number.
func NewIpDgram(raw bool, srcMac, dstMac net.HardwareAddr, src, dst [4]byte, proto uint8, payloadHint int) *IpDgram {
	overhead := pkt.IPHdrSize
	if !raw {
		overhead += pkt.EtherHdrSize
	}
	p := pkt.NewPacket(0, overhead+payloadHint)

	if !raw {
		pkt.PushEthHdr(p.Buf, macOrSynth(srcMac, src), macOrSynth(dstMac, dst), pkt.EthertypeIPv4)
	}
	ipHdr := pkt.PushIPHdr(p.Buf)
	resynth.Get(p.Buf, ipHdr).SetSaddr(src).SetDaddr(dst).SetProtocol(proto)

	return &IpDgram{Packet: p, ipHdr: ipHdr, raw: raw}
}

// IPHdr returns the mutable IPv4 header, for transport builders that need
// to tweak fields (TTL, DF, fragment offset) before finishing.
func (d *IpDgram) IPHdr() *pkt.IPHdr { return resynth.Get(d.Packet.Buf, d.ipHdr) }

// IPHdrBytes returns the on-wire bytes of the IPv4 header, for checksuming.
func (d *IpDgram) IPHdrBytes() []byte { return resynth.AsBytes(d.Packet.Buf, d.ipHdr) }

// PseudoHdr returns the IPv4 pseudo-header for a transport segment of the
// given length, used by TCP/UDP checksum computation.
func (d *IpDgram) PseudoHdr(transportLen uint16) pkt.PseudoHdr {
	return d.IPHdr().GetPseudoHdr(transportLen)
}

// Push appends raw bytes and grows the IP total-length field accordingly.
func (d *IpDgram) Push(b []byte) resynth.PktSlice {
	s := d.Packet.Buf.PushBytes(b)
	d.IPHdr().AddTotLen(uint16(len(b)))
	return s
}

// Finish recomputes the IPv4 header checksum and returns the completed
// packet.
func (d *IpDgram) Finish() *pkt.Packet {
	d.IPHdr().CalcCsum(d.IPHdrBytes())
	return d.Packet
}

// IpFrag captures a complete IPv4 datagram template (header fields plus a
// full payload buffer) and, on demand, slices out individual fragments,
// per §4.4's stateless IpFrag.
type IpFrag struct {
	raw           bool
	srcMac, dstMac net.HardwareAddr
	src, dst      [4]byte
	proto         uint8
	ttl           uint8
	id            uint16
	evil, df      bool
	payload       []byte
}

// NewIpFrag stores the datagram template this fragment set is carved from.
func NewIpFrag(raw bool, srcMac, dstMac net.HardwareAddr, src, dst [4]byte, proto uint8, id uint16, evil, df bool, payload []byte) *IpFrag {
	return &IpFrag{
		raw: raw, srcMac: srcMac, dstMac: dstMac,
		src: src, dst: dst, proto: proto, ttl: 64, id: id,
		evil: evil, df: df,
		payload: payload,
	}
}

// Fragment emits the fragment covering payload bytes [off*8, off*8+len*8),
// clipped to the payload end, per the literal byte-range contract of
// §4.3. The MF flag is set iff the clipped range does not reach the end of
// the stored payload.
func (f *IpFrag) Fragment(off, length int) *pkt.Packet {
	start := off * 8
	end := start + length*8
	if start > len(f.payload) {
		start = len(f.payload)
	}
	if end > len(f.payload) {
		end = len(f.payload)
	}
	chunk := f.payload[start:end]
	mf := end < len(f.payload)

	d := NewIpDgram(f.raw, f.srcMac, f.dstMac, f.src, f.dst, f.proto, len(chunk))
	ih := d.IPHdr()
	ih.SetTTL(f.ttl).SetID(f.id).SetFragOff(uint16(off)).SetMF(mf).SetEvil(f.evil).SetDF(f.df)
	d.Push(chunk)
	return d.Finish()
}

// Datagram emits the entire stored payload as a single unfragmented
// datagram (fragment offset 0, MF clear), ignoring any 8-byte alignment
// constraint a real fragment would be subject to.
func (f *IpFrag) Datagram() *pkt.Packet {
	d := NewIpDgram(f.raw, f.srcMac, f.dstMac, f.src, f.dst, f.proto, len(f.payload))
	ih := d.IPHdr()
	ih.SetTTL(f.ttl).SetID(f.id).SetFragOff(0).SetMF(false).SetEvil(f.evil).SetDF(f.df)
	d.Push(f.payload)
	return d.Finish()
}

// Tail emits the final fragment, from off*8 to the end of the payload.
func (f *IpFrag) Tail(off int) *pkt.Packet {
	remaining := len(f.payload) - off*8
	if remaining < 0 {
		remaining = 0
	}
	// length is taken in 8-byte units by Fragment's contract; round up so
	// the clip-to-end behavior takes over exactly at the payload boundary.
	lenBlocks := (remaining + 7) / 8
	return f.Fragment(off, lenBlocks)
}
