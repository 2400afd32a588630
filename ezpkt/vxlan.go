package ezpkt

import (
	"net"

	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/pkt"
)

// VxlanDgram wraps an inner Ethernet frame in an outer UDP datagram
// directed at a VXLAN endpoint, per §4.4's VxlanFlow.
type VxlanDgram struct {
	udp      *UdpDgram
	vxlanHdr resynth.Hdr[pkt.VXLANHdr]
}

// NewVxlanDgram allocates the outer IP/UDP/VXLAN headers. The caller
// appends the encapsulated frame with Push.
func NewVxlanDgram(srcMac, dstMac net.HardwareAddr, src, dst [4]byte, sport uint16, vni uint32, innerHint int) *VxlanDgram {
	udp := NewUdpDgram(false, srcMac, dstMac, src, dst, sport, pkt.VxlanDefaultPort, pkt.VXLANHdrSize+innerHint)
	vxlanHdr := resynth.Push(udp.Buf(), pkt.NewVXLANHdr(vni))
	udp.dgram.IPHdr().AddTotLen(pkt.VXLANHdrSize)
	udp.Hdr().AddLen(pkt.VXLANHdrSize)

	return &VxlanDgram{udp: udp, vxlanHdr: vxlanHdr}
}

// Push appends the encapsulated inner frame's bytes.
func (v *VxlanDgram) Push(b []byte) *VxlanDgram {
	v.udp.Push(b)
	return v
}

// IntoPacket computes the UDP checksum and returns the completed packet.
func (v *VxlanDgram) IntoPacket() *pkt.Packet {
	v.udp.Csum()
	return v.udp.IntoPacket()
}
