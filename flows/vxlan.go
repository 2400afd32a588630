package flows

import (
	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/ezpkt"
)

// VxlanFlow wraps an inner Ethernet frame in an outer UDP/VXLAN datagram,
// per §4.4. Raw is stored but Encap does not read it: the outer
// encapsulation is always an Ethernet+IP+UDP datagram, and the inner frame
// bytes are carried unchanged.
type VxlanFlow struct {
	Cl, Sv Endpoint
	VNI    uint32
	Raw    bool
}

func NewVxlanFlow(cl, sv Endpoint, vni uint32, raw bool) *VxlanFlow {
	return &VxlanFlow{Cl: cl, Sv: sv, VNI: vni, Raw: raw}
}

func (f *VxlanFlow) ClassName() string { return "VxlanFlow" }

// Encap wraps the inner frame bytes in a VXLAN datagram from the client
// endpoint to the server endpoint.
func (f *VxlanFlow) Encap(innerFrame []byte) resynth.PacketSource {
	d := ezpkt.NewVxlanDgram(f.Cl.Mac, f.Sv.Mac, f.Cl.Sock4.IP, f.Sv.Sock4.IP, f.Cl.Sock4.Port, f.VNI, len(innerFrame))
	d.Push(innerFrame)
	return d.IntoPacket()
}
