package flows

import (
	"github.com/rapid7/resynth-go/ezpkt"
)

// UdpFlow is a stateless helper that produces one datagram per call,
// per §4.4.
type UdpFlow struct {
	Cl, Sv Endpoint
	Raw    bool
}

func NewUdpFlow(cl, sv Endpoint, raw bool) *UdpFlow {
	return &UdpFlow{Cl: cl, Sv: sv, Raw: raw}
}

func (f *UdpFlow) ClassName() string { return "UdpFlow" }

// ClientMessage emits a CL->SV datagram carrying data, optionally fragmented
// at fragOff (an IP fragment-offset value in 8-byte units; 0 means
// unfragmented) and optionally checksummed.
func (f *UdpFlow) ClientMessage(data []byte, fragOff uint16, csum bool) *ezpkt.UdpDgram {
	d := ezpkt.NewUdpDgram(f.Raw, f.Cl.Mac, f.Sv.Mac, f.Cl.Sock4.IP, f.Sv.Sock4.IP, f.Cl.Sock4.Port, f.Sv.Sock4.Port, len(data))
	d.Push(data)
	if fragOff != 0 {
		d.IPHdr().SetFragOff(fragOff)
	}
	if csum {
		d.Csum()
	}
	return d
}

// ServerMessage is the symmetric analog of ClientMessage.
func (f *UdpFlow) ServerMessage(data []byte, fragOff uint16, csum bool) *ezpkt.UdpDgram {
	d := ezpkt.NewUdpDgram(f.Raw, f.Sv.Mac, f.Cl.Mac, f.Sv.Sock4.IP, f.Cl.Sock4.IP, f.Sv.Sock4.Port, f.Cl.Sock4.Port, len(data))
	d.Push(data)
	if fragOff != 0 {
		d.IPHdr().SetFragOff(fragOff)
	}
	if csum {
		d.Csum()
	}
	return d
}
