package flows

import (
	"github.com/rapid7/resynth-go/ezpkt"
	"github.com/rapid7/resynth-go/pkt"
)

// IpFrag captures a complete IPv4 datagram template plus its payload and,
// on demand, emits specific fragment ranges, per §4.4. It never mutates,
// so it needs no sequence state of its own.
type IpFrag struct {
	tmpl *ezpkt.IpFrag
}

func NewIpFrag(cl, sv Endpoint, raw bool, proto uint8, id uint16, evil, df bool, payload []byte) *IpFrag {
	return &IpFrag{
		tmpl: ezpkt.NewIpFrag(raw, cl.Mac, sv.Mac, cl.Sock4.IP, sv.Sock4.IP, proto, id, evil, df, payload),
	}
}

func (f *IpFrag) ClassName() string { return "IpFrag" }

// Fragment emits the fragment covering [off*8, off*8+len*8) of the stored
// payload, clipped to its end.
func (f *IpFrag) Fragment(off, length int) *pkt.Packet { return f.tmpl.Fragment(off, length) }

// Tail emits the final fragment, from off*8 to the end of the payload.
func (f *IpFrag) Tail(off int) *pkt.Packet { return f.tmpl.Tail(off) }

// Datagram emits the entire payload as a single unfragmented datagram.
func (f *IpFrag) Datagram() *pkt.Packet { return f.tmpl.Datagram() }
