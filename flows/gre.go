package flows

import (
	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/ezpkt"
	"github.com/rapid7/resynth-go/pkt"
)

// GreFlow owns a monotonic 32-bit sequence counter, advanced only when the
// configured flags request sequencing, per §4.4.
type GreFlow struct {
	Cl, Sv Endpoint
	Raw    bool
	Flags  pkt.GreFlags
	Proto  uint16
	Seq    uint32
}

func NewGreFlow(cl, sv Endpoint, raw bool, flags pkt.GreFlags, proto uint16) *GreFlow {
	return &GreFlow{Cl: cl, Sv: sv, Raw: raw, Flags: flags, Proto: proto}
}

func (f *GreFlow) ClassName() string { return "GreFlow" }

// Encap constructs a fresh GreFrame with the flow's configured flags,
// writes the current sequence number into the sequence slot if the flags
// request it, appends the payload, and increments the counter.
func (f *GreFlow) Encap(data []byte) resynth.PacketSource {
	frame := ezpkt.NewGreFrame(f.Raw, f.Cl.Mac, f.Sv.Mac, f.Cl.Sock4.IP, f.Sv.Sock4.IP, f.Flags, f.Proto, len(data))
	if f.Flags.Seq {
		frame.Seq(f.Seq)
		f.Seq++
	}
	frame.Push(data)
	return frame.IntoPacket()
}
