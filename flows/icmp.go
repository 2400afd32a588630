package flows

import (
	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/ezpkt"
)

// IcmpFlow tracks a constant echo id and two independent sequence counters,
// one per direction, per §4.4.
type IcmpFlow struct {
	Cl, Sv           Endpoint
	Raw              bool
	ID               uint16
	PingSeq, PongSeq uint16
}

// NewIcmpFlow returns an IcmpFlow with the language-defined default id
// 0x1234.
func NewIcmpFlow(cl, sv Endpoint, raw bool) *IcmpFlow {
	return &IcmpFlow{Cl: cl, Sv: sv, Raw: raw, ID: 0x1234}
}

func (f *IcmpFlow) ClassName() string { return "IcmpFlow" }

// Echo emits an echo request from the client using PingSeq, then
// increments it.
func (f *IcmpFlow) Echo(data []byte) resynth.PacketSource {
	d := ezpkt.NewIcmpDgram(f.Raw, f.Cl.Mac, f.Sv.Mac, f.Cl.Sock4.IP, f.Sv.Sock4.IP, len(data))
	p := d.Ping(f.ID, f.PingSeq, data)
	f.PingSeq++
	return p
}

// EchoReply emits an echo reply from the server using PongSeq, then
// increments it.
func (f *IcmpFlow) EchoReply(data []byte) resynth.PacketSource {
	d := ezpkt.NewIcmpDgram(f.Raw, f.Sv.Mac, f.Cl.Mac, f.Sv.Sock4.IP, f.Cl.Sock4.IP, len(data))
	p := d.Pong(f.ID, f.PongSeq, data)
	f.PongSeq++
	return p
}
