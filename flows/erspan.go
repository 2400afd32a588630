package flows

import (
	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/ezpkt"
	"github.com/rapid7/resynth-go/pkt"
)

// erspanEthertype is the transport ethertype GRE uses to carry both ERSPAN
// type I and type II traffic.
const erspanEthertype = pkt.EthertypeERSPAN

// Erspan1Flow GRE-encapsulates a mirrored frame with ethertype
// erspanEthertype and no ERSPAN header, i.e. ERSPAN type I, per §4.4.
type Erspan1Flow struct {
	Cl, Sv Endpoint
	Raw    bool
}

func NewErspan1Flow(cl, sv Endpoint, raw bool) *Erspan1Flow {
	return &Erspan1Flow{Cl: cl, Sv: sv, Raw: raw}
}

func (f *Erspan1Flow) ClassName() string { return "Erspan1Flow" }

// Mirror encapsulates frame and returns the finished packet.
func (f *Erspan1Flow) Mirror(frame []byte) resynth.PacketSource {
	g := ezpkt.NewGreFrame(f.Raw, f.Cl.Mac, f.Sv.Mac, f.Cl.Sock4.IP, f.Sv.Sock4.IP, pkt.GreFlags{}, erspanEthertype, len(frame))
	g.Push(frame)
	return g.IntoPacket()
}

// Erspan2Flow GRE-encapsulates with sequencing enabled, emitting an 8-byte
// ERSPAN type II header carrying the configured session id ahead of the
// mirrored frame; PortIndex is supplied per call and the GRE sequence
// counter is owned by this flow, per §4.4.
type Erspan2Flow struct {
	Cl, Sv    Endpoint
	Raw       bool
	SessionID uint16
	Seq       uint32
}

func NewErspan2Flow(cl, sv Endpoint, raw bool, sessionID uint16) *Erspan2Flow {
	return &Erspan2Flow{Cl: cl, Sv: sv, Raw: raw, SessionID: sessionID}
}

func (f *Erspan2Flow) ClassName() string { return "Erspan2Flow" }

// Mirror encapsulates frame behind an ERSPAN type II header addressed at
// portIndex, writes the current GRE sequence number, and increments it.
func (f *Erspan2Flow) Mirror(portIndex uint32, frame []byte) resynth.PacketSource {
	flags := pkt.GreFlags{Seq: true}
	g := ezpkt.NewGreFrame(f.Raw, f.Cl.Mac, f.Sv.Mac, f.Cl.Sock4.IP, f.Sv.Sock4.IP, flags, erspanEthertype, pkt.ERSPAN2HdrSize+len(frame))
	g.Seq(f.Seq)
	f.Seq++

	ezpkt.PushStruct(g, pkt.NewERSPAN2Hdr(pkt.ERSPAN2Fields{
		SessionID: f.SessionID,
		PortIndex: portIndex,
	}))
	g.Push(frame)
	return g.IntoPacket()
}
