package flows

import (
	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/ezpkt"
)

// TcpFlow is a mutable TCP session, one per client/server direction-pair,
// per §3/§4.4 (C5). ClSeq/SvSeq are each endpoint's *next* sequence number
// to send. Every emitted segment advances the sender's counter by the
// segment's SeqConsumed() (payload bytes, plus one for SYN, plus one for
// FIN).
type TcpFlow struct {
	Cl, Sv       Endpoint
	ClSeq, SvSeq uint32
	Raw          bool
}

func NewTcpFlow(cl, sv Endpoint, clSeq, svSeq uint32, raw bool) *TcpFlow {
	return &TcpFlow{Cl: cl, Sv: sv, ClSeq: clSeq, SvSeq: svSeq, Raw: raw}
}

func (f *TcpFlow) ClassName() string { return "TcpFlow" }

func (f *TcpFlow) emitClient(build func(*ezpkt.TcpSeg)) resynth.PacketSource {
	seg := ezpkt.NewTcpSeg(f.Raw, f.Cl.Mac, f.Sv.Mac, f.Cl.Sock4.IP, f.Sv.Sock4.IP, f.Cl.Sock4.Port, f.Sv.Sock4.Port, f.ClSeq)
	build(seg)
	p := seg.IntoPacket()
	f.ClSeq += uint32(seg.SeqConsumed())
	return p
}

func (f *TcpFlow) emitServer(build func(*ezpkt.TcpSeg)) resynth.PacketSource {
	seg := ezpkt.NewTcpSeg(f.Raw, f.Sv.Mac, f.Cl.Mac, f.Sv.Sock4.IP, f.Cl.Sock4.IP, f.Sv.Sock4.Port, f.Cl.Sock4.Port, f.SvSeq)
	build(seg)
	p := seg.IntoPacket()
	f.SvSeq += uint32(seg.SeqConsumed())
	return p
}

// Open emits the three-way handshake: CL->SV SYN, SV->CL SYN|ACK, CL->SV
// ACK.
func (f *TcpFlow) Open() []resynth.PacketSource {
	syn := f.emitClient(func(s *ezpkt.TcpSeg) { s.Syn() })
	synAck := f.emitServer(func(s *ezpkt.TcpSeg) { s.Syn().Ack(f.ClSeq) })
	ack := f.emitClient(func(s *ezpkt.TcpSeg) { s.Ack(f.SvSeq) })
	return []resynth.PacketSource{syn, synAck, ack}
}

// ClientClose emits the client-initiated three-packet teardown: CL->SV
// FIN|ACK, SV->CL FIN|ACK, CL->SV ACK.
func (f *TcpFlow) ClientClose() []resynth.PacketSource {
	fin := f.emitClient(func(s *ezpkt.TcpSeg) { s.Fin().Ack(f.SvSeq) })
	finAck := f.emitServer(func(s *ezpkt.TcpSeg) { s.Fin().Ack(f.ClSeq) })
	ack := f.emitClient(func(s *ezpkt.TcpSeg) { s.Ack(f.SvSeq) })
	return []resynth.PacketSource{fin, finAck, ack}
}

// ServerClose is the server-initiated analog of ClientClose.
func (f *TcpFlow) ServerClose() []resynth.PacketSource {
	fin := f.emitServer(func(s *ezpkt.TcpSeg) { s.Fin().Ack(f.ClSeq) })
	finAck := f.emitClient(func(s *ezpkt.TcpSeg) { s.Fin().Ack(f.SvSeq) })
	ack := f.emitServer(func(s *ezpkt.TcpSeg) { s.Ack(f.ClSeq) })
	return []resynth.PacketSource{fin, finAck, ack}
}

// ClientMessage emits a CL->SV PSH|ACK segment carrying data, optionally
// followed by an SV->CL ACK. When sendAck is requested the ACK carries the
// server's current rcv_nxt even if the server has no outstanding data of
// its own, per §4.4's tie-break.
func (f *TcpFlow) ClientMessage(data []byte, sendAck bool, fragOff uint16) []resynth.PacketSource {
	msg := f.emitClient(func(s *ezpkt.TcpSeg) {
		s.Psh().Ack(f.SvSeq).Push(data)
		if fragOff != 0 {
			s.IPHdr().SetFragOff(fragOff)
		}
	})
	out := []resynth.PacketSource{msg}
	if sendAck {
		out = append(out, f.emitServer(func(s *ezpkt.TcpSeg) { s.Ack(f.ClSeq) }))
	}
	return out
}

// ServerMessage is the symmetric analog of ClientMessage.
func (f *TcpFlow) ServerMessage(data []byte, sendAck bool, fragOff uint16) []resynth.PacketSource {
	msg := f.emitServer(func(s *ezpkt.TcpSeg) {
		s.Psh().Ack(f.ClSeq).Push(data)
		if fragOff != 0 {
			s.IPHdr().SetFragOff(fragOff)
		}
	})
	out := []resynth.PacketSource{msg}
	if sendAck {
		out = append(out, f.emitClient(func(s *ezpkt.TcpSeg) { s.Ack(f.SvSeq) }))
	}
	return out
}

// savedState is what PushState returns: the prior values of the overridden
// sides (nil for a side left unchanged), so a later PopState can restore
// them.
type savedState struct {
	clSeq, svSeq *uint32
}

// PushState replaces ClSeq/SvSeq with the supplied overrides (nil leaves a
// side unchanged) and returns the prior values of the overridden sides for
// PopState to restore.
func (f *TcpFlow) PushState(clSeq, svSeq *uint32) savedState {
	var saved savedState
	if clSeq != nil {
		prev := f.ClSeq
		saved.clSeq = &prev
		f.ClSeq = *clSeq
	}
	if svSeq != nil {
		prev := f.SvSeq
		saved.svSeq = &prev
		f.SvSeq = *svSeq
	}
	return saved
}

// PopState restores the sides that a previous PushState overrode; a side
// that was not overridden keeps its current value.
func (f *TcpFlow) PopState(saved savedState) {
	if saved.clSeq != nil {
		f.ClSeq = *saved.clSeq
	}
	if saved.svSeq != nil {
		f.SvSeq = *saved.svSeq
	}
}

// ClientSegment emits a single CL->SV segment with optional seq/ack
// overrides; overrides are applied via PushState/PopState so they never
// corrupt the flow's long-term state.
func (f *TcpFlow) ClientSegment(data []byte, seq, ack *uint32) resynth.PacketSource {
	saved := f.PushState(seq, nil)
	defer f.PopState(saved)
	ackVal := f.SvSeq
	if ack != nil {
		ackVal = *ack
	}
	return f.emitClient(func(s *ezpkt.TcpSeg) {
		s.Ack(ackVal)
		if len(data) > 0 {
			s.Psh().Push(data)
		}
	})
}

// ServerSegment is the symmetric analog of ClientSegment.
func (f *TcpFlow) ServerSegment(data []byte, seq, ack *uint32) resynth.PacketSource {
	saved := f.PushState(nil, seq)
	defer f.PopState(saved)
	ackVal := f.ClSeq
	if ack != nil {
		ackVal = *ack
	}
	return f.emitServer(func(s *ezpkt.TcpSeg) {
		s.Ack(ackVal)
		if len(data) > 0 {
			s.Psh().Push(data)
		}
	})
}

// ClientRawSegment is ClientSegment, returning the transport-layer bytes
// (TCP header plus payload, no IP header) instead of a finished packet.
func (f *TcpFlow) ClientRawSegment(data []byte, seq, ack *uint32) []byte {
	saved := f.PushState(seq, nil)
	defer f.PopState(saved)
	ackVal := f.SvSeq
	if ack != nil {
		ackVal = *ack
	}
	seg := ezpkt.NewTcpSeg(f.Raw, f.Cl.Mac, f.Sv.Mac, f.Cl.Sock4.IP, f.Sv.Sock4.IP, f.Cl.Sock4.Port, f.Sv.Sock4.Port, f.ClSeq)
	seg.Ack(ackVal)
	if len(data) > 0 {
		seg.Psh().Push(data)
	}
	seg.IntoPacket()
	f.ClSeq += uint32(seg.SeqConsumed())
	return seg.IntoTransportBytes()
}

// ServerRawSegment is the symmetric analog of ClientRawSegment.
func (f *TcpFlow) ServerRawSegment(data []byte, seq, ack *uint32) []byte {
	saved := f.PushState(nil, seq)
	defer f.PopState(saved)
	ackVal := f.ClSeq
	if ack != nil {
		ackVal = *ack
	}
	seg := ezpkt.NewTcpSeg(f.Raw, f.Sv.Mac, f.Cl.Mac, f.Sv.Sock4.IP, f.Cl.Sock4.IP, f.Sv.Sock4.Port, f.Cl.Sock4.Port, f.SvSeq)
	seg.Ack(ackVal)
	if len(data) > 0 {
		seg.Psh().Push(data)
	}
	seg.IntoPacket()
	f.SvSeq += uint32(seg.SeqConsumed())
	return seg.IntoTransportBytes()
}

// ClientHdr builds a header-only (PSH|ACK, no payload) client segment,
// advances the client's sequence counter by its SeqConsumed() plus dlen
// (a declared-but-not-actually-carried payload length, for callers
// hand-assembling the data themselves), and returns just the 20-byte TCP
// header.
func (f *TcpFlow) ClientHdr(dlen uint32) []byte {
	seg := ezpkt.NewTcpSeg(f.Raw, f.Cl.Mac, f.Sv.Mac, f.Cl.Sock4.IP, f.Sv.Sock4.IP, f.Cl.Sock4.Port, f.Sv.Sock4.Port, f.ClSeq)
	seg.Psh().Ack(f.SvSeq)
	hdr := append([]byte(nil), seg.HdrBytes()...)
	f.ClSeq += uint32(seg.SeqConsumed()) + dlen
	return hdr
}

// ServerHdr is the symmetric analog of ClientHdr.
func (f *TcpFlow) ServerHdr(dlen uint32) []byte {
	seg := ezpkt.NewTcpSeg(f.Raw, f.Sv.Mac, f.Cl.Mac, f.Sv.Sock4.IP, f.Cl.Sock4.IP, f.Sv.Sock4.Port, f.Cl.Sock4.Port, f.SvSeq)
	seg.Psh().Ack(f.ClSeq)
	hdr := append([]byte(nil), seg.HdrBytes()...)
	f.SvSeq += uint32(seg.SeqConsumed()) + dlen
	return hdr
}

// ClientAck emits a pure ACK from the client, optionally overriding
// seq/ack for this one segment only.
func (f *TcpFlow) ClientAck(seq, ack *uint32) resynth.PacketSource {
	return f.ClientSegment(nil, seq, ack)
}

// ServerAck is the symmetric analog of ClientAck.
func (f *TcpFlow) ServerAck(seq, ack *uint32) resynth.PacketSource {
	return f.ServerSegment(nil, seq, ack)
}

// ClientHole advances the client's snd_nxt by n without emitting any
// packet, simulating a missed segment.
func (f *TcpFlow) ClientHole(n uint32) { f.ClSeq += n }

// ServerHole is the symmetric analog of ClientHole.
func (f *TcpFlow) ServerHole(n uint32) { f.SvSeq += n }

// ClientReset emits a RST from the client.
func (f *TcpFlow) ClientReset() resynth.PacketSource {
	return f.emitClient(func(s *ezpkt.TcpSeg) { s.Rst().Ack(f.SvSeq) })
}

// ServerReset is the symmetric analog of ClientReset.
func (f *TcpFlow) ServerReset() resynth.PacketSource {
	return f.emitServer(func(s *ezpkt.TcpSeg) { s.Rst().Ack(f.ClSeq) })
}
