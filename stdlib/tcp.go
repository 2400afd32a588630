package stdlib

import (
	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/flows"
)

func tcpFlow(a resynth.Args) *flows.TcpFlow { return resynth.As[flows.TcpFlow](a.This) }

var tcpOpen = resynth.NewFuncDef("open", resynth.TPktGen, nil, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		return pktGen(tcpFlow(a).Open()), nil
	})

var tcpClientClose = resynth.NewFuncDef("client_close", resynth.TPktGen, nil, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		return pktGen(tcpFlow(a).ClientClose()), nil
	})

var tcpServerClose = resynth.NewFuncDef("server_close", resynth.TPktGen, nil, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		return pktGen(tcpFlow(a).ServerClose()), nil
	})

var tcpClientReset = resynth.NewFuncDef("client_reset", resynth.TPkt, nil, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		return resynth.PktVal(tcpFlow(a).ClientReset()), nil
	})

var tcpServerReset = resynth.NewFuncDef("server_reset", resynth.TPkt, nil, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		return resynth.PktVal(tcpFlow(a).ServerReset()), nil
	})

var tcpClientHole = resynth.NewFuncDef("client_hole", resynth.TNil,
	[]resynth.ArgDesc{{Name: "bytes", Decl: resynth.Positional(resynth.TU32)}}, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		tcpFlow(a).ClientHole(a.Next().U32())
		return resynth.NilVal(), nil
	})

var tcpServerHole = resynth.NewFuncDef("server_hole", resynth.TNil,
	[]resynth.ArgDesc{{Name: "bytes", Decl: resynth.Positional(resynth.TU32)}}, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		tcpFlow(a).ServerHole(a.Next().U32())
		return resynth.NilVal(), nil
	})

var tcpClientHdr = resynth.NewFuncDef("client_hdr", resynth.TStr,
	[]resynth.ArgDesc{{Name: "bytes", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U32Val(0)))}}, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		return resynth.StrVal(tcpFlow(a).ClientHdr(a.Next().U32())), nil
	})

var tcpServerHdr = resynth.NewFuncDef("server_hdr", resynth.TStr,
	[]resynth.ArgDesc{{Name: "bytes", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U32Val(0)))}}, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		return resynth.StrVal(tcpFlow(a).ServerHdr(a.Next().U32())), nil
	})

func seqAckParams() []resynth.ArgDesc {
	return []resynth.ArgDesc{
		{Name: "seq", Decl: resynth.Optional(resynth.NullableDefault(resynth.TU32))},
		{Name: "ack", Decl: resynth.Optional(resynth.NullableDefault(resynth.TU32))},
	}
}

var tcpClientAck = resynth.NewFuncDef("client_ack", resynth.TPkt, seqAckParams(), resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		seq, ack := a.Next(), a.Next()
		return resynth.PktVal(tcpFlow(a).ClientAck(optU32(seq), optU32(ack))), nil
	})

var tcpServerAck = resynth.NewFuncDef("server_ack", resynth.TPkt, seqAckParams(), resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		seq, ack := a.Next(), a.Next()
		return resynth.PktVal(tcpFlow(a).ServerAck(optU32(seq), optU32(ack))), nil
	})

var tcpClientSegment = resynth.NewFuncDef("client_segment", resynth.TPkt, seqAckParams(), resynth.TStr,
	func(a resynth.Args) (resynth.Val, error) {
		seq, ack := a.Next(), a.Next()
		return resynth.PktVal(tcpFlow(a).ClientSegment(a.JoinExtra(nil), optU32(seq), optU32(ack))), nil
	})

var tcpServerSegment = resynth.NewFuncDef("server_segment", resynth.TPkt, seqAckParams(), resynth.TStr,
	func(a resynth.Args) (resynth.Val, error) {
		seq, ack := a.Next(), a.Next()
		return resynth.PktVal(tcpFlow(a).ServerSegment(a.JoinExtra(nil), optU32(seq), optU32(ack))), nil
	})

var tcpClientRawSegment = resynth.NewFuncDef("client_raw_segment", resynth.TStr, seqAckParams(), resynth.TStr,
	func(a resynth.Args) (resynth.Val, error) {
		seq, ack := a.Next(), a.Next()
		return resynth.StrVal(tcpFlow(a).ClientRawSegment(a.JoinExtra(nil), optU32(seq), optU32(ack))), nil
	})

var tcpServerRawSegment = resynth.NewFuncDef("server_raw_segment", resynth.TStr, seqAckParams(), resynth.TStr,
	func(a resynth.Args) (resynth.Val, error) {
		seq, ack := a.Next(), a.Next()
		return resynth.StrVal(tcpFlow(a).ServerRawSegment(a.JoinExtra(nil), optU32(seq), optU32(ack))), nil
	})

func clientMessageParams() []resynth.ArgDesc {
	return []resynth.ArgDesc{
		{Name: "send_ack", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(true)))},
		{Name: "seq", Decl: resynth.Optional(resynth.NullableDefault(resynth.TU32))},
		{Name: "ack", Decl: resynth.Optional(resynth.NullableDefault(resynth.TU32))},
		{Name: "frag_off", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(0)))},
	}
}

var tcpClientMessage = resynth.NewFuncDef("client_message", resynth.TPktGen, clientMessageParams(), resynth.TStr,
	func(a resynth.Args) (resynth.Val, error) {
		f := tcpFlow(a)
		sendAck, seq, ack, fragOff := a.Next(), a.Next(), a.Next(), a.Next()
		saved := f.PushState(optU32(seq), optU32(ack))
		out := f.ClientMessage(a.JoinExtra(nil), sendAck.Bool(), fragOff.U16())
		f.PopState(saved)
		return pktGen(out), nil
	})

var tcpServerMessage = resynth.NewFuncDef("server_message", resynth.TPktGen, clientMessageParams(), resynth.TStr,
	func(a resynth.Args) (resynth.Val, error) {
		f := tcpFlow(a)
		sendAck, seq, ack, fragOff := a.Next(), a.Next(), a.Next(), a.Next()
		saved := f.PushState(optU32(ack), optU32(seq))
		out := f.ServerMessage(a.JoinExtra(nil), sendAck.Bool(), fragOff.U16())
		f.PopState(saved)
		return pktGen(out), nil
	})

var tcpFlowClass = resynth.NewClass("TcpFlow", map[string]*resynth.FuncDef{
	"open":               tcpOpen,
	"client_close":       tcpClientClose,
	"server_close":       tcpServerClose,
	"client_reset":       tcpClientReset,
	"server_reset":       tcpServerReset,
	"client_hole":        tcpClientHole,
	"server_hole":        tcpServerHole,
	"client_hdr":         tcpClientHdr,
	"server_hdr":         tcpServerHdr,
	"client_ack":         tcpClientAck,
	"server_ack":         tcpServerAck,
	"client_segment":     tcpClientSegment,
	"server_segment":     tcpServerSegment,
	"client_raw_segment": tcpClientRawSegment,
	"server_raw_segment": tcpServerRawSegment,
	"client_message":     tcpClientMessage,
	"server_message":     tcpServerMessage,
})

var tcpFlowFunc = resynth.NewFuncDef("flow", resynth.TObj, []resynth.ArgDesc{
	{Name: "cl", Decl: resynth.Positional(resynth.TSock4)},
	{Name: "sv", Decl: resynth.Positional(resynth.TSock4)},
	{Name: "cl_seq", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U32Val(1)))},
	{Name: "sv_seq", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U32Val(1)))},
	{Name: "raw", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
}, resynth.TVoid, func(a resynth.Args) (resynth.Val, error) {
	cl, sv, clSeq, svSeq, raw := a.Next(), a.Next(), a.Next(), a.Next(), a.Next()
	f := flows.NewTcpFlow(sock4Endpoint(cl), sock4Endpoint(sv), clSeq.U32(), svSeq.U32(), raw.Bool())
	return resynth.ObjVal(resynth.NewObj(f, tcpFlowClass)), nil
})

// TCP registers the tcp module: a TcpFlow class plus its flow() factory,
// grounded on ipv4::tcp's module table in the original source.
var TCP = newModule("tcp", map[string]resynth.Symbol{
	"TcpFlow": resynth.ClassSymbol(tcpFlowClass),
	"flow":    resynth.FuncSymbol(tcpFlowFunc),
})
