package stdlib

import (
	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/flows"
	"github.com/rapid7/resynth-go/pkt"
)

func udpFlow(a resynth.Args) *flows.UdpFlow { return resynth.As[flows.UdpFlow](a.This) }

func dgramParams() []resynth.ArgDesc {
	return []resynth.ArgDesc{
		{Name: "frag_off", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(0)))},
		{Name: "csum", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(true)))},
	}
}

var udpClientDgram = resynth.NewFuncDef("client_dgram", resynth.TPkt, dgramParams(), resynth.TStr,
	func(a resynth.Args) (resynth.Val, error) {
		fragOff, csum := a.Next(), a.Next()
		d := udpFlow(a).ClientMessage(a.JoinExtra(nil), fragOff.U16(), csum.Bool())
		return resynth.PktVal(d.IntoPacket()), nil
	})

var udpServerDgram = resynth.NewFuncDef("server_dgram", resynth.TPkt, dgramParams(), resynth.TStr,
	func(a resynth.Args) (resynth.Val, error) {
		fragOff, csum := a.Next(), a.Next()
		d := udpFlow(a).ServerMessage(a.JoinExtra(nil), fragOff.U16(), csum.Bool())
		return resynth.PktVal(d.IntoPacket()), nil
	})

var udpClientRawDgram = resynth.NewFuncDef("client_raw_dgram", resynth.TStr,
	[]resynth.ArgDesc{{Name: "csum", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(true)))}}, resynth.TStr,
	func(a resynth.Args) (resynth.Val, error) {
		csum := a.Next()
		d := udpFlow(a).ClientMessage(a.JoinExtra(nil), 0, csum.Bool())
		return resynth.StrVal(d.IntoTransportBytes()), nil
	})

var udpServerRawDgram = resynth.NewFuncDef("server_raw_dgram", resynth.TStr,
	[]resynth.ArgDesc{{Name: "csum", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(true)))}}, resynth.TStr,
	func(a resynth.Args) (resynth.Val, error) {
		csum := a.Next()
		d := udpFlow(a).ServerMessage(a.JoinExtra(nil), 0, csum.Bool())
		return resynth.StrVal(d.IntoTransportBytes()), nil
	})

var udpFlowClass = resynth.NewClass("UdpFlow", map[string]*resynth.FuncDef{
	"client_dgram":     udpClientDgram,
	"server_dgram":     udpServerDgram,
	"client_raw_dgram": udpClientRawDgram,
	"server_raw_dgram": udpServerRawDgram,
})

var udpFlowFunc = resynth.NewFuncDef("flow", resynth.TObj, []resynth.ArgDesc{
	{Name: "cl", Decl: resynth.Positional(resynth.TSock4)},
	{Name: "sv", Decl: resynth.Positional(resynth.TSock4)},
	{Name: "raw", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
}, resynth.TVoid, func(a resynth.Args) (resynth.Val, error) {
	cl, sv, raw := a.Next(), a.Next(), a.Next()
	f := flows.NewUdpFlow(sock4Endpoint(cl), sock4Endpoint(sv), raw.Bool())
	return resynth.ObjVal(resynth.NewObj(f, udpFlowClass)), nil
})

var udpUnicast = resynth.NewFuncDef("unicast", resynth.TPkt, []resynth.ArgDesc{
	{Name: "src", Decl: resynth.Positional(resynth.TSock4)},
	{Name: "dst", Decl: resynth.Positional(resynth.TSock4)},
	{Name: "raw", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
}, resynth.TStr, func(a resynth.Args) (resynth.Val, error) {
	src, dst, raw := a.Next(), a.Next(), a.Next()
	f := flows.NewUdpFlow(sock4Endpoint(src), sock4Endpoint(dst), raw.Bool())
	d := f.ClientMessage(a.JoinExtra(nil), 0, true)
	return resynth.PktVal(d.IntoPacket()), nil
})

// udpBroadcastMac is the all-ones destination the broadcast() builder
// addresses its Ethernet frame to, since 255.255.255.255 has no
// IP-derived synthesized MAC.
var udpBroadcastMac = []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

var udpBroadcast = resynth.NewFuncDef("broadcast", resynth.TPkt, []resynth.ArgDesc{
	{Name: "src", Decl: resynth.Positional(resynth.TSock4)},
	{Name: "dst", Decl: resynth.Positional(resynth.TSock4)},
	{Name: "raw", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
}, resynth.TStr, func(a resynth.Args) (resynth.Val, error) {
	src, dst, raw := a.Next(), a.Next(), a.Next()
	cl := sock4Endpoint(src)
	sv := sock4Endpoint(dst)
	sv.Mac = udpBroadcastMac
	f := flows.NewUdpFlow(cl, sv, raw.Bool())
	d := f.ClientMessage(a.JoinExtra(nil), 0, true)
	return resynth.PktVal(d.IntoPacket()), nil
})

var udpHdr = resynth.NewFuncDef("hdr", resynth.TStr, []resynth.ArgDesc{
	{Name: "src", Decl: resynth.Positional(resynth.TU16)},
	{Name: "dst", Decl: resynth.Positional(resynth.TU16)},
	{Name: "len", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(0)))},
	{Name: "csum", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(0)))},
}, resynth.TVoid, func(a resynth.Args) (resynth.Val, error) {
	src, dst, length, csum := a.Next(), a.Next(), a.Next(), a.Next()
	h := pkt.NewUDPHdr(src.U16(), dst.U16())
	h.SetLen(length.U16() + pkt.UDPHdrSize)
	h.SetCsum(csum.U16())
	return resynth.StrVal(structBytes(h)), nil
})

// UDP registers the udp module: unicast/broadcast one-shot builders, a raw
// header constructor, and the UdpFlow class, grounded on ipv4::udp's
// module table in the original source.
var UDP = newModule("udp", map[string]resynth.Symbol{
	"UdpFlow":   resynth.ClassSymbol(udpFlowClass),
	"flow":      resynth.FuncSymbol(udpFlowFunc),
	"unicast":   resynth.FuncSymbol(udpUnicast),
	"broadcast": resynth.FuncSymbol(udpBroadcast),
	"hdr":       resynth.FuncSymbol(udpHdr),
})
