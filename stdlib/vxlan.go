package stdlib

import (
	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/flows"
	"github.com/rapid7/resynth-go/pkt"
)

func vxlanFlow(a resynth.Args) *flows.VxlanFlow { return resynth.As[flows.VxlanFlow](a.This) }

var vxlanDgram = resynth.NewFuncDef("dgram", resynth.TPkt,
	[]resynth.ArgDesc{{Name: "pkt", Decl: resynth.Positional(resynth.TPkt)}}, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		inner := a.Next().Pkt()
		return resynth.PktVal(vxlanFlow(a).Encap(inner.FrameBytes())), nil
	})

var vxlanEncap = resynth.NewFuncDef("encap", resynth.TPktGen,
	[]resynth.ArgDesc{{Name: "gen", Decl: resynth.Positional(resynth.TPktGen)}}, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		f := vxlanFlow(a)
		gen := a.Next().PktGen()
		out := make([]resynth.PacketSource, len(gen))
		for i, p := range gen {
			out[i] = f.Encap(p.FrameBytes())
		}
		return pktGen(out), nil
	})

var vxlanFlowClass = resynth.NewClass("Vxlan", map[string]*resynth.FuncDef{
	"dgram": vxlanDgram,
	"encap": vxlanEncap,
})

var vxlanSession = resynth.NewFuncDef("session", resynth.TObj, []resynth.ArgDesc{
	{Name: "cl", Decl: resynth.Positional(resynth.TSock4)},
	{Name: "sv", Decl: resynth.Positional(resynth.TSock4)},
	{Name: "sessionid", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U32Val(0)))},
	{Name: "raw", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
}, resynth.TVoid, func(a resynth.Args) (resynth.Val, error) {
	cl, sv, sessionid, raw := a.Next(), a.Next(), a.Next(), a.Next()
	f := flows.NewVxlanFlow(sock4Endpoint(cl), sock4Endpoint(sv), sessionid.U32(), raw.Bool())
	return resynth.ObjVal(resynth.NewObj(f, vxlanFlowClass)), nil
})

// VXLAN registers the vxlan module, grounded on stdlib/vxlan.rs in the
// original source. sessionid is named after the original's parameter
// even though it carries the VNI.
var VXLAN = newModule("vxlan", map[string]resynth.Symbol{
	"Vxlan":        resynth.ClassSymbol(vxlanFlowClass),
	"session":      resynth.FuncSymbol(vxlanSession),
	"DEFAULT_PORT": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.VxlanDefaultPort))),
})
