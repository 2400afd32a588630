package stdlib

import (
	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/flows"
	"github.com/rapid7/resynth-go/pkt"
)

func greFlow(a resynth.Args) *flows.GreFlow { return resynth.As[flows.GreFlow](a.This) }

var greEncap = resynth.NewFuncDef("encap", resynth.TPktGen,
	[]resynth.ArgDesc{{Name: "gen", Decl: resynth.Positional(resynth.TPktGen)}}, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		f := greFlow(a)
		gen := a.Next().PktGen()
		out := make([]resynth.PacketSource, len(gen))
		for i, p := range gen {
			out[i] = f.Encap(p.FrameBytes())
		}
		return pktGen(out), nil
	})

var greFlowClass = resynth.NewClass("Gre", map[string]*resynth.FuncDef{
	"encap": greEncap,
})

var greSession = resynth.NewFuncDef("session", resynth.TObj, []resynth.ArgDesc{
	{Name: "cl", Decl: resynth.Positional(resynth.TIp4)},
	{Name: "sv", Decl: resynth.Positional(resynth.TIp4)},
	{Name: "ethertype", Decl: resynth.Positional(resynth.TU16)},
	{Name: "raw", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
}, resynth.TVoid, func(a resynth.Args) (resynth.Val, error) {
	cl, sv, ethertype, raw := a.Next(), a.Next(), a.Next(), a.Next()
	f := flows.NewGreFlow(ip4Endpoint(cl), ip4Endpoint(sv), raw.Bool(), pkt.GreFlags{}, ethertype.U16())
	return resynth.ObjVal(resynth.NewObj(f, greFlowClass)), nil
})

// GRE registers the gre module (Generic Routing Encapsulation), grounded
// on stdlib/gre.rs in the original source.
var GRE = newModule("gre", map[string]resynth.Symbol{
	"Gre":     resynth.ClassSymbol(greFlowClass),
	"session": resynth.FuncSymbol(greSession),
})
