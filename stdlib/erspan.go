package stdlib

import (
	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/flows"
)

func erspan1Flow(a resynth.Args) *flows.Erspan1Flow { return resynth.As[flows.Erspan1Flow](a.This) }
func erspan2Flow(a resynth.Args) *flows.Erspan2Flow { return resynth.As[flows.Erspan2Flow](a.This) }

var erspan1Encap = resynth.NewFuncDef("encap", resynth.TPktGen,
	[]resynth.ArgDesc{{Name: "gen", Decl: resynth.Positional(resynth.TPktGen)}}, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		f := erspan1Flow(a)
		gen := a.Next().PktGen()
		out := make([]resynth.PacketSource, len(gen))
		for i, p := range gen {
			out[i] = f.Mirror(p.FrameBytes())
		}
		return pktGen(out), nil
	})

var erspan1FlowClass = resynth.NewClass("Erspan1", map[string]*resynth.FuncDef{
	"encap": erspan1Encap,
})

var erspan1Session = resynth.NewFuncDef("session", resynth.TObj, []resynth.ArgDesc{
	{Name: "cl", Decl: resynth.Positional(resynth.TIp4)},
	{Name: "sv", Decl: resynth.Positional(resynth.TIp4)},
	{Name: "raw", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
}, resynth.TVoid, func(a resynth.Args) (resynth.Val, error) {
	cl, sv, raw := a.Next(), a.Next(), a.Next()
	f := flows.NewErspan1Flow(ip4Endpoint(cl), ip4Endpoint(sv), raw.Bool())
	return resynth.ObjVal(resynth.NewObj(f, erspan1FlowClass)), nil
})

// ERSPAN1 registers the erspan1 module (ERSPAN type I: GRE-encapsulated,
// no ERSPAN header), grounded on stdlib/erspan1.rs in the original source.
var ERSPAN1 = newModule("erspan1", map[string]resynth.Symbol{
	"Erspan1": resynth.ClassSymbol(erspan1FlowClass),
	"session": resynth.FuncSymbol(erspan1Session),
})

var erspan2Encap = resynth.NewFuncDef("encap", resynth.TPktGen, []resynth.ArgDesc{
	{Name: "gen", Decl: resynth.Positional(resynth.TPktGen)},
	{Name: "port_index", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U32Val(0)))},
}, resynth.TVoid, func(a resynth.Args) (resynth.Val, error) {
	f := erspan2Flow(a)
	gen, portIndex := a.Next().PktGen(), a.Next()
	out := make([]resynth.PacketSource, len(gen))
	for i, p := range gen {
		out[i] = f.Mirror(portIndex.U32(), p.FrameBytes())
	}
	return pktGen(out), nil
})

var erspan2FlowClass = resynth.NewClass("Erspan2", map[string]*resynth.FuncDef{
	"encap": erspan2Encap,
})

var erspan2Session = resynth.NewFuncDef("session", resynth.TObj, []resynth.ArgDesc{
	{Name: "cl", Decl: resynth.Positional(resynth.TIp4)},
	{Name: "sv", Decl: resynth.Positional(resynth.TIp4)},
	{Name: "raw", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
}, resynth.TVoid, func(a resynth.Args) (resynth.Val, error) {
	cl, sv, raw := a.Next(), a.Next(), a.Next()
	// The original's session() factory carries no session_id parameter;
	// it defaults to 0 and is set later through a separate mutator not
	// exposed at this call site.
	f := flows.NewErspan2Flow(ip4Endpoint(cl), ip4Endpoint(sv), raw.Bool(), 0)
	return resynth.ObjVal(resynth.NewObj(f, erspan2FlowClass)), nil
})

// ERSPAN2 registers the erspan2 module (ERSPAN type II: GRE-sequenced,
// with an 8-byte ERSPAN header), grounded on stdlib/erspan2.rs in the
// original source.
var ERSPAN2 = newModule("erspan2", map[string]resynth.Symbol{
	"Erspan2": resynth.ClassSymbol(erspan2FlowClass),
	"session": resynth.FuncSymbol(erspan2Session),
})
