package stdlib

import (
	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/flows"
)

func icmpFlow(a resynth.Args) *flows.IcmpFlow { return resynth.As[flows.IcmpFlow](a.This) }

var icmpEcho = resynth.NewFuncDef("echo", resynth.TPkt,
	[]resynth.ArgDesc{{Name: "payload", Decl: resynth.Positional(resynth.TStr)}}, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		return resynth.PktVal(icmpFlow(a).Echo(a.Next().Str())), nil
	})

var icmpEchoReply = resynth.NewFuncDef("echo_reply", resynth.TPkt,
	[]resynth.ArgDesc{{Name: "payload", Decl: resynth.Positional(resynth.TStr)}}, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		return resynth.PktVal(icmpFlow(a).EchoReply(a.Next().Str())), nil
	})

var icmpFlowClass = resynth.NewClass("IcmpFlow", map[string]*resynth.FuncDef{
	"echo":       icmpEcho,
	"echo_reply": icmpEchoReply,
})

var icmpFlowFunc = resynth.NewFuncDef("flow", resynth.TObj, []resynth.ArgDesc{
	{Name: "cl", Decl: resynth.Positional(resynth.TIp4)},
	{Name: "sv", Decl: resynth.Positional(resynth.TIp4)},
	{Name: "raw", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
}, resynth.TVoid, func(a resynth.Args) (resynth.Val, error) {
	cl, sv, raw := a.Next(), a.Next(), a.Next()
	f := flows.NewIcmpFlow(ip4Endpoint(cl), ip4Endpoint(sv), raw.Bool())
	return resynth.ObjVal(resynth.NewObj(f, icmpFlowClass)), nil
})

// ICMP registers the icmp module, grounded on ipv4::icmp's module table in
// the original source (the distilled spec promotes it to a top-level
// import rather than nesting it under ipv4).
var ICMP = newModule("icmp", map[string]resynth.Symbol{
	"IcmpFlow": resynth.ClassSymbol(icmpFlowClass),
	"flow":     resynth.FuncSymbol(icmpFlowFunc),
})
