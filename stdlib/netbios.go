package stdlib

import (
	"errors"

	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/pkt"
)

var netbiosOpcode = newModule("opcode", map[string]resynth.Symbol{
	"QUERY":            resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.NBNSOpcodeQuery))),
	"REGISTRATION":     resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.NBNSOpcodeRegistration))),
	"RELEASE":          resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.NBNSOpcodeRelease))),
	"WACK":             resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.NBNSOpcodeWack))),
	"REFRESH":          resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.NBNSOpcodeRefresh))),
	"REFRESH_ALT":      resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.NBNSOpcodeRefreshAlt))),
	"MH_REGISTRATION":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.NBNSOpcodeMhRegistration))),
})

var netbiosRRType = newModule("rrtype", map[string]resynth.Symbol{
	"NULL":   resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.NBNSTypeNull))),
	"NB":     resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.NBNSTypeNB))),
	"NBSTAT": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.NBNSTypeNBStat))),
})

var netbiosRcode = newModule("rcode", map[string]resynth.Symbol{
	"ACT_ERR": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.NBNSRcodeActErr))),
	"CFT_ERR": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.NBNSRcodeCftErr))),
})

// netbiosFlags packs the NBNS flags word, reusing pkt.DNSFlags' bit layout
// (RFC 1002 §4.2.1 mirrors RFC 1035's header word, with the DNS "CD" bit
// renamed "B" for broadcast).
var netbiosFlags = resynth.NewFuncDef("flags", resynth.TU16, []resynth.ArgDesc{
	{Name: "opcode", Decl: resynth.Positional(resynth.TU8)},
	{Name: "response", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "aa", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "tc", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "rd", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "ra", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "z", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "ad", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "b", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "rcode", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U8Val(pkt.DNSRcodeNoError)))},
}, resynth.TVoid, func(a resynth.Args) (resynth.Val, error) {
	opcode := a.Next()
	response, aa, tc, rd, ra, z, ad, b := a.Next(), a.Next(), a.Next(), a.Next(), a.Next(), a.Next(), a.Next(), a.Next()
	rcode := a.Next()
	f := pkt.DNSFlags{
		QR: response.Bool(), Opcode: opcode.U8(), AA: aa.Bool(), TC: tc.Bool(),
		RD: rd.Bool(), RA: ra.Bool(), Z: z.Bool(), AD: ad.Bool(), CD: b.Bool(),
		Rcode: rcode.U8(),
	}
	return resynth.U16Val(f.Pack()), nil
})

// NS registers the netbios::ns module: opcode/rrtype/rcode constant tables
// plus the flags() builder, grounded on stdlib/netbios.rs's `ns` module in
// the original source.
var NetbiosNS = newModule("ns", map[string]resynth.Symbol{
	"opcode": resynth.ModuleSymbol(netbiosOpcode),
	"rrtype": resynth.ModuleSymbol(netbiosRRType),
	"rcode":  resynth.ModuleSymbol(netbiosRcode),
	"flags":  resynth.FuncSymbol(netbiosFlags),
})

var errNetbiosNameTooLong = errors.New("netbios::name::encode: name exceeds 15 bytes")

// netbiosNameEncode implements the NetBIOS first-level name encoding
// (pkt.NBNSNameEncode): the name is space-padded to 15 bytes, a suffix
// byte appended, and every one of the resulting 16 bytes split into two
// nibbles added to 'A', producing a 32-byte result.
var netbiosNameEncode = resynth.NewFuncDef("encode", resynth.TStr, []resynth.ArgDesc{
	{Name: "suffix", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U8Val(0)))},
}, resynth.TStr, func(a resynth.Args) (resynth.Val, error) {
	suffix := a.Next()
	data := a.JoinExtra(nil)

	encoded, ok := pkt.NBNSNameEncode(data, suffix.U8())
	if !ok {
		return resynth.Val{}, errNetbiosNameTooLong
	}
	return resynth.StrVal(encoded[:]), nil
})

// NetbiosName registers the netbios::name module.
var NetbiosName = newModule("name", map[string]resynth.Symbol{
	"encode": resynth.FuncSymbol(netbiosNameEncode),
})

// NETBIOS registers the netbios module: the ns (name service) and name
// (name encoding) submodules, grounded on stdlib/netbios.rs in the
// original source.
var NETBIOS = newModule("netbios", map[string]resynth.Symbol{
	"ns":   resynth.ModuleSymbol(NetbiosNS),
	"name": resynth.ModuleSymbol(NetbiosName),
})
