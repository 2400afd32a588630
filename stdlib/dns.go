package stdlib

import (
	"encoding/binary"

	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/flows"
	"github.com/rapid7/resynth-go/pkt"
)

var dnsOpcode = newModule("opcode", map[string]resynth.Symbol{
	"QUERY":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DNSOpcodeQuery))),
	"IQUERY": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DNSOpcodeIQuery))),
	"STATUS": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DNSOpcodeStatus))),
	"NOTIFY": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DNSOpcodeNotify))),
	"UPDATE": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DNSOpcodeUpdate))),
})

var dnsRcode = newModule("rcode", map[string]resynth.Symbol{
	"NOERROR":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DNSRcodeNoError))),
	"FORMERR":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DNSRcodeFormErr))),
	"SERVFAIL": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DNSRcodeServFail))),
	"NXDOMAIN": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DNSRcodeNXDomain))),
	"NOTIMP":   resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DNSRcodeNotImp))),
	"REFUSED":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DNSRcodeRefused))),
})

var dnsRtype = newModule("rtype", map[string]resynth.Symbol{
	"A":     resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSTypeA))),
	"NS":    resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSTypeNS))),
	"CNAME": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSTypeCNAME))),
	"SOA":   resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSTypeSOA))),
	"PTR":   resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSTypePTR))),
	"HINFO": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSTypeHINFO))),
	"MX":    resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSTypeMX))),
	"TXT":   resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSTypeTXT))),
	"SRV":   resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSTypeSRV))),
	"OPT":   resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSTypeOPT))),
	"AAAA":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSTypeAAAA))),
	"ALL":   resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSTypeALL))),
})

var dnsClass = newModule("class", map[string]resynth.Symbol{
	"IN":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSClassIN))),
	"CS":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSClassCS))),
	"CH":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSClassCH))),
	"HS":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSClassHS))),
	"ANY": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSClassANY))),
})

// dnsName builds a length-prefixed DNS name from the variadic label
// arguments, mirroring DNS_NAME's arity-dependent construction: zero
// extra args is the root name, one is parsed as a dotted name, two or
// more are pushed as individual raw labels.
func dnsName(complete bool, labels [][]byte) []byte {
	if complete {
		switch len(labels) {
		case 0:
			n := pkt.Root()
			return n.Bytes()
		case 1:
			n := pkt.ParseDNSName(string(labels[0]))
			return n.Bytes()
		default:
			var n pkt.DNSName
			for _, l := range labels {
				n.Push(l)
			}
			n.Finish()
			return n.Bytes()
		}
	}
	var n pkt.DNSName
	for _, l := range labels {
		n.Push(l)
	}
	return n.Bytes()
}

var dnsNameFunc = resynth.NewFuncDef("name", resynth.TStr,
	[]resynth.ArgDesc{{Name: "complete", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(true)))}},
	resynth.TStr,
	func(a resynth.Args) (resynth.Val, error) {
		complete := a.Next()
		labels := make([][]byte, len(a.Variadic))
		for i, v := range a.Variadic {
			labels[i] = v.Str()
		}
		return resynth.StrVal(dnsName(complete.Bool(), labels)), nil
	})

var dnsPointer = resynth.NewFuncDef("pointer", resynth.TStr,
	[]resynth.ArgDesc{{Name: "offset", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(0x0c)))}}, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		n := pkt.CompressionPointer(a.Next().U16())
		return resynth.StrVal(n.Bytes()), nil
	})

var dnsFlags = resynth.NewFuncDef("flags", resynth.TU16, []resynth.ArgDesc{
	{Name: "opcode", Decl: resynth.Positional(resynth.TU8)},
	{Name: "response", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "aa", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "tc", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "rd", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "ra", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "z", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "ad", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "cd", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
	{Name: "rcode", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U8Val(pkt.DNSRcodeNoError)))},
}, resynth.TVoid, func(a resynth.Args) (resynth.Val, error) {
	opcode := a.Next()
	response, aa, tc, rd, ra, z, ad, cd := a.Next(), a.Next(), a.Next(), a.Next(), a.Next(), a.Next(), a.Next(), a.Next()
	rcode := a.Next()
	f := pkt.DNSFlags{
		QR: response.Bool(), Opcode: opcode.U8(), AA: aa.Bool(), TC: tc.Bool(),
		RD: rd.Bool(), RA: ra.Bool(), Z: z.Bool(), AD: ad.Bool(), CD: cd.Bool(),
		Rcode: rcode.U8(),
	}
	return resynth.U16Val(f.Pack()), nil
})

var dnsHdr = resynth.NewFuncDef("hdr", resynth.TStr, []resynth.ArgDesc{
	{Name: "id", Decl: resynth.Positional(resynth.TU16)},
	{Name: "flags", Decl: resynth.Positional(resynth.TU16)},
	{Name: "qdcount", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(0)))},
	{Name: "ancount", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(0)))},
	{Name: "nscount", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(0)))},
	{Name: "arcount", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(0)))},
}, resynth.TVoid, func(a resynth.Args) (resynth.Val, error) {
	id, flags, qd, an, ns, ar := a.Next(), a.Next(), a.Next(), a.Next(), a.Next(), a.Next()
	h := pkt.NewDNSHdr(id.U16())
	h.Flags = pkt.Htons(flags.U16())
	h.SetQDCount(qd.U16())
	h.SetANCount(an.U16())
	h.SetNSCount(ns.U16())
	h.SetARCount(ar.U16())
	return resynth.StrVal(structBytes(h)), nil
})

var dnsQuestion = resynth.NewFuncDef("question", resynth.TStr, []resynth.ArgDesc{
	{Name: "qname", Decl: resynth.Positional(resynth.TStr)},
	{Name: "qtype", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSTypeA)))},
	{Name: "qclass", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSClassIN)))},
}, resynth.TVoid, func(a resynth.Args) (resynth.Val, error) {
	qname, qtype, qclass := a.Next(), a.Next(), a.Next()
	var buf []byte
	buf = append(buf, qname.Str()...)
	buf = binary.BigEndian.AppendUint16(buf, qtype.U16())
	buf = binary.BigEndian.AppendUint16(buf, qclass.U16())
	return resynth.StrVal(buf), nil
})

var dnsAnswer = resynth.NewFuncDef("answer", resynth.TStr, []resynth.ArgDesc{
	{Name: "aname", Decl: resynth.Positional(resynth.TStr)},
	{Name: "atype", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSTypeA)))},
	{Name: "aclass", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(pkt.DNSClassIN)))},
	{Name: "ttl", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U32Val(229)))},
}, resynth.TStr, func(a resynth.Args) (resynth.Val, error) {
	aname, atype, aclass, ttl := a.Next(), a.Next(), a.Next(), a.Next()
	data := a.JoinExtra(nil)
	var buf []byte
	buf = append(buf, aname.Str()...)
	buf = binary.BigEndian.AppendUint16(buf, atype.U16())
	buf = binary.BigEndian.AppendUint16(buf, aclass.U16())
	buf = binary.BigEndian.AppendUint32(buf, ttl.U32())
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(data)))
	buf = append(buf, data...)
	return resynth.StrVal(buf), nil
})

// dnsQueryID and dnsNsDefault are the fixed transaction id and default
// resolver address DNS_HOST builds its query/response pair with.
const dnsQueryID uint16 = 0x1234

var dnsNsDefault = [4]byte{1, 1, 1, 1}

var dnsHost = resynth.NewFuncDef("host", resynth.TPktGen, []resynth.ArgDesc{
	{Name: "client", Decl: resynth.Positional(resynth.TIp4)},
	{Name: "qname", Decl: resynth.Positional(resynth.TStr)},
	{Name: "ttl", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U32Val(229)))},
	{Name: "ns", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.Ip4Val(dnsNsDefault)))},
	{Name: "raw", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.BoolVal(false)))},
}, resynth.TIp4, func(a resynth.Args) (resynth.Val, error) {
	client, qnameArg, ttl, ns, raw := a.Next(), a.Next(), a.Next(), a.Next(), a.Next()
	qname := pkt.ParseDNSName(string(qnameArg.Str())).Bytes()

	cl := flows.Endpoint{Sock4: flows.Sock4{IP: client.Ip4(), Port: 32768}}
	sv := flows.Endpoint{Sock4: flows.Sock4{IP: ns.Ip4(), Port: 53}}
	flow := flows.NewUdpFlow(cl, sv, raw.Bool())

	var query []byte
	qh := pkt.NewDNSHdr(dnsQueryID)
	qh.SetFlags(pkt.DNSFlags{Opcode: pkt.DNSOpcodeQuery, RD: true})
	qh.SetQDCount(1)
	query = append(query, structBytes(qh)...)
	query = append(query, qname...)
	query = binary.BigEndian.AppendUint16(query, pkt.DNSTypeA)
	query = binary.BigEndian.AppendUint16(query, pkt.DNSClassIN)

	ips := a.Variadic
	var resp []byte
	rh := pkt.NewDNSHdr(dnsQueryID)
	rh.SetFlags(pkt.DNSFlags{QR: true, Opcode: pkt.DNSOpcodeQuery, RA: true})
	rh.SetQDCount(1)
	rh.SetANCount(uint16(len(ips)))
	resp = append(resp, structBytes(rh)...)
	resp = append(resp, qname...)
	resp = binary.BigEndian.AppendUint16(resp, pkt.DNSTypeA)
	resp = binary.BigEndian.AppendUint16(resp, pkt.DNSClassIN)
	for _, ip := range ips {
		resp = append(resp, qname...)
		resp = binary.BigEndian.AppendUint16(resp, pkt.DNSTypeA)
		resp = binary.BigEndian.AppendUint16(resp, pkt.DNSClassIN)
		resp = binary.BigEndian.AppendUint32(resp, ttl.U32())
		resp = binary.BigEndian.AppendUint16(resp, 4)
		addr := ip.Ip4()
		resp = append(resp, addr[:]...)
	}

	queryPkt := flow.ClientMessage(query, 0, true).IntoPacket()
	respPkt := flow.ServerMessage(resp, 0, true).IntoPacket()
	return pktGen([]resynth.PacketSource{queryPkt, respPkt}), nil
})

// DNS registers the dns module: constant submodules plus message builders
// culminating in host(), an end-to-end query/response scenario, all
// grounded on stdlib/dns.rs in the original source. The original's rtype
// and class submodules enumerate far more record types than pkt/dns.go
// carries constants for; only those with a corresponding pkt.DNSType*/
// pkt.DNSClass* value are exposed here.
var DNS = newModule("dns", map[string]resynth.Symbol{
	"opcode":   resynth.ModuleSymbol(dnsOpcode),
	"rcode":    resynth.ModuleSymbol(dnsRcode),
	"rtype":    resynth.ModuleSymbol(dnsRtype),
	"qtype":    resynth.ModuleSymbol(dnsRtype),
	"class":    resynth.ModuleSymbol(dnsClass),
	"flags":    resynth.FuncSymbol(dnsFlags),
	"hdr":      resynth.FuncSymbol(dnsHdr),
	"name":     resynth.FuncSymbol(dnsNameFunc),
	"pointer":  resynth.FuncSymbol(dnsPointer),
	"question": resynth.FuncSymbol(dnsQuestion),
	"answer":   resynth.FuncSymbol(dnsAnswer),
	"host":     resynth.FuncSymbol(dnsHost),
})
