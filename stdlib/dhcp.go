package stdlib

import (
	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/pkt"
)

// dhcpHtypeEthernet is ARP's ETHER hardware type, reused here as the
// default BOOTP/DHCP htype field per the original's hrd::ETHER default.
const dhcpHtypeEthernet uint8 = 1

var dhcpOpcode = newModule("opcode", map[string]resynth.Symbol{
	"REQUEST": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DHCPOpRequest))),
	"REPLY":   resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DHCPOpReply))),
})

var dhcpMsgType = newModule("msgtype", map[string]resynth.Symbol{
	"DISCOVER": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DHCPMsgDiscover))),
	"OFFER":    resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DHCPMsgOffer))),
	"REQUEST":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DHCPMsgRequest))),
	"DECLINE":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DHCPMsgDecline))),
	"ACK":      resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DHCPMsgAck))),
	"NACK":     resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DHCPMsgNack))),
	"RELEASE":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DHCPMsgRelease))),
	"INFORM":   resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.DHCPMsgInform))),
})

func nullableStrBytes(v resynth.Val) []byte {
	if v.IsType(resynth.TNil) {
		return nil
	}
	return v.Str()
}

func dhcpHdrParams() []resynth.ArgDesc {
	return []resynth.ArgDesc{
		{Name: "opcode", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U8Val(pkt.DHCPOpRequest)))},
		{Name: "htype", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U8Val(dhcpHtypeEthernet)))},
		{Name: "hlen", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U8Val(6)))},
		{Name: "hops", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U8Val(0)))},
		{Name: "xid", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U32Val(0)))},
		{Name: "ciaddr", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.Ip4Val([4]byte{})))},
		{Name: "yiaddr", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.Ip4Val([4]byte{})))},
		{Name: "siaddr", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.Ip4Val([4]byte{})))},
		{Name: "giaddr", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.Ip4Val([4]byte{})))},
		{Name: "chaddr", Decl: resynth.Optional(resynth.NullableDefault(resynth.TStr))},
		{Name: "sname", Decl: resynth.Optional(resynth.NullableDefault(resynth.TStr))},
		{Name: "file", Decl: resynth.Optional(resynth.NullableDefault(resynth.TStr))},
		{Name: "magic", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U32Val(pkt.DHCPMagic)))},
	}
}

var dhcpHdr = resynth.NewFuncDef("hdr", resynth.TStr, dhcpHdrParams(), resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		opcode, htype, hlen, hops := a.Next(), a.Next(), a.Next(), a.Next()
		xid := a.Next()
		ciaddr, yiaddr, siaddr, giaddr := a.Next(), a.Next(), a.Next(), a.Next()
		chaddr, sname, file := a.Next(), a.Next(), a.Next()
		magic := a.Next()

		h := pkt.NewDHCPHdr(opcode.U8(), htype.U8(), hlen.U8())
		h.Hops = hops.U8()
		h.SetXid(xid.U32())
		h.SetCiaddr(ciaddr.Ip4())
		h.SetYiaddr(yiaddr.Ip4())
		h.SetSiaddr(siaddr.Ip4())
		h.SetGiaddr(giaddr.Ip4())
		h.Magic = pkt.Htonl(magic.U32())

		if b := nullableStrBytes(chaddr); b != nil {
			h.SetChaddr(b)
		}
		if b := nullableStrBytes(sname); b != nil {
			h.SetSname(b)
		}
		if b := nullableStrBytes(file); b != nil {
			h.SetFile(b)
		}
		return resynth.StrVal(structBytes(h)), nil
	})

var dhcpOption = resynth.NewFuncDef("option", resynth.TStr,
	[]resynth.ArgDesc{{Name: "opt", Decl: resynth.Positional(resynth.TU8)}}, resynth.TStr,
	func(a resynth.Args) (resynth.Val, error) {
		opt := a.Next()
		data := a.JoinExtra(nil)
		o := pkt.NewDHCPOpt(opt.U8(), data)
		return resynth.StrVal(append(structBytes(o), data...)), nil
	})

// DHCP registers the dhcp module: opcode/msgtype constant submodules plus
// raw header and option builders, grounded on stdlib/dhcp.rs in the
// original source. The original also exports a much longer opt submodule
// and extended msgtype set (FORCERENEW, LEASEQUERY, ...); those constants
// have no corresponding pkt.DHCPOpt/pkt.DHCPMsg* values in this port and
// are left out rather than faked.
var DHCP = newModule("dhcp", map[string]resynth.Symbol{
	"CLIENT_PORT": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DHCPClientPort))),
	"SERVER_PORT": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.DHCPServerPort))),
	"opcode":      resynth.ModuleSymbol(dhcpOpcode),
	"msgtype":     resynth.ModuleSymbol(dhcpMsgType),
	"hdr":         resynth.FuncSymbol(dhcpHdr),
	"option":      resynth.FuncSymbol(dhcpOption),
})
