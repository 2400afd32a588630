package stdlib

import (
	"errors"

	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/pkt"
)

var ethEthertype = newModule("ethertype", map[string]resynth.Symbol{
	"VLAN":       resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.EthertypeVLAN))),
	"FABRICPATH": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.EthertypeFabricPath))),
	"IPV4":       resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.EthertypeIPv4))),
	"IPV6":       resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.EthertypeIPv6))),
	"PPTP":       resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.EthertypePPTP))),
	"GRETAP":     resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.EthertypeGRETAP))),
	"ERSPAN_1_2": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.EthertypeERSPAN))),
	"ERSPAN_3":   resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.EthertypeERSPAN3))),
})

func ethAddr(v resynth.Val) ([6]byte, bool) {
	var a [6]byte
	b := v.Str()
	if len(b) != 6 {
		return a, false
	}
	copy(a[:], b)
	return a, true
}

var ethFrame = resynth.NewFuncDef("frame", resynth.TPkt, []resynth.ArgDesc{
	{Name: "src", Decl: resynth.Positional(resynth.TStr)},
	{Name: "dst", Decl: resynth.Positional(resynth.TStr)},
	{Name: "ethertype", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(pkt.EthertypeIPv4)))},
}, resynth.TStr, func(a resynth.Args) (resynth.Val, error) {
	srcArg, dstArg, ethertype := a.Next(), a.Next(), a.Next()
	data := a.JoinExtra(nil)

	src, ok := ethAddr(srcArg)
	if !ok {
		return resynth.Val{}, errors.New("eth::frame: src must be 6 bytes")
	}
	dst, ok := ethAddr(dstArg)
	if !ok {
		return resynth.Val{}, errors.New("eth::frame: dst must be 6 bytes")
	}

	p := pkt.NewPacket(0, pkt.EtherHdrSize+len(data))
	pkt.PushEthHdr(p.Buf, src[:], dst[:], ethertype.U16())
	p.Buf.PushBytes(data)
	return resynth.PktVal(p), nil
})

var ethFromIP = resynth.NewFuncDef("from_ip", resynth.TStr,
	[]resynth.ArgDesc{{Name: "ip", Decl: resynth.Positional(resynth.TIp4)}}, resynth.TVoid,
	func(a resynth.Args) (resynth.Val, error) {
		ip := a.Next().Ip4()
		mac := [6]byte{0x02, 0x00, ip[0], ip[1], ip[2], ip[3]}
		return resynth.StrVal(mac[:]), nil
	})

// ETH registers the eth module, grounded on stdlib/eth.rs in the original
// source.
var ETH = newModule("eth", map[string]resynth.Symbol{
	"ethertype": resynth.ModuleSymbol(ethEthertype),
	"frame":     resynth.FuncSymbol(ethFrame),
	"from_ip":   resynth.FuncSymbol(ethFromIP),
	"BROADCAST": resynth.ValSymbol(resynth.ConcreteDefault(resynth.StrVal(pkt.EthBroadcast[:]))),
})
