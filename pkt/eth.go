package pkt

import (
	"net"

	"github.com/rapid7/resynth-go"
)

// Ethertype values used by the builders and flows in this package.
const (
	EthertypeIPv4       uint16 = 0x0800
	EthertypeARP        uint16 = 0x0806
	EthertypeVLAN       uint16 = 0x8100
	EthertypeIPv6       uint16 = 0x86DD
	EthertypeFabricPath uint16 = 0x8903
	EthertypePPTP       uint16 = 0x880B
	EthertypeGRETAP     uint16 = 0x6558
	EthertypeERSPAN     uint16 = 0x88BE // ERSPAN type I/II transport ethertype
	EthertypeERSPAN3    uint16 = 0x22EB
)

// EthBroadcast is the all-ones Ethernet broadcast address.
var EthBroadcast = [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

// EthHdr is the 14-byte Ethernet II header. Proto is stored in the
// network-byte-order bit pattern (via Htons/Ntohs), matching every other
// multi-byte field in this package.
type EthHdr struct {
	Dest  [6]byte
	Src   [6]byte
	Proto uint16
}

// NewEthHdr returns an EthHdr with the given addresses and ethertype
// already set.
func NewEthHdr(src, dst net.HardwareAddr, ethertype uint16) EthHdr {
	var h EthHdr
	copy(h.Dest[:], dst)
	copy(h.Src[:], src)
	h.SetProto(ethertype)
	return h
}

// GetProto returns the ethertype in host order.
func (h *EthHdr) GetProto() uint16 { return Ntohs(h.Proto) }

// SetProto sets the ethertype, storing it in wire order.
func (h *EthHdr) SetProto(ethertype uint16) *EthHdr {
	h.Proto = Htons(ethertype)
	return h
}

// SrcFromIP sets the header's source MAC from a synthesized,
// locally-administered address derived from an IPv4 address, used by
// builders that need a plausible but arbitrary MAC when the DSL script
// only specified endpoint IPs.
//
// The original Rust source's eth_hdr::src_from_ip appears, in one variant,
// to write the derived address into the *destination* MAC field instead of
// the source -- almost certainly a bug (see design notes, §9). This
// implementation follows the specification and writes into Src.
func (h *EthHdr) SrcFromIP(ip [4]byte) *EthHdr {
	h.Src = macFromIP(ip)
	return h
}

// DestFromIP is the destination-side analog of SrcFromIP.
func (h *EthHdr) DestFromIP(ip [4]byte) *EthHdr {
	h.Dest = macFromIP(ip)
	return h
}

func macFromIP(ip [4]byte) [6]byte {
	return [6]byte{0x02, 0x00, ip[0], ip[1], ip[2], ip[3]}
}

// PushEthHdr appends an Ethernet header to b and returns its handle.
func PushEthHdr(b *resynth.Buffer, src, dst net.HardwareAddr, ethertype uint16) resynth.Hdr[EthHdr] {
	return resynth.Push(b, NewEthHdr(src, dst, ethertype))
}
