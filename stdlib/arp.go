package stdlib

import resynth "github.com/rapid7/resynth-go"

// arpHrdEther is ARP's hardware-type code for Ethernet (RFC 826), also
// reused as dhcp::hdr's htype default.
const arpHrdEther uint8 = dhcpHtypeEthernet

var arpHrd = newModule("hrd", map[string]resynth.Symbol{
	"ETHER": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(arpHrdEther))),
})

// ARP registers the arp module. The original source carries no ARP packet
// builder at all, only the hrd::ETHER hardware-type constant; this port
// matches that scope exactly rather than inventing one.
var ARP = newModule("arp", map[string]resynth.Symbol{
	"hrd": resynth.ModuleSymbol(arpHrd),
})
