package pkt

// DHCP opcodes.
const (
	DHCPOpRequest uint8 = 1
	DHCPOpReply   uint8 = 2
)

// DHCP message types (option 53).
const (
	DHCPMsgDiscover uint8 = 1
	DHCPMsgOffer    uint8 = 2
	DHCPMsgRequest  uint8 = 3
	DHCPMsgDecline  uint8 = 4
	DHCPMsgAck      uint8 = 5
	DHCPMsgNack     uint8 = 6
	DHCPMsgRelease  uint8 = 7
	DHCPMsgInform   uint8 = 8
)

// DHCPClientPort and DHCPServerPort are the well-known BOOTP/DHCP UDP ports.
const (
	DHCPClientPort uint16 = 68
	DHCPServerPort uint16 = 67
)

// DHCPMagic is the DHCP options-field magic cookie.
const DHCPMagic uint32 = 0x63825363

// DHCPHdr is the 240-byte BOOTP/DHCP header: the 236 bytes of fixed BOOTP
// fields plus the 4-byte magic cookie (Magic). The variable options area
// that follows on the wire is not modelled here. Chaddr/Sname/File writes silently truncate oversize input per
// §4.2, matching the original's set_chaddr/set_sname/set_file.
type DHCPHdr struct {
	Op     uint8
	Htype  uint8
	Hlen   uint8
	Hops   uint8
	Xid    uint32
	Secs   uint16
	Flags  uint16
	Ciaddr uint32
	Yiaddr uint32
	Siaddr uint32
	Giaddr uint32
	Chaddr [16]byte
	Sname  [64]byte
	File   [128]byte
	Magic  uint32
}

// DHCPHdrSize is sizeof(DHCPHdr) on the wire (236 bytes of fixed fields
// plus the 4-byte magic cookie = 240).
const DHCPHdrSize = 240

func NewDHCPHdr(op, htype, hlen uint8) DHCPHdr {
	return DHCPHdr{
		Op:    op,
		Htype: htype,
		Hlen:  hlen,
		Magic: Htonl(DHCPMagic),
	}
}

func (h *DHCPHdr) SetXid(xid uint32) *DHCPHdr  { h.Xid = Htonl(xid); return h }
func (h *DHCPHdr) SetSecs(secs uint16) *DHCPHdr { h.Secs = Htons(secs); return h }
func (h *DHCPHdr) SetFlags(flags uint16) *DHCPHdr { h.Flags = Htons(flags); return h }

func (h *DHCPHdr) SetCiaddr(ip [4]byte) *DHCPHdr { h.Ciaddr = Htonl(ipToU32(ip)); return h }
func (h *DHCPHdr) SetYiaddr(ip [4]byte) *DHCPHdr { h.Yiaddr = Htonl(ipToU32(ip)); return h }
func (h *DHCPHdr) SetSiaddr(ip [4]byte) *DHCPHdr { h.Siaddr = Htonl(ipToU32(ip)); return h }
func (h *DHCPHdr) SetGiaddr(ip [4]byte) *DHCPHdr { h.Giaddr = Htonl(ipToU32(ip)); return h }

// SetChaddr copies buf into the client hardware address field, truncating
// silently if buf is longer than the field.
func (h *DHCPHdr) SetChaddr(buf []byte) *DHCPHdr {
	copy(h.Chaddr[:], buf)
	return h
}

// SetSname copies buf into the server-name field, truncating silently.
func (h *DHCPHdr) SetSname(buf []byte) *DHCPHdr {
	copy(h.Sname[:], buf)
	return h
}

// SetFile copies buf into the boot-file-name field, truncating silently.
func (h *DHCPHdr) SetFile(buf []byte) *DHCPHdr {
	copy(h.File[:], buf)
	return h
}

// DHCPOpt is a 2-byte TLV option header; Len is the length of the option
// value that immediately follows on the wire.
type DHCPOpt struct {
	Opt uint8
	Len uint8
}

func NewDHCPOpt(opt uint8, data []byte) DHCPOpt {
	return DHCPOpt{Opt: opt, Len: uint8(len(data))}
}
