package pkt

// ERSPAN2 bitpacking: first word ver(31:28), vlan(27:16), cos(15:13),
// en(12:11), truncated(10), session_id(9:0); second word rsvd(31:20),
// index(19:0). Per §4.2.
const (
	erspan2MaskVer   uint32 = 0xf0000000
	erspan2MaskVlan  uint32 = 0x0fff0000
	erspan2MaskCos   uint32 = 0x0000e000
	erspan2MaskEn    uint32 = 0x00001800
	erspan2MaskT     uint32 = 0x00000400
	erspan2MaskSess  uint32 = 0x000003ff
	erspan2MaskIndex uint32 = 0x000fffff

	erspan2ShiftVer  = 28
	erspan2ShiftVlan = 16
	erspan2ShiftCos  = 13
	erspan2ShiftEn   = 11
	erspan2ShiftT    = 10
)

// Erspan2Version is the only defined ERSPAN type II encapsulation version.
const Erspan2Version uint8 = 1

// ERSPAN2Encap is the trunk encapsulation type of the mirrored frame.
type ERSPAN2Encap uint8

const (
	Erspan2EncapNoVlan       ERSPAN2Encap = 0
	Erspan2EncapIslStripped  ERSPAN2Encap = 1
	Erspan2EncapVlanStripped ERSPAN2Encap = 2
	Erspan2EncapTagPreserved ERSPAN2Encap = 3
)

// ERSPAN2Fields is the unpacked form of the two 32-bit words in ERSPAN2Hdr,
// used to build the header via Pack.
type ERSPAN2Fields struct {
	Ver       uint8
	Vlan      uint16
	Cos       uint8
	Encap     ERSPAN2Encap
	Truncated bool
	SessionID uint16
	PortIndex uint32
}

// ERSPAN2Hdr is the 8-byte ERSPAN type II header.
type ERSPAN2Hdr struct {
	Flags uint32
	Index uint32
}

// ERSPAN2HdrSize is sizeof(ERSPAN2Hdr) on the wire.
const ERSPAN2HdrSize = 8

// NewERSPAN2Hdr packs f into an ERSPAN2Hdr.
func NewERSPAN2Hdr(f ERSPAN2Fields) ERSPAN2Hdr {
	ver := f.Ver
	if ver == 0 {
		ver = Erspan2Version
	}

	flagsWord := uint32(f.SessionID) & erspan2MaskSess
	if f.Truncated {
		flagsWord |= erspan2MaskT
	}
	flagsWord |= (uint32(f.Encap) << erspan2ShiftEn) & erspan2MaskEn
	flagsWord |= (uint32(f.Cos) << erspan2ShiftCos) & erspan2MaskCos
	flagsWord |= (uint32(f.Vlan) << erspan2ShiftVlan) & erspan2MaskVlan
	flagsWord |= (uint32(ver) << erspan2ShiftVer) & erspan2MaskVer

	indexWord := f.PortIndex & erspan2MaskIndex

	return ERSPAN2Hdr{
		Flags: Htonl(flagsWord),
		Index: Htonl(indexWord),
	}
}

func (h *ERSPAN2Hdr) GetFlags() uint32 { return Ntohl(h.Flags) }
func (h *ERSPAN2Hdr) GetIndex() uint32 { return Ntohl(h.Index) & erspan2MaskIndex }

func (h *ERSPAN2Hdr) GetSessionID() uint16 { return uint16(h.GetFlags() & erspan2MaskSess) }
