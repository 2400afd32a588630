package pkt

// GRE flag bits, packed into the 16-bit flags word per §4.2: C(15), R(14),
// K(13), S(12), s(11), recur(10:8), A(7), flags(6:3), V(2:0).
const (
	GreFlagC  uint16 = 0x8000
	GreFlagR  uint16 = 0x4000
	GreFlagK  uint16 = 0x2000
	GreFlagS  uint16 = 0x1000
	GreFlagSR uint16 = 0x0800
	GreFlagA  uint16 = 0x0080
)

// GreFlags is a builder for the packed GRE flags word.
type GreFlags struct {
	Csum     bool
	Routing  bool
	Key      bool
	Seq      bool
	SrcRoute bool
	Ack      bool
	Recur    uint8
	Bits     uint8
	Ver      uint8
}

// Pack combines the flag set into the 16-bit wire word, host order.
func (f GreFlags) Pack() uint16 {
	var w uint16
	w |= uint16(f.Ver) & 0x7
	w |= (uint16(f.Recur) & 0x7) << 8
	w |= (uint16(f.Bits) & 0xf) << 3
	if f.Csum {
		w |= GreFlagC
	}
	if f.Routing {
		w |= GreFlagR
	}
	if f.Key {
		w |= GreFlagK
	}
	if f.Seq {
		w |= GreFlagS
	}
	if f.SrcRoute {
		w |= GreFlagSR
	}
	if f.Ack {
		w |= GreFlagA
	}
	return w
}

// GREHdr is the 4-byte base GRE header.
type GREHdr struct {
	Flags uint16
	Proto uint16
}

// GREHdrSize is sizeof(GREHdr) on the wire.
const GREHdrSize = 4

func NewGREHdr(flags GreFlags, proto uint16) GREHdr {
	return GREHdr{
		Flags: Htons(flags.Pack()),
		Proto: Htons(proto),
	}
}

func (h *GREHdr) GetFlags() uint16 { return Ntohs(h.Flags) }

// HasSeq reports whether the sequence-present bit is set, i.e. whether a
// GREHdrSeq trailer follows this header on the wire.
func (h *GREHdr) HasSeq() bool { return h.GetFlags()&GreFlagS != 0 }

// GREHdrSeq is the optional 4-byte sequence-number trailer present when
// GreFlagS is set in the preceding GREHdr.
type GREHdrSeq struct {
	Seq uint32
}

// GREHdrSeqSize is sizeof(GREHdrSeq) on the wire.
const GREHdrSeqSize = 4

func (h *GREHdrSeq) SetSeq(seq uint32) *GREHdrSeq {
	h.Seq = Htonl(seq)
	return h
}

func (h *GREHdrSeq) GetSeq() uint32 { return Ntohl(h.Seq) }
