package pkt

// TCP flag bits.
const (
	TCPFin uint8 = 0x01
	TCPSyn uint8 = 0x02
	TCPRst uint8 = 0x04
	TCPPsh uint8 = 0x08
	TCPAck uint8 = 0x10
	TCPUrg uint8 = 0x20
	TCPEce uint8 = 0x40
	TCPCwr uint8 = 0x80
)

// TCPHdr is the 20-byte fixed TCP header (no options). Doff defaults to
// 5<<4 (five 32-bit words, i.e. no options), Win defaults to 0xFFFF. Flag
// setters are sticky: they OR their bit in and never clear it (Init is the
// only way to reset the header).
type TCPHdr struct {
	Sport uint16
	Dport uint16
	Seq   uint32
	Ack   uint32
	Doff  uint8
	Flags uint8
	Win   uint16
	Csum  uint16
	Urp   uint16
}

// TCPHdrSize is sizeof(TCPHdr) on the wire.
const TCPHdrSize = 20

const tcpDefaultDoff = uint8((TCPHdrSize >> 2) << 4)

// NewTCPHdr returns a TCPHdr initialized per Init, with the given ports set.
func NewTCPHdr(sport, dport uint16) TCPHdr {
	var h TCPHdr
	h.Init()
	h.SetSport(sport)
	h.SetDport(dport)
	return h
}

// Init resets the header to its language-defined default: doff = 5<<4,
// win = 0xFFFF, everything else zeroed.
func (h *TCPHdr) Init() *TCPHdr {
	*h = TCPHdr{}
	h.Doff = tcpDefaultDoff
	h.Win = Htons(0xFFFF)
	return h
}

func (h *TCPHdr) SetSport(p uint16) *TCPHdr { h.Sport = Htons(p); return h }
func (h *TCPHdr) SetDport(p uint16) *TCPHdr { h.Dport = Htons(p); return h }
func (h *TCPHdr) GetSport() uint16          { return Ntohs(h.Sport) }
func (h *TCPHdr) GetDport() uint16          { return Ntohs(h.Dport) }

func (h *TCPHdr) SetSeq(seq uint32) *TCPHdr { h.Seq = Htonl(seq); return h }
func (h *TCPHdr) GetSeq() uint32            { return Ntohl(h.Seq) }

// SetAck sets the acknowledgement number and ORs in the ACK flag, matching
// the source's combined set_ack behavior.
func (h *TCPHdr) SetAck(ack uint32) *TCPHdr {
	h.Ack = Htonl(ack)
	h.Flags |= TCPAck
	return h
}
func (h *TCPHdr) GetAck() uint32 { return Ntohl(h.Ack) }

func (h *TCPHdr) SetSyn() *TCPHdr { h.Flags |= TCPSyn; return h }
func (h *TCPHdr) SetFin() *TCPHdr { h.Flags |= TCPFin; return h }
func (h *TCPHdr) SetRst() *TCPHdr { h.Flags |= TCPRst; return h }
func (h *TCPHdr) SetPsh() *TCPHdr { h.Flags |= TCPPsh; return h }

func (h *TCPHdr) SetWin(win uint16) *TCPHdr { h.Win = Htons(win); return h }
func (h *TCPHdr) SetUrp(urp uint16) *TCPHdr { h.Urp = Htons(urp); return h }

func (h *TCPHdr) SetCsum(csum uint16) *TCPHdr { h.Csum = Htons(csum); return h }

// HasFlag reports whether every bit of mask is set in Flags.
func (h *TCPHdr) HasFlag(mask uint8) bool { return h.Flags&mask == mask }
