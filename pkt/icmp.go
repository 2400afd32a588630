package pkt

// ICMP type/code values used by the builders.
const (
	ICMPEchoReply    uint8 = 0
	ICMPDestUnreach  uint8 = 3
	ICMPEchoRequest  uint8 = 8
	ICMPTimeExceeded uint8 = 11
)

// ICMPHdr is the 4-byte common ICMP header shared by every message type.
type ICMPHdr struct {
	Type uint8
	Code uint8
	Csum uint16
}

// ICMPHdrSize is sizeof(ICMPHdr) on the wire.
const ICMPHdrSize = 4

func NewICMPHdr(icmpType, code uint8) ICMPHdr {
	return ICMPHdr{Type: icmpType, Code: code}
}

func (h *ICMPHdr) SetCsum(csum uint16) *ICMPHdr {
	h.Csum = Htons(csum)
	return h
}

// CalcCsum zeroes the checksum field and recomputes it over icmpBytes, a
// view of the header plus trailing payload (ICMP has no pseudo-header).
func (h *ICMPHdr) CalcCsum(icmpBytes []byte) *ICMPHdr {
	h.Csum = 0
	return h.SetCsum(Checksum(icmpBytes))
}

// ICMPEchoHdr is the 4-byte id/seq pair following ICMPHdr in echo
// request/reply messages.
type ICMPEchoHdr struct {
	ID  uint16
	Seq uint16
}

// ICMPEchoHdrSize is sizeof(ICMPEchoHdr) on the wire.
const ICMPEchoHdrSize = 4

func NewICMPEchoHdr(id, seq uint16) ICMPEchoHdr {
	var h ICMPEchoHdr
	h.SetID(id)
	h.SetSeq(seq)
	return h
}

func (h *ICMPEchoHdr) SetID(id uint16) *ICMPEchoHdr {
	h.ID = Htons(id)
	return h
}

func (h *ICMPEchoHdr) SetSeq(seq uint16) *ICMPEchoHdr {
	h.Seq = Htons(seq)
	return h
}

func (h *ICMPEchoHdr) GetID() uint16  { return Ntohs(h.ID) }
func (h *ICMPEchoHdr) GetSeq() uint16 { return Ntohs(h.Seq) }
