package pkt

// UDPHdr is the 8-byte UDP header. Len defaults to UDPHdrSize and is grown
// by builders as payload is appended, mirroring IPHdr.TotLen.
type UDPHdr struct {
	Sport uint16
	Dport uint16
	Len   uint16
	Csum  uint16
}

// UDPHdrSize is sizeof(UDPHdr) on the wire.
const UDPHdrSize = 8

// NewUDPHdr returns a UDPHdr initialized per Init, with ports set.
func NewUDPHdr(sport, dport uint16) UDPHdr {
	var h UDPHdr
	h.Init()
	h.SetSport(sport)
	h.SetDport(dport)
	return h
}

// Init resets the header to its language-defined default: len = UDPHdrSize,
// everything else zeroed.
func (h *UDPHdr) Init() *UDPHdr {
	*h = UDPHdr{}
	h.Len = Htons(UDPHdrSize)
	return h
}

func (h *UDPHdr) SetSport(p uint16) *UDPHdr { h.Sport = Htons(p); return h }
func (h *UDPHdr) SetDport(p uint16) *UDPHdr { h.Dport = Htons(p); return h }
func (h *UDPHdr) GetSport() uint16          { return Ntohs(h.Sport) }
func (h *UDPHdr) GetDport() uint16          { return Ntohs(h.Dport) }

func (h *UDPHdr) GetLen() uint16 { return Ntohs(h.Len) }
func (h *UDPHdr) SetLen(n uint16) *UDPHdr {
	h.Len = Htons(n)
	return h
}

// AddLen adds more bytes (payload) to the length field.
func (h *UDPHdr) AddLen(more uint16) *UDPHdr {
	return h.SetLen(h.GetLen() + more)
}

func (h *UDPHdr) SetCsum(csum uint16) *UDPHdr {
	h.Csum = Htons(csum)
	return h
}

// CalcCsum zeroes the checksum field and recomputes it over a pseudo-header
// partial plus the UDP header and payload bytes, per RFC 768 / the IPv4
// pseudo-header convention shared with TCP.
func (h *UDPHdr) CalcCsum(pseudoPartial uint32, udpBytes []byte) *UDPHdr {
	h.Csum = 0
	sum := pseudoPartial + Partial(udpBytes)
	csum := Fold(sum)
	if csum == 0 {
		csum = 0xffff
	}
	return h.SetCsum(csum)
}
