package pkt

import (
	"net"

	"github.com/rapid7/resynth-go"
)

// IP protocol numbers used by the builders.
const (
	ProtoICMP uint8 = 1
	ProtoTCP  uint8 = 6
	ProtoUDP  uint8 = 17
	ProtoGRE  uint8 = 47
)

// IPv4 fragment flags, stored in the top 3 bits of the frag_off word.
const (
	IPFlagEvil uint16 = 0x8000
	IPFlagDF   uint16 = 0x4000
	IPFlagMF   uint16 = 0x2000
)

// IPHdr is the 20-byte fixed IPv4 header of §3: version/IHL fixed to 0x45,
// TTL default 64, tot_len initially the header size, csum recomputed on
// demand.
type IPHdr struct {
	IhlVersion uint8
	Tos        uint8
	TotLen     uint16
	ID         uint16
	FragOff    uint16
	Ttl        uint8
	Protocol   uint8
	Csum       uint16
	Saddr      uint32
	Daddr      uint32
}

// IPHdrSize is sizeof(IPHdr) on the wire.
const IPHdrSize = 20

// NewIPHdr returns an IPHdr with the documented defaults applied by Init.
func NewIPHdr() IPHdr {
	var h IPHdr
	h.Init()
	return h
}

// Init resets the header to the language-defined default: version/IHL
// 0x45, tot_len = IPHdrSize, TTL 64.
func (h *IPHdr) Init() *IPHdr {
	h.IhlVersion = 0x45
	h.TotLen = Htons(IPHdrSize)
	h.Ttl = 64
	return h
}

func (h *IPHdr) GetSaddr() [4]byte { return u32ToIP(Ntohl(h.Saddr)) }
func (h *IPHdr) GetDaddr() [4]byte { return u32ToIP(Ntohl(h.Daddr)) }

func (h *IPHdr) SetSaddr(ip [4]byte) *IPHdr { h.Saddr = Htonl(ipToU32(ip)); return h }
func (h *IPHdr) SetDaddr(ip [4]byte) *IPHdr { h.Daddr = Htonl(ipToU32(ip)); return h }

func (h *IPHdr) GetTotLen() uint16 { return Ntohs(h.TotLen) }
func (h *IPHdr) SetTotLen(n uint16) *IPHdr {
	h.TotLen = Htons(n)
	return h
}

// AddTotLen adds more bytes to the total-length field.
func (h *IPHdr) AddTotLen(more uint16) *IPHdr {
	return h.SetTotLen(h.GetTotLen() + more)
}

func (h *IPHdr) SetID(id uint16) *IPHdr {
	h.ID = Htons(id)
	return h
}

// SetFragOff sets the fragment offset, in units of 8 bytes, preserving the
// flag bits already set in the top 3 bits of the word.
func (h *IPHdr) SetFragOff(fragOff uint16) *IPHdr {
	flags := Ntohs(h.FragOff) & 0xe000
	h.FragOff = Htons(fragOff | flags)
	return h
}

// GetFragOff returns the fragment offset, in units of 8 bytes, masking off
// the flag bits.
func (h *IPHdr) GetFragOff() uint16 { return Ntohs(h.FragOff) & 0x1fff }

func (h *IPHdr) SetTTL(ttl uint8) *IPHdr {
	h.Ttl = ttl
	return h
}

func (h *IPHdr) SetProtocol(proto uint8) *IPHdr {
	h.Protocol = proto
	return h
}

func (h *IPHdr) setFlag(flag uint16, set bool) {
	fragOff := Ntohs(h.FragOff)
	if set {
		fragOff |= flag
	} else {
		fragOff &^= flag
	}
	h.FragOff = Htons(fragOff)
}

func (h *IPHdr) SetMF(mf bool) *IPHdr { h.setFlag(IPFlagMF, mf); return h }
func (h *IPHdr) SetDF(df bool) *IPHdr { h.setFlag(IPFlagDF, df); return h }
func (h *IPHdr) SetEvil(evil bool) *IPHdr { h.setFlag(IPFlagEvil, evil); return h }

func (h *IPHdr) GetMF() bool { return Ntohs(h.FragOff)&IPFlagMF != 0 }

func (h *IPHdr) SetCsum(csum uint16) *IPHdr {
	h.Csum = Htons(csum)
	return h
}

// CalcCsum zeroes the checksum field and recomputes the standard IPv4
// header checksum over hdrBytes, a view of this same header's wire bytes
// (h.Csum must already be zeroed in that view by the time Checksum runs,
// which holds because hdrBytes aliases the buffer h itself was carved
// from).
func (h *IPHdr) CalcCsum(hdrBytes []byte) *IPHdr {
	h.Csum = 0
	return h.SetCsum(Checksum(hdrBytes))
}

// PseudoHdr is the 12-byte IPv4 pseudo-header used to checksum TCP and UDP.
type PseudoHdr struct {
	Src   uint32
	Dst   uint32
	Zero  uint8
	Proto uint8
	Len   uint16
}

// GetPseudoHdr builds the pseudo-header this IP header implies for a
// transport segment of the given length.
func (h *IPHdr) GetPseudoHdr(length uint16) PseudoHdr {
	return PseudoHdr{
		Src:   h.Saddr,
		Dst:   h.Daddr,
		Proto: h.Protocol,
		Len:   Htons(length),
	}
}

// CsumPartial returns the pre-fold accumulator of this pseudo-header's
// bytes, for combining with the transport header and payload partials.
func (p PseudoHdr) CsumPartial() uint32 {
	return Partial(pseudoHdrBytes(p))
}

func pseudoHdrBytes(p PseudoHdr) []byte {
	b := make([]byte, 12)
	putU32(b[0:4], p.Src)
	putU32(b[4:8], p.Dst)
	b[8] = p.Zero
	b[9] = p.Proto
	putU16(b[10:12], p.Len)
	return b
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func putU16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func ipToU32(ip [4]byte) uint32 {
	return uint32(ip[0])<<24 | uint32(ip[1])<<16 | uint32(ip[2])<<8 | uint32(ip[3])
}

func u32ToIP(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// IPFromNetIP converts a net.IP (or net.IPv4) into the [4]byte form used by
// header setters.
func IPFromNetIP(ip net.IP) [4]byte {
	v4 := ip.To4()
	var out [4]byte
	copy(out[:], v4)
	return out
}

// PushIPHdr appends an initialized IPv4 header to b.
func PushIPHdr(b *resynth.Buffer) resynth.Hdr[IPHdr] {
	return resynth.Push(b, NewIPHdr())
}
