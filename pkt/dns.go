package pkt

import "bytes"

// DNSHdr is the 12-byte DNS message header.
type DNSHdr struct {
	ID      uint16
	Flags   uint16
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

// DNSHdrSize is sizeof(DNSHdr) on the wire.
const DNSHdrSize = 12

func NewDNSHdr(id uint16) DNSHdr {
	var h DNSHdr
	h.SetID(id)
	return h
}

func (h *DNSHdr) SetID(id uint16) *DNSHdr { h.ID = Htons(id); return h }
func (h *DNSHdr) GetID() uint16           { return Ntohs(h.ID) }

func (h *DNSHdr) SetFlags(f DNSFlags) *DNSHdr { h.Flags = Htons(f.Pack()); return h }
func (h *DNSHdr) GetFlags() uint16            { return Ntohs(h.Flags) }

func (h *DNSHdr) SetQDCount(n uint16) *DNSHdr { h.QDCount = Htons(n); return h }
func (h *DNSHdr) SetANCount(n uint16) *DNSHdr { h.ANCount = Htons(n); return h }
func (h *DNSHdr) SetNSCount(n uint16) *DNSHdr { h.NSCount = Htons(n); return h }
func (h *DNSHdr) SetARCount(n uint16) *DNSHdr { h.ARCount = Htons(n); return h }

// DNS opcodes, response codes and record types used by the standard
// library's dns module.
const (
	DNSOpcodeQuery  uint8 = 0
	DNSOpcodeIQuery uint8 = 1
	DNSOpcodeStatus uint8 = 2
	DNSOpcodeNotify uint8 = 4
	DNSOpcodeUpdate uint8 = 5
)

const (
	DNSRcodeNoError  uint8 = 0
	DNSRcodeFormErr  uint8 = 1
	DNSRcodeServFail uint8 = 2
	DNSRcodeNXDomain uint8 = 3
	DNSRcodeNotImp   uint8 = 4
	DNSRcodeRefused  uint8 = 5
)

const (
	DNSTypeA     uint16 = 1
	DNSTypeNS    uint16 = 2
	DNSTypeCNAME uint16 = 5
	DNSTypeSOA   uint16 = 6
	DNSTypePTR   uint16 = 12
	DNSTypeHINFO uint16 = 13
	DNSTypeMX    uint16 = 15
	DNSTypeTXT   uint16 = 16
	DNSTypeSRV   uint16 = 33
	DNSTypeOPT   uint16 = 41
	DNSTypeAAAA  uint16 = 28
	DNSTypeALL   uint16 = 255
)

const (
	DNSClassIN  uint16 = 1
	DNSClassCS  uint16 = 2
	DNSClassCH  uint16 = 3
	DNSClassHS  uint16 = 4
	DNSClassANY uint16 = 255
)

// DNSFlags packs the nine sub-fields of the DNS header's flags word per
// §4.2: QR(15), opcode(14:11), AA(10), TC(9), RD(8), RA(7), Z(6), AD(5),
// CD(4), rcode(3:0).
type DNSFlags struct {
	QR     bool
	Opcode uint8
	AA     bool
	TC     bool
	RD     bool
	RA     bool
	Z      bool
	AD     bool
	CD     bool
	Rcode  uint8
}

func (f DNSFlags) Pack() uint16 {
	var w uint16
	if f.QR {
		w |= 1 << 15
	}
	w |= (uint16(f.Opcode) & 0xf) << 11
	if f.AA {
		w |= 1 << 10
	}
	if f.TC {
		w |= 1 << 9
	}
	if f.RD {
		w |= 1 << 8
	}
	if f.RA {
		w |= 1 << 7
	}
	if f.Z {
		w |= 1 << 6
	}
	if f.AD {
		w |= 1 << 5
	}
	if f.CD {
		w |= 1 << 4
	}
	w |= uint16(f.Rcode) & 0xf
	return w
}

// CompressionPointerMask marks a name-pointer length octet, per RFC 1035
// §4.1.4: a length byte with both top bits set is instead the high byte of
// a 14-bit offset into the message.
const CompressionPointerMask uint16 = 0xC000

// DNSName is a variable-length, length-prefixed DNS name encoding: a
// sequence of length-prefixed labels, optionally terminated by a zero
// label or a two-byte compression pointer. It is built incrementally with
// Push/PushRaw, sealed with Finish, or produced directly with Root,
// CompressionPointer or ParseDNSName.
type DNSName struct {
	buf    bytes.Buffer
	closed bool
}

// Root returns the single-byte root name (a bare zero-length label).
func Root() DNSName {
	var n DNSName
	n.buf.WriteByte(0)
	n.closed = true
	return n
}

// CompressionPointer returns a two-byte name that is wholly a compression
// pointer to offset within the enclosing message.
func CompressionPointer(offset uint16) DNSName {
	var n DNSName
	ptr := CompressionPointerMask | (offset & 0x3fff)
	n.buf.WriteByte(byte(ptr >> 8))
	n.buf.WriteByte(byte(ptr))
	n.closed = true
	return n
}

// Push appends a length-prefixed label. Panics if label is longer than 63
// bytes (the maximum DNS label length) or the name is already closed.
func (n *DNSName) Push(label []byte) *DNSName {
	if n.closed {
		panic("resynth/pkt: push onto a closed DNSName")
	}
	if len(label) > 63 {
		panic("resynth/pkt: dns label exceeds 63 bytes")
	}
	n.buf.WriteByte(byte(len(label)))
	n.buf.Write(label)
	return n
}

// PushRaw appends raw bytes with no length prefix, for building malformed
// or non-standard names deliberately.
func (n *DNSName) PushRaw(raw []byte) *DNSName {
	if n.closed {
		panic("resynth/pkt: push onto a closed DNSName")
	}
	n.buf.Write(raw)
	return n
}

// Finish appends the terminating zero-length label and closes the name to
// further pushes.
func (n *DNSName) Finish() *DNSName {
	n.buf.WriteByte(0)
	n.closed = true
	return n
}

// Bytes returns the name's encoded wire bytes so far.
func (n *DNSName) Bytes() []byte { return n.buf.Bytes() }

// ParseDNSName splits a dotted name (e.g. "www.example.com") into
// length-prefixed labels and appends a terminating zero label. A trailing
// dot produces an extra empty label, matching the reference encoder's
// literal label-split behavior.
func ParseDNSName(dotted string) DNSName {
	var n DNSName
	start := 0
	for i := 0; i <= len(dotted); i++ {
		if i == len(dotted) || dotted[i] == '.' {
			n.Push([]byte(dotted[start:i]))
			start = i + 1
		}
	}
	n.Finish()
	return n
}
