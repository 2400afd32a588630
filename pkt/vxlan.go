package pkt

// VxlanFlagI marks the VNI field valid.
const VxlanFlagI uint8 = 0x08

// VxlanDefaultPort is the IANA-assigned VXLAN UDP destination port.
const VxlanDefaultPort uint16 = 4789

// VXLANHdr is the 8-byte VXLAN header: a flags byte, 3 reserved bytes, and
// the VNI packed into the upper 24 bits of the trailing 32-bit word.
type VXLANHdr struct {
	Flags    uint8
	Reserved [3]uint8
	vniWord  uint32
}

// VXLANHdrSize is sizeof(VXLANHdr) on the wire.
const VXLANHdrSize = 8

// NewVXLANHdr returns a VXLANHdr with the given VNI and the I flag set.
func NewVXLANHdr(vni uint32) VXLANHdr {
	var h VXLANHdr
	h.SetVNI(vni)
	return h
}

// SetVNI packs vni into the upper 24 bits of the trailing word and sets the
// I flag, per §4.2's VXLAN bitpacking contract.
func (h *VXLANHdr) SetVNI(vni uint32) *VXLANHdr {
	h.vniWord = Htonl(vni << 8)
	h.Flags |= VxlanFlagI
	return h
}

// GetVNI returns the VNI, masking off the low reserved byte.
func (h *VXLANHdr) GetVNI() uint32 { return Ntohl(h.vniWord) >> 8 }

func (h *VXLANHdr) HasVNI() bool { return h.Flags&VxlanFlagI != 0 }
