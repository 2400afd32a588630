package pkt

// NetBIOS Name Service opcodes (RFC 1002 §4.2.1).
const (
	NBNSOpcodeQuery          uint8 = 0
	NBNSOpcodeRegistration   uint8 = 5
	NBNSOpcodeRelease        uint8 = 6
	NBNSOpcodeWack           uint8 = 7
	NBNSOpcodeRefresh        uint8 = 8
	NBNSOpcodeRefreshAlt     uint8 = 9
	NBNSOpcodeMhRegistration uint8 = 15
)

// NetBIOS Name Service resource record types.
const (
	NBNSTypeNull   uint16 = 0x0a
	NBNSTypeNB     uint16 = 0x20
	NBNSTypeNBStat uint16 = 0x21
)

// NBNSFlagBroadcast is the "B" (broadcast) bit of the NBNS flags word.
const NBNSFlagBroadcast uint16 = 0x0010

// NetBIOS Name Service response codes (RFC 1002 §4.2.6).
const (
	NBNSRcodeActErr uint8 = 6
	NBNSRcodeCftErr uint8 = 7
)

// NBNSNameRawEncode implements RFC 1001 §14's "first level encoding": each
// of the 16 raw name bytes is split into two nibbles, each nibble added to
// 'A', producing a 32-byte result.
func NBNSNameRawEncode(name [0x10]byte) [0x20]byte {
	var buf [0x20]byte
	for i, cur := range name {
		buf[i*2] = (cur >> 4) + 'A'
		buf[i*2+1] = (cur & 0xf) + 'A'
	}
	return buf
}

// NBNSNamePad right-pads name with spaces to 15 bytes and appends a
// one-byte suffix, for a total of 16 raw bytes. It returns false if name is
// longer than 15 bytes.
func NBNSNamePad(name []byte, suffix byte) ([0x10]byte, bool) {
	var buf [0x10]byte
	for i := range buf {
		buf[i] = ' '
	}
	if len(name)+1 > len(buf) {
		return buf, false
	}
	copy(buf[:], name)
	buf[0x0f] = suffix
	return buf, true
}

// NBNSNameEncode pads name to 16 raw bytes with suffix, then raw-encodes
// it, producing the 32-byte NetBIOS name as it appears in an NBNS query.
func NBNSNameEncode(name []byte, suffix byte) ([0x20]byte, bool) {
	padded, ok := NBNSNamePad(name, suffix)
	if !ok {
		return [0x20]byte{}, false
	}
	return NBNSNameRawEncode(padded), true
}
