package pkt

import (
	"encoding/binary"
	"unsafe"
)

// Htons/Htonl/Ntohs/Ntohl convert between host order and the
// network-byte-order bit pattern a header field must hold so that an
// unsafe.Pointer overlay of the struct onto the buffer's backing array
// produces the correct wire bytes, regardless of host endianness. This is
// the same conversion the teacher's common.go defines and every protocol
// header setter/getter here uses it, per the endianness contract of §4.2.
func Ntohl(i uint32) uint32 {
	return binary.BigEndian.Uint32((*(*[4]byte)(unsafe.Pointer(&i)))[:])
}

func Htonl(i uint32) uint32 {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], i)
	return *(*uint32)(unsafe.Pointer(&b[0]))
}

func Ntohs(i uint16) uint16 {
	return binary.BigEndian.Uint16((*(*[2]byte)(unsafe.Pointer(&i)))[:])
}

func Htons(i uint16) uint16 {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], i)
	return *(*uint16)(unsafe.Pointer(&b[0]))
}
