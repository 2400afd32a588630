// Package pkt implements the protocol-header layer (C3) of the packet
// construction layer: fixed-layout on-wire records with explicit
// endianness, plus the Packet type that wraps resynth.Buffer and adapts it
// to resynth.PacketSource so finished packets can be forwarded to a Sink.
package pkt

import (
	"bytes"

	"github.com/rapid7/resynth-go"
)

// EtherHdrSize is the fixed size of an Ethernet header (no 802.1Q tag).
const EtherHdrSize = 14

// Packet is a finished (or in-progress) frame: a Buffer, adapted to
// resynth.PacketSource so its bit_time and bytes can be handed to a Sink.
type Packet struct {
	Buf *resynth.Buffer
}

// NewPacket allocates a Packet with headroom bytes of reserved prefix and
// room for overhead+payload bytes of content.
func NewPacket(headroom, capacityHint int) *Packet {
	return &Packet{Buf: resynth.NewBuffer(headroom, capacityHint)}
}

// BitTime implements resynth.PacketSource: the simulated nanosecond cost of
// putting this packet on a nominal 1 Gb/s wire, per §4.7: 8 * (logical
// length + 24), the 24 bytes representing preamble + SFD + IPG.
func (p *Packet) BitTime() uint64 {
	return uint64(8 * (p.Buf.LogicalLen() + 24))
}

// FrameBytes implements resynth.PacketSource: the on-wire bytes of the
// packet, i.e. the buffer's logical content.
func (p *Packet) FrameBytes() []byte {
	return p.Buf.Content()
}

// CloneForSink implements resynth.PacketSource: a copy-on-write clone a
// sink may freely mutate (e.g. to prepend a pcap record header into
// headroom) without disturbing a packet value that might still be shared
// by other registers, per §5.
func (p *Packet) CloneForSink() resynth.PacketSource {
	clone := resynth.NewBuffer(p.Buf.Headroom(), p.Buf.Len())
	// NewBuffer already zero-fills headroom; append the logical content.
	clone.PushBytes(p.Buf.Content())
	return &Packet{Buf: clone}
}

// Len is the logical (on-wire) length of the packet so far.
func (p *Packet) Len() int { return p.Buf.LogicalLen() }

// Bytes is an alias for FrameBytes, used internally by builders that need
// to read back what they have written so far (e.g. to checksum it).
func (p *Packet) Bytes() []byte { return p.FrameBytes() }

// Equal reports whether two packets carry identical on-wire bytes, used by
// tests comparing against golden byte sequences.
func (p *Packet) Equal(b []byte) bool {
	return bytes.Equal(p.FrameBytes(), b)
}
