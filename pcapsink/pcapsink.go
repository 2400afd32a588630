// Package pcapsink implements §6's output contract: a resynth.Sink that
// writes a nanosecond-resolution pcap file. RawWriter is a dependency-free,
// byte-exact rendering of the format; Writer builds on
// github.com/google/gopacket/pcapgo for callers who want gopacture's wider
// ecosystem (read-back, live capture interop) at the cost of an extra
// allocation per packet.
package pcapsink

import (
	"bufio"
	"encoding/binary"
	"io"

	resynth "github.com/rapid7/resynth-go"
)

// Magic is the nanosecond-resolution pcap magic number.
const Magic uint32 = 0xA1B23C4D

// LinktypeEthernet is the pcap network field for Ethernet framing.
const LinktypeEthernet uint32 = 1

// FileHeaderSize is the fixed 24-byte pcap global header size.
const FileHeaderSize = 24

// RecordHeaderSize is the fixed 16-byte per-packet record header size.
const RecordHeaderSize = 16

var order = binary.LittleEndian

// RawWriter is a dependency-free resynth.Sink writing the exact byte
// layout of §6: a 24-byte file header, then one 16-byte record header plus
// caplen frame bytes per packet.
type RawWriter struct {
	w       *bufio.Writer
	closer  io.Closer
	started bool
}

// NewRawWriter wraps w (owned by the caller; Close is optional and only
// closes w if it implements io.Closer) and writes the file header.
func NewRawWriter(w io.Writer) (*RawWriter, error) {
	rw := &RawWriter{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		rw.closer = c
	}
	if err := rw.writeFileHeader(); err != nil {
		return nil, err
	}
	return rw, nil
}

func (rw *RawWriter) writeFileHeader() error {
	var hdr [FileHeaderSize]byte
	order.PutUint32(hdr[0:4], Magic)
	order.PutUint16(hdr[4:6], 2)
	order.PutUint16(hdr[6:8], 4)
	order.PutUint32(hdr[8:12], 0)  // gmt offset
	order.PutUint32(hdr[12:16], 0) // sig figs
	order.PutUint32(hdr[16:20], 0) // snaplen/mtu
	order.PutUint32(hdr[20:24], LinktypeEthernet)

	_, err := rw.w.Write(hdr[:])
	return err
}

// WritePacket implements resynth.Sink.
func (rw *RawWriter) WritePacket(timestampNs uint64, p resynth.PacketSource) error {
	frame := p.FrameBytes()

	var rec [RecordHeaderSize]byte
	sec := timestampNs / 1_000_000_000
	nsec := timestampNs % 1_000_000_000
	order.PutUint32(rec[0:4], uint32(sec))
	order.PutUint32(rec[4:8], uint32(nsec))
	order.PutUint32(rec[8:12], uint32(len(frame)))
	order.PutUint32(rec[12:16], uint32(len(frame)))

	if _, err := rw.w.Write(rec[:]); err != nil {
		return err
	}
	_, err := rw.w.Write(frame)
	return err
}

// Flush flushes any buffered bytes to the underlying writer.
func (rw *RawWriter) Flush() error { return rw.w.Flush() }

// Close flushes and, if the underlying writer is an io.Closer, closes it.
func (rw *RawWriter) Close() error {
	if err := rw.Flush(); err != nil {
		return err
	}
	if rw.closer != nil {
		return rw.closer.Close()
	}
	return nil
}
