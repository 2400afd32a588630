package pcapsink

import (
	"io"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	resynth "github.com/rapid7/resynth-go"
)

// Writer is a resynth.Sink built on pcapgo.NewWriterNanos, the same call
// the teacher's examples/capture/main.go makes for its own pcap output.
// It gives interoperability with the wider gopacket ecosystem (tooling
// that reads the file back, live-capture comparison) at the cost of an
// extra allocation per packet versus RawWriter's direct byte layout.
type Writer struct {
	w *pcapgo.Writer
}

// NewWriter wraps w, writing the nanosecond-resolution pcap file header
// for Ethernet-linktype capture.
func NewWriter(w io.Writer) (*Writer, error) {
	pw := pcapgo.NewWriterNanos(w)
	if err := pw.WriteFileHeader(0, layers.LinkTypeEthernet); err != nil {
		return nil, err
	}
	return &Writer{w: pw}, nil
}

// WritePacket implements resynth.Sink, translating the interpreter's
// simulated nanosecond clock into the gopacket.CaptureInfo timestamp
// pcapgo.Writer expects, per §6.
func (w *Writer) WritePacket(timestampNs uint64, p resynth.PacketSource) error {
	frame := p.FrameBytes()
	ci := gopacket.CaptureInfo{
		Timestamp:     time.Unix(0, int64(timestampNs)).UTC(),
		CaptureLength: len(frame),
		Length:        len(frame),
	}
	return w.w.WritePacket(ci, frame)
}
