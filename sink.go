package resynth

//go:generate mockgen -source=sink.go -destination=internal/mocks/sink.go -package=mocks

// Sink is the pcap output contract of §6: it accepts a (timestamp, packet)
// tuple per emitted packet. The interpreter owns exactly one Sink and
// writes to it in program order; no packet write is rolled back on a
// later statement's failure (§7).
//
// pcapsink.Writer (built on gopacket/pcapgo) and pcapsink.RawWriter
// (dependency-free, byte-exact against §6) both implement this interface;
// so can a caller's own.
type Sink interface {
	WritePacket(timestampNs uint64, pkt PacketSource) error
}
