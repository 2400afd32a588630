// Package stdlib registers the packet-construction layer (pkt/ezpkt/flows)
// into resynth's symbol tree (C11), mirroring the teacher's pattern of
// building static lookup tables once at init time.
package stdlib

import (
	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/flows"
)

// sock4Endpoint builds a flows.Endpoint with no synthesized MAC from a
// Sock4 value.
func sock4Endpoint(v resynth.Val) flows.Endpoint {
	ip, port := v.Sock4()
	return flows.Endpoint{Sock4: flows.Sock4{IP: ip, Port: port}}
}

// ip4Endpoint builds a flows.Endpoint with no port (protocols that address
// by IP alone: ICMP, GRE, ERSPAN) from an Ip4 value.
func ip4Endpoint(v resynth.Val) flows.Endpoint {
	return flows.Endpoint{Sock4: flows.Sock4{IP: v.Ip4()}}
}

// optU32 returns nil if v is Nil, else a pointer to its U32 value; used for
// the seq/ack override parameters threaded through TcpFlow.PushState.
func optU32(v resynth.Val) *uint32 {
	if v.IsType(resynth.TNil) {
		return nil
	}
	u := v.U32()
	return &u
}

// pktGen converts a []resynth.PacketSource into a PktGen Val.
func pktGen(ps []resynth.PacketSource) resynth.Val { return resynth.PktGenVal(ps) }

// structBytes serializes a standalone fixed-layout record (one not already
// living inside a packet's Buffer) to its on-wire bytes, for stdlib
// functions that hand back a bare header (e.g. udp::hdr, dns::hdr) rather
// than a finished packet.
func structBytes[T any](v T) []byte {
	b := resynth.NewBuffer(0, 0)
	h := resynth.Push(b, v)
	return append([]byte(nil), resynth.AsBytes(b, h)...)
}

// newModule is a thin wrapper over resynth.NewModule taking the same
// map-literal shape every *.go file in this package declares its table
// with, keeping the registration call sites terse.
func newModule(name string, entries map[string]resynth.Symbol) *resynth.Module {
	return resynth.NewModule(name, entries)
}
