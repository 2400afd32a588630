// Package flows implements the stateful session objects of §4.4 (C5): one
// mutable struct per logical direction-pair, built on top of the ezpkt
// builders and bound into the DSL's symbol tree by the stdlib package.
package flows

import "net"

// Sock4 is an IPv4 address plus port, the flow-level analog of the value
// model's Sock4 case.
type Sock4 struct {
	IP   [4]byte
	Port uint16
}

// Endpoint pairs a Sock4 with a synthesized or caller-supplied MAC, the
// addressing a flow needs to hand to an ezpkt builder.
type Endpoint struct {
	Sock4 Sock4
	Mac   net.HardwareAddr
}
