package pkt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Property 6: DNS name encoding.
func TestParseDNSNameEncoding(t *testing.T) {
	n := ParseDNSName("www.example.com")
	want := []byte{
		3, 'w', 'w', 'w',
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
		3, 'c', 'o', 'm',
		0,
	}
	assert.Equal(t, want, n.Bytes())
}

func TestDNSRootName(t *testing.T) {
	assert.Equal(t, []byte{0}, Root().Bytes())
}

func TestDNSCompressionPointer(t *testing.T) {
	n := CompressionPointer(0x0bad)
	assert.Equal(t, []byte{0xCB, 0xAD}, n.Bytes())
}

func TestDNSNamePushPanicsOnLongLabel(t *testing.T) {
	var n DNSName
	assert.Panics(t, func() {
		n.Push(make([]byte, 64))
	})
}

func TestDNSNamePushPanicsWhenClosed(t *testing.T) {
	var n DNSName
	n.Finish()
	assert.Panics(t, func() {
		n.Push([]byte("x"))
	})
}

func TestDNSFlagsPack(t *testing.T) {
	f := DNSFlags{QR: true, RA: true, Opcode: DNSOpcodeQuery}
	// QR(15) | RA(7)
	assert.Equal(t, uint16(1<<15|1<<7), f.Pack())
}
