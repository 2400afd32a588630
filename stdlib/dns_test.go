package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/pkt"
)

// E4: dns::host(client, "example.com", ...) with one answer address emits a
// query (one question, RD set) and a response (QR|RA set, one A answer
// record carrying the 4 address bytes).
func TestDnsHostQueryResponse(t *testing.T) {
	answer := [4]byte{0x5D, 0xB8, 0xD8, 0x22}

	args := resynth.Args{
		Positionals: []resynth.Val{
			resynth.Ip4Val([4]byte{10, 0, 0, 1}),
			resynth.StrVal([]byte("example.com")),
			resynth.U32Val(229),
			resynth.Ip4Val(dnsNsDefault),
			resynth.BoolVal(false),
		},
		Variadic: []resynth.Val{resynth.Ip4Val(answer)},
	}

	v, err := dnsHost.Exec(args)
	require.NoError(t, err)
	require.Equal(t, resynth.TPktGen, v.Kind)

	pkts := v.PktGen()
	require.Len(t, pkts, 2)

	query := pkts[0].FrameBytes()
	qname := pkt.ParseDNSName("example.com").Bytes()

	qHdrOff := pkt.EtherHdrSize + pkt.IPHdrSize + pkt.UDPHdrSize
	qFlags := uint16(query[qHdrOff+2])<<8 | uint16(query[qHdrOff+3])
	qdCount := uint16(query[qHdrOff+4])<<8 | uint16(query[qHdrOff+5])
	assert.Equal(t, uint16(1), qdCount)

	var qf pkt.DNSFlags
	qf.RD = true
	qf.Opcode = pkt.DNSOpcodeQuery
	assert.Equal(t, qf.Pack(), qFlags)

	qBody := query[qHdrOff+pkt.DNSHdrSize:]
	assert.Equal(t, qname, qBody[:len(qname)])

	resp := pkts[1].FrameBytes()
	rHdrOff := pkt.EtherHdrSize + pkt.IPHdrSize + pkt.UDPHdrSize
	rFlags := uint16(resp[rHdrOff+2])<<8 | uint16(resp[rHdrOff+3])
	anCount := uint16(resp[rHdrOff+6])<<8 | uint16(resp[rHdrOff+7])
	assert.Equal(t, uint16(1), anCount)

	var rf pkt.DNSFlags
	rf.QR = true
	rf.Opcode = pkt.DNSOpcodeQuery
	rf.RA = true
	assert.Equal(t, rf.Pack(), rFlags)

	// locate the 4-byte address at the tail of the response, after
	// question + one answer record's name/type/class/ttl/rdlength fields.
	rdata := resp[len(resp)-4:]
	assert.Equal(t, answer[:], rdata)
}
