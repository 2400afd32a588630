package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/pkt"
)

func TestNetbiosFlagsBroadcast(t *testing.T) {
	args := resynth.Args{
		Positionals: []resynth.Val{
			resynth.U8Val(pkt.NBNSOpcodeQuery),
			resynth.BoolVal(false), // response
			resynth.BoolVal(false), // aa
			resynth.BoolVal(false), // tc
			resynth.BoolVal(true),  // rd
			resynth.BoolVal(false), // ra
			resynth.BoolVal(false), // z
			resynth.BoolVal(false), // ad
			resynth.BoolVal(true),  // b (broadcast)
			resynth.U8Val(pkt.NBNSRcodeActErr),
		},
	}

	v, err := netbiosFlags.Exec(args)
	require.NoError(t, err)
	require.Equal(t, resynth.TU16, v.Kind)

	var f pkt.DNSFlags
	f.RD = true
	f.CD = true
	f.Rcode = pkt.NBNSRcodeActErr
	assert.Equal(t, f.Pack(), v.U16())
}

func TestNetbiosNameEncode(t *testing.T) {
	args := resynth.Args{
		Positionals: []resynth.Val{resynth.U8Val(0x20)},
		Variadic:    []resynth.Val{resynth.StrVal([]byte("WORKGROUP"))},
	}

	v, err := netbiosNameEncode.Exec(args)
	require.NoError(t, err)
	require.Equal(t, resynth.TStr, v.Kind)
	assert.Len(t, v.Str(), 0x20)
}

func TestNetbiosNameEncodeTooLong(t *testing.T) {
	args := resynth.Args{
		Positionals: []resynth.Val{resynth.U8Val(0)},
		Variadic:    []resynth.Val{resynth.StrVal(make([]byte, 16))},
	}

	_, err := netbiosNameEncode.Exec(args)
	assert.Error(t, err)
}
