package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/pkt"
)

func TestTLSMessageFraming(t *testing.T) {
	args := resynth.Args{
		Positionals: []resynth.Val{
			resynth.U16Val(pkt.TLSVersionTLS1_2),
			resynth.U8Val(pkt.TLSContentHandshake),
		},
		Variadic: []resynth.Val{resynth.StrVal([]byte("hello"))},
	}

	v, err := tlsMessage.Exec(args)
	require.NoError(t, err)
	require.Equal(t, resynth.TStr, v.Kind)

	buf := v.Str()
	require.Len(t, buf, pkt.TLSHdrSize+5)
	assert.Equal(t, pkt.TLSContentHandshake, buf[0])
	assert.Equal(t, []byte{0x03, 0x03}, buf[1:3])
	assert.Equal(t, []byte{0x00, 0x05}, buf[3:5])
	assert.Equal(t, "hello", string(buf[5:]))
}

func TestTLSExtensionFraming(t *testing.T) {
	args := resynth.Args{
		Positionals: []resynth.Val{resynth.U16Val(pkt.TLSExtServerName)},
		Variadic:    []resynth.Val{resynth.StrVal([]byte("abc"))},
	}

	v, err := tlsExtension.Exec(args)
	require.NoError(t, err)

	buf := v.Str()
	require.Len(t, buf, pkt.TLSExtHdrSize+3)
	assert.Equal(t, []byte{0x00, 0x00}, buf[0:2])
	assert.Equal(t, []byte{0x00, 0x03}, buf[2:4])
	assert.Equal(t, "abc", string(buf[4:]))
}

func TestTLSCiphersListLength(t *testing.T) {
	args := resynth.Args{
		Variadic: []resynth.Val{
			resynth.U16Val(pkt.TLSCipherRsaWithAes128CbcSha),
			resynth.U16Val(pkt.TLSCipherRsaWithAes256CbcSha),
		},
	}

	v, err := tlsCiphers.Exec(args)
	require.NoError(t, err)

	buf := v.Str()
	require.Len(t, buf, 2+4)
	assert.Equal(t, []byte{0x00, 0x04}, buf[0:2])
}

func TestTLSClientHelloLayout(t *testing.T) {
	args := resynth.Args{
		Positionals: []resynth.Val{
			resynth.U16Val(pkt.TLSVersionTLS1_2),
			resynth.StrVal([]byte{0}),
			resynth.StrVal([]byte{0, 2, 0, 0}),
			resynth.StrVal([]byte{1, 0}),
		},
	}

	v, err := tlsClientHello.Exec(args)
	require.NoError(t, err)

	buf := v.Str()
	assert.Equal(t, pkt.TLSHandshakeClientHello, buf[0])

	bodyLen := int(buf[1])<<16 | int(buf[2])<<8 | int(buf[3])
	assert.Equal(t, len(buf)-4, bodyLen)

	body := buf[4:]
	assert.Equal(t, []byte{0x03, 0x03}, body[0:2])
	assert.Equal(t, tlsClientRandom, body[2:34])
}

func TestTLSSNIEncoding(t *testing.T) {
	args := resynth.Args{
		Variadic: []resynth.Val{resynth.StrVal([]byte("example.com"))},
	}

	v, err := tlsSNI.Exec(args)
	require.NoError(t, err)

	buf := v.Str()
	listLen := int(buf[0])<<8 | int(buf[1])
	assert.Equal(t, len(buf)-2, listLen)
	assert.Equal(t, byte(0), buf[2])
	nameLen := int(buf[3])<<8 | int(buf[4])
	assert.Equal(t, "example.com", string(buf[5:5+nameLen]))
}

func TestTLSCertificatesLayout(t *testing.T) {
	args := resynth.Args{
		Variadic: []resynth.Val{resynth.StrVal([]byte("fake-der-bytes"))},
	}

	v, err := tlsCertificates.Exec(args)
	require.NoError(t, err)

	buf := v.Str()
	assert.Equal(t, pkt.TLSHandshakeCertificate, buf[0])

	body := buf[4:]
	listLen := int(body[0])<<16 | int(body[1])<<8 | int(body[2])
	assert.Equal(t, len(body)-3, listLen)
}
