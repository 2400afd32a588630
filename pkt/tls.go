package pkt

import "encoding/binary"

// TLSHdrSize is sizeof(TLSHdr) on the wire: 1-byte content type, 2-byte
// version, 2-byte length (§3's "tls record" framing).
const TLSHdrSize = 5

// TLSHdr is the TLS record layer header.
type TLSHdr struct {
	Content uint8
	Version [2]byte
	Len     [2]byte
}

func NewTLSHdr(content uint8, version uint16) TLSHdr {
	var h TLSHdr
	h.Content = content
	h.SetVersion(version)
	return h
}

func (h *TLSHdr) SetVersion(v uint16) *TLSHdr { binary.BigEndian.PutUint16(h.Version[:], v); return h }
func (h *TLSHdr) GetVersion() uint16          { return binary.BigEndian.Uint16(h.Version[:]) }

func (h *TLSHdr) SetLen(n uint16) *TLSHdr { binary.BigEndian.PutUint16(h.Len[:], n); return h }
func (h *TLSHdr) GetLen() uint16          { return binary.BigEndian.Uint16(h.Len[:]) }

// TLSExtHdrSize is sizeof(TLSExtHdr): a 2-byte extension id plus a 2-byte
// length, preceding the extension's own payload.
const TLSExtHdrSize = 4

// TLSExtHdr is a TLS "extension" header, embedded in client/server hello
// messages.
type TLSExtHdr struct {
	Ext uint16
	Len uint16
}

func NewTLSExtHdr(ext uint16, length uint16) TLSExtHdr {
	var h TLSExtHdr
	h.SetExt(ext)
	h.SetLen(length)
	return h
}

func (h *TLSExtHdr) SetExt(v uint16) *TLSExtHdr { h.Ext = Htons(v); return h }
func (h *TLSExtHdr) GetExt() uint16             { return Ntohs(h.Ext) }

func (h *TLSExtHdr) SetLen(n uint16) *TLSExtHdr { h.Len = Htons(n); return h }
func (h *TLSExtHdr) GetLen() uint16             { return Ntohs(h.Len) }

// PutLen24 writes the 24-bit big-endian length a TLS handshake message
// header carries (1-byte type, 3-byte length) into buf[0:3].
func PutLen24(buf []byte, n int) {
	buf[0] = byte(n >> 16)
	buf[1] = byte(n >> 8)
	buf[2] = byte(n)
}

// TLS record-layer content types (RFC 8446 §5).
const (
	TLSContentChangeCipherSpec uint8 = 20
	TLSContentAlert            uint8 = 21
	TLSContentHandshake        uint8 = 22
	TLSContentAppData          uint8 = 23
	TLSContentHeartbeat        uint8 = 24
)

// TLS/SSL legacy version numbers carried in both the record header and the
// ClientHello/ServerHello bodies.
const (
	TLSVersionSSL3   uint16 = 0x0300
	TLSVersionTLS1_0 uint16 = 0x0301
	TLSVersionTLS1_1 uint16 = 0x0302
	TLSVersionTLS1_2 uint16 = 0x0303
	TLSVersionTLS1_3 uint16 = 0x0304
)

// TLS handshake message types (RFC 8446 §4).
const (
	TLSHandshakeHelloRequest       uint8 = 0
	TLSHandshakeClientHello        uint8 = 1
	TLSHandshakeServerHello        uint8 = 2
	TLSHandshakeNewSessionTicket   uint8 = 4
	TLSHandshakeCertificate        uint8 = 11
	TLSHandshakeServerKeyExchange  uint8 = 12
	TLSHandshakeCertificateRequest uint8 = 13
	TLSHandshakeServerHelloDone    uint8 = 14
	TLSHandshakeCertificateVerify  uint8 = 15
	TLSHandshakeClientKeyExchange  uint8 = 16
	TLSHandshakeFinished           uint8 = 20
)

// TLS extension identifiers (a representative subset of the IANA
// registry; see §3's registered-header-library note).
const (
	TLSExtServerName         uint16 = 0
	TLSExtMaxFragmentLength  uint16 = 1
	TLSExtStatusRequest      uint16 = 5
	TLSExtSupportedGroups    uint16 = 10
	TLSExtECPointFormats     uint16 = 11
	TLSExtSignatureAlgs      uint16 = 13
	TLSExtALPN               uint16 = 16
	TLSExtSessionTicket      uint16 = 35
	TLSExtPreSharedKey       uint16 = 41
	TLSExtSupportedVersions  uint16 = 43
	TLSExtKeyShare           uint16 = 51
	TLSExtRenegotiationInfo  uint16 = 65281
)

// TLS cipher suite identifiers: the NULL cipher plus a representative
// sample spanning legacy CBC suites through TLS 1.3's AEAD suites.
const (
	TLSCipherNullWithNullNull     uint16 = 0x0000
	TLSCipherRsaWithRc4_128Md5    uint16 = 0x0004
	TLSCipherRsaWithRc4_128Sha    uint16 = 0x0005
	TLSCipherRsaWithAes128CbcSha  uint16 = 0x002f
	TLSCipherRsaWithAes256CbcSha  uint16 = 0x0035
	TLSCipherDheRsaAes128GcmSha256 uint16 = 0x009e
	TLSCipherEcdheRsaAes128GcmSha256 uint16 = 0xc02f
	TLSCipherEcdheRsaAes256GcmSha384 uint16 = 0xc030
	TLSCipherTls13Aes128GcmSha256 uint16 = 0x1301
	TLSCipherTls13Aes256GcmSha384 uint16 = 0x1302
	TLSCipherTls13Chacha20Poly1305Sha256 uint16 = 0x1303
)
