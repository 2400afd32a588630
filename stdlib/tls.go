package stdlib

import (
	"encoding/binary"

	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/pkt"
)

var tlsVersion = newModule("version", map[string]resynth.Symbol{
	"SSL_3":   resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSVersionSSL3))),
	"TLS_1_0": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSVersionTLS1_0))),
	"TLS_1_1": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSVersionTLS1_1))),
	"TLS_1_2": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSVersionTLS1_2))),
	"TLS_1_3": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSVersionTLS1_3))),
})

var tlsContent = newModule("content", map[string]resynth.Symbol{
	"CHANGE_CIPHER_SPEC": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSContentChangeCipherSpec))),
	"ALERT":              resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSContentAlert))),
	"HANDSHAKE":          resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSContentHandshake))),
	"APP_DATA":           resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSContentAppData))),
	"HEARTBEAT":          resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSContentHeartbeat))),
})

var tlsHandshake = newModule("handshake", map[string]resynth.Symbol{
	"HELLO_REQUEST":       resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSHandshakeHelloRequest))),
	"CLIENT_HELLO":        resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSHandshakeClientHello))),
	"SERVER_HELLO":        resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSHandshakeServerHello))),
	"NEW_SESSION_TICKET":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSHandshakeNewSessionTicket))),
	"CERTIFICATE":         resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSHandshakeCertificate))),
	"SERVER_KEY_EXCHANGE": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSHandshakeServerKeyExchange))),
	"CERTIFICATE_REQUEST": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSHandshakeCertificateRequest))),
	"SERVER_HELLO_DONE":   resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSHandshakeServerHelloDone))),
	"CERTIFICATE_VERIFY":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSHandshakeCertificateVerify))),
	"CLIENT_KEY_EXCHANGE": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSHandshakeClientKeyExchange))),
	"FINISHED":            resynth.ValSymbol(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSHandshakeFinished))),
})

var tlsExt = newModule("ext", map[string]resynth.Symbol{
	"SERVER_NAME":         resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSExtServerName))),
	"MAX_FRAGMENT_LENGTH": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSExtMaxFragmentLength))),
	"STATUS_REQUEST":      resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSExtStatusRequest))),
	"SUPPORTED_GROUPS":    resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSExtSupportedGroups))),
	"EC_POINT_FORMATS":    resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSExtECPointFormats))),
	"SIGNATURE_ALGORITHMS": resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSExtSignatureAlgs))),
	"ALPN":                resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSExtALPN))),
	"SESSION_TICKET":      resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSExtSessionTicket))),
	"PRE_SHARED_KEY":      resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSExtPreSharedKey))),
	"SUPPORTED_VERSIONS":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSExtSupportedVersions))),
	"KEY_SHARE":           resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSExtKeyShare))),
	"RENEGOTIATION_INFO":  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSExtRenegotiationInfo))),
})

var tlsCipher = newModule("cipher", map[string]resynth.Symbol{
	"NULL_WITH_NULL_NULL":                   resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSCipherNullWithNullNull))),
	"RSA_WITH_RC4_128_MD5":                  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSCipherRsaWithRc4_128Md5))),
	"RSA_WITH_RC4_128_SHA":                  resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSCipherRsaWithRc4_128Sha))),
	"RSA_WITH_AES_128_CBC_SHA":              resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSCipherRsaWithAes128CbcSha))),
	"RSA_WITH_AES_256_CBC_SHA":              resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSCipherRsaWithAes256CbcSha))),
	"DHE_RSA_WITH_AES_128_GCM_SHA256":       resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSCipherDheRsaAes128GcmSha256))),
	"ECDHE_RSA_WITH_AES_128_GCM_SHA256":     resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSCipherEcdheRsaAes128GcmSha256))),
	"ECDHE_RSA_WITH_AES_256_GCM_SHA384":     resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSCipherEcdheRsaAes256GcmSha384))),
	"TLS13_AES_128_GCM_SHA256":              resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSCipherTls13Aes128GcmSha256))),
	"TLS13_AES_256_GCM_SHA384":              resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSCipherTls13Aes256GcmSha384))),
	"TLS13_CHACHA20_POLY1305_SHA256":        resynth.ValSymbol(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSCipherTls13Chacha20Poly1305Sha256))),
})

// tlsMessage implements the record framing itself: content type + version +
// 2-byte length + payload, per §3's concrete TLS wire contract.
var tlsMessage = resynth.NewFuncDef("message", resynth.TStr, []resynth.ArgDesc{
	{Name: "version", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSVersionTLS1_2)))},
	{Name: "content", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U8Val(pkt.TLSContentHandshake)))},
}, resynth.TStr, func(a resynth.Args) (resynth.Val, error) {
	version, content := a.Next(), a.Next()
	payload := a.JoinExtra(nil)

	h := pkt.NewTLSHdr(content.U8(), version.U16())
	h.SetLen(uint16(len(payload)))

	buf := make([]byte, 0, pkt.TLSHdrSize+len(payload))
	buf = append(buf, structBytes(h)...)
	buf = append(buf, payload...)
	return resynth.StrVal(buf), nil
})

// tlsExtension implements a single TLS "extension" TLV: 2-byte extension
// id, 2-byte length, payload.
var tlsExtension = resynth.NewFuncDef("extension", resynth.TStr, []resynth.ArgDesc{
	{Name: "ext", Decl: resynth.Positional(resynth.TU16)},
}, resynth.TStr, func(a resynth.Args) (resynth.Val, error) {
	ext := a.Next()
	payload := a.JoinExtra(nil)

	h := pkt.NewTLSExtHdr(ext.U16(), uint16(len(payload)))
	buf := make([]byte, 0, pkt.TLSExtHdrSize+len(payload))
	buf = append(buf, structBytes(h)...)
	buf = append(buf, payload...)
	return resynth.StrVal(buf), nil
})

// tlsCiphers builds a length-prefixed cipher-suite list as carried in a
// ClientHello body.
var tlsCiphers = resynth.NewFuncDef("ciphers", resynth.TStr, nil, resynth.TU16,
	func(a resynth.Args) (resynth.Val, error) {
		ids := a.Variadic
		buf := make([]byte, 0, 2+2*len(ids))
		buf = binary.BigEndian.AppendUint16(buf, uint16(2*len(ids)))
		for _, id := range ids {
			buf = binary.BigEndian.AppendUint16(buf, id.U16())
		}
		return resynth.StrVal(buf), nil
	})

// tlsClientRandom and tlsServerRandom are fixed 32-byte "random" fields, in
// place of a real CSPRNG draw, so builds stay bit-exact run to run.
var (
	tlsClientRandom = []byte("_client__random__client__random_")
	tlsServerRandom = []byte("_server__random__server__random_")
)

// tlsClientHello builds a ClientHello handshake body (framed by a
// content::HANDSHAKE message()).
var tlsClientHello = resynth.NewFuncDef("client_hello", resynth.TStr, []resynth.ArgDesc{
	{Name: "version", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSVersionTLS1_2)))},
	{Name: "sessionid", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.StrVal([]byte{0})))},
	{Name: "ciphers", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.StrVal([]byte{0, 2, 0, 0})))},
	{Name: "compression", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.StrVal([]byte{1, 0})))},
}, resynth.TStr, func(a resynth.Args) (resynth.Val, error) {
	version, sessionid, ciphers, compression := a.Next(), a.Next(), a.Next(), a.Next()
	extensions := a.JoinExtra(nil)

	body := make([]byte, 0, 34+len(sessionid.Str())+len(ciphers.Str())+len(compression.Str())+2+len(extensions))
	var verBuf [2]byte
	binary.BigEndian.PutUint16(verBuf[:], version.U16())
	body = append(body, verBuf[:]...)
	body = append(body, tlsClientRandom...)
	body = append(body, sessionid.Str()...)
	body = append(body, ciphers.Str()...)
	body = append(body, compression.Str()...)
	if len(extensions) > 0 {
		body = binary.BigEndian.AppendUint16(body, uint16(len(extensions)))
		body = append(body, extensions...)
	}

	msg := make([]byte, 4, 4+len(body))
	msg[0] = pkt.TLSHandshakeClientHello
	pkt.PutLen24(msg[1:4], len(body))
	msg = append(msg, body...)
	return resynth.StrVal(msg), nil
})

// tlsServerHello builds a ServerHello handshake body.
var tlsServerHello = resynth.NewFuncDef("server_hello", resynth.TStr, []resynth.ArgDesc{
	{Name: "version", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSVersionTLS1_2)))},
	{Name: "sessionid", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.StrVal([]byte{0})))},
	{Name: "cipher", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U16Val(pkt.TLSCipherNullWithNullNull)))},
	{Name: "compression", Decl: resynth.Optional(resynth.ConcreteDefault(resynth.U8Val(0)))},
}, resynth.TStr, func(a resynth.Args) (resynth.Val, error) {
	version, sessionid, cipher, compression := a.Next(), a.Next(), a.Next(), a.Next()
	extensions := a.JoinExtra(nil)

	body := make([]byte, 0, 34+len(sessionid.Str())+2+1+2+len(extensions))
	var verBuf [2]byte
	binary.BigEndian.PutUint16(verBuf[:], version.U16())
	body = append(body, verBuf[:]...)
	body = append(body, tlsServerRandom...)
	body = append(body, sessionid.Str()...)
	body = binary.BigEndian.AppendUint16(body, cipher.U16())
	body = append(body, compression.U8())
	if len(extensions) > 0 {
		body = binary.BigEndian.AppendUint16(body, uint16(len(extensions)))
		body = append(body, extensions...)
	}

	msg := make([]byte, 4, 4+len(body))
	msg[0] = pkt.TLSHandshakeServerHello
	pkt.PutLen24(msg[1:4], len(body))
	msg = append(msg, body...)
	return resynth.StrVal(msg), nil
})

// tlsSNI builds a server_name extension payload (to be wrapped by
// extension(ext::SERVER_NAME, ...)).
var tlsSNI = resynth.NewFuncDef("sni", resynth.TStr, nil, resynth.TStr,
	func(a resynth.Args) (resynth.Val, error) {
		names := a.Variadic
		nameListLen := 0
		for _, n := range names {
			nameListLen += 3 + len(n.Str())
		}
		buf := make([]byte, 0, 2+nameListLen)
		buf = binary.BigEndian.AppendUint16(buf, uint16(nameListLen))
		for _, n := range names {
			b := n.Str()
			buf = append(buf, 0)
			buf = binary.BigEndian.AppendUint16(buf, uint16(len(b)))
			buf = append(buf, b...)
		}
		return resynth.StrVal(buf), nil
	})

// tlsCertificates builds a certificate-chain handshake body (to be framed
// by a content::HANDSHAKE message()).
var tlsCertificates = resynth.NewFuncDef("certificates", resynth.TStr, nil, resynth.TStr,
	func(a resynth.Args) (resynth.Val, error) {
		certs := a.Variadic
		listLen := 0
		for _, c := range certs {
			listLen += 3 + len(c.Str())
		}

		body := make([]byte, 3, 3+listLen)
		pkt.PutLen24(body, listLen)
		for _, c := range certs {
			b := c.Str()
			cur := len(body)
			body = append(body, 0, 0, 0)
			pkt.PutLen24(body[cur:cur+3], len(b))
			body = append(body, b...)
		}

		msg := make([]byte, 4, 4+len(body))
		msg[0] = pkt.TLSHandshakeCertificate
		pkt.PutLen24(msg[1:4], len(body))
		msg = append(msg, body...)
		return resynth.StrVal(msg), nil
	})

// TLS registers the tls module: version/content/handshake/extension/cipher
// constant tables plus record-, extension- and handshake-message builders,
// grounded on stdlib/tls.rs in the original source.
var TLS = newModule("tls", map[string]resynth.Symbol{
	"version":      resynth.ModuleSymbol(tlsVersion),
	"content":      resynth.ModuleSymbol(tlsContent),
	"handshake":    resynth.ModuleSymbol(tlsHandshake),
	"ext":          resynth.ModuleSymbol(tlsExt),
	"cipher":       resynth.ModuleSymbol(tlsCipher),
	"message":      resynth.FuncSymbol(tlsMessage),
	"extension":    resynth.FuncSymbol(tlsExtension),
	"ciphers":      resynth.FuncSymbol(tlsCiphers),
	"client_hello": resynth.FuncSymbol(tlsClientHello),
	"server_hello": resynth.FuncSymbol(tlsServerHello),
	"sni":          resynth.FuncSymbol(tlsSNI),
	"certificates": resynth.FuncSymbol(tlsCertificates),
})
