package resynth

import (
	"fmt"
	"net"
)

// ValType is the closed enumeration of Val case tags.
type ValType int

const (
	TNil ValType = iota
	TBool
	TU8
	TU16
	TU32
	TU64
	TIp4
	TSock4
	TStr
	TPkt
	TPktGen
	TObj
	TFunc
	TMethod
	TTimeJump
	TType
	TVoid // used as the "no variadics" / "no default" marker type
)

func (t ValType) String() string {
	switch t {
	case TNil:
		return "Nil"
	case TBool:
		return "Bool"
	case TU8:
		return "U8"
	case TU16:
		return "U16"
	case TU32:
		return "U32"
	case TU64:
		return "U64"
	case TIp4:
		return "Ip4"
	case TSock4:
		return "Sock4"
	case TStr:
		return "Str"
	case TPkt:
		return "Pkt"
	case TPktGen:
		return "PktGen"
	case TObj:
		return "Obj"
	case TFunc:
		return "Func"
	case TMethod:
		return "Method"
	case TTimeJump:
		return "TimeJump"
	case TType:
		return "Type"
	case TVoid:
		return "Void"
	default:
		return "Unknown"
	}
}

// PacketSource is the interface a finished packet implements so the root
// package can forward it to a Sink without importing the pkt package
// (which itself needs to build on top of Buffer/Hdr without a dependency
// cycle back to resynth).
type PacketSource interface {
	// BitTime is the simulated nanosecond cost of putting the packet on a
	// nominal 1 Gb/s wire: 8 * (logical length + 24).
	BitTime() uint64
	// CloneForSink returns a packet the sink may freely mutate (e.g. to
	// prepend a record header into headroom) without disturbing a value
	// that might still be shared by other registers.
	CloneForSink() PacketSource
	// FrameBytes returns the on-wire bytes of the packet (including any
	// Ethernet header, if present).
	FrameBytes() []byte
}

// Val is the tagged union described in §3 of the spec. It is a struct, not
// an interface, so the set of cases is closed and exhaustively switchable.
type Val struct {
	Kind ValType

	b    bool
	u    uint64
	ip   [4]byte
	port uint16
	str  []byte

	pkt    PacketSource
	pktgen []PacketSource

	obj    *Obj
	fn     *FuncDef
	method *FuncDef

	typ ValType
}

func NilVal() Val                      { return Val{Kind: TNil} }
func BoolVal(v bool) Val               { return Val{Kind: TBool, b: v} }
func U8Val(v uint8) Val                { return Val{Kind: TU8, u: uint64(v)} }
func U16Val(v uint16) Val              { return Val{Kind: TU16, u: uint64(v)} }
func U32Val(v uint32) Val              { return Val{Kind: TU32, u: uint64(v)} }
func U64Val(v uint64) Val              { return Val{Kind: TU64, u: v} }
func Ip4Val(v [4]byte) Val             { return Val{Kind: TIp4, ip: v} }
func Sock4Val(ip [4]byte, port uint16) Val {
	return Val{Kind: TSock4, ip: ip, port: port}
}
func StrVal(s []byte) Val       { return Val{Kind: TStr, str: s} }
func PktVal(p PacketSource) Val { return Val{Kind: TPkt, pkt: p} }
func PktGenVal(ps []PacketSource) Val {
	return Val{Kind: TPktGen, pktgen: ps}
}
func ObjVal(o *Obj) Val             { return Val{Kind: TObj, obj: o} }
func FuncVal(f *FuncDef) Val        { return Val{Kind: TFunc, fn: f} }
func MethodVal(o *Obj, f *FuncDef) Val {
	return Val{Kind: TMethod, obj: o, method: f}
}
func TimeJumpVal(ns uint64) Val { return Val{Kind: TTimeJump, u: ns} }
func TypeVal(t ValType) Val     { return Val{Kind: TType, typ: t} }

func (v Val) Bool() bool { return v.b }
func (v Val) U8() uint8  { return uint8(v.u) }
func (v Val) U16() uint16 { return uint16(v.u) }
func (v Val) U32() uint32 { return uint32(v.u) }
func (v Val) U64() uint64 { return v.u }
func (v Val) Ip4() [4]byte { return v.ip }
func (v Val) IP() net.IP {
	return net.IPv4(v.ip[0], v.ip[1], v.ip[2], v.ip[3])
}
func (v Val) Sock4() ([4]byte, uint16) { return v.ip, v.port }
func (v Val) Str() []byte              { return v.str }
func (v Val) Pkt() PacketSource         { return v.pkt }
func (v Val) PktGen() []PacketSource    { return v.pktgen }
func (v Val) Obj() *Obj                { return v.obj }
func (v Val) Func() *FuncDef            { return v.fn }
func (v Val) Method() (*Obj, *FuncDef) { return v.obj, v.method }
func (v Val) TimeJumpNs() uint64        { return v.u }
func (v Val) TypeVal() ValType          { return v.typ }

func (v Val) String() string {
	switch v.Kind {
	case TNil:
		return "nil"
	case TBool:
		return fmt.Sprintf("%v", v.b)
	case TU8, TU16, TU32, TU64:
		return fmt.Sprintf("%d", v.u)
	case TIp4:
		return v.IP().String()
	case TSock4:
		return fmt.Sprintf("%s:%d", v.IP().String(), v.port)
	case TStr:
		return fmt.Sprintf("%q", string(v.str))
	default:
		return v.Kind.String()
	}
}

// IsType reports whether v's tag matches t exactly (no widening).
func (v Val) IsType(t ValType) bool { return v.Kind == t }

// widens reports whether src is narrower than or equal to dst in the
// unsigned-integer widening lattice U8 <= U16 <= U32 <= U64.
func widens(src, dst ValType) bool {
	order := map[ValType]int{TU8: 1, TU16: 2, TU32: 3, TU64: 4}
	so, sok := order[src]
	do, dok := order[dst]
	return sok && dok && so <= do
}

// IsIntegral reports whether v's tag is one of the unsigned-integer kinds.
func (v Val) IsIntegral() bool {
	switch v.Kind {
	case TU8, TU16, TU32, TU64:
		return true
	default:
		return false
	}
}

// CompatibleWith implements ValType.compatible_with(val) / Val.is_type:
// exact match, plus the widening conversions named in §3: a narrower
// unsigned integer widens to a wider one; any integer bit-reinterprets as
// an Ip4; Sock4 additionally accepts being asked for as an Ip4 target is
// not itself a widening (there is no Sock4->Ip4 narrowing in the spec).
func (v Val) CompatibleWith(t ValType) bool {
	if v.Kind == t {
		return true
	}
	if widens(v.Kind, t) {
		return true
	}
	if t == TIp4 && v.IsIntegral() {
		return true
	}
	return false
}

// ValDef is an argument default: a concrete value, or a Type(T) marker
// meaning "no default; nullable; absent maps to Nil".
type ValDef struct {
	val       Val
	nullable  bool
	declared  ValType
}

// ConcreteDefault builds a ValDef carrying a real default value.
func ConcreteDefault(v Val) ValDef {
	return ValDef{val: v, declared: v.Kind}
}

// NullableDefault builds a ValDef meaning "no default; nullable parameter
// of declared type t; absent maps to Nil at the call site".
func NullableDefault(t ValType) ValDef {
	return ValDef{val: NilVal(), nullable: true, declared: t}
}

// Default returns the value to substitute when the parameter was not
// supplied by the caller.
func (d ValDef) Default() Val { return d.val }

// DeclaredType is the type this default was declared against (used for
// compatibility checks of an explicitly-supplied value).
func (d ValDef) DeclaredType() ValType { return d.declared }

// ArgCompatible additionally permits Nil when the default is nullable,
// implementing ValDef::arg_compatible.
func (d ValDef) ArgCompatible(v Val) bool {
	if d.nullable && v.Kind == TNil {
		return true
	}
	return v.CompatibleWith(d.declared)
}
