package resynth

// FlowObject is implemented by every stateful flow type (TcpFlow, UdpFlow,
// IcmpFlow, GreFlow, VxlanFlow, Erspan1Flow, Erspan2Flow, IpFrag). It is the
// runtime-polymorphic escape hatch named in §9: the concrete type is
// recovered inside a method body via a type assertion on Obj.Value.
type FlowObject interface {
	// ClassName names the Class descriptor that holds this object's
	// method table, so dispatch (§4.6) can resolve obj.method(...).
	ClassName() string
}

// Obj is a runtime-polymorphic handle around a flow object: shared
// ownership (it may be copied into multiple registers or bound into
// multiple Method values) plus interior mutability (method calls mutate
// the pointee), the same shape the teacher's driver code gets "for free"
// from Go pointers and an interface method table.
type Obj struct {
	Value FlowObject
	class *Class
}

// NewObj wraps value, binding it to class's method table.
func NewObj(value FlowObject, class *Class) *Obj {
	return &Obj{Value: value, class: class}
}

// MethodLookup resolves name against this object's class descriptor,
// producing a bound Method(obj, funcdef) Val on success.
func (o *Obj) MethodLookup(name string) (Val, error) {
	fd, ok := o.class.Lookup(name)
	if !ok {
		return Val{}, errName(NameError, NilLoc, "no such method "+name+" on "+o.class.Name)
	}
	return MethodVal(o, fd), nil
}

// As downcasts o to the concrete flow type T, the Go analog of the
// original's `this` downcast inside a method implementation. It panics if
// the object does not hold a T, which indicates a stdlib registration bug
// (a method was bound to the wrong class), not a user-reachable error.
func As[T any](o *Obj) *T {
	v, ok := o.Value.(*T)
	if !ok {
		panic("resynth: method bound to wrong flow type")
	}
	return v
}
