package resynth

// Diagnostics receives non-fatal warnings and emitted-packet counters from
// the interpreter. It is consumer-defined (the diag package supplies a
// logrus+Prometheus-backed implementation); NopDiagnostics is the default.
type Diagnostics interface {
	Warn(loc Loc, msg string)
	PacketEmitted(nbytes int)
}

// NopDiagnostics discards everything.
type NopDiagnostics struct{}

func (NopDiagnostics) Warn(Loc, string)    {}
func (NopDiagnostics) PacketEmitted(int) {}

// Interpreter executes a stream of Stmt (C10): it resolves names through
// Root (the toplevel stdlib module registry), threads evaluated arguments
// into stdlib functions via BindArgs, and forwards emitted packets to Sink
// with an advancing simulated clock.
type Interpreter struct {
	Root *Module
	Sink Sink
	Diag Diagnostics

	now     uint64
	regs    map[string]Val
	imports map[string]*Module
	loc     Loc
}

// NewInterpreter builds an Interpreter resolving imports against root and
// writing emitted packets to sink. diag may be nil (NopDiagnostics is used).
func NewInterpreter(root *Module, sink Sink, diag Diagnostics) *Interpreter {
	if diag == nil {
		diag = NopDiagnostics{}
	}
	return &Interpreter{
		Root:    root,
		Sink:    sink,
		Diag:    diag,
		regs:    make(map[string]Val),
		imports: make(map[string]*Module),
	}
}

// Now returns the interpreter's current simulated clock value, in
// nanoseconds since the start of execution.
func (in *Interpreter) Now() uint64 { return in.now }

// Run executes stmts in order, stopping (and returning) at the first error.
func (in *Interpreter) Run(stmts []Stmt) error {
	for _, s := range stmts {
		if err := in.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Exec executes a single statement.
func (in *Interpreter) Exec(s Stmt) error {
	switch {
	case s.Import != nil:
		return in.execImport(*s.Import)
	case s.Assign != nil:
		return in.execAssign(*s.Assign)
	case s.Expr != nil:
		return in.execExpr(*s.Expr)
	default:
		return nil
	}
}

func (in *Interpreter) execImport(imp ImportStmt) error {
	in.loc = imp.Loc

	if _, ok := in.imports[imp.Module]; ok {
		in.Diag.Warn(in.loc, "duplicate import of "+imp.Module)
		return nil
	}

	sym, ok := in.Root.Lookup(imp.Module)
	if !ok || sym.Module == nil {
		return errName(ImportError, in.loc, imp.Module)
	}
	in.imports[imp.Module] = sym.Module
	return nil
}

func (in *Interpreter) execAssign(a AssignStmt) error {
	in.loc = a.Loc

	if _, ok := in.regs[a.Target]; ok {
		return errName(MultipleAssignError, in.loc, a.Target)
	}

	v, err := in.Eval(a.Rvalue)
	if err != nil {
		return err
	}
	in.regs[a.Target] = v
	return nil
}

// updateTime advances the simulated clock by ns nanoseconds.
func (in *Interpreter) updateTime(ns uint64) { in.now += ns }

func (in *Interpreter) execExpr(e Expr) error {
	v, err := in.Eval(e)
	if err != nil {
		return err
	}

	switch v.Kind {
	case TNil:
		// nothing to do
	case TPkt:
		pkt := v.Pkt()
		in.updateTime(pkt.BitTime())
		if in.Sink != nil {
			clone := pkt.CloneForSink()
			if err := in.Sink.WritePacket(in.now, clone); err != nil {
				return errWrap(IoError, in.loc, err)
			}
			in.Diag.PacketEmitted(len(clone.FrameBytes()))
		}
	case TPktGen:
		for _, pkt := range v.PktGen() {
			in.updateTime(pkt.BitTime())
			if in.Sink != nil {
				clone := pkt.CloneForSink()
				if err := in.Sink.WritePacket(in.now, clone); err != nil {
					return errWrap(IoError, in.loc, err)
				}
				in.Diag.PacketEmitted(len(clone.FrameBytes()))
			}
		}
	case TTimeJump:
		in.updateTime(v.TimeJumpNs())
	default:
		in.Diag.Warn(in.loc, "discarded value of type "+v.Kind.String())
	}
	return nil
}

func (in *Interpreter) evalExternRef(ref ObjectRef) (Val, error) {
	top, ok := in.imports[ref.Modules[0]]
	if !ok {
		return Val{}, errName(NameError, ref.Loc, "not imported: "+ref.Modules[0])
	}

	for _, c := range ref.Modules[1:] {
		sym, ok := top.Lookup(c)
		if !ok {
			return Val{}, errName(NameError, ref.Loc, "no such submodule "+c)
		}
		if sym.Module == nil {
			return Val{}, errName(TypeError, ref.Loc, c+" is not a module")
		}
		top = sym.Module
	}

	if len(ref.Components) == 0 {
		return Val{}, errName(NameError, ref.Loc, "empty reference")
	}
	sym, ok := top.Lookup(ref.Components[0])
	if !ok {
		return Val{}, errName(NameError, ref.Loc, "no such member "+ref.Components[0])
	}
	if len(ref.Components) > 1 {
		return Val{}, errName(TypeError, ref.Loc, "nested member access is not supported")
	}

	switch {
	case sym.Val != nil:
		return sym.Val.Default(), nil
	case sym.Func != nil:
		return FuncVal(sym.Func), nil
	default:
		return Val{}, errName(TypeError, ref.Loc, ref.Components[0]+" is not a value")
	}
}

func (in *Interpreter) evalLocalRef(ref ObjectRef) (Val, error) {
	if len(ref.Components) > 2 {
		return Val{}, errName(NameError, ref.Loc, "too many components")
	}

	v, ok := in.regs[ref.Components[0]]
	if !ok {
		return Val{}, errName(NameError, ref.Loc, "no such register "+ref.Components[0])
	}
	if len(ref.Components) == 1 {
		return v, nil
	}
	if v.Kind != TObj {
		return Val{}, errName(TypeError, ref.Loc, ref.Components[0]+" has no methods")
	}
	return v.Obj().MethodLookup(ref.Components[1])
}

// EvalObjectRef resolves a name per §4.6.
func (in *Interpreter) EvalObjectRef(ref ObjectRef) (Val, error) {
	if len(ref.Modules) > 0 {
		return in.evalExternRef(ref)
	}
	if len(ref.Components) > 0 {
		return in.evalLocalRef(ref)
	}
	return Val{}, errName(NameError, ref.Loc, "empty object reference")
}

func (in *Interpreter) evalArgs(exprs []ArgExpr) ([]ArgSpec, error) {
	specs := make([]ArgSpec, 0, len(exprs))
	for _, x := range exprs {
		v, err := in.Eval(x.Expr)
		if err != nil {
			return nil, err
		}
		if x.Name != nil {
			specs = append(specs, Named(*x.Name, v))
		} else {
			specs = append(specs, Anon(v))
		}
	}
	return specs, nil
}

func (in *Interpreter) evalCallable(fd *FuncDef, this *Obj, exprs []ArgExpr) (Val, error) {
	specs, err := in.evalArgs(exprs)
	if err != nil {
		return Val{}, err
	}

	args, err := BindArgs(fd, this, specs, in.loc)
	if err != nil {
		return Val{}, err
	}

	ret, err := fd.Exec(args)
	if err != nil {
		return Val{}, errWrap(RuntimeError, in.loc, err)
	}

	if ret.Kind != fd.ReturnType {
		// Invariant violation in stdlib registration, not a user error;
		// the spec calls for an assert here since stdlib is not user
		// defined.
		panic("resynth: " + fd.Name + " returned " + ret.Kind.String() + ", declared " + fd.ReturnType.String())
	}

	return ret, nil
}

// EvalCall resolves and invokes a call expression.
func (in *Interpreter) EvalCall(call CallExpr) (Val, error) {
	callee, err := in.EvalObjectRef(call.Obj)
	if err != nil {
		return Val{}, err
	}

	switch callee.Kind {
	case TFunc:
		return in.evalCallable(callee.Func(), nil, call.Args)
	case TMethod:
		obj, fd := callee.Method()
		return in.evalCallable(fd, obj, call.Args)
	default:
		return Val{}, errName(TypeError, in.loc, "value is not callable")
	}
}

// Eval evaluates an expression, per §4.7.
func (in *Interpreter) Eval(e Expr) (Val, error) {
	switch e.Kind {
	case ExprNil:
		return NilVal(), nil
	case ExprLiteral:
		in.loc = e.Loc
		return e.Literal, nil
	case ExprObjectRef:
		in.loc = e.ObjectRef.Loc
		return in.EvalObjectRef(*e.ObjectRef)
	case ExprCall:
		in.loc = e.Call.Obj.Loc
		return in.EvalCall(*e.Call)
	case ExprSlash:
		a, err := in.Eval(*e.SlashA)
		if err != nil {
			return Val{}, err
		}
		if !a.IsType(TIp4) {
			return Val{}, errName(TypeError, in.loc, "left side of / must be Ip4")
		}
		aLoc := in.loc

		b, err := in.Eval(*e.SlashB)
		if err != nil {
			return Val{}, err
		}
		if !b.IsIntegral() {
			return Val{}, errName(TypeError, in.loc, "right side of / must be an integer")
		}
		in.loc = aLoc

		return Sock4Val(a.Ip4(), uint16(b.U64())), nil
	default:
		return Val{}, errName(RuntimeError, in.loc, "unknown expression kind")
	}
}
