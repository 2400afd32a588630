package resynth

import "bytes"

// ArgDecl is one parameter declaration: either a required Positional(type)
// or an Optional(default), per §3's FuncDef/ArgDesc shape.
type ArgDecl struct {
	positional bool
	typ        ValType // valid when positional
	def        ValDef  // valid when !positional
}

// Positional declares a required positional parameter of type t.
func Positional(t ValType) ArgDecl { return ArgDecl{positional: true, typ: t} }

// Optional declares an optional (named-or-positional-by-name) parameter
// with default def.
func Optional(def ValDef) ArgDecl { return ArgDecl{positional: false, def: def} }

func (d ArgDecl) IsPositional() bool { return d.positional }

// ArgDesc names one parameter of a FuncDef.
type ArgDesc struct {
	Name string
	Decl ArgDecl
}

// FuncDef is the signature-plus-body of a callable stdlib function or
// method, matching §3/§4.5 (C7).
type FuncDef struct {
	Name        string
	ReturnType  ValType
	Params      []ArgDesc
	MinArgs     int
	CollectType ValType // TVoid means the function takes no variadic tail
	Exec        func(Args) (Val, error)

	paramIndex map[string]int
}

// NewFuncDef validates the declaration invariant (all positionals precede
// all optionals; MinArgs equals the positional count) and returns a
// ready-to-use FuncDef.
func NewFuncDef(name string, ret ValType, params []ArgDesc, collect ValType, exec func(Args) (Val, error)) *FuncDef {
	seenOptional := false
	minArgs := 0
	idx := make(map[string]int, len(params))
	for i, p := range params {
		if p.Decl.IsPositional() {
			if seenOptional {
				panic("resynth: positional parameter after optional in " + name)
			}
			minArgs++
		} else {
			seenOptional = true
		}
		idx[p.Name] = i
	}
	return &FuncDef{
		Name:        name,
		ReturnType:  ret,
		Params:      params,
		MinArgs:     minArgs,
		CollectType: collect,
		Exec:        exec,
		paramIndex:  idx,
	}
}

// ParamIndex resolves a parameter name to its index, if declared.
func (f *FuncDef) ParamIndex(name string) (int, bool) {
	i, ok := f.paramIndex[name]
	return i, ok
}

// IsCollect reports whether the function accepts a variadic tail.
func (f *FuncDef) IsCollect() bool { return f.CollectType != TVoid }

// ArgSpec is one argument as supplied at a call site: an optional name and
// an already-evaluated value.
type ArgSpec struct {
	Name *string
	Val  Val
}

// Anon builds an unnamed ArgSpec.
func Anon(v Val) ArgSpec { return ArgSpec{Val: v} }

// Named builds a named ArgSpec.
func Named(name string, v Val) ArgSpec { return ArgSpec{Name: &name, Val: v} }

func (a ArgSpec) isAnon() bool { return a.Name == nil }

// Args is the bound, type-checked argument record handed to a FuncDef's
// Exec, per §4.5: an optional bound receiver, ordered positionals, and an
// ordered variadic tail.
type Args struct {
	This        *Obj
	Positionals []Val
	Variadic    []Val

	next int
}

// Next pops the next positional value. It panics if called more times than
// there are positionals — a stdlib function body is expected to call it
// exactly len(Positionals) times, matching the Rust original's args.next().
func (a *Args) Next() Val {
	v := a.Positionals[a.next]
	a.next++
	return v
}

// JoinExtra concatenates all variadic Str values with sep into one buffer,
// implementing Args::join_extra.
func (a *Args) JoinExtra(sep []byte) []byte {
	var buf bytes.Buffer
	for i, v := range a.Variadic {
		if i > 0 {
			buf.Write(sep)
		}
		buf.Write(v.Str())
	}
	return buf.Bytes()
}

// BindArgs classifies and binds a call's ArgSpecs against fd's declared
// parameters, implementing the three-phase walk of §4.5 (Anon -> Named ->
// Collect), then fills unsupplied optionals from their defaults and
// type-checks every (ArgDesc, Val) pair plus the variadic tail.
func BindArgs(fd *FuncDef, this *Obj, specs []ArgSpec, loc Loc) (Args, error) {
	type namedArg struct {
		name string
		val  Val
	}

	var anon []Val
	var named []namedArg
	var extra []Val

	const (
		stAnon = iota
		stNamed
		stExtra
		stUnexpected
	)
	state := stAnon

	for _, spec := range specs {
		for {
			switch state {
			case stAnon:
				if !spec.isAnon() {
					state = stNamed
					continue
				}
				if len(anon) >= fd.MinArgs && fd.IsCollect() {
					state = stExtra
					continue
				}
				anon = append(anon, spec.Val)
			case stNamed:
				if spec.isAnon() {
					state = stExtra
					continue
				}
				named = append(named, namedArg{name: *spec.Name, val: spec.Val})
			case stExtra:
				if !fd.IsCollect() {
					return Args{}, errName(TypeError, loc, "too many arguments to "+fd.Name)
				}
				if !spec.isAnon() {
					state = stUnexpected
					continue
				}
				extra = append(extra, spec.Val)
			case stUnexpected:
				return Args{}, errName(TypeError, loc, "named argument after variadic tail in "+fd.Name)
			}
			break
		}
	}

	nSpecified := len(anon) + len(named)
	if nSpecified < fd.MinArgs {
		return Args{}, errName(TypeError, loc, "not enough arguments to "+fd.Name)
	}
	if len(anon) > len(fd.Params) {
		return Args{}, errName(TypeError, loc, "too many positional arguments to "+fd.Name)
	}

	// Positionals: anon fills the first len(anon) positional slots in
	// declaration order; named specs may additionally target an
	// unfilled positional or optional by name.
	bound := make([]Val, len(fd.Params))
	filled := make([]bool, len(fd.Params))
	for i, v := range anon {
		bound[i] = v
		filled[i] = true
	}

	seenNames := make(map[string]bool, len(named))
	for _, na := range named {
		if seenNames[na.name] {
			return Args{}, errName(TypeError, loc, "duplicate named argument "+na.name)
		}
		seenNames[na.name] = true

		idx, ok := fd.ParamIndex(na.name)
		if !ok {
			return Args{}, errName(TypeError, loc, "unknown argument name "+na.name)
		}
		if filled[idx] {
			return Args{}, errName(TypeError, loc, "argument "+na.name+" already supplied positionally")
		}
		bound[idx] = na.val
		filled[idx] = true
	}

	for i, p := range fd.Params {
		if filled[i] {
			continue
		}
		if p.Decl.IsPositional() {
			return Args{}, errName(TypeError, loc, "missing required argument "+p.Name)
		}
		bound[i] = p.Decl.def.Default()
	}

	// Final type-check walk.
	for i, p := range fd.Params {
		v := bound[i]
		ok := false
		if p.Decl.IsPositional() {
			ok = v.CompatibleWith(p.Decl.typ)
		} else {
			ok = p.Decl.def.ArgCompatible(v)
		}
		if !ok {
			return Args{}, errName(TypeError, loc, "argument "+p.Name+" has wrong type in "+fd.Name)
		}
	}
	if fd.IsCollect() {
		for _, v := range extra {
			if !v.CompatibleWith(fd.CollectType) {
				return Args{}, errName(TypeError, loc, "variadic argument of wrong type in "+fd.Name)
			}
		}
	}

	return Args{This: this, Positionals: bound, Variadic: extra}, nil
}
