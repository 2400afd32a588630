package resynth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFuncDef() *FuncDef {
	return NewFuncDef("f", TU32, []ArgDesc{
		{Name: "a", Decl: Positional(TU32)},
		{Name: "b", Decl: Positional(TU32)},
		{Name: "c", Decl: Optional(ConcreteDefault(U32Val(100)))},
		{Name: "d", Decl: Optional(ConcreteDefault(U32Val(200)))},
	}, TVoid, func(a Args) (Val, error) {
		return NilVal(), nil
	})
}

// Property 7, P-FIRST: positionals fill in declared order before any named
// argument is applied.
func TestBindArgsPositionalsFirst(t *testing.T) {
	fd := testFuncDef()
	args, err := BindArgs(fd, nil, []ArgSpec{Anon(U32Val(1)), Anon(U32Val(2))}, Loc{})
	require.NoError(t, err)
	assert.Equal(t, []Val{U32Val(1), U32Val(2), U32Val(100), U32Val(200)}, args.Positionals)
}

// P-NAME-OPTIONAL: an optional parameter can be supplied by name, skipping
// earlier optionals, which then take their declared default.
func TestBindArgsNamedOptional(t *testing.T) {
	fd := testFuncDef()
	args, err := BindArgs(fd, nil, []ArgSpec{
		Anon(U32Val(1)), Anon(U32Val(2)), Named("d", U32Val(9)),
	}, Loc{})
	require.NoError(t, err)
	assert.Equal(t, uint32(100), args.Positionals[2].U32())
	assert.Equal(t, uint32(9), args.Positionals[3].U32())
}

// ANON-FIRST: a named argument may not precede an anonymous one.
func TestBindArgsAnonMustPrecedeNamed(t *testing.T) {
	fd := testFuncDef()
	_, err := BindArgs(fd, nil, []ArgSpec{
		Named("a", U32Val(1)), Anon(U32Val(2)),
	}, Loc{})
	assert.Error(t, err)
}

// COLLECT-NAME-OPTS: a function with a variadic tail still accepts named
// optionals before the tail begins.
func TestBindArgsCollectWithNamedOptional(t *testing.T) {
	fd := NewFuncDef("g", TU32, []ArgDesc{
		{Name: "a", Decl: Positional(TU32)},
		{Name: "b", Decl: Optional(ConcreteDefault(U32Val(5)))},
	}, TStr, func(a Args) (Val, error) { return NilVal(), nil })

	args, err := BindArgs(fd, nil, []ArgSpec{
		Anon(U32Val(1)), Named("b", U32Val(2)), Anon(StrVal([]byte("x"))),
	}, Loc{})
	require.NoError(t, err)
	assert.Equal(t, uint32(2), args.Positionals[1].U32())
	require.Len(t, args.Variadic, 1)
	assert.Equal(t, []byte("x"), args.Variadic[0].Str())
}

// NOCOLLECT-ANON-OPTS: a non-collecting function rejects more anonymous
// arguments than it has declared parameters.
func TestBindArgsTooManyAnonWithoutCollect(t *testing.T) {
	fd := testFuncDef()
	_, err := BindArgs(fd, nil, []ArgSpec{
		Anon(U32Val(1)), Anon(U32Val(2)), Anon(U32Val(3)), Anon(U32Val(4)), Anon(U32Val(5)),
	}, Loc{})
	assert.Error(t, err)
}

// COLLECT-AFTER-NAMED: once the variadic tail has begun, a named argument
// is rejected.
func TestBindArgsNamedAfterVariadicRejected(t *testing.T) {
	fd := NewFuncDef("h", TU32, []ArgDesc{
		{Name: "a", Decl: Positional(TU32)},
	}, TStr, func(a Args) (Val, error) { return NilVal(), nil })

	_, err := BindArgs(fd, nil, []ArgSpec{
		Anon(U32Val(1)), Anon(StrVal([]byte("x"))), Named("a", U32Val(2)),
	}, Loc{})
	assert.Error(t, err)
}

func TestBindArgsMissingRequired(t *testing.T) {
	fd := testFuncDef()
	_, err := BindArgs(fd, nil, []ArgSpec{Anon(U32Val(1))}, Loc{})
	assert.Error(t, err)
}

func TestBindArgsWrongType(t *testing.T) {
	fd := testFuncDef()
	_, err := BindArgs(fd, nil, []ArgSpec{Anon(StrVal([]byte("x"))), Anon(U32Val(2))}, Loc{})
	assert.Error(t, err)
}

func TestArgsJoinExtra(t *testing.T) {
	a := Args{Variadic: []Val{StrVal([]byte("a")), StrVal([]byte("b")), StrVal([]byte("c"))}}
	assert.Equal(t, []byte("a,b,c"), a.JoinExtra([]byte(",")))
}
