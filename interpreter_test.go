package resynth_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resynth "github.com/rapid7/resynth-go"
	"github.com/rapid7/resynth-go/internal/mocks"
	"github.com/rapid7/resynth-go/stdlib"
)

type capturedWrite struct {
	ts    uint64
	frame []byte
}

type recordingSink struct {
	writes []capturedWrite
}

func (s *recordingSink) WritePacket(ts uint64, p resynth.PacketSource) error {
	s.writes = append(s.writes, capturedWrite{ts: ts, frame: append([]byte(nil), p.FrameBytes()...)})
	return nil
}

func unicastCall(srcIP, dstIP [4]byte, srcPort, dstPort uint16, payload string) resynth.Expr {
	lit := func(v resynth.Val) resynth.ArgExpr {
		return resynth.ArgExpr{Expr: resynth.Expr{Kind: resynth.ExprLiteral, Literal: v}}
	}
	return resynth.Expr{
		Kind: resynth.ExprCall,
		Call: &resynth.CallExpr{
			Obj: resynth.ObjectRef{Modules: []string{"udp"}, Components: []string{"unicast"}},
			Args: []resynth.ArgExpr{
				lit(resynth.Sock4Val(srcIP, srcPort)),
				lit(resynth.Sock4Val(dstIP, dstPort)),
				lit(resynth.StrVal([]byte(payload))),
			},
		},
	}
}

// E6: the simulated clock advances by 8*(frame length + 24) ns for each
// packet emitted, cumulatively, in program order.
func TestInterpreterClockAdvancesPerEmittedPacket(t *testing.T) {
	sink := &recordingSink{}
	in := resynth.NewInterpreter(stdlib.Root, sink, nil)

	stmts := []resynth.Stmt{
		{Import: &resynth.ImportStmt{Module: "udp"}},
		{Expr: ptr(unicastCall([4]byte{10, 0, 0, 1}, [4]byte{10, 0, 0, 2}, 1111, 53, "hello"))},
		{Expr: ptr(unicastCall([4]byte{10, 0, 0, 1}, [4]byte{10, 0, 0, 2}, 1111, 53, "a much longer second payload to change the frame length"))},
	}

	require.NoError(t, in.Run(stmts))
	require.Len(t, sink.writes, 2)

	expected1 := uint64(8 * (len(sink.writes[0].frame) + 24))
	expected2 := expected1 + uint64(8*(len(sink.writes[1].frame)+24))

	assert.Equal(t, expected1, sink.writes[0].ts)
	assert.Equal(t, expected2, sink.writes[1].ts)
	assert.Equal(t, expected2, in.Now())
}

// A single emitted packet reaches Sink.WritePacket exactly once, with the
// advanced clock value, via a mocked Sink double.
func TestInterpreterWritesToSinkOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := mocks.NewMockSink(ctrl)
	sink.EXPECT().WritePacket(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	in := resynth.NewInterpreter(stdlib.Root, sink, nil)
	stmts := []resynth.Stmt{
		{Import: &resynth.ImportStmt{Module: "udp"}},
		{Expr: ptr(unicastCall([4]byte{10, 0, 0, 1}, [4]byte{10, 0, 0, 2}, 1111, 53, "hi"))},
	}
	require.NoError(t, in.Run(stmts))
}

func TestInterpreterImportUnknownModule(t *testing.T) {
	in := resynth.NewInterpreter(stdlib.Root, &recordingSink{}, nil)
	err := in.Run([]resynth.Stmt{{Import: &resynth.ImportStmt{Module: "nosuchmodule"}}})
	assert.Error(t, err)
}

func TestInterpreterDuplicateAssignRejected(t *testing.T) {
	in := resynth.NewInterpreter(stdlib.Root, &recordingSink{}, nil)
	lit := resynth.Expr{Kind: resynth.ExprLiteral, Literal: resynth.U32Val(1)}
	stmts := []resynth.Stmt{
		{Assign: &resynth.AssignStmt{Target: "x", Rvalue: lit}},
		{Assign: &resynth.AssignStmt{Target: "x", Rvalue: lit}},
	}
	assert.Error(t, in.Run(stmts))
}

func ptr(e resynth.Expr) *resynth.Expr { return &e }
