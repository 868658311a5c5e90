package codetree

import (
	"testing"

	"github.com/Zero5620/Kano/internal/types"
)

func TestLayoutProcedureFrameNoReturnNoArgs(t *testing.T) {
	proc := &types.Type{Kind: types.Procedure}
	returnOffset, hasReturn, argOffsets, frameSize := LayoutProcedureFrame(proc)
	if hasReturn {
		t.Error("expected hasReturn = false for a void procedure")
	}
	if returnOffset != 0 {
		t.Errorf("returnOffset = %d, want 0", returnOffset)
	}
	if len(argOffsets) != 0 {
		t.Errorf("argOffsets = %v, want empty", argOffsets)
	}
	if frameSize != 0 {
		t.Errorf("frameSize = %d, want 0", frameSize)
	}
}

func TestLayoutProcedureFrameReturnThenArguments(t *testing.T) {
	// proc (byte, int) -> int: the 8-byte int return slot fills [0,8), then
	// the 1-byte argument at 8 pads to 16 before the 8-byte argument.
	proc := &types.Type{
		Kind:       types.Procedure,
		ReturnType: types.IntType,
		Arguments:  []*types.Type{types.ByteType, types.IntType},
	}
	returnOffset, hasReturn, argOffsets, frameSize := LayoutProcedureFrame(proc)
	if !hasReturn || returnOffset != 0 {
		t.Fatalf("hasReturn=%v returnOffset=%d, want true/0", hasReturn, returnOffset)
	}
	wantOffsets := []uint32{8, 16}
	if len(argOffsets) != len(wantOffsets) {
		t.Fatalf("argOffsets = %v, want %v", argOffsets, wantOffsets)
	}
	for i, want := range wantOffsets {
		if argOffsets[i] != want {
			t.Errorf("argOffsets[%d] = %d, want %d", i, argOffsets[i], want)
		}
	}
	if frameSize != 24 {
		t.Errorf("frameSize = %d, want 24", frameSize)
	}
}

func TestLayoutVariadicPointerNoDeclaredArgs(t *testing.T) {
	proc := &types.Type{Kind: types.Procedure, Variadic: true}
	pointerOffset, tagAreaOffset := LayoutVariadicPointer(proc)
	if pointerOffset != 0 {
		t.Errorf("pointerOffset = %d, want 0", pointerOffset)
	}
	if tagAreaOffset != types.PointerSize {
		t.Errorf("tagAreaOffset = %d, want %d", tagAreaOffset, types.PointerSize)
	}
}

func TestLayoutVariadicPointerAfterArguments(t *testing.T) {
	proc := &types.Type{
		Kind:      types.Procedure,
		Arguments: []*types.Type{types.ByteType},
		Variadic:  true,
	}
	pointerOffset, tagAreaOffset := LayoutVariadicPointer(proc)
	if pointerOffset != 8 {
		t.Errorf("pointerOffset = %d, want 8 (aligned past the 1-byte argument)", pointerOffset)
	}
	if tagAreaOffset != 16 {
		t.Errorf("tagAreaOffset = %d, want 16", tagAreaOffset)
	}
}
