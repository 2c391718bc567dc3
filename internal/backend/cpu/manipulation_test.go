package cpu

import (
	"testing"

	"github.com/keel-ml/keel/internal/tensor"
)

func TestCPUBackend_Cat_Dim0(t *testing.T) {
	backend := New()

	// [[1 2 3] [4 5 6]] cat [[7 8 9]] along dim 0 -> [[1 2 3] [4 5 6] [7 8 9]]
	a := fromFloat32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	b := fromFloat32(t, tensor.Shape{1, 3}, []float32{7, 8, 9})

	result := backend.Cat([]*tensor.RawTensor{a, b}, 0)

	if !result.Shape().Equal(tensor.Shape{3, 3}) {
		t.Fatalf("Cat shape = %v, want [3 3]", result.Shape())
	}
	expected := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if !float32SliceEqual(result.AsFloat32(), expected) {
		t.Errorf("Cat failed: got %v, expected %v", result.AsFloat32(), expected)
	}
}

func TestCPUBackend_Cat_Dim1(t *testing.T) {
	backend := New()

	// [[1 2] [3 4]] cat [[5] [6]] along dim 1 -> [[1 2 5] [3 4 6]]
	a := fromFloat32(t, tensor.Shape{2, 2}, []float32{1, 2, 3, 4})
	b := fromFloat32(t, tensor.Shape{2, 1}, []float32{5, 6})

	result := backend.Cat([]*tensor.RawTensor{a, b}, 1)

	if !result.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("Cat shape = %v, want [2 3]", result.Shape())
	}
	expected := []float32{1, 2, 5, 3, 4, 6}
	if !float32SliceEqual(result.AsFloat32(), expected) {
		t.Errorf("Cat failed: got %v, expected %v", result.AsFloat32(), expected)
	}
}

func TestCPUBackend_Cat_NegativeDim(t *testing.T) {
	backend := New()

	a := fromFloat32(t, tensor.Shape{2, 1}, []float32{1, 2})
	b := fromFloat32(t, tensor.Shape{2, 1}, []float32{3, 4})

	result := backend.Cat([]*tensor.RawTensor{a, b}, -1)

	if !result.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("Cat shape = %v, want [2 2]", result.Shape())
	}
	expected := []float32{1, 3, 2, 4}
	if !float32SliceEqual(result.AsFloat32(), expected) {
		t.Errorf("Cat failed: got %v, expected %v", result.AsFloat32(), expected)
	}
}

func TestCPUBackend_Cat_Uint8(t *testing.T) {
	backend := New()

	a, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Uint8, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(a.AsUint8(), []uint8{1, 2, 3, 4})

	b, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Uint8, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(b.AsUint8(), []uint8{5, 6, 7, 8})

	result := backend.Cat([]*tensor.RawTensor{a, b}, 0)

	got := result.AsUint8()
	expected := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("Cat uint8 failed: got %v, expected %v", got, expected)
		}
	}
}

func TestCPUBackend_Chunk(t *testing.T) {
	backend := New()

	// [6, 2] split into 2 along dim 0 -> two [3, 2] halves.
	x := fromFloat32(t, tensor.Shape{6, 2},
		[]float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})

	chunks := backend.Chunk(x, 2, 0)

	if len(chunks) != 2 {
		t.Fatalf("Chunk returned %d tensors, want 2", len(chunks))
	}
	for _, c := range chunks {
		if !c.Shape().Equal(tensor.Shape{3, 2}) {
			t.Fatalf("Chunk shape = %v, want [3 2]", c.Shape())
		}
	}
	if !float32SliceEqual(chunks[0].AsFloat32(), []float32{1, 2, 3, 4, 5, 6}) {
		t.Errorf("first half = %v", chunks[0].AsFloat32())
	}
	if !float32SliceEqual(chunks[1].AsFloat32(), []float32{7, 8, 9, 10, 11, 12}) {
		t.Errorf("second half = %v", chunks[1].AsFloat32())
	}
}

func TestCPUBackend_Chunk_Dim1(t *testing.T) {
	backend := New()

	x := fromFloat32(t, tensor.Shape{2, 4}, []float32{1, 2, 3, 4, 5, 6, 7, 8})

	chunks := backend.Chunk(x, 2, 1)

	if !float32SliceEqual(chunks[0].AsFloat32(), []float32{1, 2, 5, 6}) {
		t.Errorf("first half = %v", chunks[0].AsFloat32())
	}
	if !float32SliceEqual(chunks[1].AsFloat32(), []float32{3, 4, 7, 8}) {
		t.Errorf("second half = %v", chunks[1].AsFloat32())
	}
}

func TestCPUBackend_ChunkCat_RoundTrip(t *testing.T) {
	backend := New()

	x := fromFloat32(t, tensor.Shape{4, 3},
		[]float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})

	back := backend.Cat(backend.Chunk(x, 2, 0), 0)

	if !float32SliceEqual(back.AsFloat32(), x.AsFloat32()) {
		t.Errorf("Cat(Chunk(x)) = %v, want %v", back.AsFloat32(), x.AsFloat32())
	}
}

func TestCPUBackend_Chunk_NotDivisible(t *testing.T) {
	backend := New()

	x := fromFloat32(t, tensor.Shape{5}, []float32{1, 2, 3, 4, 5})

	defer func() {
		if recover() == nil {
			t.Error("Chunk with non-divisible dimension did not panic")
		}
	}()
	backend.Chunk(x, 2, 0)
}
