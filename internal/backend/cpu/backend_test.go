package cpu

import (
	"testing"

	"github.com/keel-ml/keel/internal/tensor"
)

// Helper to check float32 slices are equal within epsilon.
func float32SliceEqual(a, b []float32) bool {
	const epsilon = 1e-6
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > epsilon {
			return false
		}
	}
	return true
}

// fromFloat32 builds a raw tensor from values.
func fromFloat32(t *testing.T, shape tensor.Shape, values []float32) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(raw.AsFloat32(), values)
	return raw
}

func TestCPUBackend_New(t *testing.T) {
	backend := New()
	if backend == nil {
		t.Fatal("New() returned nil")
	}
	if backend.Name() != "CPU" {
		t.Errorf("Expected name 'CPU', got '%s'", backend.Name())
	}
	if backend.Device() != tensor.CPU {
		t.Errorf("Expected device CPU, got %v", backend.Device())
	}
}

func TestCPUBackend_Add(t *testing.T) {
	backend := New()

	a := fromFloat32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	b := fromFloat32(t, tensor.Shape{2, 3}, []float32{10, 11, 12, 13, 14, 15})

	result := backend.Add(a, b)

	expected := []float32{11, 13, 15, 17, 19, 21}
	if !float32SliceEqual(result.AsFloat32(), expected) {
		t.Errorf("Add failed: got %v, expected %v", result.AsFloat32(), expected)
	}

	// Inputs must not be mutated.
	if !float32SliceEqual(a.AsFloat32(), []float32{1, 2, 3, 4, 5, 6}) {
		t.Error("Add mutated its input")
	}
}

func TestCPUBackend_Sub(t *testing.T) {
	backend := New()

	a := fromFloat32(t, tensor.Shape{3}, []float32{5, 0, -3})
	b := fromFloat32(t, tensor.Shape{3}, []float32{1, 2, -4})

	result := backend.Sub(a, b)

	expected := []float32{4, -2, 1}
	if !float32SliceEqual(result.AsFloat32(), expected) {
		t.Errorf("Sub failed: got %v, expected %v", result.AsFloat32(), expected)
	}
}

func TestCPUBackend_Mul(t *testing.T) {
	backend := New()

	a := fromFloat32(t, tensor.Shape{3}, []float32{2, -3, 0})
	b := fromFloat32(t, tensor.Shape{3}, []float32{4, 5, 6})

	result := backend.Mul(a, b)

	expected := []float32{8, -15, 0}
	if !float32SliceEqual(result.AsFloat32(), expected) {
		t.Errorf("Mul failed: got %v, expected %v", result.AsFloat32(), expected)
	}
}

func TestCPUBackend_MulScalar(t *testing.T) {
	backend := New()

	x := fromFloat32(t, tensor.Shape{3}, []float32{1, -2, 3})
	result := backend.MulScalar(x, -1.0)

	expected := []float32{-1, 2, -3}
	if !float32SliceEqual(result.AsFloat32(), expected) {
		t.Errorf("MulScalar failed: got %v, expected %v", result.AsFloat32(), expected)
	}
	if !float32SliceEqual(x.AsFloat32(), []float32{1, -2, 3}) {
		t.Error("MulScalar mutated its input")
	}
}

func TestCPUBackend_MulScalar_Float64(t *testing.T) {
	backend := New()

	x, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float64, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(x.AsFloat64(), []float64{1.5, -0.5})

	result := backend.MulScalar(x, 2.0)

	got := result.AsFloat64()
	if got[0] != 3.0 || got[1] != -1.0 {
		t.Errorf("MulScalar failed: got %v", got)
	}
}

func TestCPUBackend_ReLU(t *testing.T) {
	backend := New()

	x := fromFloat32(t, tensor.Shape{5}, []float32{-2, -0.5, 0, 0.5, 2})
	result := backend.ReLU(x)

	expected := []float32{0, 0, 0, 0.5, 2}
	if !float32SliceEqual(result.AsFloat32(), expected) {
		t.Errorf("ReLU failed: got %v, expected %v", result.AsFloat32(), expected)
	}
}

func TestCPUBackend_Add_ShapeMismatch(t *testing.T) {
	backend := New()

	a := fromFloat32(t, tensor.Shape{2}, []float32{1, 2})
	b := fromFloat32(t, tensor.Shape{3}, []float32{1, 2, 3})

	defer func() {
		if recover() == nil {
			t.Error("Add with mismatched shapes did not panic")
		}
	}()
	backend.Add(a, b)
}
