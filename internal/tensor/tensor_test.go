package tensor

import (
	"testing"
)

// fakeBackend is a minimal Backend for tensor tests; tensor creation and
// element access never dispatch compute ops.
type fakeBackend struct{}

func (fakeBackend) Add(a, b *RawTensor) *RawTensor               { panic("not implemented") }
func (fakeBackend) Sub(a, b *RawTensor) *RawTensor               { panic("not implemented") }
func (fakeBackend) Mul(a, b *RawTensor) *RawTensor               { panic("not implemented") }
func (fakeBackend) MulScalar(x *RawTensor, s any) *RawTensor     { panic("not implemented") }
func (fakeBackend) ReLU(x *RawTensor) *RawTensor                 { panic("not implemented") }
func (fakeBackend) Cat(ts []*RawTensor, dim int) *RawTensor      { panic("not implemented") }
func (fakeBackend) Chunk(x *RawTensor, n, dim int) []*RawTensor  { panic("not implemented") }
func (fakeBackend) Name() string                                 { return "fake" }
func (fakeBackend) Device() Device                               { return CPU }

func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	x, err := FromSlice(data, Shape{2, 3}, fakeBackend{})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if !x.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape = %v, want [2 3]", x.Shape())
	}
	if x.DType() != Float32 {
		t.Errorf("DType = %s, want float32", x.DType())
	}
	if x.At(1, 2) != 6 {
		t.Errorf("At(1, 2) = %v, want 6", x.At(1, 2))
	}

	// The slice is copied, not shared.
	data[0] = 99
	if x.At(0, 0) != 1 {
		t.Error("FromSlice shares memory with the source slice")
	}
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 3}, fakeBackend{})
	if err == nil {
		t.Fatal("expected error for mismatched length")
	}
}

func TestTensor_SetAt(t *testing.T) {
	x := Zeros[float64](Shape{3, 2}, fakeBackend{})
	x.Set(4.5, 2, 1)
	if x.At(2, 1) != 4.5 {
		t.Errorf("At(2, 1) = %v, want 4.5", x.At(2, 1))
	}
	if x.At(0, 0) != 0 {
		t.Errorf("At(0, 0) = %v, want 0", x.At(0, 0))
	}
}

func TestTensor_Clone(t *testing.T) {
	x, err := FromSlice([]float32{1, 2, 3}, Shape{3}, fakeBackend{})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	y := x.Clone()
	y.Set(42, 0)

	if x.At(0) != 1 {
		t.Error("Clone shares memory with the original")
	}
}

func TestCreation(t *testing.T) {
	ones := Ones[float32](Shape{4}, fakeBackend{})
	for i, v := range ones.Data() {
		if v != 1 {
			t.Fatalf("Ones[%d] = %v, want 1", i, v)
		}
	}

	full := Full[uint8](Shape{2, 2}, 7, fakeBackend{})
	for i, v := range full.Data() {
		if v != 7 {
			t.Fatalf("Full[%d] = %v, want 7", i, v)
		}
	}

	randn := Randn[float64](Shape{8}, fakeBackend{})
	if randn.NumElements() != 8 {
		t.Errorf("Randn NumElements = %d, want 8", randn.NumElements())
	}
}

func TestRawTensor_DTypeViews(t *testing.T) {
	raw, err := NewRaw(Shape{4}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	raw.AsFloat32()[2] = 3.5
	if raw.AsFloat32()[2] != 3.5 {
		t.Error("AsFloat32 view did not persist write")
	}

	defer func() {
		if recover() == nil {
			t.Error("AsFloat64 on a float32 tensor did not panic")
		}
	}()
	raw.AsFloat64()
}
