// Package cpu implements the CPU backend with pure Go kernels.
package cpu

import (
	"fmt"

	"github.com/keel-ml/keel/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
// All operations allocate fresh result tensors; inputs are never mutated.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition. Shapes must match.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newBinaryResult("add", a, b)
	switch a.DType() {
	case tensor.Float32:
		out, x, y := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
		for i := range out {
			out[i] = x[i] + y[i]
		}
	case tensor.Float64:
		out, x, y := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		for i := range out {
			out[i] = x[i] + y[i]
		}
	default:
		panic(fmt.Sprintf("add: unsupported dtype %s (only float32/float64 supported)", a.DType()))
	}
	return result
}

// Sub performs element-wise subtraction. Shapes must match.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newBinaryResult("sub", a, b)
	switch a.DType() {
	case tensor.Float32:
		out, x, y := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
		for i := range out {
			out[i] = x[i] - y[i]
		}
	case tensor.Float64:
		out, x, y := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		for i := range out {
			out[i] = x[i] - y[i]
		}
	default:
		panic(fmt.Sprintf("sub: unsupported dtype %s (only float32/float64 supported)", a.DType()))
	}
	return result
}

// Mul performs element-wise multiplication. Shapes must match.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newBinaryResult("mul", a, b)
	switch a.DType() {
	case tensor.Float32:
		out, x, y := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
		for i := range out {
			out[i] = x[i] * y[i]
		}
	case tensor.Float64:
		out, x, y := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		for i := range out {
			out[i] = x[i] * y[i]
		}
	default:
		panic(fmt.Sprintf("mul: unsupported dtype %s (only float32/float64 supported)", a.DType()))
	}
	return result
}

// MulScalar multiplies every element by a scalar.
// The scalar may be any Go numeric type convertible to the tensor's dtype.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("mulscalar: failed to create result tensor: %v", err))
	}

	s := toFloat64(scalar)
	switch x.DType() {
	case tensor.Float32:
		out, in := result.AsFloat32(), x.AsFloat32()
		sf := float32(s)
		for i := range out {
			out[i] = in[i] * sf
		}
	case tensor.Float64:
		out, in := result.AsFloat64(), x.AsFloat64()
		for i := range out {
			out[i] = in[i] * s
		}
	default:
		panic(fmt.Sprintf("mulscalar: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}
	return result
}

// newBinaryResult validates operand shapes and dtypes and allocates the result.
func (cpu *CPUBackend) newBinaryResult(op string, a, b *tensor.RawTensor) *tensor.RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch: %v vs %v", op, a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	result, err := tensor.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}

// toFloat64 converts a scalar of any supported numeric type to float64.
func toFloat64(scalar any) float64 {
	switch v := scalar.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case int:
		return float64(v)
	case uint8:
		return float64(v)
	default:
		panic(fmt.Sprintf("unsupported scalar type %T", scalar))
	}
}
