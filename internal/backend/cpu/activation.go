package cpu

import (
	"fmt"

	"github.com/keel-ml/keel/internal/tensor"
)

// ReLU applies the element-wise rectifier max(0, x).
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("relu: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		out, in := result.AsFloat32(), x.AsFloat32()
		for i, val := range in {
			if val > 0 {
				out[i] = val
			}
		}
	case tensor.Float64:
		out, in := result.AsFloat64(), x.AsFloat64()
		for i, val := range in {
			if val > 0 {
				out[i] = val
			}
		}
	default:
		panic(fmt.Sprintf("relu: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}
	return result
}
