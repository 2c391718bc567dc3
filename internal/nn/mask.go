package nn

import (
	"fmt"

	"github.com/keel-ml/keel/internal/tensor"
)

// signMasks builds two binary masks from the input: the first is 1 where
// input > 0, the second is 1 where input < 0. Elements at exactly zero are
// 0 in both masks, so max(x, 0) and max(-x, 0) both get a zero subgradient
// there.
func signMasks(input *tensor.RawTensor, device tensor.Device) (pos, neg *tensor.RawTensor) {
	pos = newMask(input, device)
	neg = newMask(input, device)

	switch input.DType() {
	case tensor.Float32:
		in, p, n := input.AsFloat32(), pos.AsFloat32(), neg.AsFloat32()
		for i, val := range in {
			if val > 0 {
				p[i] = 1
			} else if val < 0 {
				n[i] = 1
			}
		}
	case tensor.Float64:
		in, p, n := input.AsFloat64(), pos.AsFloat64(), neg.AsFloat64()
		for i, val := range in {
			if val > 0 {
				p[i] = 1
			} else if val < 0 {
				n[i] = 1
			}
		}
	default:
		panic(fmt.Sprintf("nn: unsupported dtype %s (only float32/float64 supported)", input.DType()))
	}

	return pos, neg
}

func newMask(input *tensor.RawTensor, device tensor.Device) *tensor.RawTensor {
	mask, err := tensor.NewRaw(input.Shape(), input.DType(), device)
	if err != nil {
		panic(fmt.Sprintf("nn: failed to create mask: %v", err))
	}
	return mask
}
