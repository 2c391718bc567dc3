package nn

import (
	"fmt"

	"github.com/keel-ml/keel/internal/tensor"
)

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
//
// Example:
//
//	relu := nn.NewReLU[float32, Backend]()
//	output := relu.Forward(input)  // All negative values become 0
type ReLU[T tensor.Float, B tensor.Backend] struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU[T tensor.Float, B tensor.Backend]() *ReLU[T, B] {
	return &ReLU[T, B]{}
}

// Forward applies ReLU activation: f(x) = max(0, x).
func (r *ReLU[T, B]) Forward(input *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	backend := input.Backend()
	return tensor.New[T, B](backend.ReLU(input.Raw()), backend)
}

// Backward computes the input gradient given the original input and the
// gradient flowing back from the output. The upstream gradient is masked
// by the sign of the input: positions where input <= 0 contribute zero.
//
// Returns ErrShapeMismatch if gradOutput does not match the input shape.
func (r *ReLU[T, B]) Backward(input, gradOutput *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if !input.Shape().Equal(gradOutput.Shape()) {
		return nil, fmt.Errorf("relu backward: gradient shape %v does not match input shape %v: %w",
			gradOutput.Shape(), input.Shape(), ErrShapeMismatch)
	}

	backend := input.Backend()
	posMask, _ := signMasks(input.Raw(), backend.Device())
	grad := backend.Mul(gradOutput.Raw(), posMask)
	return tensor.New[T, B](grad, backend), nil
}

// Parameters returns an empty slice (ReLU has no trainable parameters).
func (r *ReLU[T, B]) Parameters() []*Parameter[B] {
	return nil
}

// StateDict returns an empty state dict (ReLU is stateless).
func (r *ReLU[T, B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{}
}

// LoadStateDict is a no-op for the stateless ReLU.
func (r *ReLU[T, B]) LoadStateDict(map[string]*tensor.RawTensor) error {
	return nil
}
