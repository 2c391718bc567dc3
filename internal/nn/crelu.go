package nn

import (
	"fmt"

	"github.com/keel-ml/keel/internal/tensor"
)

// CReLU is a Concatenated ReLU activation module.
//
// A concatenated ReLU has two outputs, one ReLU and one negative ReLU,
// stacked along the feature axis (dim 0): for input x it produces
// [max(x, 0); max(-x, 0)]. Because it has two outputs, CReLU doubles the
// feature dimension; the batch dimension is unchanged.
//
// Backward pass:
//
//	gradInput = gyPos * [x > 0] - gyNeg * [x < 0]
//
// where gyPos and gyNeg are the positive-half and negative-half blocks of
// the upstream gradient. The negative branch is subtracted because
// d(max(-x, 0))/dx = -1 for x < 0. At x == 0 both branches sit on the flat
// region of max, so the subgradient is 0.
//
// Reference: Shang et al., "Understanding and Improving Convolutional
// Neural Networks via Concatenated Rectified Linear Units", ICML 2016.
// https://arxiv.org/abs/1603.05201
type CReLU[T tensor.Float, B tensor.Backend] struct{}

// NewCReLU creates a new CReLU activation module.
func NewCReLU[T tensor.Float, B tensor.Backend]() *CReLU[T, B] {
	return &CReLU[T, B]{}
}

// Forward computes [max(x, 0); max(-x, 0)], concatenated along dim 0.
// For input shape [f, batch...] the output shape is [2f, batch...].
func (c *CReLU[T, B]) Forward(input *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	backend := input.Backend()
	raw := input.Raw()

	pos := backend.ReLU(raw)
	neg := backend.ReLU(backend.MulScalar(raw, -1.0))

	out := backend.Cat([]*tensor.RawTensor{pos, neg}, 0)
	return tensor.New[T, B](out, backend)
}

// Backward reconstructs the input-sized gradient from the doubled upstream
// gradient. gradOutput is split into its positive and negative halves along
// dim 0; each half is masked by the sign of the corresponding input element
// and the negative branch is negated before accumulation.
//
// Returns ErrShapeMismatch unless gradOutput's feature dimension is exactly
// twice the input's and all remaining dimensions match.
func (c *CReLU[T, B]) Backward(input, gradOutput *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	inShape := input.Shape()
	gradShape := gradOutput.Shape()

	if err := checkDoubled(inShape, gradShape); err != nil {
		return nil, err
	}

	backend := input.Backend()
	halves := backend.Chunk(gradOutput.Raw(), 2, 0)
	posMask, negMask := signMasks(input.Raw(), backend.Device())

	grad := backend.Sub(
		backend.Mul(halves[0], posMask),
		backend.Mul(halves[1], negMask),
	)
	return tensor.New[T, B](grad, backend), nil
}

// Parameters returns an empty slice (CReLU has no trainable parameters).
func (c *CReLU[T, B]) Parameters() []*Parameter[B] {
	return nil
}

// StateDict returns an empty state dict (CReLU is stateless).
func (c *CReLU[T, B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{}
}

// LoadStateDict is a no-op for the stateless CReLU.
func (c *CReLU[T, B]) LoadStateDict(map[string]*tensor.RawTensor) error {
	return nil
}

// checkDoubled verifies gradShape is inShape with dim 0 doubled.
func checkDoubled(inShape, gradShape tensor.Shape) error {
	ok := len(gradShape) == len(inShape) && len(inShape) > 0 && gradShape[0] == 2*inShape[0]
	if ok {
		for d := 1; d < len(inShape); d++ {
			if gradShape[d] != inShape[d] {
				ok = false
				break
			}
		}
	}
	if !ok {
		return fmt.Errorf("crelu backward: gradient shape %v does not match doubled input shape %v: %w",
			gradShape, inShape, ErrShapeMismatch)
	}
	return nil
}
