package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keel-ml/keel/internal/backend/cpu"
	"github.com/keel-ml/keel/internal/tensor"
)

func TestReLU_Forward(t *testing.T) {
	backend := cpu.New()
	relu := NewReLU[float32, Backend]()

	input, err := tensor.FromSlice([]float32{-2, -1, 0, 1, 2}, tensor.Shape{5}, backend)
	require.NoError(t, err)

	output := relu.Forward(input)

	assert.Equal(t, []float32{0, 0, 0, 1, 2}, output.Data())
	assert.True(t, output.Shape().Equal(input.Shape()))
}

func TestReLU_Backward(t *testing.T) {
	backend := cpu.New()
	relu := NewReLU[float32, Backend]()

	input, err := tensor.FromSlice([]float32{-2, 0, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	upstream, err := tensor.FromSlice([]float32{10, 20, 30}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	grad, err := relu.Backward(input, upstream)
	require.NoError(t, err)

	// Gradient passes only where input > 0; zero at x = 0.
	assert.Equal(t, []float32{0, 0, 30}, grad.Data())
}

func TestReLU_Backward_ShapeMismatch(t *testing.T) {
	backend := cpu.New()
	relu := NewReLU[float32, Backend]()

	input := tensor.Zeros[float32](tensor.Shape{3}, backend)
	upstream := tensor.Zeros[float32](tensor.Shape{4}, backend)

	_, err := relu.Backward(input, upstream)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
