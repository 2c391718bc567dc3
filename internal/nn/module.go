// Package nn implements neural network modules for Keel.
//
// This package provides building blocks for constructing networks:
//   - Module interface: Base interface for all NN components
//   - Parameter: Trainable parameters
//   - Activations: ReLU, CReLU (with explicit backward passes)
//   - Sequential: Container for stacking layers
//   - Stateful: narrow save/restore hook for layer state
//
// Design inspired by PyTorch's nn.Module but adapted for Go generics.
package nn

import (
	"errors"

	"github.com/keel-ml/keel/internal/tensor"
)

// ErrShapeMismatch is returned when the shapes passed to a layer operation
// are inconsistent. It always indicates a programming error in the caller.
var ErrShapeMismatch = errors.New("shape mismatch")

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute output from input
//   - Parameters: Return all trainable parameters
//
// Modules can be composed to build pipelines:
//
//	model := nn.NewSequential[Backend](
//	    nn.NewCReLU[float32, Backend](),
//	    nn.NewReLU[float32, Backend](),
//	)
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all trainable parameters of this module.
	// Returns an empty slice for modules without trainable parameters
	// (e.g., activation functions).
	Parameters() []*Parameter[B]
}

// Stateful is the narrow save/restore hook a module implements to take part
// in serialization. Stateless modules return an empty state dict.
type Stateful interface {
	// StateDict returns the module state keyed by parameter name.
	StateDict() map[string]*tensor.RawTensor

	// LoadStateDict restores the module state from a state dict.
	LoadStateDict(stateDict map[string]*tensor.RawTensor) error
}
