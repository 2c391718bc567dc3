package nn

import (
	"fmt"

	"github.com/keel-ml/keel/internal/tensor"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input, creating a
// sequential pipeline of transformations.
//
// Example:
//
//	model := nn.NewSequential[Backend](
//	    nn.NewCReLU[float32, Backend](),
//	    nn.NewReLU[float32, Backend](),
//	)
//	output := model.Forward(input)
type Sequential[B tensor.Backend] struct {
	modules []Module[B]
}

// NewSequential creates a new Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return &Sequential[B]{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Parameters returns all trainable parameters from all modules.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential[B]) Add(module Module[B]) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential[B]) Len() int {
	return len(s.modules)
}

// StateDict collects the state of all Stateful child modules, with keys
// prefixed "layers.<index>.".
func (s *Sequential[B]) StateDict() map[string]*tensor.RawTensor {
	out := map[string]*tensor.RawTensor{}
	for i, module := range s.modules {
		stateful, ok := module.(Stateful)
		if !ok {
			continue
		}
		for name, raw := range stateful.StateDict() {
			out[fmt.Sprintf("layers.%d.%s", i, name)] = raw
		}
	}
	return out
}

// LoadStateDict routes prefixed entries back to the child modules.
func (s *Sequential[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	for i, module := range s.modules {
		stateful, ok := module.(Stateful)
		if !ok {
			continue
		}

		prefix := fmt.Sprintf("layers.%d.", i)
		child := map[string]*tensor.RawTensor{}
		for name, raw := range stateDict {
			if len(name) > len(prefix) && name[:len(prefix)] == prefix {
				child[name[len(prefix):]] = raw
			}
		}

		if err := stateful.LoadStateDict(child); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return nil
}
