package nn

import (
	"fmt"

	"github.com/keel-ml/keel/internal/serialization"
)

// Save writes a module's state dict to a .keel file at path.
//
// Stateless modules (pure activations) produce a valid file with an empty
// tensor table, so Save/Load round-trips uniformly across module kinds.
func Save(path string, m Stateful) error {
	if err := serialization.WriteStateDict(path, m.StateDict()); err != nil {
		return fmt.Errorf("save module: %w", err)
	}
	return nil
}

// Load restores a module's state from a .keel file at path.
func Load(path string, m Stateful) error {
	stateDict, err := serialization.ReadStateDict(path)
	if err != nil {
		return fmt.Errorf("load module: %w", err)
	}
	return m.LoadStateDict(stateDict)
}
