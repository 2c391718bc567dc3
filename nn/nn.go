// Copyright 2026 Keel ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/keel-ml/keel/internal/nn"
	"github.com/keel-ml/keel/internal/tensor"
)

// ErrShapeMismatch is returned when the shapes passed to a layer operation
// are inconsistent.
var ErrShapeMismatch = nn.ErrShapeMismatch

// Module is the base interface for all neural network components.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter represents a trainable parameter in a neural network.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// Stateful is the narrow save/restore hook a module implements to take
// part in serialization.
type Stateful = nn.Stateful

// ReLU is a Rectified Linear Unit activation module.
type ReLU[T tensor.Float, B tensor.Backend] = nn.ReLU[T, B]

// CReLU is a Concatenated ReLU activation module: it stacks max(x, 0) and
// max(-x, 0) along the feature axis, doubling the feature dimension.
type CReLU[T tensor.Float, B tensor.Backend] = nn.CReLU[T, B]

// Sequential is a container module that chains multiple modules together.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewReLU creates a new ReLU activation module.
func NewReLU[T tensor.Float, B tensor.Backend]() *ReLU[T, B] {
	return nn.NewReLU[T, B]()
}

// NewCReLU creates a new CReLU activation module.
func NewCReLU[T tensor.Float, B tensor.Backend]() *CReLU[T, B] {
	return nn.NewCReLU[T, B]()
}

// NewSequential creates a new Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential[B](modules...)
}

// NewParameter creates a new trainable parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter[B](name, t)
}

// Save writes a module's state dict to a .keel file at path.
func Save(path string, m Stateful) error {
	return nn.Save(path, m)
}

// Load restores a module's state from a .keel file at path.
func Load(path string, m Stateful) error {
	return nn.Load(path, m)
}
