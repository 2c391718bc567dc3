// Copyright 2026 Keel ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks for Keel.
//
// # Overview
//
// The nn package contains layers with explicit forward and backward passes:
//   - ReLU: element-wise max(0, x)
//   - CReLU: concatenated ReLU, doubling the feature dimension
//   - Sequential: chains modules into a pipeline
//
// Layers are generic over the float element type and the compute backend.
//
// # Basic Usage
//
//	backend := cpu.New()
//	crelu := nn.NewCReLU[float32, *cpu.Backend]()
//
//	input, _ := tensor.FromSlice([]float32{-2, 0, 3}, tensor.Shape{3, 1}, backend)
//	output := crelu.Forward(input) // shape [6, 1]
//
//	grad, err := crelu.Backward(input, upstream)
//
// # Saving and Restoring
//
// Modules implementing the Stateful interface round-trip through .keel
// files with Save and Load. The activation layers here are stateless, so
// their state dicts are empty.
package nn
