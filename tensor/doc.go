// Copyright 2026 Keel ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe dense tensor operations for Keel.
//
// # Overview
//
// Tensors are the fundamental data structure in Keel. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Contiguous row-major storage with shape/stride metadata
//   - Device abstraction (CPU)
//
// # Basic Usage
//
//	import (
//	    "github.com/keel-ml/keel/backend/cpu"
//	    "github.com/keel-ml/keel/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//
//	    z := backend.Add(x.Raw(), y.Raw())
//	    _ = z
//	}
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType constraint:
//   - float32, float64 (floating-point)
//   - uint8 (unsigned integers, useful for images)
//   - bool (boolean masks)
package tensor
