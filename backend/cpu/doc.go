// Copyright 2026 Keel ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU compute backend for Keel.
//
// The CPU backend implements all tensor operations in pure Go. Every
// operation allocates a fresh result tensor and never mutates its inputs.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
package cpu
