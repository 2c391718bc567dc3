package cpu

import (
	"fmt"

	"github.com/keel-ml/keel/internal/tensor"
)

// Cat concatenates tensors along the specified dimension.
//
// All tensors must have the same shape except along the concatenation
// dimension, and the same dtype. Supports negative dim indexing
// (-1 = last dimension).
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	shape := tensors[0].Shape()
	ndim := len(shape)
	dtype := tensors[0].DType()

	dim = normalizeDim("cat", dim, ndim)

	// Validate shapes and total up the concat dimension.
	totalDim := 0
	for i, t := range tensors {
		tShape := t.Shape()
		if len(tShape) != ndim {
			panic(fmt.Sprintf("cat: tensor %d has %d dimensions, expected %d", i, len(tShape), ndim))
		}
		if t.DType() != dtype {
			panic(fmt.Sprintf("cat: tensor %d has dtype %s, expected %s", i, t.DType(), dtype))
		}
		for d := 0; d < ndim; d++ {
			if d == dim {
				totalDim += tShape[d]
			} else if tShape[d] != shape[d] {
				panic(fmt.Sprintf("cat: tensor %d dimension %d is %d, expected %d", i, d, tShape[d], shape[d]))
			}
		}
	}

	outShape := shape.Clone()
	outShape[dim] = totalDim

	result, err := tensor.NewRaw(outShape, dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cat: %v", err))
	}

	// All tensors are contiguous row-major, so a slice along dim is a
	// sequence of `outer` equally sized byte blocks. Copy block-wise.
	outer, inner := outerInner(shape, dim)
	blockBytes := inner * dtype.Size()
	outRowBytes := totalDim * blockBytes

	dst := result.Data()
	offset := 0
	for _, t := range tensors {
		srcRowBytes := t.Shape()[dim] * blockBytes
		src := t.Data()
		for o := 0; o < outer; o++ {
			copy(dst[o*outRowBytes+offset:], src[o*srcRowBytes:(o+1)*srcRowBytes])
		}
		offset += srcRowBytes
	}

	return result
}

// Chunk splits a tensor into n equal parts along the specified dimension.
// The dimension size must be divisible by n.
func (cpu *CPUBackend) Chunk(x *tensor.RawTensor, n, dim int) []*tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	dim = normalizeDim("chunk", dim, ndim)

	if n <= 0 {
		panic(fmt.Sprintf("chunk: n must be positive, got %d", n))
	}
	if shape[dim]%n != 0 {
		panic(fmt.Sprintf("chunk: dimension %d size %d not divisible by %d", dim, shape[dim], n))
	}

	chunkShape := shape.Clone()
	chunkShape[dim] = shape[dim] / n

	outer, inner := outerInner(shape, dim)
	blockBytes := inner * x.DType().Size()
	srcRowBytes := shape[dim] * blockBytes
	dstRowBytes := chunkShape[dim] * blockBytes

	src := x.Data()
	chunks := make([]*tensor.RawTensor, n)
	for c := 0; c < n; c++ {
		chunk, err := tensor.NewRaw(chunkShape, x.DType(), cpu.device)
		if err != nil {
			panic(fmt.Sprintf("chunk: %v", err))
		}
		dst := chunk.Data()
		for o := 0; o < outer; o++ {
			start := o*srcRowBytes + c*dstRowBytes
			copy(dst[o*dstRowBytes:], src[start:start+dstRowBytes])
		}
		chunks[c] = chunk
	}

	return chunks
}

// normalizeDim resolves negative dimension indices and bounds-checks.
func normalizeDim(op string, dim, ndim int) int {
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("%s: dimension %d out of range for %dD tensor", op, dim, ndim))
	}
	return dim
}

// outerInner factors a shape around dim: outer = product of dimensions
// before dim, inner = product of dimensions after dim.
func outerInner(shape tensor.Shape, dim int) (outer, inner int) {
	outer, inner = 1, 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}
	for d := dim + 1; d < len(shape); d++ {
		inner *= shape[d]
	}
	return outer, inner
}
