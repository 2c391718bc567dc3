package imaging

import (
	"github.com/keel-ml/keel/internal/tensor"
)

// Matrix is a caller-owned destination for decoded pixel data.
//
// Loaded pixels are stored column-per-image: element (i, j) is byte i of
// image j, where bytes within a column are packed scanline by scanline with
// interleaved channels ((y*width + x)*channels + c). This matches the
// rows-are-features, columns-are-batch layout the nn package expects.
type Matrix struct {
	raw *tensor.RawTensor // uint8, shape [width*height*channels, numImages]
}

// Raw returns the underlying tensor, or nil if the matrix is empty.
func (m *Matrix) Raw() *tensor.RawTensor {
	return m.raw
}

// Rows returns the number of bytes per image (width*height*channels).
func (m *Matrix) Rows() int {
	if m.raw == nil {
		return 0
	}
	return m.raw.Shape()[0]
}

// Cols returns the number of images.
func (m *Matrix) Cols() int {
	if m.raw == nil {
		return 0
	}
	return m.raw.Shape()[1]
}

// At returns pixel byte i of image j, or 0 if the matrix is empty.
func (m *Matrix) At(i, j int) uint8 {
	if m.raw == nil {
		return 0
	}
	return m.raw.AsUint8()[i*m.Cols()+j]
}

// Column returns a copy of the pixel bytes of image j, or nil if the
// matrix is empty.
func (m *Matrix) Column(j int) []uint8 {
	if m.raw == nil {
		return nil
	}
	rows, cols := m.Rows(), m.Cols()
	data := m.raw.AsUint8()
	out := make([]uint8, rows)
	for i := 0; i < rows; i++ {
		out[i] = data[i*cols+j]
	}
	return out
}
