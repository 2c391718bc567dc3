package serialization

import (
	"time"

	"github.com/keel-ml/keel/internal/tensor"
)

// Format constants.
const (
	MagicBytes    = "KEEL"
	FormatVersion = 1
	MaxHeaderSize = 16 << 20 // Sanity cap when reading untrusted files
)

// Data type string constants for serialization.
const (
	DTypeFloat32 = "float32"
	DTypeFloat64 = "float64"
	DTypeUint8   = "uint8"
	DTypeBool    = "bool"
)

// Header is the JSON header in a .keel file.
type Header struct {
	FormatVersion int          `json:"format_version"` // Version of the .keel format
	KeelVersion   string       `json:"keel_version"`   // Version of Keel that created this file
	CreatedAt     time.Time    `json:"created_at"`     // When the file was created
	Checksum      string       `json:"checksum"`       // SHA-256 of the data section, hex encoded
	Tensors       []TensorMeta `json:"tensors"`        // Tensor metadata, in data order
}

// TensorMeta describes a tensor in the .keel file.
type TensorMeta struct {
	Name   string `json:"name"`   // Tensor name (e.g., "layers.0.weight")
	DType  string `json:"dtype"`  // Data type (e.g., "float32")
	Shape  []int  `json:"shape"`  // Tensor shape
	Offset int64  `json:"offset"` // Offset in the data section (bytes)
	Size   int64  `json:"size"`   // Size in bytes
}

// dtypeToString converts tensor.DataType to its string representation.
func dtypeToString(dt tensor.DataType) string {
	switch dt {
	case tensor.Float32:
		return DTypeFloat32
	case tensor.Float64:
		return DTypeFloat64
	case tensor.Uint8:
		return DTypeUint8
	case tensor.Bool:
		return DTypeBool
	default:
		return "unknown"
	}
}

// stringToDtype converts a string representation to tensor.DataType.
func stringToDtype(s string) (tensor.DataType, bool) {
	switch s {
	case DTypeFloat32:
		return tensor.Float32, true
	case DTypeFloat64:
		return tensor.Float64, true
	case DTypeUint8:
		return tensor.Uint8, true
	case DTypeBool:
		return tensor.Bool, true
	default:
		return 0, false
	}
}
