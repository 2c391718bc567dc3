package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/keel-ml/keel/internal/tensor"
)

// Decode reads a state dict from r in the .keel format.
//
// The data section checksum is verified before any tensor is constructed.
func Decode(r io.Reader) (map[string]*tensor.RawTensor, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	if string(magic[:]) != MagicBytes {
		return nil, fmt.Errorf("got %q: %w", magic[:], ErrInvalidMagic)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("version %d: %w", version, ErrUnsupportedVersion)
	}

	var headerLen uint64
	if err := binary.Read(r, binary.LittleEndian, &headerLen); err != nil {
		return nil, fmt.Errorf("read header length: %w", err)
	}
	if headerLen > MaxHeaderSize {
		return nil, fmt.Errorf("header length %d: %w", headerLen, ErrHeaderTooLarge)
	}

	headerJSON := make([]byte, headerLen)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read tensor data: %w", err)
	}

	if err := ValidateChecksum(ComputeChecksum(data), header.Checksum); err != nil {
		return nil, err
	}

	stateDict := make(map[string]*tensor.RawTensor, len(header.Tensors))
	for _, meta := range header.Tensors {
		raw, err := tensorFromMeta(meta, data)
		if err != nil {
			return nil, fmt.Errorf("tensor %q: %w", meta.Name, err)
		}
		stateDict[meta.Name] = raw
	}
	return stateDict, nil
}

// ReadStateDict reads a state dict from a .keel file at path.
func ReadStateDict(path string) (map[string]*tensor.RawTensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	stateDict, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return stateDict, nil
}

// tensorFromMeta validates metadata against the data section and
// materializes the tensor.
func tensorFromMeta(meta TensorMeta, data []byte) (*tensor.RawTensor, error) {
	dtype, ok := stringToDtype(meta.DType)
	if !ok {
		return nil, fmt.Errorf("dtype %q: %w", meta.DType, ErrUnknownDType)
	}

	shape := tensor.Shape(meta.Shape)
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	want := int64(shape.NumElements() * dtype.Size())
	if meta.Size != want {
		return nil, fmt.Errorf("size %d does not match shape %v (%d bytes)", meta.Size, shape, want)
	}
	if meta.Offset < 0 || meta.Offset+meta.Size > int64(len(data)) {
		return nil, fmt.Errorf("offset %d size %d in %d-byte data section: %w",
			meta.Offset, meta.Size, len(data), ErrOutOfBounds)
	}

	raw, err := tensor.NewRaw(shape, dtype, tensor.CPU)
	if err != nil {
		return nil, err
	}
	copy(raw.Data(), data[meta.Offset:meta.Offset+meta.Size])
	return raw, nil
}
