package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/keel-ml/keel/internal/tensor"
)

// keelVersion is written into file headers for provenance.
const keelVersion = "v0.1.0"

// Encode writes a state dict to w in the .keel format.
//
// Tensors are written in lexicographic name order so the output is
// deterministic for a given state dict.
func Encode(w io.Writer, stateDict map[string]*tensor.RawTensor) error {
	names := make([]string, 0, len(stateDict))
	for name := range stateDict {
		names = append(names, name)
	}
	sort.Strings(names)

	// Build metadata and the data section.
	metas := make([]TensorMeta, 0, len(names))
	var data []byte
	for _, name := range names {
		raw := stateDict[name]
		size := int64(raw.ByteSize())
		metas = append(metas, TensorMeta{
			Name:   name,
			DType:  dtypeToString(raw.DType()),
			Shape:  raw.Shape().Clone(),
			Offset: int64(len(data)),
			Size:   size,
		})
		data = append(data, raw.Data()...)
	}

	header := Header{
		FormatVersion: FormatVersion,
		KeelVersion:   keelVersion,
		CreatedAt:     time.Now().UTC(),
		Checksum:      ComputeChecksum(data),
		Tensors:       metas,
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("marshal header: %w", err)
	}

	if _, err := w.Write([]byte(MagicBytes)); err != nil {
		return fmt.Errorf("write magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return fmt.Errorf("write version: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("write header length: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write tensor data: %w", err)
	}
	return nil
}

// WriteStateDict writes a state dict to a .keel file at path.
func WriteStateDict(path string, stateDict map[string]*tensor.RawTensor) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Encode(f, stateDict); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
