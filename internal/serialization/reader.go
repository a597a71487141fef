package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"

	"github.com/glyph-ml/glyph/internal/tensor"
)

// Load reads a .glyph file and reconstructs its state dictionary.
// The trailing SHA-256 checksum is validated before any tensor is built.
func Load(path string) (*Header, map[string]*tensor.RawTensor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	preambleSize := len(MagicBytes) + 4 + 8
	if len(data) < preambleSize+ChecksumSize {
		return nil, nil, fmt.Errorf("file too small (%d bytes): %w", len(data), ErrInvalidMagic)
	}

	if string(data[:len(MagicBytes)]) != MagicBytes {
		return nil, nil, ErrInvalidMagic
	}

	version := binary.LittleEndian.Uint32(data[len(MagicBytes):])
	if version != FormatVersion {
		return nil, nil, fmt.Errorf("version %d: %w", version, ErrUnsupportedVersion)
	}

	headerLen := binary.LittleEndian.Uint64(data[len(MagicBytes)+4:])
	// Validate the length field itself before any arithmetic on it: a
	// corrupted value near MaxUint64 would wrap headerStart+headerLen.
	if headerLen > uint64(len(data)-preambleSize-ChecksumSize) {
		return nil, nil, fmt.Errorf("header length %d exceeds file size: %w", headerLen, ErrInvalidMagic)
	}
	headerStart := uint64(preambleSize)
	headerEnd := headerStart + headerLen

	payload := data[preambleSize : len(data)-ChecksumSize]
	var stored [ChecksumSize]byte
	copy(stored[:], data[len(data)-ChecksumSize:])
	if err := ValidateChecksum(ComputeChecksum(payload), stored); err != nil {
		return nil, nil, err
	}

	var header Header
	if err := json.Unmarshal(data[headerStart:headerEnd], &header); err != nil {
		return nil, nil, fmt.Errorf("failed to parse header: %w", err)
	}

	tensorData := data[headerEnd : uint64(len(data)-ChecksumSize)]
	stateDict := make(map[string]*tensor.RawTensor, len(header.Tensors))
	for _, meta := range header.Tensors {
		dtype, ok := stringToDtype(meta.DType)
		if !ok {
			return nil, nil, fmt.Errorf("tensor %q has unknown dtype %q", meta.Name, meta.DType)
		}

		raw, err := tensor.NewRaw(tensor.Shape(meta.Shape), dtype)
		if err != nil {
			return nil, nil, fmt.Errorf("tensor %q has invalid shape %v: %w", meta.Name, meta.Shape, err)
		}

		end := meta.Offset + meta.Size
		if meta.Offset < 0 || end > int64(len(tensorData)) {
			return nil, nil, fmt.Errorf("tensor %q data range [%d, %d) out of bounds", meta.Name, meta.Offset, end)
		}
		if int64(raw.ByteSize()) != meta.Size {
			return nil, nil, fmt.Errorf("tensor %q size %d doesn't match shape %v (%d bytes)",
				meta.Name, meta.Size, meta.Shape, raw.ByteSize())
		}

		copy(raw.Data(), tensorData[meta.Offset:end])
		stateDict[meta.Name] = raw
	}

	return &header, stateDict, nil
}
