// Package serialization implements the .glyph weights file format.
//
// Layout:
//
//	magic bytes "GLYF"      4 bytes
//	format version          4 bytes, little-endian uint32
//	header length           8 bytes, little-endian uint64
//	JSON header             header-length bytes
//	tensor data             concatenated raw tensor bytes
//	SHA-256 checksum        32 bytes, over header + tensor data
//
// The JSON header lists every tensor's name, dtype, shape, and position in
// the data section. The trailing checksum is validated on load.
package serialization

import (
	"time"

	"github.com/glyph-ml/glyph/internal/tensor"
)

// Format constants.
const (
	MagicBytes    = "GLYF"
	FormatVersion = 1
	ChecksumSize  = 32 // SHA-256
)

// Data type string constants for serialization.
const (
	DTypeFloat32 = "float32"
	DTypeFloat64 = "float64"
	DTypeInt32   = "int32"
	DTypeUint8   = "uint8"
)

// Header is the JSON header in a .glyph file.
type Header struct {
	FormatVersion int               `json:"format_version"` // Version of the .glyph format
	ModelType     string            `json:"model_type"`     // Type of model (e.g., "Classifier")
	CreatedAt     time.Time         `json:"created_at"`     // When the file was created
	Tensors       []TensorMeta      `json:"tensors"`        // Tensor metadata
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// TensorMeta describes a tensor in the .glyph file.
type TensorMeta struct {
	Name   string `json:"name"`   // Tensor name (e.g., "0.weight")
	DType  string `json:"dtype"`  // Data type (e.g., "float32")
	Shape  []int  `json:"shape"`  // Tensor shape
	Offset int64  `json:"offset"` // Offset in the data section
	Size   int64  `json:"size"`   // Size in bytes
}

// dtypeToString converts tensor.DataType to its string representation.
func dtypeToString(dt tensor.DataType) string {
	switch dt {
	case tensor.Float32:
		return DTypeFloat32
	case tensor.Float64:
		return DTypeFloat64
	case tensor.Int32:
		return DTypeInt32
	case tensor.Uint8:
		return DTypeUint8
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
	case DTypeInt32:
		return tensor.Int32, true
	case DTypeUint8:
		return tensor.Uint8, true
	default:
		return 0, false
	}
}
