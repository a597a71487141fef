package serialization

import "errors"

// Sentinel errors returned when reading .glyph files.
var (
	// ErrInvalidMagic indicates the file does not start with the GLYF magic bytes.
	ErrInvalidMagic = errors.New("serialization: invalid magic bytes (not a .glyph file)")

	// ErrUnsupportedVersion indicates the file was written by an unknown format version.
	ErrUnsupportedVersion = errors.New("serialization: unsupported format version")

	// ErrChecksumMismatch indicates the file is corrupted (stored and computed checksums differ).
	ErrChecksumMismatch = errors.New("serialization: checksum mismatch (file corrupted)")
)
