// Copyright 2026 The Glyph Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the public API for glyph's CPU compute backend.
package cpu

import (
	internalcpu "github.com/glyph-ml/glyph/internal/backend/cpu"
	"github.com/glyph-ml/glyph/tensor"
)

// Backend represents the CPU backend implementation.
//
// All operations are pure Go; matrix multiplication fans out across
// goroutines without changing results.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/glyph-ml/glyph/backend/cpu"
//	    "github.com/glyph-ml/glyph/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func New() *Backend {
	return internalcpu.New()
}

// NewSequential creates a CPU backend that never spawns goroutines.
func NewSequential() *Backend {
	return internalcpu.NewSequential()
}
