// Copyright 2026 The Glyph Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/glyph-ml/glyph/backend/cpu"
	"github.com/glyph-ml/glyph/tensor"
)

// TestBackendInterface verifies that cpu.Backend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.Backend)(nil)
}

// TestRawTensorAPI verifies the RawTensor alias exposes the expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize() = %d, want 24", raw.ByteSize())
	}

	clone := raw.Clone()
	if raw.IsUnique() {
		t.Error("IsUnique() = true after Clone(), want false")
	}
	clone.Release()
	if !raw.IsUnique() {
		t.Error("IsUnique() = false after clone.Release(), want true")
	}
}

// TestPublicTensorOps runs a small end-to-end computation through the
// public API.
func TestPublicTensorOps(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice[float32]([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	y := tensor.Ones[float32](tensor.Shape{2, 2}, backend)

	sum := x.Add(y)
	want := []float32{2, 3, 4, 5}
	for i, v := range sum.Data() {
		if v != want[i] {
			t.Errorf("Add result[%d] = %v, want %v", i, v, want[i])
		}
	}

	product := x.MatMul(tensor.Eye[float32](2, backend))
	for i, v := range product.Data() {
		if v != x.Data()[i] {
			t.Errorf("MatMul with identity changed element %d: %v", i, v)
		}
	}
}

// TestCreationFunctions sanity-checks the exported constructors.
func TestCreationFunctions(t *testing.T) {
	backend := cpu.New()

	if got := tensor.Zeros[float32](tensor.Shape{3}, backend).Data(); got[0] != 0 {
		t.Errorf("Zeros produced %v", got)
	}
	if got := tensor.Full[float32](tensor.Shape{3}, 7, backend).Data(); got[2] != 7 {
		t.Errorf("Full produced %v", got)
	}
	if got := tensor.Rand[float64](tensor.Shape{10}, backend).Data(); got[0] < 0 || got[0] >= 1 {
		t.Errorf("Rand out of range: %v", got[0])
	}
}
