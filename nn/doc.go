// Copyright 2026 The Glyph Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for glyph's neural network modules.
//
// Modules compose into feed-forward classifiers:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, backend),
//	    nn.NewReLU[*cpu.CPUBackend](),
//	    nn.NewLinear(128, 10, backend),
//	    nn.NewSoftmax[*cpu.CPUBackend](-1),
//	)
//	probs := model.Forward(images)
package nn
