// Copyright 2026 the mpnum authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package factory creates random test instances of dense tensors and
// matrix-product chains: Gaussian noise, normalized pure-state vectors,
// Hermitian and positive-semidefinite operators, Haar-uniform unitaries,
// and structured random chains (states, operators, density operators,
// local Hamiltonians).
//
// Every sampler takes an explicit random source and is a deterministic
// function of that source's draw sequence. Callers sharing one source
// across goroutines must serialize their draws.
//
// Example:
//
//	rng := factory.NewSource(42)
//	psi, err := factory.RandomVector(rng, 5, 2) // shape (2, 2, 2, 2, 2), unit norm
package factory
