// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package ramhog

import "github.com/pkg/errors"

// Reference parameters, carried over from hashblock.cpp's
// nShinyScratchpads / nShinyHashChunks / nShinyHashIterations globals.
// Reference params + a 32-byte output MUST produce bit-identical digests
// across implementations for the same input (spec contract).
const (
	ReferenceN = 8
	ReferenceC = (1 << 24) + (1 << 23) + (1 << 21)
	ReferenceI = 1 << 20
)

// ReferenceOutputSize is the canonical ShinyHash digest length, in bytes.
const ReferenceOutputSize = 32

// Params bundles RamHog's three scratchpad/walk parameters.
type Params struct {
	N uint32 // number of scratchpads
	C uint32 // 64-bit words per scratchpad
	I uint32 // walk-phase iteration count
}

// ReferenceParams returns the reference N/C/I triple.
func ReferenceParams() Params {
	return Params{N: ReferenceN, C: ReferenceC, I: ReferenceI}
}

// Validate checks the preconditions hash() requires of its caller: C must
// be at least 2 (the fill phase always writes pad[0] and pad[1] before the
// back-coupled loop starts at j=2) and I must be at least 16 (the walk
// phase always records its final 16 iterations into finalXs).
func (p Params) Validate() error {
	if p.N == 0 {
		return errors.New("ramhog: N must be positive")
	}
	if p.C < 2 {
		return errors.New("ramhog: C must be >= 2")
	}
	if p.I < 16 {
		return errors.New("ramhog: I must be >= 16")
	}
	return nil
}

// Bytes returns the total scratchpad memory this Params would require, in
// bytes: N * C * 8.
func (p Params) Bytes() uint64 {
	return uint64(p.N) * uint64(p.C) * 8
}
