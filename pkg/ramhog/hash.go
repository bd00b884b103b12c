// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Package ramhog implements ShinyHash, a memory-hard proof-of-work digest
// built from multi-gigabyte scratchpads and a pointer-chasing walk. See
// hashblock.cpp/ramhog.c in the original ShinyCoin sources for the
// reference this package reproduces bit-for-bit at the reference
// parameters.
package ramhog

import (
	"crypto/sha256"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

// finalWalkIterations is the number of trailing walk steps whose output
// words feed PBKDF2 finalization (the "16" in "I - 16" and "finalXs[16]").
const finalWalkIterations = 16

// HashWithPads computes the RamHog digest of input using params and the
// caller-owned scratchpads, writing outputSize bytes of digest. pads must
// report exactly params.N pads of params.C words each; callers that want a
// one-shot scratchpad set can get one from NewPads.
//
// HashWithPads has no internal locking: the caller must not invoke it
// concurrently with another call sharing the same pads (spec §5).
func HashWithPads(input []byte, params Params, pads Pads, outputSize int) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if pads.N() != int(params.N) {
		return nil, errors.Errorf("ramhog: pads has %d pads, want %d", pads.N(), params.N)
	}
	if pads.C() != int(params.C) {
		return nil, errors.Errorf("ramhog: pads has %d words per pad, want %d", pads.C(), params.C)
	}
	if outputSize <= 0 {
		return nil, errors.New("ramhog: outputSize must be positive")
	}

	var ctx xorshift1024

	// Phase 1 — scratchpad fill.
	var saltK [4]byte
	for k := uint32(0); k < params.N; k++ {
		putLE32(saltK[:], k)
		ctx.seed(input, saltK[:])

		pad := pads.Pad(int(k))
		pad[0] = ctx.next()
		pad[1] = ctx.next()

		for j := uint32(2); j < params.C; j++ {
			v := ctx.next()
			if v&31 == 0 {
				r := ctx.next()
				half := uint64(j / 2)
				v ^= pad[r%half+half]
			}
			pad[j] = v
		}
	}

	// Phase 2 — final-chunk reseed.
	finalChunks := make([]byte, int(params.N)*8)
	for k := uint32(0); k < params.N; k++ {
		putLE64(finalChunks[k*8:], pads.Pad(int(k))[params.C-1])
	}
	ctx.seed(input, finalChunks)

	// Phase 3 — walk.
	x := ctx.next()
	for i := uint32(0); i < params.I-finalWalkIterations; i++ {
		x = pads.Pad(int((x>>32)%uint64(params.N)))[(x&0xffffffff)%uint64(params.C)] ^ ctx.next()
	}

	finalXs := make([]byte, finalWalkIterations*8)
	for i := 0; i < finalWalkIterations; i++ {
		x = pads.Pad(int((x>>32)%uint64(params.N)))[(x&0xffffffff)%uint64(params.C)] ^ ctx.next()
		putLE64(finalXs[i*8:], x)
	}

	// Phase 4 — finalization.
	return pbkdf2.Key(input, finalXs, 1, outputSize, sha256.New), nil
}
