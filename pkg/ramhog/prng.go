// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package ramhog

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// stateWords is the width of the xorshift-1024* state array.
const stateWords = 64

// prngSeedIterations is the PBKDF2 iteration count used solely to expand a
// seed+salt pair into PRNG state. It has nothing to do with I, the RamHog
// walk-phase iteration count.
const prngSeedIterations = 128

// xorshift1024 is a 1024-bit-state xorshift generator with multiplicative
// output tempering, seeded deterministically from PBKDF2-SHA256. It mirrors
// xorshift_ctx / xorshift_next / xorshift_pbkdf2_seed from the original
// hashblock/ramhog.c bit-for-bit, including the deliberate quirk of reading
// word index 16 (not 64) of the derived key to initialize the rotor.
type xorshift1024 struct {
	s [stateWords]uint64
	p uint8
}

// seed derives 65 64-bit words (520 bytes) via PBKDF2-SHA256(seed, salt,
// 128, 520), loads the first 64 into the state array, and sets the rotor
// from word 16 of the same buffer.
func (x *xorshift1024) seed(seed, salt []byte) {
	derived := pbkdf2.Key(seed, salt, prngSeedIterations, (stateWords+1)*8, sha256.New)

	for i := 0; i < stateWords; i++ {
		x.s[i] = le64(derived[i*8:])
	}
	x.p = uint8(le64(derived[16*8:]) & 63)
}

// next advances the generator one step and returns one 64-bit output word.
func (x *xorshift1024) next() uint64 {
	s0 := x.s[x.p]
	x.p = (x.p + 1) & 63
	s1 := x.s[x.p]

	s1 ^= s1 << 25
	s1 ^= s1 >> 3
	s0 ^= s0 >> 49

	x.s[x.p] = s0 ^ s1
	return x.s[x.p] * 8372773778140471301
}

// le64 reads a little-endian uint64 from the first 8 bytes of b.
func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// putLE64 writes v into the first 8 bytes of b in little-endian order.
func putLE64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

// putLE32 writes v into the first 4 bytes of b in little-endian order.
func putLE32(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
