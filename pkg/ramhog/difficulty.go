// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package ramhog

import "github.com/holiman/uint256"

// MeetsTarget reports whether digest, interpreted as a big-endian 256-bit
// integer, is less than or equal to target. This is the usual proof-of-work
// acceptance check; consensus rules around how target is derived from a
// block's difficulty bits are out of scope (spec non-goals), but the
// digest-vs-bound comparison itself is just arithmetic over ShinyHash's
// output and belongs next to the hash that produces it.
func MeetsTarget(digest []byte, target *uint256.Int) bool {
	var padded [32]byte
	if len(digest) >= 32 {
		copy(padded[:], digest[:32])
	} else {
		copy(padded[32-len(digest):], digest)
	}

	var value uint256.Int
	value.SetBytes(padded[:])
	return value.Cmp(target) <= 0
}
