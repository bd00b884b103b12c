// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package ramhog

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestMeetsTarget(t *testing.T) {
	digest := make([]byte, 32)
	digest[0] = 0x00
	digest[1] = 0x01 // value is small: 0x0001 followed by zeros

	low := uint256.NewInt(0)
	require.False(t, MeetsTarget(digest, low))

	high := new(uint256.Int).SetAllOne()
	require.True(t, MeetsTarget(digest, high))
}

func TestMeetsTargetShortDigest(t *testing.T) {
	digest := []byte{0x01}
	target := uint256.NewInt(1)
	require.True(t, MeetsTarget(digest, target))

	target = uint256.NewInt(0)
	require.False(t, MeetsTarget(digest, target))
}
