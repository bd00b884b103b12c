// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package ramhog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXorshift1024Deterministic(t *testing.T) {
	var a, b xorshift1024
	a.seed([]byte("hello"), []byte{0, 0, 0, 0})
	b.seed([]byte("hello"), []byte{0, 0, 0, 0})

	for i := 0; i < 100; i++ {
		require.Equal(t, a.next(), b.next())
	}
}

func TestXorshift1024DifferentSaltDiverges(t *testing.T) {
	var a, b xorshift1024
	a.seed([]byte("hello"), []byte{0, 0, 0, 0})
	b.seed([]byte("hello"), []byte{1, 0, 0, 0})

	require.NotEqual(t, a.next(), b.next())
}

func TestLE64RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	putLE64(buf, 0x0102030405060708)
	require.Equal(t, uint64(0x0102030405060708), le64(buf))
	require.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, buf)
}

func TestLE32RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	putLE32(buf, 0x01020304)
	require.Equal(t, []byte{4, 3, 2, 1}, buf)
}
