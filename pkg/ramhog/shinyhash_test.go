// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package ramhog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestShinyHashReferenceParams exercises the process-wide singleton at
// reference parameters (~1.63 GiB of scratchpads). It is skipped under
// `go test -short` since a single call walks 2^20 iterations over
// multi-gigabyte pads.
func TestShinyHashReferenceParams(t *testing.T) {
	if testing.Short() {
		t.Skip("reference ShinyHash allocates ~1.63GiB and walks 2^20 iterations")
	}

	d1, err := ShinyHash([]byte("hello"), nil)
	require.NoError(t, err)
	require.Len(t, d1, ReferenceOutputSize)

	d2, err := ShinyHash([]byte("hello"), nil)
	require.NoError(t, err)
	require.Equal(t, d1, d2)
}
