// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package txinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestKeyToString is scenario S7.
func TestKeyToString(t *testing.T) {
	require.Equal(t, "Name", Key{Type: ID, KeyString: "n"}.String())
	require.Equal(t, "u:handle", Key{Type: Unique, KeyString: "handle"}.String())
	require.Equal(t, "n:bio", Key{Type: Normal, KeyString: "bio"}.String())
	require.Equal(t, "w:bio", Key{Type: WriteOnce, KeyString: "bio"}.String())
	require.Equal(t, "i:other", Key{Type: ID, KeyString: "other"}.String())
}

func TestKeyIsValid(t *testing.T) {
	require.True(t, Key{Type: Normal, KeyString: "bio-1"}.IsValid())
	require.False(t, Key{Type: Normal, KeyString: ""}.IsValid())
	require.False(t, Key{Type: Normal, KeyString: "Bio"}.IsValid())
	require.False(t, Key{Type: Normal, KeyString: "bio!"}.IsValid())
	require.False(t, Key{Type: KeyType(4), KeyString: "bio"}.IsValid())
}

func TestInfoIsValid(t *testing.T) {
	var reason string

	require.True(t, Info{Key: Key{Type: Normal, KeyString: "bio"}, Value: "hi"}.IsValid(&reason))

	reason = ""
	require.False(t, Info{Key: Key{Type: Normal, KeyString: "bio"}, Value: ""}.IsValid(&reason))
	require.Equal(t, "Invalid value", reason)

	reason = ""
	require.False(t, Info{Key: Key{Type: Normal, KeyString: ""}, Value: "hi"}.IsValid(&reason))
	require.Equal(t, "Invalid key", reason)

	reason = ""
	require.False(t, Info{Key: Key{Type: ID, KeyString: "n"}, Value: "has space"}.IsValid(&reason))
	require.Equal(t, "Invalid ID character in value", reason)

	reason = ""
	require.True(t, Info{Key: Key{Type: ID, KeyString: "n"}, Value: "alice-1"}.IsValid(&reason))
}

func TestInfoString(t *testing.T) {
	info := Info{Key: Key{Type: Unique, KeyString: "handle"}, Value: "alice"}
	require.Equal(t, "u:handle: alice", info.String())
}
