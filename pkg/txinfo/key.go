// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Package txinfo implements a typed, address-keyed metadata store with
// transactional validation, undo, and uniqueness indexing — the Go
// counterpart of txinfo.h/txinfo.cpp from the original ShinyCoin sources.
package txinfo

// KeyType classifies the overwrite/uniqueness semantics of a Key.
type KeyType uint8

const (
	// Normal keys may be freely overwritten; Process supersedes the
	// previous latest entry and Undo restores it.
	Normal KeyType = iota
	// WriteOnce keys accept exactly one Process per (address, key) for
	// the store's lifetime.
	WriteOnce
	// Unique keys are write-once per address, and additionally their
	// value must be globally unique across addresses at any instant.
	Unique
	// ID keys are Unique keys whose value is further restricted to the
	// same character set as a key string.
	ID
)

// MaxValidKeyType is the highest KeyType value Key.IsValid accepts.
const MaxValidKeyType = ID

// IsValidIDCharacter reports whether c is a lowercase letter, digit, or
// hyphen — the alphabet shared by Key.KeyString and (for ID keys)
// Info.Value.
func IsValidIDCharacter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-'
}

// Key is the pair (type, keyString) that, together with an address,
// identifies a binding in the store.
type Key struct {
	Type      KeyType
	KeyString string
}

// IsValid reports whether k.Type is a recognized type and k.KeyString is
// non-empty and drawn entirely from IsValidIDCharacter.
func (k Key) IsValid() bool {
	if k.Type > MaxValidKeyType {
		return false
	}
	if k.KeyString == "" {
		return false
	}
	for i := 0; i < len(k.KeyString); i++ {
		if !IsValidIDCharacter(k.KeyString[i]) {
			return false
		}
	}
	return true
}

// String renders k using the original's ToString convention: the special
// case (ID, "n") renders as "Name"; otherwise a one-letter type prefix and
// a colon precede the key string.
func (k Key) String() string {
	if k.Type == ID && k.KeyString == "n" {
		return "Name"
	}

	var prefix string
	switch k.Type {
	case Normal:
		prefix = "n:"
	case WriteOnce:
		prefix = "w:"
	case Unique:
		prefix = "u:"
	case ID:
		prefix = "i:"
	default:
		return "!Invalid!"
	}
	return prefix + k.KeyString
}
