// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package txinfo

import (
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// Address is an opaque, base58-encoded cryptocurrency address. The store
// treats it as a plain string key; this package only validates that it is
// syntactically well-formed base58, not that it encodes a real key or
// checksum (wallet key management is out of scope).
type Address string

// NewAddress validates s as non-empty, well-formed base58 and returns it
// as an Address.
func NewAddress(s string) (Address, error) {
	if s == "" {
		return "", errors.New("txinfo: address must not be empty")
	}
	if _, err := base58.Decode(s); err != nil {
		return "", errors.Wrap(err, "txinfo: invalid base58 address")
	}
	return Address(s), nil
}

func (a Address) String() string { return string(a) }
