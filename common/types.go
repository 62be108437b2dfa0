// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package common provides the small set of value types shared by the trie
// and rlp packages: the 32-byte Hash identifying node content, and a
// constant error type for defining immutable sentinel errors.
package common

import (
	"encoding/hex"
	"fmt"
)

// HashSize is the byte-size of the Hash type.
const HashSize = 32

// Hash is the Keccak-256 digest of a node's RLP encoding. It is the
// content-address under which a node is retrievable from a Store.
type Hash [HashSize]byte

// ToBytes returns the hash as a plain byte slice.
func (h Hash) ToBytes() []byte {
	return h[:]
}

func (h Hash) String() string {
	return fmt.Sprintf("%x", h[:])
}

// IsZero reports whether this is the zero hash. Note that the zero hash is
// distinct from the empty-trie root, which is the hash of the RLP-encoded
// empty string.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// HashFromString converts a 64-character hex string into a Hash. It is slow
// and intended for producing readable test cases; it panics on malformed
// input.
func HashFromString(str string) Hash {
	if len(str) != 2*HashSize {
		panic(fmt.Sprintf("invalid hash-string length, expected %d, got %d", 2*HashSize, len(str)))
	}
	data, err := hex.DecodeString(str)
	if err != nil {
		panic(fmt.Sprintf("invalid hex string `%s`: %v", str, err))
	}
	var res Hash
	copy(res[:], data)
	return res
}

// ConstError is an error type that can be used to define immutable error
// constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}
