// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package mpt implements a hexary Merkle Patricia Trie: a radix-16 trie
// over nibble-split byte keys in which every subtree is additionally
// content-addressed by the Keccak-256 hash of its RLP encoding, so that the
// root hash authenticates the entire key/value mapping below it.
//
// The package is organized bottom-up:
//
//   - nibble.go and hexprefix.go handle path representation: splitting keys
//     into nibbles and packing/unpacking the compact hex-prefix encoding
//     used for Leaf and Extension paths.
//   - node.go defines the four node variants (Empty, Leaf, Extension,
//     Branch) and NodeRef, the inline-or-hashed child reference.
//   - codec.go implements the RLP encoding and decoding of nodes.
//   - store.go mediates between nodes and a BackendKV, deciding when a
//     child is small enough to be embedded rather than written out.
//   - builder.go and destroyer.go implement Put and Remove as pure,
//     structural, depth-bounded recursions that preserve the trie's normal
//     form: a Branch always has at least two children or a value, and an
//     Extension's path is never empty.
//   - trie.go assembles the above into Trie, the stateful handle callers
//     actually use.
//
// A Trie is not a cache or a database; it holds only its current root. All
// durable content lives in whatever BackendKV the Trie was constructed
// with, addressed by node hash.
package mpt
