// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package mpt

import "github.com/hexmpt/mpt/common"

// Node is the common interface implemented by the four node variants that
// make up a trie: EmptyNode, LeafNode, ExtensionNode, and BranchNode. Nodes
// are immutable values; every operation that changes trie content produces
// new node values rather than mutating existing ones.
type Node interface {
	isNode()
}

// EmptyNode represents the empty trie. It is a singleton value; every
// comparison against "is this subtree empty" can use the zero value of this
// type.
type EmptyNode struct{}

func (EmptyNode) isNode() {}

// LeafNode holds the remaining key path from its parent down to a stored
// value, and the value itself.
type LeafNode struct {
	Path  []Nibble
	Value []byte
}

func (LeafNode) isNode() {}

// ExtensionNode compresses a run of nibbles shared by all keys below it,
// deferring to a single child reference. By invariant its Path is never
// empty and its Next is never empty.
type ExtensionNode struct {
	Path []Nibble
	Next NodeRef
}

func (ExtensionNode) isNode() {}

// BranchNode fans out over the 16 possible next nibbles and may additionally
// hold a value for a key ending exactly at this node.
type BranchNode struct {
	Children [16]NodeRef
	Value    []byte
}

func (BranchNode) isNode() {}

// refKind discriminates the three shapes a NodeRef can take. Its zero
// value is refEmpty, so the zero value of NodeRef itself - as naturally
// produced by a zero-valued BranchNode.Children array - correctly denotes
// an absent child without any explicit initialization.
type refKind int8

const (
	refEmpty refKind = iota
	refInline
	refHashed
)

// NodeRef is a reference to a child node as held by an ExtensionNode or a
// BranchNode slot. A child whose RLP encoding is shorter than a hash is
// embedded directly (inline); otherwise the reference holds the Keccak-256
// hash of the child's encoding, to be resolved through a Store.
type NodeRef struct {
	kind   refKind
	inline Node
	hash   common.Hash
}

// EmptyRef returns a NodeRef denoting the absence of a child. It is equal
// to the zero value of NodeRef.
func EmptyRef() NodeRef {
	return NodeRef{}
}

// InlineRef returns a NodeRef that embeds node directly, without going
// through a Store. It is used when node's RLP encoding is shorter than a
// Keccak-256 hash.
func InlineRef(node Node) NodeRef {
	return NodeRef{kind: refInline, inline: node}
}

// HashRef returns a NodeRef pointing at a node stored under hash.
func HashRef(hash common.Hash) NodeRef {
	return NodeRef{kind: refHashed, hash: hash}
}

// IsEmpty reports whether this reference denotes the absence of a child.
func (r NodeRef) IsEmpty() bool {
	return r.kind == refEmpty
}

// IsInline reports whether this reference embeds its node directly.
func (r NodeRef) IsInline() bool {
	return r.kind == refInline
}

// Inline returns the embedded node; only valid if IsInline() is true.
func (r NodeRef) Inline() Node {
	return r.inline
}

// Hash returns the hash this reference points at; only valid if the
// reference is neither empty nor inline.
func (r NodeRef) Hash() common.Hash {
	return r.hash
}
