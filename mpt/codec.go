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

import (
	"fmt"

	"github.com/hexmpt/mpt/common"
	"github.com/hexmpt/mpt/rlp"
)

// EncodeNode computes the canonical RLP encoding of a node. This is the byte
// string that is Keccak-256 hashed to produce the node's content address,
// and the form under which a node is written to a Store.
func EncodeNode(node Node) []byte {
	return rlp.Encode(nodeToItem(node))
}

// nodeToItem converts a node into its RLP item structure, without
// serializing it to bytes. Splitting this step out of EncodeNode lets a
// child node's item be embedded directly into its parent's list when the
// child qualifies for inlining.
func nodeToItem(node Node) rlp.Item {
	switch n := node.(type) {
	case EmptyNode:
		return rlp.String{}
	case LeafNode:
		return rlp.List{Items: []rlp.Item{
			rlp.String{Str: EncodeHexPrefix(n.Path, true)},
			rlp.String{Str: n.Value},
		}}
	case ExtensionNode:
		return rlp.List{Items: []rlp.Item{
			rlp.String{Str: EncodeHexPrefix(n.Path, false)},
			refToItem(n.Next),
		}}
	case BranchNode:
		items := make([]rlp.Item, 0, 17)
		for _, child := range n.Children {
			items = append(items, refToItem(child))
		}
		items = append(items, rlp.String{Str: n.Value})
		return rlp.List{Items: items}
	default:
		panic(fmt.Sprintf("unsupported node type %T", node))
	}
}

// refToItem produces the RLP item representing a child reference as it
// appears embedded in its parent: an empty string for an absent child, the
// child's own item embedded verbatim when inlined, or a 32-byte hash string
// otherwise.
func refToItem(ref NodeRef) rlp.Item {
	if ref.IsEmpty() {
		return rlp.String{}
	}
	if ref.IsInline() {
		return nodeToItem(ref.Inline())
	}
	hash := ref.Hash()
	return rlp.Hash{Hash: &hash}
}

// DecodeNode parses the RLP encoding of a node as retrieved from a Store.
// The encoding must describe a Leaf, Extension, or Branch node; the empty
// node and inline children are never individually stored under a hash and
// so never reach this function directly.
func DecodeNode(data []byte) (Node, error) {
	item, err := rlp.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RLP: %w", err)
	}
	node, err := itemToNode(item)
	if err != nil {
		return nil, err
	}
	if _, isEmpty := node.(EmptyNode); isEmpty {
		return nil, fmt.Errorf("stored node encoding must not be the empty node")
	}
	return node, nil
}

// itemToNode converts a decoded RLP item back into a Node. It is shared by
// DecodeNode, for top-level stored nodes, and by itemToRef, for inlined
// children.
func itemToNode(item rlp.Item) (Node, error) {
	switch it := item.(type) {
	case rlp.String:
		if len(it.Str) != 0 {
			return nil, fmt.Errorf("unexpected non-empty string where a node was expected")
		}
		return EmptyNode{}, nil

	case rlp.List:
		switch len(it.Items) {
		case 2:
			return decodeLeafOrExtension(it.Items[0], it.Items[1])
		case 17:
			return decodeBranch(it.Items)
		default:
			return nil, fmt.Errorf("node list must have 2 or 17 items, got %d", len(it.Items))
		}

	default:
		return nil, fmt.Errorf("unsupported RLP item type %T", item)
	}
}

func decodeLeafOrExtension(pathItem, tailItem rlp.Item) (Node, error) {
	pathStr, ok := pathItem.(rlp.String)
	if !ok {
		return nil, fmt.Errorf("expected a string for the encoded path, got %T", pathItem)
	}
	path, terminator, err := DecodeHexPrefix(pathStr.Str)
	if err != nil {
		return nil, fmt.Errorf("invalid hex-prefix path: %w", err)
	}
	if terminator {
		valueStr, ok := tailItem.(rlp.String)
		if !ok {
			return nil, fmt.Errorf("expected a string for the leaf value, got %T", tailItem)
		}
		return LeafNode{Path: path, Value: valueStr.Str}, nil
	}
	ref, err := itemToRef(tailItem)
	if err != nil {
		return nil, fmt.Errorf("invalid extension child: %w", err)
	}
	if ref.IsEmpty() {
		return nil, fmt.Errorf("extension node must not reference an empty child")
	}
	return ExtensionNode{Path: path, Next: ref}, nil
}

func decodeBranch(items []rlp.Item) (Node, error) {
	var branch BranchNode
	for i := 0; i < 16; i++ {
		ref, err := itemToRef(items[i])
		if err != nil {
			return nil, fmt.Errorf("invalid branch child %d: %w", i, err)
		}
		branch.Children[i] = ref
	}
	valueStr, ok := items[16].(rlp.String)
	if !ok {
		return nil, fmt.Errorf("expected a string for the branch value, got %T", items[16])
	}
	branch.Value = valueStr.Str
	return branch, nil
}

// itemToRef interprets a decoded RLP item occupying a child slot: an empty
// string denotes an absent child, a 32-byte string denotes a hash
// reference, and a list denotes an inlined child node.
func itemToRef(item rlp.Item) (NodeRef, error) {
	switch it := item.(type) {
	case rlp.String:
		switch len(it.Str) {
		case 0:
			return EmptyRef(), nil
		case common.HashSize:
			var hash common.Hash
			copy(hash[:], it.Str)
			return HashRef(hash), nil
		default:
			return NodeRef{}, fmt.Errorf("invalid child reference string length %d", len(it.Str))
		}
	case rlp.List:
		child, err := itemToNode(it)
		if err != nil {
			return NodeRef{}, err
		}
		return InlineRef(child), nil
	default:
		return NodeRef{}, fmt.Errorf("unsupported RLP item type %T for child reference", item)
	}
}
