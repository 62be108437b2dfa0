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

import "reflect"

// hasValue reports whether v should be treated as a present value. An empty
// byte string is indistinguishable from the absence of a value once
// RLP-encoded into a branch node's value slot, so the two are treated as
// the same condition throughout this package.
func hasValue(v []byte) bool {
	return len(v) > 0
}

// Remove deletes key from the subtree rooted at node, returning the
// resulting, re-normalized subtree. If key is not present, node is returned
// unchanged. Like Put, this is a pure function bounded in depth by len(key).
func Remove(store *Store, node Node, key []Nibble) (Node, error) {
	switch n := node.(type) {
	case EmptyNode:
		return n, nil

	case LeafNode:
		if !reflect.DeepEqual(n.Path, key) {
			return n, nil
		}
		return EmptyNode{}, nil

	case ExtensionNode:
		return removeFromExtension(store, n, key)

	case BranchNode:
		return removeFromBranch(store, n, key)

	default:
		return nil, InvalidInputError("unsupported node type in Remove")
	}
}

func removeFromExtension(store *Store, n ExtensionNode, key []Nibble) (Node, error) {
	rest, ok := StripPrefix(key, n.Path)
	if !ok {
		return n, nil
	}

	child, err := store.Load(n.Next)
	if err != nil {
		return nil, err
	}
	newChild, err := Remove(store, child, rest)
	if err != nil {
		return nil, err
	}

	return fuseExtension(store, n.Path, newChild)
}

// fuseExtension re-normalizes an extension node after its child changed,
// restoring the invariant that an extension's path is never empty and its
// child is never empty, by absorbing or percolating through the new child.
func fuseExtension(store *Store, path []Nibble, newChild Node) (Node, error) {
	switch c := newChild.(type) {
	case EmptyNode:
		return EmptyNode{}, nil

	case LeafNode:
		return LeafNode{Path: concat(path, c.Path), Value: c.Value}, nil

	case ExtensionNode:
		return ExtensionNode{Path: concat(path, c.Path), Next: c.Next}, nil

	case BranchNode:
		ref, err := store.StoreNode(c)
		if err != nil {
			return nil, err
		}
		return ExtensionNode{Path: path, Next: ref}, nil

	default:
		return nil, InvalidInputError("unsupported node type while fusing extension")
	}
}

func removeFromBranch(store *Store, n BranchNode, key []Nibble) (Node, error) {
	children := n.Children
	value := n.Value

	if len(key) == 0 {
		value = nil
	} else {
		idx := key[0]
		child, err := store.Load(n.Children[idx])
		if err != nil {
			return nil, err
		}
		newChild, err := Remove(store, child, key[1:])
		if err != nil {
			return nil, err
		}
		if _, empty := newChild.(EmptyNode); empty {
			children[idx] = EmptyRef()
		} else {
			ref, err := store.StoreNode(newChild)
			if err != nil {
				return nil, err
			}
			children[idx] = ref
		}
	}

	return normalizeBranch(store, BranchNode{Children: children, Value: value})
}

// normalizeBranch restores the branch-density invariant (at least two
// children, or one or more children together with a value) after a child or
// the branch's own value has been removed, collapsing down to a Leaf or
// Extension when only a single child remains and no value is present.
func normalizeBranch(store *Store, branch BranchNode) (Node, error) {
	count := 0
	last := -1
	for i, child := range branch.Children {
		if !child.IsEmpty() {
			count++
			last = i
		}
	}

	switch {
	case count == 0 && !hasValue(branch.Value):
		return EmptyNode{}, nil

	case count == 0:
		return LeafNode{Path: []Nibble{}, Value: branch.Value}, nil

	case count == 1 && !hasValue(branch.Value):
		child, err := store.Load(branch.Children[last])
		if err != nil {
			return nil, err
		}
		switch c := child.(type) {
		case LeafNode:
			return LeafNode{Path: concat([]Nibble{Nibble(last)}, c.Path), Value: c.Value}, nil
		case ExtensionNode:
			return ExtensionNode{Path: concat([]Nibble{Nibble(last)}, c.Path), Next: c.Next}, nil
		case BranchNode:
			return ExtensionNode{Path: []Nibble{Nibble(last)}, Next: branch.Children[last]}, nil
		default:
			return nil, InvalidInputError("unsupported node type while normalizing branch")
		}

	default:
		return branch, nil
	}
}
