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

// Put inserts or updates the value stored under key in the subtree rooted
// at node, returning the resulting subtree. It is a pure function: node is
// never mutated, and the result shares whatever structure of node did not
// change. The recursion depth is bounded by len(key).
func Put(store *Store, node Node, key []Nibble, value []byte) (Node, error) {
	switch n := node.(type) {
	case EmptyNode:
		return LeafNode{Path: key, Value: value}, nil

	case LeafNode:
		return putIntoLeaf(store, n, key, value)

	case ExtensionNode:
		return putIntoExtension(store, n, key, value)

	case BranchNode:
		return putIntoBranch(store, n, key, value)

	default:
		return nil, InvalidInputError("unsupported node type in Put")
	}
}

func putIntoLeaf(store *Store, n LeafNode, key []Nibble, value []byte) (Node, error) {
	common := CommonPrefixLength(n.Path, key)

	// Same path: replace the stored value in place.
	if common == len(n.Path) && common == len(key) {
		return LeafNode{Path: n.Path, Value: value}, nil
	}

	var branch BranchNode

	switch {
	case common == len(n.Path):
		// n.Path is a strict prefix of key: the existing value terminates at
		// the new branch, and the new key continues one level deeper.
		branch.Value = n.Value
		ref, err := store.StoreNode(LeafNode{Path: key[common+1:], Value: value})
		if err != nil {
			return nil, err
		}
		branch.Children[key[common]] = ref

	case common == len(key):
		// key is a strict prefix of n.Path: symmetric to the case above.
		branch.Value = value
		ref, err := store.StoreNode(LeafNode{Path: n.Path[common+1:], Value: n.Value})
		if err != nil {
			return nil, err
		}
		branch.Children[n.Path[common]] = ref

	default:
		// Both paths diverge before either is exhausted.
		oldRef, err := store.StoreNode(LeafNode{Path: n.Path[common+1:], Value: n.Value})
		if err != nil {
			return nil, err
		}
		newRef, err := store.StoreNode(LeafNode{Path: key[common+1:], Value: value})
		if err != nil {
			return nil, err
		}
		branch.Children[n.Path[common]] = oldRef
		branch.Children[key[common]] = newRef
	}

	return wrapInExtension(store, key[:common], branch)
}

func putIntoExtension(store *Store, n ExtensionNode, key []Nibble, value []byte) (Node, error) {
	common := CommonPrefixLength(n.Path, key)

	if common == len(n.Path) {
		// The full extension path matches; descend into the child.
		child, err := store.Load(n.Next)
		if err != nil {
			return nil, err
		}
		newChild, err := Put(store, child, key[common:], value)
		if err != nil {
			return nil, err
		}
		newRef, err := store.StoreNode(newChild)
		if err != nil {
			return nil, err
		}
		return ExtensionNode{Path: n.Path, Next: newRef}, nil
	}

	// The extension path and key diverge partway through: split it into a
	// branch, with the remainder of the extension's path on one side and
	// the new value on the other.
	var branch BranchNode

	remaining := n.Path[common+1:]
	childRef, err := wrapExtensionRef(store, remaining, n.Next)
	if err != nil {
		return nil, err
	}
	branch.Children[n.Path[common]] = childRef

	if common == len(key) {
		branch.Value = value
	} else {
		newRef, err := store.StoreNode(LeafNode{Path: key[common+1:], Value: value})
		if err != nil {
			return nil, err
		}
		branch.Children[key[common]] = newRef
	}

	return wrapInExtension(store, n.Path[:common], branch)
}

func putIntoBranch(store *Store, n BranchNode, key []Nibble, value []byte) (Node, error) {
	if len(key) == 0 {
		children := n.Children
		return BranchNode{Children: children, Value: value}, nil
	}

	idx := key[0]
	child, err := store.Load(n.Children[idx])
	if err != nil {
		return nil, err
	}
	newChild, err := Put(store, child, key[1:], value)
	if err != nil {
		return nil, err
	}
	newRef, err := store.StoreNode(newChild)
	if err != nil {
		return nil, err
	}

	children := n.Children
	children[idx] = newRef
	return BranchNode{Children: children, Value: n.Value}, nil
}

// wrapInExtension stores branch and, if path is non-empty, wraps the result
// in an ExtensionNode covering path. It returns the resulting top-level
// node, ready to be returned from Put.
func wrapInExtension(store *Store, path []Nibble, branch BranchNode) (Node, error) {
	if len(path) == 0 {
		return branch, nil
	}
	ref, err := store.StoreNode(branch)
	if err != nil {
		return nil, err
	}
	return ExtensionNode{Path: path, Next: ref}, nil
}

// wrapExtensionRef returns a NodeRef for the subtree reached by following
// path and then next: if path is empty, next is returned unchanged, since a
// zero-length extension path is not well-formed; otherwise a fresh
// ExtensionNode is stored.
func wrapExtensionRef(store *Store, path []Nibble, next NodeRef) (NodeRef, error) {
	if len(path) == 0 {
		return next, nil
	}
	return store.StoreNode(ExtensionNode{Path: path, Next: next})
}
