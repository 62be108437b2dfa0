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
	"reflect"

	"github.com/hexmpt/mpt/common"
)

// Trie is the thin, stateful façade over the pure Builder/Destroyer logic
// in this package: it tracks the current root node, resolves keys to
// nibble paths, and persists every new node through a Store as it goes.
// A Trie is not safe for concurrent use; callers needing concurrent reads
// during a write should take their own snapshot of Root beforehand.
type Trie struct {
	store *Store
	root  Node
}

// New creates an empty Trie backed by backend, using DefaultConfig.
func New(backend BackendKV) *Trie {
	return NewWithConfig(backend, DefaultConfig)
}

// NewWithConfig creates an empty Trie backed by backend, using the given
// configuration.
func NewWithConfig(backend BackendKV, config MptConfig) *Trie {
	return &Trie{store: NewStoreWithConfig(backend, config), root: EmptyNode{}}
}

// Root returns the Keccak-256 hash of the current root node's RLP
// encoding. Unlike interior nodes, the root is always addressed by hash,
// even when its encoding would otherwise be short enough to inline.
func (t *Trie) Root() common.Hash {
	return common.Keccak256(EncodeNode(t.root))
}

// Get looks up key, returning its value and true if present, or nil and
// false if key is not in the trie.
func (t *Trie) Get(key []byte) ([]byte, bool, error) {
	return get(t.store, t.root, ToNibbles(key))
}

// Put inserts or updates the value stored under key. Following the
// Ethereum Yellow Paper's prohibition on empty-string values, putting an
// empty value is treated identically to deleting key.
func (t *Trie) Put(key, value []byte) error {
	if len(value) == 0 {
		return t.Delete(key)
	}
	newRoot, err := Put(t.store, t.root, ToNibbles(key), value)
	if err != nil {
		return err
	}
	t.root = newRoot
	return nil
}

// Delete removes key from the trie. Deleting a key that is not present is
// a no-op.
func (t *Trie) Delete(key []byte) error {
	newRoot, err := Remove(t.store, t.root, ToNibbles(key))
	if err != nil {
		return err
	}
	t.root = newRoot
	return nil
}

func get(store *Store, node Node, key []Nibble) ([]byte, bool, error) {
	switch n := node.(type) {
	case EmptyNode:
		return nil, false, nil

	case LeafNode:
		if !reflect.DeepEqual(n.Path, key) {
			return nil, false, nil
		}
		return n.Value, true, nil

	case ExtensionNode:
		rest, ok := StripPrefix(key, n.Path)
		if !ok {
			return nil, false, nil
		}
		child, err := store.Load(n.Next)
		if err != nil {
			return nil, false, err
		}
		return get(store, child, rest)

	case BranchNode:
		if len(key) == 0 {
			return n.Value, hasValue(n.Value), nil
		}
		child, err := store.Load(n.Children[key[0]])
		if err != nil {
			return nil, false, err
		}
		return get(store, child, key[1:])

	default:
		return nil, false, InvalidInputError("unsupported node type in Get")
	}
}
