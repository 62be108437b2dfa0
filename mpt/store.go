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

// BackendKV is the opaque content-addressed key/value store a Store is
// built on top of. Implementations are expected to be deterministic and to
// treat Put as idempotent: writing the same hash/value pair twice has no
// observable effect beyond the first write.
type BackendKV interface {
	// Get retrieves the bytes stored under key. The second return value is
	// false if no value is stored under that key.
	Get(key common.Hash) ([]byte, bool, error)

	// Put stores value under key.
	Put(key common.Hash, value []byte) error
}

// Store mediates all node (de)serialization and content-addressing between
// the pure Builder/Destroyer logic and a concrete BackendKV. It is the only
// component in this package aware of the inlining threshold: children whose
// RLP encoding is shorter than config.InlineThreshold are embedded directly
// in their parent rather than being written to the backend.
type Store struct {
	backend BackendKV
	config  MptConfig
}

// NewStore wraps backend in a Store using DefaultConfig.
func NewStore(backend BackendKV) *Store {
	return NewStoreWithConfig(backend, DefaultConfig)
}

// NewStoreWithConfig wraps backend in a Store using the given configuration.
func NewStoreWithConfig(backend BackendKV, config MptConfig) *Store {
	return &Store{backend: backend, config: config}
}

// StoreNode persists node, returning the NodeRef by which it should be
// referenced from its parent. The empty node is never written to the
// backend; it is always represented by EmptyRef(). A node whose encoding is
// shorter than the configured inlining threshold is inlined rather than
// written.
func (s *Store) StoreNode(node Node) (NodeRef, error) {
	if _, ok := node.(EmptyNode); ok {
		return EmptyRef(), nil
	}

	encoded := EncodeNode(node)
	if len(encoded) < s.config.InlineThreshold {
		return InlineRef(node), nil
	}

	hash := common.Keccak256(encoded)
	if err := s.backend.Put(hash, encoded); err != nil {
		return NodeRef{}, &BackendError{Err: err}
	}
	return HashRef(hash), nil
}

// Load resolves ref into the Node it refers to, fetching and decoding from
// the backend if necessary.
func (s *Store) Load(ref NodeRef) (Node, error) {
	if ref.IsEmpty() {
		return EmptyNode{}, nil
	}
	if ref.IsInline() {
		return ref.Inline(), nil
	}

	hash := ref.Hash()
	data, found, err := s.backend.Get(hash)
	if err != nil {
		return nil, &BackendError{Err: err}
	}
	if !found {
		return nil, &MissingNodeError{Hash: hash}
	}

	node, err := DecodeNode(data)
	if err != nil {
		return nil, &CorruptNodeError{Hash: hash, Err: err}
	}
	return node, nil
}
