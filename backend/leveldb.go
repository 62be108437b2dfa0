// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package backend provides concrete mpt.BackendKV implementations: a
// durable one built on goleveldb, and an in-memory one for tests and
// short-lived tries.
package backend

import (
	"fmt"

	"github.com/hexmpt/mpt/common"
	"github.com/syndtr/goleveldb/leveldb"
)

// LevelDBBackend is a mpt.BackendKV backed by an on-disk goleveldb database.
// Node hashes are used directly as database keys, since they are already
// uniformly distributed 32-byte values.
type LevelDBBackend struct {
	db *leveldb.DB
}

// OpenLevelDB opens (creating if necessary) a goleveldb database at path
// and wraps it as a backend.
func OpenLevelDB(path string) (*LevelDBBackend, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb at %s: %w", path, err)
	}
	return &LevelDBBackend{db: db}, nil
}

// Get implements mpt.BackendKV.
func (b *LevelDBBackend) Get(key common.Hash) ([]byte, bool, error) {
	value, err := b.db.Get(key[:], nil)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Put implements mpt.BackendKV.
func (b *LevelDBBackend) Put(key common.Hash, value []byte) error {
	return b.db.Put(key[:], value, nil)
}

// Close releases the underlying database handle.
func (b *LevelDBBackend) Close() error {
	return b.db.Close()
}
