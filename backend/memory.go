// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package backend

import (
	"sync"

	"github.com/hexmpt/mpt/common"
)

// MemoryBackend is a mpt.BackendKV implementation backed by a plain Go map,
// guarded by a mutex. It is intended for tests and for tries whose content
// need not outlive the process.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[common.Hash][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: map[common.Hash][]byte{}}
}

// Get implements mpt.BackendKV.
func (b *MemoryBackend) Get(key common.Hash) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	value, found := b.data[key]
	if !found {
		return nil, false, nil
	}
	// Return a copy so callers cannot mutate stored content through the
	// returned slice.
	res := make([]byte, len(value))
	copy(res, value)
	return res, true, nil
}

// Put implements mpt.BackendKV.
func (b *MemoryBackend) Put(key common.Hash, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	b.data[key] = stored
	return nil
}

// Len reports the number of entries currently held by the backend.
func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data)
}
