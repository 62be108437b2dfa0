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
)

// MissingNodeError is returned by a Store when a referenced node hash
// cannot be located in the underlying backend.
type MissingNodeError struct {
	Hash common.Hash
}

func (e *MissingNodeError) Error() string {
	return fmt.Sprintf("node with hash %v not found in store", e.Hash)
}

// CorruptNodeError is returned when bytes retrieved from a backend fail to
// decode into a well-formed node.
type CorruptNodeError struct {
	Hash common.Hash
	Err  error
}

func (e *CorruptNodeError) Error() string {
	return fmt.Sprintf("node with hash %v is corrupt: %v", e.Hash, e.Err)
}

func (e *CorruptNodeError) Unwrap() error {
	return e.Err
}

// BackendError wraps an error returned by the underlying key/value backend.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error: %v", e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// InvalidInputError is returned by Builder/Destroyer/Trie operations when
// they meet a node of a type this package does not define. Empty keys are
// valid input and do not produce this error.
type InvalidInputError string

func (e InvalidInputError) Error() string {
	return string(e)
}
