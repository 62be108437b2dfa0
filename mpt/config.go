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

// MptConfig defines a set of configuration options for customizing the MPT
// implementation. It is mainly intended to facilitate experimenting with
// the inlining threshold, which is otherwise fixed at the Ethereum-standard
// hash size.
type MptConfig struct {
	// A descriptive name for this configuration. It has no effect except for
	// logging and debugging purposes.
	Name string

	// InlineThreshold is the maximum RLP-encoded byte length, exclusive, at
	// which a child node is embedded directly in its parent rather than
	// being written to the backend under its hash. The Ethereum-standard
	// value, used by DefaultConfig, is the size of a Keccak-256 hash.
	InlineThreshold int
}

// DefaultConfig follows the Ethereum Yellow Paper's choice of inlining
// threshold: a child is stored by hash once its encoding would be at least
// as large as the hash that would otherwise address it.
var DefaultConfig = MptConfig{
	Name:            "Default",
	InlineThreshold: common.HashSize,
}

var allMptConfigs = []MptConfig{
	DefaultConfig,
}

// GetConfigByName attempts to locate a configuration with the given name.
func GetConfigByName(name string) (MptConfig, bool) {
	for _, config := range allMptConfigs {
		if config.Name == name {
			return config, true
		}
	}
	return MptConfig{}, false
}
