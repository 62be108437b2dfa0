// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// This file cross-checks root hashes produced by this package against
// go-ethereum's own trie implementation, which serves as a compliance
// oracle for the RLP/hex-prefix encoding rules this package re-implements.
// go-ethereum is deliberately only ever imported from test code; see
// DESIGN.md.
package mpt

import (
	"testing"

	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/trie"

	"github.com/hexmpt/mpt/common"
)

func newGethTrie(t *testing.T) *trie.Trie {
	t.Helper()
	kvdb := rawdb.NewMemoryDatabase()
	db := trie.NewDatabaseWithConfig(kvdb, &trie.Config{})
	return trie.NewEmpty(db)
}

func TestCompliance_EmptyTrieMatchesGeth(t *testing.T) {
	gt := newGethTrie(t)
	want := common.Hash(gt.Hash())

	ours := New(newInMemoryBackend())
	if got := ours.Root(); got != want {
		t.Errorf("empty-trie root mismatch, wanted %v, got %v", want, got)
	}
}

func TestCompliance_SingleEntryMatchesGeth(t *testing.T) {
	gt := newGethTrie(t)
	if err := gt.Update([]byte("key"), []byte("value")); err != nil {
		t.Fatal(err)
	}
	want := common.Hash(gt.Hash())

	ours := New(newInMemoryBackend())
	if err := ours.Put([]byte("key"), []byte("value")); err != nil {
		t.Fatal(err)
	}
	if got := ours.Root(); got != want {
		t.Errorf("root mismatch, wanted %v, got %v", want, got)
	}
}

func TestCompliance_ManyEntriesMatchGeth(t *testing.T) {
	entries := map[string]string{
		"do":          "verb",
		"dog":         "puppy",
		"doge":        "coin",
		"horse":       "stallion",
		"house":       "building",
		"houses":      "plural",
		"":            "root-value",
		"a":           "1",
		"ab":          "2",
		"abc":         "3",
		"abcd":        "4",
		"abcde":       "5",
		"zebra":       "stripes",
		"zebrafish":   "aquarium",
		"\x00\x01\x02": "binary",
	}

	gt := newGethTrie(t)
	ours := New(newInMemoryBackend())
	for k, v := range entries {
		if err := gt.Update([]byte(k), []byte(v)); err != nil {
			t.Fatal(err)
		}
		if err := ours.Put([]byte(k), []byte(v)); err != nil {
			t.Fatal(err)
		}
	}

	want := common.Hash(gt.Hash())
	if got := ours.Root(); got != want {
		t.Errorf("root mismatch across %d entries, wanted %v, got %v", len(entries), want, got)
	}
}

func TestCompliance_InsertThenDeleteMatchesGeth(t *testing.T) {
	gt := newGethTrie(t)
	ours := New(newInMemoryBackend())

	keep := map[string]string{"alpha": "1", "beta": "2", "gamma": "3"}
	drop := map[string]string{"delta": "4", "epsilon": "5"}

	for k, v := range keep {
		mustUpdate(t, gt, ours, k, v)
	}
	for k, v := range drop {
		mustUpdate(t, gt, ours, k, v)
	}
	for k := range drop {
		if err := gt.Delete([]byte(k)); err != nil {
			t.Fatal(err)
		}
		if err := ours.Delete([]byte(k)); err != nil {
			t.Fatal(err)
		}
	}

	want := common.Hash(gt.Hash())
	if got := ours.Root(); got != want {
		t.Errorf("root mismatch after insert-then-delete, wanted %v, got %v", want, got)
	}
}

func mustUpdate(t *testing.T, gt *trie.Trie, ours *Trie, key, value string) {
	t.Helper()
	if err := gt.Update([]byte(key), []byte(value)); err != nil {
		t.Fatal(err)
	}
	if err := ours.Put([]byte(key), []byte(value)); err != nil {
		t.Fatal(err)
	}
}
