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
	"testing"
)

func TestBuilder_EmptyPlusLeafYieldsLeaf(t *testing.T) {
	store := NewStore(newInMemoryBackend())
	got, err := Put(store, EmptyNode{}, []Nibble{1, 2, 3}, []byte("v"))
	if err != nil {
		t.Fatal(err)
	}
	leaf, ok := got.(LeafNode)
	if !ok {
		t.Fatalf("expected a LeafNode, got %T", got)
	}
	if string(leaf.Value) != "v" {
		t.Errorf("wrong value, got %q", leaf.Value)
	}
}

func TestBuilder_LeafSameKeyReplacesValue(t *testing.T) {
	store := NewStore(newInMemoryBackend())
	leaf := LeafNode{Path: []Nibble{1, 2}, Value: []byte("old")}
	got, err := Put(store, leaf, []Nibble{1, 2}, []byte("new"))
	if err != nil {
		t.Fatal(err)
	}
	updated, ok := got.(LeafNode)
	if !ok {
		t.Fatalf("expected a LeafNode, got %T", got)
	}
	if string(updated.Value) != "new" {
		t.Errorf("expected the value to be replaced, got %q", updated.Value)
	}
}

func TestBuilder_LeafDivergesIntoBranch(t *testing.T) {
	store := NewStore(newInMemoryBackend())
	leaf := LeafNode{Path: []Nibble{1, 2, 3}, Value: []byte("old")}
	got, err := Put(store, leaf, []Nibble{1, 2, 9}, []byte("new"))
	if err != nil {
		t.Fatal(err)
	}
	ext, ok := got.(ExtensionNode)
	if !ok {
		t.Fatalf("expected an ExtensionNode wrapping the new branch, got %T", got)
	}
	if len(ext.Path) != 2 {
		t.Fatalf("expected a shared prefix of length 2, got %v", ext.Path)
	}
	branch, err := store.Load(ext.Next)
	if err != nil {
		t.Fatal(err)
	}
	b, ok := branch.(BranchNode)
	if !ok {
		t.Fatalf("expected a BranchNode, got %T", branch)
	}
	if b.Children[3].IsEmpty() || b.Children[9].IsEmpty() {
		t.Errorf("expected both diverging keys to be present as branch children")
	}
}

func TestBuilder_LeafPrefixOfNewKeyYieldsBranchWithValue(t *testing.T) {
	store := NewStore(newInMemoryBackend())
	leaf := LeafNode{Path: []Nibble{1, 2}, Value: []byte("short")}
	got, err := Put(store, leaf, []Nibble{1, 2, 3, 4}, []byte("long"))
	if err != nil {
		t.Fatal(err)
	}
	ext, ok := got.(ExtensionNode)
	if !ok {
		t.Fatalf("expected an ExtensionNode, got %T", got)
	}
	branch, err := store.Load(ext.Next)
	if err != nil {
		t.Fatal(err)
	}
	b, ok := branch.(BranchNode)
	if !ok {
		t.Fatalf("expected a BranchNode, got %T", branch)
	}
	if string(b.Value) != "short" {
		t.Errorf("expected the shorter leaf's value to terminate at the branch, got %q", b.Value)
	}
}

func TestBuilder_DescendsThroughMatchingExtension(t *testing.T) {
	store := NewStore(newInMemoryBackend())
	leafRef, err := store.StoreNode(LeafNode{Path: []Nibble{5}, Value: []byte("a")})
	if err != nil {
		t.Fatal(err)
	}
	ext := ExtensionNode{Path: []Nibble{1, 2}, Next: leafRef}

	got, err := Put(store, ext, []Nibble{1, 2, 5}, []byte("b"))
	if err != nil {
		t.Fatal(err)
	}
	newExt, ok := got.(ExtensionNode)
	if !ok {
		t.Fatalf("expected an ExtensionNode, got %T", got)
	}
	child, err := store.Load(newExt.Next)
	if err != nil {
		t.Fatal(err)
	}
	leaf, ok := child.(LeafNode)
	if !ok {
		t.Fatalf("expected a LeafNode, got %T", child)
	}
	if string(leaf.Value) != "b" {
		t.Errorf("expected the updated value to be visible, got %q", leaf.Value)
	}
}

func TestBuilder_BranchSetsOwnValue(t *testing.T) {
	store := NewStore(newInMemoryBackend())
	var branch BranchNode
	got, err := Put(store, branch, nil, []byte("root-value"))
	if err != nil {
		t.Fatal(err)
	}
	b, ok := got.(BranchNode)
	if !ok {
		t.Fatalf("expected a BranchNode, got %T", got)
	}
	if string(b.Value) != "root-value" {
		t.Errorf("wrong branch value, got %q", b.Value)
	}
}
