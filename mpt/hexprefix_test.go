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
	"bytes"
	"reflect"
	"testing"
)

func TestHexPrefix_KnownVectors(t *testing.T) {
	tests := []struct {
		path       []Nibble
		terminator bool
		want       []byte
	}{
		// even length, extension
		{[]Nibble{1, 2, 3, 4}, false, []byte{0x00, 0x12, 0x34}},
		// odd length, extension
		{[]Nibble{1, 2, 3}, false, []byte{0x11, 0x23}},
		// even length, leaf
		{[]Nibble{1, 2, 3, 4}, true, []byte{0x20, 0x12, 0x34}},
		// odd length, leaf
		{[]Nibble{1, 2, 3}, true, []byte{0x31, 0x23}},
		// empty path, leaf
		{[]Nibble{}, true, []byte{0x20}},
		// empty path, extension
		{[]Nibble{}, false, []byte{0x00}},
	}
	for _, test := range tests {
		got := EncodeHexPrefix(test.path, test.terminator)
		if !bytes.Equal(got, test.want) {
			t.Errorf("EncodeHexPrefix(%v,%v) = %v, want %v", test.path, test.terminator, got, test.want)
		}
		path, terminator, err := DecodeHexPrefix(test.want)
		if err != nil {
			t.Fatalf("failed to decode %v: %v", test.want, err)
		}
		if terminator != test.terminator {
			t.Errorf("wrong terminator flag, wanted %v, got %v", test.terminator, terminator)
		}
		if len(path) == 0 && len(test.path) == 0 {
			continue
		}
		if !reflect.DeepEqual(path, test.path) {
			t.Errorf("wrong path, wanted %v, got %v", test.path, path)
		}
	}
}

func TestHexPrefix_RoundTrip(t *testing.T) {
	paths := [][]Nibble{
		{},
		{0xa},
		{0x1, 0x2},
		{0x1, 0x2, 0x3},
		{0xf, 0xe, 0xd, 0xc, 0xb},
	}
	for _, p := range paths {
		for _, terminator := range []bool{true, false} {
			encoded := EncodeHexPrefix(p, terminator)
			decoded, gotTerminator, err := DecodeHexPrefix(encoded)
			if err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if gotTerminator != terminator {
				t.Errorf("terminator mismatch for %v", p)
			}
			if len(decoded) == 0 && len(p) == 0 {
				continue
			}
			if !reflect.DeepEqual(decoded, p) {
				t.Errorf("round-trip mismatch, wanted %v, got %v", p, decoded)
			}
		}
	}
}

func TestHexPrefix_DecodeRejectsEmptyInput(t *testing.T) {
	if _, _, err := DecodeHexPrefix(nil); err == nil {
		t.Errorf("expected an error decoding an empty buffer")
	}
}

func TestHexPrefix_DecodeRejectsInvalidFlag(t *testing.T) {
	if _, _, err := DecodeHexPrefix([]byte{0xFF}); err == nil {
		t.Errorf("expected an error for an invalid flag nibble")
	}
}
