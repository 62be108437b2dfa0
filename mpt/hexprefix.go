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

import "fmt"

// EncodeHexPrefix packs a nibble path into the compact hex-prefix form used
// to serialize Leaf and Extension paths, as described in Appendix C of the
// Ethereum Yellow Paper. The terminator flag distinguishes a Leaf path
// (terminator = true) from an Extension path (terminator = false); the odd
// length of the path is folded into the first output nibble so the result is
// always a whole number of bytes.
func EncodeHexPrefix(path []Nibble, terminator bool) []byte {
	odd := len(path)%2 == 1

	flag := Nibble(0)
	if terminator {
		flag += 2
	}
	if odd {
		flag += 1
	}

	var res []byte
	if odd {
		res = make([]byte, 0, len(path)/2+1)
		res = append(res, byte(flag<<4)|byte(path[0]))
		path = path[1:]
	} else {
		res = make([]byte, 0, len(path)/2+1)
		res = append(res, byte(flag<<4))
	}
	res = append(res, FromNibbles(path)...)
	return res
}

// DecodeHexPrefix unpacks a compact hex-prefix encoded path, returning the
// nibble path and the terminator flag it carried.
func DecodeHexPrefix(data []byte) ([]Nibble, bool, error) {
	if len(data) == 0 {
		return nil, false, fmt.Errorf("hex-prefix encoded path must not be empty")
	}

	first := data[0]
	flag := Nibble(first >> 4)
	if flag > 3 {
		return nil, false, fmt.Errorf("invalid hex-prefix flag nibble: %d", flag)
	}
	terminator := flag&2 != 0
	odd := flag&1 != 0

	nibbles := ToNibbles(data[1:])
	if odd {
		nibbles = append([]Nibble{Nibble(first & 0xF)}, nibbles...)
	} else if first&0xF != 0 {
		return nil, false, fmt.Errorf("invalid hex-prefix encoding: even-length path with non-zero low nibble")
	}
	return nibbles, terminator, nil
}
