// Copyright (C) 2019-2026 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package logic

// maxVarintLen is the longest encoding of a 64-bit value.
const maxVarintLen = 10

// Uvarint decodes an unsigned varint from the front of buf and returns the
// value and the number of bytes read (> 0). If an error occurred, the value is
// 0 and the number of bytes n is <= 0 meaning:
//
//	n == 0: buf too small (or empty)
//	n  < 0: value larger than 64 bits (overflow);
//	        -n is the number of bytes read
func Uvarint(buf []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, b := range buf {
		if i == maxVarintLen {
			// more than ten bytes can never be a valid encoding
			return 0, -(i + 1)
		}
		if b < 0x80 {
			if i == maxVarintLen-1 && b > 1 {
				return 0, -(i + 1)
			}
			return x | uint64(b)<<s, i + 1
		}
		x |= uint64(b&0x7f) << s
		s += 7
	}
	return 0, 0
}

// AppendUvarint appends the varint encoding of x to dst.
func AppendUvarint(dst []byte, x uint64) []byte {
	for x >= 0x80 {
		dst = append(dst, byte(x)|0x80)
		x >>= 7
	}
	return append(dst, byte(x))
}

// ProgramVersion returns the version declared at the start of program and the
// number of bytes the version occupies.
func ProgramVersion(program []byte) (version uint64, length int, err error) {
	if len(program) == 0 {
		return 0, 0, errorf(ErrMalformedVersion, "invalid program (empty)")
	}
	version, vlen := Uvarint(program)
	if vlen <= 0 {
		return 0, 0, errorf(ErrMalformedVersion, "invalid version")
	}
	return version, vlen, nil
}
