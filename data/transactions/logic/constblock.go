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

// intcblock: opcode, {varuint count}, count * {varuint value}
// bytecblock: opcode, {varuint count}, count * ({varuint length}, length bytes)
//
// Both checks return the full size of the block starting at pc, opcode
// included, and never read beyond len(program).

func checkIntConstBlock(program []byte, pc int) (int, error) {
	size := 1
	numInts, bytesUsed := Uvarint(program[pc+size:])
	if bytesUsed <= 0 {
		return 0, &ConstBlockError{Op: "intcblock", Pc: pc, Index: -1, Reason: "could not decode constant count"}
	}
	size += bytesUsed
	for i := uint64(0); i < numInts; i++ {
		if pc+size >= len(program) {
			return 0, &ConstBlockError{Op: "intcblock", Pc: pc, Index: int(i), Reason: "block exceeds program length"}
		}
		_, bytesUsed = Uvarint(program[pc+size:])
		if bytesUsed <= 0 {
			return 0, &ConstBlockError{Op: "intcblock", Pc: pc, Index: int(i), Reason: "could not decode value"}
		}
		size += bytesUsed
	}
	return size, nil
}

func checkByteConstBlock(program []byte, pc int) (int, error) {
	size := 1
	numItems, bytesUsed := Uvarint(program[pc+size:])
	if bytesUsed <= 0 {
		return 0, &ConstBlockError{Op: "bytecblock", Pc: pc, Index: -1, Reason: "could not decode constant count"}
	}
	size += bytesUsed
	for i := uint64(0); i < numItems; i++ {
		if pc+size >= len(program) {
			return 0, &ConstBlockError{Op: "bytecblock", Pc: pc, Index: int(i), Reason: "block exceeds program length"}
		}
		itemLen, bytesUsed := Uvarint(program[pc+size:])
		if bytesUsed <= 0 {
			return 0, &ConstBlockError{Op: "bytecblock", Pc: pc, Index: int(i), Reason: "could not decode length"}
		}
		size += bytesUsed
		start := uint64(pc + size)
		end := start + itemLen
		if end > uint64(len(program)) || end < start {
			return 0, &ConstBlockError{Op: "bytecblock", Pc: pc, Index: int(i), Reason: "bytes exceed program length"}
		}
		size = int(end) - pc
	}
	return size, nil
}
