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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/algorand/lsigcheck/test/partitiontest"
)

func requireConstBlockError(t *testing.T, err error, op string, pc, index int) {
	t.Helper()
	require.ErrorIs(t, err, ErrConstBlockDecode)
	var cbe *ConstBlockError
	require.True(t, errors.As(err, &cbe), "%v is not a ConstBlockError", err)
	require.Equal(t, op, cbe.Op)
	require.Equal(t, pc, cbe.Pc)
	require.Equal(t, index, cbe.Index)
}

func TestCheckIntConstBlock(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	// intcblock 1 300 5
	block := []byte{0x20, 0x03, 0x01, 0xac, 0x02, 0x05}
	size, err := checkIntConstBlock(block, 0)
	require.NoError(t, err)
	require.Equal(t, len(block), size)

	// same block after a version byte and followed by more code
	program := append([]byte{0x01}, block...)
	program = append(program, 0x22)
	size, err = checkIntConstBlock(program, 1)
	require.NoError(t, err)
	require.Equal(t, len(block), size)

	// an empty block is just opcode and count
	size, err = checkIntConstBlock([]byte{0x20, 0x00}, 0)
	require.NoError(t, err)
	require.Equal(t, 2, size)
}

func TestCheckIntConstBlockErrors(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	// nothing after the opcode
	_, err := checkIntConstBlock([]byte{0x01, 0x20}, 1)
	requireConstBlockError(t, err, "intcblock", 1, -1)
	require.Contains(t, err.Error(), "could not decode constant count")

	// count of 3, only 2 values
	_, err = checkIntConstBlock([]byte{0x20, 0x03, 0x01, 0x02}, 0)
	requireConstBlockError(t, err, "intcblock", 0, 2)
	require.Equal(t, "intcblock const[2] at pc=0: block exceeds program length", err.Error())

	// last value truncated
	_, err = checkIntConstBlock([]byte{0x20, 0x02, 0x01, 0x80}, 0)
	requireConstBlockError(t, err, "intcblock", 0, 1)
	require.Contains(t, err.Error(), "could not decode value")

	// value overflows 64 bits
	overflow := []byte{0x20, 0x01, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}
	_, err = checkIntConstBlock(overflow, 0)
	requireConstBlockError(t, err, "intcblock", 0, 0)
}

func TestCheckByteConstBlock(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	// bytecblock 0x010203 0x0405060708
	block := []byte{0x26, 0x02, 0x03, 0x01, 0x02, 0x03, 0x05, 0x04, 0x05, 0x06, 0x07, 0x08}
	require.Len(t, block, 12)
	size, err := checkByteConstBlock(block, 0)
	require.NoError(t, err)
	require.Equal(t, 12, size)

	// a zero length entry may end exactly at the end of the program
	size, err = checkByteConstBlock([]byte{0x26, 0x01, 0x00}, 0)
	require.NoError(t, err)
	require.Equal(t, 3, size)
}

func TestCheckByteConstBlockErrors(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	_, err := checkByteConstBlock([]byte{0x26}, 0)
	requireConstBlockError(t, err, "bytecblock", 0, -1)

	// second entry missing entirely
	_, err = checkByteConstBlock([]byte{0x26, 0x02, 0x01, 0xaa}, 0)
	requireConstBlockError(t, err, "bytecblock", 0, 1)
	require.Contains(t, err.Error(), "block exceeds program length")

	// length runs past the end
	_, err = checkByteConstBlock([]byte{0x26, 0x01, 0x05, 0x01, 0x02}, 0)
	requireConstBlockError(t, err, "bytecblock", 0, 0)
	require.Contains(t, err.Error(), "bytes exceed program length")

	// length truncated
	_, err = checkByteConstBlock([]byte{0x26, 0x01, 0x80}, 0)
	requireConstBlockError(t, err, "bytecblock", 0, 0)
	require.Contains(t, err.Error(), "could not decode length")

	// a huge length must not wrap around
	huge := []byte{0x26, 0x01, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01, 0x00}
	_, err = checkByteConstBlock(huge, 0)
	requireConstBlockError(t, err, "bytecblock", 0, 0)
}

// Every strict prefix of a valid block must fail to decode, without panicking.
func TestConstBlockTruncation(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	intBlock := []byte{0x20, 0x03, 0x01, 0xac, 0x02, 0x05}
	byteBlock := []byte{0x26, 0x02, 0x03, 0x01, 0x02, 0x03, 0x05, 0x04, 0x05, 0x06, 0x07, 0x08}
	for i := 1; i < len(intBlock); i++ {
		_, err := checkIntConstBlock(intBlock[:i], 0)
		require.ErrorIs(t, err, ErrConstBlockDecode, "prefix %d", i)
	}
	for i := 1; i < len(byteBlock); i++ {
		_, err := checkByteConstBlock(byteBlock[:i], 0)
		require.ErrorIs(t, err, ErrConstBlockDecode, "prefix %d", i)
	}
}

func TestConstBlockRandom(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		ints := rapid.SliceOfN(rapid.Uint64(), 0, 8).Draw(t, "ints")
		block := AppendUvarint([]byte{IntcBlockOpcode}, uint64(len(ints)))
		for _, v := range ints {
			block = AppendUvarint(block, v)
		}
		size, err := checkIntConstBlock(block, 0)
		if err != nil || size != len(block) {
			t.Fatalf("intcblock %x: size %d err %v", block, size, err)
		}

		items := rapid.SliceOfN(rapid.SliceOfN(rapid.Byte(), 0, 20), 0, 8).Draw(t, "items")
		block = AppendUvarint([]byte{BytecBlockOpcode}, uint64(len(items)))
		for _, item := range items {
			block = AppendUvarint(block, uint64(len(item)))
			block = append(block, item...)
		}
		size, err = checkByteConstBlock(block, 0)
		if err != nil || size != len(block) {
			t.Fatalf("bytecblock %x: size %d err %v", block, size, err)
		}

		// arbitrary bytes never panic and never claim more than is there
		junk := rapid.SliceOfN(rapid.Byte(), 1, 40).Draw(t, "junk")
		if size, err := checkByteConstBlock(junk, 0); err == nil && size > len(junk) {
			t.Fatalf("bytecblock %x: size %d beyond end", junk, size)
		}
	})
}
