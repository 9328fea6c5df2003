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
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/lsigcheck/test/partitiontest"
)

func TestOpcodesByVersion(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	opSpecs := make([][]opEntry, LogicVersion)
	for v := uint64(1); v <= LogicVersion; v++ {
		v := v
		t.Run(fmt.Sprintf("v=%d", v), func(t *testing.T) {
			opSpecs[v-1] = opcodesByVersion(v)
			for i := 0; i < len(opSpecs[v-1])-1; i++ {
				cur := opSpecs[v-1][i]
				next := opSpecs[v-1][i+1]
				require.Less(t, cur.Opcode, next.Opcode, "%s and %s out of order or duplicated", cur.Name, next.Name)
			}
			for _, oe := range opSpecs[v-1] {
				require.LessOrEqual(t, oe.Version, v)
			}
		})
	}
	require.Greater(t, len(opSpecs[1]), len(opSpecs[0]))
}

func TestOpcodesByVersionCosts(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	find := func(version uint64, name string) (opEntry, bool) {
		for _, oe := range opcodesByVersion(version) {
			if oe.Name == name {
				return oe, true
			}
		}
		return opEntry{}, false
	}

	sha, ok := find(1, "sha256")
	require.True(t, ok)
	require.Equal(t, 7, sha.Cost)

	sha, ok = find(2, "sha256")
	require.True(t, ok)
	require.Equal(t, 35, sha.Cost)
	// introduced in 1, repriced in 2
	require.Equal(t, uint64(1), sha.Version)

	keccak, _ := find(2, "keccak256")
	require.Equal(t, 130, keccak.Cost)
	sha512, _ := find(2, "sha512_256")
	require.Equal(t, 45, sha512.Cost)
	ed, _ := find(2, "ed25519verify")
	require.Equal(t, 1900, ed.Cost)

	_, ok = find(1, "addw")
	require.False(t, ok)
	addw, ok := find(2, "addw")
	require.True(t, ok)
	require.Equal(t, uint64(2), addw.Version)

	require.Empty(t, opcodesByVersion(0))
}

func TestOpEntryLayouts(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	for _, oe := range opEntries {
		require.True(t, oe.Layout.Valid(), oe.Name)
		size, fixed := oe.Layout.Fixed()
		switch oe.Opcode {
		case IntcBlockOpcode:
			require.Equal(t, IntConstBlockLayout, oe.Layout)
		case BytecBlockOpcode:
			require.Equal(t, ByteConstBlockLayout, oe.Layout)
		case 0x40, 0x41, 0x42:
			// branch offsets are two bytes
			require.True(t, fixed, oe.Name)
			require.Equal(t, 3, size, oe.Name)
		default:
			require.True(t, fixed, oe.Name)
			require.Equal(t, 1+len(oe.Immediates), size, oe.Name)
		}
	}
}

func TestProto(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	p := proto("bbb:i")
	require.Equal(t, "BBB", p.Args)
	require.Equal(t, "U", p.Returns)

	p = proto(":x")
	require.Equal(t, "", p.Args)
	require.Equal(t, "", p.Returns)

	p = proto("aa:aaaa")
	require.Equal(t, "..", p.Args)
	require.Equal(t, "....", p.Returns)

	require.Panics(t, func() { proto("b") })
	require.Panics(t, func() { proto("q:") })
}
