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

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/lsigcheck/data/transactions/logic"
	"github.com/algorand/lsigcheck/test/partitiontest"
)

func TestPackLogicSig(t *testing.T) {
	partitiontest.PartitionTest(t)

	program := []byte{0x02, 0x2d, 0x01}
	args := [][]byte{[]byte("hello"), {0, 0, 0, 0, 0, 0, 0, 7}}

	lsig, err := packLogicSig(program, args)
	require.NoError(t, err)

	in, err := loadInput(writeFile(t, "packed.lsig", lsig), true, nil)
	require.NoError(t, err)
	require.Equal(t, program, in.Program)
	require.Equal(t, args, in.Args)

	res, err := logic.Check(in.Program, in.Args, nil)
	require.NoError(t, err)
	require.Equal(t, len(program)+13, res.Length)
}

func TestPackLogicSigEmptyProgram(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, err := packLogicSig(nil, [][]byte{[]byte("x")})
	require.Error(t, err)
}
