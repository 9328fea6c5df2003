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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/lsigcheck/data/transactions/logic"
	"github.com/algorand/lsigcheck/test/partitiontest"
)

func TestOpsToMarkdown(t *testing.T) {
	partitiontest.PartitionTest(t)

	var buf bytes.Buffer
	opsToMarkdown(&buf, logic.DefaultLangSpec())
	out := buf.String()
	require.Contains(t, out, "## intcblock\n\n- Opcode: 0x20 {varuint length} [{varuint value}, ...]")
	require.Contains(t, out, "- Size: variable")
	require.Contains(t, out, "   - 35 (LogicSigVersion = 2)")
	require.Contains(t, out, "- **Cost**: 1900")
	require.Contains(t, out, "- Pops: *... stack*, []byte, []byte, []byte")
}

func TestOpGroupMarkdownTable(t *testing.T) {
	partitiontest.PartitionTest(t)

	var buf bytes.Buffer
	opGroupMarkdownTable(&logic.OpGroupList[0], logic.DefaultLangSpec(), &buf)
	require.Contains(t, buf.String(), "| 0x01 | `sha256` |")
	require.Contains(t, buf.String(), "| 0x19 | `\\|` | A bitwise-or B |")
}

func TestWriteLangSpec(t *testing.T) {
	partitiontest.PartitionTest(t)

	var buf bytes.Buffer
	require.NoError(t, writeLangSpec(&buf, logic.DefaultLangSpec()))

	spec, err := logic.ParseLangSpec(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, logic.DefaultLangSpec().EvalMaxVersion, spec.EvalMaxVersion)
	require.Len(t, spec.Ops, len(logic.DefaultLangSpec().Ops))
	_, err = spec.OpTable()
	require.NoError(t, err)
}
