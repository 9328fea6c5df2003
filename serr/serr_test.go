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

package serr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/lsigcheck/test/partitiontest"
)

func TestNewKeepsMessage(t *testing.T) {
	partitiontest.PartitionTest(t)

	err := New("program too long", "length", 1001)
	require.Equal(t, "program too long", err.Error())
	require.Equal(t, 1001, err.Attrs["length"])
}

func TestBlankMessageRendersAttrs(t *testing.T) {
	partitiontest.PartitionTest(t)

	err := New("", "pc", 3, "opcode", "0x20")
	require.Equal(t, "opcode=0x20 pc=3", err.Error())
}

func TestExtendPlainError(t *testing.T) {
	partitiontest.PartitionTest(t)

	base := errors.New("invalid instruction")
	err := Extend(fmt.Errorf("scan: %w", base), "pc", 12)
	require.ErrorIs(t, err, base)
	require.Equal(t, "scan: invalid instruction", err.Error())

	pc, ok := Attr(err, "pc")
	require.True(t, ok)
	require.Equal(t, 12, pc)
}

func TestExtendStructuredError(t *testing.T) {
	partitiontest.PartitionTest(t)

	inner := New("bad block", "pc", 1)
	err := Extend(fmt.Errorf("wrapped: %w", inner), "file", "a.teal")

	var s *Error
	require.True(t, errors.As(err, &s))
	require.Same(t, inner, s)
	require.Equal(t, "a.teal", s.Attrs["file"])
	require.Equal(t, 1, s.Attrs["pc"])
}

func TestExtendNil(t *testing.T) {
	partitiontest.PartitionTest(t)

	err := Extend(nil, "k", "v")
	require.Equal(t, "k=v", err.Error())

	_, ok := Attr(errors.New("plain"), "k")
	require.False(t, ok)
}
