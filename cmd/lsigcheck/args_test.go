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

	"github.com/algorand/lsigcheck/test/partitiontest"
)

func TestParseArg(t *testing.T) {
	partitiontest.PartitionTest(t)

	tests := []struct {
		arg  string
		want []byte
	}{
		{"str:hello", []byte("hello")},
		{"string:", []byte{}},
		{"int:258", []byte{0, 0, 0, 0, 0, 0, 1, 2}},
		{"b64:AQID", []byte{1, 2, 3}},
		{"base32:AEBAG===", []byte{1, 2, 3}},
		{"hex:010203", []byte{1, 2, 3}},
		{"hex:0xff", []byte{0xff}},
		{"str:a:b", []byte("a:b")},
	}
	for _, test := range tests {
		got, err := parseArg(test.arg)
		require.NoError(t, err, test.arg)
		require.Equal(t, test.want, got, test.arg)
	}

	for _, bad := range []string{"hello", "int:-1", "b64:!!", "hex:zz", "b32:1", "addr:XYZ"} {
		_, err := parseArg(bad)
		require.Error(t, err, bad)
	}
}

func TestParseArgs(t *testing.T) {
	partitiontest.PartitionTest(t)

	args, err := parseArgs([]string{"str:a", "hex:00"})
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("a"), {0}}, args)

	args, err = parseArgs(nil)
	require.NoError(t, err)
	require.Empty(t, args)

	_, err = parseArgs([]string{"str:a", "nope"})
	require.Error(t, err)
}
