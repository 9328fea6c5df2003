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
	"encoding/base32"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// parseArg decodes a program argument written as encoding:value.
func parseArg(arg string) ([]byte, error) {
	encoding, value, ok := strings.Cut(arg, ":")
	if !ok {
		return nil, fmt.Errorf("argument %q is not of the form encoding:value", arg)
	}
	switch encoding {
	case "str", "string":
		return []byte(value), nil
	case "int", "integer":
		num, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse uint64 from %q: %w", value, err)
		}
		return binary.BigEndian.AppendUint64(nil, num), nil
	case "b32", "base32":
		data, err := base32.StdEncoding.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("could not decode base32 %q: %w", value, err)
		}
		return data, nil
	case "b64", "base64":
		data, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("could not decode base64 %q: %w", value, err)
		}
		return data, nil
	case "hex":
		data, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
		if err != nil {
			return nil, fmt.Errorf("could not decode hex %q: %w", value, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown argument encoding %q", encoding)
	}
}

func parseArgs(args []string) ([][]byte, error) {
	out := make([][]byte, 0, len(args))
	for _, arg := range args {
		b, err := parseArg(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
