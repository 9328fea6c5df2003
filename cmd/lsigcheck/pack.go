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
	"os"

	"github.com/spf13/cobra"

	"github.com/algorand/lsigcheck/data/transactions"
	"github.com/algorand/lsigcheck/protocol"
)

var (
	packArgs   []string
	packOutput string
)

func init() {
	rootCmd.AddCommand(packCmd)

	packCmd.Flags().StringArrayVarP(&packArgs, "arg", "a", nil, "Program argument as encoding:value (str, int, b32, b64, hex); repeatable")
	packCmd.Flags().StringVarP(&packOutput, "outfile", "o", stdinFileNameValue, "Where to write the logic signature, - for stdout")
}

var packCmd = &cobra.Command{
	Use:   "pack [flags] program",
	Short: "Wrap a compiled program and its args into a msgpack logic signature",
	Long:  "Wrap a compiled program and its args into an unsigned msgpack logic signature, suitable for check --lsig. Use - to read the program from stdin.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, paths []string) {
		program, err := readFile(paths[0])
		if err != nil {
			reportErrorf("Could not read %s: %v", paths[0], err)
		}
		args, err := parseArgs(packArgs)
		if err != nil {
			reportErrorf("%v", err)
		}
		lsig, err := packLogicSig(program, args)
		if err != nil {
			reportErrorf("%s: %v", paths[0], err)
		}

		if packOutput == stdinFileNameValue {
			_, err = os.Stdout.Write(lsig)
		} else {
			err = os.WriteFile(packOutput, lsig, 0644)
		}
		if err != nil {
			reportErrorf("Could not write logic signature: %v", err)
		}
	},
}

// packLogicSig returns the msgpack encoding of an unsigned logic signature
// carrying program and args.
func packLogicSig(program []byte, args [][]byte) ([]byte, error) {
	lsig := transactions.LogicSig{Logic: program, Args: args}
	if err := lsig.WellFormed(); err != nil {
		return nil, err
	}
	return protocol.Encode(&lsig), nil
}
