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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/algorand/lsigcheck/data/transactions/logic"
	"github.com/algorand/lsigcheck/protocol"
)

func opGroupMarkdownTable(og *logic.OpGroup, spec *logic.LangSpec, out io.Writer) {
	fmt.Fprint(out, `| Opcode | Op | Description |
| --- | --- | --- |
`)
	opcodes := make(map[string]int, len(spec.Ops))
	for _, op := range spec.Ops {
		opcodes[op.Name] = op.Opcode
	}
	for _, opname := range og.Ops {
		fmt.Fprintf(out, "| 0x%02x | `%s` | %s |\n", opcodes[opname], markdownTableEscape(opname), markdownTableEscape(logic.OpDoc(opname)))
	}
}

func markdownTableEscape(x string) string {
	return strings.ReplaceAll(x, "|", "\\|")
}

func stackMarkdown(letters string) string {
	if letters == "" {
		return ""
	}
	parts := make([]string, len(letters))
	for i, c := range letters {
		switch c {
		case 'B':
			parts[i] = "[]byte"
		case 'U':
			parts[i] = "uint64"
		default:
			parts[i] = "any"
		}
	}
	return strings.Join(parts, ", ")
}

func opToMarkdown(out io.Writer, op *logic.OpSpec) {
	fmt.Fprintf(out, "\n## %s\n\n- Opcode: 0x%02x %s\n", op.Name, op.Opcode, op.ImmediateNote)
	if op.Args == "" {
		fmt.Fprintf(out, "- Pops: _None_\n")
	} else {
		fmt.Fprintf(out, "- Pops: *... stack*, %s\n", stackMarkdown(op.Args))
	}
	if op.Returns == "" {
		fmt.Fprintf(out, "- Pushes: _None_\n")
	} else {
		fmt.Fprintf(out, "- Pushes: %s\n", stackMarkdown(op.Returns))
	}
	fmt.Fprintf(out, "- %s\n", op.Doc)
	costs := logic.OpAllCosts(op.Name)
	if len(costs) > 1 {
		fmt.Fprintf(out, "- **Cost**:\n")
		for v := 1; v < len(costs); v++ {
			if costs[v] > 0 {
				fmt.Fprintf(out, "   - %d (LogicSigVersion = %d)\n", costs[v], v)
			}
		}
	} else if op.Cost != 1 {
		fmt.Fprintf(out, "- **Cost**: %d\n", op.Cost)
	}
	if op.Size == 0 {
		fmt.Fprintf(out, "- Size: variable\n")
	}
	if op.DocExtra != "" {
		fmt.Fprintf(out, "\n%s\n", op.DocExtra)
	}
}

func opsToMarkdown(out io.Writer, spec *logic.LangSpec) {
	out.Write([]byte("# Opcodes\n\nOps have a 'cost' of 1 unless otherwise specified.\n\n"))
	for i := range spec.Ops {
		opToMarkdown(out, &spec.Ops[i])
	}
}

func writeLangSpec(out io.Writer, spec *logic.LangSpec) error {
	_, err := out.Write(protocol.EncodeJSON(spec))
	return err
}

func create(name string, write func(io.Writer) error) {
	fout, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create %s: %v\n", name, err)
		os.Exit(1)
	}
	defer fout.Close()
	if err := write(fout); err != nil {
		fmt.Fprintf(os.Stderr, "could not write %s: %v\n", name, err)
		os.Exit(1)
	}
}

func main() {
	spec := logic.DefaultLangSpec()

	create("TEAL_opcodes.md", func(w io.Writer) error {
		opsToMarkdown(w, spec)
		return nil
	})
	for _, og := range logic.OpGroupList {
		og := og
		fname := fmt.Sprintf("%s.md", og.GroupName)
		fname = strings.ReplaceAll(fname, " ", "_")
		create(fname, func(w io.Writer) error {
			opGroupMarkdownTable(&og, spec, w)
			return nil
		})
	}
	create("langspec.json", func(w io.Writer) error {
		return writeLangSpec(w, spec)
	})
}
