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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/algorand/lsigcheck/config"
	"github.com/algorand/lsigcheck/data/transactions"
	"github.com/algorand/lsigcheck/data/transactions/logic"
	"github.com/algorand/lsigcheck/logging"
	"github.com/algorand/lsigcheck/protocol"
	"github.com/algorand/lsigcheck/serr"
	"github.com/algorand/lsigcheck/util/metrics"
)

const stdinFileNameValue = "-"

var (
	programArgs []string
	lsigInput   bool
)

func init() {
	checkCmd.Flags().StringArrayVarP(&programArgs, "arg", "a", nil, "Program argument as encoding:value (str, int, b32, b64, hex); repeatable")
	checkCmd.Flags().BoolVar(&lsigInput, "lsig", false, "Inputs are msgpack encoded logic signatures carrying their own args")
}

var checkCmd = &cobra.Command{
	Use:   "check [flags] program...",
	Short: "Check compiled programs against the logic signature limits",
	Long:  "Check compiled programs, or msgpack logic signatures with --lsig, against the program version, size and static cost limits. Use - to read from stdin.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, paths []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			reportErrorf("Could not load config: %v", err)
		}
		if err := cfg.ApplyDeadlockSettings(); err != nil {
			reportErrorf("%v", err)
		}
		log, err := setupLogging(cfg)
		if err != nil {
			reportErrorf("%v", err)
		}
		log = log.With("batch", uuid.NewString())

		params, err := makeCheckParams(cfg, logic.MakeTableCache(), log)
		if err != nil {
			reportErrorf("Could not set up checks: %v", err)
		}
		args, err := parseArgs(programArgs)
		if err != nil {
			reportErrorf("%v", err)
		}
		if lsigInput && len(args) > 0 {
			reportWarnf("--arg is ignored for --lsig inputs, which carry their own args")
		}

		inputs := make([]checkInput, 0, len(paths))
		for _, path := range paths {
			in, err := loadInput(path, lsigInput, args)
			if err != nil {
				reportErrorf("%v", err)
			}
			inputs = append(inputs, in)
		}

		outcomes := runChecks(context.Background(), inputs, params, cfg.Parallelism())
		failed := printOutcomes(os.Stdout, outcomes)

		if cfg.ReportMetrics {
			if err := metrics.DefaultRegistry().WriteMetrics(os.Stdout); err != nil {
				reportWarnf("could not write metrics: %v", err)
			}
		}
		if failed > 0 {
			reportErrorf("%d of %d programs failed", failed, len(outcomes))
		}
		reportInfof("%d programs passed", len(outcomes))
	},
}

// loadConfig reads the config directory, if any, and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Local, error) {
	cfg := config.GetDefaultLocal()
	if configDir != "" {
		loaded, err := config.LoadConfigFromDisk(configDir)
		if err != nil && !os.IsNotExist(err) {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("langspec") {
		cfg.LangSpecFile = langSpecFile
	}
	if flags.Changed("consensus") {
		cfg.ConsensusVersion = consensusVer
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("json-logs") {
		cfg.JSONLogs = jsonLogs
	}
	if flags.Changed("parallel") {
		cfg.CheckParallelism = parallelism
	}
	if flags.Changed("metrics") {
		cfg.ReportMetrics = dumpMetrics
	}
	return cfg, nil
}

func setupLogging(cfg config.Local) (logging.Logger, error) {
	log := logging.Base()
	if cfg.LogLevel != "" {
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		log.SetLevel(level)
	}
	if cfg.JSONLogs {
		log.SetJSONFormatter()
	}
	return log, nil
}

// makeCheckParams picks the opcode table and limits the config asks for.
func makeCheckParams(cfg config.Local, cache *logic.TableCache, log logging.Logger) (*logic.CheckParams, error) {
	params := logic.DefaultCheckParams()
	if cfg.LangSpecFile != "" {
		spec, table, err := cache.Load(cfg.LangSpecFile)
		if err != nil {
			return nil, err
		}
		params.Table = table
		params.MaxVersion = spec.EvalMaxVersion
	}

	proto, err := cfg.Consensus()
	if err != nil {
		return nil, err
	}
	if proto.LogicSigVersion < params.MaxVersion {
		params.MaxVersion = proto.LogicSigVersion
	}
	params.Limits = logic.LimitsFromConsensus(proto)
	params.Log = log
	return params, nil
}

type checkInput struct {
	Name    string
	Program []byte
	Args    [][]byte
}

func readFile(filename string) ([]byte, error) {
	if filename == stdinFileNameValue {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}

// loadInput reads a program file, or a msgpack logic signature when lsig is
// set. args apply to plain programs only.
func loadInput(path string, lsig bool, args [][]byte) (checkInput, error) {
	data, err := readFile(path)
	if err != nil {
		return checkInput{}, serr.Extend(err, "file", path)
	}
	if !lsig {
		return checkInput{Name: path, Program: data, Args: args}, nil
	}

	var sig transactions.LogicSig
	if err := protocol.Decode(data, &sig); err != nil {
		return checkInput{}, serr.Extend(fmt.Errorf("could not decode logic signature %s: %w", path, err), "file", path)
	}
	if err := sig.WellFormed(); err != nil {
		return checkInput{}, serr.Extend(fmt.Errorf("%s: %w", path, err), "file", path)
	}
	return checkInput{Name: path, Program: sig.Logic, Args: sig.Args}, nil
}

type checkOutcome struct {
	Name   string
	Result logic.CheckResult
	Err    error
}

// runChecks checks every input with at most parallelism checks in flight.
// Outcomes are in input order.
func runChecks(ctx context.Context, inputs []checkInput, params *logic.CheckParams, parallelism int) []checkOutcome {
	outcomes := make([]checkOutcome, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i := range inputs {
		i := i
		g.Go(func() error {
			outcomes[i].Name = inputs[i].Name
			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err
				return err
			}
			outcomes[i].Result, outcomes[i].Err = logic.Check(inputs[i].Program, inputs[i].Args, params)
			return nil
		})
	}
	g.Wait()
	return outcomes
}

// printOutcomes writes one line per outcome and returns how many failed.
func printOutcomes(w io.Writer, outcomes []checkOutcome) int {
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(w, "%s: %s %v\n", o.Name, failLabel("FAIL"), o.Err)
			continue
		}
		fmt.Fprintf(w, "%s: %s version=%d length=%d cost=%d instructions=%d\n",
			o.Name, passLabel("PASS"), o.Result.Version, o.Result.Length, o.Result.Cost, o.Result.Instructions)
	}
	return failed
}
