// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command pqbench times the priority queue implementations in
// cloudeng.io/pqueue/container/pqueue. Every trial inserts a
// pseudo-random permutation of 0..size-1 into each requested variant,
// then extracts every entry, timing each operation and checking that
// all variants agree on the extracted keys. Timings are written as
// csv rows of the form heap,operation,n,time.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

type runFlags struct {
	Size     int          `subcmd:"size,1000000,number of entries inserted into and then extracted from each queue"`
	Trials   int          `subcmd:"trials,15,number of timing trials to run; trial i draws its insertion order from seed+i"`
	Seed     int64        `subcmd:"seed,131254153214,seed for the pseudo-random insertion order"`
	Variants flags.Commas `subcmd:"variants,,'comma separated list of queue variants to time, all of them when unset'"`
	Output   string       `subcmd:"output,,file to write the csv output to instead of stdout"`
	Parallel bool         `subcmd:"parallel,false,run trials concurrently with one set of queues per trial"`
}

type suiteFlags struct {
	DryRun bool `subcmd:"dry-run,false,validate the suite file without running any benchmarks"`
}

func init() {
	runFS := subcmd.NewFlagSet()
	runFS.MustRegisterFlagStruct(&runFlags{}, nil, nil)
	runCmd := subcmd.NewCommand("run", runFS, benchRunner, subcmd.WithoutArguments())
	runCmd.Document("time insert and extract-min operations for each queue variant and write the timings as csv")

	suiteFS := subcmd.NewFlagSet()
	suiteFS.MustRegisterFlagStruct(&suiteFlags{}, nil, nil)
	suiteCmd := subcmd.NewCommand("suite", suiteFS, suiteRunner, subcmd.ExactlyNumArguments(1))
	suiteCmd.Document("run every benchmark defined in a yaml suite file", "<suite.yaml>")

	cmdSet = subcmd.NewCommandSet(runCmd, suiteCmd)
	cmdSet.Document("benchmark the cloudeng.io/pqueue priority queue implementations")
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func benchRunner(ctx context.Context, values any, _ []string) error {
	fv := values.(*runFlags)
	variants := fv.Variants.Values
	if len(variants) == 0 {
		variants = []string{"binary", "binomial", "randomized"}
	}
	b := benchmark{
		Size:     fv.Size,
		Trials:   fv.Trials,
		Seed:     fv.Seed,
		Variants: variants,
		Parallel: fv.Parallel,
		Output:   fv.Output,
	}
	return b.run(ctx)
}
