// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
)

// suiteConfig is the schema for yaml suite files, eg:
//
//	benchmarks:
//	  - size: 100000
//	    trials: 5
//	    seed: 42
//	    variants: [binary, binomial, randomized]
//	    output: small.csv
type suiteConfig struct {
	Benchmarks []benchmark `yaml:"benchmarks"`
}

func suiteRunner(ctx context.Context, values any, args []string) error {
	fv := values.(*suiteFlags)
	var cfg suiteConfig
	if err := cmdyaml.ParseConfigFile(ctx, args[0], &cfg); err != nil {
		return err
	}
	if len(cfg.Benchmarks) == 0 {
		return fmt.Errorf("%v: no benchmarks defined", args[0])
	}
	// Validate the entire suite before running any of it.
	errs := errors.M{}
	for i, b := range cfg.Benchmarks {
		if err := b.validate(); err != nil {
			errs.Append(fmt.Errorf("benchmark %v: %w", i, err))
		}
	}
	if err := errs.Err(); err != nil {
		return err
	}
	if fv.DryRun {
		return nil
	}
	for i, b := range cfg.Benchmarks {
		if err := b.run(ctx); err != nil {
			errs.Append(fmt.Errorf("benchmark %v: %w", i, err))
		}
	}
	return errs.Err()
}
