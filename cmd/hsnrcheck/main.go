// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command hsnrcheck verifies the High-SNR decoder over the whole input range.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/avdva/hsnr"
	"github.com/avdva/hsnr/verify"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	verbose     = flag.Bool("verbose", false, "Log every literal check")
	maxFailures = flag.Int("max-failures", 10, "Maximum number of failures to log per check")
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ok, err := run(ctx, log.Logger, os.Stdout, hsnr.Decode, *verbose, *maxFailures)
	if err != nil {
		log.Fatal().Err(err).Msg("Verification aborted")
	}
	if !ok {
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger zerolog.Logger, out io.Writer, dec verify.Decoder, verbose bool, maxFailures int) (bool, error) {
	if verbose {
		for _, l := range verify.Literals {
			v := dec(l.Word)
			logger.Info().
				Str("hsnr", fmt.Sprintf("0x%04x", l.Word)).
				Float32("value", v).
				Bool("passed", v == l.Value).
				Msg("Literal")
		}
	}

	start := time.Now()
	report, err := verify.Run(ctx, dec)
	if err != nil {
		return false, err
	}
	logger.Info().Dur("elapsed", time.Since(start)).Int("checked", report.Checked()).Msg("Checks completed")

	for _, res := range report.Results {
		for i, f := range res.Failures {
			if i >= maxFailures {
				logger.Warn().Str("check", res.Name).Int("skipped", len(res.Failures)-i).Msg("Too many failures")
				break
			}
			logger.Error().
				Str("check", res.Name).
				Str("hsnr", fmt.Sprintf("0x%04x", f.Word)).
				Str("other", fmt.Sprintf("0x%04x", f.Other)).
				Float32("got", f.Got).
				Float32("want", f.Want).
				Msg("Check failed")
		}
		status := "PASSED"
		if !res.OK() {
			status = "FAILED"
		}
		fmt.Fprintf(out, "%s: %d values checked, %d failures [%s]\n", res.Name, res.Checked, len(res.Failures), status)
	}

	if !report.OK() {
		fmt.Fprintln(out, "VERIFICATION FAILED")
		return false, nil
	}
	fmt.Fprintln(out, "VERIFICATION PASSED")
	return true, nil
}
