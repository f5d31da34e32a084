package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/simulatax/fiscalprofile"
	"github.com/simulatax/fiscalprofile/errors"
	"github.com/simulatax/fiscalprofile/loader"
	"github.com/simulatax/fiscalprofile/telemetry"
)

type CheckCmd struct {
	File   FileOrStdin `help:"Ledger export file (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Strict bool        `help:"Exit non-zero when structural warnings are present."`
	Latin1 bool        `help:"Force ISO8859-1 decoding of the input file."`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	var checkTimer telemetry.Timer
	var once sync.Once

	reportTelemetry := func() {
		once.Do(func() {
			if collector != nil {
				checkTimer.End()
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr)
			}
		})
	}

	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		checkTimer = collector.Start(fmt.Sprintf("check %s", filepath.Base(cmd.File.Filename)))

		defer reportTelemetry()
	}

	var loaderOpts []loader.Option
	if cmd.Latin1 {
		loaderOpts = append(loaderOpts, loader.WithForceLatin1())
	}

	lines, err := cmd.File.Lines(loader.New(loaderOpts...))
	if err != nil {
		return err
	}

	res := fiscalprofile.ParseAll(runCtx, [][]string{lines})

	if len(res.Warnings) > 0 {
		formatter := errors.NewTextFormatter(errors.WithSource(lines))
		_, _ = fmt.Fprintln(ctx.Stderr, formatter.FormatAll(res.Warnings))

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, fmt.Sprintf("%d structural warning(s) found", len(res.Warnings)))

		if cmd.Strict {
			reportTelemetry()
			return NewCommandError(1)
		}
		return nil
	}

	printSuccess(ctx.Stdout, "Check passed")

	return nil
}
