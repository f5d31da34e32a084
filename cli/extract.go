package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/simulatax/fiscalprofile"
	"github.com/simulatax/fiscalprofile/loader"
	"github.com/simulatax/fiscalprofile/parser"
	"github.com/simulatax/fiscalprofile/profile"
	"github.com/simulatax/fiscalprofile/telemetry"
)

type ExtractCmd struct {
	Files  []FileOrStdin `help:"Ledger export files (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Family string        `help:"Force the ledger family instead of detecting it." enum:"auto,fiscal,contributions,corporateTax,accounting" default:"auto"`
	Format string        `help:"Output format." enum:"json,pretty" default:"json"`
	Output string        `help:"Write the profile JSON to a file instead of stdout." short:"o" type:"path"`
	Force  bool          `help:"Overwrite the output file without confirmation." short:"f"`
	Latin1 bool          `help:"Force ISO8859-1 decoding of the input files."`
	Debug  bool          `help:"Dump the raw extraction result instead of the profile."`
}

func (cmd *ExtractCmd) Run(ctx *kong.Context, globals *Globals) error {
	if len(cmd.Files) == 0 {
		var stdin FileOrStdin
		if err := stdin.EnsureContents(); err != nil {
			return err
		}
		cmd.Files = []FileOrStdin{stdin}
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	var extractTimer telemetry.Timer
	var once sync.Once

	reportTelemetry := func() {
		once.Do(func() {
			if collector != nil {
				extractTimer.End()
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr)
			}
		})
	}

	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		extractTimer = collector.Start(fmt.Sprintf("extract (%d file(s))", len(cmd.Files)))

		defer reportTelemetry()
	}

	var loaderOpts []loader.Option
	if cmd.Latin1 {
		loaderOpts = append(loaderOpts, loader.WithForceLatin1())
	}
	ldr := loader.New(loaderOpts...)

	sources := make([][]string, 0, len(cmd.Files))
	for _, file := range cmd.Files {
		lines, err := file.Lines(ldr)
		if err != nil {
			return err
		}
		sources = append(sources, lines)
	}

	res := fiscalprofile.ParseAll(runCtx, sources, cmd.extractOptions()...)

	if len(res.Warnings) > 0 {
		_, _ = fmt.Fprintf(ctx.Stderr, "%s %d structural warning(s); run check for details\n",
			warnStyle.Render("!"), len(res.Warnings))
	}

	if cmd.Debug {
		repr.Println(res)
		reportTelemetry()
		return nil
	}

	p := profile.Assemble(runCtx, res)

	if cmd.Output != "" {
		return cmd.writeOutput(ctx, p)
	}

	if cmd.Format == "pretty" {
		renderProfile(ctx.Stdout, p)
		return nil
	}

	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	_, _ = fmt.Fprintln(ctx.Stdout, string(out))

	return nil
}

func (cmd *ExtractCmd) extractOptions() []fiscalprofile.Option {
	var opts []fiscalprofile.Option
	if cmd.Family != "" && cmd.Family != "auto" {
		opts = append(opts, fiscalprofile.WithFamily(parser.Family(cmd.Family)))
	}
	return opts
}

func (cmd *ExtractCmd) writeOutput(ctx *kong.Context, p *profile.FiscalProfile) error {
	outFile, err := filepath.Abs(cmd.Output)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if _, err := os.Stat(outFile); err == nil && !cmd.Force {
		confirmed, err := promptYesNo(ctx, fmt.Sprintf("File %q already exists. Overwrite it?", outFile))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			return fmt.Errorf("output file already exists: %s", outFile)
		}
	}

	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(outFile, out, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Profile written to %s", pathStyle.Render(outFile)))

	return nil
}
