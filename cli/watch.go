package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/simulatax/fiscalprofile"
	"github.com/simulatax/fiscalprofile/loader"
	"github.com/simulatax/fiscalprofile/parser"
)

type WatchCmd struct {
	Files  []string `help:"Ledger export files to watch." arg:"" type:"existingfile"`
	Family string   `help:"Force the ledger family instead of detecting it." enum:"auto,fiscal,contributions,corporateTax,accounting" default:"auto"`
	Latin1 bool     `help:"Force ISO8859-1 decoding of the input files."`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, file := range cmd.Files {
		if err := watcher.Add(file); err != nil {
			return fmt.Errorf("failed to watch %s: %w", file, err)
		}
	}

	for _, file := range cmd.Files {
		printInfof(ctx.Stdout, "Watching %s", pathStyle.Render(file))
	}

	cmd.extract(runCtx, ctx)

	// Debounce timer - editors often write files in multiple steps
	const debounceDelay = 100 * time.Millisecond
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-runCtx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// React to write/create/remove/rename events
			// (Remove/Rename are common in atomic saves)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				// Atomic saves replace the inode; re-add once the new file lands.
				time.Sleep(debounceDelay)
				_ = watcher.Add(event.Name)
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				cmd.extract(runCtx, ctx)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("file watcher error: %v", err))
		}
	}
}

func (cmd *WatchCmd) extract(runCtx context.Context, ctx *kong.Context) {
	var loaderOpts []loader.Option
	if cmd.Latin1 {
		loaderOpts = append(loaderOpts, loader.WithForceLatin1())
	}
	ldr := loader.New(loaderOpts...)

	sources := make([][]string, 0, len(cmd.Files))
	for _, file := range cmd.Files {
		lines, err := ldr.Load(file)
		if err != nil {
			printError(ctx.Stderr, fmt.Sprintf("failed to read %s: %v", file, err))
			return
		}
		sources = append(sources, lines)
	}

	var opts []fiscalprofile.Option
	if cmd.Family != "" && cmd.Family != "auto" {
		opts = append(opts, fiscalprofile.WithFamily(parser.Family(cmd.Family)))
	}

	p := fiscalprofile.ExtractAll(runCtx, sources, opts...)

	_, _ = fmt.Fprintf(ctx.Stdout, "\n%s extracted at %s\n\n",
		successStyle.Render(successSymbol), time.Now().Format("15:04:05"))
	renderProfile(ctx.Stdout, p)
}
