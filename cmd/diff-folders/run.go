package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/diff-folders/internal/app"
	"github.com/chmouel/diff-folders/internal/buildinfo"
	"github.com/chmouel/diff-folders/internal/config"
	"github.com/chmouel/diff-folders/internal/log"
	"github.com/chmouel/diff-folders/internal/snapshot"
	urfavecli "github.com/urfave/cli/v3"
)

const (
	argsUsage = "<old_dir> <new_dir>"
	// logOff as the debug_log setting disables the log file.
	logOff = "off"
)

var errUsage = errors.New("usage: diff-folders [flags] " + argsUsage)

// options is everything the TUI needs once the command line is parsed.
type options struct {
	oldDir string
	newDir string
	config *config.AppConfig
}

type runner func(ctx context.Context, opts *options) error

func newCommand(run runner) *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "diff-folders",
		Usage:     "Browse the differences between two directories",
		ArgsUsage: argsUsage,
		Version:   buildinfo.Get().String(),
		Flags:     globalFlags(),
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			opts, err := parseOptions(cmd)
			if err != nil {
				_ = log.Close()
				return err
			}
			return run(ctx, opts)
		},
	}
}

// parseOptions validates the arguments, sets up the debug log and builds the
// configuration. Flags take precedence over --config overrides, which take
// precedence over the config file.
func parseOptions(cmd *urfavecli.Command) (*options, error) {
	if cmd.Args().Len() != 2 {
		return nil, errUsage
	}

	if debugLog := cmd.String("debug-log"); debugLog != "" {
		setDebugLog(debugLog)
		log.SetDebug(true)
	}

	cfg, err := config.LoadConfig(cmd.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if overrides := cmd.StringSlice("config"); len(overrides) > 0 {
		if err := cfg.ApplyCLIOverrides(overrides); err != nil {
			return nil, fmt.Errorf("error applying config overrides: %w", err)
		}
	}

	if cmd.String("debug-log") == "" {
		switch cfg.DebugLog {
		case "":
			setDefaultLog()
		case logOff:
			_ = log.SetFile("")
		default:
			setDebugLog(cfg.DebugLog)
		}
	}

	if themeName := cmd.String("theme"); themeName != "" {
		cfg.Theme = themeName
	}
	if ignore := cmd.StringSlice("ignore"); len(ignore) > 0 {
		cfg.Ignore = append(cfg.Ignore, ignore...)
	}
	switch {
	case cmd.Bool("no-icons"):
		cfg.ShowIcons = false
	case cmd.Bool("icons"):
		cfg.ShowIcons = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	oldDir, newDir := cmd.Args().Get(0), cmd.Args().Get(1)
	for _, dir := range []string{oldDir, newDir} {
		if _, err := snapshot.Canonicalize(dir); err != nil {
			return nil, err
		}
	}

	return &options{oldDir: oldDir, newDir: newDir, config: cfg}, nil
}

func setDebugLog(path string) {
	if expanded, err := config.ExpandPath(path); err == nil {
		path = expanded
	}
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}

// setDefaultLog logs at info level to the per-user cache file.
func setDefaultLog() {
	path, err := log.DefaultPath()
	if err != nil {
		_ = log.SetFile("")
		return
	}
	setDebugLog(path)
}

// runTUI launches the two-pane interface and blocks until it quits.
func runTUI(ctx context.Context, opts *options) error {
	log.Infof("comparing %s with %s", opts.oldDir, opts.newDir)

	model := app.NewModel(opts.config, opts.oldDir, opts.newDir)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()
	if err == nil {
		err = model.Err()
	}
	if closeErr := log.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Error closing debug log: %v\n", closeErr)
	}
	if err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
