// Package cmd provides the CLI commands for ufccards.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ufccards/ufccards/internal/config"
	"github.com/ufccards/ufccards/internal/loader"
	"github.com/ufccards/ufccards/internal/output"
	"github.com/ufccards/ufccards/internal/roster"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"
	// Commit is set at build time via ldflags.
	Commit = "none"
	// Date is set at build time via ldflags.
	Date = "unknown"
)

// app holds global flags and the state shared by subcommands.
type app struct {
	cfgFile string
	source  string
	noColor bool
	verbose bool

	getenv  func(string) string
	baseDir string
	cfgPath string
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{getenv: os.Getenv, logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "ufccards",
		Short: "Browse UFC fighter cards from a delimited roster file",
		Long: `ufccards loads a fighter roster from a CSV, TSV or other delimited file
(local path or http(s) URL), normalizes every row into a fighter card and
lets you search, filter by weight class and page through the results.

The roster source is read from .ufccards/config.yaml or ufccards.yaml,
the UFCCARDS_SOURCE environment variable, or the --source flag.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: .ufccards/config.yaml or ufccards.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.source, "source", "", "roster file path or URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newClassesCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newBrowseCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newInitCmd(a))

	return rootCmd
}

// Execute runs the root command until it finishes or the process is
// interrupted. This is called by main.main().
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// setup applies color settings, loads configuration and builds the logger.
func (a *app) setup() error {
	if a.noColor || a.getenv("NO_COLOR") != "" {
		output.DisableColor()
	} else {
		output.EnableColor()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	a.baseDir = cwd

	a.cfgPath = a.cfgFile
	if a.cfgPath == "" {
		a.cfgPath, err = config.FindConfig(cwd)
		if errors.Is(err, config.ErrNoConfig) {
			a.cfgPath = ""
		} else if err != nil {
			return fmt.Errorf("failed to find config: %w", err)
		}
	}

	a.cfg = config.DefaultConfig()
	if a.cfgPath != "" {
		a.cfg, err = config.Load(a.cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		a.baseDir = projectDir(a.cfgPath)
	}

	a.cfg.ApplyEnv(a.getenv)
	if a.source != "" {
		a.cfg.UFCCards.Source = a.source
		a.baseDir = cwd
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(a.cfg.Level())
	if a.verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.logger.Debug("Configuration loaded",
		zap.String("source", a.cfg.UFCCards.Source),
		zap.Int("batch_size", a.cfg.UFCCards.BatchSize),
		zap.Duration("advance_delay", a.cfg.UFCCards.AdvanceDelay))
	return nil
}

// projectDir maps a config file path to the directory its relative paths
// are resolved against.
func projectDir(cfgFile string) string {
	dir := filepath.Dir(cfgFile)
	if filepath.Base(dir) == ".ufccards" {
		dir = filepath.Dir(dir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}

// newStore creates a store for the configured source.
func (a *app) newStore() *loader.Store {
	location := a.cfg.SourcePath(a.baseDir)
	src := loader.NewSource(location,
		loader.WithHTTPClient(loader.DefaultHTTPClient(a.cfg.UFCCards.HTTPTimeout)),
		loader.WithLogger(a.logger))
	return loader.NewStore(src, loader.WithLogger(a.logger))
}

// loadRoster loads the roster once. Failures print the generic message to
// stderr and become an ExitError.
func (a *app) loadRoster(ctx context.Context, cmd *cobra.Command) (*loader.Store, *roster.Roster, error) {
	store := a.newStore()
	r, err := store.Load(ctx)
	if err != nil {
		cmd.PrintErrln(output.Color(store.UserMessage(), output.Red))
		return nil, nil, NewExitError(ExitCodeLoad, err.Error())
	}
	return store, r, nil
}

// weightClass resolves a --class flag value, falling back to the config.
func (a *app) weightClass(flag string) (string, error) {
	if flag == "" {
		return a.cfg.WeightClass(), nil
	}
	wc, err := roster.ParseWeightClass(flag)
	if err != nil {
		return "", NewExitError(ExitCodeFailure, err.Error())
	}
	return wc, nil
}
