package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ufccards/ufccards/internal/output"
)

func newConfigCmd(a *app) *cobra.Command {
	var (
		validate bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or validate the ufccards configuration",
		Long: `Display the effective configuration after merging defaults, the config
file, UFCCARDS_SOURCE and --source.`,
		Example: `  ufccards config                 # Show current config
  ufccards config --validate      # Check settings and load the roster
  ufccards config --format yaml   # Output as YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if validate {
				return a.validateConfig(cmd)
			}
			switch format {
			case "json":
				return writeJSON(cmd, a.cfg.UFCCards)
			case "yaml":
				data, err := yaml.Marshal(a.cfg)
				if err != nil {
					return fmt.Errorf("failed to marshal config: %w", err)
				}
				cmd.Print(string(data))
				return nil
			case "terminal", "":
				a.displayConfig(cmd)
				return nil
			default:
				return NewExitError(ExitCodeFailure, fmt.Sprintf("unknown format %q (want terminal, yaml or json)", format))
			}
		},
	}

	cmd.Flags().BoolVar(&validate, "validate", false, "validate configuration and load the roster")
	cmd.Flags().StringVar(&format, "format", "terminal", "output format: terminal, yaml, json")
	return cmd
}

func (a *app) displayConfig(cmd *cobra.Command) {
	width := 60
	cmd.Println(output.Header("ufccards Configuration", width))
	cmd.Println()

	configPath := a.cfgPath
	if configPath == "" {
		configPath = "(defaults)"
	}

	s := a.cfg.UFCCards
	cmd.Println("Paths:")
	cmd.Printf("  Config file:   %s\n", configPath)
	cmd.Printf("  Source:        %s\n", a.cfg.SourcePath(a.baseDir))
	cmd.Println()

	cmd.Println("Browsing:")
	cmd.Printf("  Batch size:    %d\n", s.BatchSize)
	cmd.Printf("  Advance delay: %s\n", s.AdvanceDelay)
	cmd.Printf("  Default class: %s\n", a.cfg.WeightClass())
	cmd.Println()

	cmd.Println("Runtime:")
	cmd.Printf("  HTTP timeout:  %s\n", s.HTTPTimeout)
	cmd.Printf("  Log level:     %s\n", a.cfg.Level())
}

func (a *app) validateConfig(cmd *cobra.Command) error {
	cmd.Println(output.Header("Configuration Validation", 60))
	cmd.Println()

	pass := func(format string, args ...any) {
		cmd.Printf("  %s %s\n", output.Color("[PASS]", output.Green), fmt.Sprintf(format, args...))
	}
	var errs, warnings []string

	if a.cfgPath == "" {
		warnings = append(warnings, "Config file not found (using defaults)")
	} else {
		pass("Config file: %s", a.cfgPath)
	}

	if err := a.cfg.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("Settings: %v", err))
	} else {
		pass("Settings")
	}

	location := a.cfg.SourcePath(a.baseDir)
	if !a.cfg.IsRemote() {
		if _, err := os.Stat(location); err != nil {
			errs = append(errs, fmt.Sprintf("Source not found: %s", location))
		}
	}

	if len(errs) == 0 {
		store := a.newStore()
		r, err := store.Load(cmd.Context())
		if err != nil {
			errs = append(errs, fmt.Sprintf("Source: %v", err))
		} else {
			pass("Source: %s (%d fighters)", location, r.Len())
			if r.Len() == 0 {
				warnings = append(warnings, "Source has no fighter rows")
			}
		}
	}

	cmd.Println()
	for _, e := range errs {
		cmd.Printf("  %s %s\n", output.Color("[FAIL]", output.Red), e)
	}
	for _, w := range warnings {
		cmd.Printf("  %s %s\n", output.Color("[WARN]", output.Yellow), w)
	}
	cmd.Println()

	switch {
	case len(errs) > 0:
		cmd.Printf("Status: %s\n", output.Color("INVALID", output.Red))
		return NewExitError(ExitCodeFailure, "configuration validation failed")
	case len(warnings) > 0:
		cmd.Printf("Status: %s\n", output.Color("VALID (with warnings)", output.Yellow))
	default:
		cmd.Printf("Status: %s\n", output.Color("VALID", output.Green))
	}
	return nil
}
