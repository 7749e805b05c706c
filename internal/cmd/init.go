package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ufccards/ufccards/internal/config"
	"github.com/ufccards/ufccards/internal/output"
)

func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a ufccards project in the current directory",
		Long: `Create .ufccards/config.yaml with the default settings and an empty data/
directory for the roster file.

The generated config points at data/fighters.csv. Copy your roster there
or edit the source setting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			return a.initProject(cmd, cwd, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config")
	return cmd
}

func (a *app) initProject(cmd *cobra.Command, dir string, force bool) error {
	configFile := filepath.Join(dir, ".ufccards", "config.yaml")
	dataDir := filepath.Join(dir, "data")

	if _, err := os.Stat(configFile); err == nil && !force {
		cmd.Printf("%s %s already exists\n", output.Color("Warning:", output.Yellow), configFile)
		cmd.Printf("%s\n", output.Color("Use --force to overwrite", output.Dim))
		return NewExitError(ExitCodeFailure, "")
	}

	cmd.Printf("Creating ufccards project in %s\n\n", dir)

	cfg := config.DefaultConfig()
	if err := cfg.Save(configFile); err != nil {
		return err
	}
	cmd.Printf("  %s Created %s\n", output.Color("✓", output.Green), configFile)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	cmd.Printf("  %s Created %s\n", output.Color("✓", output.Green), dataDir)

	cmd.Println()
	cmd.Println("Next steps:")
	cmd.Printf("  1. Copy your roster file to %s\n", cfg.SourcePath(dir))
	cmd.Println("  2. Run 'ufccards config --validate' to check it loads")
	cmd.Println("  3. Run 'ufccards browse'")
	return nil
}
