// Package cmd provides the CLI commands for quickfind.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/notedeck/quickfind/internal/app"
	"github.com/notedeck/quickfind/internal/config"
	"github.com/notedeck/quickfind/internal/logging"
	"github.com/notedeck/quickfind/internal/ui"
	"github.com/notedeck/quickfind/internal/vault"
	"github.com/notedeck/quickfind/pkg/version"
)

// Persistent flags shared by all commands.
var (
	vaultDir  string
	debugMode bool
)

// NewRootCmd creates the root command for the quickfind CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quickfind",
		Short: "Instant quick-open search for a notes vault",
		Long: `Quickfind indexes the markdown, text, and canvas files in a vault
directory and answers substring queries over paths and content.

Run 'quickfind' in a vault for the interactive picker, or
'quickfind search <query>' for one-shot results.`,
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			return runPicker(cmd)
		},
	}

	cmd.SetVersionTemplate("quickfind version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&vaultDir, "vault", ".", "Vault directory to index")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.quickfind/logs/")

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig reads the vault-local config file, falling back to defaults.
func loadConfig() (config.Config, error) {
	return config.Load(filepath.Join(vaultDir, config.DefaultConfigName))
}

// newLogger sets up file logging per the config and flags. The picker owns
// the terminal, so a setup failure degrades to a discard logger rather
// than aborting the command.
func newLogger(cfg config.Config) (*slog.Logger, func()) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	if cfg.Log.File != "" {
		logCfg.FilePath = cfg.Log.File
	}
	if debugMode {
		logCfg.Level = "debug"
	}

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	return logger, cleanup
}

// runPicker runs the interactive picker and prints the chosen path.
func runPicker(cmd *cobra.Command) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("the interactive picker needs a terminal; use 'quickfind search <query>' instead")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, cleanup := newLogger(cfg)
	defer cleanup()
	slog.SetDefault(logger)

	a, err := app.New(cfg, vaultDir, vault.EmptyWorkspace{}, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a.Start(ctx)
	defer a.Stop()

	selected, err := ui.Run(ctx, a)
	if err != nil {
		return err
	}
	if selected != "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), selected)
	}
	return err
}
