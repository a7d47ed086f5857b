package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/notedeck/quickfind/configs"
	"github.com/notedeck/quickfind/internal/config"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file to the vault",
		Long: `Write a commented .quickfind.yaml to the vault root. The generated
file documents every setting at its default value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, force bool) error {
	info, err := os.Stat(vaultDir)
	if err != nil {
		return fmt.Errorf("vault directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault path %s is not a directory", vaultDir)
	}

	path := filepath.Join(vaultDir, config.DefaultConfigName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(configs.VaultConfigTemplate), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return err
}
