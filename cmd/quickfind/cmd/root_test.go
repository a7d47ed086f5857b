package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	// Given: the root command
	cmd := NewRootCmd()

	// Then: search and version are registered
	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["search"], "search subcommand should be registered")
	assert.True(t, names["version"], "version subcommand should be registered")
}

func TestRootCmd_VaultFlagDefault(t *testing.T) {
	// Given: the root command
	cmd := NewRootCmd()

	// Then: --vault defaults to the current directory
	flag := cmd.PersistentFlags().Lookup("vault")
	require.NotNil(t, flag)
	assert.Equal(t, ".", flag.DefValue)
}

func TestRootCmd_DebugFlagExists(t *testing.T) {
	// Given: the root command
	cmd := NewRootCmd()

	// Then: --debug is available on all commands
	flag := cmd.PersistentFlags().Lookup("debug")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}
