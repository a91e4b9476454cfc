package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredCommands(t *testing.T) {
	expected := []string{
		"data:install",
		"defaults:list",
		"elements:show",
		"resolve",
		"sources:list",
		"sources:watch",
	}

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, names[name], "command %q should be registered", name)
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", rootCmd.Version)
}

func TestConfigDir_DefaultWithoutConfigFile(t *testing.T) {
	// Before viper has loaded a config file the fallback directory is used.
	assert.Equal(t, ".gomkm", configDir())
}

func TestCommandArgValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		args []string
	}{
		{name: "defaults:list requires a source", cmd: "defaults:list", args: nil},
		{name: "defaults:list rejects extra args", cmd: "defaults:list", args: []string{"a", "b"}},
		{name: "resolve requires source and filename", cmd: "resolve", args: []string{"geant4_11_3_0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target *cobra.Command
			for _, c := range rootCmd.Commands() {
				if c.Name() == tt.cmd {
					target = c
					break
				}
			}
			require.NotNil(t, target, "command %q should exist", tt.cmd)
			require.Error(t, target.Args(target, tt.args))
		})
	}
}
