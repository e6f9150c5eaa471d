package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jx/cmd/jx/commands"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setup        func(dir string)
		args         []string
		withDir      bool
		expectedExit int
	}{
		{
			name:         "Version",
			setup:        func(string) {},
			args:         []string{"jx", "version"},
			expectedExit: 0,
		},
		{
			name: "Install without dependencies",
			setup: func(dir string) {
				err := os.WriteFile(filepath.Join(dir, "jx.toml"), []byte("[dependencies]\n"), 0o600)
				if err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			},
			args:         []string{"jx", "install", "--offline"},
			withDir:      true,
			expectedExit: 0,
		},
		{
			name:         "Install without project",
			setup:        func(string) {},
			args:         []string{"jx", "install"},
			withDir:      true,
			expectedExit: 1,
		},
		{
			name:         "Unknown command",
			setup:        func(string) {},
			args:         []string{"jx", "frobnicate"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			tmpDir := t.TempDir()
			tt.setup(tmpDir)

			os.Args = tt.args
			if tt.withDir {
				os.Args = append(os.Args, "-C", tmpDir)
			}

			devNull, err := os.Open(os.DevNull)
			if err != nil {
				t.Fatalf("failed to open %s: %v", os.DevNull, err)
			}
			defer func() { _ = devNull.Close() }()

			exitCode := run(func(c *commands.CLI) {
				c.SetOutput(devNull)
			})
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
