package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectn/internal/config"
)

func TestRecorderNilStore(t *testing.T) {
	if r := recorder(nil); r != nil {
		t.Errorf("recorder(nil) = %v, expected nil interface", r)
	}
}

func TestSeed(t *testing.T) {
	old := flagSeed
	t.Cleanup(func() { flagSeed = old })

	flagSeed = 42
	if got := seed(); got != 42 {
		t.Errorf("seed() = %d, expected 42", got)
	}

	flagSeed = 0
	if got := seed(); got == 0 {
		t.Error("seed() should be time based when --seed is not set")
	}
}

func TestOpenStore(t *testing.T) {
	oldDB := flagDBPath
	t.Cleanup(func() { flagDBPath = oldDB })
	logger := log.New(os.Stderr)

	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "results.db")

	tests := []struct {
		name    string
		enabled bool
		dbFlag  string
		wantNil bool
	}{
		{"enabled", true, "", false},
		{"disabled", false, "", true},
		{"flag overrides disabled", false, filepath.Join(t.TempDir(), "flag.db"), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cfg
			c.Storage.Enabled = tc.enabled
			flagDBPath = tc.dbFlag

			store := openStore(c, logger)
			if store != nil {
				defer store.Close()
			}
			if (store == nil) != tc.wantNil {
				t.Errorf("openStore() nil = %v, expected %v", store == nil, tc.wantNil)
			}
		})
	}
}

func TestUseColorNoColorFlag(t *testing.T) {
	old := flagNoColor
	t.Cleanup(func() { flagNoColor = old })

	flagNoColor = true
	if useColor(config.Default(), os.Stdout) {
		t.Error("useColor() should be false with --no-color")
	}
}
