package bbolt

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
)

func TestConfigValid(t *testing.T) {
	for _, tt := range []struct {
		name   string
		config Config
		err    error
	}{
		{
			name:   "missing path",
			config: Config{},
			err:    ErrMissingPath,
		},
		{
			name:   "unwritable path",
			config: Config{Path: "/proc/nonexistent/gauntlet.bdb"},
			err:    ErrCantWriteToPath,
		},
		{
			name:   "allgood",
			config: Config{Path: filepath.Join(t.TempDir(), "gauntlet.bdb")},
			err:    nil,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Valid(); !errors.Is(err, tt.err) {
				t.Logf("want: %v", tt.err)
				t.Logf("got:  %v", err)
				t.Error("wrong error")
			}
		})
	}
}

func TestFactoryValid(t *testing.T) {
	config, err := json.Marshal(Config{Path: filepath.Join(t.TempDir(), "gauntlet.bdb")})
	if err != nil {
		t.Fatal(err)
	}

	if err := (Factory{}).Valid(config); err != nil {
		t.Error(err)
	}

	if err := (Factory{}).Valid(json.RawMessage(`{`)); err == nil {
		t.Error("wanted malformed JSON to fail validation")
	}
}
