package sqlite

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hangarworks/gauntlet/lib/store/storetest"
)

func TestImpl(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gauntlet.db")

	config, err := json.Marshal(Config{Path: path})
	if err != nil {
		t.Fatal(err)
	}

	storetest.Common(t, Factory{}, config)
}

func TestConfigValid(t *testing.T) {
	if err := (Config{}).Valid(); !errors.Is(err, ErrMissingPath) {
		t.Errorf("wanted ErrMissingPath, got: %v", err)
	}

	if err := (Config{Path: filepath.Join(t.TempDir(), "gauntlet.db")}).Valid(); err != nil {
		t.Error(err)
	}
}
