package lib

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hangarworks/gauntlet/lib/store"
	_ "github.com/hangarworks/gauntlet/lib/store/all"
)

var (
	ErrNoStoreBackend      = errors.New("lib: no store backend defined")
	ErrUnknownStoreBackend = errors.New("lib: unknown store backend")
	ErrBadTTL              = errors.New("lib: ttl does not parse as a duration")
)

// Settings is the on-disk YAML configuration.
type Settings struct {
	Store   StoreSettings  `yaml:"store"`
	TTL     string         `yaml:"ttl"`
	Weights map[string]int `yaml:"weights"`
}

// StoreSettings selects a storage backend by registry name and passes its
// backend-specific parameters through opaquely.
type StoreSettings struct {
	Backend    string         `yaml:"backend"`
	Parameters map[string]any `yaml:"parameters"`
}

// DefaultSettings is what you get with no settings file: in-memory storage,
// the default TTL, and the identify family weighted the way the reference
// deployment weights it.
func DefaultSettings() *Settings {
	return &Settings{
		Store: StoreSettings{Backend: "memory"},
		TTL:   "5m",
		Weights: map[string]int{
			"identify": 3,
		},
	}
}

// LoadSettings reads and validates a settings file, or returns
// DefaultSettings when fname is empty.
func LoadSettings(fname string) (*Settings, error) {
	if fname == "" {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("can't read settings file %s: %w", fname, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("can't parse settings file %s: %w", fname, err)
	}

	if err := settings.Valid(); err != nil {
		return nil, fmt.Errorf("settings file %s is invalid: %w", fname, err)
	}

	return &settings, nil
}

func (s *Settings) Valid() error {
	var errs []error

	if s.Store.Backend == "" {
		errs = append(errs, ErrNoStoreBackend)
	} else if fac, ok := store.Get(s.Store.Backend); !ok {
		errs = append(errs, fmt.Errorf("%w: %q (have: %v)", ErrUnknownStoreBackend, s.Store.Backend, store.Methods()))
	} else if err := fac.Valid(s.storeParams()); err != nil {
		errs = append(errs, err)
	}

	if s.TTL != "" {
		if _, err := time.ParseDuration(s.TTL); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrBadTTL, err))
		}
	}

	if len(errs) != 0 {
		return errors.Join(errs...)
	}

	return nil
}

// BuildStore constructs the configured storage backend.
func (s *Settings) BuildStore(ctx context.Context) (store.Interface, error) {
	fac, ok := store.Get(s.Store.Backend)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStoreBackend, s.Store.Backend)
	}

	return fac.Build(ctx, s.storeParams())
}

// TTLDuration returns the parsed TTL, or zero when unset so callers fall
// back to the default.
func (s *Settings) TTLDuration() time.Duration {
	if s.TTL == "" {
		return 0
	}

	d, err := time.ParseDuration(s.TTL)
	if err != nil {
		return 0
	}

	return d
}

// storeParams re-encodes the YAML parameters map as JSON for the store
// factory contract.
func (s *Settings) storeParams() json.RawMessage {
	if s.Store.Parameters == nil {
		return json.RawMessage(`{}`)
	}

	data, err := json.Marshal(s.Store.Parameters)
	if err != nil {
		return json.RawMessage(`{}`)
	}

	return data
}
