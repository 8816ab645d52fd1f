// Package env overlays environment variables on a configuration store.
//
// A key such as "sort.locale" is read from FIELDSORT_SORT_LOCALE. Values
// come from the process environment first, then from a .env file in the
// configuration directory, then from the wrapped store.
package env

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/shawnhcorey/Field-Sort/internal/core/ports/driven"
	"github.com/shawnhcorey/Field-Sort/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.ConfigStore = (*Store)(nil)

// Prefix starts every overriding variable name.
const Prefix = "FIELDSORT_"

// DotEnvFile is the optional file read from the configuration directory.
const DotEnvFile = ".env"

// Store reads overrides from the environment and delegates the rest,
// including every write, to the wrapped store.
type Store struct {
	base   driven.ConfigStore
	dir    string
	lookup func(string) (string, bool)
	dotenv map[string]string
}

// Option configures a Store.
type Option func(*Store)

// WithLookup replaces os.LookupEnv. Useful for testing.
func WithLookup(lookup func(string) (string, bool)) Option {
	return func(s *Store) {
		s.lookup = lookup
	}
}

// NewStore wraps base. dir is where DotEnvFile is looked for; empty skips it.
func NewStore(base driven.ConfigStore, dir string, opts ...Option) (*Store, error) {
	s := &Store{
		base:   base,
		dir:    dir,
		lookup: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.loadDotEnv(); err != nil {
		return nil, err
	}
	return s, nil
}

// VarName returns the environment variable that overrides key.
func VarName(key string) string {
	r := strings.NewReplacer(".", "_", "-", "_")
	return Prefix + strings.ToUpper(r.Replace(key))
}

// Get retrieves a configuration value by key.
func (s *Store) Get(key string) (any, bool) {
	if v, ok := s.override(key); ok {
		return v, true
	}
	return s.base.Get(key)
}

// GetString retrieves a string configuration value.
func (s *Store) GetString(key string) string {
	if v, ok := s.override(key); ok {
		return v
	}
	return s.base.GetString(key)
}

// GetBool retrieves a boolean configuration value.
// Overrides that do not parse as a boolean are ignored.
func (s *Store) GetBool(key string) bool {
	if v, ok := s.override(key); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err == nil {
			return b
		}
		logger.Warn("Ignoring %s=%q: not a boolean", VarName(key), v)
	}
	return s.base.GetBool(key)
}

// GetStringSlice retrieves a string slice configuration value.
// Overrides are comma separated.
func (s *Store) GetStringSlice(key string) []string {
	if v, ok := s.override(key); ok {
		var items []string
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items
	}
	return s.base.GetStringSlice(key)
}

// Set stores a configuration value in the wrapped store.
func (s *Store) Set(key string, value any) error {
	return s.base.Set(key, value)
}

// Save persists the wrapped store.
func (s *Store) Save() error {
	return s.base.Save()
}

// Load reloads the wrapped store and the .env file.
func (s *Store) Load() error {
	if err := s.base.Load(); err != nil {
		return err
	}
	return s.loadDotEnv()
}

// Path returns the wrapped store's path.
func (s *Store) Path() string {
	return s.base.Path()
}

// Overrides lists the variables currently overriding keys.
func (s *Store) Overrides(keys []string) map[string]string {
	out := make(map[string]string)
	for _, key := range keys {
		if v, ok := s.override(key); ok {
			out[VarName(key)] = v
		}
	}
	return out
}

func (s *Store) override(key string) (string, bool) {
	name := VarName(key)
	if v, ok := s.lookup(name); ok {
		return v, true
	}
	v, ok := s.dotenv[name]
	return v, ok
}

func (s *Store) loadDotEnv() error {
	s.dotenv = nil
	if s.dir == "" {
		return nil
	}

	path := filepath.Join(s.dir, DotEnvFile)
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	logger.Debug("Loaded %d variables from %s", len(values), path)
	s.dotenv = values
	return nil
}
