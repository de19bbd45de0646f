package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

const configFileName = "config.toml"

// ConfigStore persists settings to a TOML file under the veridoc
// config directory. Nested tables are exposed through dot-notation
// keys, so backend.url reads the url key of the [backend] table.
type ConfigStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]any
}

// NewConfigStore opens (or creates) the store rooted at configDir.
// An empty configDir means ~/.veridoc.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".veridoc")
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		path:   filepath.Join(configDir, configFileName),
		values: make(map[string]any),
	}
	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// Load reads and flattens the TOML file. A missing file leaves the
// store empty rather than failing.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.values = make(map[string]any)
			return nil
		}
		return err
	}

	var tree map[string]any
	if err := toml.Unmarshal(raw, &tree); err != nil {
		return err
	}

	s.values = make(map[string]any)
	flattenInto(s.values, "", tree)
	return nil
}

// Save writes the current values back to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write()
}

// Set stores value under key and persists immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.write()
}

// write marshals the flat key set. Caller holds the lock.
func (s *ConfigStore) write() error {
	raw, err := toml.Marshal(s.values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0600)
}

// Get returns the raw value for key and whether it exists.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok
}

// GetString returns the string value for key, or "".
func (s *ConfigStore) GetString(key string) string {
	v, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

// GetInt returns the integer value for key, or 0. TOML decodes
// integers as int64, so both widths are accepted.
func (s *ConfigStore) GetInt(key string) int {
	v, ok := s.Get(key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	}
	return 0
}

// GetBool returns the boolean value for key, or false.
func (s *ConfigStore) GetBool(key string) bool {
	v, ok := s.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// GetStringSlice returns the string slice for key, or nil. TOML
// arrays decode as []any; non-string elements are skipped.
func (s *ConfigStore) GetStringSlice(key string) []string {
	v, ok := s.Get(key)
	if !ok {
		return nil
	}
	switch arr := v.(type) {
	case []string:
		return arr
	case []any:
		out := make([]string, 0, len(arr))
		for _, item := range arr {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// Path returns the location of the backing file.
func (s *ConfigStore) Path() string {
	return s.path
}

// flattenInto walks a decoded TOML tree and records every leaf under
// its dot-joined key path.
func flattenInto(dst map[string]any, prefix string, tree map[string]any) {
	for key, value := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenInto(dst, full, nested)
			continue
		}
		dst[full] = value
	}
}
