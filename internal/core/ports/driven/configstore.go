package driven

// ConfigStore reads and writes persisted application settings.
// Implementations own the storage format (such as a TOML file under
// the user's home directory) and the type coercion of stored values.
type ConfigStore interface {
	// Get returns the raw value for key and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns the string value for key, or "" if the key
	// is absent or holds a different type.
	GetString(key string) string

	// GetInt returns the integer value for key, or 0 if the key
	// is absent or holds a different type.
	GetInt(key string) int

	// GetBool returns the boolean value for key, or false if the key
	// is absent or holds a different type.
	GetBool(key string) bool

	// GetStringSlice returns the string slice for key, or nil if the
	// key is absent or holds a different type.
	GetStringSlice(key string) []string

	// Set stores a value under key and persists it immediately.
	Set(key string, value any) error

	// Save writes the current configuration to storage.
	Save() error

	// Load reads the configuration from storage.
	Load() error

	// Path returns the location of the backing configuration file.
	Path() string
}
