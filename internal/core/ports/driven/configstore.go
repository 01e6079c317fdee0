package driven

// ConfigStore holds user configuration as flat dot-separated keys
// ("output.format", "watch.min_interval_ms").
// Typed getters return the zero value when a key is missing or has another type.
type ConfigStore interface {
	// Get returns the raw value and whether the key exists.
	Get(key string) (any, bool)

	GetString(key string) string

	// GetInt accepts any integer or float representation the backend produced.
	GetInt(key string) int

	GetBool(key string) bool

	// GetStringSlice returns nil unless the value is a list of strings.
	GetStringSlice(key string) []string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration.
	Save() error

	// Load replaces the in-memory configuration with what is persisted.
	Load() error

	// Path returns where the configuration lives.
	Path() string
}
