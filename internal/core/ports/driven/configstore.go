package driven

// ConfigStore provides access to application configuration.
// Keys use dot notation ("display.precision") and map onto nested tables
// in the backing file.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString returns "" if the key is missing or not a string.
	GetString(key string) string

	// GetInt returns 0 if the key is missing or not an integer.
	GetInt(key string) int

	// GetBool returns false if the key is missing or not a boolean.
	GetBool(key string) bool

	// Set stores a configuration value in memory. Call Save to persist it.
	Set(key string, value any) error

	// Save persists the current configuration.
	Save() error

	// Load reads configuration from storage, replacing in-memory values.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
