package domain

// ShortestPrecision formats values with the fewest digits that round-trip.
const ShortestPrecision = -1

// DisplaySettings holds output formatting configuration.
type DisplaySettings struct {
	// Precision is the number of significant digits printed for values.
	// ShortestPrecision prints the shortest exact representation.
	Precision int

	// Color enables styled output when stdout is a terminal.
	Color bool
}

// IsValid returns true if the precision is usable.
func (d DisplaySettings) IsValid() bool {
	return d.Precision == ShortestPrecision || (d.Precision > 0 && d.Precision <= 17)
}

// StorageSettings holds custom unit storage configuration.
type StorageSettings struct {
	// DataDir is where the custom unit database lives.
	// Empty means the default ~/.propunit directory.
	DataDir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Display holds output formatting settings.
	Display DisplaySettings

	// Storage holds custom unit storage settings.
	Storage StorageSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Display: DisplaySettings{
			Precision: ShortestPrecision,
			Color:     true,
		},
		Storage: StorageSettings{},
	}
}
