package constants

// Format is a report output format.
type Format string

const (
	// FormatText prints the human-readable outcome lines.
	FormatText Format = "text"

	// FormatJSON prints a single JSON document.
	FormatJSON Format = "json"

	// FormatYAML prints a single YAML document.
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// Valid returns true if the format is a recognized value.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}
