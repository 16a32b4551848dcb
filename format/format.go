// Package format provides uniform reading and writing of configuration
// files across multiple serialization formats.
package format

import "fmt"

// ContentFormat identifies a supported serialization format.
type ContentFormat string

// Supported content formats.
const (
	// JSON format (the default).
	JSON ContentFormat = "json"

	// YAML format.
	YAML ContentFormat = "yaml"

	// XML format.
	XML ContentFormat = "xml"

	// TOML format.
	TOML ContentFormat = "toml"
)

// DefaultFormat is used whenever no format is specified.
const DefaultFormat = JSON

// String returns the upper-case format name used in messages and
// metric labels.
func (f ContentFormat) String() string {
	switch f {
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	case XML:
		return "XML"
	case TOML:
		return "TOML"
	default:
		return string(f)
	}
}

// managers maps every supported format to its manager constructor. The
// registry is enumerated explicitly; adding a format means adding an
// entry here.
var managers = map[ContentFormat]func(path string) Manager{
	JSON: func(path string) Manager { return NewJSONManager(path) },
	YAML: func(path string) Manager { return NewYAMLManager(path) },
	XML:  func(path string) Manager { return NewXMLManager(path) },
	TOML: func(path string) Manager { return NewTOMLManager(path) },
}

// New returns a manager for the given format and path. An empty format
// resolves to DefaultFormat. Unknown formats fail with a
// ConfigurationFileError carrying the caller's context.
func New(f ContentFormat, path string, ctx Context) (Manager, error) {
	if f == "" {
		f = DefaultFormat
	}
	ctor, ok := managers[f]
	if !ok {
		return nil, newFileError(
			fmt.Sprintf("Unsupported content format: %s", f),
			ctx.With(DetailPath, path),
			nil,
		)
	}
	return ctor(path), nil
}
