// Package format provides uniform reading and writing of configuration
// files across multiple serialization formats.
package format

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlManager implements Manager for YAML using gopkg.in/yaml.v3.
type yamlManager struct {
	fileManager
}

// NewYAMLManager creates a manager for a YAML configuration file.
func NewYAMLManager(path string) Manager {
	return &yamlManager{fileManager{format: YAML, path: path}}
}

// Read decodes YAML from the stream into v.
func (m *yamlManager) Read(r io.Reader, v any, ctx Context) error {
	if err := yaml.NewDecoder(r).Decode(v); err != nil {
		return newFileError(
			fmt.Sprintf("Invalid YAML file content: %v", err),
			ctx.With(DetailPath, m.path).With(DetailOrigin, err.Error()),
			err,
		)
	}
	return nil
}

// Write encodes v into the stream with the library-default YAML
// emission.
func (m *yamlManager) Write(w io.Writer, v any, ctx Context) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		enc.Close()
		return newFileError(
			fmt.Sprintf("Failed to write YAML file: %v", err),
			ctx.With(DetailPath, m.path),
			err,
		)
	}
	if err := enc.Close(); err != nil {
		return newFileError(
			fmt.Sprintf("Failed to write YAML file: %v", err),
			ctx.With(DetailPath, m.path),
			err,
		)
	}
	return nil
}

// ReadString decodes in-memory YAML content into v.
func (m *yamlManager) ReadString(content string, v any, ctx Context) error {
	if err := yaml.Unmarshal([]byte(content), v); err != nil {
		return newFileError(
			fmt.Sprintf("Invalid YAML content: %v", err),
			ctx.Clone(),
			err,
		)
	}
	return nil
}
