// Package format provides uniform reading and writing of configuration
// files across multiple serialization formats.
package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// jsonManager implements Manager for JSON using encoding/json.
type jsonManager struct {
	fileManager
}

// NewJSONManager creates a manager for a JSON configuration file.
func NewJSONManager(path string) Manager {
	return &jsonManager{fileManager{format: JSON, path: path}}
}

// Read decodes JSON from the stream into v.
func (m *jsonManager) Read(r io.Reader, v any, ctx Context) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return newFileError(
			fmt.Sprintf("Invalid JSON file content: %v", err),
			ctx.With(DetailPath, m.path),
			err,
		)
	}
	return nil
}

// Write encodes v into the stream as pretty-printed JSON.
func (m *jsonManager) Write(w io.Writer, v any, ctx Context) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return newFileError(
			fmt.Sprintf("Failed to write JSON file: %v", err),
			ctx.With(DetailPath, m.path),
			err,
		)
	}
	return nil
}

// ReadString decodes in-memory JSON content into v.
func (m *jsonManager) ReadString(content string, v any, ctx Context) error {
	if err := json.Unmarshal([]byte(content), v); err != nil {
		return newFileError(
			fmt.Sprintf("Failed to read JSON content: %v", err),
			ctx.Clone(),
			err,
		)
	}
	return nil
}
