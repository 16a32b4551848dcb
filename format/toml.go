// Package format provides uniform reading and writing of configuration
// files across multiple serialization formats.
package format

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// tomlManager implements Manager for TOML using
// github.com/pelletier/go-toml/v2.
type tomlManager struct {
	fileManager
}

// NewTOMLManager creates a manager for a TOML configuration file.
func NewTOMLManager(path string) Manager {
	return &tomlManager{fileManager{format: TOML, path: path}}
}

// Read decodes TOML from the stream into v.
//
// The library has no streaming decoder, so the stream is buffered in
// full before parsing.
func (m *tomlManager) Read(r io.Reader, v any, ctx Context) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return newFileError(
			fmt.Sprintf("Invalid TOML file content: %v", err),
			ctx.With(DetailPath, m.path),
			err,
		)
	}
	return m.ReadString(string(buf), v, ctx)
}

// Write encodes v as TOML text and writes it verbatim to the stream.
func (m *tomlManager) Write(w io.Writer, v any, ctx Context) error {
	buf, err := toml.Marshal(v)
	if err != nil {
		return newFileError(
			fmt.Sprintf("Failed to write TOML file: %v", err),
			ctx.With(DetailPath, m.path),
			err,
		)
	}
	if _, err := w.Write(buf); err != nil {
		return newFileError(
			fmt.Sprintf("Failed to write TOML file: %v", err),
			ctx.With(DetailPath, m.path),
			err,
		)
	}
	return nil
}

// ReadString decodes in-memory TOML content into v.
func (m *tomlManager) ReadString(content string, v any, ctx Context) error {
	if err := toml.Unmarshal([]byte(content), v); err != nil {
		return newFileError(
			fmt.Sprintf("Failed to read TOML content: %v", err),
			ctx.Clone(),
			err,
		)
	}
	return nil
}
