// Package format provides uniform reading and writing of configuration
// files across multiple serialization formats.
package format

import (
	"fmt"
	"io"
	"os"
)

// Manager handles one configuration file in one serialization format.
//
// A manager is constructed per operation, holds only the file path, and
// is never mutated after construction. OpenFile and CreateFile are
// format-independent and provided once by the shared file manager;
// Read, Write, and ReadString are format-specific.
type Manager interface {
	// Format returns the format this manager handles.
	Format() ContentFormat

	// Path returns the file path associated with the manager.
	Path() string

	// OpenFile opens the configuration file for reading.
	OpenFile(ctx Context) (*os.File, error)

	// CreateFile creates (or truncates) the configuration file for
	// writing.
	CreateFile(ctx Context) (*os.File, error)

	// Read decodes configuration data from a stream into v.
	Read(r io.Reader, v any, ctx Context) error

	// Write encodes v into the stream.
	Write(w io.Writer, v any, ctx Context) error

	// ReadString decodes in-memory content into v. It never accesses
	// the filesystem and never injects a path into error details.
	ReadString(content string, v any, ctx Context) error
}

// fileManager provides the format-independent half of Manager. Format
// managers embed it and add their codec.
type fileManager struct {
	format ContentFormat
	path   string
}

// Format returns the format this manager handles.
func (m *fileManager) Format() ContentFormat {
	return m.format
}

// Path returns the file path associated with the manager.
func (m *fileManager) Path() string {
	return m.path
}

// OpenFile opens the configuration file for reading.
func (m *fileManager) OpenFile(ctx Context) (*os.File, error) {
	f, err := os.Open(m.path)
	if err != nil {
		return nil, newFileError(
			fmt.Sprintf("Failed to open file: %v", err),
			ctx.With(DetailPath, m.path).With(DetailOrigin, err.Error()),
			err,
		)
	}
	return f, nil
}

// CreateFile creates (or truncates) the configuration file for writing.
func (m *fileManager) CreateFile(ctx Context) (*os.File, error) {
	f, err := os.Create(m.path)
	if err != nil {
		return nil, newFileError(
			fmt.Sprintf("Failed to create file: %v", err),
			ctx.With(DetailPath, m.path).With(DetailOrigin, err.Error()),
			err,
		)
	}
	return f, nil
}

// ReadFile opens the manager's path and decodes its content into v.
// The file handle is released on every exit path.
func ReadFile(m Manager, v any, ctx Context) error {
	f, err := m.OpenFile(ctx)
	if err != nil {
		observeRead(m.Format(), err)
		return err
	}
	defer f.Close()

	err = m.Read(f, v, ctx)
	observeRead(m.Format(), err)
	return err
}

// WriteFile creates the manager's path, encodes v into it, and returns
// the written path.
func WriteFile(m Manager, v any, ctx Context) (string, error) {
	f, err := m.CreateFile(ctx)
	if err != nil {
		observeWrite(m.Format(), err)
		return "", err
	}
	defer f.Close()

	if err := m.Write(f, v, ctx); err != nil {
		observeWrite(m.Format(), err)
		return "", err
	}
	observeWrite(m.Format(), nil)
	return m.Path(), nil
}
