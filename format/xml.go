// Package format provides uniform reading and writing of configuration
// files across multiple serialization formats.
package format

import (
	"encoding/xml"
	"fmt"
	"io"
)

// xmlManager implements Manager for XML using encoding/xml.
type xmlManager struct {
	fileManager
}

// NewXMLManager creates a manager for an XML configuration file.
func NewXMLManager(path string) Manager {
	return &xmlManager{fileManager{format: XML, path: path}}
}

// Read decodes XML from the stream into v.
func (m *xmlManager) Read(r io.Reader, v any, ctx Context) error {
	if err := xml.NewDecoder(r).Decode(v); err != nil {
		return newFileError(
			fmt.Sprintf("Invalid XML file content: %v", err),
			ctx.With(DetailPath, m.path).With(DetailOrigin, err.Error()),
			err,
		)
	}
	return nil
}

// Write encodes v into the stream as indented XML with the standard
// header.
func (m *xmlManager) Write(w io.Writer, v any, ctx Context) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return m.writeError(err, ctx)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return m.writeError(err, ctx)
	}
	if err := enc.Close(); err != nil {
		return m.writeError(err, ctx)
	}
	return nil
}

func (m *xmlManager) writeError(err error, ctx Context) error {
	return newFileError(
		fmt.Sprintf("Failed to write XML file: %v", err),
		ctx.With(DetailPath, m.path).With(DetailOrigin, err.Error()),
		err,
	)
}

// ReadString decodes in-memory XML content into v.
func (m *xmlManager) ReadString(content string, v any, ctx Context) error {
	if err := xml.Unmarshal([]byte(content), v); err != nil {
		return newFileError(
			fmt.Sprintf("Invalid XML content: %v", err),
			ctx.Clone(),
			err,
		)
	}
	return nil
}
