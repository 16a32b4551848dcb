// Package format provides uniform reading and writing of configuration
// files across multiple serialization formats.
package format

import (
	"fmt"

	"github.com/mitchellh/go-homedir"

	"github.com/vyrodovalexey/avaconf/observability"
)

// ReadConfig reads the configuration file at path and decodes its
// content into v. An empty format resolves to JSON regardless of the
// path's extension. A leading ~ in path is expanded to the caller's
// home directory.
func ReadConfig(path string, f ContentFormat, v any, ctx Context) error {
	resolved, err := expandPath(path, ctx)
	if err != nil {
		return err
	}
	observability.L().Info("reading config file",
		observability.String("path", resolved),
	)
	m, err := New(f, resolved, ctx)
	if err != nil {
		return err
	}
	return ReadFile(m, v, ctx)
}

// WriteConfig encodes v into the configuration file at path and
// returns the written path. Format and tilde resolution follow
// ReadConfig.
func WriteConfig(path string, f ContentFormat, v any, ctx Context) (string, error) {
	resolved, err := expandPath(path, ctx)
	if err != nil {
		return "", err
	}
	observability.L().Info("saving config file",
		observability.String("path", resolved),
	)
	m, err := New(f, resolved, ctx)
	if err != nil {
		return "", err
	}
	return WriteFile(m, v, ctx)
}

// ParseString decodes in-memory content into v using the given format
// (JSON when empty). It never accesses the filesystem.
func ParseString(f ContentFormat, content string, v any, ctx Context) error {
	m, err := New(f, "", ctx)
	if err != nil {
		return err
	}
	err = m.ReadString(content, v, ctx)
	observeParse(m.Format(), err)
	return err
}

// expandPath resolves a leading ~ to the home directory. No other
// normalization is applied.
func expandPath(path string, ctx Context) (string, error) {
	resolved, err := homedir.Expand(path)
	if err != nil {
		return "", newFileError(
			fmt.Sprintf("Failed to expand path: %v", err),
			ctx.With(DetailPath, path).With(DetailOrigin, err.Error()),
			err,
		)
	}
	return resolved, nil
}
