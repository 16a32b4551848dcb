// Package format provides uniform reading and writing of configuration
// files across multiple serialization formats.
//
// Each supported format (JSON, YAML, XML, TOML) is implemented by a
// Manager that decodes from and encodes to streams behind one interface.
// Failures are wrapped into ConfigurationFileError values carrying the
// caller's error context extended with the file path and, where useful,
// the raw underlying error text.
//
// # Example Usage
//
//	var cfg AppConfig
//	err := format.ReadConfig("~/.config/app.json", format.JSON, &cfg, nil)
//
//	path, err := format.WriteConfig("app.yaml", format.YAML, cfg, nil)
//
// # Format Selection
//
// An empty ContentFormat always resolves to JSON; the file extension is
// never inspected.
//
// # Thread Safety
//
// Managers hold only a path and are safe to construct and use from
// multiple goroutines. Concurrent writes to the same path are not
// coordinated and must be serialized by the caller.
package format
