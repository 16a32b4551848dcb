// Package vault loads named secret blobs from a single JSON file and
// lazily decodes a chosen one into a typed value.
//
// The vault file is a JSON array of objects with alias, key, and value
// fields. The outer envelope is always JSON; each secret's value is an
// embedded document whose format (JSON, YAML, XML, TOML) is chosen by
// the caller at lookup time.
//
// # Example Usage
//
//	cfg, err := vault.Init("vault.json", nil)
//	if err != nil {
//	    return err
//	}
//	secrets, err := cfg.Secrets(nil)
//	if err != nil {
//	    return err
//	}
//	var creds Credentials
//	err = secrets.Alias("db", format.JSON, &creds, nil)
//
// This is not an encrypted store: "vault" only means a file holding
// multiple named secret strings.
package vault
