// Package vault loads named secret blobs from a single JSON file and
// lazily decodes a chosen one into a typed value.
package vault

import (
	"fmt"

	"github.com/vyrodovalexey/avaconf/format"
)

// Secret is a single named secret stored in the vault.
//
// Alias is the lookup key exposed to callers. Key is an opaque
// secondary identifier, carried but not interpreted. Value is an
// un-parsed document in some supported format.
type Secret struct {
	Alias string `json:"alias"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewSecret creates a secret with the given alias, key, and value.
func NewSecret(alias, key, value string) Secret {
	return Secret{Alias: alias, Key: key, Value: value}
}

// Secrets is the collection of secrets loaded from a vault file. It is
// built once at load time and read-only thereafter.
type Secrets struct {
	data []Secret
}

// NewSecrets creates a collection from the given secrets.
func NewSecrets(data []Secret) *Secrets {
	return &Secrets{data: data}
}

// Alias looks up a secret by alias and decodes its value into v using
// the given format (JSON when empty).
//
// When two entries share an alias, the later one wins. A missing alias
// fails with a SecretError whose details carry the caller's context
// plus the alias.
func (s *Secrets) Alias(name string, f format.ContentFormat, v any, ctx format.Context) error {
	aliases := make(map[string]string, len(s.data))
	for _, item := range s.data {
		aliases[item.Alias] = item.Value
	}

	value, ok := aliases[name]
	if !ok {
		err := newSecretError(
			fmt.Sprintf("Invalid alias: %s", name),
			ctx.With(DetailAlias, name),
			nil,
		)
		observeResolve("miss")
		return err
	}

	err := format.ParseString(f, value, v, ctx)
	if err != nil {
		observeResolve("error")
		return err
	}
	observeResolve("success")
	return nil
}

// Config holds the secrets loaded from a vault file. The zero value is
// the absent state; Init is the only way to reach the loaded state.
type Config struct {
	secrets *Secrets
}

// Init loads a vault file and returns a loaded Config. The file is
// always read as JSON regardless of the formats of the secret values
// inside it.
func Init(path string, ctx format.Context) (*Config, error) {
	var data []Secret
	m := format.NewJSONManager(path)
	if err := format.ReadFile(m, &data, ctx); err != nil {
		return nil, err
	}
	return &Config{secrets: NewSecrets(data)}, nil
}

// Secrets returns the loaded collection, or a SecretError when the
// config is in the absent state.
func (c *Config) Secrets(ctx format.Context) (*Secrets, error) {
	if c == nil || c.secrets == nil {
		return nil, newSecretError("Failed to read vault data", ctx.Clone(), nil)
	}
	return c.secrets, nil
}
