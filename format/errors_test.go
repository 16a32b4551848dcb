package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_Clone(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
	}{
		{
			name: "nil context",
			ctx:  nil,
		},
		{
			name: "empty context",
			ctx:  Context{},
		},
		{
			name: "populated context",
			ctx:  Context{"env": "prod", "attempt": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clone := tt.ctx.Clone()
			require.NotNil(t, clone)
			assert.Len(t, clone, len(tt.ctx))
			for k, v := range tt.ctx {
				assert.Equal(t, v, clone[k])
			}

			clone["extra"] = true
			assert.NotContains(t, tt.ctx, "extra")
		})
	}
}

func TestContext_With(t *testing.T) {
	original := Context{"env": "dev"}

	extended := original.With("path", "/etc/app.json")

	assert.Equal(t, "dev", extended["env"])
	assert.Equal(t, "/etc/app.json", extended["path"])

	// The caller's context is never mutated.
	assert.Len(t, original, 1)
	assert.NotContains(t, original, "path")
}

func TestContext_WithNil(t *testing.T) {
	var ctx Context

	extended := ctx.With("path", "/etc/app.json")

	require.NotNil(t, extended)
	assert.Equal(t, "/etc/app.json", extended["path"])
}

func TestConfigurationFileError(t *testing.T) {
	cause := errors.New("boom")
	err := newFileError("Failed to open file: boom", Context{"path": "x"}, cause)

	assert.Equal(t, "Failed to open file: boom", err.Error())
	assert.Equal(t, KindInvalidConfiguration, err.Kind())
	assert.Equal(t, CodeInvalidConfiguration, err.Code())
	assert.ErrorIs(t, err, cause)

	var fileErr *ConfigurationFileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, "x", fileErr.Details["path"])
}
