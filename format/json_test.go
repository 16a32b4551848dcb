package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONManager(t *testing.T) {
	m := NewJSONManager("test.json")
	assert.Equal(t, JSON, m.Format())
	assert.Equal(t, "test.json", m.Path())
}

func TestJSONManager_ReadString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		want    testConfig
	}{
		{
			name:    "valid document",
			content: `{"name": "example", "value": 42}`,
			want:    testConfig{Name: "example", Value: 42},
		},
		{
			name:    "type mismatch",
			content: `{"name": "example", "value": "not_an_int"}`,
			wantErr: true,
		},
		{
			name:    "truncated document",
			content: `{"name": "example"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewJSONManager("test.json")

			var out testConfig
			err := m.ReadString(tt.content, &out, nil)
			if tt.wantErr {
				require.Error(t, err)

				var fileErr *ConfigurationFileError
				require.ErrorAs(t, err, &fileErr)
				assert.Contains(t, fileErr.Message, "Failed to read JSON content")
				// No file is involved, so no path is injected.
				assert.NotContains(t, fileErr.Details, "path")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestJSONManager_Read(t *testing.T) {
	m := NewJSONManager("dummy.json")

	var out testConfig
	err := m.Read(strings.NewReader(`{"name": "reader", "value": 10}`), &out, nil)
	require.NoError(t, err)
	assert.Equal(t, testConfig{Name: "reader", Value: 10}, out)
}

func TestJSONManager_ReadFailure(t *testing.T) {
	m := NewJSONManager("dummy.json")
	ctx := Context{"env": "test"}

	var out testConfig
	err := m.Read(strings.NewReader(`{"name": "bad", "value": "oops"}`), &out, ctx)

	require.Error(t, err)
	var fileErr *ConfigurationFileError
	require.ErrorAs(t, err, &fileErr)
	assert.Contains(t, fileErr.Message, "Invalid JSON file content")
	assert.Equal(t, "dummy.json", fileErr.Details["path"])
	assert.Equal(t, "test", fileErr.Details["env"])
}

func TestJSONManager_Write(t *testing.T) {
	m := NewJSONManager("write.json")
	in := testConfig{Name: "write", Value: 123}

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf, in, nil))

	// Pretty-printed on write.
	assert.Contains(t, buf.String(), "\n  ")

	var out testConfig
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

func TestJSONManager_WriteFailure(t *testing.T) {
	m := NewJSONManager("broken.json")

	err := m.Write(brokenWriter{}, testConfig{Name: "x", Value: 1}, nil)

	require.Error(t, err)
	var fileErr *ConfigurationFileError
	require.ErrorAs(t, err, &fileErr)
	assert.Contains(t, fileErr.Message, "Failed to write JSON file")
	assert.Equal(t, "broken.json", fileErr.Details["path"])
}
