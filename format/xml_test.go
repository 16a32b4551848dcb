package format

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewXMLManager(t *testing.T) {
	m := NewXMLManager("test.xml")
	assert.Equal(t, XML, m.Format())
	assert.Equal(t, "test.xml", m.Path())
}

func TestXMLManager_ReadString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		want    testConfig
	}{
		{
			name:    "valid document",
			content: `<testConfig><name>example</name><value>42</value></testConfig>`,
			want:    testConfig{Name: "example", Value: 42},
		},
		{
			name:    "non-numeric element in numeric field",
			content: `<testConfig><name>example</name><value>not_an_int</value></testConfig>`,
			wantErr: true,
		},
		{
			name:    "unterminated tag",
			content: `<testConfig><name>example</name>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewXMLManager("test.xml")

			var out testConfig
			err := m.ReadString(tt.content, &out, nil)
			if tt.wantErr {
				require.Error(t, err)

				var fileErr *ConfigurationFileError
				require.ErrorAs(t, err, &fileErr)
				assert.Contains(t, fileErr.Message, "Invalid XML content")
				assert.NotContains(t, fileErr.Details, "path")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestXMLManager_Read(t *testing.T) {
	m := NewXMLManager("dummy.xml")

	var out testConfig
	err := m.Read(strings.NewReader(`<testConfig><name>reader</name><value>10</value></testConfig>`), &out, nil)
	require.NoError(t, err)
	assert.Equal(t, testConfig{Name: "reader", Value: 10}, out)
}

func TestXMLManager_ReadFailure(t *testing.T) {
	m := NewXMLManager("dummy.xml")
	ctx := Context{"env": "test"}

	var out testConfig
	err := m.Read(strings.NewReader(`<testConfig><name>bad</name>`), &out, ctx)

	require.Error(t, err)
	var fileErr *ConfigurationFileError
	require.ErrorAs(t, err, &fileErr)
	assert.Contains(t, fileErr.Message, "Invalid XML file content")
	assert.Equal(t, "dummy.xml", fileErr.Details["path"])
	assert.NotEmpty(t, fileErr.Details["origin"])
	assert.Equal(t, "test", fileErr.Details["env"])
}

func TestXMLManager_Write(t *testing.T) {
	m := NewXMLManager("write.xml")
	in := testConfig{Name: "write", Value: 123}

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf, in, nil))

	assert.Contains(t, buf.String(), xml.Header)
	assert.Contains(t, buf.String(), "<name>write</name>")

	var out testConfig
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

func TestXMLManager_WriteFailure(t *testing.T) {
	m := NewXMLManager("broken.xml")

	err := m.Write(brokenWriter{}, testConfig{Name: "x", Value: 1}, nil)

	require.Error(t, err)
	var fileErr *ConfigurationFileError
	require.ErrorAs(t, err, &fileErr)
	assert.Contains(t, fileErr.Message, "Failed to write XML file")
	assert.Equal(t, "broken.xml", fileErr.Details["path"])
	assert.NotEmpty(t, fileErr.Details["origin"])
}
