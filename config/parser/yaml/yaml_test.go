package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsData = `
indent: "  "
documents:
  app:
    path: /etc/app/app.conf
    mode: strict
    autosave: true
  cache:
    path: /var/cache/app.conf
    mode: lenient
    limits:
      entries: 4096
      ratio: 0.75
      hosts:
        - a.example.com
        - b.example.com
`

type documentSettings struct {
	Path     string `yaml:"path"`
	Mode     string `yaml:"mode"`
	Autosave bool   `yaml:"autosave"`
}

func TestParser_Parse_EmptyPath(t *testing.T) {
	t.Parallel()

	var result struct {
		Indent string `yaml:"indent"`
	}

	err := NewParser().Parse([]byte(settingsData), &result, "")

	require.NoError(t, err)
	assert.Equal(t, "  ", result.Indent)
}

func TestParser_Parse_NestedPath(t *testing.T) {
	t.Parallel()

	var result documentSettings

	err := NewParser().Parse([]byte(settingsData), &result, "documents/app")

	require.NoError(t, err)
	assert.Equal(t, documentSettings{Path: "/etc/app/app.conf", Mode: "strict", Autosave: true}, result)
}

func TestParser_Parse_Scalars(t *testing.T) {
	t.Parallel()

	parser := NewParser()
	data := []byte(settingsData)

	var entries int

	require.NoError(t, parser.Parse(data, &entries, "documents/cache/limits/entries"))
	assert.Equal(t, 4096, entries)

	var ratio float64

	require.NoError(t, parser.Parse(data, &ratio, "documents/cache/limits/ratio"))
	assert.InDelta(t, 0.75, ratio, 0.00001)

	var autosave bool

	require.NoError(t, parser.Parse(data, &autosave, "documents/app/autosave"))
	assert.True(t, autosave)

	var hosts []string

	require.NoError(t, parser.Parse(data, &hosts, "/documents/cache/limits/hosts/"))
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, hosts)
}

func TestParser_Parse_MapValue(t *testing.T) {
	t.Parallel()

	var result map[string]documentSettings

	err := NewParser().Parse([]byte(settingsData), &result, "documents")

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "lenient", result["cache"].Mode)
}

func TestParser_Parse_NonExistentKey(t *testing.T) {
	t.Parallel()

	var result documentSettings

	err := NewParser().Parse([]byte(settingsData), &result, "documents/missing")

	require.ErrorIs(t, err, ErrPathNotFound)
}

func TestParser_Parse_NonMappingIntermediate(t *testing.T) {
	t.Parallel()

	var result documentSettings

	err := NewParser().Parse([]byte(settingsData), &result, "indent/nested")

	require.Error(t, err)
}

func TestParser_Parse_Strict(t *testing.T) {
	t.Parallel()

	var result struct {
		Path string `yaml:"path"`
	}

	err := NewParser().Parse([]byte(settingsData), &result, "documents/app")
	require.NoError(t, err)

	err = NewParser(WithStrict()).Parse([]byte(settingsData), &result, "documents/app")
	require.Error(t, err)

	err = NewParser(WithStrict()).Parse([]byte("path: x\nmode: y\n"), &result, "")
	require.Error(t, err)
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	var result struct{}

	err := NewParser().Parse([]byte{}, &result, "")

	require.ErrorIs(t, err, ErrEmptyData)
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	var result struct{}

	err := NewParser().Parse([]byte("invalid: yaml: content: [\n"), &result, "")

	require.Error(t, err)
}

func TestConvertToYAMLPath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single key", input: "key", expected: "$.key"},
		{name: "two level path", input: "documents/app", expected: "$.documents.app"},
		{name: "surrounding separators", input: "/documents/app/", expected: "$.documents.app"},
		{name: "three level path", input: "documents/cache/limits", expected: "$.documents.cache.limits"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, convertToYAMLPath(testCase.input))
		})
	}
}
