package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockParser struct {
	parseFunc func(data []byte, target any, path string) error
}

func (m *mockParser) Parse(data []byte, target any, path string) error {
	return m.parseFunc(data, target, path)
}

type indentSettings struct {
	Indent string
}

type settingsWithDefaults struct {
	Indent  string
	applied bool
}

func (s *settingsWithDefaults) SetDefaults() bool {
	if s.Indent != "" {
		return false
	}

	s.Indent = "\t"
	s.applied = true

	return true
}

type settingsWithBoth struct {
	Indent string
	err    error
}

func (s *settingsWithBoth) SetDefaults() bool {
	if s.Indent == "" {
		s.Indent = "\t"

		return true
	}

	return false
}

func (s *settingsWithBoth) Validate() error {
	return s.err
}

func staticFetcher(data string) DataFetcherFunc {
	return func() ([]byte, error) {
		return []byte(data), nil
	}
}

func TestProvider_Success(t *testing.T) {
	t.Parallel()

	target := &indentSettings{}
	parser := &mockParser{
		parseFunc: func(data []byte, target any, path string) error {
			settings, ok := target.(*indentSettings)
			if !ok {
				return errors.New("invalid target type")
			}

			assert.Equal(t, "app/format", path)

			settings.Indent = string(data)

			return nil
		},
	}

	result, err := Provider(target, "app/format")(parser, staticFetcher("  "))
	require.NoError(t, err)

	assert.Same(t, target, result)
	assert.Equal(t, "  ", result.Indent)
}

func TestProvider_AppliesDefaults(t *testing.T) {
	t.Parallel()

	parser := &mockParser{
		parseFunc: func(_ []byte, _ any, _ string) error {
			return nil
		},
	}

	result, err := Provider(&settingsWithDefaults{}, "")(parser, staticFetcher(""))
	require.NoError(t, err)

	assert.True(t, result.applied)
	assert.Equal(t, "\t", result.Indent)
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")
	validationErr := errors.New("validation failed")

	testCases := []struct {
		name      string
		fetcher   DataFetcher
		parseFunc func(data []byte, target any, path string) error
		targetErr error
		wantErr   error
	}{
		{
			name: "fetch error",
			fetcher: DataFetcherFunc(func() ([]byte, error) {
				return nil, fetchErr
			}),
			parseFunc: func(_ []byte, _ any, _ string) error {
				return nil
			},
			wantErr: fetchErr,
		},
		{
			name:    "parse error",
			fetcher: staticFetcher("data"),
			parseFunc: func(_ []byte, _ any, _ string) error {
				return parseErr
			},
			wantErr: parseErr,
		},
		{
			name:    "validation error",
			fetcher: staticFetcher("data"),
			parseFunc: func(_ []byte, _ any, _ string) error {
				return nil
			},
			targetErr: validationErr,
			wantErr:   validationErr,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			target := &settingsWithBoth{err: testCase.targetErr}
			parser := &mockParser{parseFunc: testCase.parseFunc}

			result, err := Provider(target, "section")(parser, testCase.fetcher)
			require.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, result)
		})
	}
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	settings := &settingsWithBoth{}
	require.NoError(t, Prepare(settings))
	assert.Equal(t, "\t", settings.Indent)

	invalid := &settingsWithBoth{Indent: "x", err: errors.New("bad indent")}
	require.ErrorContains(t, Prepare(invalid), "bad indent")

	require.NoError(t, Prepare(&indentSettings{}))
}

func TestDataWriterFunc(t *testing.T) {
	t.Parallel()

	var written []byte

	writer := DataWriterFunc(func(data []byte) error {
		written = data

		return nil
	})

	require.NoError(t, writer.Write([]byte("Int x = \"1\";\n")))
	assert.Equal(t, "Int x = \"1\";\n", string(written))
}
