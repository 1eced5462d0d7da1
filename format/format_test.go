package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/nsconf/format"
	"github.com/0xalexb/nsconf/syntax"
)

const messy = "   // header   \n" +
	"Int   top=\"0\" ;\n" +
	"\n\n" +
	"ns a{\n" +
	"    Int x = \"1\";   // trailing   \n" +
	"  ns b {}\n" +
	"\n\n\n" +
	"  String s = {\"a\",   \"b\"};\n" +
	"\n"

const canonical = "// header\n" +
	"Int top = \"0\";\n" +
	"\n" +
	"ns a\n" +
	"{\n" +
	"\tInt x = \"1\"; // trailing\n" +
	"\tns b\n" +
	"\t{\n" +
	"\t}\n" +
	"\n" +
	"\tString s = {\"a\",   \"b\"};\n" +
	"}\n"

func TestSource(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "messy document", text: messy, expected: canonical},
		{name: "canonical document", text: canonical, expected: canonical},
		{name: "single line namespace", text: `ns a { Int x = "1"; }`, expected: "ns a\n{\n\tInt x = \"1\";\n}\n"},
		{name: "statements on one line", text: `Int x = "1"; Int y = "2";`, expected: "Int x = \"1\";\nInt y = \"2\";\n"},
		{name: "trailing comment", text: `Int x = "1";    // note  `, expected: "Int x = \"1\"; // note\n"},
		{name: "comment after brace", text: "ns a { // inside\n}", expected: "ns a\n{\n\t// inside\n}\n"},
		{name: "comment in declaration", text: "Int // c\n x = \"1\";", expected: "Int // c\n x = \"1\";\n"},
		{name: "comment in header", text: "ns a // c\n{ }", expected: "ns a // c\n{\n}\n"},
		{name: "junk between statements", text: "Int x = \"1\";;\nInt y = \"2\";", expected: "Int x = \"1\";;\nInt y = \"2\";\n"},
		{name: "comment marker in value", text: `String u = "http://x";`, expected: "String u = \"http://x\";\n"},
		{name: "empty", text: "", expected: ""},
		{name: "whitespace only", text: " \n\n\t", expected: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out, err := format.Source(testCase.text, format.Options{})
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, out)

			again, err := format.Source(out, format.Options{})
			require.NoError(t, err)
			assert.Equal(t, out, again)
		})
	}
}

func TestSource_Indent(t *testing.T) {
	t.Parallel()

	out, err := format.Source("ns a { ns b { Bool on = \"1\"; } }", format.Options{Indent: "  "})
	require.NoError(t, err)
	assert.Equal(t, "ns a\n{\n  ns b\n  {\n    Bool on = \"1\";\n  }\n}\n", out)
}

func TestSource_Malformed(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		`ns a { Int x = "1"`,
		`"stray"`,
		`Foo x = "1";`,
		`ns a { Int x = "1" }`,
	} {
		out, err := format.Source(text, format.Options{})
		require.ErrorIs(t, err, syntax.ErrMalformed, text)
		assert.Equal(t, text, out)
	}
}

func TestNamespace(t *testing.T) {
	t.Parallel()

	text := "Int   keep = \"1\";\nns a\n{\n\tns b { Int x = \"1\"; }\n}\n"

	out, err := format.Namespace(text, "a/b", format.Options{})
	require.NoError(t, err)
	assert.Equal(t, "Int   keep = \"1\";\nns a\n{\n\tns b\n\t{\n\t\tInt x = \"1\";\n\t}\n}\n", out)

	_, err = format.Namespace(text, "a/c", format.Options{})
	require.ErrorIs(t, err, syntax.ErrNotFound)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	ok, err := format.Check(canonical, format.Options{})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = format.Check(messy, format.Options{})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = format.Check(`"stray"`, format.Options{})
	require.ErrorIs(t, err, syntax.ErrMalformed)
}

func TestDiff(t *testing.T) {
	t.Parallel()

	assert.Empty(t, format.Diff("a\nb\n", "a\nb\n"))
	assert.Equal(t, " a\n-b\n+c\n", format.Diff("a\nb\n", "a\nc\n"))

	diff, err := format.SourceDiff(`Int   x = "1";`, format.Options{})
	require.NoError(t, err)
	assert.Equal(t, "-Int   x = \"1\";\n+Int x = \"1\";\n", diff)
}
