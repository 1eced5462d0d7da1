package format

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line diff from before to after. Removed lines are prefixed
// with "-", added ones with "+" and unchanged ones with a space. It returns ""
// when both texts are equal.
func Diff(before, after string) string {
	if before == after {
		return ""
	}

	diffCfg := diffpatch.New()
	from, to, lines := diffCfg.DiffLinesToChars(before, after)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(from, to, false), lines)

	var b strings.Builder

	for _, diff := range diffs {
		prefix := " "

		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffEqual:
		}

		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}

			b.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// SourceDiff formats text and returns the diff the formatting pass would apply.
func SourceDiff(text string, opts Options) (string, error) {
	out, err := Source(text, opts)
	if err != nil {
		return "", err
	}

	return Diff(text, out), nil
}
