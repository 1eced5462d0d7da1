package document

import (
	"github.com/0xalexb/nsconf/format"
)

func (d *Document) formatOptions() format.Options {
	return format.Options{Indent: d.settings.Indent}
}

// Format rewrites the whole text into canonical layout.
func (d *Document) Format() error {
	out, err := format.Source(d.source, d.formatOptions())
	if err != nil {
		return err
	}

	return d.commit(out, "document formatted", "")
}

// FormatNamespace rewrites only the namespace at path into canonical layout.
func (d *Document) FormatNamespace(path string) error {
	out, err := format.Namespace(d.source, path, d.formatOptions())
	if err != nil {
		return err
	}

	return d.commit(out, "namespace formatted", path)
}

// FormatDiff returns the line diff Format would apply, empty when the text is
// already canonical.
func (d *Document) FormatDiff() (string, error) {
	return format.SourceDiff(d.source, d.formatOptions())
}
