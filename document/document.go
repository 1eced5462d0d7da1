package document

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/0xalexb/nsconf/config"
	"github.com/0xalexb/nsconf/edit"
	"github.com/0xalexb/nsconf/syntax"
	"github.com/0xalexb/nsconf/value"
)

// ErrDuplicatePath is returned when a written variable's path is already declared.
var ErrDuplicatePath = edit.ErrDuplicatePath

// Document owns the text of one configuration document and the variables
// declared in it. The variable list is re-derived after every change to the
// text.
//
// A Document is not safe for concurrent use.
type Document struct {
	source   string
	vars     []value.Variable
	index    map[string]int
	settings Settings
	logger   *slog.Logger
	modified bool
}

// New parses source into a document.
func New(source string, opts ...Option) (*Document, error) {
	doc := &Document{
		source:   source,
		settings: Settings{Mode: syntax.Lenient, Indent: edit.DefaultIndent},
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(doc)
	}

	err := config.Prepare(&doc.settings)
	if err != nil {
		return nil, err
	}

	vars, err := doc.scan(source)
	if err != nil {
		return nil, err
	}

	doc.setVariables(vars)

	return doc, nil
}

// Load reads the document text from fetcher.
func Load(fetcher config.DataFetcher, opts ...Option) (*Document, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	return New(string(data), opts...)
}

// Source returns the current text.
func (d *Document) Source() string {
	return d.source
}

// String implements fmt.Stringer.
func (d *Document) String() string {
	return d.source
}

// Settings returns the settings in effect.
func (d *Document) Settings() Settings {
	return d.settings
}

// Modified reports whether the text changed since it was loaded or last saved.
func (d *Document) Modified() bool {
	return d.modified
}

// Save writes the current text to w and clears the modified flag.
func (d *Document) Save(w config.DataWriter) error {
	err := w.Write([]byte(d.source))
	if err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	d.modified = false

	return nil
}

// Variable returns the variable declared at path.
func (d *Document) Variable(path string) (value.Variable, error) {
	i, ok := d.index[path]
	if !ok {
		return value.Variable{}, fmt.Errorf("%w: variable %q", syntax.ErrNotFound, path)
	}

	return d.vars[i], nil
}

// Find reads the declaration at path straight from the text with a strict
// targeted lookup, without consulting the variable cache.
func (d *Document) Find(path string) (value.Variable, error) {
	return syntax.FindVariable(d.source, path)
}

// Has reports whether a variable is declared at path.
func (d *Document) Has(path string) bool {
	_, ok := d.index[path]

	return ok
}

// Variables returns every variable in the order it appears in the text.
func (d *Document) Variables() []value.Variable {
	return slices.Clone(d.vars)
}

// WriteVariable inserts variable at the end of its namespace, creating missing
// namespaces.
func (d *Document) WriteVariable(variable value.Variable) error {
	err := d.checkNew(variable)
	if err != nil {
		return err
	}

	out, err := d.editor().WriteVariable(d.source, variable)
	if err != nil {
		return err
	}

	return d.commit(out, "variable written", variable.Path())
}

// WriteVariables inserts every variable in order. Either all of them are
// written or the document is left unchanged.
func (d *Document) WriteVariables(variables []value.Variable) error {
	seen := make(map[string]struct{}, len(variables))

	for _, variable := range variables {
		err := d.checkNew(variable)
		if err != nil {
			return err
		}

		if _, dup := seen[variable.Path()]; dup {
			return fmt.Errorf("%w: %q appears twice in the batch", ErrDuplicatePath, variable.Path())
		}

		seen[variable.Path()] = struct{}{}
	}

	out, err := d.editor().WriteVariables(d.source, variables)
	if err != nil {
		return err
	}

	return d.commit(out, "variables written", fmt.Sprintf("%d variables", len(variables)))
}

// WriteVariableAfter inserts variable right after the variable or namespace at anchor.
func (d *Document) WriteVariableAfter(variable value.Variable, anchor string) error {
	err := d.checkNew(variable)
	if err != nil {
		return err
	}

	out, err := d.editor().WriteVariableAfter(d.source, variable, anchor)
	if err != nil {
		return err
	}

	return d.commit(out, "variable written", variable.Path())
}

// WriteVariableBefore inserts variable right before the variable or namespace at anchor.
func (d *Document) WriteVariableBefore(variable value.Variable, anchor string) error {
	err := d.checkNew(variable)
	if err != nil {
		return err
	}

	out, err := d.editor().WriteVariableBefore(d.source, variable, anchor)
	if err != nil {
		return err
	}

	return d.commit(out, "variable written", variable.Path())
}

// SetVariable replaces the value of the existing declaration at variable's
// path. Its type must match unless retype is set.
func (d *Document) SetVariable(variable value.Variable, retype bool) error {
	out, err := edit.ReplaceValue(d.source, variable, retype)
	if err != nil {
		return err
	}

	return d.commit(out, "variable updated", variable.Path())
}

// PutVariable writes variable, replacing the value and type of an existing
// declaration at the same path.
func (d *Document) PutVariable(variable value.Variable) error {
	if d.Has(variable.Path()) {
		return d.SetVariable(variable, true)
	}

	return d.WriteVariable(variable)
}

// DeleteVariable erases the declaration at path.
func (d *Document) DeleteVariable(path string) error {
	out, err := edit.DeleteVariable(d.source, path)
	if err != nil {
		return err
	}

	return d.commit(out, "variable deleted", path)
}

// DeleteNamespace erases the namespace at path with everything declared in it.
func (d *Document) DeleteNamespace(path string) error {
	out, err := edit.DeleteNamespace(d.source, path)
	if err != nil {
		return err
	}

	return d.commit(out, "namespace deleted", path)
}

func (d *Document) editor() edit.Editor {
	return edit.Editor{Indent: d.settings.Indent}
}

func (d *Document) checkNew(variable value.Variable) error {
	err := variable.Validate()
	if err != nil {
		return err
	}

	if d.Has(variable.Path()) {
		return fmt.Errorf("%w: %q", ErrDuplicatePath, variable.Path())
	}

	return nil
}

// commit replaces the text with out and re-derives the variables. The document
// is left unchanged if out cannot be scanned.
func (d *Document) commit(out, msg, subject string) error {
	vars, err := d.scan(out)
	if err != nil {
		return fmt.Errorf("rescanning after edit: %w", err)
	}

	delta := len(out) - len(d.source)

	d.source = out
	d.setVariables(vars)

	if delta != 0 {
		d.modified = true
	}

	d.logger.Debug(msg, slog.String("subject", subject), slog.Int("bytes", delta))

	return nil
}

func (d *Document) scan(source string) ([]value.Variable, error) {
	scanner := syntax.Scanner{
		Mode: d.settings.Mode,
		OnSkip: func(offset int, err error) {
			d.logger.Warn("skipping malformed construct", slog.Int("offset", offset), slog.Any("error", err))
		},
	}

	vars, err := scanner.Flatten(source)
	if err != nil {
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	return vars, nil
}

// setVariables installs vars as the cache. A path declared more than once
// resolves to its first declaration.
func (d *Document) setVariables(vars []value.Variable) {
	d.vars = vars
	d.index = make(map[string]int, len(vars))

	for i, variable := range vars {
		if _, ok := d.index[variable.Path()]; !ok {
			d.index[variable.Path()] = i
		}
	}
}

// IsNotFound reports whether err is a lookup failure.
func IsNotFound(err error) bool {
	return errors.Is(err, syntax.ErrNotFound)
}
