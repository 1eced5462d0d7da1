// Package yaml decodes YAML side files, such as the document settings an
// application keeps next to its nsconf documents, through goccy/go-yaml.
//
// A slash path selects the section to decode: "documents/app" is looked up as
// the YAML path "$.documents.app", and an empty path decodes the whole file.
//
//	parser := yaml.NewParser(yaml.WithStrict())
//	var settings document.Settings
//	err := parser.Parse(data, &settings, "documents/app")
package yaml
