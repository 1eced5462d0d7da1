// Package config provides the interfaces configuration sources are built from.
//
// The package has five extension points:
//   - Parser: decodes raw data into a struct, with path navigation support
//   - DataFetcher: reads raw data (file, memory, etc.)
//   - DataWriter: persists raw data
//   - Validator: validates a struct after parsing
//   - Defaulter: applies default values before validation
//
// # Path Navigation
//
// Provider accepts a path selecting a section of the data. Paths use slash (/)
// as the separator, the same way variable paths of a document do:
//
//	"document"            -> config["document"]
//	"app/database"        -> config["app"]["database"]
//	""                    -> entire document
//
// # Example
//
// Binding a namespace of a configuration document to a struct:
//
//	type Pool struct {
//	    Size    int    `yaml:"size"`
//	    Backend string `yaml:"backend"`
//	}
//
//	provider := config.Provider(&Pool{}, "app/pool")
//	fetcher, err := filefetcher.NewFetcher("app.conf")()
//	pool, err := provider(nsconfparser.NewParser(), fetcher)
package config
