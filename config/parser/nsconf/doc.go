// Package nsconf provides a config.Parser for namespace configuration
// documents, so a document can carry the settings of other components.
//
// The selected namespace is exported with document.Tree and decoded through
// goccy/go-yaml, which means targets use `yaml` struct tags:
//
//	ns server
//	{
//		String host = "localhost";
//		UShort port = "8080";
//	}
//
//	type Server struct {
//		Host string `yaml:"host"`
//		Port int    `yaml:"port"`
//	}
//
//	var server Server
//	err := nsconf.NewParser().Parse(data, &server, "server")
package nsconf
