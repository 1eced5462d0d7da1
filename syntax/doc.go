// Package syntax is the text engine of the configuration format. It works on raw
// byte offsets, with no intermediate tree.
//
// The grammar:
//
//	file      := { statement }
//	statement := namespace | variable
//	namespace := "ns" IDENT "{" { statement } "}"
//	variable  := TYPE IDENT "=" value ";"
//	value     := scalar | array
//	array     := "{" scalar { "," scalar } "}"
//	comment   := "//" any-chars-until-newline
//
// A Classifier walks a scope one byte at a time and tells comments, quoted
// values, declarations and namespace keywords apart. ExtractNamespaceSpan and
// ExtractVariableSpan turn a classified position into inclusive Spans for every
// piece of a construct. Scanner.Flatten walks namespaces recursively and returns
// path-qualified variables; FindNamespace and FindVariableSpan re-locate a
// construct by its slash-delimited path.
//
// Spans found inside a namespace body are relative to that body. Lookups shift
// them back so that every returned span addresses the text that was passed in.
// After an edit, spans of the old buffer are mapped onto the new one with
// Span.Rebase.
package syntax
