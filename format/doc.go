// Package format rewrites documents into their canonical layout.
//
// Statements and own-line comments start on their own line, indented one unit
// per nesting level. Namespace braces go on their own lines (Allman style):
//
//	// header
//	Int top = "0";
//
//	ns a
//	{
//		Int x = "1"; // trailing comments stay on their line
//		ns b
//		{
//		}
//	}
//
// Declarations are normalized to "Type name = value;" and value literals are
// kept as written. Constructs with comments between their tokens, and gaps
// holding anything but whitespace, are left untouched. Formatting is
// idempotent.
package format
