// Package value holds the typed value model of the configuration format:
// the DataType enumeration, the immutable Variable, and the codec that escapes
// scalars and encodes array literals.
//
// # Escaping
//
// Scalars are written between double quotes. A quote or backslash inside a
// scalar is escaped with a backslash. Whether a quote closes a scalar depends on
// the parity of the backslash run in front of it: an even run (zero included)
// closes, an odd run makes the quote literal.
//
//	raw:     say "hi" \o/
//	encoded: "say \"hi\" \\o/"
//
// # Arrays
//
// Arrays are brace delimited, comma separated lists of quoted elements:
//
//	{"a", "b", "c"}
//
// Numeric and boolean arrays use the same quoting. Elements are decoded lazily by
// the typed array accessors (Strings, Ints, Floats, Bools).
package value
