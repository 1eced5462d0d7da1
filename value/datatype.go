package value

import (
	"fmt"
)

// DataType is the declared type keyword of a variable.
type DataType uint8

// Supported data types. Invalid is the zero value and the result of mapping an
// unknown keyword.
const (
	Invalid DataType = iota
	Int
	UInt
	Long
	ULong
	LongLong
	ULongLong
	Short
	UShort
	Char
	UChar
	Float
	Double
	LongDouble
	Bool
	String
)

//nolint:gochecknoglobals // read-only keyword table.
var keywords = [...]string{
	Invalid:    "Invalid",
	Int:        "Int",
	UInt:       "UInt",
	Long:       "Long",
	ULong:      "ULong",
	LongLong:   "LongLong",
	ULongLong:  "ULongLong",
	Short:      "Short",
	UShort:     "UShort",
	Char:       "Char",
	UChar:      "UChar",
	Float:      "Float",
	Double:     "Double",
	LongDouble: "LongDouble",
	Bool:       "Bool",
	String:     "String",
}

// ParseDataType maps a type keyword to its DataType.
// Unknown keywords map to Invalid; this never fails.
func ParseDataType(keyword string) DataType {
	for i, kw := range keywords {
		if i != int(Invalid) && kw == keyword {
			return DataType(i)
		}
	}

	return Invalid
}

// String returns the type keyword, or "Invalid" for values outside the enumeration.
func (t DataType) String() string {
	if int(t) < len(keywords) {
		return keywords[t]
	}

	return keywords[Invalid]
}

// Valid reports whether t is a declarable type.
func (t DataType) Valid() bool {
	return t > Invalid && t <= String
}

// MarshalText implements encoding.TextMarshaler.
func (t DataType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d is not a data type", ErrTypeMismatch, t)
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *DataType) UnmarshalText(data []byte) error {
	parsed := ParseDataType(string(data))
	if !parsed.Valid() {
		return fmt.Errorf("%w: unknown data type %q", ErrTypeMismatch, data)
	}

	*t = parsed

	return nil
}

// IsNumeral reports whether t is an integral or floating point type.
func (t DataType) IsNumeral() bool {
	return t.IsIntegral() || t.IsFloat()
}

// IsIntegral reports whether t is one of the integer types, Char and UChar included.
func (t DataType) IsIntegral() bool {
	switch t {
	case Int, UInt, Long, ULong, LongLong, ULongLong, Short, UShort, Char, UChar:
		return true
	default:
		return false
	}
}

// IsUnsigned reports whether t is an unsigned integer type.
func (t DataType) IsUnsigned() bool {
	switch t {
	case UInt, ULong, ULongLong, UShort, UChar:
		return true
	default:
		return false
	}
}

// IsFloat reports whether t is a floating point type.
func (t DataType) IsFloat() bool {
	return t == Float || t == Double || t == LongDouble
}

// BitSize is the width used when parsing numbers of type t.
// Long follows the LP64 convention and is 64 bits wide.
func (t DataType) BitSize() int {
	switch t {
	case Char, UChar:
		return 8
	case Short, UShort:
		return 16
	case Int, UInt, Float:
		return 32
	case Long, ULong, LongLong, ULongLong, Double, LongDouble:
		return 64
	default:
		return 0
	}
}
