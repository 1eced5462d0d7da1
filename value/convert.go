package value

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrTypeMismatch is returned when an accessor does not match the declared type
// or array-ness of a variable.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrConversion is returned when a payload cannot be parsed as the requested type.
var ErrConversion = errors.New("conversion failed")

// FromInt builds a scalar of the integral type typ holding n.
func FromInt(path string, typ DataType, n int64) Variable {
	return New(path, typ, strconv.FormatInt(n, 10), false)
}

// FromUint builds a scalar of the integral type typ holding n.
func FromUint(path string, typ DataType, n uint64) Variable {
	return New(path, typ, strconv.FormatUint(n, 10), false)
}

// FromFloat builds a scalar of the floating point type typ holding f.
func FromFloat(path string, typ DataType, f float64) Variable {
	bits := typ.BitSize()
	if bits == 0 {
		bits = 64
	}

	return New(path, typ, strconv.FormatFloat(f, 'g', -1, bits), false)
}

// FromBool builds a Bool scalar.
func FromBool(path string, b bool) Variable {
	return New(path, Bool, strconv.FormatBool(b), false)
}

// FromString builds a String scalar.
func FromString(path, s string) Variable {
	return New(path, String, s, false)
}

// Int returns the value of an integral scalar as int64.
func (v Variable) Int() (int64, error) {
	err := v.expect(false, DataType.IsIntegral)
	if err != nil {
		return 0, err
	}

	return parseInt(v.raw, v.typ)
}

// Uint returns the value of an integral scalar as uint64.
func (v Variable) Uint() (uint64, error) {
	err := v.expect(false, DataType.IsIntegral)
	if err != nil {
		return 0, err
	}

	return parseUint(v.raw, v.typ)
}

// Float returns the value of a numeric scalar as float64.
func (v Variable) Float() (float64, error) {
	err := v.expect(false, DataType.IsNumeral)
	if err != nil {
		return 0, err
	}

	return parseFloat(v.raw, v.typ)
}

// Bool returns the value of a Bool scalar.
func (v Variable) Bool() (bool, error) {
	err := v.expect(false, isBool)
	if err != nil {
		return false, err
	}

	return parseBool(v.raw)
}

// Text returns the payload of a String scalar.
func (v Variable) Text() (string, error) {
	err := v.expect(false, isString)
	if err != nil {
		return "", err
	}

	return v.raw, nil
}

// Strings returns the decoded elements of a String array.
func (v Variable) Strings() ([]string, error) {
	err := v.expect(true, isString)
	if err != nil {
		return nil, err
	}

	return DecodeArray(v.raw), nil
}

// Elements returns the decoded elements of an array of any type.
func (v Variable) Elements() ([]string, error) {
	err := v.expect(true, DataType.Valid)
	if err != nil {
		return nil, err
	}

	return DecodeArray(v.raw), nil
}

// Ints returns the elements of an integral array.
func (v Variable) Ints() ([]int64, error) {
	err := v.expect(true, DataType.IsIntegral)
	if err != nil {
		return nil, err
	}

	return convertAll(DecodeArray(v.raw), func(s string) (int64, error) { return parseInt(s, v.typ) })
}

// Uints returns the elements of an integral array as unsigned integers.
func (v Variable) Uints() ([]uint64, error) {
	err := v.expect(true, DataType.IsIntegral)
	if err != nil {
		return nil, err
	}

	return convertAll(DecodeArray(v.raw), func(s string) (uint64, error) { return parseUint(s, v.typ) })
}

// Floats returns the elements of a numeric array.
func (v Variable) Floats() ([]float64, error) {
	err := v.expect(true, DataType.IsNumeral)
	if err != nil {
		return nil, err
	}

	return convertAll(DecodeArray(v.raw), func(s string) (float64, error) { return parseFloat(s, v.typ) })
}

// Bools returns the elements of a Bool array.
func (v Variable) Bools() ([]bool, error) {
	err := v.expect(true, isBool)
	if err != nil {
		return nil, err
	}

	return convertAll(DecodeArray(v.raw), parseBool)
}

// Interface returns the value converted to its natural Go type: int64, uint64,
// float64, bool or string for scalars, and a []any of those for arrays.
func (v Variable) Interface() (any, error) {
	if v.isArray {
		elements, err := v.Elements()
		if err != nil {
			return nil, err
		}

		out := make([]any, 0, len(elements))

		for _, element := range elements {
			converted, err := New(v.path, v.typ, element, false).Interface()
			if err != nil {
				return nil, err
			}

			out = append(out, converted)
		}

		return out, nil
	}

	switch {
	case v.typ.IsUnsigned():
		return v.Uint()
	case v.typ.IsIntegral():
		return v.Int()
	case v.typ.IsFloat():
		return v.Float()
	case v.typ == Bool:
		return v.Bool()
	case v.typ == String:
		return v.raw, nil
	default:
		return nil, fmt.Errorf("%w: variable %q has type %s", ErrTypeMismatch, v.path, v.typ)
	}
}

func (v Variable) expect(array bool, accepts func(DataType) bool) error {
	if v.isArray != array {
		want := "scalar"
		if array {
			want = "array"
		}

		return fmt.Errorf("%w: variable %q is not a %s", ErrTypeMismatch, v.path, want)
	}

	if !accepts(v.typ) {
		return fmt.Errorf("%w: variable %q has type %s", ErrTypeMismatch, v.path, v.typ)
	}

	return nil
}

func isBool(t DataType) bool {
	return t == Bool
}

func isString(t DataType) bool {
	return t == String
}

func parseInt(s string, typ DataType) (int64, error) {
	s = strings.TrimSpace(s)

	if typ.IsUnsigned() {
		u, err := parseUint(s, typ)
		if err != nil {
			return 0, err
		}

		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %q overflows int64", ErrConversion, s)
		}

		return int64(u), nil
	}

	n, err := strconv.ParseInt(s, 10, typ.BitSize())
	if err != nil {
		return 0, fmt.Errorf("%w: %q as %s: %w", ErrConversion, s, typ, err)
	}

	return n, nil
}

func parseUint(s string, typ DataType) (uint64, error) {
	s = strings.TrimSpace(s)

	u, err := strconv.ParseUint(s, 10, typ.BitSize())
	if err != nil {
		return 0, fmt.Errorf("%w: %q as %s: %w", ErrConversion, s, typ, err)
	}

	return u, nil
}

func parseFloat(s string, typ DataType) (float64, error) {
	s = strings.TrimSpace(s)

	bits := 64
	if typ == Float {
		bits = 32
	}

	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as %s: %w", ErrConversion, s, typ, err)
	}

	return f, nil
}

func parseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q as %s", ErrConversion, s, Bool)
	}
}

func convertAll[T any](elements []string, convert func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(elements))

	for i, element := range elements {
		converted, err := convert(element)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		out = append(out, converted)
	}

	return out, nil
}
