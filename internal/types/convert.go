// Package types contains shared types used across multiple packages to avoid import cycles.
package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt64 converts an interface{} to int64.
// Supports int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, and float64.
func ToInt64(v interface{}) int64 {
	switch i := v.(type) {
	case int64:
		return i
	case int:
		return int64(i)
	case int32:
		return int64(i)
	case int16:
		return int64(i)
	case int8:
		return int64(i)
	case uint:
		return int64(i)
	case uint64:
		return int64(i)
	case uint32:
		return int64(i)
	case uint16:
		return int64(i)
	case uint8:
		return int64(i)
	case float64:
		return int64(i)
	case float32:
		return int64(i)
	default:
		return 0
	}
}

// ToFloat64 converts a numeric interface{} to float64.
// Unsupported types return 0.
func ToFloat64(v interface{}) float64 {
	switch f := v.(type) {
	case float64:
		return f
	case float32:
		return float64(f)
	case int64, int, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return float64(ToInt64(f))
	default:
		return 0
	}
}

// ParseInt64 converts a value read from a catalog source to int64.
// Besides the numeric types handled by ToInt64 it accepts decimal strings and
// byte slices, which is how MySQL returns columns over the text protocol.
// Floats with a fractional part are rejected.
func ParseInt64(v interface{}) (int64, error) {
	switch x := v.(type) {
	case nil:
		return 0, fmt.Errorf("missing integer value")
	case string:
		return parseIntText(x)
	case []byte:
		return parseIntText(string(x))
	case float64:
		if x != float64(int64(x)) {
			return 0, fmt.Errorf("value %v is not a whole number", x)
		}
		return int64(x), nil
	case float32:
		if x != float32(int64(x)) {
			return 0, fmt.Errorf("value %v is not a whole number", x)
		}
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", x)
		}
		return int64(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", x)
		}
		return int64(x), nil
	case int64, int, int32, int16, int8, uint32, uint16, uint8:
		return ToInt64(x), nil
	default:
		return 0, fmt.Errorf("unsupported integer type %T", v)
	}
}

// ParseInt is ParseInt64 narrowed to the platform int. Values outside
// [math.MinInt, math.MaxInt] are rejected instead of truncated.
func ParseInt(v interface{}) (int, error) {
	n, err := ParseInt64(v)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt || n > math.MaxInt {
		return 0, fmt.Errorf("value %d overflows int", n)
	}
	return int(n), nil
}

// ParseFloat64 converts a value read from a catalog source to float64.
// Decimal strings and byte slices are parsed; numeric types go through ToFloat64.
func ParseFloat64(v interface{}) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, fmt.Errorf("missing numeric value")
	case string:
		return parseFloatText(x)
	case []byte:
		return parseFloatText(string(x))
	case float64, float32, int64, int, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return ToFloat64(x), nil
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", v)
	}
}

// ToString converts a text-like value to string.
func ToString(v interface{}) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case nil:
		return "", fmt.Errorf("missing text value")
	default:
		return "", fmt.Errorf("unsupported text type %T", v)
	}
}

func parseIntText(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return n, nil
}

func parseFloatText(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return f, nil
}
