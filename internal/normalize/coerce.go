package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// ErrNotNumeric is returned when a value cannot be read as a number.
var ErrNotNumeric = errors.New("value is not numeric")

// Float coerces numeric kinds, numeric strings, json.Number and pgtype.Numeric to float64.
// Strings may use a comma as the decimal separator.
func Float(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return parseFloat(string(n))
	case string:
		return parseFloat(n)
	case pgtype.Numeric:
		f, err := n.Float64Value()
		if err != nil {
			return 0, fmt.Errorf("reading numeric: %w", err)
		}
		if !f.Valid {
			return 0, fmt.Errorf("%w: null numeric", ErrNotNumeric)
		}
		return f.Float64, nil
	case *float64:
		if n == nil {
			return 0, fmt.Errorf("%w: nil", ErrNotNumeric)
		}
		return *n, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}

// Int coerces like Float and rounds to the nearest integer.
func Int(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	}
	f, err := Float(v)
	if err != nil {
		return 0, err
	}
	return int(math.Round(f)), nil
}

// NumericPtr maps a nullable DECIMAL column to an optional float.
func NumericPtr(n pgtype.Numeric) *float64 {
	if !n.Valid {
		return nil
	}
	f, err := Float(n)
	if err != nil {
		return nil
	}
	return &f
}

func parseFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrNotNumeric)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return f, nil
}

// FlexFloat decodes from a JSON number or a numeric string.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	v, err := decodeFlex(b)
	if err != nil {
		return err
	}
	n, err := Float(v)
	if err != nil {
		return err
	}
	*f = FlexFloat(n)
	return nil
}

// FlexInt decodes from a JSON number or a numeric string, rounding fractions.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	v, err := decodeFlex(b)
	if err != nil {
		return err
	}
	n, err := Int(v)
	if err != nil {
		return err
	}
	*i = FlexInt(n)
	return nil
}

func decodeFlex(b []byte) (any, error) {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil, err
		}
		return s, nil
	}
	return json.Number(string(b)), nil
}

func floatPtr(f *FlexFloat) *float64 {
	if f == nil {
		return nil
	}
	v := float64(*f)
	return &v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
