package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"math"
	"strings"

	"github.com/jimmy00415/ChefWeb-sub000/internal/pricing"
)

// Number is a lenient JSON number. Numbers and numeric strings decode to
// their value; anything else (null, text, objects, negatives) decodes to 0.
// Decoding never fails.
type Number float64

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		*n = 0
		return nil
	}
	*n = Number(pricing.ToNonNegativeNumber(v))
	return nil
}

// Float64 returns the value as a float64.
func (n Number) Float64() float64 {
	return float64(n)
}

// Int returns the value truncated to an int. Negative and NaN values give 0;
// values beyond the int range saturate.
func (n Number) Int() int {
	f := math.Trunc(float64(n))
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	}
	return int(f)
}

// Flag is a lenient JSON boolean that also accepts form-style values such as
// "on", "yes", "true", "1" and non-zero numbers.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler
func (f *Flag) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*f = false
		return nil
	}

	switch x := v.(type) {
	case bool:
		*f = Flag(x)
	case float64:
		*f = x != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "on", "yes", "1":
			*f = true
		default:
			*f = false
		}
	default:
		*f = false
	}
	return nil
}

// StringList is a string slice stored as a JSON array column.
type StringList []string

// Value implements driver.Valuer interface
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner interface
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		*s = nil
		return nil
	}
}
