package partner

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
)

// Amount is a numeric form input. Browsers submit numbers, numeric
// strings or empty strings depending on the input widget, so decoding
// coerces all three: an empty or null value leaves the Amount unset,
// anything else must parse as a number.
type Amount struct {
	Set   bool
	Value float64
}

// NewAmount returns a set Amount holding v.
func NewAmount(v float64) Amount {
	return Amount{Set: true, Value: v}
}

// Int returns the value truncated to an integer.
func (a Amount) Int() int {
	return int(a.Value)
}

// Ptr returns a pointer to the value, or nil when unset. Used for
// store columns where absent and zero are distinct.
func (a Amount) Ptr() *float64 {
	if !a.Set {
		return nil
	}
	v := a.Value
	return &v
}

// Or returns the value, or def when unset.
func (a Amount) Or(def float64) float64 {
	if !a.Set {
		return def
	}
	return a.Value
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*a = Amount{}
		return nil
	}
	if s, ok := raw.(string); ok && s == "" {
		*a = Amount{}
		return nil
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return fmt.Errorf("invalid numeric value %v", raw)
	}
	*a = Amount{Set: true, Value: v}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Set {
		return []byte("null"), nil
	}
	return json.Marshal(a.Value)
}
