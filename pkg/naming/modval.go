// SPDX-License-Identifier: MPL-2.0

package naming

import (
	"encoding/json"
	"fmt"
)

const (
	modValAbsent modValKind = iota
	modValFlag
	modValString
)

type (
	modValKind uint8

	// ModVal is the value of a modifier. It is either absent (the zero value),
	// a boolean flag (the modifier has no value segment) or a string value.
	ModVal struct {
		kind  modValKind
		value string
	}
)

// FlagModVal returns the value of a flag-style modifier.
func FlagModVal() ModVal { return ModVal{kind: modValFlag} }

// StringModVal returns a valued modifier.
func StringModVal(v string) ModVal { return ModVal{kind: modValString, value: v} }

// IsZero reports whether the value is absent.
func (v ModVal) IsZero() bool { return v.kind == modValAbsent }

// IsFlag reports whether the value is the boolean true of a flag modifier.
func (v ModVal) IsFlag() bool { return v.kind == modValFlag }

// Value returns the string value and whether the modifier is valued.
func (v ModVal) Value() (string, bool) {
	return v.value, v.kind == modValString
}

// String renders the value the way it appears in output: "true" for flags,
// the raw value otherwise and "" when absent.
func (v ModVal) String() string {
	switch v.kind {
	case modValFlag:
		return "true"
	case modValString:
		return v.value
	default:
		return ""
	}
}

// Any returns the value as a plain Go value: true, a string, or nil.
func (v ModVal) Any() any {
	switch v.kind {
	case modValFlag:
		return true
	case modValString:
		return v.value
	default:
		return nil
	}
}

// MarshalJSON encodes flags as true and valued modifiers as strings.
func (v ModVal) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case modValFlag:
		return []byte("true"), nil
	case modValString:
		return json.Marshal(v.value)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts true, a string, or null.
func (v *ModVal) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch x := raw.(type) {
	case nil:
		*v = ModVal{}
	case bool:
		if !x {
			*v = ModVal{}
			return nil
		}
		*v = FlagModVal()
	case string:
		*v = StringModVal(x)
	default:
		return fmt.Errorf("modVal must be true, a string or null, got %s", data)
	}
	return nil
}
