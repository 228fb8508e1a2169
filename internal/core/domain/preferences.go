package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnsupportedPreference = errors.New("preference values must be strings, numbers, booleans or null")

type PreferenceKind uint8

const (
	PreferenceNull PreferenceKind = iota
	PreferenceString
	PreferenceNumber
	PreferenceBool
)

// PreferenceValue is a scalar held in a user's preference map.
type PreferenceValue struct {
	kind PreferenceKind
	str  string
	num  float64
	b    bool
}

// Preferences is an open key/value map attached to a user.
type Preferences map[string]PreferenceValue

func StringPreference(v string) PreferenceValue {
	return PreferenceValue{kind: PreferenceString, str: v}
}

func NumberPreference(v float64) PreferenceValue {
	return PreferenceValue{kind: PreferenceNumber, num: v}
}

func BoolPreference(v bool) PreferenceValue {
	return PreferenceValue{kind: PreferenceBool, b: v}
}

func NullPreference() PreferenceValue {
	return PreferenceValue{}
}

func (v PreferenceValue) Kind() PreferenceKind { return v.kind }

func (v PreferenceValue) Text() (string, bool) { return v.str, v.kind == PreferenceString }

func (v PreferenceValue) Number() (float64, bool) { return v.num, v.kind == PreferenceNumber }

func (v PreferenceValue) Bool() (bool, bool) { return v.b, v.kind == PreferenceBool }

func (v PreferenceValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case PreferenceString:
		return json.Marshal(v.str)
	case PreferenceNumber:
		return json.Marshal(v.num)
	case PreferenceBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

func (v *PreferenceValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrUnsupportedPreference
	}

	switch data[0] {
	case 'n':
		*v = NullPreference()
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringPreference(s)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = BoolPreference(b)
		return nil
	case '{', '[':
		return ErrUnsupportedPreference
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedPreference, err)
		}
		*v = NumberPreference(n)
		return nil
	}
}
