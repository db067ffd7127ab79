package controllers

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NumberField accepts a JSON number or a numeric string and remembers
// whether the raw value actually parsed, so the controller can answer
// with a field-specific message instead of a generic body error.
type NumberField struct {
	Value float64
	Valid bool
	Empty bool
}

// UnmarshalJSON never fails; parse problems are recorded in Valid
func (n *NumberField) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == `""` || raw == "null" {
		n.Empty = true
		return nil
	}

	if len(raw) >= 2 && raw[0] == '"' {
		var quoted string
		if err := json.Unmarshal(data, &quoted); err != nil {
			return nil
		}
		raw = strings.TrimSpace(quoted)
		if raw == "" {
			n.Empty = true
			return nil
		}
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	n.Value = value
	n.Valid = true
	return nil
}

// IntField is NumberField for integer references. Fractional input is
// truncated, matching the original API's integer coercion.
type IntField struct {
	Value int64
	Valid bool
	Empty bool
}

// UnmarshalJSON never fails; parse problems are recorded in Valid
func (i *IntField) UnmarshalJSON(data []byte) error {
	var n NumberField
	if err := n.UnmarshalJSON(data); err != nil {
		return nil
	}

	i.Empty = n.Empty
	if n.Valid {
		i.Value = int64(n.Value)
		i.Valid = true
	}
	return nil
}
