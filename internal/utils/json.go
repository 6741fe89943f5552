package utils

import (
	"bytes"
	"encoding/json"
)

// JSONScalar returns the text of a JSON string or number. Strings are
// unquoted; numbers keep their literal form, so 123 becomes "123" and
// 1.50 stays "1.50". ok is false for every other JSON kind, including null.
func JSONScalar(raw json.RawMessage) (value string, ok bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}

	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", false
		}
		return n.String(), true
	default:
		return "", false
	}
}
