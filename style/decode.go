package style

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnmarshalJSON accepts both snake_case and camelCase field spellings
// by canonicalizing every top-level key to camelCase before
// decoding into the field set below, which already matches encoding/json's
// case-insensitive field matching for camelCase names.
func (s *Style) UnmarshalJSON(data []byte) error {
	normalized, err := CanonicalizeKeys(data)
	if err != nil {
		return fmt.Errorf("style: %w", err)
	}
	type alias Style
	var a alias
	if err := json.Unmarshal(normalized, &a); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	*s = Style(a)
	return nil
}

// CanonicalizeKeys remaps every top-level snake_case object key in data to
// camelCase, so a struct decoded from the result only needs camelCase
// `json` tags (or none, relying on encoding/json's case-insensitive match)
// to accept both spellings. Non-object input is returned as-is.
func CanonicalizeKeys(data []byte) ([]byte, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return data, err
	}
	canon := make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		canon[snakeToCamel(k)] = v
	}
	return json.Marshal(canon)
}

func snakeToCamel(k string) string {
	if !strings.Contains(k, "_") {
		return k
	}
	parts := strings.Split(k, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}
