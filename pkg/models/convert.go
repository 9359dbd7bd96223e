package models

import (
	"encoding/json"
	"fmt"
)

// ToMap converts a typed payload to the map shape stored in JSONB columns.
func ToMap(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to convert payload to map: %w", err)
	}
	return m, nil
}

// FromMap decodes a JSONB map into a typed payload.
func FromMap(m map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal map: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}

// MergeMaps deep-merges src into dst and returns dst. Nested maps merge
// recursively; all other values in src overwrite dst.
func MergeMaps(dst, src map[string]interface{}) map[string]interface{} {
	if dst == nil {
		dst = map[string]interface{}{}
	}
	for k, sv := range src {
		if sm, ok := sv.(map[string]interface{}); ok {
			if dm, ok := dst[k].(map[string]interface{}); ok {
				dst[k] = MergeMaps(dm, sm)
				continue
			}
		}
		dst[k] = sv
	}
	return dst
}
