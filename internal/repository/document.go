package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// encodeDocument turns a payload into the field set that gets stored, using
// the payload's JSON field names.
func encodeDocument(payload any) (map[string]any, error) {
	if payload == nil {
		return nil, fmt.Errorf("payload is nil")
	}
	if m, ok := payload.(map[string]any); ok {
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, fmt.Errorf("payload %T does not encode to an object", payload)
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return out, nil
}

// formatTime renders a stored timestamp the way every backend returns it.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
