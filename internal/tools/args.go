package tools

import (
	"encoding/json"
	"math"
)

// Argument bags arrive untyped from the transport. This file is the one
// place raw map access happens: validators use the field checkers, and
// invokes read values through the getters only after validation passed.

// decodeArgs unmarshals a raw argument payload. An absent payload is an
// empty bag; anything unparseable or non-object surfaces as a value the
// validators reject.
func decodeArgs(raw json.RawMessage) any {
	if len(raw) == 0 {
		return map[string]any{}
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// asObject rejects anything that is not a JSON object.
func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok && m != nil
}

// reqString passes only when key is present and holds a string.
func reqString(m map[string]any, key string) bool {
	_, ok := m[key].(string)
	return ok
}

// optString passes when key is absent or holds a string.
func optString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return true
	}
	_, ok = v.(string)
	return ok
}

// optBool passes when key is absent or holds a boolean.
func optBool(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return true
	}
	_, ok = v.(bool)
	return ok
}

// optIntIn passes when key is absent or holds a whole number within
// [min, max], bounds inclusive.
func optIntIn(m map[string]any, key string, min, max float64) bool {
	v, ok := m[key]
	if !ok {
		return true
	}
	n, ok := v.(float64)
	if !ok {
		return false
	}
	if n != math.Trunc(n) {
		return false
	}
	return n >= min && n <= max
}

// optEnum passes when key is absent or holds exactly one of the allowed
// literals (case-sensitive).
func optEnum(m map[string]any, key string, allowed ...string) bool {
	v, ok := m[key]
	if !ok {
		return true
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// hasAny reports whether at least one of the keys is present.
func hasAny(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

func getString(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

func getBool(m map[string]any, key string) (bool, bool) {
	b, ok := m[key].(bool)
	return b, ok
}

func getInt(m map[string]any, key string) (int, bool) {
	n, ok := m[key].(float64)
	return int(n), ok
}

// num is a shorthand for schema bounds, which are pointers so zero stays
// distinguishable from unset.
func num(v float64) *float64 { return &v }
