package sanitize

import (
	"encoding/json"
	"math"
	"strings"
)

// fields reads typed values out of a decoded JSON object and records every
// coercion on the shared report under path-qualified field names.
type fields struct {
	m    map[string]any
	path string
	r    *Report
}

func newFields(v any, path string, r *Report) (fields, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return fields{m: map[string]any{}, path: path, r: r}, false
	}
	return fields{m: m, path: path, r: r}, true
}

func (f fields) name(key string) string {
	if f.path == "" {
		return key
	}
	return f.path + "." + key
}

func (f fields) lookup(key string) (any, bool) {
	v, ok := f.m[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// optString returns the value when it is a string, nil otherwise.
func (f fields) optString(key string) *string {
	v, ok := f.lookup(key)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		f.r.add(f.name(key), ReasonWrongType)
		return nil
	}
	return &s
}

// reqString returns the value when it is a string, fallback otherwise.
func (f fields) reqString(key, fallback string) string {
	v, ok := f.lookup(key)
	if !ok {
		f.r.add(f.name(key), ReasonMissing)
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		f.r.add(f.name(key), ReasonWrongType)
		return fallback
	}
	return s
}

// nonBlank is reqString where a blank string also takes the fallback.
// fallback is only evaluated when needed so ids are not generated for nothing.
func (f fields) nonBlank(key string, fallback func() string, reason string) string {
	if v, ok := f.lookup(key); ok {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	f.r.add(f.name(key), reason)
	return fallback()
}

// stringList keeps the string elements of an array. Anything else becomes an
// empty, non-nil slice.
func (f fields) stringList(key string) []string {
	out := []string{}
	v, ok := f.lookup(key)
	if !ok {
		return out
	}
	arr, ok := v.([]any)
	if !ok {
		f.r.add(f.name(key), ReasonWrongType)
		return out
	}
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) != len(arr) {
		f.r.add(f.name(key), ReasonDropped)
	}
	return out
}

func (f fields) boolean(key string, fallback bool) bool {
	v, ok := f.lookup(key)
	if !ok {
		return fallback
	}
	b, ok := v.(bool)
	if !ok {
		f.r.add(f.name(key), ReasonWrongType)
		return fallback
	}
	return b
}

func (f fields) number(key string) (float64, bool) {
	v, ok := f.lookup(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		if x, err := n.Float64(); err == nil {
			return x, true
		}
	}
	f.r.add(f.name(key), ReasonWrongType)
	return 0, false
}

func (f fields) optFloat(key string) *float64 {
	n, ok := f.number(key)
	if !ok {
		return nil
	}
	return &n
}

func (f fields) optInt(key string) *int {
	n, ok := f.number(key)
	if !ok {
		return nil
	}
	t := math.Trunc(n)
	if t < float64(math.MinInt) || t >= float64(math.MaxInt) {
		f.r.add(f.name(key), ReasonOutOfRange)
		return nil
	}
	i := int(t)
	if float64(i) != n {
		f.r.add(f.name(key), ReasonTruncated)
	}
	return &i
}

// enum returns the value when it is a member of the set checked by valid and
// fallback otherwise.
func enum[T ~string](f fields, key string, valid func(T) bool, fallback T) T {
	v, ok := f.lookup(key)
	if !ok {
		f.r.add(f.name(key), ReasonDefaulted)
		return fallback
	}
	s, ok := v.(string)
	if !ok || !valid(T(s)) {
		f.r.add(f.name(key), ReasonUnknown)
		return fallback
	}
	return T(s)
}

// optEnum is enum for optional fields: unknown values are dropped.
func optEnum[T ~string](f fields, key string, valid func(T) bool) *T {
	v, ok := f.lookup(key)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok || !valid(T(s)) {
		f.r.add(f.name(key), ReasonUnknown)
		return nil
	}
	t := T(s)
	return &t
}
