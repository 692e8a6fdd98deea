package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawRecord is one catalog element as decoded from JSON. Every field is
// optional and may hold any JSON type.
type RawRecord map[string]any

// DecodeRawRecords decodes a JSON array of records. Elements that are not
// JSON objects become empty records so that the rest of the array survives.
func DecodeRawRecords(data []byte) ([]RawRecord, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, err
	}

	records := make([]RawRecord, len(elems))
	for i, elem := range elems {
		var rec RawRecord
		if err := json.Unmarshal(elem, &rec); err != nil || rec == nil {
			rec = RawRecord{}
		}
		records[i] = rec
	}
	return records, nil
}

func (r RawRecord) text(key string) string {
	return toText(r[key])
}

func (r RawRecord) number(key string) (float64, bool) {
	return toNumber(r[key])
}

func (r RawRecord) list(key string) []string {
	return toList(r[key])
}

// toText renders scalars the way the catalog shows them; arrays and objects
// have no text form.
func toText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// toNumber coerces numbers and numeric strings. NaN and infinities are
// rejected.
func toNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toList accepts a comma-separated string or an array of scalars. Entries are
// trimmed and empty ones dropped; the result is never nil.
func toList(v any) []string {
	var parts []string
	switch t := v.(type) {
	case string:
		parts = strings.Split(t, ",")
	case []any:
		parts = make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, toText(item))
		}
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
