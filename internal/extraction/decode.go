package extraction

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ErrNotObject is returned when a payload is valid JSON but not an object.
var ErrNotObject = errors.New("payload is not a JSON object")

var fences = []string{"```", "~~~"}

// ExtractJSON strips markdown code fences (``` or ~~~, optionally tagged json)
// and any prose around the outermost JSON object.
func ExtractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, fence := range fences {
		if !strings.HasPrefix(raw, fence) {
			continue
		}
		raw = strings.TrimPrefix(raw, fence)
		if len(raw) >= 4 && strings.EqualFold(raw[:4], "json") {
			raw = raw[4:]
		}
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, fence); idx != -1 {
			raw = raw[:idx]
		}
		break
	}
	raw = strings.TrimSpace(strings.Trim(raw, "`~"))

	if strings.HasPrefix(raw, "{") || strings.HasPrefix(raw, "[") {
		return raw
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		return raw[start : end+1]
	}
	return raw
}

// parseObject extracts and decodes the JSON object held in raw.
func parseObject(raw string) (map[string]any, error) {
	cleaned := ExtractJSON(raw)
	if cleaned == "" {
		return nil, errors.New("empty payload")
	}

	var data any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}

	obj, ok := data.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return obj, nil
}

type rawEntry struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Importance any    `json:"importance"`
	Reason     string `json:"reason"`
}

// stringToEntryHook lets a bare string stand for {"name": string}.
func stringToEntryHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.String && to == reflect.TypeOf(rawEntry{}) {
		return map[string]any{"name": data}, nil
	}
	return data, nil
}

func decode(input any, result any) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           result,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       stringToEntryHook,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// decodeEntry turns one loosely typed list element into a rawEntry. Elements
// that are neither strings nor objects are rejected.
func decodeEntry(v any) (rawEntry, bool) {
	var entry rawEntry
	switch val := v.(type) {
	case string, map[string]any:
		if err := decode(val, &entry); err != nil {
			m, ok := val.(map[string]any)
			if !ok {
				return rawEntry{}, false
			}
			entry = rawEntry{
				Name:       coerceString(m["name"]),
				Category:   coerceString(m["category"]),
				Importance: m["importance"],
				Reason:     coerceString(m["reason"]),
			}
		}
	default:
		return rawEntry{}, false
	}
	entry.Name = strings.TrimSpace(entry.Name)
	return entry, true
}

// list returns v as a slice, or nil when it is anything else.
func list(v any) []any {
	items, _ := v.([]any)
	return items
}

// stringList keeps the non-blank string elements of v.
func stringList(v any) []string {
	items := list(v)
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}
