package yamldoc

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Record is a string-keyed mapping that remembers insertion order. Serializing
// a Record emits its keys in the order they were first set.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// RecordOf builds a Record from alternating key/value arguments. It panics on
// an odd argument count or a non-string key, which makes it suitable for
// literals in code and tests.
func RecordOf(pairs ...any) *Record {
	if len(pairs)%2 != 0 {
		panic("yamldoc: RecordOf requires key/value pairs")
	}
	r := NewRecord()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("yamldoc: RecordOf key %v is not a string", pairs[i]))
		}
		r.Set(key, pairs[i+1])
	}
	return r
}

// FromMap copies a plain map into a Record with keys in sorted order.
func FromMap(m map[string]any) *Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	r := NewRecord()
	for _, k := range keys {
		r.Set(k, m[k])
	}
	return r
}

// Set stores value under key. Re-setting an existing key keeps its position.
func (r *Record) Set(key string, value any) *Record {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values[key]
	return v, ok
}

// Keys returns a copy of the keys in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.keys...)
}

// Len reports the number of entries.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// ToMap converts the Record and any nested Records into plain maps. Slices are
// copied so the result shares no mutable state with r.
func (r *Record) ToMap() map[string]any {
	if r == nil {
		return nil
	}
	out := make(map[string]any, len(r.keys))
	for _, k := range r.keys {
		out[k] = plain(r.values[k])
	}
	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case *Record:
		return t.ToMap()
	case Record:
		return t.ToMap()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plain(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = plain(item)
		}
		return out
	default:
		return v
	}
}

// MarshalYAML renders the Record as an ordered mapping node.
func (r *Record) MarshalYAML() (any, error) {
	return toNode(r)
}

// UnmarshalYAML decodes a mapping node while keeping key order.
func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	decoded, err := FromNode(value)
	if err != nil {
		return err
	}
	rec, ok := decoded.(*Record)
	if !ok {
		return fmt.Errorf("line %d: expected a mapping, got %s", value.Line, kindName(value))
	}
	*r = *rec
	return nil
}
