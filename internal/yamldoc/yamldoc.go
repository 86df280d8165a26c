// Package yamldoc converts arbitrary nested Go values into YAML documents and
// back, keeping mapping key order for Records.
package yamldoc

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	tibcoerrors "github.com/kobibe/tibco-developer-hub/pkg/errors"
)

const (
	indent = 2
	// maxMarshalDepth bounds chains of MarshalYAML calls that keep returning
	// new marshalers.
	maxMarshalDepth = 32
)

var (
	// ErrCycle marks a value that references itself.
	ErrCycle = errors.New("cyclic reference")
	// ErrUnsupported marks a value kind YAML cannot represent.
	ErrUnsupported = errors.New("unsupported value")

	recordType    = reflect.TypeOf(Record{})
	recordPtrType = reflect.TypeOf(&Record{})
	timeType      = reflect.TypeOf(time.Time{})
	marshalerType = reflect.TypeOf((*yaml.Marshaler)(nil)).Elem()
)

// Marshal checks v and renders it as a block-style YAML document.
func Marshal(v any) ([]byte, error) {
	if err := Check(v); err != nil {
		return nil, err
	}

	node, err := toNode(v)
	if err != nil {
		return nil, tibcoerrors.NewSerializationError("", err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(node); err != nil {
		return nil, tibcoerrors.NewSerializationError("", err)
	}
	if err := enc.Close(); err != nil {
		return nil, tibcoerrors.NewSerializationError("", err)
	}
	return buf.Bytes(), nil
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

// Check walks v and reports the first value that cannot be serialized: a
// reference cycle, a function, a channel, a complex number, an unsafe pointer
// or a map with non-string keys. The returned error is a SerializationError
// whose Path locates the value.
func Check(v any) error {
	w := &walker{active: make(map[visit]struct{})}
	return w.check(reflect.ValueOf(v), "")
}

type walker struct {
	active       map[visit]struct{}
	marshalDepth int
}

func (w *walker) enter(v reflect.Value, path string) (func(), error) {
	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if _, ok := w.active[key]; ok {
		return nil, tibcoerrors.NewSerializationError(path, ErrCycle)
	}
	w.active[key] = struct{}{}
	return func() { delete(w.active, key) }, nil
}

func (w *walker) check(v reflect.Value, path string) error {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return w.check(v.Elem(), path)

	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		leave, err := w.enter(v, path)
		if err != nil {
			return err
		}
		defer leave()
		if v.Type() == recordPtrType {
			return w.checkRecord(v.Interface().(*Record), path)
		}
		if v.Type().Implements(marshalerType) {
			return w.checkMarshaler(v, path)
		}
		return w.check(v.Elem(), path)

	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		if v.Type().Key().Kind() != reflect.String {
			return tibcoerrors.NewSerializationError(path, fmt.Errorf("%w: map key of type %s", ErrUnsupported, v.Type().Key()))
		}
		leave, err := w.enter(v, path)
		if err != nil {
			return err
		}
		defer leave()
		for _, key := range sortedKeys(v) {
			if err := w.check(v.MapIndex(key), joinKey(path, key.String())); err != nil {
				return err
			}
		}
		return nil

	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		if v.Len() > 0 {
			leave, err := w.enter(v, path)
			if err != nil {
				return err
			}
			defer leave()
		}
		return w.checkItems(v, path)

	case reflect.Array:
		return w.checkItems(v, path)

	case reflect.Struct:
		switch v.Type() {
		case recordType:
			rec := v.Interface().(Record)
			return w.checkRecord(&rec, path)
		case timeType:
			return nil
		}
		if v.Type().Implements(marshalerType) {
			return w.checkMarshaler(v, path)
		}
		return w.checkStruct(v, path)

	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return tibcoerrors.NewSerializationError(path, fmt.Errorf("%w of kind %s", ErrUnsupported, v.Kind()))

	default:
		return nil
	}
}

// checkMarshaler validates the value a yaml.Marshaler produces, which is what
// the encoder will walk next.
func (w *walker) checkMarshaler(v reflect.Value, path string) error {
	if !v.CanInterface() {
		return nil
	}
	if w.marshalDepth >= maxMarshalDepth {
		return tibcoerrors.NewSerializationError(path, fmt.Errorf("%w: MarshalYAML nested more than %d levels", ErrCycle, maxMarshalDepth))
	}

	out, err := v.Interface().(yaml.Marshaler).MarshalYAML()
	if err != nil {
		return tibcoerrors.NewSerializationError(path, err)
	}
	if out != nil && reflect.TypeOf(out) == v.Type() && v.Kind() != reflect.Pointer {
		return tibcoerrors.NewSerializationError(path, fmt.Errorf("%w: %s.MarshalYAML returns itself", ErrCycle, v.Type()))
	}

	w.marshalDepth++
	defer func() { w.marshalDepth-- }()
	return w.check(reflect.ValueOf(out), path)
}

func (w *walker) checkItems(v reflect.Value, path string) error {
	for i := 0; i < v.Len(); i++ {
		if err := w.check(v.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) checkRecord(r *Record, path string) error {
	if r.values != nil {
		leave, err := w.enter(reflect.ValueOf(r.values), path)
		if err != nil {
			return err
		}
		defer leave()
	}
	for _, key := range r.keys {
		if err := w.check(reflect.ValueOf(r.values[key]), joinKey(path, key)); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) checkStruct(v reflect.Value, path string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, skip := fieldName(field)
		if skip {
			continue
		}
		if err := w.check(v.Field(i), joinKey(path, name)); err != nil {
			return err
		}
	}
	return nil
}

func fieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("yaml")
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	return name, false
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func sortedKeys(v reflect.Value) []reflect.Value {
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func encodeNode(v any) (*yaml.Node, error) {
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

func recordNode(r *Record) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range r.keys {
		keyNode, err := encodeNode(key)
		if err != nil {
			return nil, err
		}
		valueNode, err := toNode(r.values[key])
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// toNode assumes v already passed Check.
func toNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return nullNode(), nil
	case *Record:
		if t == nil {
			return nullNode(), nil
		}
		return recordNode(t)
	case Record:
		return recordNode(&t)
	case *yaml.Node:
		return t, nil
	case yaml.Marshaler, time.Time:
		return encodeNode(v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nullNode(), nil
		}
		return toNode(rv.Elem().Interface())

	case reflect.Map:
		if rv.IsNil() {
			return nullNode(), nil
		}
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range sortedKeys(rv) {
			keyNode, err := encodeNode(key.String())
			if err != nil {
				return nil, err
			}
			valueNode, err := toNode(rv.MapIndex(key).Interface())
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, keyNode, valueNode)
		}
		return node, nil

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}, nil
		}
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if rv.Len() == 0 {
			node.Style = yaml.FlowStyle
		}
		for i := 0; i < rv.Len(); i++ {
			item, err := toNode(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, item)
		}
		return node, nil

	default:
		return encodeNode(v)
	}
}

// Unmarshal parses a YAML document into plain Go values, decoding mappings as
// *Record so key order survives.
func Unmarshal(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return FromNode(&doc)
}

// FromNode converts a decoded node tree into Go values: mappings become
// *Record, sequences []any and scalars their natural Go type.
func FromNode(node *yaml.Node) (any, error) {
	if node == nil {
		return nil, nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return FromNode(node.Content[0])

	case yaml.MappingNode:
		rec := NewRecord()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar, got %s", keyNode.Line, kindName(keyNode))
			}
			value, err := FromNode(valueNode)
			if err != nil {
				return nil, err
			}
			rec.Set(keyNode.Value, value)
		}
		return rec, nil

	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := FromNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		return items, nil

	case yaml.AliasNode:
		return FromNode(node.Alias)

	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return value, nil

	default:
		return nil, fmt.Errorf("line %d: unexpected node kind %s", node.Line, kindName(node))
	}
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return "null"
		}
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "kind " + strconv.Itoa(int(node.Kind))
	}
}
