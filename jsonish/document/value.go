// Package document converts jsonish syntax trees into ordered values that
// can be serialized back to JSON text.
package document

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/l-donovan/parsnip/common"
)

// Value is a converted document. The implementations are Object, Array,
// String, Number, Boolean and Null.
type Value interface {
	common.Serializable
	json.Marshaler
	value()
}

// Object keeps its keys in the order they were first written.
type Object struct {
	fields *linkedhashmap.Map
}

type Array []Value

type String string

type Number common.Integer

type Boolean bool

type Null struct{}

func (*Object) value() {}
func (Array) value()   {}
func (String) value()  {}
func (Number) value()  {}
func (Boolean) value() {}
func (Null) value()    {}

func NewObject() *Object {
	return &Object{linkedhashmap.New()}
}

// Put sets key to val. Rewriting an existing key keeps its position.
func (o *Object) Put(key string, val Value) {
	o.fields.Put(key, val)
}

func (o *Object) Get(key string) (Value, bool) {
	val, found := o.fields.Get(key)

	if !found {
		return nil, false
	}

	return val.(Value), true
}

func (o *Object) Len() int {
	return o.fields.Size()
}

func (o *Object) Keys() []string {
	keys := make([]string, 0, o.fields.Size())

	for _, key := range o.fields.Keys() {
		keys = append(keys, key.(string))
	}

	return keys
}

// Each calls f for every field in key order.
func (o *Object) Each(f func(key string, val Value)) {
	it := o.fields.Iterator()

	for it.Next() {
		f(it.Key().(string), it.Value().(Value))
	}
}

// Convert turns a syntax tree into a Value. Mapping keys must be strings
// and a Pair may only appear inside a Mapping.
func Convert(node common.Node) (Value, error) {
	switch n := node.(type) {
	case nil:
		return Null{}, nil
	case common.Number:
		return Number(n), nil
	case common.String:
		return String(n), nil
	case common.Boolean:
		return Boolean(n), nil
	case common.Null:
		return Null{}, nil
	case common.Pair:
		return nil, &common.ParseError{Kind: common.StructuralMismatch, Message: "can't have top-level pair"}
	case common.Sequence:
		items := make(Array, 0, len(n))

		for _, item := range n {
			converted, err := Convert(item)

			if err != nil {
				return nil, err
			}

			items = append(items, converted)
		}

		return items, nil
	case common.Mapping:
		obj := NewObject()

		for _, entry := range n {
			key, ok := entry.Key.(common.String)

			if !ok {
				return nil, &common.ParseError{Kind: common.StructuralMismatch, Message: fmt.Sprintf("key %s was not a string", entry.Key)}
			}

			val, err := Convert(entry.Value)

			if err != nil {
				return nil, err
			}

			obj.Put(string(key), val)
		}

		return obj, nil
	default:
		panic(fmt.Sprintf("unknown node type %T", node))
	}
}

// Native returns v as plain Go values: map[string]any, []any, string,
// int32, bool and nil.
func Native(v Value) any {
	switch val := v.(type) {
	case *Object:
		fields := make(map[string]any, val.Len())

		val.Each(func(key string, field Value) {
			fields[key] = Native(field)
		})

		return fields
	case Array:
		items := make([]any, len(val))

		for i, item := range val {
			items[i] = Native(item)
		}

		return items
	case String:
		return string(val)
	case Number:
		return int32(val)
	case Boolean:
		return bool(val)
	default:
		return nil
	}
}

func quote(s string) string {
	out, err := json.Marshal(s)

	if err != nil {
		panic(err)
	}

	return string(out)
}

func (o *Object) Serialize(config *common.SerializerConfig, indentLevel int) (string, error) {
	if o.Len() == 0 {
		return config.Paint(common.PunctuationToken, "{}"), nil
	}

	var fields []string
	var err error

	o.Each(func(key string, val Value) {
		if err != nil {
			return
		}

		var serialized string
		serialized, err = val.Serialize(config, indentLevel+1)
		fields = append(fields, fmt.Sprintf("%s%s%s%s%s",
			config.Indent(indentLevel+1),
			config.Paint(common.KeyToken, quote(key)),
			config.Paint(common.PunctuationToken, ":"),
			config.Sep(" ", ""),
			serialized))
	})

	if err != nil {
		return "", err
	}

	return wrap(config, indentLevel, "{", "}", fields), nil
}

func (a Array) Serialize(config *common.SerializerConfig, indentLevel int) (string, error) {
	if len(a) == 0 {
		return config.Paint(common.PunctuationToken, "[]"), nil
	}

	items := make([]string, len(a))

	for i, item := range a {
		serialized, err := item.Serialize(config, indentLevel+1)

		if err != nil {
			return "", err
		}

		items[i] = config.Indent(indentLevel+1) + serialized
	}

	return wrap(config, indentLevel, "[", "]", items), nil
}

func wrap(config *common.SerializerConfig, indentLevel int, opening, closing string, items []string) string {
	newline := config.Sep("\n", "")
	sep := config.Paint(common.PunctuationToken, ",") + newline

	return config.Paint(common.PunctuationToken, opening) + newline +
		strings.Join(items, sep) + newline +
		config.Indent(indentLevel) + config.Paint(common.PunctuationToken, closing)
}

func (s String) Serialize(config *common.SerializerConfig, _ int) (string, error) {
	return config.Paint(common.StringToken, quote(string(s))), nil
}

func (n Number) Serialize(config *common.SerializerConfig, _ int) (string, error) {
	return config.Paint(common.NumberToken, strconv.FormatInt(int64(n), 10)), nil
}

func (b Boolean) Serialize(config *common.SerializerConfig, _ int) (string, error) {
	return config.Paint(common.BooleanToken, strconv.FormatBool(bool(b))), nil
}

func (Null) Serialize(config *common.SerializerConfig, _ int) (string, error) {
	return config.Paint(common.NullToken, "null"), nil
}

func marshal(v common.Serializable) ([]byte, error) {
	out, err := common.Minify(v)

	if err != nil {
		return nil, err
	}

	return []byte(out), nil
}

func (o *Object) MarshalJSON() ([]byte, error) { return marshal(o) }
func (a Array) MarshalJSON() ([]byte, error)   { return marshal(a) }
func (s String) MarshalJSON() ([]byte, error)  { return marshal(s) }
func (n Number) MarshalJSON() ([]byte, error)  { return marshal(n) }
func (b Boolean) MarshalJSON() ([]byte, error) { return marshal(b) }
func (n Null) MarshalJSON() ([]byte, error)    { return marshal(n) }
