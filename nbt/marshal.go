package nbt

import (
	"fmt"
	"reflect"
	"strings"
)

// Marshal converts a Go value to NBT bytes in the nameless root network
// format, the form every NBT blob that crosses the wire uses; Unmarshal
// reads it back. MarshalFile produces the named-root file format instead.
//
// Type mapping:
//
//	bool             -> Byte (0 or 1)
//	int8/uint8       -> Byte
//	int16/uint16     -> Short
//	int32/int/uint.. -> Int
//	int64/uint64     -> Long
//	float32/float64  -> Float/Double
//	string           -> String
//	[]byte           -> ByteArray
//	[]int32          -> IntArray
//	[]int64          -> LongArray
//	[]T (other)      -> List
//	struct / map[string]T -> Compound
//
// Struct fields take an `nbt:"name"` tag to rename the key, `nbt:"-"` to
// skip the field, and `nbt:"name,omitempty"` to drop zero values.
func Marshal(v any) ([]byte, error) {
	return MarshalOptions(v, "", true)
}

// MarshalNetwork converts a Go value to NBT bytes in the nameless root
// format used inside Minecraft protocol packets.
func MarshalNetwork(v any) ([]byte, error) {
	return MarshalOptions(v, "", true)
}

// MarshalFile converts a Go value to NBT bytes in named-root file format.
func MarshalFile(v any, rootName string) ([]byte, error) {
	return MarshalOptions(v, rootName, false)
}

// MarshalOptions converts a Go value to NBT bytes with full control over the
// root name and wire vs. file framing.
func MarshalOptions(v any, rootName string, network bool) ([]byte, error) {
	tag, err := MarshalTag(v)
	if err != nil {
		return nil, err
	}
	return Encode(tag, rootName, network)
}

// MarshalTag converts a Go value to an NBT Tag without encoding it to bytes;
// types.TextComponent uses this to build a Compound by hand before framing it.
func MarshalTag(v any) (Tag, error) {
	return marshalValue(reflect.ValueOf(v))
}

func marshalValue(v reflect.Value) (Tag, error) {
	if !v.IsValid() {
		return Compound{}, nil
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Compound{}, nil
		}
		v = v.Elem()
	}
	if tag, ok := v.Interface().(Tag); ok {
		return tag, nil
	}

	switch v.Kind() {
	case reflect.Bool:
		return boolTag(v.Bool()), nil
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int, reflect.Int64:
		return intTag(v.Kind(), v.Int()), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint, reflect.Uint64:
		return uintTag(v.Kind(), v.Uint()), nil
	case reflect.Float32:
		return Float(v.Float()), nil
	case reflect.Float64:
		return Double(v.Float()), nil
	case reflect.String:
		return String(v.String()), nil
	case reflect.Slice, reflect.Array:
		return marshalSlice(v)
	case reflect.Map:
		return marshalMap(v)
	case reflect.Struct:
		return marshalStruct(v)
	default:
		return nil, fmt.Errorf("nbt: cannot marshal %s", v.Type())
	}
}

func boolTag(b bool) Byte {
	if b {
		return Byte(1)
	}
	return Byte(0)
}

// intTag picks the NBT width matching the Go kind's natural size, mirroring
// marshalStruct field tags (int8->Byte, int16->Short, int/int32->Int, int64->Long).
func intTag(k reflect.Kind, n int64) Tag {
	switch k {
	case reflect.Int8:
		return Byte(n)
	case reflect.Int16:
		return Short(n)
	case reflect.Int64:
		return Long(n)
	default:
		return Int(n)
	}
}

func uintTag(k reflect.Kind, n uint64) Tag {
	switch k {
	case reflect.Uint8:
		return Byte(n)
	case reflect.Uint16:
		return Short(n)
	case reflect.Uint64:
		return Long(n)
	default:
		return Int(n)
	}
}

func marshalSlice(v reflect.Value) (Tag, error) {
	switch v.Type().Elem().Kind() {
	case reflect.Uint8:
		if v.Kind() == reflect.Slice {
			return ByteArray(v.Bytes()), nil
		}
		data := make([]byte, v.Len())
		for i := 0; i < v.Len(); i++ {
			data[i] = byte(v.Index(i).Uint())
		}
		return ByteArray(data), nil

	case reflect.Int32:
		data := make(IntArray, v.Len())
		for i := range data {
			data[i] = int32(v.Index(i).Int())
		}
		return data, nil

	case reflect.Int64:
		data := make(LongArray, v.Len())
		for i := range data {
			data[i] = v.Index(i).Int()
		}
		return data, nil
	}

	if v.Len() == 0 {
		return List{ElementType: TagEnd}, nil
	}

	elements := make([]Tag, v.Len())
	var elemType byte
	for i := 0; i < v.Len(); i++ {
		elem, err := marshalValue(v.Index(i))
		if err != nil {
			return nil, fmt.Errorf("nbt: list element %d: %w", i, err)
		}
		elements[i] = elem
		if i == 0 {
			elemType = elem.ID()
		} else if elem.ID() != elemType {
			return nil, fmt.Errorf("nbt: list has mixed types %s and %s", TagName(elemType), TagName(elem.ID()))
		}
	}
	return List{ElementType: elemType, Elements: elements}, nil
}

func marshalMap(v reflect.Value) (Tag, error) {
	if v.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("nbt: map keys must be strings, got %s", v.Type().Key())
	}
	compound := make(Compound, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		value, err := marshalValue(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("nbt: map key %q: %w", key, err)
		}
		compound[key] = value
	}
	return compound, nil
}

func marshalStruct(v reflect.Value) (Tag, error) {
	t := v.Type()
	compound := make(Compound, v.NumField())

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct && field.Tag.Get("nbt") == "" {
			inner, err := marshalStruct(v.Field(i))
			if err != nil {
				return nil, err
			}
			for k, tag := range inner.(Compound) {
				compound[k] = tag
			}
			continue
		}
		if !field.IsExported() {
			continue
		}

		name, opts := splitTag(field.Tag.Get("nbt"))
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}

		fieldValue := v.Field(i)
		if opts.has("omitempty") && isEmptyValue(fieldValue) {
			continue
		}

		tag, err := marshalValue(fieldValue)
		if err != nil {
			return nil, fmt.Errorf("nbt: field %s: %w", field.Name, err)
		}
		compound[name] = tag
	}
	return compound, nil
}

// fieldOptions is the comma-separated remainder of an `nbt:"name,opt,opt"` tag.
type fieldOptions []string

func splitTag(tag string) (string, fieldOptions) {
	name, rest, _ := strings.Cut(tag, ",")
	if rest == "" {
		return name, nil
	}
	return name, fieldOptions(strings.Split(rest, ","))
}

func (o fieldOptions) has(opt string) bool {
	for _, candidate := range o {
		if candidate == opt {
			return true
		}
	}
	return false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
