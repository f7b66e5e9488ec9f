package nbt

import (
	"fmt"
	"reflect"
	"strings"
)

// TagUnmarshaler is implemented by types that need custom decoding from an
// NBT tag instead of the generic struct/map reflection below — for example
// types.TextComponent, which accepts both a bare String tag (plain-text
// shorthand) and a full Compound.
type TagUnmarshaler interface {
	UnmarshalNBT(tag Tag) error
}

var tagUnmarshalerType = reflect.TypeOf((*TagUnmarshaler)(nil)).Elem()

// Unmarshal decodes network-format NBT bytes into v. See Marshal for the
// type mapping.
func Unmarshal(data []byte, v any) error {
	return UnmarshalOptions(data, v, true)
}

// UnmarshalFile decodes file-format NBT bytes into v and reports the root
// tag's name.
func UnmarshalFile(data []byte, v any) (string, error) {
	tag, rootName, err := DecodeFile(data)
	if err != nil {
		return "", err
	}
	return rootName, UnmarshalTag(tag, v)
}

// UnmarshalOptions decodes NBT bytes into v with full control over framing.
func UnmarshalOptions(data []byte, v any, network bool, opts ...ReaderOption) error {
	tag, _, err := Decode(data, network, opts...)
	if err != nil {
		return err
	}
	return UnmarshalTag(tag, v)
}

// UnmarshalTag decodes an already-parsed Tag into v. types.TextComponent's
// Decode uses this after reading a single tag off the wire by hand.
func UnmarshalTag(tag Tag, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("nbt: unmarshal target must be a non-nil pointer")
	}
	return unmarshalValue(tag, rv.Elem())
}

func unmarshalValue(tag Tag, v reflect.Value) error {
	if tag == nil {
		return nil
	}

	if v.CanAddr() && v.Addr().Type().Implements(tagUnmarshalerType) {
		return v.Addr().Interface().(TagUnmarshaler).UnmarshalNBT(tag)
	}

	if v.Type().Implements(reflect.TypeOf((*Tag)(nil)).Elem()) && reflect.TypeOf(tag).AssignableTo(v.Type()) {
		v.Set(reflect.ValueOf(tag))
		return nil
	}

	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return unmarshalValue(tag, v.Elem())
	}

	if v.Kind() == reflect.Interface && v.NumMethod() == 0 {
		v.Set(reflect.ValueOf(tagToNative(tag)))
		return nil
	}

	switch t := tag.(type) {
	case Byte:
		return unmarshalNumber(int64(t), v)
	case Short:
		return unmarshalNumber(int64(t), v)
	case Int:
		return unmarshalNumber(int64(t), v)
	case Long:
		return unmarshalNumber(int64(t), v)
	case Float:
		return unmarshalFloat(float64(t), v)
	case Double:
		return unmarshalFloat(float64(t), v)
	case String:
		if v.Kind() != reflect.String {
			return fmt.Errorf("nbt: cannot unmarshal String into %s", v.Type())
		}
		v.SetString(string(t))
		return nil
	case ByteArray:
		return unmarshalByteArray(t, v)
	case IntArray:
		return unmarshalNumericArray(t, v)
	case LongArray:
		return unmarshalNumericArray(t, v)
	case List:
		return unmarshalList(t, v)
	case Compound:
		return unmarshalCompound(t, v)
	case End:
		return nil
	default:
		return fmt.Errorf("nbt: unknown tag type %T", tag)
	}
}

func unmarshalNumber(n int64, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		v.SetBool(n != 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(n))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(float64(n))
	default:
		return fmt.Errorf("nbt: cannot unmarshal number into %s", v.Type())
	}
	return nil
}

func unmarshalFloat(f float64, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		v.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(f))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(f))
	default:
		return fmt.Errorf("nbt: cannot unmarshal float into %s", v.Type())
	}
	return nil
}

func unmarshalByteArray(data ByteArray, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			v.SetBytes([]byte(data))
			return nil
		}
	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			n := min(v.Len(), len(data))
			for i := 0; i < n; i++ {
				v.Index(i).SetUint(uint64(data[i]))
			}
			return nil
		}
	}
	return fmt.Errorf("nbt: cannot unmarshal ByteArray into %s", v.Type())
}

// numericTag is satisfied by IntArray and LongArray, letting
// unmarshalNumericArray serve both with one implementation.
type numericTag interface {
	~[]int32 | ~[]int64
}

func unmarshalNumericArray[T numericTag](data T, v reflect.Value) error {
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("nbt: cannot unmarshal array into %s", v.Type())
	}

	elemType := v.Type().Elem()
	slice := reflect.MakeSlice(v.Type(), len(data), len(data))

	src := reflect.ValueOf(data)
	for i := 0; i < src.Len(); i++ {
		val := src.Index(i).Int()
		elem := slice.Index(i)
		switch elemType.Kind() {
		case reflect.Int, reflect.Int32, reflect.Int64:
			elem.SetInt(val)
		case reflect.Uint, reflect.Uint32, reflect.Uint64:
			elem.SetUint(uint64(val))
		default:
			return fmt.Errorf("nbt: cannot unmarshal array element into %s", elemType)
		}
	}

	v.Set(slice)
	return nil
}

func unmarshalList(list List, v reflect.Value) error {
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("nbt: cannot unmarshal List into %s", v.Type())
	}

	slice := reflect.MakeSlice(v.Type(), len(list.Elements), len(list.Elements))
	for i, elem := range list.Elements {
		if err := unmarshalValue(elem, slice.Index(i)); err != nil {
			return fmt.Errorf("nbt: list element %d: %w", i, err)
		}
	}
	v.Set(slice)
	return nil
}

func unmarshalCompound(compound Compound, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Map:
		return unmarshalCompoundToMap(compound, v)
	case reflect.Struct:
		return unmarshalCompoundToStruct(compound, v)
	default:
		return fmt.Errorf("nbt: cannot unmarshal Compound into %s", v.Type())
	}
}

func unmarshalCompoundToMap(compound Compound, v reflect.Value) error {
	if v.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("nbt: map keys must be strings")
	}
	if v.IsNil() {
		v.Set(reflect.MakeMap(v.Type()))
	}

	elemType := v.Type().Elem()
	for name, tag := range compound {
		elem := reflect.New(elemType).Elem()
		if err := unmarshalValue(tag, elem); err != nil {
			return fmt.Errorf("nbt: map key %q: %w", name, err)
		}
		v.SetMapIndex(reflect.ValueOf(name), elem)
	}
	return nil
}

func unmarshalCompoundToStruct(compound Compound, v reflect.Value) error {
	t := v.Type()
	fields := make(map[string]int, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct && field.Tag.Get("nbt") == "" {
			if err := unmarshalCompoundToStruct(compound, v.Field(i)); err != nil {
				return err
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		name, _ := splitTag(field.Tag.Get("nbt"))
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		fields[name] = i
		fields[strings.ToLower(name)] = i
	}

	for name, tag := range compound {
		idx, ok := fields[name]
		if !ok {
			idx, ok = fields[strings.ToLower(name)]
		}
		if !ok {
			continue
		}
		if err := unmarshalValue(tag, v.Field(idx)); err != nil {
			return fmt.Errorf("nbt: field %s: %w", name, err)
		}
	}
	return nil
}

// tagToNative converts an NBT tag to the closest native Go value, used when
// decoding into an any/interface{} target.
func tagToNative(tag Tag) any {
	switch t := tag.(type) {
	case Byte:
		return int8(t)
	case Short:
		return int16(t)
	case Int:
		return int32(t)
	case Long:
		return int64(t)
	case Float:
		return float32(t)
	case Double:
		return float64(t)
	case String:
		return string(t)
	case ByteArray:
		return []byte(t)
	case IntArray:
		return []int32(t)
	case LongArray:
		return []int64(t)
	case List:
		result := make([]any, len(t.Elements))
		for i, elem := range t.Elements {
			result[i] = tagToNative(elem)
		}
		return result
	case Compound:
		result := make(map[string]any, len(t))
		for k, v := range t {
			result[k] = tagToNative(v)
		}
		return result
	default:
		return nil
	}
}
