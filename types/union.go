package types

import "fmt"

// Or is a two-way discriminated union: a bool prefix selects whether the X
// or Y variant follows. Unlike the reflection-driven Optional/Or helpers
// seen elsewhere in the ecosystem, this takes explicit decode/encode
// functions for each branch so no type-name matching is needed at runtime.
type Or[X, Y any] struct {
	IsX bool
	X   X
	Y   Y
}

// NewOrX builds an Or in its X variant.
func NewOrX[X, Y any](x X) Or[X, Y] {
	return Or[X, Y]{IsX: true, X: x}
}

// NewOrY builds an Or in its Y variant.
func NewOrY[X, Y any](y Y) Or[X, Y] {
	return Or[X, Y]{IsX: false, Y: y}
}

// DecodeOr reads the bool discriminant and the selected branch.
func DecodeOr[X, Y any](buf *PacketBuffer, decodeX ElementDecoder[X], decodeY ElementDecoder[Y]) (Or[X, Y], error) {
	var out Or[X, Y]
	isX, err := buf.ReadBool()
	if err != nil {
		return out, fmt.Errorf("failed to read or discriminant: %w", err)
	}
	out.IsX = bool(isX)
	if out.IsX {
		out.X, err = decodeX(buf)
	} else {
		out.Y, err = decodeY(buf)
	}
	if err != nil {
		return out, fmt.Errorf("failed to read or payload: %w", err)
	}
	return out, nil
}

// EncodeWith writes the bool discriminant followed by the selected branch.
func (o Or[X, Y]) EncodeWith(buf *PacketBuffer, encodeX ElementEncoder[X], encodeY ElementEncoder[Y]) error {
	if err := buf.WriteBool(Boolean(o.IsX)); err != nil {
		return fmt.Errorf("failed to write or discriminant: %w", err)
	}
	if o.IsX {
		return encodeX(buf, o.X)
	}
	return encodeY(buf, o.Y)
}

// IDOr is a VarInt-tagged union: a tag of 0 means an inline T value follows;
// a nonzero tag is a registry ID (tag-1).
type IDOr[T any] struct {
	IsID bool
	ID   VarInt
	Data T
}

// NewIDOrID builds an IDOr referencing a registry id.
func NewIDOrID[T any](id VarInt) IDOr[T] {
	return IDOr[T]{IsID: true, ID: id}
}

// NewIDOrInline builds an IDOr carrying an inline value.
func NewIDOrInline[T any](data T) IDOr[T] {
	return IDOr[T]{IsID: false, Data: data}
}

// DecodeIDOr reads the VarInt tag and, if zero, the inline value via decode.
func DecodeIDOr[T any](buf *PacketBuffer, decode ElementDecoder[T]) (IDOr[T], error) {
	var out IDOr[T]
	tag, err := buf.ReadVarInt()
	if err != nil {
		return out, fmt.Errorf("failed to read id-or tag: %w", err)
	}
	if tag == 0 {
		out.IsID = false
		out.Data, err = decode(buf)
		if err != nil {
			return out, fmt.Errorf("failed to read id-or inline value: %w", err)
		}
		return out, nil
	}
	out.IsID = true
	out.ID = tag - 1
	return out, nil
}

// EncodeWith writes the VarInt tag and, for an inline value, the payload.
func (o IDOr[T]) EncodeWith(buf *PacketBuffer, encode ElementEncoder[T]) error {
	if o.IsID {
		return buf.WriteVarInt(o.ID + 1)
	}
	if err := buf.WriteVarInt(0); err != nil {
		return fmt.Errorf("failed to write id-or tag: %w", err)
	}
	return encode(buf, o.Data)
}
