package types

import (
	"fmt"
	"io"
)

// DoubleVec3 is three consecutive big-endian doubles (24 bytes), used for
// absolute world positions (X, Y, Z).
type DoubleVec3 struct {
	X, Y, Z float64
}

func (v DoubleVec3) Encode(w io.Writer) error { return encodeVec3(w, v.X, v.Y, v.Z) }

// DecodeDoubleVec3 reads a DoubleVec3 from r.
func DecodeDoubleVec3(r io.Reader) (DoubleVec3, error) {
	x, y, z, err := decodeVec3(r)
	return DoubleVec3{X: x, Y: y, Z: z}, err
}

// FloatVec3 is three consecutive big-endian floats (12 bytes), used for
// directions and small offsets.
type FloatVec3 struct {
	X, Y, Z float32
}

func (v FloatVec3) Encode(w io.Writer) error {
	if err := Float32(v.X).Encode(w); err != nil {
		return fmt.Errorf("failed to write x: %w", err)
	}
	if err := Float32(v.Y).Encode(w); err != nil {
		return fmt.Errorf("failed to write y: %w", err)
	}
	if err := Float32(v.Z).Encode(w); err != nil {
		return fmt.Errorf("failed to write z: %w", err)
	}
	return nil
}

// DecodeFloatVec3 reads a FloatVec3 from r.
func DecodeFloatVec3(r io.Reader) (FloatVec3, error) {
	x, err := DecodeFloat32(r)
	if err != nil {
		return FloatVec3{}, fmt.Errorf("failed to read x: %w", err)
	}
	y, err := DecodeFloat32(r)
	if err != nil {
		return FloatVec3{}, fmt.Errorf("failed to read y: %w", err)
	}
	z, err := DecodeFloat32(r)
	if err != nil {
		return FloatVec3{}, fmt.Errorf("failed to read z: %w", err)
	}
	return FloatVec3{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

// FloatVec4 is four consecutive big-endian floats (16 bytes), used for
// quaternion-valued fields such as entity head rotation.
type FloatVec4 struct {
	X, Y, Z, W float32
}

func (v FloatVec4) Encode(w io.Writer) error {
	if err := (FloatVec3{X: v.X, Y: v.Y, Z: v.Z}).Encode(w); err != nil {
		return err
	}
	return Float32(v.W).Encode(w)
}

// DecodeFloatVec4 reads a FloatVec4 from r.
func DecodeFloatVec4(r io.Reader) (FloatVec4, error) {
	xyz, err := DecodeFloatVec3(r)
	if err != nil {
		return FloatVec4{}, err
	}
	w, err := DecodeFloat32(r)
	if err != nil {
		return FloatVec4{}, fmt.Errorf("failed to read w: %w", err)
	}
	return FloatVec4{X: xyz.X, Y: xyz.Y, Z: xyz.Z, W: float32(w)}, nil
}

// ByteVec3 packs three signed bytes, used for small relative deltas.
type ByteVec3 struct {
	X, Y, Z int8
}

func (v ByteVec3) Encode(w io.Writer) error {
	if err := Int8(v.X).Encode(w); err != nil {
		return err
	}
	if err := Int8(v.Y).Encode(w); err != nil {
		return err
	}
	return Int8(v.Z).Encode(w)
}

// DecodeByteVec3 reads a ByteVec3 from r.
func DecodeByteVec3(r io.Reader) (ByteVec3, error) {
	x, err := DecodeInt8(r)
	if err != nil {
		return ByteVec3{}, err
	}
	y, err := DecodeInt8(r)
	if err != nil {
		return ByteVec3{}, err
	}
	z, err := DecodeInt8(r)
	if err != nil {
		return ByteVec3{}, err
	}
	return ByteVec3{X: int8(x), Y: int8(y), Z: int8(z)}, nil
}

// ShortVec3 packs three signed shorts, used for fixed-point entity motion.
type ShortVec3 struct {
	X, Y, Z int16
}

func (v ShortVec3) Encode(w io.Writer) error {
	if err := Int16(v.X).Encode(w); err != nil {
		return err
	}
	if err := Int16(v.Y).Encode(w); err != nil {
		return err
	}
	return Int16(v.Z).Encode(w)
}

// DecodeShortVec3 reads a ShortVec3 from r.
func DecodeShortVec3(r io.Reader) (ShortVec3, error) {
	x, err := DecodeInt16(r)
	if err != nil {
		return ShortVec3{}, err
	}
	y, err := DecodeInt16(r)
	if err != nil {
		return ShortVec3{}, err
	}
	z, err := DecodeInt16(r)
	if err != nil {
		return ShortVec3{}, err
	}
	return ShortVec3{X: int16(x), Y: int16(y), Z: int16(z)}, nil
}

// Location is a world-space position plus yaw/pitch, as sent in entity
// teleport and spawn packets.
type Location struct {
	Pos        DoubleVec3
	Yaw, Pitch Angle
}

func (l Location) Encode(w io.Writer) error {
	if err := l.Pos.Encode(w); err != nil {
		return fmt.Errorf("failed to write position: %w", err)
	}
	if err := l.Yaw.Encode(w); err != nil {
		return fmt.Errorf("failed to write yaw: %w", err)
	}
	return l.Pitch.Encode(w)
}

// DecodeLocation reads a Location from r.
func DecodeLocation(r io.Reader) (Location, error) {
	pos, err := DecodeDoubleVec3(r)
	if err != nil {
		return Location{}, fmt.Errorf("failed to read position: %w", err)
	}
	yaw, err := DecodeAngle(r)
	if err != nil {
		return Location{}, fmt.Errorf("failed to read yaw: %w", err)
	}
	pitch, err := DecodeAngle(r)
	if err != nil {
		return Location{}, fmt.Errorf("failed to read pitch: %w", err)
	}
	return Location{Pos: pos, Yaw: yaw, Pitch: pitch}, nil
}

func encodeVec3(w io.Writer, x, y, z float64) error {
	if err := Float64(x).Encode(w); err != nil {
		return fmt.Errorf("failed to write x: %w", err)
	}
	if err := Float64(y).Encode(w); err != nil {
		return fmt.Errorf("failed to write y: %w", err)
	}
	if err := Float64(z).Encode(w); err != nil {
		return fmt.Errorf("failed to write z: %w", err)
	}
	return nil
}

func decodeVec3(r io.Reader) (x, y, z float64, err error) {
	xv, err := DecodeFloat64(r)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to read x: %w", err)
	}
	yv, err := DecodeFloat64(r)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to read y: %w", err)
	}
	zv, err := DecodeFloat64(r)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to read z: %w", err)
	}
	return float64(xv), float64(yv), float64(zv), nil
}
