package types

import (
	"bytes"
	"fmt"
	"io"
)

// PacketBuffer is the single read/write surface every packet's Read/Write
// method is built on: a thin wrapper over an io.Reader or io.Writer that
// adds the protocol's scalar codecs (VarInt, String, UUID, Position, ...)
// on top of raw byte access.
type PacketBuffer struct {
	reader io.Reader
	writer io.Writer

	// buf backs Bytes()/Len()/Reset() for buffers created with NewWriter.
	buf *bytes.Buffer
}

// NewReader wraps an in-memory byte slice for reading.
func NewReader(data []byte) *PacketBuffer {
	return &PacketBuffer{reader: bytes.NewReader(data)}
}

// NewReaderFrom wraps an arbitrary io.Reader, e.g. a frame's decompressed
// payload or a raw net.Conn during the Handshake phase.
func NewReaderFrom(r io.Reader) *PacketBuffer {
	return &PacketBuffer{reader: r}
}

// NewWriter creates a buffer that accumulates written bytes in memory,
// retrievable via Bytes().
func NewWriter() *PacketBuffer {
	buf := &bytes.Buffer{}
	return &PacketBuffer{writer: buf, buf: buf}
}

// NewWriterTo wraps an arbitrary io.Writer for direct streaming writes.
func NewWriterTo(w io.Writer) *PacketBuffer {
	return &PacketBuffer{writer: w}
}

// Bytes returns the accumulated bytes; valid only for a NewWriter buffer.
func (pb *PacketBuffer) Bytes() []byte {
	if pb.buf == nil {
		return nil
	}
	return pb.buf.Bytes()
}

// Len reports the accumulated byte count; valid only for a NewWriter buffer.
func (pb *PacketBuffer) Len() int {
	if pb.buf == nil {
		return 0
	}
	return pb.buf.Len()
}

// Reset discards accumulated bytes; valid only for a NewWriter buffer.
func (pb *PacketBuffer) Reset() {
	if pb.buf != nil {
		pb.buf.Reset()
	}
}

// Read fills p entirely or returns an error — packet payloads are always
// read to exhaustion, never partially.
func (pb *PacketBuffer) Read(p []byte) (int, error) {
	if pb.reader == nil {
		return 0, fmt.Errorf("packet buffer: not in read mode")
	}
	return io.ReadFull(pb.reader, p)
}

// Write appends p to the buffer.
func (pb *PacketBuffer) Write(p []byte) (int, error) {
	if pb.writer == nil {
		return 0, fmt.Errorf("packet buffer: not in write mode")
	}
	return pb.writer.Write(p)
}

func (pb *PacketBuffer) ReadByte() (byte, error) {
	var b [1]byte
	_, err := pb.Read(b[:])
	return b[0], err
}

func (pb *PacketBuffer) WriteByte(b byte) error {
	_, err := pb.Write([]byte{b})
	return err
}

// Reader exposes the underlying io.Reader, used by nbt.NewReaderFrom when
// a packet field (e.g. RegistryData, TextComponent) embeds a raw NBT tree.
func (pb *PacketBuffer) Reader() io.Reader { return pb.reader }

// Writer exposes the underlying io.Writer, the NBT-embedding counterpart to Reader.
func (pb *PacketBuffer) Writer() io.Writer { return pb.writer }

// wireDecoder and wireEncoder capture the (io.Reader)->(T,error) and
// T.Encode(io.Writer)->error shapes shared by every scalar codec in
// primitives.go/varint.go, letting the Read*/Write* methods below delegate
// through one generic pair instead of repeating "return DecodeX(pb.reader)"
// and "return v.Encode(pb.writer)" for each type.
type wireDecoder[T any] func(io.Reader) (T, error)

type wireEncoder interface {
	Encode(io.Writer) error
}

func readScalar[T any](pb *PacketBuffer, decode wireDecoder[T]) (T, error) {
	return decode(pb.reader)
}

func writeScalar[T wireEncoder](pb *PacketBuffer, v T) error {
	return v.Encode(pb.writer)
}

func (pb *PacketBuffer) ReadVarInt() (VarInt, error)   { return readScalar(pb, DecodeVarInt) }
func (pb *PacketBuffer) WriteVarInt(v VarInt) error    { return writeScalar(pb, v) }
func (pb *PacketBuffer) ReadVarLong() (VarLong, error) { return readScalar(pb, DecodeVarLong) }
func (pb *PacketBuffer) WriteVarLong(v VarLong) error  { return writeScalar(pb, v) }

func (pb *PacketBuffer) ReadBool() (Boolean, error) { return readScalar(pb, DecodeBoolean) }
func (pb *PacketBuffer) WriteBool(v Boolean) error  { return writeScalar(pb, v) }

func (pb *PacketBuffer) ReadInt8() (Int8, error) { return readScalar(pb, DecodeInt8) }
func (pb *PacketBuffer) WriteInt8(v Int8) error  { return writeScalar(pb, v) }

func (pb *PacketBuffer) ReadUint8() (Uint8, error) { return readScalar(pb, DecodeUint8) }
func (pb *PacketBuffer) WriteUint8(v Uint8) error  { return writeScalar(pb, v) }

func (pb *PacketBuffer) ReadInt16() (Int16, error) { return readScalar(pb, DecodeInt16) }
func (pb *PacketBuffer) WriteInt16(v Int16) error  { return writeScalar(pb, v) }

func (pb *PacketBuffer) ReadUint16() (Uint16, error) { return readScalar(pb, DecodeUint16) }
func (pb *PacketBuffer) WriteUint16(v Uint16) error  { return writeScalar(pb, v) }

func (pb *PacketBuffer) ReadInt32() (Int32, error) { return readScalar(pb, DecodeInt32) }
func (pb *PacketBuffer) WriteInt32(v Int32) error  { return writeScalar(pb, v) }

func (pb *PacketBuffer) ReadInt64() (Int64, error) { return readScalar(pb, DecodeInt64) }
func (pb *PacketBuffer) WriteInt64(v Int64) error  { return writeScalar(pb, v) }

func (pb *PacketBuffer) ReadFloat32() (Float32, error) { return readScalar(pb, DecodeFloat32) }
func (pb *PacketBuffer) WriteFloat32(v Float32) error  { return writeScalar(pb, v) }

func (pb *PacketBuffer) ReadFloat64() (Float64, error) { return readScalar(pb, DecodeFloat64) }
func (pb *PacketBuffer) WriteFloat64(v Float64) error  { return writeScalar(pb, v) }

func (pb *PacketBuffer) ReadPosition() (Position, error) { return readScalar(pb, DecodePosition) }
func (pb *PacketBuffer) WritePosition(v Position) error  { return writeScalar(pb, v) }

func (pb *PacketBuffer) ReadUUID() (UUID, error) { return readScalar(pb, DecodeUUID) }
func (pb *PacketBuffer) WriteUUID(v UUID) error  { return writeScalar(pb, v) }

func (pb *PacketBuffer) ReadAngle() (Angle, error) { return readScalar(pb, DecodeAngle) }
func (pb *PacketBuffer) WriteAngle(v Angle) error  { return writeScalar(pb, v) }

func (pb *PacketBuffer) ReadIdentifier() (Identifier, error) { return readScalar(pb, DecodeIdentifier) }
func (pb *PacketBuffer) WriteIdentifier(v Identifier) error  { return writeScalar(pb, v) }

// ReadString reads a VarInt-length-prefixed UTF-8 string. maxLen bounds the
// character count (0 disables the check); most fields cap at 32767, some
// (usernames, chat signatures) use a tighter bound.
func (pb *PacketBuffer) ReadString(maxLen int) (String, error) {
	return DecodeString(pb.reader, maxLen)
}

func (pb *PacketBuffer) WriteString(v String) error { return writeScalar(pb, v) }

// ReadByteArray reads a VarInt-length-prefixed byte run, rejecting a
// negative or over-maxLen length before allocating (maxLen<=0 disables the check).
func (pb *PacketBuffer) ReadByteArray(maxLen int) (ByteArray, error) {
	length, err := pb.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("byte array length: %w", err)
	}
	if length < 0 {
		return nil, fmt.Errorf("byte array length %d is negative", length)
	}
	if maxLen > 0 && int(length) > maxLen {
		return nil, fmt.Errorf("byte array length %d exceeds maximum %d", length, maxLen)
	}

	data := make([]byte, length)
	if _, err := pb.Read(data); err != nil {
		return nil, fmt.Errorf("byte array data: %w", err)
	}
	return data, nil
}

func (pb *PacketBuffer) WriteByteArray(v ByteArray) error {
	if err := pb.WriteVarInt(VarInt(len(v))); err != nil {
		return fmt.Errorf("byte array length: %w", err)
	}
	if _, err := pb.Write(v); err != nil {
		return fmt.Errorf("byte array data: %w", err)
	}
	return nil
}

// ReadFixedByteArray reads exactly n bytes with no length prefix, for
// schema-fixed fields like FixedBitSet's backing bytes.
func (pb *PacketBuffer) ReadFixedByteArray(n int) (ByteArray, error) {
	data := make([]byte, n)
	_, err := pb.Read(data)
	return data, err
}

func (pb *PacketBuffer) WriteFixedByteArray(v ByteArray) error {
	_, err := pb.Write(v)
	return err
}
