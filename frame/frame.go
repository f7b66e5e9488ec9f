// Package frame implements the length-prefixed, optionally zlib-compressed
// packet framing used by the Java Edition protocol wire format.
//
// > Packets cannot be larger than (2^21) − 1 or 2 097 151 bytes (the maximum
// that can be sent in a 3-byte VarInt). Moreover, the length field must not
// be longer than 3 bytes, even if the encoded value is within the limit.
//
// See https://minecraft.wiki/w/Java_Edition_protocol/Packets
package frame

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/kestrel-mc/mc767/types"
)

// MaxLength is the largest value a 3-byte VarInt length prefix can encode.
const MaxLength = 1<<21 - 1

// ErrorKind classifies a framing failure.
type ErrorKind string

const (
	ErrFrameTooLarge       ErrorKind = "frame_too_large"
	ErrDecompressionFailed ErrorKind = "decompression_failed"
	ErrCompressionFailed   ErrorKind = "compression_failed"
	ErrShortRead           ErrorKind = "short_read"
)

// Error is a typed framing-layer error.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("frame: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("frame: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Frame is a decoded wire frame: the packet ID and the raw, decompressed
// payload (without the packet ID). It carries no knowledge of phase,
// direction, or field layout — that belongs to the packet package.
type Frame struct {
	PacketID types.VarInt
	Data     []byte
}

// ReadFrame reads one frame from r. threshold < 0 disables compression;
// threshold >= 0 means the connection is in compressed mode and each frame
// carries an inner data-length VarInt (zero meaning "sent uncompressed,
// below threshold").
func ReadFrame(r io.Reader, threshold int) (*Frame, error) {
	length, err := types.DecodeLength(r)
	if err != nil {
		return nil, newError(ErrFrameTooLarge, fmt.Errorf("read frame length: %w", err))
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, newError(ErrShortRead, err)
	}
	br := bytes.NewReader(body)

	if threshold >= 0 {
		return readCompressed(br)
	}
	return readUncompressed(br)
}

func readUncompressed(r *bytes.Reader) (*Frame, error) {
	id, err := types.DecodeVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("read packet id: %w", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newError(ErrShortRead, err)
	}
	return &Frame{PacketID: id, Data: data}, nil
}

func readCompressed(r *bytes.Reader) (*Frame, error) {
	dataLength, err := types.DecodeVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("read data length: %w", err)
	}
	if dataLength == 0 {
		return readUncompressed(r)
	}

	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, newError(ErrShortRead, err)
	}
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, newError(ErrDecompressionFailed, err)
	}
	defer func() { _ = zr.Close() }()

	uncompressed, err := io.ReadAll(zr)
	if err != nil {
		return nil, newError(ErrDecompressionFailed, err)
	}

	ur := bytes.NewReader(uncompressed)
	id, err := types.DecodeVarInt(ur)
	if err != nil {
		return nil, fmt.Errorf("read packet id: %w", err)
	}
	data, err := io.ReadAll(ur)
	if err != nil {
		return nil, newError(ErrShortRead, err)
	}
	return &Frame{PacketID: id, Data: data}, nil
}

// WriteFrame writes f to w, applying compression framing when threshold >= 0.
//
// Compression behavior (per Minecraft protocol):
//   - size >= threshold: the packet ID + data are zlib compressed.
//   - size < threshold: sent uncompressed, with Data Length = 0.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#With_compression
func WriteFrame(w io.Writer, f *Frame, threshold int) error {
	var out []byte
	var err error
	if threshold >= 0 {
		out, err = f.encodeCompressed(threshold)
	} else {
		out, err = f.encodeUncompressed()
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func (f *Frame) encodeUncompressed() ([]byte, error) {
	idBytes, err := f.PacketID.ToBytes()
	if err != nil {
		return nil, err
	}
	payload := append(append([]byte{}, idBytes...), f.Data...)
	if len(payload) > MaxLength {
		return nil, newError(ErrFrameTooLarge, fmt.Errorf("payload %d exceeds %d", len(payload), MaxLength))
	}
	lengthBytes, err := types.VarInt(len(payload)).ToBytes()
	if err != nil {
		return nil, err
	}
	return append(lengthBytes, payload...), nil
}

func (f *Frame) encodeCompressed(threshold int) ([]byte, error) {
	idBytes, err := f.PacketID.ToBytes()
	if err != nil {
		return nil, err
	}
	uncompressed := append(append([]byte{}, idBytes...), f.Data...)

	if len(uncompressed) < threshold {
		dataLenBytes, _ := types.VarInt(0).ToBytes()
		content := append(dataLenBytes, uncompressed...)
		if len(content) > MaxLength {
			return nil, newError(ErrFrameTooLarge, fmt.Errorf("content %d exceeds %d", len(content), MaxLength))
		}
		lengthBytes, err := types.VarInt(len(content)).ToBytes()
		if err != nil {
			return nil, err
		}
		return append(lengthBytes, content...), nil
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(uncompressed); err != nil {
		_ = zw.Close()
		return nil, newError(ErrCompressionFailed, err)
	}
	if err := zw.Close(); err != nil {
		return nil, newError(ErrCompressionFailed, err)
	}

	dataLenBytes, err := types.VarInt(len(uncompressed)).ToBytes()
	if err != nil {
		return nil, err
	}
	content := append(dataLenBytes, buf.Bytes()...)
	if len(content) > MaxLength {
		return nil, newError(ErrFrameTooLarge, fmt.Errorf("content %d exceeds %d", len(content), MaxLength))
	}
	lengthBytes, err := types.VarInt(len(content)).ToBytes()
	if err != nil {
		return nil, err
	}
	return append(lengthBytes, content...), nil
}
