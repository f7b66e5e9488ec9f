package types_test

import (
	"bytes"
	"io"
	"testing"

	ns "github.com/kestrel-mc/mc767/types"
)

func TestPacketBufferByteIO(t *testing.T) {
	reader := ns.NewReader([]byte{0x01, 0x02, 0x03, 0x04})
	if b, err := reader.ReadByte(); err != nil || b != 0x01 {
		t.Fatalf("ReadByte() = (%v, %v), want (0x01, nil)", b, err)
	}

	writer := ns.NewWriter()
	if err := writer.WriteByte(0x42); err != nil {
		t.Fatalf("WriteByte() error = %v", err)
	}
	if !bytes.Equal(writer.Bytes(), []byte{0x42}) {
		t.Errorf("Bytes() = %v, want [0x42]", writer.Bytes())
	}
}

func TestPacketBufferReadFull(t *testing.T) {
	buf := ns.NewReader([]byte{0x01, 0x02, 0x03})

	first := make([]byte, 2)
	if n, err := buf.Read(first); err != nil || n != 2 {
		t.Fatalf("Read(first) = (%d, %v), want (2, nil)", n, err)
	}
	if !bytes.Equal(first, []byte{0x01, 0x02}) {
		t.Errorf("Read(first) = %v, want [0x01 0x02]", first)
	}

	rest := make([]byte, 1)
	if n, err := buf.Read(rest); err != nil || n != 1 || rest[0] != 0x03 {
		t.Fatalf("Read(rest) = (%d, %v, %v), want (1, nil, 0x03)", n, err, rest[0])
	}

	if _, err := buf.ReadByte(); err != io.EOF {
		t.Errorf("ReadByte() past the end = %v, want io.EOF", err)
	}
}

// TestPacketBufferScalarRoundTrip exercises the readScalar/writeScalar
// delegation every Read*/Write* method goes through, across a sample of
// the wire types they cover.
func TestPacketBufferScalarRoundTrip(t *testing.T) {
	id, err := ns.UUIDFromString("d4e764a1-0000-4000-8000-000000000001")
	if err != nil {
		t.Fatalf("UUIDFromString() error = %v", err)
	}

	t.Run("VarInt", func(t *testing.T) {
		buf := ns.NewWriter()
		if err := buf.WriteVarInt(300); err != nil {
			t.Fatalf("WriteVarInt() error = %v", err)
		}
		got, err := ns.NewReader(buf.Bytes()).ReadVarInt()
		if err != nil || got != 300 {
			t.Errorf("round trip = (%d, %v), want (300, nil)", got, err)
		}
	})

	t.Run("Bool", func(t *testing.T) {
		buf := ns.NewWriter()
		if err := buf.WriteBool(true); err != nil {
			t.Fatalf("WriteBool() error = %v", err)
		}
		got, err := ns.NewReader(buf.Bytes()).ReadBool()
		if err != nil || !bool(got) {
			t.Errorf("round trip = (%v, %v), want (true, nil)", got, err)
		}
	})

	t.Run("Int32", func(t *testing.T) {
		buf := ns.NewWriter()
		if err := buf.WriteInt32(-12345); err != nil {
			t.Fatalf("WriteInt32() error = %v", err)
		}
		got, err := ns.NewReader(buf.Bytes()).ReadInt32()
		if err != nil || got != -12345 {
			t.Errorf("round trip = (%d, %v), want (-12345, nil)", got, err)
		}
	})

	t.Run("UUID", func(t *testing.T) {
		buf := ns.NewWriter()
		if err := buf.WriteUUID(id); err != nil {
			t.Fatalf("WriteUUID() error = %v", err)
		}
		got, err := ns.NewReader(buf.Bytes()).ReadUUID()
		if err != nil || got != id {
			t.Errorf("round trip = (%v, %v), want (%v, nil)", got, err, id)
		}
	})

	t.Run("Identifier", func(t *testing.T) {
		buf := ns.NewWriter()
		if err := buf.WriteIdentifier("minecraft:stone"); err != nil {
			t.Fatalf("WriteIdentifier() error = %v", err)
		}
		got, err := ns.NewReader(buf.Bytes()).ReadIdentifier()
		if err != nil || got != "minecraft:stone" {
			t.Errorf("round trip = (%q, %v), want (\"minecraft:stone\", nil)", got, err)
		}
	})
}

func TestPacketBufferByteArray(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	buf := ns.NewWriter()
	if err := buf.WriteByteArray(data); err != nil {
		t.Fatalf("WriteByteArray() error = %v", err)
	}
	if want := append([]byte{0x05}, data...); !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WriteByteArray() wire = %v, want %v", buf.Bytes(), want)
	}

	got, err := ns.NewReader(buf.Bytes()).ReadByteArray(0)
	if err != nil {
		t.Fatalf("ReadByteArray() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ReadByteArray() = %v, want %v", got, data)
	}
}

func TestPacketBufferByteArrayRejectsOverMax(t *testing.T) {
	buf := ns.NewWriter()
	buf.WriteByteArray(make([]byte, 10))

	if _, err := ns.NewReader(buf.Bytes()).ReadByteArray(5); err == nil {
		t.Error("ReadByteArray() with maxLen=5 over a 10-byte array should error")
	}
}

func TestPacketBufferFixedByteArray(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}

	buf := ns.NewWriter()
	if err := buf.WriteFixedByteArray(data); err != nil {
		t.Fatalf("WriteFixedByteArray() error = %v", err)
	}
	if !bytes.Equal(buf.Bytes(), data) {
		t.Errorf("WriteFixedByteArray() should carry no length prefix, got %v", buf.Bytes())
	}

	got, err := ns.NewReader(buf.Bytes()).ReadFixedByteArray(3)
	if err != nil {
		t.Fatalf("ReadFixedByteArray() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ReadFixedByteArray() = %v, want %v", got, data)
	}
}

func TestPacketBufferWriterState(t *testing.T) {
	buf := ns.NewWriter()
	buf.WriteByte(0x01)
	buf.WriteByte(0x02)

	if buf.Len() != 2 {
		t.Errorf("Len() = %d, want 2", buf.Len())
	}

	buf.Reset()

	if buf.Len() != 0 || len(buf.Bytes()) != 0 {
		t.Errorf("after Reset(): Len()=%d Bytes()=%v, want 0 and empty", buf.Len(), buf.Bytes())
	}
}

func TestPacketBufferWrongModeErrors(t *testing.T) {
	if _, err := ns.NewReader([]byte{0x01}).Write([]byte{0x02}); err == nil {
		t.Error("Write() on a read-only buffer should error")
	}
	if _, err := ns.NewWriter().Read(make([]byte, 1)); err == nil {
		t.Error("Read() on a write-only buffer should error")
	}
}
