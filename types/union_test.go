package types_test

import (
	"bytes"
	"testing"

	ns "github.com/kestrel-mc/mc767/types"
)

func decodeVarIntElem(buf *ns.PacketBuffer) (ns.VarInt, error) {
	return buf.ReadVarInt()
}

func encodeVarIntElem(buf *ns.PacketBuffer, v ns.VarInt) error {
	return buf.WriteVarInt(v)
}

func decodeStringElem(buf *ns.PacketBuffer) (ns.String, error) {
	return buf.ReadString(0)
}

func encodeStringElem(buf *ns.PacketBuffer, v ns.String) error {
	return buf.WriteString(v)
}

func TestOrRoundTrip(t *testing.T) {
	orig := ns.NewOrX[ns.VarInt, ns.String](ns.VarInt(7))

	w := ns.NewWriter()
	if err := orig.EncodeWith(w, encodeVarIntElem, encodeStringElem); err != nil {
		t.Fatalf("EncodeWith() error = %v", err)
	}

	r := ns.NewReader(w.Bytes())
	got, err := ns.DecodeOr(r, decodeVarIntElem, decodeStringElem)
	if err != nil {
		t.Fatalf("DecodeOr() error = %v", err)
	}
	if !got.IsX || got.X != 7 {
		t.Fatalf("got %+v, want X=7", got)
	}
}

func TestIDOrInline(t *testing.T) {
	orig := ns.NewIDOrInline[ns.String]("hello")

	w := ns.NewWriter()
	if err := orig.EncodeWith(w, encodeStringElem); err != nil {
		t.Fatalf("EncodeWith() error = %v", err)
	}

	r := ns.NewReader(w.Bytes())
	got, err := ns.DecodeIDOr(r, decodeStringElem)
	if err != nil {
		t.Fatalf("DecodeIDOr() error = %v", err)
	}
	if got.IsID || got.Data != "hello" {
		t.Fatalf("got %+v, want inline \"hello\"", got)
	}
}

func TestIDOrByID(t *testing.T) {
	orig := ns.NewIDOrID[ns.String](ns.VarInt(41))

	w := ns.NewWriter()
	if err := orig.EncodeWith(w, encodeStringElem); err != nil {
		t.Fatalf("EncodeWith() error = %v", err)
	}

	r := ns.NewReader(w.Bytes())
	got, err := ns.DecodeIDOr(r, decodeStringElem)
	if err != nil {
		t.Fatalf("DecodeIDOr() error = %v", err)
	}
	if !got.IsID || got.ID != 41 {
		t.Fatalf("got %+v, want ID=41", got)
	}

	raw := w.Bytes()
	if !bytes.Equal(raw, mustBytes(t, ns.VarInt(42))) {
		t.Fatalf("wire form should encode tag as ID+1")
	}
}

func mustBytes(t *testing.T, v ns.VarInt) []byte {
	t.Helper()
	b, err := v.ToBytes()
	if err != nil {
		t.Fatalf("ToBytes() error = %v", err)
	}
	return b
}
