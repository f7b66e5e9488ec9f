package registry_test

import (
	"errors"
	"testing"

	"github.com/kestrel-mc/mc767/mclog"
	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/packet/c2s"
	"github.com/kestrel-mc/mc767/packet/registry"
	"github.com/kestrel-mc/mc767/packet/s2c"
	"github.com/kestrel-mc/mc767/types"
)

func TestLookupKnownPacket(t *testing.T) {
	pkt, ok := registry.Lookup(packet.Status, packet.Serverbound, 0x00)
	if !ok {
		t.Fatal("expected Status/Serverbound/0x00 to be registered")
	}
	if _, ok := pkt.(*c2s.StatusRequest); !ok {
		t.Fatalf("got %T, want *c2s.StatusRequest", pkt)
	}
}

func TestLookupUnknownPacket(t *testing.T) {
	if _, ok := registry.Lookup(packet.Play, packet.Clientbound, 0x7F7F); ok {
		t.Fatal("expected no factory for an implausible id")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	log := mclog.New()
	want := &s2c.PongResponse{Payload: 42}

	body, err := registry.Encode(want, log)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, err := registry.Decode(packet.Status, packet.Clientbound, want.ID(), body, log)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	pong, ok := got.(*s2c.PongResponse)
	if !ok {
		t.Fatalf("got %T, want *s2c.PongResponse", got)
	}
	if pong.Payload != want.Payload {
		t.Fatalf("got payload %d, want %d", pong.Payload, want.Payload)
	}
}

func TestDecodeUnknownPacketReturnsTypedError(t *testing.T) {
	log := mclog.New()
	_, err := registry.Decode(packet.Play, packet.Clientbound, types.VarInt(0x7F7F), nil, log)
	if err == nil {
		t.Fatal("expected an error for an unregistered id")
	}
	var unk *registry.ErrUnknownPacket
	if !errors.As(err, &unk) {
		t.Fatalf("got %T, want *registry.ErrUnknownPacket", err)
	}
	if unk.Phase != packet.Play || unk.Bound != packet.Clientbound || unk.ID != 0x7F7F {
		t.Fatalf("got %+v, unexpected fields", unk)
	}
}
