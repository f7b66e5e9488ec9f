package c2s

import (
	"fmt"

	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/types"
)

// StatusRequest asks the server for its StatusResponse. It has no fields.
type StatusRequest struct{}

func (StatusRequest) ID() types.VarInt    { return 0x00 }
func (StatusRequest) Phase() packet.Phase { return packet.Status }
func (StatusRequest) Bound() packet.Bound { return packet.Serverbound }
func (*StatusRequest) Read(*types.PacketBuffer) error  { return nil }
func (*StatusRequest) Write(*types.PacketBuffer) error { return nil }

// PingRequest carries an opaque payload the server must echo back unchanged
// in a PongResponse, used to measure round-trip latency.
type PingRequest struct {
	Payload types.Int64
}

func (PingRequest) ID() types.VarInt    { return 0x01 }
func (PingRequest) Phase() packet.Phase { return packet.Status }
func (PingRequest) Bound() packet.Bound { return packet.Serverbound }

func (p *PingRequest) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadInt64()
	if err != nil {
		return fmt.Errorf("payload: %w", err)
	}
	p.Payload = v
	return nil
}

func (p *PingRequest) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteInt64(p.Payload); err != nil {
		return fmt.Errorf("payload: %w", err)
	}
	return nil
}
