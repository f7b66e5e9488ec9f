package s2c

import (
	"fmt"

	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/types"
)

// StatusResponse carries the server list ping JSON document verbatim; the
// status package is responsible for parsing it.
type StatusResponse struct {
	JSON types.String
}

func (StatusResponse) ID() types.VarInt    { return 0x00 }
func (StatusResponse) Phase() packet.Phase { return packet.Status }
func (StatusResponse) Bound() packet.Bound { return packet.Clientbound }

func (p *StatusResponse) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadString(0)
	if err != nil {
		return fmt.Errorf("json: %w", err)
	}
	p.JSON = v
	return nil
}

func (p *StatusResponse) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteString(p.JSON); err != nil {
		return fmt.Errorf("json: %w", err)
	}
	return nil
}

// PongResponse echoes a PingRequest's payload back to the client.
type PongResponse struct {
	Payload types.Int64
}

func (PongResponse) ID() types.VarInt    { return 0x01 }
func (PongResponse) Phase() packet.Phase { return packet.Status }
func (PongResponse) Bound() packet.Bound { return packet.Clientbound }

func (p *PongResponse) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadInt64()
	if err != nil {
		return fmt.Errorf("payload: %w", err)
	}
	p.Payload = v
	return nil
}

func (p *PongResponse) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteInt64(p.Payload); err != nil {
		return fmt.Errorf("payload: %w", err)
	}
	return nil
}
