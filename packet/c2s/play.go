package c2s

import (
	"fmt"
	"io"

	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/types"
)

// ConfirmTeleportation acknowledges a SynchronizePlayerPosition by echoing
// its teleport id.
type ConfirmTeleportation struct {
	TeleportID types.VarInt
}

func (ConfirmTeleportation) ID() types.VarInt    { return 0x00 }
func (ConfirmTeleportation) Phase() packet.Phase { return packet.Play }
func (ConfirmTeleportation) Bound() packet.Bound { return packet.Serverbound }

func (p *ConfirmTeleportation) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadVarInt()
	if err != nil {
		return fmt.Errorf("teleport id: %w", err)
	}
	p.TeleportID = v
	return nil
}

func (p *ConfirmTeleportation) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteVarInt(p.TeleportID); err != nil {
		return fmt.Errorf("teleport id: %w", err)
	}
	return nil
}

// PlayCookieResponse answers a server's CookieRequest during Play.
type PlayCookieResponse struct {
	Key     types.Identifier
	Payload types.PrefixedOptional[types.ByteArray]
}

func (PlayCookieResponse) ID() types.VarInt    { return 0x01 }
func (PlayCookieResponse) Phase() packet.Phase { return packet.Play }
func (PlayCookieResponse) Bound() packet.Bound { return packet.Serverbound }

func (p *PlayCookieResponse) Read(buf *types.PacketBuffer) error {
	var err error
	if p.Key, err = buf.ReadIdentifier(); err != nil {
		return fmt.Errorf("key: %w", err)
	}
	if err := p.Payload.DecodeWith(buf, func(b *types.PacketBuffer) (types.ByteArray, error) {
		return b.ReadByteArray(5120)
	}); err != nil {
		return fmt.Errorf("payload: %w", err)
	}
	return nil
}

func (p *PlayCookieResponse) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Key); err != nil {
		return fmt.Errorf("key: %w", err)
	}
	if err := p.Payload.EncodeWith(buf, func(b *types.PacketBuffer, v types.ByteArray) error {
		return b.WriteByteArray(v)
	}); err != nil {
		return fmt.Errorf("payload: %w", err)
	}
	return nil
}

// ChangeDifficulty requests a difficulty change; the server is free to
// ignore it if the requesting player lacks operator status.
type ChangeDifficulty struct {
	Difficulty types.Uint8
}

func (ChangeDifficulty) ID() types.VarInt    { return 0x02 }
func (ChangeDifficulty) Phase() packet.Phase { return packet.Play }
func (ChangeDifficulty) Bound() packet.Bound { return packet.Serverbound }

func (p *ChangeDifficulty) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadUint8()
	if err != nil {
		return fmt.Errorf("difficulty: %w", err)
	}
	p.Difficulty = v
	return nil
}

func (p *ChangeDifficulty) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteUint8(p.Difficulty); err != nil {
		return fmt.Errorf("difficulty: %w", err)
	}
	return nil
}

// PlayKeepAlive must echo the id from the most recent clientbound PlayKeepAlive.
type PlayKeepAlive struct {
	KeepAliveID types.Int64
}

func (PlayKeepAlive) ID() types.VarInt    { return 0x1A }
func (PlayKeepAlive) Phase() packet.Phase { return packet.Play }
func (PlayKeepAlive) Bound() packet.Bound { return packet.Serverbound }

func (p *PlayKeepAlive) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadInt64()
	if err != nil {
		return fmt.Errorf("keep alive id: %w", err)
	}
	p.KeepAliveID = v
	return nil
}

func (p *PlayKeepAlive) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteInt64(p.KeepAliveID); err != nil {
		return fmt.Errorf("keep alive id: %w", err)
	}
	return nil
}

// SetPlayerPosition reports the player's absolute position and whether they
// are touching the ground.
type SetPlayerPosition struct {
	Pos      types.DoubleVec3
	OnGround types.Boolean
}

func (SetPlayerPosition) ID() types.VarInt    { return 0x1C }
func (SetPlayerPosition) Phase() packet.Phase { return packet.Play }
func (SetPlayerPosition) Bound() packet.Bound { return packet.Serverbound }

func (p *SetPlayerPosition) Read(buf *types.PacketBuffer) error {
	pos, err := types.DecodeDoubleVec3(buf.Reader())
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	p.Pos = pos
	if p.OnGround, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("on ground: %w", err)
	}
	return nil
}

func (p *SetPlayerPosition) Write(buf *types.PacketBuffer) error {
	if err := p.Pos.Encode(buf.Writer()); err != nil {
		return fmt.Errorf("position: %w", err)
	}
	if err := buf.WriteBool(p.OnGround); err != nil {
		return fmt.Errorf("on ground: %w", err)
	}
	return nil
}

// SetHeldItem selects the player's active hotbar slot (0-8).
type SetHeldItem struct {
	Slot types.Int16
}

func (SetHeldItem) ID() types.VarInt    { return 0x33 }
func (SetHeldItem) Phase() packet.Phase { return packet.Play }
func (SetHeldItem) Bound() packet.Bound { return packet.Serverbound }

func (p *SetHeldItem) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadInt16()
	if err != nil {
		return fmt.Errorf("slot: %w", err)
	}
	p.Slot = v
	return nil
}

func (p *SetHeldItem) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteInt16(p.Slot); err != nil {
		return fmt.Errorf("slot: %w", err)
	}
	return nil
}

// PlayPluginMessage carries raw bytes on a named plugin channel during Play.
type PlayPluginMessage struct {
	Channel types.Identifier
	Data    types.ByteArray
}

func (PlayPluginMessage) ID() types.VarInt    { return 0x14 }
func (PlayPluginMessage) Phase() packet.Phase { return packet.Play }
func (PlayPluginMessage) Bound() packet.Bound { return packet.Serverbound }

func (p *PlayPluginMessage) Read(buf *types.PacketBuffer) error {
	var err error
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	if p.Data, err = io.ReadAll(buf.Reader()); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	return nil
}

func (p *PlayPluginMessage) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	if _, err := buf.Write(p.Data); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	return nil
}

// ClientCommand is sent by the client to request respawn or statistics,
// keyed by ActionID (0 = perform respawn, 1 = request statistics).
type ClientCommand struct {
	ActionID types.VarInt
}

func (ClientCommand) ID() types.VarInt    { return 0x0A }
func (ClientCommand) Phase() packet.Phase { return packet.Play }
func (ClientCommand) Bound() packet.Bound { return packet.Serverbound }

func (p *ClientCommand) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadVarInt()
	if err != nil {
		return fmt.Errorf("action id: %w", err)
	}
	p.ActionID = v
	return nil
}

func (p *ClientCommand) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteVarInt(p.ActionID); err != nil {
		return fmt.Errorf("action id: %w", err)
	}
	return nil
}
