package c2s

import (
	"fmt"
	"io"

	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/types"
)

// LoginStart begins the login sequence with the client's username and UUID.
type LoginStart struct {
	Name       types.String
	PlayerUUID types.UUID
}

func (LoginStart) ID() types.VarInt    { return 0x00 }
func (LoginStart) Phase() packet.Phase { return packet.Login }
func (LoginStart) Bound() packet.Bound { return packet.Serverbound }

func (p *LoginStart) Read(buf *types.PacketBuffer) error {
	var err error
	if p.Name, err = buf.ReadString(16); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	if p.PlayerUUID, err = buf.ReadUUID(); err != nil {
		return fmt.Errorf("player uuid: %w", err)
	}
	return nil
}

func (p *LoginStart) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteString(p.Name); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	if err := buf.WriteUUID(p.PlayerUUID); err != nil {
		return fmt.Errorf("player uuid: %w", err)
	}
	return nil
}

// LoginPluginResponse answers a server's LoginPluginRequest. Since custom
// plugin channels are out of scope, Successful is always false and Data
// empty; the message id must still be echoed.
type LoginPluginResponse struct {
	MessageID  types.VarInt
	Successful types.Boolean
	Data       types.ByteArray
}

func (LoginPluginResponse) ID() types.VarInt    { return 0x02 }
func (LoginPluginResponse) Phase() packet.Phase { return packet.Login }
func (LoginPluginResponse) Bound() packet.Bound { return packet.Serverbound }

func (p *LoginPluginResponse) Read(buf *types.PacketBuffer) error {
	var err error
	if p.MessageID, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("message id: %w", err)
	}
	if p.Successful, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("successful: %w", err)
	}
	if p.Successful {
		if p.Data, err = io.ReadAll(buf.Reader()); err != nil {
			return fmt.Errorf("data: %w", err)
		}
	}
	return nil
}

func (p *LoginPluginResponse) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteVarInt(p.MessageID); err != nil {
		return fmt.Errorf("message id: %w", err)
	}
	if err := buf.WriteBool(p.Successful); err != nil {
		return fmt.Errorf("successful: %w", err)
	}
	if p.Successful {
		if _, err := buf.Write(p.Data); err != nil {
			return fmt.Errorf("data: %w", err)
		}
	}
	return nil
}

// LoginAcknowledged tells the server the client is ready to move into the
// Configuration phase, having processed LoginSuccess.
type LoginAcknowledged struct{}

func (LoginAcknowledged) ID() types.VarInt            { return 0x03 }
func (LoginAcknowledged) Phase() packet.Phase         { return packet.Login }
func (LoginAcknowledged) Bound() packet.Bound         { return packet.Serverbound }
func (*LoginAcknowledged) Read(*types.PacketBuffer) error  { return nil }
func (*LoginAcknowledged) Write(*types.PacketBuffer) error { return nil }

// LoginCookieResponse answers a server's CookieRequest during Login.
type LoginCookieResponse struct {
	Key     types.Identifier
	Payload types.PrefixedOptional[types.ByteArray]
}

func (LoginCookieResponse) ID() types.VarInt    { return 0x04 }
func (LoginCookieResponse) Phase() packet.Phase { return packet.Login }
func (LoginCookieResponse) Bound() packet.Bound { return packet.Serverbound }

func (p *LoginCookieResponse) Read(buf *types.PacketBuffer) error {
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

func (p *LoginCookieResponse) Write(buf *types.PacketBuffer) error {
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
