package s2c

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/types"
)

// LoginDisconnect (Login) carries the reason the server refused the connection,
// decoded from a JSON document into a types.TextComponent.
type LoginDisconnect struct {
	Reason types.TextComponent
}

func (LoginDisconnect) ID() types.VarInt    { return 0x00 }
func (LoginDisconnect) Phase() packet.Phase { return packet.Login }
func (LoginDisconnect) Bound() packet.Bound { return packet.Clientbound }

func (p *LoginDisconnect) Read(buf *types.PacketBuffer) error {
	s, err := buf.ReadString(262144)
	if err != nil {
		return fmt.Errorf("reason: %w", err)
	}
	var v types.TextComponent
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return fmt.Errorf("reason: %w", err)
	}
	p.Reason = v
	return nil
}

func (p *LoginDisconnect) Write(buf *types.PacketBuffer) error {
	data, err := json.Marshal(p.Reason)
	if err != nil {
		return fmt.Errorf("reason: %w", err)
	}
	if err := buf.WriteString(types.String(data)); err != nil {
		return fmt.Errorf("reason: %w", err)
	}
	return nil
}

// EncryptionRequest starts the online-mode key exchange. Online-mode
// authentication is out of scope; the connection state machine rejects this
// packet with a StateError rather than attempting the handshake.
type EncryptionRequest struct {
	ServerID    types.String
	PublicKey   types.ByteArray
	VerifyToken types.ByteArray
}

func (EncryptionRequest) ID() types.VarInt    { return 0x01 }
func (EncryptionRequest) Phase() packet.Phase { return packet.Login }
func (EncryptionRequest) Bound() packet.Bound { return packet.Clientbound }

func (p *EncryptionRequest) Read(buf *types.PacketBuffer) error {
	var err error
	if p.ServerID, err = buf.ReadString(20); err != nil {
		return fmt.Errorf("server id: %w", err)
	}
	if p.PublicKey, err = buf.ReadByteArray(1024); err != nil {
		return fmt.Errorf("public key: %w", err)
	}
	if p.VerifyToken, err = buf.ReadByteArray(1024); err != nil {
		return fmt.Errorf("verify token: %w", err)
	}
	return nil
}

func (p *EncryptionRequest) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteString(p.ServerID); err != nil {
		return fmt.Errorf("server id: %w", err)
	}
	if err := buf.WriteByteArray(p.PublicKey); err != nil {
		return fmt.Errorf("public key: %w", err)
	}
	if err := buf.WriteByteArray(p.VerifyToken); err != nil {
		return fmt.Errorf("verify token: %w", err)
	}
	return nil
}

// LoginSuccess finalizes login with the server-assigned game profile.
type LoginSuccess struct {
	Profile types.GameProfile
}

func (LoginSuccess) ID() types.VarInt    { return 0x02 }
func (LoginSuccess) Phase() packet.Phase { return packet.Login }
func (LoginSuccess) Bound() packet.Bound { return packet.Clientbound }

func (p *LoginSuccess) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadGameProfile()
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	p.Profile = v
	return nil
}

func (p *LoginSuccess) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteGameProfile(p.Profile); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	return nil
}

// SetCompression enables packet compression for every frame that follows,
// with Threshold as the minimum uncompressed size a frame must reach before
// the sender actually compresses it.
type SetCompression struct {
	Threshold types.VarInt
}

func (SetCompression) ID() types.VarInt    { return 0x03 }
func (SetCompression) Phase() packet.Phase { return packet.Login }
func (SetCompression) Bound() packet.Bound { return packet.Clientbound }

func (p *SetCompression) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadVarInt()
	if err != nil {
		return fmt.Errorf("threshold: %w", err)
	}
	p.Threshold = v
	return nil
}

func (p *SetCompression) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteVarInt(p.Threshold); err != nil {
		return fmt.Errorf("threshold: %w", err)
	}
	return nil
}

// LoginPluginRequest asks the client to answer on a custom plugin channel.
// Unsupported channels must still be answered with Successful=false.
type LoginPluginRequest struct {
	MessageID types.VarInt
	Channel   types.Identifier
	Data      types.ByteArray
}

func (LoginPluginRequest) ID() types.VarInt    { return 0x04 }
func (LoginPluginRequest) Phase() packet.Phase { return packet.Login }
func (LoginPluginRequest) Bound() packet.Bound { return packet.Clientbound }

func (p *LoginPluginRequest) Read(buf *types.PacketBuffer) error {
	var err error
	if p.MessageID, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("message id: %w", err)
	}
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	if p.Data, err = io.ReadAll(buf.Reader()); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	return nil
}

func (p *LoginPluginRequest) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteVarInt(p.MessageID); err != nil {
		return fmt.Errorf("message id: %w", err)
	}
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	if _, err := buf.Write(p.Data); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	return nil
}

// LoginCookieRequest asks the client to return a previously stored cookie by key.
type LoginCookieRequest struct {
	Key types.Identifier
}

func (LoginCookieRequest) ID() types.VarInt    { return 0x05 }
func (LoginCookieRequest) Phase() packet.Phase { return packet.Login }
func (LoginCookieRequest) Bound() packet.Bound { return packet.Clientbound }

func (p *LoginCookieRequest) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadIdentifier()
	if err != nil {
		return fmt.Errorf("key: %w", err)
	}
	p.Key = v
	return nil
}

func (p *LoginCookieRequest) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Key); err != nil {
		return fmt.Errorf("key: %w", err)
	}
	return nil
}
