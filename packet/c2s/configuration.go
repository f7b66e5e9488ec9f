package c2s

import (
	"fmt"
	"io"

	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/types"
)

// ChatMode mirrors the client's chat visibility preference.
type ChatMode types.VarInt

const (
	ChatModeEnabled      ChatMode = 0
	ChatModeCommandsOnly ChatMode = 1
	ChatModeHidden       ChatMode = 2
)

// MainHand mirrors the client's handedness preference.
type MainHand types.VarInt

const (
	MainHandLeft  MainHand = 0
	MainHandRight MainHand = 1
)

// ClientInformation is the first packet a client must send in the
// Configuration phase, describing locale and rendering preferences.
type ClientInformation struct {
	Locale              types.String
	ViewDistance         types.Int8
	ChatMode             ChatMode
	ChatColors           types.Boolean
	SkinParts            types.Uint8
	MainHand             MainHand
	TextFiltering        types.Boolean
	AllowServerListings  types.Boolean
}

func (ClientInformation) ID() types.VarInt    { return 0x00 }
func (ClientInformation) Phase() packet.Phase { return packet.Configuration }
func (ClientInformation) Bound() packet.Bound { return packet.Serverbound }

func (p *ClientInformation) Read(buf *types.PacketBuffer) error {
	var err error
	if p.Locale, err = buf.ReadString(16); err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	if p.ViewDistance, err = buf.ReadInt8(); err != nil {
		return fmt.Errorf("view distance: %w", err)
	}
	chatMode, err := buf.ReadVarInt()
	if err != nil {
		return fmt.Errorf("chat mode: %w", err)
	}
	p.ChatMode = ChatMode(chatMode)
	if p.ChatColors, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("chat colors: %w", err)
	}
	if p.SkinParts, err = buf.ReadUint8(); err != nil {
		return fmt.Errorf("skin parts: %w", err)
	}
	mainHand, err := buf.ReadVarInt()
	if err != nil {
		return fmt.Errorf("main hand: %w", err)
	}
	p.MainHand = MainHand(mainHand)
	if p.TextFiltering, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("text filtering: %w", err)
	}
	if p.AllowServerListings, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("allow server listings: %w", err)
	}
	return nil
}

func (p *ClientInformation) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteString(p.Locale); err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	if err := buf.WriteInt8(p.ViewDistance); err != nil {
		return fmt.Errorf("view distance: %w", err)
	}
	if err := buf.WriteVarInt(types.VarInt(p.ChatMode)); err != nil {
		return fmt.Errorf("chat mode: %w", err)
	}
	if err := buf.WriteBool(p.ChatColors); err != nil {
		return fmt.Errorf("chat colors: %w", err)
	}
	if err := buf.WriteUint8(p.SkinParts); err != nil {
		return fmt.Errorf("skin parts: %w", err)
	}
	if err := buf.WriteVarInt(types.VarInt(p.MainHand)); err != nil {
		return fmt.Errorf("main hand: %w", err)
	}
	if err := buf.WriteBool(p.TextFiltering); err != nil {
		return fmt.Errorf("text filtering: %w", err)
	}
	if err := buf.WriteBool(p.AllowServerListings); err != nil {
		return fmt.Errorf("allow server listings: %w", err)
	}
	return nil
}

// ConfigurationCookieResponse answers a server's CookieRequest during Configuration.
type ConfigurationCookieResponse struct {
	Key     types.Identifier
	Payload types.PrefixedOptional[types.ByteArray]
}

func (ConfigurationCookieResponse) ID() types.VarInt    { return 0x01 }
func (ConfigurationCookieResponse) Phase() packet.Phase { return packet.Configuration }
func (ConfigurationCookieResponse) Bound() packet.Bound { return packet.Serverbound }

func (p *ConfigurationCookieResponse) Read(buf *types.PacketBuffer) error {
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

func (p *ConfigurationCookieResponse) Write(buf *types.PacketBuffer) error {
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

// PluginMessage carries raw bytes on a named plugin channel.
type PluginMessage struct {
	Channel types.Identifier
	Data    types.ByteArray
}

func (PluginMessage) ID() types.VarInt    { return 0x02 }
func (PluginMessage) Phase() packet.Phase { return packet.Configuration }
func (PluginMessage) Bound() packet.Bound { return packet.Serverbound }

func (p *PluginMessage) Read(buf *types.PacketBuffer) error {
	var err error
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	if p.Data, err = io.ReadAll(buf.Reader()); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	return nil
}

func (p *PluginMessage) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	if _, err := buf.Write(p.Data); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	return nil
}

// AcknowledgeFinishConfiguration tells the server the client is ready to
// move into the Play phase.
type AcknowledgeFinishConfiguration struct{}

func (AcknowledgeFinishConfiguration) ID() types.VarInt            { return 0x03 }
func (AcknowledgeFinishConfiguration) Phase() packet.Phase         { return packet.Configuration }
func (AcknowledgeFinishConfiguration) Bound() packet.Bound         { return packet.Serverbound }
func (*AcknowledgeFinishConfiguration) Read(*types.PacketBuffer) error  { return nil }
func (*AcknowledgeFinishConfiguration) Write(*types.PacketBuffer) error { return nil }

// ConfigurationKeepAlive echoes the id from a clientbound ConfigurationKeepAlive during Configuration.
type ConfigurationKeepAlive struct {
	KeepAliveID types.Int64
}

func (ConfigurationKeepAlive) ID() types.VarInt    { return 0x04 }
func (ConfigurationKeepAlive) Phase() packet.Phase { return packet.Configuration }
func (ConfigurationKeepAlive) Bound() packet.Bound { return packet.Serverbound }

func (p *ConfigurationKeepAlive) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadInt64()
	if err != nil {
		return fmt.Errorf("keep alive id: %w", err)
	}
	p.KeepAliveID = v
	return nil
}

func (p *ConfigurationKeepAlive) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteInt64(p.KeepAliveID); err != nil {
		return fmt.Errorf("keep alive id: %w", err)
	}
	return nil
}

// Pong answers a clientbound Ping, echoing its timestamp.
type Pong struct {
	ID types.Int32
}

func (Pong) ID() types.VarInt     { return 0x05 }
func (Pong) Phase() packet.Phase  { return packet.Configuration }
func (Pong) Bound() packet.Bound  { return packet.Serverbound }

func (p *Pong) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadInt32()
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	p.ID = v
	return nil
}

func (p *Pong) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteInt32(p.ID); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	return nil
}

// ResourcePackResult is the client's verdict on an AddResourcePack request.
type ResourcePackResult types.VarInt

const (
	ResourcePackAccepted         ResourcePackResult = 0
	ResourcePackDeclined         ResourcePackResult = 1
	ResourcePackFailedDownload   ResourcePackResult = 2
	ResourcePackSuccessfullyLoaded ResourcePackResult = 3
	ResourcePackAccepted2        ResourcePackResult = 4
	ResourcePackDownloaded       ResourcePackResult = 5
	ResourcePackInvalidURL       ResourcePackResult = 6
	ResourcePackFailedReload     ResourcePackResult = 7
	ResourcePackDiscarded        ResourcePackResult = 8
)

// ResourcePackResponse reports the outcome of a single resource pack offer.
type ResourcePackResponse struct {
	UUID   types.UUID
	Result ResourcePackResult
}

func (ResourcePackResponse) ID() types.VarInt    { return 0x06 }
func (ResourcePackResponse) Phase() packet.Phase { return packet.Configuration }
func (ResourcePackResponse) Bound() packet.Bound { return packet.Serverbound }

func (p *ResourcePackResponse) Read(buf *types.PacketBuffer) error {
	var err error
	if p.UUID, err = buf.ReadUUID(); err != nil {
		return fmt.Errorf("uuid: %w", err)
	}
	result, err := buf.ReadVarInt()
	if err != nil {
		return fmt.Errorf("result: %w", err)
	}
	p.Result = ResourcePackResult(result)
	return nil
}

func (p *ResourcePackResponse) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteUUID(p.UUID); err != nil {
		return fmt.Errorf("uuid: %w", err)
	}
	if err := buf.WriteVarInt(types.VarInt(p.Result)); err != nil {
		return fmt.Errorf("result: %w", err)
	}
	return nil
}

// KnownPack identifies a data pack both sides agree is already available,
// letting the server skip sending its registry contents.
type KnownPack struct {
	Namespace types.String
	ID        types.String
	Version   types.String
}

func decodeKnownPack(buf *types.PacketBuffer) (KnownPack, error) {
	var kp KnownPack
	var err error
	if kp.Namespace, err = buf.ReadString(32767); err != nil {
		return kp, fmt.Errorf("namespace: %w", err)
	}
	if kp.ID, err = buf.ReadString(32767); err != nil {
		return kp, fmt.Errorf("id: %w", err)
	}
	if kp.Version, err = buf.ReadString(32767); err != nil {
		return kp, fmt.Errorf("version: %w", err)
	}
	return kp, nil
}

func encodeKnownPack(buf *types.PacketBuffer, kp KnownPack) error {
	if err := buf.WriteString(kp.Namespace); err != nil {
		return fmt.Errorf("namespace: %w", err)
	}
	if err := buf.WriteString(kp.ID); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	if err := buf.WriteString(kp.Version); err != nil {
		return fmt.Errorf("version: %w", err)
	}
	return nil
}

// KnownClientPacks tells the server which data packs this client already has
// built in, so the server may skip sending their registry data.
// conn.Configuration reports the single vanilla "minecraft:core" pack.
type KnownClientPacks struct {
	Packs types.PrefixedArray[KnownPack]
}

func (KnownClientPacks) ID() types.VarInt    { return 0x07 }
func (KnownClientPacks) Phase() packet.Phase { return packet.Configuration }
func (KnownClientPacks) Bound() packet.Bound { return packet.Serverbound }

func (p *KnownClientPacks) Read(buf *types.PacketBuffer) error {
	return p.Packs.DecodeWith(buf, decodeKnownPack)
}

func (p *KnownClientPacks) Write(buf *types.PacketBuffer) error {
	return p.Packs.EncodeWith(buf, encodeKnownPack)
}
