package s2c

import (
	"fmt"
	"io"

	"github.com/kestrel-mc/mc767/nbt"
	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/types"
)

// ConfigurationCookieRequest asks the client to return a previously stored cookie by key.
type ConfigurationCookieRequest struct {
	Key types.Identifier
}

func (ConfigurationCookieRequest) ID() types.VarInt    { return 0x00 }
func (ConfigurationCookieRequest) Phase() packet.Phase { return packet.Configuration }
func (ConfigurationCookieRequest) Bound() packet.Bound { return packet.Clientbound }

func (p *ConfigurationCookieRequest) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadIdentifier()
	if err != nil {
		return fmt.Errorf("key: %w", err)
	}
	p.Key = v
	return nil
}

func (p *ConfigurationCookieRequest) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Key); err != nil {
		return fmt.Errorf("key: %w", err)
	}
	return nil
}

// ConfigurationPluginMessage carries raw bytes on a named plugin channel.
type ConfigurationPluginMessage struct {
	Channel types.Identifier
	Data    types.ByteArray
}

func (ConfigurationPluginMessage) ID() types.VarInt    { return 0x01 }
func (ConfigurationPluginMessage) Phase() packet.Phase { return packet.Configuration }
func (ConfigurationPluginMessage) Bound() packet.Bound { return packet.Clientbound }

func (p *ConfigurationPluginMessage) Read(buf *types.PacketBuffer) error {
	var err error
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	if p.Data, err = io.ReadAll(buf.Reader()); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	return nil
}

func (p *ConfigurationPluginMessage) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	if _, err := buf.Write(p.Data); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	return nil
}

// ConfigurationDisconnect (Configuration) carries the reason the server closed the
// connection mid-configuration.
type ConfigurationDisconnect struct {
	Reason types.TextComponent
}

func (ConfigurationDisconnect) ID() types.VarInt    { return 0x02 }
func (ConfigurationDisconnect) Phase() packet.Phase { return packet.Configuration }
func (ConfigurationDisconnect) Bound() packet.Bound { return packet.Clientbound }

func (p *ConfigurationDisconnect) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadTextComponent()
	if err != nil {
		return fmt.Errorf("reason: %w", err)
	}
	p.Reason = v
	return nil
}

func (p *ConfigurationDisconnect) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteTextComponent(p.Reason); err != nil {
		return fmt.Errorf("reason: %w", err)
	}
	return nil
}

// FinishConfiguration signals the server is ready for the client to move
// into the Play phase, once acknowledged.
type FinishConfiguration struct{}

func (FinishConfiguration) ID() types.VarInt            { return 0x03 }
func (FinishConfiguration) Phase() packet.Phase         { return packet.Configuration }
func (FinishConfiguration) Bound() packet.Bound         { return packet.Clientbound }
func (*FinishConfiguration) Read(*types.PacketBuffer) error  { return nil }
func (*FinishConfiguration) Write(*types.PacketBuffer) error { return nil }

// ConfigurationKeepAlive must be echoed back via the c2s ConfigurationKeepAlive packet within the
// connection's read timeout or the server will drop the connection.
type ConfigurationKeepAlive struct {
	KeepAliveID types.Int64
}

func (ConfigurationKeepAlive) ID() types.VarInt    { return 0x04 }
func (ConfigurationKeepAlive) Phase() packet.Phase { return packet.Configuration }
func (ConfigurationKeepAlive) Bound() packet.Bound { return packet.Clientbound }

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

// Ping must be answered with a c2s Pong carrying the same id.
type Ping struct {
	ID types.Int32
}

func (Ping) ID() types.VarInt    { return 0x05 }
func (Ping) Phase() packet.Phase { return packet.Configuration }
func (Ping) Bound() packet.Bound { return packet.Clientbound }

func (p *Ping) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadInt32()
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	p.ID = v
	return nil
}

func (p *Ping) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteInt32(p.ID); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	return nil
}

// ResetChat clears the client's chat history; it carries no fields.
type ResetChat struct{}

func (ResetChat) ID() types.VarInt            { return 0x06 }
func (ResetChat) Phase() packet.Phase         { return packet.Configuration }
func (ResetChat) Bound() packet.Bound         { return packet.Clientbound }
func (*ResetChat) Read(*types.PacketBuffer) error  { return nil }
func (*ResetChat) Write(*types.PacketBuffer) error { return nil }

// RegistryEntry is one dynamic-registry entry, with optional NBT overrides.
type RegistryEntry struct {
	ID   types.Identifier
	Data types.PrefixedOptional[nbt.Tag]
}

func decodeRegistryEntry(buf *types.PacketBuffer) (RegistryEntry, error) {
	var e RegistryEntry
	var err error
	if e.ID, err = buf.ReadIdentifier(); err != nil {
		return e, fmt.Errorf("id: %w", err)
	}
	if err := e.Data.DecodeWith(buf, func(b *types.PacketBuffer) (nbt.Tag, error) {
		tag, _, err := nbt.NewReaderFrom(b.Reader()).ReadTag(true)
		return tag, err
	}); err != nil {
		return e, fmt.Errorf("data: %w", err)
	}
	return e, nil
}

func encodeRegistryEntry(buf *types.PacketBuffer, e RegistryEntry) error {
	if err := buf.WriteIdentifier(e.ID); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	return e.Data.EncodeWith(buf, func(b *types.PacketBuffer, tag nbt.Tag) error {
		return nbt.NewWriterTo(b.Writer()).WriteTag(tag, "", true)
	})
}

// RegistryData replaces the contents of a single dynamic registry.
type RegistryData struct {
	RegistryID types.Identifier
	Entries    types.PrefixedArray[RegistryEntry]
}

func (RegistryData) ID() types.VarInt    { return 0x07 }
func (RegistryData) Phase() packet.Phase { return packet.Configuration }
func (RegistryData) Bound() packet.Bound { return packet.Clientbound }

func (p *RegistryData) Read(buf *types.PacketBuffer) error {
	var err error
	if p.RegistryID, err = buf.ReadIdentifier(); err != nil {
		return fmt.Errorf("registry id: %w", err)
	}
	if err := p.Entries.DecodeWith(buf, decodeRegistryEntry); err != nil {
		return fmt.Errorf("entries: %w", err)
	}
	return nil
}

func (p *RegistryData) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.RegistryID); err != nil {
		return fmt.Errorf("registry id: %w", err)
	}
	if err := p.Entries.EncodeWith(buf, encodeRegistryEntry); err != nil {
		return fmt.Errorf("entries: %w", err)
	}
	return nil
}

// RemoveResourcePack removes a single pack by UUID, or every pack when no
// UUID is present.
type RemoveResourcePack struct {
	UUID types.PrefixedOptional[types.UUID]
}

func (RemoveResourcePack) ID() types.VarInt    { return 0x08 }
func (RemoveResourcePack) Phase() packet.Phase { return packet.Configuration }
func (RemoveResourcePack) Bound() packet.Bound { return packet.Clientbound }

func (p *RemoveResourcePack) Read(buf *types.PacketBuffer) error {
	return p.UUID.DecodeWith(buf, func(b *types.PacketBuffer) (types.UUID, error) {
		return b.ReadUUID()
	})
}

func (p *RemoveResourcePack) Write(buf *types.PacketBuffer) error {
	return p.UUID.EncodeWith(buf, func(b *types.PacketBuffer, v types.UUID) error {
		return b.WriteUUID(v)
	})
}

// AddResourcePack offers a pack for the client to download and apply.
type AddResourcePack struct {
	UUID          types.UUID
	URL           types.String
	Hash          types.String
	Forced        types.Boolean
	PromptMessage types.PrefixedOptional[types.TextComponent]
}

func (AddResourcePack) ID() types.VarInt    { return 0x09 }
func (AddResourcePack) Phase() packet.Phase { return packet.Configuration }
func (AddResourcePack) Bound() packet.Bound { return packet.Clientbound }

func (p *AddResourcePack) Read(buf *types.PacketBuffer) error {
	var err error
	if p.UUID, err = buf.ReadUUID(); err != nil {
		return fmt.Errorf("uuid: %w", err)
	}
	if p.URL, err = buf.ReadString(32767); err != nil {
		return fmt.Errorf("url: %w", err)
	}
	if p.Hash, err = buf.ReadString(40); err != nil {
		return fmt.Errorf("hash: %w", err)
	}
	if p.Forced, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("forced: %w", err)
	}
	if err := p.PromptMessage.DecodeWith(buf, func(b *types.PacketBuffer) (types.TextComponent, error) {
		return b.ReadTextComponent()
	}); err != nil {
		return fmt.Errorf("prompt message: %w", err)
	}
	return nil
}

func (p *AddResourcePack) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteUUID(p.UUID); err != nil {
		return fmt.Errorf("uuid: %w", err)
	}
	if err := buf.WriteString(p.URL); err != nil {
		return fmt.Errorf("url: %w", err)
	}
	if err := buf.WriteString(p.Hash); err != nil {
		return fmt.Errorf("hash: %w", err)
	}
	if err := buf.WriteBool(p.Forced); err != nil {
		return fmt.Errorf("forced: %w", err)
	}
	if err := p.PromptMessage.EncodeWith(buf, func(b *types.PacketBuffer, v types.TextComponent) error {
		return b.WriteTextComponent(v)
	}); err != nil {
		return fmt.Errorf("prompt message: %w", err)
	}
	return nil
}

// StoreCookie asks the client to persist a small payload under a key, to be
// returned verbatim on a later ConfigurationCookieRequest for the same key.
type StoreCookie struct {
	Key     types.Identifier
	Payload types.ByteArray
}

func (StoreCookie) ID() types.VarInt    { return 0x0A }
func (StoreCookie) Phase() packet.Phase { return packet.Configuration }
func (StoreCookie) Bound() packet.Bound { return packet.Clientbound }

func (p *StoreCookie) Read(buf *types.PacketBuffer) error {
	var err error
	if p.Key, err = buf.ReadIdentifier(); err != nil {
		return fmt.Errorf("key: %w", err)
	}
	if p.Payload, err = buf.ReadByteArray(5120); err != nil {
		return fmt.Errorf("payload: %w", err)
	}
	return nil
}

func (p *StoreCookie) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Key); err != nil {
		return fmt.Errorf("key: %w", err)
	}
	if err := buf.WriteByteArray(p.Payload); err != nil {
		return fmt.Errorf("payload: %w", err)
	}
	return nil
}

// FeatureFlags lists the vanilla/experimental feature sets the server has
// enabled (e.g. "minecraft:vanilla", "minecraft:bundle").
type FeatureFlags struct {
	Flags types.PrefixedArray[types.Identifier]
}

func (FeatureFlags) ID() types.VarInt    { return 0x0C }
func (FeatureFlags) Phase() packet.Phase { return packet.Configuration }
func (FeatureFlags) Bound() packet.Bound { return packet.Clientbound }

func (p *FeatureFlags) Read(buf *types.PacketBuffer) error {
	return p.Flags.DecodeWith(buf, func(b *types.PacketBuffer) (types.Identifier, error) {
		return b.ReadIdentifier()
	})
}

func (p *FeatureFlags) Write(buf *types.PacketBuffer) error {
	return p.Flags.EncodeWith(buf, func(b *types.PacketBuffer, v types.Identifier) error {
		return b.WriteIdentifier(v)
	})
}

// KnownPack identifies a data pack both sides agree is already available.
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

// KnownServerPacks lists the data packs the server has built in, inviting
// the client to reply with the subset it already has via KnownClientPacks.
type KnownServerPacks struct {
	Packs types.PrefixedArray[KnownPack]
}

func (KnownServerPacks) ID() types.VarInt    { return 0x0E }
func (KnownServerPacks) Phase() packet.Phase { return packet.Configuration }
func (KnownServerPacks) Bound() packet.Bound { return packet.Clientbound }

func (p *KnownServerPacks) Read(buf *types.PacketBuffer) error {
	return p.Packs.DecodeWith(buf, decodeKnownPack)
}

func (p *KnownServerPacks) Write(buf *types.PacketBuffer) error {
	return p.Packs.EncodeWith(buf, encodeKnownPack)
}
