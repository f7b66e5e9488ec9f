package s2c

import (
	"fmt"

	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/types"
)

// BundleDelimiter marks the start or end of a run of packets that must be
// applied to client state atomically (e.g. multi-entity spawns in one
// tick). A second delimiter closes the run opened by the first.
type BundleDelimiter struct{}

func (BundleDelimiter) ID() types.VarInt            { return 0x00 }
func (BundleDelimiter) Phase() packet.Phase         { return packet.Play }
func (BundleDelimiter) Bound() packet.Bound         { return packet.Clientbound }
func (*BundleDelimiter) Read(*types.PacketBuffer) error  { return nil }
func (*BundleDelimiter) Write(*types.PacketBuffer) error { return nil }

// SpawnEntity introduces a new non-player entity into the world.
type SpawnEntity struct {
	EntityID   types.VarInt
	EntityUUID types.UUID
	EntityType types.VarInt
	Pos        types.DoubleVec3
	Pitch      types.Angle
	Yaw        types.Angle
	HeadYaw    types.Angle
	Data       types.VarInt
	Velocity   types.ShortVec3
}

func (SpawnEntity) ID() types.VarInt    { return 0x01 }
func (SpawnEntity) Phase() packet.Phase { return packet.Play }
func (SpawnEntity) Bound() packet.Bound { return packet.Clientbound }

func (p *SpawnEntity) Read(buf *types.PacketBuffer) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("entity id: %w", err)
	}
	if p.EntityUUID, err = buf.ReadUUID(); err != nil {
		return fmt.Errorf("entity uuid: %w", err)
	}
	if p.EntityType, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("entity type: %w", err)
	}
	pos, err := types.DecodeDoubleVec3(buf.Reader())
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	p.Pos = pos
	if p.Pitch, err = buf.ReadAngle(); err != nil {
		return fmt.Errorf("pitch: %w", err)
	}
	if p.Yaw, err = buf.ReadAngle(); err != nil {
		return fmt.Errorf("yaw: %w", err)
	}
	if p.HeadYaw, err = buf.ReadAngle(); err != nil {
		return fmt.Errorf("head yaw: %w", err)
	}
	if p.Data, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	vel, err := types.DecodeShortVec3(buf.Reader())
	if err != nil {
		return fmt.Errorf("velocity: %w", err)
	}
	p.Velocity = vel
	return nil
}

func (p *SpawnEntity) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return fmt.Errorf("entity id: %w", err)
	}
	if err := buf.WriteUUID(p.EntityUUID); err != nil {
		return fmt.Errorf("entity uuid: %w", err)
	}
	if err := buf.WriteVarInt(p.EntityType); err != nil {
		return fmt.Errorf("entity type: %w", err)
	}
	if err := p.Pos.Encode(buf.Writer()); err != nil {
		return fmt.Errorf("position: %w", err)
	}
	if err := buf.WriteAngle(p.Pitch); err != nil {
		return fmt.Errorf("pitch: %w", err)
	}
	if err := buf.WriteAngle(p.Yaw); err != nil {
		return fmt.Errorf("yaw: %w", err)
	}
	if err := buf.WriteAngle(p.HeadYaw); err != nil {
		return fmt.Errorf("head yaw: %w", err)
	}
	if err := buf.WriteVarInt(p.Data); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if err := p.Velocity.Encode(buf.Writer()); err != nil {
		return fmt.Errorf("velocity: %w", err)
	}
	return nil
}

// ChangeDifficulty informs the client of the world's difficulty setting.
type ChangeDifficulty struct {
	Difficulty types.Uint8
	Locked     types.Boolean
}

func (ChangeDifficulty) ID() types.VarInt    { return 0x0B }
func (ChangeDifficulty) Phase() packet.Phase { return packet.Play }
func (ChangeDifficulty) Bound() packet.Bound { return packet.Clientbound }

func (p *ChangeDifficulty) Read(buf *types.PacketBuffer) error {
	var err error
	if p.Difficulty, err = buf.ReadUint8(); err != nil {
		return fmt.Errorf("difficulty: %w", err)
	}
	if p.Locked, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("locked: %w", err)
	}
	return nil
}

func (p *ChangeDifficulty) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteUint8(p.Difficulty); err != nil {
		return fmt.Errorf("difficulty: %w", err)
	}
	if err := buf.WriteBool(p.Locked); err != nil {
		return fmt.Errorf("locked: %w", err)
	}
	return nil
}

// PlayDisconnect carries the reason the server closed an established Play
// session.
type PlayDisconnect struct {
	Reason types.TextComponent
}

func (PlayDisconnect) ID() types.VarInt    { return 0x1D }
func (PlayDisconnect) Phase() packet.Phase { return packet.Play }
func (PlayDisconnect) Bound() packet.Bound { return packet.Clientbound }

func (p *PlayDisconnect) Read(buf *types.PacketBuffer) error {
	v, err := buf.ReadTextComponent()
	if err != nil {
		return fmt.Errorf("reason: %w", err)
	}
	p.Reason = v
	return nil
}

func (p *PlayDisconnect) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteTextComponent(p.Reason); err != nil {
		return fmt.Errorf("reason: %w", err)
	}
	return nil
}

// PlayKeepAlive must be echoed back via the serverbound PlayKeepAlive packet
// within the connection's read timeout or the server will drop the
// connection as unresponsive.
type PlayKeepAlive struct {
	KeepAliveID types.Int64
}

func (PlayKeepAlive) ID() types.VarInt    { return 0x26 }
func (PlayKeepAlive) Phase() packet.Phase { return packet.Play }
func (PlayKeepAlive) Bound() packet.Bound { return packet.Clientbound }

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

// TeleportFlags is a bitmask over SynchronizePlayerPosition's fields: a set
// bit means the corresponding value is relative to the player's current
// state rather than absolute.
type TeleportFlags uint8

const (
	TeleportRelativeX TeleportFlags = 1 << iota
	TeleportRelativeY
	TeleportRelativeZ
	TeleportRelativeYaw
	TeleportRelativePitch
)

// Has reports whether the flag bit is set.
func (f TeleportFlags) Has(bit TeleportFlags) bool { return f&bit != 0 }

// SynchronizePlayerPosition authoritatively repositions the player. The
// client must reply with ConfirmTeleportation carrying the same TeleportID.
type SynchronizePlayerPosition struct {
	Pos        types.DoubleVec3
	Yaw, Pitch types.Float32
	Flags      TeleportFlags
	TeleportID types.VarInt
}

func (SynchronizePlayerPosition) ID() types.VarInt    { return 0x40 }
func (SynchronizePlayerPosition) Phase() packet.Phase { return packet.Play }
func (SynchronizePlayerPosition) Bound() packet.Bound { return packet.Clientbound }

func (p *SynchronizePlayerPosition) Read(buf *types.PacketBuffer) error {
	pos, err := types.DecodeDoubleVec3(buf.Reader())
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	p.Pos = pos
	if p.Yaw, err = buf.ReadFloat32(); err != nil {
		return fmt.Errorf("yaw: %w", err)
	}
	if p.Pitch, err = buf.ReadFloat32(); err != nil {
		return fmt.Errorf("pitch: %w", err)
	}
	flags, err := buf.ReadUint8()
	if err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	p.Flags = TeleportFlags(flags)
	if p.TeleportID, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("teleport id: %w", err)
	}
	return nil
}

func (p *SynchronizePlayerPosition) Write(buf *types.PacketBuffer) error {
	if err := p.Pos.Encode(buf.Writer()); err != nil {
		return fmt.Errorf("position: %w", err)
	}
	if err := buf.WriteFloat32(p.Yaw); err != nil {
		return fmt.Errorf("yaw: %w", err)
	}
	if err := buf.WriteFloat32(p.Pitch); err != nil {
		return fmt.Errorf("pitch: %w", err)
	}
	if err := buf.WriteUint8(types.Uint8(p.Flags)); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	if err := buf.WriteVarInt(p.TeleportID); err != nil {
		return fmt.Errorf("teleport id: %w", err)
	}
	return nil
}

// Apply resolves this teleport against the player's current position and
// rotation, honoring the per-axis relative flags.
func (p *SynchronizePlayerPosition) Apply(cur types.DoubleVec3, curYaw, curPitch types.Float32) (types.DoubleVec3, types.Float32, types.Float32) {
	out := cur
	if p.Flags.Has(TeleportRelativeX) {
		out.X += p.Pos.X
	} else {
		out.X = p.Pos.X
	}
	if p.Flags.Has(TeleportRelativeY) {
		out.Y += p.Pos.Y
	} else {
		out.Y = p.Pos.Y
	}
	if p.Flags.Has(TeleportRelativeZ) {
		out.Z += p.Pos.Z
	} else {
		out.Z = p.Pos.Z
	}
	yaw := p.Yaw
	if p.Flags.Has(TeleportRelativeYaw) {
		yaw = curYaw + p.Yaw
	}
	pitch := p.Pitch
	if p.Flags.Has(TeleportRelativePitch) {
		pitch = curPitch + p.Pitch
	}
	return out, yaw, pitch
}

// PlayerAbilities reports the player's current fly/invulnerability state.
type PlayerAbilities struct {
	Flags                types.Uint8
	FlyingSpeed          types.Float32
	FieldOfViewModifier  types.Float32
}

func (PlayerAbilities) ID() types.VarInt    { return 0x38 }
func (PlayerAbilities) Phase() packet.Phase { return packet.Play }
func (PlayerAbilities) Bound() packet.Bound { return packet.Clientbound }

func (p *PlayerAbilities) Read(buf *types.PacketBuffer) error {
	var err error
	if p.Flags, err = buf.ReadUint8(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	if p.FlyingSpeed, err = buf.ReadFloat32(); err != nil {
		return fmt.Errorf("flying speed: %w", err)
	}
	if p.FieldOfViewModifier, err = buf.ReadFloat32(); err != nil {
		return fmt.Errorf("field of view modifier: %w", err)
	}
	return nil
}

func (p *PlayerAbilities) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteUint8(p.Flags); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	if err := buf.WriteFloat32(p.FlyingSpeed); err != nil {
		return fmt.Errorf("flying speed: %w", err)
	}
	if err := buf.WriteFloat32(p.FieldOfViewModifier); err != nil {
		return fmt.Errorf("field of view modifier: %w", err)
	}
	return nil
}

// Login (join game) hands off world metadata and the player's entity id as
// the first packet of the Play phase.
type Login struct {
	EntityID            types.Int32
	IsHardcore          types.Boolean
	DimensionNames      types.PrefixedArray[types.Identifier]
	MaxPlayers          types.VarInt
	ViewDistance        types.VarInt
	SimulationDistance  types.VarInt
	ReducedDebugInfo    types.Boolean
	EnableRespawnScreen types.Boolean
	DoLimitedCrafting   types.Boolean
	DimensionType       types.VarInt
	DimensionName       types.Identifier
	HashedSeed          types.Int64
	GameMode            types.Uint8
	PreviousGameMode    types.Int8
	IsDebug             types.Boolean
	IsFlat              types.Boolean
	DeathDimensionName  types.PrefixedOptional[types.Identifier]
	DeathLocation       types.PrefixedOptional[types.Position]
	PortalCooldown      types.VarInt
	EnforcesSecureChat  types.Boolean
}

func (Login) ID() types.VarInt    { return 0x2B }
func (Login) Phase() packet.Phase { return packet.Play }
func (Login) Bound() packet.Bound { return packet.Clientbound }

func (p *Login) Read(buf *types.PacketBuffer) error {
	var err error
	if p.EntityID, err = buf.ReadInt32(); err != nil {
		return fmt.Errorf("entity id: %w", err)
	}
	if p.IsHardcore, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("is hardcore: %w", err)
	}
	if err := p.DimensionNames.DecodeWith(buf, func(b *types.PacketBuffer) (types.Identifier, error) {
		return b.ReadIdentifier()
	}); err != nil {
		return fmt.Errorf("dimension names: %w", err)
	}
	if p.MaxPlayers, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("max players: %w", err)
	}
	if p.ViewDistance, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("view distance: %w", err)
	}
	if p.SimulationDistance, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("simulation distance: %w", err)
	}
	if p.ReducedDebugInfo, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("reduced debug info: %w", err)
	}
	if p.EnableRespawnScreen, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("enable respawn screen: %w", err)
	}
	if p.DoLimitedCrafting, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("do limited crafting: %w", err)
	}
	if p.DimensionType, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("dimension type: %w", err)
	}
	if p.DimensionName, err = buf.ReadIdentifier(); err != nil {
		return fmt.Errorf("dimension name: %w", err)
	}
	if p.HashedSeed, err = buf.ReadInt64(); err != nil {
		return fmt.Errorf("hashed seed: %w", err)
	}
	if p.GameMode, err = buf.ReadUint8(); err != nil {
		return fmt.Errorf("game mode: %w", err)
	}
	if p.PreviousGameMode, err = buf.ReadInt8(); err != nil {
		return fmt.Errorf("previous game mode: %w", err)
	}
	if p.IsDebug, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("is debug: %w", err)
	}
	if p.IsFlat, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("is flat: %w", err)
	}
	if err := p.DeathDimensionName.DecodeWith(buf, func(b *types.PacketBuffer) (types.Identifier, error) {
		return b.ReadIdentifier()
	}); err != nil {
		return fmt.Errorf("death dimension name: %w", err)
	}
	if err := p.DeathLocation.DecodeWith(buf, func(b *types.PacketBuffer) (types.Position, error) {
		return b.ReadPosition()
	}); err != nil {
		return fmt.Errorf("death location: %w", err)
	}
	if p.PortalCooldown, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("portal cooldown: %w", err)
	}
	if p.EnforcesSecureChat, err = buf.ReadBool(); err != nil {
		return fmt.Errorf("enforces secure chat: %w", err)
	}
	return nil
}

func (p *Login) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteInt32(p.EntityID); err != nil {
		return fmt.Errorf("entity id: %w", err)
	}
	if err := buf.WriteBool(p.IsHardcore); err != nil {
		return fmt.Errorf("is hardcore: %w", err)
	}
	if err := p.DimensionNames.EncodeWith(buf, func(b *types.PacketBuffer, v types.Identifier) error {
		return b.WriteIdentifier(v)
	}); err != nil {
		return fmt.Errorf("dimension names: %w", err)
	}
	if err := buf.WriteVarInt(p.MaxPlayers); err != nil {
		return fmt.Errorf("max players: %w", err)
	}
	if err := buf.WriteVarInt(p.ViewDistance); err != nil {
		return fmt.Errorf("view distance: %w", err)
	}
	if err := buf.WriteVarInt(p.SimulationDistance); err != nil {
		return fmt.Errorf("simulation distance: %w", err)
	}
	if err := buf.WriteBool(p.ReducedDebugInfo); err != nil {
		return fmt.Errorf("reduced debug info: %w", err)
	}
	if err := buf.WriteBool(p.EnableRespawnScreen); err != nil {
		return fmt.Errorf("enable respawn screen: %w", err)
	}
	if err := buf.WriteBool(p.DoLimitedCrafting); err != nil {
		return fmt.Errorf("do limited crafting: %w", err)
	}
	if err := buf.WriteVarInt(p.DimensionType); err != nil {
		return fmt.Errorf("dimension type: %w", err)
	}
	if err := buf.WriteIdentifier(p.DimensionName); err != nil {
		return fmt.Errorf("dimension name: %w", err)
	}
	if err := buf.WriteInt64(p.HashedSeed); err != nil {
		return fmt.Errorf("hashed seed: %w", err)
	}
	if err := buf.WriteUint8(p.GameMode); err != nil {
		return fmt.Errorf("game mode: %w", err)
	}
	if err := buf.WriteInt8(p.PreviousGameMode); err != nil {
		return fmt.Errorf("previous game mode: %w", err)
	}
	if err := buf.WriteBool(p.IsDebug); err != nil {
		return fmt.Errorf("is debug: %w", err)
	}
	if err := buf.WriteBool(p.IsFlat); err != nil {
		return fmt.Errorf("is flat: %w", err)
	}
	if err := p.DeathDimensionName.EncodeWith(buf, func(b *types.PacketBuffer, v types.Identifier) error {
		return b.WriteIdentifier(v)
	}); err != nil {
		return fmt.Errorf("death dimension name: %w", err)
	}
	if err := p.DeathLocation.EncodeWith(buf, func(b *types.PacketBuffer, v types.Position) error {
		return b.WritePosition(v)
	}); err != nil {
		return fmt.Errorf("death location: %w", err)
	}
	if err := buf.WriteVarInt(p.PortalCooldown); err != nil {
		return fmt.Errorf("portal cooldown: %w", err)
	}
	if err := buf.WriteBool(p.EnforcesSecureChat); err != nil {
		return fmt.Errorf("enforces secure chat: %w", err)
	}
	return nil
}
