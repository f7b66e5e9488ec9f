package types

import "fmt"

// ProfileProperty is a single signed property on a GameProfile — in
// practice almost always the "textures" property carrying a base64 skin/
// cape payload plus a Mojang signature.
type ProfileProperty struct {
	Name      String
	Value     String
	Signature PrefixedOptional[String]
}

func (p *ProfileProperty) Decode(buf *PacketBuffer) error {
	var err error
	if p.Name, err = buf.ReadString(64); err != nil {
		return fmt.Errorf("profile property name: %w", err)
	}
	if p.Value, err = buf.ReadString(32767); err != nil {
		return fmt.Errorf("profile property value: %w", err)
	}
	if err := p.Signature.DecodeWith(buf, readString(1024)); err != nil {
		return fmt.Errorf("profile property signature: %w", err)
	}
	return nil
}

func (p *ProfileProperty) Encode(buf *PacketBuffer) error {
	if err := buf.WriteString(p.Name); err != nil {
		return fmt.Errorf("profile property name: %w", err)
	}
	if err := buf.WriteString(p.Value); err != nil {
		return fmt.Errorf("profile property value: %w", err)
	}
	if err := p.Signature.EncodeWith(buf, writeString); err != nil {
		return fmt.Errorf("profile property signature: %w", err)
	}
	return nil
}

// readString and writeString adapt PacketBuffer's bounded string codec to
// the ElementDecoder/ElementEncoder shape PrefixedOptional/PrefixedArray
// expect, so callers don't repeat the closure at every call site.
func readString(maxLen int) ElementDecoder[String] {
	return func(b *PacketBuffer) (String, error) { return b.ReadString(maxLen) }
}

func writeString(b *PacketBuffer, v String) error { return b.WriteString(v) }

func decodeProperty(b *PacketBuffer) (ProfileProperty, error) {
	var prop ProfileProperty
	err := prop.Decode(b)
	return prop, err
}

func encodeProperty(b *PacketBuffer, prop ProfileProperty) error {
	return prop.Encode(b)
}

// GameProfile is a resolved player identity: UUID, username, and signed
// properties (skin/cape). Login Success and Player Info Update's "add
// player" action both carry one.
type GameProfile struct {
	UUID       UUID
	Username   String
	Properties PrefixedArray[ProfileProperty]
}

func (p *GameProfile) Decode(buf *PacketBuffer) error {
	var err error
	if p.UUID, err = buf.ReadUUID(); err != nil {
		return fmt.Errorf("profile uuid: %w", err)
	}
	if p.Username, err = buf.ReadString(16); err != nil {
		return fmt.Errorf("profile username: %w", err)
	}
	if err := p.Properties.DecodeWith(buf, decodeProperty); err != nil {
		return fmt.Errorf("profile properties: %w", err)
	}
	return nil
}

func (p *GameProfile) Encode(buf *PacketBuffer) error {
	if err := buf.WriteUUID(p.UUID); err != nil {
		return fmt.Errorf("profile uuid: %w", err)
	}
	if err := buf.WriteString(p.Username); err != nil {
		return fmt.Errorf("profile username: %w", err)
	}
	if err := p.Properties.EncodeWith(buf, encodeProperty); err != nil {
		return fmt.Errorf("profile properties: %w", err)
	}
	return nil
}

func (pb *PacketBuffer) ReadGameProfile() (GameProfile, error) {
	var p GameProfile
	err := p.Decode(pb)
	return p, err
}

func (pb *PacketBuffer) WriteGameProfile(p GameProfile) error {
	return p.Encode(pb)
}

// ResolvableProfileKind distinguishes the two ResolvableProfile shapes.
type ResolvableProfileKind VarInt

const (
	ProfilePartial  ResolvableProfileKind = 0
	ProfileComplete ResolvableProfileKind = 1
)

// ResolvableProfile is a profile reference that's either partial (bare
// fields the server is expected to resolve against Mojang, used e.g. for
// player head block entities) or complete (a full GameProfile plus the
// 1.21.1 cosmetic model flags added for player skin layer customization).
type ResolvableProfile struct {
	Kind ResolvableProfileKind

	PartialUsername   PrefixedOptional[String]
	PartialUUID       PrefixedOptional[UUID]
	PartialProperties PrefixedOptional[PrefixedArray[ProfileProperty]]
	PartialSignature  PrefixedOptional[String]

	CompleteProfile GameProfile
	BodyModel       PrefixedOptional[Identifier]
	CapeModel       PrefixedOptional[Identifier]
	ElytraModel     PrefixedOptional[Identifier]
	SkinModel       PrefixedOptional[VarInt] // enum: 0=wide, 1=slim
}

// NewPartialProfile builds an empty partial ResolvableProfile.
func NewPartialProfile() *ResolvableProfile {
	return &ResolvableProfile{Kind: ProfilePartial}
}

// NewCompleteProfile wraps a resolved GameProfile as a complete ResolvableProfile.
func NewCompleteProfile(profile GameProfile) *ResolvableProfile {
	return &ResolvableProfile{Kind: ProfileComplete, CompleteProfile: profile}
}

func (p *ResolvableProfile) Decode(buf *PacketBuffer) error {
	kind, err := buf.ReadVarInt()
	if err != nil {
		return fmt.Errorf("resolvable profile kind: %w", err)
	}
	p.Kind = ResolvableProfileKind(kind)

	switch p.Kind {
	case ProfilePartial:
		return p.decodePartial(buf)
	case ProfileComplete:
		return p.decodeComplete(buf)
	default:
		return fmt.Errorf("resolvable profile: unknown kind %d", p.Kind)
	}
}

func (p *ResolvableProfile) decodePartial(buf *PacketBuffer) error {
	if err := p.PartialUsername.DecodeWith(buf, readString(16)); err != nil {
		return fmt.Errorf("partial username: %w", err)
	}
	if err := p.PartialUUID.DecodeWith(buf, func(b *PacketBuffer) (UUID, error) { return b.ReadUUID() }); err != nil {
		return fmt.Errorf("partial uuid: %w", err)
	}
	if err := p.PartialProperties.DecodeWith(buf, decodePropertyArray); err != nil {
		return fmt.Errorf("partial properties: %w", err)
	}
	if err := p.PartialSignature.DecodeWith(buf, readString(1024)); err != nil {
		return fmt.Errorf("partial signature: %w", err)
	}
	return nil
}

func (p *ResolvableProfile) decodeComplete(buf *PacketBuffer) error {
	if err := p.CompleteProfile.Decode(buf); err != nil {
		return fmt.Errorf("complete profile: %w", err)
	}
	if err := p.BodyModel.DecodeWith(buf, readIdentifier); err != nil {
		return fmt.Errorf("body model: %w", err)
	}
	if err := p.CapeModel.DecodeWith(buf, readIdentifier); err != nil {
		return fmt.Errorf("cape model: %w", err)
	}
	if err := p.ElytraModel.DecodeWith(buf, readIdentifier); err != nil {
		return fmt.Errorf("elytra model: %w", err)
	}
	if err := p.SkinModel.DecodeWith(buf, func(b *PacketBuffer) (VarInt, error) { return b.ReadVarInt() }); err != nil {
		return fmt.Errorf("skin model: %w", err)
	}
	return nil
}

func (p *ResolvableProfile) Encode(buf *PacketBuffer) error {
	if err := buf.WriteVarInt(VarInt(p.Kind)); err != nil {
		return fmt.Errorf("resolvable profile kind: %w", err)
	}

	switch p.Kind {
	case ProfilePartial:
		return p.encodePartial(buf)
	case ProfileComplete:
		return p.encodeComplete(buf)
	default:
		return fmt.Errorf("resolvable profile: unknown kind %d", p.Kind)
	}
}

func (p *ResolvableProfile) encodePartial(buf *PacketBuffer) error {
	if err := p.PartialUsername.EncodeWith(buf, writeString); err != nil {
		return fmt.Errorf("partial username: %w", err)
	}
	if err := p.PartialUUID.EncodeWith(buf, func(b *PacketBuffer, v UUID) error { return b.WriteUUID(v) }); err != nil {
		return fmt.Errorf("partial uuid: %w", err)
	}
	if err := p.PartialProperties.EncodeWith(buf, encodePropertyArray); err != nil {
		return fmt.Errorf("partial properties: %w", err)
	}
	if err := p.PartialSignature.EncodeWith(buf, writeString); err != nil {
		return fmt.Errorf("partial signature: %w", err)
	}
	return nil
}

func (p *ResolvableProfile) encodeComplete(buf *PacketBuffer) error {
	if err := p.CompleteProfile.Encode(buf); err != nil {
		return fmt.Errorf("complete profile: %w", err)
	}
	if err := p.BodyModel.EncodeWith(buf, writeIdentifier); err != nil {
		return fmt.Errorf("body model: %w", err)
	}
	if err := p.CapeModel.EncodeWith(buf, writeIdentifier); err != nil {
		return fmt.Errorf("cape model: %w", err)
	}
	if err := p.ElytraModel.EncodeWith(buf, writeIdentifier); err != nil {
		return fmt.Errorf("elytra model: %w", err)
	}
	if err := p.SkinModel.EncodeWith(buf, func(b *PacketBuffer, v VarInt) error { return b.WriteVarInt(v) }); err != nil {
		return fmt.Errorf("skin model: %w", err)
	}
	return nil
}

func readIdentifier(b *PacketBuffer) (Identifier, error) { return b.ReadIdentifier() }
func writeIdentifier(b *PacketBuffer, v Identifier) error { return b.WriteIdentifier(v) }

func decodePropertyArray(b *PacketBuffer) (PrefixedArray[ProfileProperty], error) {
	var props PrefixedArray[ProfileProperty]
	err := props.DecodeWith(b, decodeProperty)
	return props, err
}

func encodePropertyArray(b *PacketBuffer, props PrefixedArray[ProfileProperty]) error {
	return props.EncodeWith(b, encodeProperty)
}

func (pb *PacketBuffer) ReadResolvableProfile() (ResolvableProfile, error) {
	var p ResolvableProfile
	err := p.Decode(pb)
	return p, err
}

func (pb *PacketBuffer) WriteResolvableProfile(p ResolvableProfile) error {
	return p.Encode(pb)
}
