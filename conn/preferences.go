package conn

import (
	"github.com/kestrel-mc/mc767/packet/c2s"
	"github.com/kestrel-mc/mc767/types"
)

// Preferences holds the client-information defaults sent as the first
// packet of the Configuration phase.
type Preferences struct {
	Locale              string
	ViewDistance        int8
	ChatMode            c2s.ChatMode
	ChatColors          bool
	SkinParts           uint8
	MainHand            c2s.MainHand
	TextFiltering       bool
	AllowServerListings bool
}

// DefaultPreferences returns the preference set sent when the caller supplies
// none: locale en_GB, view distance 8, chat enabled with colors, all skin
// parts shown, right main hand, no text filtering, server listings allowed.
func DefaultPreferences() Preferences {
	return Preferences{
		Locale:              "en_GB",
		ViewDistance:        8,
		ChatMode:            c2s.ChatModeEnabled,
		ChatColors:          true,
		SkinParts:           0x7F,
		MainHand:            c2s.MainHandRight,
		TextFiltering:       false,
		AllowServerListings: true,
	}
}

func (p Preferences) toPacket() c2s.ClientInformation {
	return c2s.ClientInformation{
		Locale:              types.String(p.Locale),
		ViewDistance:        types.Int8(p.ViewDistance),
		ChatMode:            p.ChatMode,
		ChatColors:          types.Boolean(p.ChatColors),
		SkinParts:           types.Uint8(p.SkinParts),
		MainHand:            p.MainHand,
		TextFiltering:       types.Boolean(p.TextFiltering),
		AllowServerListings: types.Boolean(p.AllowServerListings),
	}
}
