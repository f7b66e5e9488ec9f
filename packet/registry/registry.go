// Package registry maps (phase, bound, id) triples to packet factories, and
// drives decode/encode tracing through the mclog logger the way the
// teacher's BaseTCP traces every frame it sends or receives.
package registry

import (
	"fmt"

	"github.com/kestrel-mc/mc767/mclog"
	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/packet/c2s"
	"github.com/kestrel-mc/mc767/packet/s2c"
	"github.com/kestrel-mc/mc767/types"
)

// Factory returns a fresh, zero-valued Packet ready to be decoded into.
type Factory func() packet.Packet

type key struct {
	phase packet.Phase
	bound packet.Bound
	id    types.VarInt
}

var factories = map[key]Factory{}

func register(p packet.Phase, b packet.Bound, id types.VarInt, f Factory) {
	k := key{phase: p, bound: b, id: id}
	if _, exists := factories[k]; exists {
		panic(fmt.Sprintf("registry: duplicate registration for phase=%s bound=%s id=0x%02X", p, b, int32(id)))
	}
	factories[k] = f
}

func init() {
	register(packet.Handshake, packet.Serverbound, 0x00, func() packet.Packet { return &c2s.Handshake{} })

	register(packet.Status, packet.Serverbound, 0x00, func() packet.Packet { return &c2s.StatusRequest{} })
	register(packet.Status, packet.Serverbound, 0x01, func() packet.Packet { return &c2s.PingRequest{} })
	register(packet.Status, packet.Clientbound, 0x00, func() packet.Packet { return &s2c.StatusResponse{} })
	register(packet.Status, packet.Clientbound, 0x01, func() packet.Packet { return &s2c.PongResponse{} })

	register(packet.Login, packet.Serverbound, 0x00, func() packet.Packet { return &c2s.LoginStart{} })
	register(packet.Login, packet.Serverbound, 0x02, func() packet.Packet { return &c2s.LoginPluginResponse{} })
	register(packet.Login, packet.Serverbound, 0x03, func() packet.Packet { return &c2s.LoginAcknowledged{} })
	register(packet.Login, packet.Serverbound, 0x04, func() packet.Packet { return &c2s.LoginCookieResponse{} })
	register(packet.Login, packet.Clientbound, 0x00, func() packet.Packet { return &s2c.LoginDisconnect{} })
	register(packet.Login, packet.Clientbound, 0x01, func() packet.Packet { return &s2c.EncryptionRequest{} })
	register(packet.Login, packet.Clientbound, 0x02, func() packet.Packet { return &s2c.LoginSuccess{} })
	register(packet.Login, packet.Clientbound, 0x03, func() packet.Packet { return &s2c.SetCompression{} })
	register(packet.Login, packet.Clientbound, 0x04, func() packet.Packet { return &s2c.LoginPluginRequest{} })
	register(packet.Login, packet.Clientbound, 0x05, func() packet.Packet { return &s2c.LoginCookieRequest{} })

	register(packet.Configuration, packet.Serverbound, 0x00, func() packet.Packet { return &c2s.ClientInformation{} })
	register(packet.Configuration, packet.Serverbound, 0x01, func() packet.Packet { return &c2s.ConfigurationCookieResponse{} })
	register(packet.Configuration, packet.Serverbound, 0x02, func() packet.Packet { return &c2s.PluginMessage{} })
	register(packet.Configuration, packet.Serverbound, 0x03, func() packet.Packet { return &c2s.AcknowledgeFinishConfiguration{} })
	register(packet.Configuration, packet.Serverbound, 0x04, func() packet.Packet { return &c2s.ConfigurationKeepAlive{} })
	register(packet.Configuration, packet.Serverbound, 0x05, func() packet.Packet { return &c2s.Pong{} })
	register(packet.Configuration, packet.Serverbound, 0x06, func() packet.Packet { return &c2s.ResourcePackResponse{} })
	register(packet.Configuration, packet.Serverbound, 0x07, func() packet.Packet { return &c2s.KnownClientPacks{} })
	register(packet.Configuration, packet.Clientbound, 0x00, func() packet.Packet { return &s2c.ConfigurationCookieRequest{} })
	register(packet.Configuration, packet.Clientbound, 0x01, func() packet.Packet { return &s2c.ConfigurationPluginMessage{} })
	register(packet.Configuration, packet.Clientbound, 0x02, func() packet.Packet { return &s2c.ConfigurationDisconnect{} })
	register(packet.Configuration, packet.Clientbound, 0x03, func() packet.Packet { return &s2c.FinishConfiguration{} })
	register(packet.Configuration, packet.Clientbound, 0x04, func() packet.Packet { return &s2c.ConfigurationKeepAlive{} })
	register(packet.Configuration, packet.Clientbound, 0x05, func() packet.Packet { return &s2c.Ping{} })
	register(packet.Configuration, packet.Clientbound, 0x06, func() packet.Packet { return &s2c.ResetChat{} })
	register(packet.Configuration, packet.Clientbound, 0x07, func() packet.Packet { return &s2c.RegistryData{} })
	register(packet.Configuration, packet.Clientbound, 0x08, func() packet.Packet { return &s2c.RemoveResourcePack{} })
	register(packet.Configuration, packet.Clientbound, 0x09, func() packet.Packet { return &s2c.AddResourcePack{} })
	register(packet.Configuration, packet.Clientbound, 0x0A, func() packet.Packet { return &s2c.StoreCookie{} })
	register(packet.Configuration, packet.Clientbound, 0x0C, func() packet.Packet { return &s2c.FeatureFlags{} })
	register(packet.Configuration, packet.Clientbound, 0x0E, func() packet.Packet { return &s2c.KnownServerPacks{} })

	register(packet.Play, packet.Serverbound, 0x00, func() packet.Packet { return &c2s.ConfirmTeleportation{} })
	register(packet.Play, packet.Serverbound, 0x01, func() packet.Packet { return &c2s.PlayCookieResponse{} })
	register(packet.Play, packet.Serverbound, 0x02, func() packet.Packet { return &c2s.ChangeDifficulty{} })
	register(packet.Play, packet.Serverbound, 0x0A, func() packet.Packet { return &c2s.ClientCommand{} })
	register(packet.Play, packet.Serverbound, 0x14, func() packet.Packet { return &c2s.PlayPluginMessage{} })
	register(packet.Play, packet.Serverbound, 0x1A, func() packet.Packet { return &c2s.PlayKeepAlive{} })
	register(packet.Play, packet.Serverbound, 0x1C, func() packet.Packet { return &c2s.SetPlayerPosition{} })
	register(packet.Play, packet.Serverbound, 0x33, func() packet.Packet { return &c2s.SetHeldItem{} })
	register(packet.Play, packet.Clientbound, 0x00, func() packet.Packet { return &s2c.BundleDelimiter{} })
	register(packet.Play, packet.Clientbound, 0x01, func() packet.Packet { return &s2c.SpawnEntity{} })
	register(packet.Play, packet.Clientbound, 0x0B, func() packet.Packet { return &s2c.ChangeDifficulty{} })
	register(packet.Play, packet.Clientbound, 0x1D, func() packet.Packet { return &s2c.PlayDisconnect{} })
	register(packet.Play, packet.Clientbound, 0x26, func() packet.Packet { return &s2c.PlayKeepAlive{} })
	register(packet.Play, packet.Clientbound, 0x2B, func() packet.Packet { return &s2c.Login{} })
	register(packet.Play, packet.Clientbound, 0x38, func() packet.Packet { return &s2c.PlayerAbilities{} })
	register(packet.Play, packet.Clientbound, 0x40, func() packet.Packet { return &s2c.SynchronizePlayerPosition{} })
}

// Lookup returns a fresh Packet for the given phase, direction and id, or
// false if no variant is registered.
func Lookup(p packet.Phase, b packet.Bound, id types.VarInt) (packet.Packet, bool) {
	f, ok := factories[key{phase: p, bound: b, id: id}]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Decode builds the packet registered for (phase, bound, id) and reads body
// into it. Unknown ids return ErrUnknownPacket, leaving the caller (the conn
// state machine) to decide whether that is fatal for the current phase.
func Decode(p packet.Phase, b packet.Bound, id types.VarInt, body []byte, log *mclog.Logger) (packet.Packet, error) {
	pkt, ok := Lookup(p, b, id)
	if !ok {
		log.Debug("<- recv: phase=%s bound=%s id=0x%02X unknown, %d bytes: %s", p, b, int32(id), len(body), mclog.HexSnippet(body, 100))
		return nil, &ErrUnknownPacket{Phase: p, Bound: b, ID: id}
	}
	buf := types.NewReader(body)
	if err := pkt.Read(buf); err != nil {
		return nil, fmt.Errorf("decode phase=%s bound=%s id=0x%02X: %w", p, b, int32(id), err)
	}
	if log.DebugEnabled() {
		log.Debug("<- recv: phase=%s bound=%s id=0x%02X %T %d bytes: %s", p, b, int32(id), pkt, len(body), mclog.HexSnippet(body, 100))
	}
	return pkt, nil
}

// Encode writes a packet's body and logs the outbound trace line.
func Encode(p packet.Packet, log *mclog.Logger) ([]byte, error) {
	body, err := packet.Encode(p)
	if err != nil {
		return nil, fmt.Errorf("encode phase=%s bound=%s id=0x%02X: %w", p.Phase(), p.Bound(), int32(p.ID()), err)
	}
	if log.DebugEnabled() {
		log.Debug("-> send: phase=%s bound=%s id=0x%02X %T %d bytes: %s", p.Phase(), p.Bound(), int32(p.ID()), p, len(body), mclog.HexSnippet(body, 100))
	}
	return body, nil
}

// ErrUnknownPacket is returned by Decode when no packet type is registered
// for the given (phase, bound, id) triple.
type ErrUnknownPacket struct {
	Phase packet.Phase
	Bound packet.Bound
	ID    types.VarInt
}

func (e *ErrUnknownPacket) Error() string {
	return fmt.Sprintf("registry: unknown packet phase=%s bound=%s id=0x%02X", e.Phase, e.Bound, int32(e.ID))
}
