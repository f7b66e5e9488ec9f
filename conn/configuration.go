package conn

import (
	"fmt"

	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/packet/c2s"
	"github.com/kestrel-mc/mc767/packet/s2c"
	"github.com/kestrel-mc/mc767/text"
	"github.com/kestrel-mc/mc767/types"
)

// Configuration drives the Configuration phase: it sends ClientInformation
// first as required, answers keepalive, ping, cookie requests, resource pack
// offers and known-pack negotiation, stores cookies, ignores plugin messages
// and the informational packets, and returns once FinishConfiguration has
// been acknowledged, leaving the connection positioned at Play. UpdateTags,
// CustomReportDetails, ServerLinks and Transfer are not in the packet
// catalogue; receiving any of them ends the phase with the recv error.
func Configuration(c *Conn) error {
	if c.phase != packet.Configuration {
		return &StateError{Kind: ErrPhaseMismatch, Phase: c.phase.String(), Reason: "Configuration must follow a successful Login"}
	}
	info := c.opts.Preferences.toPacket()
	if err := c.send(&info); err != nil {
		return fmt.Errorf("send client information: %w", err)
	}

	for {
		pkt, err := c.recv(packet.Clientbound)
		if err != nil {
			return fmt.Errorf("configuration: recv: %w", err)
		}
		switch p := pkt.(type) {
		case *s2c.ConfigurationDisconnect:
			return &StateError{Kind: ErrConfigurationFailed, Phase: c.phase.String(), Reason: text.Render(p.Reason)}
		case *s2c.ConfigurationKeepAlive:
			if err := c.send(&c2s.ConfigurationKeepAlive{KeepAliveID: p.KeepAliveID}); err != nil {
				return fmt.Errorf("send configuration keep alive: %w", err)
			}
		case *s2c.Ping:
			if err := c.send(&c2s.Pong{ID: p.ID}); err != nil {
				return fmt.Errorf("send pong: %w", err)
			}
		case *s2c.ConfigurationCookieRequest:
			if err := c.respondCookieRequestConfiguration(p.Key); err != nil {
				return err
			}
		case *s2c.StoreCookie:
			c.cookies[string(p.Key)] = append([]byte(nil), p.Payload...)
		case *s2c.ConfigurationPluginMessage:
			// No plugin channel is understood; ignored per spec.
		case *s2c.ResetChat, *s2c.RegistryData, *s2c.FeatureFlags:
			// Informational; nothing to answer.
		case *s2c.AddResourcePack:
			c.resourcePacks[p.UUID] = struct{}{}
			if err := c.send(&c2s.ResourcePackResponse{UUID: p.UUID, Result: c2s.ResourcePackAccepted}); err != nil {
				return fmt.Errorf("send resource pack response: %w", err)
			}
		case *s2c.RemoveResourcePack:
			c.applyRemoveResourcePack(p)
		case *s2c.KnownServerPacks:
			// Declare the vanilla "minecraft:core" pack known so the server
			// doesn't resend registry data this client already has baked in.
			reply := c2s.KnownClientPacks{
				Packs: types.PrefixedArray[c2s.KnownPack]{
					{Namespace: "minecraft", ID: "core", Version: "1.21.1"},
				},
			}
			if err := c.send(&reply); err != nil {
				return fmt.Errorf("send known client packs: %w", err)
			}
		case *s2c.FinishConfiguration:
			if err := c.send(&c2s.AcknowledgeFinishConfiguration{}); err != nil {
				return fmt.Errorf("send acknowledge finish configuration: %w", err)
			}
			c.phase = packet.Play
			return nil
		default:
			return &StateError{Kind: ErrConfigurationFailed, Phase: c.phase.String(), Reason: fmt.Sprintf("unexpected packet %T during Configuration", pkt)}
		}
	}
}

func (c *Conn) respondCookieRequestConfiguration(key types.Identifier) error {
	payload, ok := c.cookies[string(key)]
	resp := c2s.ConfigurationCookieResponse{Key: key}
	if ok {
		resp.Payload = types.Some(types.ByteArray(payload))
	} else {
		resp.Payload = types.None[types.ByteArray]()
	}
	if err := c.send(&resp); err != nil {
		return fmt.Errorf("send configuration cookie response: %w", err)
	}
	return nil
}

// applyRemoveResourcePack clears either a single pack or every tracked pack,
// distinguishing the two cases per the absence/presence of a UUID.
func (c *Conn) applyRemoveResourcePack(p *s2c.RemoveResourcePack) {
	if !p.UUID.Present {
		c.resourcePacks = make(map[types.UUID]struct{})
		return
	}
	delete(c.resourcePacks, p.UUID.Value)
}
