package conn

import (
	"errors"
	"fmt"

	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/packet/c2s"
	"github.com/kestrel-mc/mc767/packet/registry"
	"github.com/kestrel-mc/mc767/packet/s2c"
	"github.com/kestrel-mc/mc767/text"
)

// PlayEvent is handed to a Play loop's callback for every packet except the
// ones it consumes internally (keepalive, bundle delimiters); teleports are
// applied first and then forwarded too, letting callers react to
// world/entity state without reimplementing the loop.
type PlayEvent struct {
	Packet packet.Packet
}

// Play drives the Play phase loop: it answers KeepAlive, applies
// SynchronizePlayerPosition teleports (tracking the resolved position so
// later relative teleports compose correctly), buffers packets between
// BundleDelimiter pairs, skips unrecognized packet ids, and forwards every
// other packet (bundled ones in order, once the closing delimiter arrives) to
// onEvent; KeepAlive and BundleDelimiter packets are not forwarded. It never
// returns nil: a server-initiated Disconnect moves the connection back to
// the Handshake phase and returns *Disconnected, and a read failure
// (including the caller closing the connection) or an error from onEvent is
// returned as an error.
func Play(c *Conn, onEvent func(PlayEvent) error) error {
	if c.phase != packet.Play {
		return &StateError{Kind: ErrPhaseMismatch, Phase: c.phase.String(), Reason: "Play must follow a successful Configuration"}
	}

	var bundling bool
	var bundle []packet.Packet

	emit := func(p packet.Packet) error {
		if bundling {
			bundle = append(bundle, p)
			return nil
		}
		if onEvent == nil {
			return nil
		}
		return onEvent(PlayEvent{Packet: p})
	}

	for {
		pkt, err := c.recv(packet.Clientbound)
		if err != nil {
			var unk *registry.ErrUnknownPacket
			if errors.As(err, &unk) {
				c.logUnknownOnce(unk.ID)
				continue
			}
			return fmt.Errorf("play: recv: %w", err)
		}

		switch p := pkt.(type) {
		case *s2c.BundleDelimiter:
			if bundling {
				bundling = false
				for _, bp := range bundle {
					if onEvent != nil {
						if err := onEvent(PlayEvent{Packet: bp}); err != nil {
							return err
						}
					}
				}
				bundle = nil
			} else {
				bundling = true
			}
		case *s2c.PlayKeepAlive:
			if err := c.send(&c2s.PlayKeepAlive{KeepAliveID: p.KeepAliveID}); err != nil {
				return fmt.Errorf("send play keep alive: %w", err)
			}
		case *s2c.SynchronizePlayerPosition:
			c.pos, c.yaw, c.pitch = p.Apply(c.pos, c.yaw, c.pitch)
			if err := c.send(&c2s.ConfirmTeleportation{TeleportID: p.TeleportID}); err != nil {
				return fmt.Errorf("send confirm teleportation: %w", err)
			}
			if err := emit(pkt); err != nil {
				return err
			}
		case *s2c.PlayDisconnect:
			c.phase = packet.Handshake
			return &Disconnected{Reason: text.Render(p.Reason)}
		default:
			if err := emit(pkt); err != nil {
				return err
			}
		}
	}
}

// Position returns the client's last-known position and rotation, as
// resolved by the most recent SynchronizePlayerPosition.
func (c *Conn) Position() (x, y, z float64, yaw, pitch float32) {
	return float64(c.pos.X), float64(c.pos.Y), float64(c.pos.Z), float32(c.yaw), float32(c.pitch)
}
