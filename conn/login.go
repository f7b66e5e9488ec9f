package conn

import (
	"fmt"

	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/packet/c2s"
	"github.com/kestrel-mc/mc767/packet/s2c"
	"github.com/kestrel-mc/mc767/text"
	"github.com/kestrel-mc/mc767/types"
)

// Login drives the connection from Handshake through the Login phase,
// ending with the connection positioned at Configuration and the player's
// GameProfile returned. name is the offline-mode username; playerUUID may
// be types.NilUUID to let the server derive one from the name (offline
// mode never needs it to be anything else).
func Login(c *Conn, host string, port uint16, name string, playerUUID types.UUID) (*types.GameProfile, error) {
	if err := c.handshake(host, port, c2s.NextStateLogin); err != nil {
		return nil, err
	}
	if err := c.send(&c2s.LoginStart{Name: types.String(name), PlayerUUID: playerUUID}); err != nil {
		return nil, fmt.Errorf("send login start: %w", err)
	}

	for {
		pkt, err := c.recv(packet.Clientbound)
		if err != nil {
			return nil, fmt.Errorf("login: recv: %w", err)
		}
		switch p := pkt.(type) {
		case *s2c.LoginDisconnect:
			return nil, &StateError{Kind: ErrLoginFailed, Phase: c.phase.String(), Reason: text.Render(p.Reason)}
		case *s2c.EncryptionRequest:
			return nil, &StateError{Kind: ErrEncryptionUnsupported, Phase: c.phase.String(), Reason: "server requires online-mode encryption"}
		case *s2c.SetCompression:
			c.compressionThreshold = int(p.Threshold)
		case *s2c.LoginPluginRequest:
			if err := c.send(&c2s.LoginPluginResponse{MessageID: p.MessageID, Successful: false}); err != nil {
				return nil, fmt.Errorf("send login plugin response: %w", err)
			}
		case *s2c.LoginCookieRequest:
			if err := c.respondCookieRequestLogin(p.Key); err != nil {
				return nil, err
			}
		case *s2c.LoginSuccess:
			if err := c.send(&c2s.LoginAcknowledged{}); err != nil {
				return nil, fmt.Errorf("send login acknowledged: %w", err)
			}
			c.phase = packet.Configuration
			profile := p.Profile
			return &profile, nil
		default:
			return nil, &StateError{Kind: ErrLoginFailed, Phase: c.phase.String(), Reason: fmt.Sprintf("unexpected packet %T during Login", pkt)}
		}
	}
}

func (c *Conn) respondCookieRequestLogin(key types.Identifier) error {
	payload, ok := c.cookies[string(key)]
	resp := c2s.LoginCookieResponse{Key: key}
	if ok {
		resp.Payload = types.Some(types.ByteArray(payload))
	} else {
		resp.Payload = types.None[types.ByteArray]()
	}
	if err := c.send(&resp); err != nil {
		return fmt.Errorf("send login cookie response: %w", err)
	}
	return nil
}
