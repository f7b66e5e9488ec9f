package conn

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/packet/c2s"
	"github.com/kestrel-mc/mc767/packet/s2c"
	"github.com/kestrel-mc/mc767/status"
	"github.com/kestrel-mc/mc767/types"
)

// handshake sends the Handshake packet selecting next, moving the
// connection into that phase.
func (c *Conn) handshake(host string, port uint16, next c2s.NextState) error {
	if c.phase != packet.Handshake {
		return &StateError{Kind: ErrPhaseMismatch, Phase: c.phase.String(), Reason: "handshake must be the first packet sent"}
	}
	if err := c.send(c2s.NewHandshake(host, port, next)); err != nil {
		return fmt.Errorf("send handshake: %w", err)
	}
	switch next {
	case c2s.NextStateStatus:
		c.phase = packet.Status
	case c2s.NextStateLogin:
		c.phase = packet.Login
	}
	return nil
}

// Status performs a Handshake(Status) -> StatusRequest -> StatusResponse
// exchange (and an optional ping round trip for latency measurement),
// returning the server's decoded status.
func Status(address string, port uint16, opts Options) (*status.Status, time.Duration, error) {
	c, err := Dial(net.JoinHostPort(address, strconv.Itoa(int(port))), opts)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = c.Close() }()

	if err := c.handshake(address, port, c2s.NextStateStatus); err != nil {
		return nil, 0, err
	}
	if err := c.send(&c2s.StatusRequest{}); err != nil {
		return nil, 0, fmt.Errorf("send status request: %w", err)
	}

	pkt, err := c.recv(packet.Clientbound)
	if err != nil {
		return nil, 0, fmt.Errorf("recv status response: %w", err)
	}
	resp, ok := pkt.(*s2c.StatusResponse)
	if !ok {
		return nil, 0, &StateError{Kind: ErrPhaseMismatch, Phase: c.phase.String(), Reason: fmt.Sprintf("expected StatusResponse, got %T", pkt)}
	}
	st, err := status.Parse(string(resp.JSON))
	if err != nil {
		return nil, 0, fmt.Errorf("parse status json: %w", err)
	}

	payload := types.Int64(time.Now().UnixNano())
	start := time.Now()
	if err := c.send(&c2s.PingRequest{Payload: payload}); err != nil {
		return st, 0, fmt.Errorf("send ping request: %w", err)
	}
	pongPkt, err := c.recv(packet.Clientbound)
	if err != nil {
		return st, 0, fmt.Errorf("recv pong response: %w", err)
	}
	pong, ok := pongPkt.(*s2c.PongResponse)
	if !ok || pong.Payload != payload {
		return st, 0, &StateError{Kind: ErrPhaseMismatch, Phase: c.phase.String(), Reason: "pong payload mismatch"}
	}
	return st, time.Since(start), nil
}
