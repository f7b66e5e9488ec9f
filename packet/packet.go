// Package packet defines the packet catalogue for the connection state
// machine: the Phase/Bound discriminators, the Packet interface every
// concrete packet implements, and the per-phase sub-packages (c2s, s2c)
// that hold the actual wire types.
package packet

import "github.com/kestrel-mc/mc767/types"

// Phase identifies which of the protocol's five connection phases a
// packet belongs to. Packet IDs are only unique within a (Phase, Bound)
// pair, never globally.
type Phase int

const (
	Handshake Phase = iota
	Status
	Login
	Configuration
	Play
)

// String returns the phase's lowercase name, as used in log lines.
func (p Phase) String() string {
	switch p {
	case Handshake:
		return "handshake"
	case Status:
		return "status"
	case Login:
		return "login"
	case Configuration:
		return "configuration"
	case Play:
		return "play"
	default:
		return "unknown"
	}
}

// Bound identifies the direction a packet travels.
type Bound int

const (
	// Serverbound packets are sent by this client to the server (C2S).
	Serverbound Bound = iota
	// Clientbound packets are sent by the server to this client (S2C).
	Clientbound
)

func (b Bound) String() string {
	if b == Serverbound {
		return "serverbound"
	}
	return "clientbound"
}

// Packet is implemented by every concrete wire packet type. ID, Phase and
// Bound are static per packet type and do not depend on the receiver's
// field values; Read/Write operate on the packet's body only, never the
// outer frame (see the frame package for the length/compression prefix).
type Packet interface {
	ID() types.VarInt
	Phase() Phase
	Bound() Bound
	Read(buf *types.PacketBuffer) error
	Write(buf *types.PacketBuffer) error
}

// Encode serializes a packet's body (its fields, without the packet ID) into
// a single byte slice; the ID travels separately as frame.Frame.PacketID.
func Encode(p Packet) ([]byte, error) {
	buf := types.NewWriter()
	if err := p.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
