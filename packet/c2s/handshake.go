package c2s

import (
	"fmt"

	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/types"
)

// NextState is the requested phase to switch into after a Handshake packet,
// as sent on the wire (1 = Status, 2 = Login).
type NextState types.VarInt

const (
	NextStateStatus NextState = 1
	NextStateLogin  NextState = 2
)

// Handshake is the single packet of the Handshake phase. It selects the
// protocol version, target address, and the phase to transition into.
type Handshake struct {
	ProtocolVersion types.VarInt
	ServerAddress   types.String
	ServerPort      types.Uint16
	NextState       NextState
}

func (Handshake) ID() types.VarInt     { return 0x00 }
func (Handshake) Phase() packet.Phase  { return packet.Handshake }
func (Handshake) Bound() packet.Bound  { return packet.Serverbound }

func (p *Handshake) Read(buf *types.PacketBuffer) error {
	var err error
	if p.ProtocolVersion, err = buf.ReadVarInt(); err != nil {
		return fmt.Errorf("protocol version: %w", err)
	}
	if p.ServerAddress, err = buf.ReadString(255); err != nil {
		return fmt.Errorf("server address: %w", err)
	}
	if p.ServerPort, err = buf.ReadUint16(); err != nil {
		return fmt.Errorf("server port: %w", err)
	}
	next, err := buf.ReadVarInt()
	if err != nil {
		return fmt.Errorf("next state: %w", err)
	}
	p.NextState = NextState(next)
	return nil
}

func (p *Handshake) Write(buf *types.PacketBuffer) error {
	if err := buf.WriteVarInt(p.ProtocolVersion); err != nil {
		return fmt.Errorf("protocol version: %w", err)
	}
	if err := buf.WriteString(p.ServerAddress); err != nil {
		return fmt.Errorf("server address: %w", err)
	}
	if err := buf.WriteUint16(p.ServerPort); err != nil {
		return fmt.Errorf("server port: %w", err)
	}
	if err := buf.WriteVarInt(types.VarInt(p.NextState)); err != nil {
		return fmt.Errorf("next state: %w", err)
	}
	return nil
}

// NewHandshake builds a Handshake packet for protocol 767 (game 1.21.1).
func NewHandshake(address string, port uint16, next NextState) *Handshake {
	return &Handshake{
		ProtocolVersion: 767,
		ServerAddress:   types.String(address),
		ServerPort:      types.Uint16(port),
		NextState:       next,
	}
}
