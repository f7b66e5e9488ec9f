// Package conn implements the client-side connection state machine:
// Handshake, Status, Login, Configuration and Play, threading
// compression, cookies, resource packs and keepalive bookkeeping through a
// per-connection object rather than process globals.
package conn

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/kestrel-mc/mc767/frame"
	"github.com/kestrel-mc/mc767/mclog"
	"github.com/kestrel-mc/mc767/packet"
	"github.com/kestrel-mc/mc767/packet/registry"
	"github.com/kestrel-mc/mc767/types"
)

// Phase mirrors packet.Phase for callers that only need to know where the
// connection currently is without importing the packet package.
type Phase = packet.Phase

// Conn is a single client-side session against a Java Edition server.
type Conn struct {
	netConn net.Conn
	opts    Options
	log     *mclog.Logger

	phase                packet.Phase
	compressionThreshold int

	// warnedUnknown records packet ids we've already logged once as
	// unrecognized during Play, so repeated occurrences don't spam the log.
	warnedUnknown map[unknownKey]bool

	// cookies holds cookies this client has stored via StoreCookie, so a
	// later CookieRequest for the same key can be answered from memory.
	cookies map[string][]byte

	// resourcePacks tracks offered packs by UUID for RemoveResourcePack
	// bookkeeping (distinguishing a single removal from remove-all).
	resourcePacks map[types.UUID]struct{}

	// Position/rotation tracked for teleport-flag resolution.
	pos        types.DoubleVec3
	yaw, pitch types.Float32
}

type unknownKey struct {
	phase packet.Phase
	id    types.VarInt
}

// Dial resolves address (following SRV records the way a vanilla client
// does when no port is given), connects over TCP, and returns a Conn
// positioned at the Handshake phase.
func Dial(address string, opts Options) (*Conn, error) {
	opts = opts.withDefaults()

	resolved, err := resolveAddress(address)
	if err != nil {
		return nil, fmt.Errorf("resolve address: %w", err)
	}

	netConn, err := net.DialTimeout("tcp", resolved, opts.ConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", resolved, err)
	}
	if tc, ok := netConn.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}

	log := mclog.New()
	if opts.Debug {
		log.SetLevel(mclog.LevelDebug)
	}

	c := &Conn{
		netConn:              netConn,
		opts:                 opts,
		log:                  log,
		phase:                packet.Handshake,
		compressionThreshold: -1,
		warnedUnknown: make(map[unknownKey]bool),
		cookies:       make(map[string][]byte),
		resourcePacks: make(map[types.UUID]struct{}),
	}
	return c, nil
}

// Close closes the underlying TCP connection.
func (c *Conn) Close() error {
	return c.netConn.Close()
}

// Phase reports the connection's current protocol phase.
func (c *Conn) Phase() packet.Phase { return c.phase }

// resolveAddress mirrors the teacher's SRV-record lookup: if address has no
// explicit port, query _minecraft._tcp.<host> before falling back to 25565.
func resolveAddress(address string) (string, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		host = address
		port = ""
	}
	if port != "" {
		return net.JoinHostPort(host, port), nil
	}
	if _, srvRecords, err := net.LookupSRV("minecraft", "tcp", host); err == nil && len(srvRecords) > 0 {
		srv := srvRecords[0]
		target := strings.TrimSuffix(srv.Target, ".")
		return net.JoinHostPort(target, strconv.Itoa(int(srv.Port))), nil
	}
	return net.JoinHostPort(host, "25565"), nil
}

// send encodes and writes a packet, applying the connection's current
// compression threshold.
func (c *Conn) send(p packet.Packet) error {
	body, err := registry.Encode(p, c.log)
	if err != nil {
		return err
	}
	f := &frame.Frame{PacketID: p.ID(), Data: body}
	return frame.WriteFrame(c.netConn, f, c.compressionThreshold)
}

// recv reads one frame and decodes it against the given bound (the
// direction we expect to receive in). Unknown ids return
// *registry.ErrUnknownPacket; callers in Login/Configuration treat that as
// fatal, Play tolerates it.
func (c *Conn) recv(bound packet.Bound) (packet.Packet, error) {
	if err := c.netConn.SetReadDeadline(time.Now().Add(c.opts.ReadTimeout)); err != nil {
		return nil, fmt.Errorf("set read deadline: %w", err)
	}
	f, err := frame.ReadFrame(c.netConn, c.compressionThreshold)
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}
	return registry.Decode(c.phase, bound, f.PacketID, f.Data, c.log)
}

// logUnknownOnce reports an unrecognized packet id at Warn level the first
// time it is seen in the current phase, then stays silent for repeats.
func (c *Conn) logUnknownOnce(id types.VarInt) {
	k := unknownKey{phase: c.phase, id: id}
	if c.warnedUnknown[k] {
		return
	}
	c.warnedUnknown[k] = true
	c.log.Warn("phase=%s: skipping unrecognized packet id=0x%02X", c.phase, int32(id))
}
