// Package status decodes the Server List Ping JSON document carried by
// s2c.StatusResponse into a typed record, extracting the player sample and
// validating the favicon as a real PNG before handing it back.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Server_List_Ping
package status

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"regexp"

	"github.com/kestrel-mc/mc767/types"
)

// Version identifies the server's reported game/protocol version.
type Version struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

// Player is one entry in a status response's player sample list.
type Player struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Players holds the player count and, when the server includes it, a
// sample of online players.
type Players struct {
	Max    int32    `json:"max"`
	Online int32    `json:"online"`
	Sample []Player `json:"sample"`
}

// raw mirrors the wire JSON document exactly, kept unexported since callers
// should go through Status's typed accessors instead.
type raw struct {
	Version            Version         `json:"version"`
	Players            Players         `json:"players"`
	Description        json.RawMessage `json:"description"`
	Favicon            string          `json:"favicon"`
	EnforcesSecureChat *bool           `json:"enforcesSecureChat"`
	PreviewsChat       *bool           `json:"previewsChat"`
}

// Status is the parsed form of a StatusResponse's JSON payload.
type Status struct {
	Version Version
	Players Players
	raw     raw
}

var faviconPattern = regexp.MustCompile(`^data:image/(\w+);base64,([a-zA-Z0-9+/=]*)$`)

// Parse decodes a StatusResponse.JSON string into a Status.
func Parse(jsonText string) (*Status, error) {
	var r raw
	if err := json.Unmarshal([]byte(jsonText), &r); err != nil {
		return nil, fmt.Errorf("unmarshal status json: %w", err)
	}
	return &Status{Version: r.Version, Players: r.Players, raw: r}, nil
}

// PlayersCount renders the "online/max" summary vanilla clients show.
func (s *Status) PlayersCount() string {
	return fmt.Sprintf("%d/%d", s.Players.Online, s.Players.Max)
}

// PlayersList returns the sampled online player names, or nil if the
// server omitted a sample.
func (s *Status) PlayersList() []string {
	if len(s.Players.Sample) == 0 {
		return nil
	}
	names := make([]string, len(s.Players.Sample))
	for i, p := range s.Players.Sample {
		names[i] = p.Name
	}
	return names
}

// DescriptionText renders the MOTD text component to plain text. The
// description field may be a bare string or a full text component object;
// both are accepted.
func (s *Status) DescriptionText() (string, error) {
	if len(s.raw.Description) == 0 || string(s.raw.Description) == "null" {
		return "", nil
	}
	var asString string
	if err := json.Unmarshal(s.raw.Description, &asString); err == nil {
		return asString, nil
	}
	var tc types.TextComponent
	if err := json.Unmarshal(s.raw.Description, &tc); err != nil {
		return "", fmt.Errorf("unmarshal description: %w", err)
	}
	return tc.String(), nil
}

// FaviconBytes extracts and decodes the favicon's base64 payload, then
// validates it decodes as a real PNG image before returning it. A missing
// favicon returns (nil, nil); a malformed one returns an error.
func (s *Status) FaviconBytes() ([]byte, error) {
	if s.raw.Favicon == "" {
		return nil, nil
	}
	m := faviconPattern.FindStringSubmatch(s.raw.Favicon)
	if m == nil {
		return nil, fmt.Errorf("favicon: does not match data URI pattern")
	}
	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return nil, fmt.Errorf("favicon: base64 decode: %w", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("favicon: not a valid PNG: %w", err)
	}
	return data, nil
}

// EnforcesSecureChat reports the server's enforcesSecureChat flag, if present.
func (s *Status) EnforcesSecureChat() bool {
	return s.raw.EnforcesSecureChat != nil && *s.raw.EnforcesSecureChat
}
