package status_test

import (
	"testing"

	"github.com/kestrel-mc/mc767/status"
)

const samplePNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNk+A8AAQUBAScY42YAAAAASUVORK5CYII="

func TestParseBasicStatus(t *testing.T) {
	st, err := status.Parse(`{
		"version": {"name": "1.21.1", "protocol": 767},
		"players": {"max": 20, "online": 3, "sample": [{"name": "Notch", "id": "069a79f4-44e9-4726-a5be-fca90e38aaf5"}]},
		"description": "A Minecraft Server",
		"enforcesSecureChat": true
	}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if st.Version.Protocol != 767 || st.Version.Name != "1.21.1" {
		t.Fatalf("got version %+v, want protocol 767 name 1.21.1", st.Version)
	}
	if got, want := st.PlayersCount(), "3/20"; got != want {
		t.Fatalf("PlayersCount() = %q, want %q", got, want)
	}
	if names := st.PlayersList(); len(names) != 1 || names[0] != "Notch" {
		t.Fatalf("PlayersList() = %v, want [Notch]", names)
	}
	desc, err := st.DescriptionText()
	if err != nil {
		t.Fatalf("DescriptionText() error = %v", err)
	}
	if desc != "A Minecraft Server" {
		t.Fatalf("DescriptionText() = %q, want %q", desc, "A Minecraft Server")
	}
	if !st.EnforcesSecureChat() {
		t.Fatal("EnforcesSecureChat() = false, want true")
	}
}

func TestParseTextComponentDescription(t *testing.T) {
	st, err := status.Parse(`{
		"version": {"name": "1.21.1", "protocol": 767},
		"players": {"max": 20, "online": 0},
		"description": {"text": "Hello ", "extra": [{"text": "world"}]}
	}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	desc, err := st.DescriptionText()
	if err != nil {
		t.Fatalf("DescriptionText() error = %v", err)
	}
	if desc != "Hello world" {
		t.Fatalf("DescriptionText() = %q, want %q", desc, "Hello world")
	}
}

func TestParseNoSample(t *testing.T) {
	st, err := status.Parse(`{"version":{"name":"1.21.1","protocol":767},"players":{"max":20,"online":0},"description":"empty"}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if names := st.PlayersList(); names != nil {
		t.Fatalf("PlayersList() = %v, want nil", names)
	}
	if st.EnforcesSecureChat() {
		t.Fatal("EnforcesSecureChat() = true, want false when absent")
	}
}

func TestFaviconBytesValidPNG(t *testing.T) {
	st, err := status.Parse(`{"version":{"name":"1.21.1","protocol":767},"players":{"max":20,"online":0},"description":"x","favicon":"data:image/png;base64,` + samplePNGBase64 + `"}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	data, err := st.FaviconBytes()
	if err != nil {
		t.Fatalf("FaviconBytes() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("FaviconBytes() returned no data")
	}
}

func TestFaviconBytesMissing(t *testing.T) {
	st, err := status.Parse(`{"version":{"name":"1.21.1","protocol":767},"players":{"max":20,"online":0},"description":"x"}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	data, err := st.FaviconBytes()
	if err != nil || data != nil {
		t.Fatalf("FaviconBytes() = (%v, %v), want (nil, nil)", data, err)
	}
}

func TestFaviconBytesMalformed(t *testing.T) {
	st, err := status.Parse(`{"version":{"name":"1.21.1","protocol":767},"players":{"max":20,"online":0},"description":"x","favicon":"not-a-data-uri"}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := st.FaviconBytes(); err == nil {
		t.Fatal("expected an error for a malformed favicon")
	}
}
