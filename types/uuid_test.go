package types_test

import (
	"bytes"
	"testing"

	ns "github.com/kestrel-mc/mc767/types"
)

// UUID wire format: 16 raw bytes, big-endian, no length prefix.

type uuidFixture struct {
	name  string
	raw   [16]byte
	str   string
	value ns.UUID
	msb   int64
	lsb   int64
}

var uuidFixtures = []uuidFixture{
	{
		name:  "nil",
		raw:   [16]byte{},
		str:   "00000000-0000-0000-0000-000000000000",
		value: ns.NilUUID,
	},
	{
		name: "standard",
		raw: [16]byte{
			0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4,
			0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00,
		},
		str: "550e8400-e29b-41d4-a716-446655440000",
		value: ns.UUID{
			0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4,
			0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00,
		},
		msb: 0x550e8400e29b41d4,
		lsb: -0x58e9bb99aabbffff - 1, // 0xa716446655440000 as signed
	},
	{
		name:  "all ones",
		raw:   [16]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		str:   "ffffffff-ffff-ffff-ffff-ffffffffffff",
		value: ns.UUID{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		msb:   -1,
		lsb:   -1,
	},
}

func TestUUIDWireRoundTrip(t *testing.T) {
	for _, tc := range uuidFixtures {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ns.NewReader(tc.raw[:]).ReadUUID()
			if err != nil {
				t.Fatalf("ReadUUID() error = %v", err)
			}
			if got != tc.value {
				t.Errorf("decoded %v, want %v", got, tc.value)
			}

			buf := ns.NewWriter()
			if err := buf.WriteUUID(tc.value); err != nil {
				t.Fatalf("WriteUUID() error = %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tc.raw[:]) {
				t.Errorf("encoded %x, want %x", buf.Bytes(), tc.raw)
			}
		})
	}
}

func TestUUIDStringRoundTrip(t *testing.T) {
	for _, tc := range uuidFixtures {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ns.UUIDFromString(tc.str)
			if err != nil {
				t.Fatalf("UUIDFromString() error = %v", err)
			}
			if parsed != tc.value {
				t.Errorf("UUIDFromString(%q) = %v, want %v", tc.str, parsed, tc.value)
			}
			if got := tc.value.String(); got != tc.str {
				t.Errorf("String() = %q, want %q", got, tc.str)
			}
		})
	}
}

func TestUUIDFromStringAcceptsBareHex(t *testing.T) {
	got, err := ns.UUIDFromString("550e8400e29b41d4a716446655440000")
	if err != nil {
		t.Fatalf("UUIDFromString() error = %v", err)
	}
	want, _ := ns.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	if got != want {
		t.Errorf("bare-hex parse = %v, want %v", got, want)
	}
}

func TestUUIDInt64Halves(t *testing.T) {
	for _, tc := range uuidFixtures {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.value.MostSignificantBits(); got != tc.msb {
				t.Errorf("MostSignificantBits() = %d, want %d", got, tc.msb)
			}
			if got := tc.value.LeastSignificantBits(); got != tc.lsb {
				t.Errorf("LeastSignificantBits() = %d, want %d", got, tc.lsb)
			}
			if got := ns.UUIDFromInt64s(tc.msb, tc.lsb); got != tc.value {
				t.Errorf("UUIDFromInt64s(%d, %d) = %v, want %v", tc.msb, tc.lsb, got, tc.value)
			}
		})
	}
}

func TestUUIDFromStringRejectsMalformed(t *testing.T) {
	invalid := []string{
		"550e8400",                               // too short
		"550e8400-e29b-41d4-a716-44665544000g",   // non-hex digit
		"550e8400-e29b-41d4-a716-4466554400000",  // one digit too many
	}
	for _, s := range invalid {
		if _, err := ns.UUIDFromString(s); err == nil {
			t.Errorf("UUIDFromString(%q) should error", s)
		}
	}
}

func TestUUIDIsNil(t *testing.T) {
	if !ns.NilUUID.IsNil() {
		t.Error("NilUUID.IsNil() should be true")
	}
	if (ns.UUID{0x01}).IsNil() {
		t.Error("a UUID with a set byte should not report IsNil()")
	}
}

func TestValidateUUID(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"550e8400e29b41d4a716446655440000", true},
		{"550e8400-e29b-41d4-a716", false},
		{"550e8400e29b41d4a71644665544000", false}, // 31 chars
		{"not-a-uuid-at-all", false},
	}
	for _, tc := range cases {
		if got := ns.ValidateUUID(tc.s); got != tc.want {
			t.Errorf("ValidateUUID(%q) = %v, want %v", tc.s, got, tc.want)
		}
	}
}
