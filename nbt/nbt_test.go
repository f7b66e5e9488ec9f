package nbt_test

import (
	"bytes"
	"testing"

	"github.com/kestrel-mc/mc767/nbt"
)

func TestPrimitiveRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tag  nbt.Tag
	}{
		{"byte", nbt.Byte(42)},
		{"byte negative", nbt.Byte(-1)},
		{"short", nbt.Short(12345)},
		{"short negative", nbt.Short(-12345)},
		{"int", nbt.Int(123456789)},
		{"int negative", nbt.Int(-123456789)},
		{"long", nbt.Long(9223372036854775807)},
		{"long negative", nbt.Long(-9223372036854775808)},
		{"float", nbt.Float(3.14159)},
		{"double", nbt.Double(3.141592653589793)},
		{"string", nbt.String("Hello, NBT!")},
		{"string unicode", nbt.String("日本語テスト")},
		{"byte array", nbt.ByteArray{1, 2, 3, 4, 5}},
		{"int array", nbt.IntArray{1, 2, 3, 4, 5}},
		{"long array", nbt.LongArray{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/network", func(t *testing.T) {
			data, err := nbt.EncodeNetwork(nbt.Compound{"value": tt.tag})
			if err != nil {
				t.Fatalf("EncodeNetwork() error = %v", err)
			}
			decoded, err := nbt.DecodeNetwork(data)
			if err != nil {
				t.Fatalf("DecodeNetwork() error = %v", err)
			}
			c, ok := decoded.(nbt.Compound)
			if !ok {
				t.Fatalf("expected Compound, got %T", decoded)
			}
			if got := c["value"]; got.ID() != tt.tag.ID() {
				t.Errorf("tag type = %d, want %d", got.ID(), tt.tag.ID())
			}
		})

		t.Run(tt.name+"/file", func(t *testing.T) {
			data, err := nbt.EncodeFile(nbt.Compound{"value": tt.tag}, "test")
			if err != nil {
				t.Fatalf("EncodeFile() error = %v", err)
			}
			decoded, rootName, err := nbt.DecodeFile(data)
			if err != nil {
				t.Fatalf("DecodeFile() error = %v", err)
			}
			if rootName != "test" {
				t.Errorf("rootName = %q, want %q", rootName, "test")
			}
			c, ok := decoded.(nbt.Compound)
			if !ok {
				t.Fatalf("expected Compound, got %T", decoded)
			}
			if got := c["value"]; got.ID() != tt.tag.ID() {
				t.Errorf("tag type = %d, want %d", got.ID(), tt.tag.ID())
			}
		})
	}
}

// entity is a named record of scalar fields; TestMarshalUnmarshalStruct
// embeds it in a struct that adds a nested list of typed children.
type entity struct {
	Name  string  `nbt:"name"`
	X     float64 `nbt:"x"`
	Y     float64 `nbt:"y"`
	Z     float64 `nbt:"z"`
	Level int32   `nbt:"level"`
}

func TestCompoundAccessors(t *testing.T) {
	original := nbt.Compound{
		"name":  nbt.String("Steve"),
		"x":     nbt.Double(100.5),
		"y":     nbt.Double(64.0),
		"z":     nbt.Double(-200.5),
		"level": nbt.Int(42),
		"items": nbt.List{
			ElementType: nbt.TagCompound,
			Elements: []nbt.Tag{
				nbt.Compound{"id": nbt.String("minecraft:diamond"), "count": nbt.Byte(64)},
				nbt.Compound{"id": nbt.String("minecraft:stick"), "count": nbt.Byte(32)},
			},
		},
	}

	data, err := nbt.EncodeNetwork(original)
	if err != nil {
		t.Fatalf("EncodeNetwork() error = %v", err)
	}
	decoded, err := nbt.DecodeNetwork(data)
	if err != nil {
		t.Fatalf("DecodeNetwork() error = %v", err)
	}
	c := decoded.(nbt.Compound)

	if got, want := c.GetString("name"), "Steve"; got != want {
		t.Errorf("name = %q, want %q", got, want)
	}
	if got, want := c.GetDouble("x"), 100.5; got != want {
		t.Errorf("x = %v, want %v", got, want)
	}
	if got, want := c.GetInt("level"), int32(42); got != want {
		t.Errorf("level = %v, want %v", got, want)
	}
	if got := c.GetList("items"); got.Len() != 2 {
		t.Errorf("items length = %d, want 2", got.Len())
	}
	if got := c.GetString("missing"); got != "" {
		t.Errorf("missing key should zero-value, got %q", got)
	}
}

func TestMarshalUnmarshalStruct(t *testing.T) {
	type item struct {
		ID    string `nbt:"id"`
		Count int8   `nbt:"count"`
	}
	type player struct {
		entity
		Items []item `nbt:"items"`
	}

	original := player{
		entity: entity{Name: "Steve", X: 100.5, Y: 64, Z: -200.5, Level: 42},
		Items: []item{
			{ID: "minecraft:diamond", Count: 64},
			{ID: "minecraft:stick", Count: 32},
		},
	}

	data, err := nbt.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded player
	if err := nbt.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded.Name != original.Name {
		t.Errorf("Name = %q, want %q", decoded.Name, original.Name)
	}
	if decoded.X != original.X {
		t.Errorf("X = %v, want %v", decoded.X, original.X)
	}
	if decoded.Level != original.Level {
		t.Errorf("Level = %v, want %v", decoded.Level, original.Level)
	}
	if len(decoded.Items) != len(original.Items) {
		t.Fatalf("Items length = %d, want %d", len(decoded.Items), len(original.Items))
	}
	if decoded.Items[0].ID != original.Items[0].ID {
		t.Errorf("Items[0].ID = %q, want %q", decoded.Items[0].ID, original.Items[0].ID)
	}
}

// taggedName round-trips through a custom UnmarshalNBT rather than plain
// reflection, exercising the TagUnmarshaler hook generic struct decoding
// falls back to.
type taggedName struct {
	Value string
}

func (t *taggedName) UnmarshalNBT(tag nbt.Tag) error {
	s, ok := tag.(nbt.String)
	if !ok {
		return nil
	}
	t.Value = "tagged:" + string(s)
	return nil
}

func TestUnmarshalTagUnmarshaler(t *testing.T) {
	type wrapper struct {
		Name taggedName `nbt:"name"`
	}

	data, err := nbt.Marshal(struct {
		Name string `nbt:"name"`
	}{Name: "Steve"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded wrapper
	if err := nbt.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Name.Value != "tagged:Steve" {
		t.Errorf("Name.Value = %q, want %q", decoded.Name.Value, "tagged:Steve")
	}
}

func TestMarshalOmitEmpty(t *testing.T) {
	type config struct {
		Name    string `nbt:"name"`
		Debug   bool   `nbt:"debug,omitempty"`
		Timeout int32  `nbt:"timeout,omitempty"`
	}

	data, err := nbt.Marshal(config{Name: "test"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	tag, err := nbt.DecodeNetwork(data)
	if err != nil {
		t.Fatalf("DecodeNetwork() error = %v", err)
	}
	compound := tag.(nbt.Compound)

	if _, ok := compound["debug"]; ok {
		t.Error("debug should be omitted")
	}
	if _, ok := compound["timeout"]; ok {
		t.Error("timeout should be omitted")
	}
	if _, ok := compound["name"]; !ok {
		t.Error("name should be present")
	}
}

func TestNetworkVsFileFraming(t *testing.T) {
	compound := nbt.Compound{"test": nbt.Int(42)}

	networkData, _ := nbt.EncodeNetwork(compound)
	fileData, _ := nbt.EncodeFile(compound, "root")

	if len(fileData) <= len(networkData) {
		t.Errorf("file format (%d bytes) should be longer than network format (%d bytes)", len(fileData), len(networkData))
	}
	if networkData[0] != nbt.TagCompound || fileData[0] != nbt.TagCompound {
		t.Errorf("both forms should open on TagCompound, got network=0x%02X file=0x%02X", networkData[0], fileData[0])
	}

	const wantNameLen = 4 // len("root")
	if fileData[1] != 0 || fileData[2] != wantNameLen {
		t.Errorf("file format name length = %d, want %d", int(fileData[1])<<8|int(fileData[2]), wantNameLen)
	}
	if string(fileData[3:7]) != "root" {
		t.Errorf("file format name = %q, want %q", string(fileData[3:7]), "root")
	}
}

func TestDepthLimit(t *testing.T) {
	var deep nbt.Tag = nbt.Compound{"end": nbt.Byte(1)}
	for range 600 {
		deep = nbt.Compound{"nested": deep}
	}

	data, err := nbt.EncodeNetwork(deep)
	if err != nil {
		t.Fatalf("EncodeNetwork() error = %v", err)
	}

	if _, err := nbt.DecodeNetwork(data); err == nil {
		t.Error("DecodeNetwork() should reject nesting past the default depth limit (512)")
	}
	if _, err := nbt.DecodeNetwork(data, nbt.WithMaxDepth(700)); err != nil {
		t.Errorf("DecodeNetwork() with a raised depth limit: %v", err)
	}
}

func TestDecodeKnownBytes(t *testing.T) {
	// TAG_Compound { "test": TAG_Byte(42) }
	knownBytes := []byte{
		0x0A,
		0x01,
		0x00, 0x04,
		't', 'e', 's', 't',
		0x2A,
		0x00,
	}

	tag, err := nbt.DecodeNetwork(knownBytes)
	if err != nil {
		t.Fatalf("DecodeNetwork() error = %v", err)
	}
	compound, ok := tag.(nbt.Compound)
	if !ok {
		t.Fatalf("expected Compound, got %T", tag)
	}
	if got := compound.GetByte("test"); got != 42 {
		t.Errorf("test = %d, want 42", got)
	}

	reencoded, err := nbt.EncodeNetwork(compound)
	if err != nil {
		t.Fatalf("EncodeNetwork() error = %v", err)
	}
	if !bytes.Equal(reencoded, knownBytes) {
		t.Errorf("re-encoded bytes = %v, want %v", reencoded, knownBytes)
	}
}

func TestEmptyCompound(t *testing.T) {
	data, err := nbt.EncodeNetwork(nbt.Compound{})
	if err != nil {
		t.Fatalf("EncodeNetwork() error = %v", err)
	}
	if want := []byte{0x0A, 0x00}; !bytes.Equal(data, want) {
		t.Errorf("empty compound = %v, want %v", data, want)
	}

	decoded, err := nbt.DecodeNetwork(data)
	if err != nil {
		t.Fatalf("DecodeNetwork() error = %v", err)
	}
	if len(decoded.(nbt.Compound)) != 0 {
		t.Errorf("decoded compound length = %d, want 0", len(decoded.(nbt.Compound)))
	}
}

func TestEmptyList(t *testing.T) {
	compound := nbt.Compound{"list": nbt.List{ElementType: nbt.TagInt}}

	data, err := nbt.EncodeNetwork(compound)
	if err != nil {
		t.Fatalf("EncodeNetwork() error = %v", err)
	}
	decoded, err := nbt.DecodeNetwork(data)
	if err != nil {
		t.Fatalf("DecodeNetwork() error = %v", err)
	}
	if got := decoded.(nbt.Compound).GetList("list"); got.Len() != 0 {
		t.Errorf("list length = %d, want 0", got.Len())
	}
}
