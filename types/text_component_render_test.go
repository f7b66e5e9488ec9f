package types_test

import (
	"encoding/json"
	"testing"

	ns "github.com/kestrel-mc/mc767/types"
)

func trueVal() *bool { b := true; return &b }

func TestTextComponentPlainString(t *testing.T) {
	cases := []struct {
		name string
		tc   ns.TextComponent
		want string
	}{
		{"plain text", ns.TextComponent{Text: "Hello"}, "Hello"},
		{"with extra child", ns.TextComponent{Text: "Hello, ", Extra: []ns.TextComponent{{Text: "World"}}}, "Hello, World"},
		{"translate key as-is", ns.TextComponent{Translate: "chat.type.text"}, "chat.type.text"},
		{
			"translate args concatenated",
			ns.TextComponent{Translate: "chat.type.text", With: []ns.TextComponent{{Text: "Player"}, {Text: "Hello"}}},
			"chat.type.textPlayerHello",
		},
		{
			"nested extras flatten depth-first",
			ns.TextComponent{Text: "a", Extra: []ns.TextComponent{{Text: "b", Extra: []ns.TextComponent{{Text: "c"}}}}},
			"abc",
		},
		{"zero value", ns.TextComponent{}, ""},
		{"keybind rendered as its raw key", ns.TextComponent{Keybind: "key.jump"}, "key.jump"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tc.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTextComponentANSI(t *testing.T) {
	cases := []struct {
		name string
		tc   ns.TextComponent
		want string
	}{
		{"named color", ns.TextComponent{Text: "Hello", Color: "red"}, "\033[91mHello\033[0m"},
		{"bold flag", ns.TextComponent{Text: "Bold", Bold: trueVal()}, "\033[1mBold\033[0m"},
		{"hex color", ns.TextComponent{Text: "Hex", Color: "#ff5555"}, "\033[38;2;255;85;85mHex\033[0m"},
		{"no style applies no reset", ns.TextComponent{Text: "Plain"}, "Plain"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tc.ANSI(); got != tc.want {
				t.Errorf("ANSI() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTextComponentColorCodes(t *testing.T) {
	t.Run("color and style combine in order", func(t *testing.T) {
		tc := ns.TextComponent{Text: "Hello", Color: "green", Bold: trueVal()}
		if got, want := tc.ColorCodes(), "§a§lHello"; got != want {
			t.Errorf("ColorCodes() = %q, want %q", got, want)
		}
	})

	t.Run("each child restates its own color", func(t *testing.T) {
		tc := ns.TextComponent{
			Text:  "Hello ",
			Color: "gold",
			Extra: []ns.TextComponent{{Text: "World", Color: "red"}},
		}
		if got, want := tc.ColorCodes(), "§6Hello §cWorld"; got != want {
			t.Errorf("ColorCodes() = %q, want %q", got, want)
		}
	})
}

func TestTextComponentUnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		json string
		want string
	}{
		{"bare string shorthand", `"Hello"`, "Hello"},
		{"object with text field", `{"text":"Hello"}`, "Hello"},
		{"color is dropped from plain rendering", `{"text":"Hello","color":"red"}`, "Hello"},
		{"extra array", `{"text":"Hello ","extra":[{"text":"World"}]}`, "Hello World"},
		{
			"translate with positional args",
			`{"translate":"chat.type.text","with":[{"text":"Player"},{"text":"msg"}]}`,
			"chat.type.textPlayermsg",
		},
		{"nested extra arrays", `{"text":"a","extra":[{"text":"b","extra":[{"text":"c"}]}]}`, "abc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var decoded ns.TextComponent
			if err := json.Unmarshal([]byte(tc.json), &decoded); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tc.json, err)
			}
			if got := decoded.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTextComponentMiniMessage(t *testing.T) {
	cases := []struct {
		name string
		tc   ns.TextComponent
		want string
	}{
		{"color tag", ns.TextComponent{Text: "Hello", Color: "red"}, "<red>Hello</red>"},
		{
			"translate with positional args",
			ns.TextComponent{Translate: "chat.type.text", With: []ns.TextComponent{{Text: "Player"}, {Text: "Hello"}}},
			"<lang:chat.type.text:Player:Hello>",
		},
		{
			"color and bold nest in declaration order",
			ns.TextComponent{Text: "wow", Color: "gold", Bold: trueVal()},
			"<gold><bold>wow</bold></gold>",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tc.MiniMessage(); got != tc.want {
				t.Errorf("MiniMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}
