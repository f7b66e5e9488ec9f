// Package text renders a types.TextComponent tree into the two forms a
// terminal client needs: plain text (no formatting) and ANSI-colored text
// honoring the five style toggles. The rendering logic itself lives on
// types.TextComponent; this package is the entry point conn renders
// disconnect reasons through.
package text

import "github.com/kestrel-mc/mc767/types"

// Render returns the component's plain-text content, stripping all styling.
func Render(tc types.TextComponent) string {
	return tc.String()
}

// RenderANSI returns the component's content with ANSI terminal escape
// codes applied for color and the bold/italic/underlined/strikethrough/
// obfuscated toggles.
func RenderANSI(tc types.TextComponent) string {
	return tc.ANSI()
}
