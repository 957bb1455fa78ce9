package xlogq

import "strings"

// ColorChar prefixes a color code in legacy formatted text.
const ColorChar = "§"

// Color is an opaque display color handle attached to each Event.
// The zero value means "no color".
type Color struct {
	code byte
	name string
	rgb  uint32
}

// Built-in text colors.
var (
	ColorBlack      = Color{'0', "black", 0x000000}
	ColorDarkBlue   = Color{'1', "dark_blue", 0x0000aa}
	ColorDarkGreen  = Color{'2', "dark_green", 0x00aa00}
	ColorDarkAqua   = Color{'3', "dark_aqua", 0x00aaaa}
	ColorDarkRed    = Color{'4', "dark_red", 0xaa0000}
	ColorDarkPurple = Color{'5', "dark_purple", 0xaa00aa}
	ColorGold       = Color{'6', "gold", 0xffaa00}
	ColorGray       = Color{'7', "gray", 0xaaaaaa}
	ColorDarkGray   = Color{'8', "dark_gray", 0x555555}
	ColorBlue       = Color{'9', "blue", 0x5555ff}
	ColorGreen      = Color{'a', "green", 0x55ff55}
	ColorAqua       = Color{'b', "aqua", 0x55ffff}
	ColorRed        = Color{'c', "red", 0xff5555}
)

var builtinColors = []Color{
	ColorBlack, ColorDarkBlue, ColorDarkGreen, ColorDarkAqua, ColorDarkRed, ColorDarkPurple,
	ColorGold, ColorGray, ColorDarkGray, ColorBlue, ColorGreen, ColorAqua, ColorRed,
}

func (c Color) Code() byte   { return c.code }
func (c Color) Name() string { return c.name }
func (c Color) RGB() uint32  { return c.rgb }
func (c Color) IsZero() bool { return c.name == "" }
func (c Color) String() string {
	if c.IsZero() {
		return ""
	}
	return ColorChar + string(c.code)
}

// ColorByName finds a built-in color by its snake_case name.
func ColorByName(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range builtinColors {
		if c.name == name {
			return c, true
		}
	}
	return Color{}, false
}

// ColorByCode finds a built-in color by its format code character.
func ColorByCode(code byte) (Color, bool) {
	for _, c := range builtinColors {
		if c.code == code {
			return c, true
		}
	}
	return Color{}, false
}

// levelColor is the fixed color used by the per-level convenience methods.
func levelColor(l Level) Color {
	switch l {
	case LevelInfo:
		return ColorGreen
	case LevelWarn:
		return ColorGold
	case LevelError:
		return ColorRed
	case LevelFatal:
		return ColorDarkRed
	case LevelLog:
		return ColorGray
	default:
		return ColorDarkGray
	}
}
