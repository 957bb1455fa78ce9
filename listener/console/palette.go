package console

import (
	"github.com/fatih/color"

	root "github.com/trickstertwo/xlogq"
)

// ansi maps each built-in color code to the closest terminal attribute.
var ansi = map[byte]color.Attribute{
	root.ColorBlack.Code():      color.FgBlack,
	root.ColorDarkBlue.Code():   color.FgBlue,
	root.ColorDarkGreen.Code():  color.FgGreen,
	root.ColorDarkAqua.Code():   color.FgCyan,
	root.ColorDarkRed.Code():    color.FgRed,
	root.ColorDarkPurple.Code(): color.FgMagenta,
	root.ColorGold.Code():       color.FgYellow,
	root.ColorGray.Code():       color.FgWhite,
	root.ColorDarkGray.Code():   color.FgHiBlack,
	root.ColorBlue.Code():       color.FgHiBlue,
	root.ColorGreen.Code():      color.FgHiGreen,
	root.ColorAqua.Code():       color.FgHiCyan,
	root.ColorRed.Code():        color.FgHiRed,
}

// palette paints text segments. A nil palette writes plain text.
type palette map[byte]*color.Color

func newPalette() palette {
	p := make(palette, len(ansi))
	for code, attr := range ansi {
		c := color.New(attr)
		c.EnableColor() // the listener decided already; ignore color.NoColor
		p[code] = c
	}
	return p
}

func (p palette) paint(buf *buffer, c root.Color, s string) {
	if p == nil || c.IsZero() {
		buf.writeString(s)
		return
	}
	pc, ok := p[c.Code()]
	if !ok {
		buf.writeString(s)
		return
	}
	buf.writeString(pc.Sprint(s))
}

// paintMessage renders inline color codes. Text before the first code uses base.
func (p palette) paintMessage(buf *buffer, base root.Color, s string) {
	forEachSegment(s, func(c root.Color, seg string) {
		if c.IsZero() {
			c = base
		}
		p.paint(buf, c, seg)
	})
}
