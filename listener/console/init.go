package console

import (
	"io"
	"os"
	"strings"

	root "github.com/trickstertwo/xlogq"
)

// Register this listener as the default for xlogq.Default()/New().
// XLOGQ_CONSOLE_FORMAT=json|text and XLOGQ_CONSOLE_COLOR=auto|always|never
// (case-insensitive) tune it.
func init() {
	root.RegisterDefaultListenerFactory(func(w io.Writer) root.Listener {
		format, ok := ParseFormat(strings.ToLower(os.Getenv("XLOGQ_CONSOLE_FORMAT")))
		if !ok {
			format = FormatText
		}
		mode, ok := ParseColorMode(strings.ToLower(os.Getenv("XLOGQ_CONSOLE_COLOR")))
		if !ok {
			mode = ColorAuto
		}
		return New(w, Options{Format: format, Color: mode})
	})
}
