package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/trickstertwo/xlogq"
	"github.com/trickstertwo/xlogq/listener/console"
)

// Validate reports every problem in c, not just the first.
func (c Config) Validate() error {
	var err error
	if _, perr := xlogq.ParseMode(c.Mode); perr != nil {
		err = multierr.Append(err, fmt.Errorf("mode: %w", perr))
	}
	if _, perr := xlogq.ParseLevel(c.Level); perr != nil {
		err = multierr.Append(err, fmt.Errorf("level: %w", perr))
	}
	for i, lc := range c.Listeners {
		if lerr := lc.validate(); lerr != nil {
			err = multierr.Append(err, fmt.Errorf("listeners[%d]: %w", i, lerr))
		}
	}
	return err
}

func (lc ListenerConfig) validate() error {
	var err error
	switch lc.Type {
	case TypeConsole, TypeZap, TypeZerolog, TypeSlog:
		if _, ok := outputs[lc.Output]; !ok {
			err = multierr.Append(err, fmt.Errorf("output %q: want stdout or stderr", lc.Output))
		}
	case TypeFile:
		if lc.File.Path == "" {
			err = multierr.Append(err, fmt.Errorf("file.path is required"))
		}
	default:
		return fmt.Errorf("unknown type %q", lc.Type)
	}
	if lc.Level != "" {
		if _, perr := xlogq.ParseLevel(lc.Level); perr != nil {
			err = multierr.Append(err, perr)
		}
	}
	if _, ok := console.ParseFormat(lc.Format); !ok {
		err = multierr.Append(err, fmt.Errorf("format %q: want text or json", lc.Format))
	}
	if _, ok := console.ParseColorMode(lc.Color); !ok {
		err = multierr.Append(err, fmt.Errorf("color %q: want auto, always or never", lc.Color))
	}
	return err
}
