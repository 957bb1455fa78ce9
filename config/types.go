package config

// Config is the file representation of a Logger.
type Config struct {
	// Mode is threaded, manual_poll or blocking. Empty means threaded.
	// A blocking logger is returned unbootstrapped: call
	// Bootstrap(xlogq.ModeBlocking) on the goroutine that should pump.
	Mode      string           `yaml:"mode"`
	Level     string           `yaml:"level"`
	Listeners []ListenerConfig `yaml:"listeners"`
}

// ListenerConfig describes one listener.
type ListenerConfig struct {
	Type string `yaml:"type"`
	// Level filters at this listener only, on top of the logger level.
	Level string `yaml:"level,omitempty"`
	// Output is stdout or stderr for every type but file.
	Output string `yaml:"output,omitempty"`
	// Detach runs the listener off the consumer goroutine.
	Detach bool `yaml:"detach,omitempty"`

	// console and file
	Format     string            `yaml:"format,omitempty"`
	Color      string            `yaml:"color,omitempty"`
	TimeFormat string            `yaml:"time_format,omitempty"`
	Fields     map[string]string `yaml:"fields,omitempty"`

	File FileConfig `yaml:"file,omitempty"`
}

// FileConfig configures rotation for the file listener.
type FileConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
	Compress   bool   `yaml:"compress,omitempty"`
}

const (
	TypeConsole = "console"
	TypeFile    = "file"
	TypeZap     = "zap"
	TypeZerolog = "zerolog"
	TypeSlog    = "slog"
)

// Default is a threaded logger at info with one text console listener.
func Default() Config {
	return Config{
		Mode:      "threaded",
		Level:     "info",
		Listeners: []ListenerConfig{{Type: TypeConsole, Format: "text", Color: "auto"}},
	}
}
