package file

import root "github.com/trickstertwo/xlogq"

// Config is an explicit, code-first configuration for file logging.
type Config struct {
	Options
	Mode         root.Mode // bootstrapped by Use; default ModeThreaded
	MinLevel     root.Level
	ErrorHandler root.ErrorHandler
}

// Use builds a Logger writing to cfg.Path, sets it as the global logger and
// returns it. Logger.Close closes the file.
func Use(cfg Config) (*root.Logger, error) {
	mode := cfg.Mode
	if mode == 0 {
		mode = root.ModeThreaded
	}
	lg, err := root.NewBuilder().
		WithMode(mode).
		WithMinLevel(cfg.MinLevel).
		WithErrorHandler(cfg.ErrorHandler).
		AddListener(New(cfg.Options)).
		Build()
	if err != nil {
		return nil, err
	}
	root.SetGlobal(lg)
	return lg, nil
}
