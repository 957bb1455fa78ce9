// Package config builds an xlogq Logger from a YAML file.
//
//	mode: threaded
//	level: info
//	listeners:
//	  - type: console
//	    format: text
//	    color: auto
//	  - type: file
//	    level: warn
//	    file:
//	      path: /var/log/app.log
//	      max_size_mb: 50
//	      max_backups: 3
//
// Listener types are console, file, zap, zerolog and slog. Watch reloads the
// file on change; ApplyLevel keeps a running Logger's level in step with it.
package config
