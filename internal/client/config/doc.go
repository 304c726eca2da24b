// Package config loads runtime settings for the CyberShield CLI.
// Sources are layered: defaults, then environment (including a .env file),
// then a JSON config file, then command-line flags. Later sources win.
package config
