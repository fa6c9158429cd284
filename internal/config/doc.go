// Package config handles loading the glinview configuration file.
//
// The file lives at ~/.config/glinview/config.toml and is optional; a
// missing file yields working defaults so glinview runs out of the box
// against a local daemon.
//
// Example:
//
//	api_bind = "127.0.0.1:8080"
//	token = "<admin api token>"
//	poll_seconds = 5
//
// All fields are optional. api_bind accepts host:port or a full URL; the
// token is sent as a bearer credential when set. Tilde expansion is applied
// to the config path itself.
//
// Load returns errors only for real problems: unreadable files, malformed
// TOML, or a home directory that cannot be resolved.
package config
