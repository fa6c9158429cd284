// Package app is the composition root for glinview.
//
// Run wires configuration, preferences, the glinrdock API client, the
// viewer store and the poll controller together, performs a best-effort
// initial load so the UI opens with data, then hands control to the TUI
// until the context is cancelled or the user quits.
//
// Fatal errors are limited to startup problems: an unreadable config file
// or a malformed api_bind value. Everything after startup is recoverable;
// fetch failures are recorded in the viewer store and surfaced by the UI
// while the previous data stays visible.
package app
