// Package cli provides the interactive gophdemo command-line client.
//
// It wires configuration, the API client, the session slot and the message
// center into a REPL. On start it checks the server status and launches a
// background connectivity watcher that announces when the server goes away
// or comes back.
//
// Key features:
//   - Login / Logout (logout is local only)
//   - Process data: calc, reverse, echo, or any action via process
//   - List users
//   - Server status, visible panels, message banners
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
