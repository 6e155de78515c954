// Package cli provides the interactive life archive command-line client.
//
// It wires configuration, the local SQLite copy, the HTTP client and the
// sync controller, then runs a REPL over them. The archive is usable
// offline: every change is saved locally first and pushed to the server in
// the background. A watcher pings the server and shows online/offline in
// the prompt.
//
// Commands cover listing and showing entries, creating, editing and deleting
// them, album photo order, shared pages and guestbooks, search, the food
// picker, settings, backup export/import, explicit pull/push and dropping the
// local copy.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
