// Package cli provides the interactive hmarket command-line client.
//
// It wires configuration, the durable and ephemeral stores, the account
// services and an interactive REPL. Typical flow: register, log in, land
// on the buyer or seller page, toggle the theme, log out.
//
// Key features:
//   - Register with field validation and a redirect to the login prompt
//   - Login / Logout against the account directory
//   - Buyer and seller pages gated behind the tab session
//   - Persisted light/dark theme
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Notifier and runREPL for details.
package cli
