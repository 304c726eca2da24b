// Package cli implements the interactive CyberShield shell: URL scanning,
// scan history, account commands and the quota banner. The REPL dispatches
// to App methods; App wires the services to the local state database and
// the HTTP API client.
package cli
