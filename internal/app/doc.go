// Package app wires application dependencies for the CLI.
//
// Config is read from defaults, an optional YAML file and PEERDID_*
// environment variables. App holds the resolver and logger for one command
// invocation and opens the secret store lazily through Wire, so commands
// that only resolve never create a secrets file.
package app
