// Package commands defines the peerdid CLI.
//
// Commands
//
//   - create-peer-did   Generate keys, mint a peer DID and store its secrets
//   - resolve-peer-did  Print the DID document of a peer DID
//   - secrets list      Print the kids held in the secrets file
//
// # Implementation
//
// The root command loads .env, the optional YAML config and PEERDID_*
// variables, applies flag overrides and builds an app.App before any
// subcommand runs. The secrets file is opened only by commands that need it.
// Flag names accept underscores as well as dashes (--auth_keys_count).
package commands
