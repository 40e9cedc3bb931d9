// Package logger builds the zap logger used by the CLI.
//
// Logs go to stderr, or to Config.Output, so command output on stdout stays
// parseable.
// "dev" gives a coloured console encoder, "prod" gives JSON lines. The
// library packages never log; only cmd/ and internal/app do.
package logger
