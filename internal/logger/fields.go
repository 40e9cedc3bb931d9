package logger

import "go.uber.org/zap"

// DID is the field for a peer DID.
func DID(v string) zap.Field { return zap.String("did", v) }

// AuthKeys is the field for the requested authentication key count.
func AuthKeys(n int) zap.Field { return zap.Int("auth_keys", n) }

// AgreementKeys is the field for the requested agreement key count.
func AgreementKeys(n int) zap.Field { return zap.Int("agreement_keys", n) }

// Secrets is the field for the secrets file path.
func Secrets(path string) zap.Field { return zap.String("secrets", path) }

// Format is the field for a verification material format.
func Format(v string) zap.Field { return zap.String("format", v) }

// Count is a generic count.
func Count(n int) zap.Field { return zap.Int("count", n) }

// Err wraps an error.
func Err(err error) zap.Field { return zap.Error(err) }
