package store

import "errors"

var (
	// ErrUnsupportedFormat is returned when a secret is not a JWK secret.
	ErrUnsupportedFormat = errors.New("unsupported secret material format")
	// ErrCorruptStore is returned when the secrets file cannot be parsed.
	ErrCorruptStore = errors.New("corrupt secrets file")
	// ErrWrongPassphrase is returned when a sealed file cannot be opened,
	// either because the passphrase is wrong or the ciphertext was modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted secrets file")
	// ErrMissingKID is returned for secrets and records without a kid.
	ErrMissingKID = errors.New("secret has no kid")
	// ErrKIDMismatch is returned when a secret's value names another kid.
	ErrKIDMismatch = errors.New("secret kid does not match its value")
)
