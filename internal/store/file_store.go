package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/lestrrat-go/jwx/v2/jwk"

	"peerdid/internal/crypto"
	"peerdid/internal/domain"
)

// DefaultSecretsFile is the file name used when no path is configured.
const DefaultSecretsFile = "secrets.json"

// SecretFileStore keeps secrets in memory and mirrors them to a single file
// holding a JSON array of private JWKs.
//
// Every AddSecret rewrites the whole file before returning. The file is not
// locked and not replaced atomically: two processes writing the same path
// can race and lose each other's updates, and only one SecretFileStore per
// path should exist inside a process.
type SecretFileStore struct {
	path       string
	passphrase string

	mu      sync.RWMutex
	records map[domain.KeyID]jwk.Key
}

// Option configures a SecretFileStore.
type Option func(*SecretFileStore)

// WithPassphrase seals the file with a key derived from passphrase.
// An empty passphrase keeps the file in plain JSON.
func WithPassphrase(passphrase string) Option {
	return func(s *SecretFileStore) { s.passphrase = passphrase }
}

// Open loads the store at path. A missing file is created holding an empty
// store; an existing but empty file is an empty store.
func Open(path string, opts ...Option) (*SecretFileStore, error) {
	if path == "" {
		path = DefaultSecretsFile
	}
	s := &SecretFileStore{path: path, records: make(map[domain.KeyID]jwk.Key)}
	for _, opt := range opts {
		opt(s)
	}

	b, exists, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !exists {
		if err := s.persist(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err := s.load(b); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Path returns the backing file path.
func (s *SecretFileStore) Path() string { return s.path }

func (s *SecretFileStore) AddSecret(secret domain.Secret) error {
	rec, err := toRecord(secret)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.records[secret.KID]
	s.records[secret.KID] = rec
	if err := s.persist(); err != nil {
		// Keep memory in step with what is on disk.
		if had {
			s.records[secret.KID] = prev
		} else {
			delete(s.records, secret.KID)
		}
		return err
	}
	return nil
}

func (s *SecretFileStore) FindSecret(kid domain.KeyID) (domain.Secret, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return findIn(s.records, kid)
}

func (s *SecretFileStore) FindSecrets(kids []domain.KeyID) []domain.KeyID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return presentIn(s.records, kids)
}

func (s *SecretFileStore) ListKIDs() []domain.KeyID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedKIDs(s.records)
}

// ---------- helpers ----------

func (s *SecretFileStore) load(b []byte) error {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if isSealed(b) {
		if s.passphrase == "" {
			return fmt.Errorf("%w: file is sealed and no passphrase was given", ErrWrongPassphrase)
		}
		pt, err := open(s.passphrase, b)
		if err != nil {
			return err
		}
		b = pt
	}

	var recs []json.RawMessage
	if err := json.Unmarshal(b, &recs); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	for i, rec := range recs {
		key, err := crypto.ParseJWK(rec)
		if err != nil {
			return fmt.Errorf("%w: record %d: %v", ErrCorruptStore, i, err)
		}
		if err := checkRecord(key); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		s.records[domain.KeyID(key.KeyID())] = key
	}
	return nil
}

// persist writes every record, sorted by kid. Callers hold s.mu or own s
// exclusively.
func (s *SecretFileStore) persist() error {
	kids := sortedKIDs(s.records)
	recs := make([]jwk.Key, 0, len(kids))
	for _, kid := range kids {
		recs = append(recs, s.records[kid])
	}

	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	if s.passphrase != "" {
		if b, err = seal(s.passphrase, b); err != nil {
			return fmt.Errorf("seal %s: %w", s.path, err)
		}
	}
	if err := writeFile(s.path, b); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Compile-time assertion that SecretFileStore implements domain.SecretStore.
var _ domain.SecretStore = (*SecretFileStore)(nil)
