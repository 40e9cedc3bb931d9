package store

import (
	"sort"
	"sync"

	"github.com/lestrrat-go/jwx/v2/jwk"

	"peerdid/internal/domain"
)

// MemoryStore is a SecretStore that lives only in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[domain.KeyID]jwk.Key
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[domain.KeyID]jwk.Key)}
}

func (s *MemoryStore) AddSecret(secret domain.Secret) error {
	rec, err := toRecord(secret)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[secret.KID] = rec
	return nil
}

func (s *MemoryStore) FindSecret(kid domain.KeyID) (domain.Secret, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return findIn(s.records, kid)
}

func (s *MemoryStore) FindSecrets(kids []domain.KeyID) []domain.KeyID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return presentIn(s.records, kids)
}

func (s *MemoryStore) ListKIDs() []domain.KeyID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedKIDs(s.records)
}

// ---------- helpers shared with SecretFileStore ----------

func findIn(m map[domain.KeyID]jwk.Key, kid domain.KeyID) (domain.Secret, bool) {
	rec, ok := m[kid]
	if !ok {
		return domain.Secret{}, false
	}
	sec, err := fromRecord(rec)
	if err != nil {
		return domain.Secret{}, false
	}
	return sec, true
}

// presentIn returns the kids found in m, in request order, without duplicates.
func presentIn(m map[domain.KeyID]jwk.Key, kids []domain.KeyID) []domain.KeyID {
	out := make([]domain.KeyID, 0, len(kids))
	seen := make(map[domain.KeyID]struct{}, len(kids))
	for _, kid := range kids {
		if _, dup := seen[kid]; dup {
			continue
		}
		seen[kid] = struct{}{}
		if _, ok := m[kid]; ok {
			out = append(out, kid)
		}
	}
	return out
}

func sortedKIDs(m map[domain.KeyID]jwk.Key) []domain.KeyID {
	out := make([]domain.KeyID, 0, len(m))
	for kid := range m {
		out = append(out, kid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Compile-time assertion that MemoryStore implements domain.SecretStore.
var _ domain.SecretStore = (*MemoryStore)(nil)
