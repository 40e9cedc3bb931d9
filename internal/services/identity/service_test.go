package identity_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peerdid/internal/crypto"
	"peerdid/internal/domain"
	"peerdid/internal/protocol/peerdid"
	"peerdid/internal/services/identity"
	"peerdid/internal/store"
)

// recordingCtor remembers which form was requested.
type recordingCtor struct {
	domain.IdentifierConstructor
	numalgo0, numalgo2 int
}

func (c *recordingCtor) CreateNumalgo0(k domain.Ed25519Public) (domain.DID, error) {
	c.numalgo0++
	return c.IdentifierConstructor.CreateNumalgo0(k)
}

func (c *recordingCtor) CreateNumalgo2(a []domain.Ed25519Public, e []domain.X25519Public, s *domain.Service) (domain.DID, error) {
	c.numalgo2++
	return c.IdentifierConstructor.CreateNumalgo2(a, e, s)
}

// truncatingResolver drops the last agreement id of every document.
type truncatingResolver struct{ domain.DocumentResolver }

func (r truncatingResolver) Resolve(did domain.DID, f domain.MaterialFormat) (domain.Document, error) {
	doc, err := r.DocumentResolver.Resolve(did, f)
	if err == nil && len(doc.KeyAgreement) > 0 {
		doc.KeyAgreement = doc.KeyAgreement[:len(doc.KeyAgreement)-1]
	}
	return doc, err
}

type failingResolver struct{}

func (failingResolver) Resolve(domain.DID, domain.MaterialFormat) (domain.Document, error) {
	return domain.Document{}, errors.New("boom")
}

type failingStore struct{ *store.MemoryStore }

func (failingStore) AddSecret(domain.Secret) error { return errors.New("disk full") }

type failingKeys struct{}

func (failingKeys) Generate(int, int) (domain.KeyList, domain.KeyList, error) {
	return nil, nil, errors.New("entropy exhausted")
}

func newService(ctor domain.IdentifierConstructor, res domain.DocumentResolver, s domain.SecretStore) *identity.Service {
	return identity.New(crypto.NewKeyGenerator(nil), ctor, res, s)
}

func TestCreatePeerDID_EndToEnd(t *testing.T) {
	secrets := store.NewMemoryStore()
	svc := newService(peerdid.NewCreator(), peerdid.NewResolver(), secrets)

	did, err := svc.CreatePeerDID(domain.CreateRequest{AuthKeys: 1, AgreementKeys: 1})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(did.String(), "did:peer:2."))

	kids := secrets.ListKIDs()
	require.Len(t, kids, 2)

	doc, err := peerdid.NewResolver().Resolve(did, domain.FormatJWK)
	require.NoError(t, err)
	assert.ElementsMatch(t, append(doc.AuthenticationKIDs(), doc.AgreementKIDs()...), kids)
}

func TestCreatePeerDID_SecretsMatchDocumentKeys(t *testing.T) {
	secrets := store.NewMemoryStore()
	svc := newService(peerdid.NewCreator(), peerdid.NewResolver(), secrets)

	did, err := svc.CreatePeerDID(domain.CreateRequest{AuthKeys: 2, AgreementKeys: 3})
	require.NoError(t, err)
	doc, err := peerdid.NewResolver().Resolve(did, domain.FormatJWK)
	require.NoError(t, err)

	for _, vm := range append(doc.Authentication, doc.KeyAgreement...) {
		sec, ok := secrets.FindSecret(vm.ID)
		require.True(t, ok, vm.ID)
		assert.Equal(t, domain.JSONWebKey2020, sec.Type)

		priv, err := crypto.ParseJWK([]byte(sec.Material.Value))
		require.NoError(t, err)
		pub, err := crypto.ParseJWK([]byte(vm.Material.Value))
		require.NoError(t, err)
		assert.Equal(t, vm.ID.String(), priv.KeyID())

		kp, err := crypto.KeyPairFromJWK(priv)
		require.NoError(t, err)
		purpose, docKey, err := crypto.PublicFromJWK(pub)
		require.NoError(t, err)
		assert.Equal(t, purpose, kp.Purpose)
		assert.Equal(t, docKey, kp.Public)

		switch kp.Purpose {
		case domain.Authentication:
			assert.Equal(t, kp.Public, [32]byte(crypto.Ed25519PublicFromSeed(domain.Ed25519Seed(kp.Private))))
		case domain.Agreement:
			derived, err := crypto.X25519PublicFromPrivate(domain.X25519Private(kp.Private))
			require.NoError(t, err)
			assert.Equal(t, kp.Public, [32]byte(derived))
		}
	}
}

func TestCreatePeerDID_FormSelection(t *testing.T) {
	tests := []struct {
		name               string
		req                domain.CreateRequest
		numalgo0, numalgo2 int
		prefix             string
	}{
		{"single auth key", domain.CreateRequest{AuthKeys: 1}, 1, 0, "did:peer:0z6Mk"},
		{"two auth keys", domain.CreateRequest{AuthKeys: 2}, 0, 1, "did:peer:2.V"},
		{"auth and agreement", domain.CreateRequest{AuthKeys: 1, AgreementKeys: 1}, 0, 1, "did:peer:2.E"},
		{"agreement only", domain.CreateRequest{AgreementKeys: 1}, 0, 1, "did:peer:2.E"},
		{
			"single auth key with service",
			domain.CreateRequest{AuthKeys: 1, Service: peerdid.NewDIDCommService("https://example.org", nil)},
			0, 1, "did:peer:2.V",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctor := &recordingCtor{IdentifierConstructor: peerdid.NewCreator()}
			secrets := store.NewMemoryStore()
			did, err := newService(ctor, peerdid.NewResolver(), secrets).CreatePeerDID(tc.req)
			require.NoError(t, err)

			assert.Equal(t, tc.numalgo0, ctor.numalgo0)
			assert.Equal(t, tc.numalgo2, ctor.numalgo2)
			assert.True(t, strings.HasPrefix(did.String(), tc.prefix), did)
			assert.Len(t, secrets.ListKIDs(), tc.req.AuthKeys+tc.req.AgreementKeys)
		})
	}
}

func TestCreatePeerDID_InvalidCounts(t *testing.T) {
	for _, req := range []domain.CreateRequest{
		{AuthKeys: -1, AgreementKeys: 1},
		{AuthKeys: 1, AgreementKeys: -1},
		{},
		{AuthKeys: 1 << 62},
		{AuthKeys: identity.MaxKeys, AgreementKeys: 1},
		{AuthKeys: math.MaxInt, AgreementKeys: math.MaxInt},
	} {
		secrets := store.NewMemoryStore()
		_, err := newService(peerdid.NewCreator(), peerdid.NewResolver(), secrets).CreatePeerDID(req)
		require.ErrorIs(t, err, identity.ErrInvalidKeyCount)
		assert.Empty(t, secrets.ListKIDs())
	}
}

func TestCreatePeerDID_MaxKeys(t *testing.T) {
	secrets := store.NewMemoryStore()
	_, err := newService(peerdid.NewCreator(), peerdid.NewResolver(), secrets).
		CreatePeerDID(domain.CreateRequest{AuthKeys: identity.MaxKeys - 1, AgreementKeys: 1})
	require.NoError(t, err)
	assert.Len(t, secrets.ListKIDs(), identity.MaxKeys)
}

func TestCreatePeerDID_CardinalityMismatchPersistsNothing(t *testing.T) {
	secrets := store.NewMemoryStore()
	svc := newService(peerdid.NewCreator(), truncatingResolver{peerdid.NewResolver()}, secrets)

	_, err := svc.CreatePeerDID(domain.CreateRequest{AuthKeys: 2, AgreementKeys: 2})
	require.ErrorIs(t, err, identity.ErrCardinalityMismatch)
	assert.Empty(t, secrets.ListKIDs())
}

func TestCreatePeerDID_Failures(t *testing.T) {
	_, err := identity.New(failingKeys{}, peerdid.NewCreator(), peerdid.NewResolver(), store.NewMemoryStore()).
		CreatePeerDID(domain.CreateRequest{AuthKeys: 1})
	require.ErrorIs(t, err, identity.ErrKeyGeneration)

	secrets := store.NewMemoryStore()
	_, err = newService(peerdid.NewCreator(), failingResolver{}, secrets).
		CreatePeerDID(domain.CreateRequest{AuthKeys: 1})
	require.ErrorIs(t, err, identity.ErrResolution)
	assert.Empty(t, secrets.ListKIDs())

	_, err = newService(peerdid.NewCreator(), peerdid.NewResolver(), secrets).
		CreatePeerDID(domain.CreateRequest{AuthKeys: 1, Service: &domain.Service{}})
	require.ErrorIs(t, err, identity.ErrIdentifierConstruction)

	_, err = newService(peerdid.NewCreator(), peerdid.NewResolver(), failingStore{store.NewMemoryStore()}).
		CreatePeerDID(domain.CreateRequest{AuthKeys: 1})
	require.ErrorIs(t, err, identity.ErrStorage)
}

func TestBind(t *testing.T) {
	auth, _, err := crypto.NewKeyGenerator(nil).Generate(3, 0)
	require.NoError(t, err)
	kids := []domain.KeyID{"did#a", "did#b", "did#c"}

	bindings, err := identity.Bind(auth, kids)
	require.NoError(t, err)
	require.Len(t, bindings, 3)
	for i, b := range bindings {
		assert.Equal(t, kids[i], b.KID)
		assert.Equal(t, auth[i], b.Key)
	}

	_, err = identity.Bind(auth, kids[:2])
	require.ErrorIs(t, err, identity.ErrCardinalityMismatch)
	_, err = identity.Bind(auth[:2], kids)
	require.ErrorIs(t, err, identity.ErrCardinalityMismatch)

	empty, err := identity.Bind(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
