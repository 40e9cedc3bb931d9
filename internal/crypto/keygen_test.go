package crypto_test

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"

	"peerdid/internal/crypto"
	"peerdid/internal/domain"
)

func TestGenerate_ExactCounts(t *testing.T) {
	tests := []struct {
		name           string
		auth, agreemnt int
	}{
		{"none", 0, 0},
		{"one auth", 1, 0},
		{"one each", 1, 1},
		{"two auth three agreement", 2, 3},
		{"agreement only", 0, 2},
	}
	gen := crypto.NewKeyGenerator(nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			auth, agreement, err := gen.Generate(tc.auth, tc.agreemnt)
			require.NoError(t, err)
			require.Len(t, auth, tc.auth)
			require.Len(t, agreement, tc.agreemnt)
			for _, kp := range auth {
				assert.Equal(t, domain.Authentication, kp.Purpose)
			}
			for _, kp := range agreement {
				assert.Equal(t, domain.Agreement, kp.Purpose)
			}
		})
	}
}

func TestGenerate_NegativeCountRejected(t *testing.T) {
	gen := crypto.NewKeyGenerator(nil)
	_, _, err := gen.Generate(-1, 0)
	require.ErrorIs(t, err, crypto.ErrNegativeCount)
	_, _, err = gen.Generate(0, -3)
	require.ErrorIs(t, err, crypto.ErrNegativeCount)
}

func TestGenerate_FreshMaterialEachCall(t *testing.T) {
	gen := crypto.NewKeyGenerator(nil)
	a1, g1, err := gen.Generate(2, 2)
	require.NoError(t, err)
	a2, g2, err := gen.Generate(2, 2)
	require.NoError(t, err)

	seen := map[[32]byte]bool{}
	for _, l := range []domain.KeyList{a1, g1, a2, g2} {
		for _, kp := range l {
			require.False(t, seen[kp.Private], "private key repeated")
			seen[kp.Private] = true
		}
	}
}

func TestGenerate_AuthenticationDrawnFirst(t *testing.T) {
	// A deterministic stream lets two generators be compared draw by draw.
	stream := bytes.Repeat([]byte{0x42, 0x17, 0x99, 0x03}, 64)

	auth, _, err := crypto.NewKeyGenerator(bytes.NewReader(stream)).Generate(1, 1)
	require.NoError(t, err)
	authOnly, _, err := crypto.NewKeyGenerator(bytes.NewReader(stream)).Generate(1, 0)
	require.NoError(t, err)

	assert.Equal(t, authOnly[0], auth[0])
}

func TestGenerate_PublicMatchesPrivate(t *testing.T) {
	auth, agreement, err := crypto.NewKeyGenerator(nil).Generate(1, 1)
	require.NoError(t, err)

	sk := ed25519.NewKeyFromSeed(auth[0].Private[:])
	assert.Equal(t, auth[0].Public[:], []byte(sk.Public().(ed25519.PublicKey)))
	sig := ed25519.Sign(sk, []byte("peer"))
	assert.True(t, ed25519.Verify(auth[0].Public[:], []byte("peer"), sig))

	xpub, err := curve25519.X25519(agreement[0].Private[:], curve25519.Basepoint)
	require.NoError(t, err)
	assert.Equal(t, agreement[0].Public[:], xpub)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerate_RandomnessFailurePropagates(t *testing.T) {
	_, _, err := crypto.NewKeyGenerator(brokenReader{}).Generate(1, 0)
	require.Error(t, err)

	_, _, err = crypto.NewKeyGenerator(io.LimitReader(bytes.NewReader(make([]byte, 64)), 40)).Generate(1, 1)
	require.Error(t, err)
}

func TestGenerate_HugeCountFailsOnRandomness(t *testing.T) {
	r := io.LimitReader(bytes.NewReader(make([]byte, 256)), 96)
	auth, agreement, err := crypto.NewKeyGenerator(r).Generate(1<<62, 1<<62)
	require.Error(t, err)
	assert.Nil(t, auth)
	assert.Nil(t, agreement)
}

func TestJWK_PrivateRoundTrip(t *testing.T) {
	auth, agreement, err := crypto.NewKeyGenerator(nil).Generate(1, 1)
	require.NoError(t, err)

	for _, kp := range []domain.KeyPair{auth[0], agreement[0]} {
		key, err := crypto.PrivateJWK("did:peer:2#key", kp)
		require.NoError(t, err)
		assert.Equal(t, jwa.OKP, key.KeyType())
		assert.Equal(t, "did:peer:2#key", key.KeyID())

		raw, err := json.Marshal(key)
		require.NoError(t, err)
		var members map[string]string
		require.NoError(t, json.Unmarshal(raw, &members))
		assert.Equal(t, kp.Purpose.Curve(), members["crv"])
		assert.NotEmpty(t, members["d"])

		parsed, err := crypto.ParseJWK(raw)
		require.NoError(t, err)
		back, err := crypto.KeyPairFromJWK(parsed)
		require.NoError(t, err)
		assert.Equal(t, kp, back)

		purpose, pub, err := crypto.PublicFromJWK(parsed)
		require.NoError(t, err)
		assert.Equal(t, kp.Purpose, purpose)
		assert.Equal(t, kp.Public, pub)
	}
}

func TestJWK_PublicOnly(t *testing.T) {
	_, agreement, err := crypto.NewKeyGenerator(nil).Generate(0, 1)
	require.NoError(t, err)

	key, err := crypto.PublicJWK(domain.Agreement, agreement[0].Public)
	require.NoError(t, err)
	raw, err := json.Marshal(key)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"d"`)

	purpose, pub, err := crypto.PublicFromJWK(key)
	require.NoError(t, err)
	assert.Equal(t, domain.Agreement, purpose)
	assert.Equal(t, agreement[0].Public, pub)

	_, err = crypto.KeyPairFromJWK(key)
	require.ErrorIs(t, err, crypto.ErrInvalidJWK)
}

func TestJWK_RejectsForeignKeys(t *testing.T) {
	_, err := crypto.ParseJWK([]byte(`not json`))
	require.ErrorIs(t, err, crypto.ErrInvalidJWK)

	ec, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	key, err := jwk.FromRaw(ec)
	require.NoError(t, err)
	_, err = crypto.KeyPairFromJWK(key)
	require.ErrorIs(t, err, crypto.ErrInvalidJWK)
	_, _, err = crypto.PublicFromJWK(key)
	require.ErrorIs(t, err, crypto.ErrInvalidJWK)

	_, err = crypto.PublicJWK(domain.Purpose(9), [32]byte{})
	require.ErrorIs(t, err, crypto.ErrInvalidJWK)
}

func TestFingerprint_DependsOnCurve(t *testing.T) {
	var k [32]byte
	k[0] = 7
	fa := crypto.Fingerprint(domain.Authentication, k)
	fb := crypto.Fingerprint(domain.Agreement, k)
	assert.Len(t, fa.String(), 20)
	assert.NotEqual(t, fa, fb)
}
