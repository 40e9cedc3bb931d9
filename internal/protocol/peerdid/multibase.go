package peerdid

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58/base58"
	"github.com/multiformats/go-varint"

	"peerdid/internal/domain"
)

const (
	codecEd25519Pub uint64 = 0xed
	codecX25519Pub  uint64 = 0xec

	multibaseBase58BTC = "z"
)

func codecFor(p domain.Purpose) uint64 {
	if p == domain.Agreement {
		return codecX25519Pub
	}
	return codecEd25519Pub
}

// encodeKey returns the multibase base58btc form of codec || key.
func encodeKey(codec uint64, key [32]byte) string {
	prefixed := append(varint.ToUvarint(codec), key[:]...)
	return multibaseBase58BTC + base58.Encode(prefixed)
}

// decodeKey parses a multibase multicodec key and checks it is a 32-byte
// key of the wanted codec.
func decodeKey(s string, want uint64) (key [32]byte, err error) {
	if !strings.HasPrefix(s, multibaseBase58BTC) {
		return key, fmt.Errorf("%w: %q is not base58btc multibase", ErrInvalidKey, s)
	}
	raw, err := base58.Decode(s[len(multibaseBase58BTC):])
	if err != nil {
		return key, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	codec, n, err := varint.FromUvarint(raw)
	if err != nil {
		return key, fmt.Errorf("%w: codec: %v", ErrInvalidKey, err)
	}
	if codec != want {
		return key, fmt.Errorf("%w: codec 0x%x, want 0x%x", ErrInvalidKey, codec, want)
	}
	if len(raw)-n != len(key) {
		return key, fmt.Errorf("%w: %d key bytes, want %d", ErrInvalidKey, len(raw)-n, len(key))
	}
	copy(key[:], raw[n:])
	return key, nil
}
