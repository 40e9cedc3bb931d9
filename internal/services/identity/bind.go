package identity

import (
	"fmt"

	"peerdid/internal/domain"
)

// Bind pairs the k-th key with the k-th kid. Keys are never matched by value
// so both slices must be in construction order.
func Bind(keys domain.KeyList, kids []domain.KeyID) ([]domain.KeyBinding, error) {
	if len(keys) != len(kids) {
		return nil, fmt.Errorf("%w: %d keys, %d kids", ErrCardinalityMismatch, len(keys), len(kids))
	}
	out := make([]domain.KeyBinding, len(keys))
	for i := range keys {
		out[i] = domain.KeyBinding{KID: kids[i], Key: keys[i]}
	}
	return out, nil
}
