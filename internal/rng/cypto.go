package rng

import (
	"crypto/rand"
	"math/big"
)

var _ Generator = Crypto{}
var _ Generator = (*Seeded)(nil)

// Crypto is a Generator backed by crypto/rand. It cannot be seeded, so a
// shuffle made with it cannot be replayed.
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
