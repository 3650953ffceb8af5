package util

import (
	"blackjack-table/internal/rng"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

type fixedGenerator []int

func (f *fixedGenerator) Intn(n int) int {
	v := (*f)[0]
	*f = (*f)[1:]
	return v % n
}

func TestGetRandomName(t *testing.T) {
	gen := &fixedGenerator{0, 9, 1, 11}
	assert.Equal(t, "Fast Lion", GetRandomName(gen))
	assert.Equal(t, "Slow Bear", GetRandomName(gen))
}

func TestGetRandomName_seeded(t *testing.T) {
	a := assert.New(t)

	gen := rng.NewSeeded(0)
	for i := 0; i < 100; i++ {
		parts := strings.Split(GetRandomName(gen), " ")
		a.Len(parts, 2)
		a.Contains(adjectives, parts[0])
		a.Contains(animals, parts[1])
	}
}
