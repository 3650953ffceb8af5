package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewSeeded(t *testing.T) {
	a := assert.New(t)

	s1 := NewSeeded(42)
	s2 := NewSeeded(42)
	a.Equal(int64(42), s1.Seed())

	for i := 0; i < 100; i++ {
		a.Equal(s1.Intn(52), s2.Intn(52))
	}

	s3 := NewSeeded(0)
	a.NotEqual(int64(0), s3.Seed())
}

func TestSeeded_Intn(t *testing.T) {
	a := assert.New(t)

	s := NewSeeded(1)
	for i := 0; i < 1000; i++ {
		n := s.Intn(3)
		a.True(n >= 0 && n < 3)
	}
}
