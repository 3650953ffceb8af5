package blackjack

// Options contains options for creating a new game of blackjack
type Options struct {
	// Seed seeds the shuffle. If 0, the current time is used.
	Seed int64

	// CryptoShuffle shuffles with crypto/rand. Seed is ignored.
	CryptoShuffle bool

	// FreshDeckEachRound repopulates and reshuffles the deck before every round after the first.
	// Without it, the deck runs out after a few rounds.
	FreshDeckEachRound bool
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		FreshDeckEachRound: true,
	}
}
