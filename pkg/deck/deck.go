package deck

import (
	"blackjack-table/internal/rng"
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
)

// ErrEndOfDeck is an error when Deal() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards Hand `json:"cards"`
	rng   rng.Generator
}

// New returns a new, populated deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards.
// The generator should be created once and reused for every shuffle.
func New(gen rng.Generator) *Deck {
	d := &Deck{
		Cards: make(Hand, 0, 52),
		rng:   gen,
	}

	d.Populate()
	return d
}

// Populate discards every card in the deck and rebuilds the full 52 cards, face up.
// Cards are ordered by suit, then by rank from ace to king.
func (d *Deck) Populate() {
	d.Cards.Clear()
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			d.Cards.AddCard(Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}
}

// Shuffle will shuffle the remaining cards in place
func (d *Deck) Shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Deal moves the card at the end of the deck into the hand.
// If there are no more cards, ErrEndOfDeck is returned and the hand is untouched.
func (d *Deck) Deal(hand *Hand) error {
	n := len(d.Cards)
	if n == 0 {
		return ErrEndOfDeck
	}

	hand.AddCard(d.Cards[n-1])
	d.Cards = d.Cards[:n-1]

	return nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(CardToString(card)))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}
