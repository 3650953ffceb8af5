package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits is every suit in the order a deck is populated
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// rank constants
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

// FaceDownLabel is how a card that is face down is displayed
const FaceDownLabel = "XX"

// Card is an individual playing card
// The zero value of FaceDown means the card is face up.
type Card struct {
	Rank     int  `json:"rank"`
	Suit     Suit `json:"suit"`
	FaceDown bool `json:"faceDown"`
}

// Value returns the blackjack value of the card
// A face down card is worth nothing. Aces are worth 1 and face cards 10.
func (c *Card) Value() int {
	if c.FaceDown {
		return 0
	}

	if c.Rank > 10 {
		return 10
	}

	return c.Rank
}

// Flip turns the card over
func (c *Card) Flip() {
	c.FaceDown = !c.FaceDown
}

// IsAce returns true if the card is a face up ace
func (c *Card) IsAce() bool {
	return c.Value() == Ace
}

func (c *Card) String() string {
	if c.FaceDown {
		return FaceDownLabel
	}

	var rank string
	switch c.Rank {
	case Ace:
		rank = "A"
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

var cardRx = regexp.MustCompile(`(?i)^(!)?([1-9]|1[0-3])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 1 and <= 13 and suit in [cdhs].
// A leading ! marks the card as face down.
func CardFromString(s string) Card {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[2])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[3]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return Card{
		Rank:     rank,
		Suit:     suit,
		FaceDown: match[1] == "!",
	}
}

// CardsFromString will return a slice of cards
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (1c)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	faceDown := ""
	if card.FaceDown {
		faceDown = "!"
	}

	return fmt.Sprintf("%s%d%s", faceDown, card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
