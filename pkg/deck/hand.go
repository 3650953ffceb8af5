package deck

// bust is the highest total a hand can have without going over
const bust = 21

// softAceBonus is added when an ace can count as 11 without busting
const softAceBonus = 10

// Hand represents a collection of cards
// The hand owns its cards. Dealing a card moves it out of the deck and into the hand.
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// Clear discards every card in the hand
func (h *Hand) Clear() {
	*h = (*h)[:0]
}

// Total returns the blackjack total of the hand
// The total is 0 if the hand is empty or the first card is face down. This keeps a hole card
// from leaking its value through the displayed total.
// An ace is counted as 11 instead of 1 if the raw total is <= 11.
func (h Hand) Total() int {
	if len(h) == 0 || h[0].FaceDown {
		return 0
	}

	total := 0
	hasAce := false
	for i := range h {
		total += h[i].Value()
		if h[i].IsAce() {
			hasAce = true
		}
	}

	if hasAce && total+softAceBonus <= bust {
		total += softAceBonus
	}

	return total
}

// IsBusted returns true if the total is over 21
func (h Hand) IsBusted() bool {
	return h.Total() > bust
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return &h[0]
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return &h[n-1]
}

// Labels returns how each card should be displayed
func (h Hand) Labels() []string {
	labels := make([]string, len(h))
	for i := range h {
		labels[i] = h[i].String()
	}

	return labels
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
