package blackjack

import (
	"blackjack-table/pkg/deck"
)

// DealerName is the name the dealer is displayed with
const DealerName = "Dealer"

// Participant is anyone at the table holding a hand
type Participant struct {
	Name string    `json:"name"`
	Hand deck.Hand `json:"hand"`

	policy HittingPolicy
}

// IsHitting returns true if the participant wants another card
func (p *Participant) IsHitting() (bool, error) {
	return p.policy.IsHitting(p)
}

// IsBoosted returns true if the participant went over 21
func (p *Participant) IsBoosted() bool {
	return p.Hand.IsBusted()
}

// Bust notifies the display that the participant went over 21
func (p *Participant) Bust(display Display) {
	display.Notify(p.Name, EventBust)
}

// View returns the participant's hand as the table sees it
func (p *Participant) View() HandView {
	return HandView{
		Name:  p.Name,
		Cards: p.Hand.Labels(),
		Total: p.Hand.Total(),
	}
}

// Player is a participant who plays against the dealer
type Player struct {
	Participant
}

// NewPlayer returns a player whose decisions are made by the decider
func NewPlayer(name string, decider Decider) *Player {
	return &Player{
		Participant: Participant{
			Name:   name,
			Hand:   make(deck.Hand, 0, 7),
			policy: DecisionPolicy{Decider: decider},
		},
	}
}

// Win notifies the display that the player won
func (p *Player) Win(display Display) {
	display.Notify(p.Name, EventWin)
}

// Lose notifies the display that the player lost
func (p *Player) Lose(display Display) {
	display.Notify(p.Name, EventLose)
}

// Push notifies the display that the player tied the dealer
func (p *Player) Push(display Display) {
	display.Notify(p.Name, EventPush)
}

// Dealer is the house
type Dealer struct {
	Participant
}

// NewDealer returns a dealer that hits on 16 or less
func NewDealer() *Dealer {
	return &Dealer{
		Participant: Participant{
			Name:   DealerName,
			Hand:   make(deck.Hand, 0, 7),
			policy: ThresholdPolicy{HitThrough: dealerHitThrough},
		},
	}
}

// FlipFirstCard turns over the hole card
func (d *Dealer) FlipFirstCard(display Display) {
	card := d.Hand.FirstCard()
	if card == nil {
		display.Notify(d.Name, EventNoCards)
		return
	}

	card.Flip()
}
