package blackjack

import (
	"github.com/google/uuid"
)

// Round is the record of a single round
type Round struct {
	ID           string    `json:"id"`
	Number       int       `json:"number"`
	DealerTotal  int       `json:"dealerTotal"`
	DealerBusted bool      `json:"dealerBusted"`
	Results      []*Result `json:"results"`
}

// Result is how a single player did against the dealer
// Outcome is one of EventWin, EventLose, EventPush or EventBust.
type Result struct {
	Name    string `json:"name"`
	Total   int    `json:"total"`
	Outcome Event  `json:"outcome"`
}

func newRound(number int) *Round {
	return &Round{
		ID:     uuid.New().String(),
		Number: number,
	}
}

// settle compares every player against the dealer
// Busted players were already told when they went over and are not notified again.
func (g *Game) settle(round *Round) {
	dealerTotal := g.dealer.Hand.Total()
	dealerBusted := g.dealer.IsBoosted()

	round.DealerTotal = dealerTotal
	round.DealerBusted = dealerBusted
	round.Results = make([]*Result, 0, len(g.players))

	for _, p := range g.players {
		result := &Result{
			Name:  p.Name,
			Total: p.Hand.Total(),
		}

		switch {
		case p.IsBoosted():
			result.Outcome = EventBust
		case dealerBusted || result.Total > dealerTotal:
			result.Outcome = EventWin
			p.Win(g.display)
		case result.Total < dealerTotal:
			result.Outcome = EventLose
			p.Lose(g.display)
		default:
			result.Outcome = EventPush
			p.Push(g.display)
		}

		round.Results = append(round.Results, result)
	}
}

// Result returns the result for the named player, or nil
func (r *Round) Result(name string) *Result {
	for _, result := range r.Results {
		if result.Name == name {
			return result
		}
	}

	return nil
}
