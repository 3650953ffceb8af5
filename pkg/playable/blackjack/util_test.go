package blackjack

import (
	"blackjack-table/pkg/deck"
	"fmt"

	"github.com/sirupsen/logrus"
)

// scriptedDecider answers for each player in order, then stands
type scriptedDecider struct {
	answers map[string][]bool
	asked   []HandView
	err     error
}

func newScriptedDecider() *scriptedDecider {
	return &scriptedDecider{answers: make(map[string][]bool)}
}

func (s *scriptedDecider) script(name string, answers ...bool) *scriptedDecider {
	s.answers[name] = append(s.answers[name], answers...)
	return s
}

func (s *scriptedDecider) WantsCard(view HandView) (bool, error) {
	s.asked = append(s.asked, view)
	if s.err != nil {
		return false, s.err
	}

	answers := s.answers[view.Name]
	if len(answers) == 0 {
		return false, nil
	}

	s.answers[view.Name] = answers[1:]
	return answers[0], nil
}

type recordingDisplay struct {
	hands  []HandView
	events []string
}

func (r *recordingDisplay) ShowHand(view HandView) {
	r.hands = append(r.hands, view)
}

func (r *recordingDisplay) Notify(name string, event Event) {
	r.events = append(r.events, fmt.Sprintf("%s:%s", name, event))
}

func (r *recordingDisplay) reset() {
	r.hands = nil
	r.events = nil
}

type scriptedSetup struct {
	names []string
	again []bool
	asked int
}

func (s *scriptedSetup) PlayerNames() ([]string, error) {
	return s.names, nil
}

func (s *scriptedSetup) PlayAgain() (bool, error) {
	s.asked++
	if len(s.again) == 0 {
		return false, nil
	}

	again := s.again[0]
	s.again = s.again[1:]
	return again, nil
}

// stackDeck replaces the deck so the cards are dealt in the order given
func stackDeck(g *Game, cards string) {
	c := deck.CardsFromString(cards)
	stacked := make(deck.Hand, len(c))
	for i, card := range c {
		stacked[len(c)-1-i] = card
	}

	g.deck.Cards = stacked
}

func newTestGame(names []string, options Options, decider Decider, display Display) *Game {
	g, err := NewGame(logrus.StandardLogger(), names, options, decider, display)
	if err != nil {
		panic(err)
	}

	return g
}

func setHand(p *Participant, cards string) {
	p.Hand = deck.Hand(deck.CardsFromString(cards))
}
