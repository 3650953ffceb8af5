package blackjack

import (
	"blackjack-table/internal/rng"
	"blackjack-table/pkg/deck"
	"fmt"
	"github.com/sirupsen/logrus"
)

// initialCards is how many cards everyone is dealt at the start of a round
const initialCards = 2

// Game is a game of blackjack between one or more players and the dealer
type Game struct {
	options Options
	logger  logrus.FieldLogger
	deck    *deck.Deck
	dealer  *Dealer
	players []*Player
	display Display

	state       RoundState
	roundNumber int
}

// NewGame returns a new game with a shuffled deck.
// Players are seated in the order of names.
func NewGame(logger logrus.FieldLogger, names []string, options Options, decider Decider, display Display) (*Game, error) {
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return nil, ErrPlayerCount
	}

	if decider == nil || display == nil {
		return nil, ErrNoDecider
	}

	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(name, decider)
	}

	gen := newGenerator(logger, options)
	d := deck.New(gen)
	d.Shuffle()

	logger.WithFields(logrus.Fields{
		"players":  len(players),
		"deckHash": d.HashCode(),
	}).Debug("created game")

	return &Game{
		options: options,
		logger:  logger,
		deck:    d,
		dealer:  NewDealer(),
		players: players,
		display: display,
		state:   RoundStateSetup,
	}, nil
}

// newGenerator returns the generator used for every shuffle in the game
func newGenerator(logger logrus.FieldLogger, options Options) rng.Generator {
	if options.CryptoShuffle {
		return rng.Crypto{}
	}

	gen := rng.NewSeeded(options.Seed)
	logger.WithField("seed", gen.Seed()).Debug("seeded shuffle")
	return gen
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Blackjack"
}

// Key returns a unique key
func (g *Game) Key() string {
	return "blackjack"
}

// Run plays rounds until setup no longer wants to play again
func (g *Game) Run(setup Setup) error {
	for {
		if _, err := g.Play(); err != nil {
			return err
		}

		again, err := setup.PlayAgain()
		if err != nil {
			return fmt.Errorf("could not ask to play again: %w", err)
		}

		if !again {
			return nil
		}
	}
}

// Play plays a single round
// Every hand is cleared when the round is over, even if a decision could not be made.
func (g *Game) Play() (*Round, error) {
	g.roundNumber++
	round := newRound(g.roundNumber)
	log := g.logger.WithFields(logrus.Fields{
		"round":  round.ID,
		"number": round.Number,
	})

	if g.roundNumber > 1 && g.options.FreshDeckEachRound {
		g.deck.Populate()
		g.deck.Shuffle()
		log.WithField("deckHash", g.deck.HashCode()).Debug("deck reshuffled")
	}

	defer g.cleanup(log)

	g.setState(log, RoundStateInitialDeal)
	for i := 0; i < initialCards; i++ {
		for _, p := range g.players {
			g.deal(&p.Participant)
		}

		g.deal(&g.dealer.Participant)
	}

	g.dealer.FlipFirstCard(g.display)
	for _, p := range g.players {
		g.display.ShowHand(p.View())
	}
	g.display.ShowHand(g.dealer.View())
	log.WithField("table", g.TableView()).Debug("initial deal complete")

	g.setState(log, RoundStatePlayerTurns)
	for _, p := range g.players {
		if err := g.addAdditionalCards(&p.Participant); err != nil {
			return nil, err
		}
	}

	g.setState(log, RoundStateDealerReveal)
	g.dealer.FlipFirstCard(g.display)
	g.display.ShowHand(g.dealer.View())

	g.setState(log, RoundStateDealerTurn)
	if err := g.addAdditionalCards(&g.dealer.Participant); err != nil {
		return nil, err
	}

	g.setState(log, RoundStateSettlement)
	g.settle(round)

	for _, result := range round.Results {
		log.WithFields(logrus.Fields{
			"player":      result.Name,
			"total":       result.Total,
			"dealerTotal": round.DealerTotal,
			"outcome":     result.Outcome,
		}).Info("settled")
	}

	return round, nil
}

// addAdditionalCards deals to the participant until they stand or bust.
// The bust check comes first, so a busted participant is never asked again.
func (g *Game) addAdditionalCards(p *Participant) error {
	for !p.IsBoosted() {
		hitting, err := p.IsHitting()
		if err != nil {
			return fmt.Errorf("could not get decision for %s: %w", p.Name, err)
		}

		if !hitting {
			return nil
		}

		if !g.deal(p) {
			return nil
		}

		g.display.ShowHand(p.View())
		if p.IsBoosted() {
			p.Bust(g.display)
		}
	}

	return nil
}

// deal deals a single card to the participant
// An empty deck is reported to the display and false is returned.
func (g *Game) deal(p *Participant) bool {
	if err := g.deck.Deal(&p.Hand); err != nil {
		g.logger.WithError(err).WithField("player", p.Name).Warn("could not deal")
		g.display.Notify(p.Name, EventDeckEmpty)
		return false
	}

	return true
}

func (g *Game) cleanup(log logrus.FieldLogger) {
	g.setState(log, RoundStateCleanup)
	for _, p := range g.players {
		p.Hand.Clear()
	}

	g.dealer.Hand.Clear()
}

func (g *Game) setState(log logrus.FieldLogger, state RoundState) {
	g.state = state
	log.WithField("state", state).Debug("round state changed")
}
