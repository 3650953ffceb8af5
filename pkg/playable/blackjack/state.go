package blackjack

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateSetup is before the first round has been played
	RoundStateSetup RoundState = "setup"

	// RoundStateInitialDeal means two cards are being dealt to everyone
	RoundStateInitialDeal RoundState = "initial-deal"

	// RoundStatePlayerTurns means players are deciding whether to hit
	RoundStatePlayerTurns RoundState = "player-turns"

	// RoundStateDealerReveal means the dealer's hole card is being turned over
	RoundStateDealerReveal RoundState = "dealer-reveal"

	// RoundStateDealerTurn means the dealer is drawing
	RoundStateDealerTurn RoundState = "dealer-turn"

	// RoundStateSettlement means players are being paid out against the dealer
	RoundStateSettlement RoundState = "settlement"

	// RoundStateCleanup means the round is over and hands have been cleared
	RoundStateCleanup RoundState = "cleanup"
)

// TableView is the current state of the table
type TableView struct {
	State     RoundState `json:"state"`
	Round     int        `json:"round"`
	CardsLeft int        `json:"cardsLeft"`
	Players   []HandView `json:"players"`
	Dealer    HandView   `json:"dealer"`
}

// TableView returns the current state of the table
func (g *Game) TableView() *TableView {
	players := make([]HandView, len(g.players))
	for i, p := range g.players {
		players[i] = p.View()
	}

	return &TableView{
		State:     g.state,
		Round:     g.roundNumber,
		CardsLeft: g.deck.CardsLeft(),
		Players:   players,
		Dealer:    g.dealer.View(),
	}
}
