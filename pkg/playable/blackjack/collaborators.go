package blackjack

// Event is something the display is notified of
type Event string

// Event constants
const (
	EventBust      Event = "bust"
	EventWin       Event = "win"
	EventLose      Event = "lose"
	EventPush      Event = "push"
	EventDeckEmpty Event = "deck-empty"
	EventNoCards   Event = "no-cards"
)

// HandView is what a participant's hand looks like to the table
// Face down cards are hidden and Total is 0 while the first card is face down.
type HandView struct {
	Name  string   `json:"name"`
	Cards []string `json:"cards"`
	Total int      `json:"total"`
}

// Decider decides whether a player takes another card
// WantsCard blocks until a decision is made.
type Decider interface {
	WantsCard(view HandView) (bool, error)
}

// Display renders hands and notifications
type Display interface {
	ShowHand(view HandView)
	Notify(name string, event Event)
}

// Setup supplies the players for a game and decides whether another round is played
type Setup interface {
	// PlayerNames returns between MinPlayers and MaxPlayers names
	PlayerNames() ([]string, error)

	// PlayAgain is asked after every round
	PlayAgain() (bool, error)
}
