package blackjack

import (
	"errors"
	"fmt"
)

// player limits
const (
	MinPlayers = 1
	MaxPlayers = 7
)

// ErrPlayerCount is returned when a game is created with too few or too many players
var ErrPlayerCount = fmt.Errorf("game requires between %d and %d players", MinPlayers, MaxPlayers)

// ErrNoDecider is returned when a game is created without a decider or display
var ErrNoDecider = errors.New("game requires a decider and a display")
