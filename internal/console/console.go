package console

import (
	"blackjack-table/internal/rng"
	"blackjack-table/internal/util"
	"blackjack-table/pkg/playable/blackjack"
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var _ blackjack.Decider = (*Console)(nil)
var _ blackjack.Display = (*Console)(nil)
var _ blackjack.Setup = (*Console)(nil)

// Console plays blackjack over a text stream
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	gen  rng.Generator
	echo bool
}

// New returns a new console
// gen picks names for players who don't give one.
func New(in io.Reader, out io.Writer, gen rng.Generator) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		gen: gen,
	}
}

// SetEcho will write every answer read back out
// Use it when input is not a terminal, so the transcript shows what was answered.
func (c *Console) SetEcho(echo bool) {
	c.echo = echo
}

// Welcome prints the banner
func (c *Console) Welcome() {
	c.printf("\t\t\t\t Welcome to BLACKJACK!!!\n")
}

// PlayerNames asks how many players are sitting down and their names
func (c *Console) PlayerNames() ([]string, error) {
	count, err := c.playerCount()
	if err != nil {
		return nil, err
	}

	names := make([]string, count)
	for i := range names {
		name, err := c.ask("Enter name: ")
		if err != nil {
			return nil, err
		}

		if name == "" {
			name = util.GetRandomName(c.gen)
			c.printf("Sitting you down as %s\n", name)
		}

		names[i] = name
	}

	c.printf("\n")
	return names, nil
}

func (c *Console) playerCount() (int, error) {
	for {
		answer, err := c.ask(fmt.Sprintf("How many players? (%d-%d): ", blackjack.MinPlayers, blackjack.MaxPlayers))
		if err != nil {
			return 0, err
		}

		count, err := strconv.Atoi(answer)
		if err != nil || count < blackjack.MinPlayers || count > blackjack.MaxPlayers {
			continue
		}

		return count, nil
	}
}

// PlayAgain asks whether another round should be played
func (c *Console) PlayAgain() (bool, error) {
	answer, err := c.ask("\nDo you want to play again? (Y/N): ")
	if err != nil {
		return false, err
	}

	return isYes(answer), nil
}

// WantsCard asks the player whether they want another card
func (c *Console) WantsCard(view blackjack.HandView) (bool, error) {
	answer, err := c.ask(fmt.Sprintf("%s, do you want to take a card from the deck? (Y / N)\n", view.Name))
	if err != nil {
		return false, err
	}

	return isYes(answer), nil
}

// ShowHand prints the hand on a single line
func (c *Console) ShowHand(view blackjack.HandView) {
	c.printf("%s\t", view.Name)
	if len(view.Cards) == 0 {
		c.printf("You don't have cards\n")
		return
	}

	for _, card := range view.Cards {
		c.printf("%s\t", card)
	}

	if view.Total > 0 {
		c.printf("Card amount: %d", view.Total)
	}

	c.printf("\n")
}

// Notify prints the event
func (c *Console) Notify(name string, event blackjack.Event) {
	switch event {
	case blackjack.EventBust:
		c.printf("The player %s has too many points\n", name)
	case blackjack.EventWin:
		c.printf("%s wins\n", name)
	case blackjack.EventLose:
		c.printf("%s loses\n", name)
	case blackjack.EventPush:
		c.printf("%s played in a draw\n", name)
	case blackjack.EventDeckEmpty:
		c.printf("Deck is empty\n")
	case blackjack.EventNoCards:
		c.printf("No cards\n")
	default:
		c.printf("%s: %s\n", name, event)
	}
}

// ask prints the question and reads a single line
// io.EOF is only returned if nothing was read.
func (c *Console) ask(question string) (string, error) {
	c.printf("%s", question)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	answer := strings.TrimSpace(line)
	if c.echo {
		c.printf("%s\n", answer)
	}

	return answer, nil
}

func (c *Console) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

func isYes(answer string) bool {
	return answer != "" && (answer[0] == 'y' || answer[0] == 'Y')
}
