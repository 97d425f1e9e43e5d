// Package console implements engine.TurnInput over a line-oriented terminal
// and prints game summaries.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jason-s-yu/monopoly/engine"
)

// ErrClosed is returned when the input stream ends.
var ErrClosed = errors.New("console input closed")

// Dialog asks every question on out and reads the answers from in, one per line.
// Invalid answers are reported and the question is asked again.
type Dialog struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewDialog returns a Dialog reading from in and writing prompts to out.
func NewDialog(in io.Reader, out io.Writer) *Dialog {
	return &Dialog{in: bufio.NewScanner(in), out: out}
}

// readLine prints prompt and returns the trimmed answer. Context
// cancellation is only noticed between lines.
func (d *Dialog) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(d.out, prompt)
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", fmt.Errorf("reading console: %w", err)
		}
		return "", ErrClosed
	}
	return strings.TrimSpace(d.in.Text()), nil
}

func quit(answer string) bool {
	return answer == "q" || answer == "Q"
}

// ParseDice reads two faces separated by whitespace, e.g. "3 4".
func ParseDice(s string) (int, int, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want two numbers, got %q: %w", s, engine.ErrInvalidAction)
	}
	d1, err1 := strconv.Atoi(fields[0])
	d2, err2 := strconv.Atoi(fields[1])
	if err := errors.Join(err1, err2); err != nil {
		return 0, 0, fmt.Errorf("%v: %w", err, engine.ErrInvalidAction)
	}
	if err := engine.ValidateFaces(d1, d2); err != nil {
		return 0, 0, err
	}
	return d1, d2, nil
}

// ParsePlayerCount reads a player count between engine.MinPlayers and engine.MaxPlayers.
func ParsePlayerCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < engine.MinPlayers || n > engine.MaxPlayers {
		return 0, fmt.Errorf("enter a number between %d and %d", engine.MinPlayers, engine.MaxPlayers)
	}
	return n, nil
}

// AskPlayers asks how many people are playing and what they are called.
func (d *Dialog) AskPlayers(ctx context.Context) ([]string, error) {
	var n int
	for {
		answer, err := d.readLine(ctx, "How many players are there? ")
		if err != nil {
			return nil, err
		}
		if n, err = ParsePlayerCount(answer); err == nil {
			break
		}
		fmt.Fprintln(d.out, err)
	}

	names := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		name, err := d.readLine(ctx, fmt.Sprintf("Enter name for Player %d: ", i))
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = fmt.Sprintf("Player %d", i)
		}
		names = append(names, name)
	}
	return names, nil
}

func (d *Dialog) RollDice(ctx context.Context, player engine.Player) (int, int, error) {
	for {
		answer, err := d.readLine(ctx, fmt.Sprintf("%s, enter your dice roll (e.g. 3 4): ", player.Name))
		if err != nil {
			return 0, 0, err
		}
		if d1, d2, err := ParseDice(answer); err == nil {
			return d1, d2, nil
		}
		fmt.Fprintln(d.out, "Enter 2 numbers between 1 and 6")
	}
}

// Confirm treats an empty answer as yes.
func (d *Dialog) Confirm(ctx context.Context, player engine.Player, prompt string) (bool, error) {
	for {
		answer, err := d.readLine(ctx, fmt.Sprintf("%s: %s (Y/n) ", player.Name, prompt))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if quit(answer) {
			return false, engine.ErrInputCancelled
		}
		fmt.Fprintln(d.out, "Invalid input. Try again")
	}
}

// actionLabel is the menu text for act.
func actionLabel(menu engine.Menu, act engine.MenuAction) string {
	switch act {
	case engine.ActionEndTurn:
		if menu == engine.MenuTrouble {
			return "Continue"
		}
		return "End turn"
	case engine.ActionSellStreet:
		return "Sell street to another player"
	case engine.ActionBuyHouse:
		return "Buy house"
	case engine.ActionSellHouse:
		return "Sell house"
	case engine.ActionBuyHotel:
		return "Buy hotel"
	case engine.ActionSellHotel:
		return "Sell hotel"
	case engine.ActionMortgage:
		return "Mortgage street"
	case engine.ActionUnmortgage:
		return "Unmortgage street"
	case engine.ActionLeaveGame:
		return "QUIT (leave game)"
	}
	return act.String()
}

func (d *Dialog) ChooseAction(ctx context.Context, player engine.Player, menu engine.Menu, options []engine.MenuAction) (engine.MenuAction, error) {
	if menu == engine.MenuTrouble {
		fmt.Fprintf(d.out, "%s cannot pay and has $%d. Raise cash or leave:\n", player.Name, player.Cash)
	} else {
		fmt.Fprintf(d.out, "%s has $%d. What next?\n", player.Name, player.Cash)
	}
	for i, act := range options {
		fmt.Fprintf(d.out, "%d. %s\n", i+1, actionLabel(menu, act))
	}
	i, err := d.choose(ctx, "Select a valid option: ", len(options))
	if err != nil {
		return 0, err
	}
	return options[i], nil
}

// ChoosePlayer lists candidates by seat number.
func (d *Dialog) ChoosePlayer(ctx context.Context, prompt string, candidates []engine.Player) (int, error) {
	if len(candidates) == 0 {
		return 0, engine.ErrInputCancelled
	}
	for _, p := range candidates {
		fmt.Fprintf(d.out, "%d: %s\n", p.Index+1, p.Name)
	}
	fmt.Fprintln(d.out, "q: Quit, and return to the menu")
	for {
		answer, err := d.readLine(ctx, prompt+" ")
		if err != nil {
			return 0, err
		}
		if quit(answer) {
			return 0, engine.ErrInputCancelled
		}
		seat, err := strconv.Atoi(answer)
		if err == nil {
			for _, p := range candidates {
				if p.Index == seat-1 {
					return p.Index, nil
				}
			}
		}
		fmt.Fprintln(d.out, "Invalid selection. Try again")
	}
}

func (d *Dialog) ChooseStreet(ctx context.Context, prompt string, streets []engine.StreetOption) (int, error) {
	if len(streets) == 0 {
		fmt.Fprintln(d.out, "No matching streets")
		return 0, engine.ErrInputCancelled
	}
	fmt.Fprintln(d.out, prompt)
	for i, s := range streets {
		if s.Note != "" {
			fmt.Fprintf(d.out, "%d. %s (%s)\n", i+1, s.Name, s.Note)
		} else {
			fmt.Fprintf(d.out, "%d. %s\n", i+1, s.Name)
		}
	}
	fmt.Fprintln(d.out, "q: Quit, and return to the menu")
	i, err := d.choose(ctx, "Enter the street: ", len(streets))
	if err != nil {
		return 0, err
	}
	return streets[i].Index, nil
}

func (d *Dialog) EnterAmount(ctx context.Context, prompt string) (int, error) {
	for {
		answer, err := d.readLine(ctx, prompt+" (or 'q' to return to the menu): ")
		if err != nil {
			return 0, err
		}
		if quit(answer) {
			return 0, engine.ErrInputCancelled
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 0 {
			return n, nil
		}
		fmt.Fprintln(d.out, "Invalid input. Try again")
	}
}

// choose reads a 1-based selection out of n and returns it 0-based.
func (d *Dialog) choose(ctx context.Context, prompt string, n int) (int, error) {
	for {
		answer, err := d.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if quit(answer) {
			return 0, engine.ErrInputCancelled
		}
		if i, err := strconv.Atoi(answer); err == nil && i >= 1 && i <= n {
			return i - 1, nil
		}
		fmt.Fprintln(d.out, "Invalid option. Try again")
	}
}
