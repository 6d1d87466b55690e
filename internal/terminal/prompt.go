package terminal

import (
	"bufio"
	"ctchen222/tictactoe-cli/internal/game"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads answers from the player one line at a time. When the input is
// exhausted every method returns io.EOF.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine prints prompt and returns the next line without surrounding whitespace.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if p.scanner.Scan() {
		return strings.TrimSpace(p.scanner.Text()), nil
	}
	if err := p.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return "", io.EOF
}

// ReadPosition asks until the answer is a number in 1..9 that addresses an empty cell.
func (p *Prompter) ReadPosition(prompt string, board game.Board) (game.Position, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return game.NoPosition, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || !game.Position(n).Valid() {
			fmt.Fprintln(p.out, "Invalid input. Try again.")
			continue
		}
		pos := game.Position(n)
		if !board.IsEmpty(pos) {
			fmt.Fprintln(p.out, "Position already taken. Choose another.")
			continue
		}
		return pos, nil
	}
}

// ReadName asks until a non-empty name is given.
func (p *Prompter) ReadName(prompt string) (string, error) {
	for {
		name, err := p.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
	}
}

// ReadChoice returns the menu option typed, or 0 for anything that is not a number.
func (p *Prompter) ReadChoice(prompt string) (int, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	choice, err := strconv.Atoi(line)
	if err != nil {
		return 0, nil
	}
	return choice, nil
}

// Confirm is true only for y or Y.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return false, err
	}
	return line == "y" || line == "Y", nil
}

func (p *Prompter) WaitForEnter() error {
	_, err := p.ReadLine("\nPress ENTER to continue...")
	return err
}
