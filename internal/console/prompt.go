package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	quitCommand = "x"
	promptText  = "Press Enter for the next round or 'x' to quit: "
)

// Prompter asks the human whether to play another round.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter reads answers from in and writes the prompt to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Continue returns false when the line is "x" (any case) or the input is closed.
func (p *Prompter) Continue() (bool, error) {
	fmt.Fprint(p.out, promptText)
	if !p.scanner.Scan() {
		// EOF ends the game like "x"
		return false, p.scanner.Err()
	}
	answer := strings.TrimSpace(p.scanner.Text())
	return !strings.EqualFold(answer, quitCommand), nil
}

// AutoPlay never stops the game.
type AutoPlay struct{}

func (AutoPlay) Continue() (bool, error) {
	return true, nil
}
