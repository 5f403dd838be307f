// Package adapters provides concrete implementations of the external
// collaborators the domain depends on.
package adapters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinConfirmer is the concrete confirmation collaborator for price
// reductions: it prints the prompt and reads one yes/no answer from an
// interactive stream.
type StdinConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinConfirmer wires the confirmer to the process stdin and stdout.
func NewStdinConfirmer() *StdinConfirmer {
	return NewConfirmer(os.Stdin, os.Stdout)
}

// NewConfirmer wires the confirmer to arbitrary streams.
func NewConfirmer(in io.Reader, out io.Writer) *StdinConfirmer {
	return &StdinConfirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm prints prompt and reads one line. Only an explicit affirmative
// answer counts as confirmed; anything else, including a read failure,
// declines.
func (c *StdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "д", "да":
		return true
	default:
		return false
	}
}
