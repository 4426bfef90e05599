// Package prompt is the thin interactive layer between the CLI and the
// packages that do the work. Commands ask a Prompter for names, confirmations,
// and selections; tests drive a LinePrompter with scripted input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

var (
	// ErrInvalidInput is returned when a selection is not a number.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidChoice is returned when a selection number is out of range.
	ErrInvalidChoice = errors.New("invalid choice")
)

// Prompter asks the user for input.
type Prompter interface {
	// Input asks for a line of free text, returned trimmed.
	Input(label string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(label string) (bool, error)
	// Choose shows options and returns the zero-based index picked.
	Choose(label string, options []string) (int, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New returns a HuhPrompter when in is a terminal and a LinePrompter
// otherwise, so piped input keeps working.
func New(in *os.File, out io.Writer) Prompter {
	if IsTerminal(in) {
		return HuhPrompter{}
	}
	return NewLinePrompter(in, out)
}

// LinePrompter reads answers one line at a time.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter reading from in and writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *LinePrompter) Input(label string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s: ", label)
	return p.readLine()
}

func (p *LinePrompter) Confirm(label string) (bool, error) {
	_, _ = fmt.Fprintf(p.out, "%s (y/n): ", label)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

func (p *LinePrompter) Choose(label string, options []string) (int, error) {
	for i, opt := range options {
		_, _ = fmt.Fprintf(p.out, "%d. %s\n", i+1, opt)
	}
	_, _ = fmt.Fprintf(p.out, "\n%s: ", label)

	answer, err := p.readLine()
	if err != nil {
		return 0, err
	}
	return ParseChoice(answer, len(options))
}

// ParseChoice converts a 1-based answer into a 0-based index.
func ParseChoice(answer string, n int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", answer, ErrInvalidInput)
	}
	if choice < 1 || choice > n {
		return 0, fmt.Errorf("%d is not between 1 and %d: %w", choice, n, ErrInvalidChoice)
	}
	return choice - 1, nil
}
