// Package prompt asks the user for free-form values. On a terminal it uses
// huh forms; when stdin is piped it falls back to reading plain lines so the
// CLI stays scriptable.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/zeoengine/zeo/internal/logger"
	"golang.org/x/term"
)

var log = logger.New("prompt:prompt")

// Questions asked by the project creator.
const (
	ProjectNameQuestion      = "Please enter the project name:"
	ProjectDirectoryQuestion = "Please enter the project directory:"
)

// maxAttempts bounds how often a line prompt re-asks after a rejected answer.
const maxAttempts = 3

// ErrNoInput is returned when input ends before an answer was given.
var ErrNoInput = errors.New("no input")

// Validator rejects an answer by returning an error.
type Validator func(string) error

// Prompter asks a single question and returns the trimmed answer.
type Prompter interface {
	Ask(question string, validate Validator) (string, error)
}

// New returns a form prompter when in is a terminal and a line prompter
// otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		log.Print("stdin is a terminal, using forms")
		return &FormPrompter{Accessible: IsAccessibleMode()}
	}
	log.Print("stdin is not a terminal, reading lines")
	return NewLinePrompter(in, out)
}

// IsAccessibleMode reports whether forms should render in accessible mode,
// which prints plain prompts instead of a full-screen UI.
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != "" || os.Getenv("TERM") == "dumb" || os.Getenv("NO_COLOR") != ""
}

// FormPrompter asks with a huh input form.
type FormPrompter struct {
	Accessible bool
}

// Ask runs a single-field form.
func (p *FormPrompter) Ask(question string, validate Validator) (string, error) {
	var answer string
	input := huh.NewInput().
		Title(question).
		Value(&answer)
	if validate != nil {
		input = input.Validate(func(s string) error {
			return validate(strings.TrimSpace(s))
		})
	}

	form := huh.NewForm(huh.NewGroup(input)).WithAccessible(p.Accessible)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt %q: %w", question, err)
	}
	return strings.TrimSpace(answer), nil
}

// LinePrompter reads answers one line at a time.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter reads from in and writes questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

// Ask prints the question and reads a line. A rejected answer is reported
// and asked again, up to a fixed number of attempts.
func (p *LinePrompter) Ask(question string, validate Validator) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintf(p.out, "%s ", question)

		line, err := p.reader.ReadString('\n')
		answer := strings.TrimSpace(line)
		if err != nil && (err != io.EOF || answer == "") {
			if err == io.EOF {
				fmt.Fprintln(p.out)
				return "", fmt.Errorf("prompt %q: %w", question, ErrNoInput)
			}
			return "", fmt.Errorf("reading answer: %w", err)
		}

		if validate == nil {
			return answer, nil
		}
		if lastErr = validate(answer); lastErr == nil {
			return answer, nil
		}
		fmt.Fprintf(p.out, "  %v\n", lastErr)
		if err == io.EOF {
			break
		}
	}
	return "", lastErr
}

// Static answers questions from a fixed map. It is used when every value is
// already known, e.g. from flags.
type Static map[string]string

// Ask returns the stored answer for question.
func (s Static) Ask(question string, validate Validator) (string, error) {
	answer, ok := s[question]
	if !ok {
		return "", fmt.Errorf("prompt %q: %w", question, ErrNoInput)
	}
	answer = strings.TrimSpace(answer)
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}
