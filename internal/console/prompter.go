// Package console drives the numbered text menus of the QuWaTrO suite.
//
// A Prompter pairs an explicit input source with an output sink. Every read
// is one trimmed line; end of input is reported as io.EOF so menus can
// unwind cleanly.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// InvalidChoice is printed when a menu selection is not recognized.
const InvalidChoice = "Invalid choice!"

// Prompter reads answers from in and writes prompts to out.
type Prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	styles Styles
}

// NewPrompter returns a Prompter over the given input and output.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewScanner(in),
		out:    out,
		styles: NewStyles(out),
	}
}

// Out returns the output sink.
func (p *Prompter) Out() io.Writer { return p.out }

// Styles returns the styles bound to the output sink.
func (p *Prompter) Styles() Styles { return p.styles }

// Printf writes formatted text.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Lines writes each line on its own row.
func (p *Prompter) Lines(lines []string) {
	for _, l := range lines {
		fmt.Fprintln(p.out, l)
	}
}

// Heading writes a styled section heading preceded by a blank line.
func (p *Prompter) Heading(text string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.styles.Heading.Render(text))
}

// Warn writes a styled warning line.
func (p *Prompter) Warn(text string) {
	fmt.Fprintln(p.out, p.styles.Warning.Render(text))
}

// Ask prints prompt and returns the next input line, trimmed. It returns
// io.EOF when input is exhausted.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Parse asks for a value and converts it with parse. On a parse failure
// the error message is printed and the question repeats until a valid
// value or end of input.
func Parse[T any](p *Prompter, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		raw, err := p.Ask(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(raw)
		if err == nil {
			return v, nil
		}
		p.Println("Error: " + err.Error())
	}
}

// Confirm asks a yes/no question. Any answer starting with y or Y is yes.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	raw, err := p.Ask(prompt)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(raw), "y"), nil
}
