package console

import (
	"errors"
	"io"
	"strconv"
)

// DefaultPrompt is shown after the menu options.
const DefaultPrompt = "Enter your choice: "

// Option is one numbered menu entry.
type Option struct {
	Label string
	Run   func() error
}

// Menu is a numbered list of options followed by an exit entry.
type Menu struct {
	// Masthead is printed above the options, if set.
	Masthead string
	// Title is printed as a heading above the options, if set.
	Title   string
	Options []Option
	// Exit labels the last entry, which leaves the menu.
	Exit string
	// Farewell is printed when the exit entry is chosen.
	Farewell string
	// Prompt overrides DefaultPrompt.
	Prompt string
}

// Run shows m until its exit entry is chosen or input ends. Unrecognized
// choices print InvalidChoice and the menu repeats. An error returned by
// an option is printed and the menu repeats; io.EOF from an option ends
// the menu.
func (p *Prompter) Run(m Menu) error {
	prompt := m.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	exit := len(m.Options) + 1

	for {
		p.render(m)
		raw, err := p.Ask(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		choice, err := strconv.Atoi(raw)
		switch {
		case err != nil || choice < 1 || choice > exit:
			p.Println(InvalidChoice)
		case choice == exit:
			if m.Farewell != "" {
				p.Println(m.Farewell)
			}
			return nil
		default:
			if err := m.Options[choice-1].Run(); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				p.Println("Error: " + err.Error())
			}
		}
	}
}

func (p *Prompter) render(m Menu) {
	if m.Masthead != "" {
		p.Println()
		p.Println(m.Masthead)
	}
	if m.Title != "" {
		p.Heading(m.Title)
	}
	for i, o := range m.Options {
		p.Printf("%d. %s\n", i+1, o.Label)
	}
	p.Printf("%d. %s\n", len(m.Options)+1, m.Exit)
}
