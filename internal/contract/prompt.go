package contract

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user to pick one of a set of lowercase choices.
// Commands take it as a capability so tests can script the interaction.
type Prompter interface {
	Ask(question string, choices []string, defaultChoice string) (string, error)
}

// StdinPrompter reads answers interactively from an input stream.
type StdinPrompter struct {
	In  io.Reader
	Out io.Writer
}

var _ Prompter = &StdinPrompter{} // Compile-time check

// Ask repeats the question until the answer matches one of the choices.
// An empty answer selects the default when one is provided.
func (p *StdinPrompter) Ask(question string, choices []string, defaultChoice string) (string, error) {
	reader := bufio.NewReader(p.In)
	for {
		fmt.Fprint(p.Out, question)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("cannot read answer: %w", err)
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer == "" && defaultChoice != "" {
			return defaultChoice, nil
		}
		for _, c := range choices {
			if answer == c {
				return answer, nil
			}
		}
		fmt.Fprintln(p.Out, "Please select from the list of valid choices.")
	}
}

// ScriptedPrompter replays canned answers, for tests.
type ScriptedPrompter struct {
	Answers []string
	next    int
}

var _ Prompter = &ScriptedPrompter{} // Compile-time check

// Ask returns the next scripted answer, or the default once the script
// is exhausted.
func (p *ScriptedPrompter) Ask(_ string, _ []string, defaultChoice string) (string, error) {
	if p.next >= len(p.Answers) {
		return defaultChoice, nil
	}
	answer := p.Answers[p.next]
	p.next++
	return answer, nil
}
