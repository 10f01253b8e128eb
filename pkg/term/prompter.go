// Package term implements the line-oriented confirmation prompts used
// by gait commands.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	cancelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
)

// Answer is the operator's choice in a confirmation loop.
type Answer int

const (
	AnswerYes Answer = iota
	AnswerNo
	AnswerEdit
)

// Prompter reads operator decisions from an input stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter builds a prompter; nil arguments fall back to the
// process standard streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks question until the operator answers yes, no or edit.
// An exhausted input stream counts as no.
func (p *Prompter) Confirm(question string) (Answer, error) {
	for {
		fmt.Fprint(p.out, questionStyle.Render(question+" (y[es]/n[o]/e[dit]): "))

		line, err := p.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "y", "yes":
			return AnswerYes, nil
		case "n", "no":
			return AnswerNo, nil
		case "e", "edit":
			return AnswerEdit, nil
		}
		if err != nil {
			return AnswerNo, nil
		}
		fmt.Fprintln(p.out, "Please answer 'y' (yes), 'n' (no), or 'e' (edit)")
	}
}

// ReadLine prompts for a single line and returns fallback when the
// operator just presses enter.
func (p *Prompter) ReadLine(label, fallback string) (string, error) {
	fmt.Fprint(p.out, labelStyle.Render(label))

	line, err := p.in.ReadString('\n')
	value := strings.TrimSpace(line)
	if value == "" {
		if err != nil && err != io.EOF {
			return "", err
		}
		return fallback, nil
	}
	return value, nil
}

// ReadMultiline prompts for text terminated by end of input (Ctrl+D)
// and returns fallback when nothing was entered.
func (p *Prompter) ReadMultiline(label, fallback string) (string, error) {
	fmt.Fprintln(p.out, labelStyle.Render(label))
	fmt.Fprintln(p.out, "Enter your text (Ctrl+D to finish):")

	var lines []string
	for {
		line, err := p.in.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\n"))
		}
		if err != nil {
			break
		}
	}

	value := strings.Join(lines, "\n")
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	return value, nil
}

// Cancelled prints a styled cancellation notice.
func (p *Prompter) Cancelled(message string) {
	fmt.Fprintln(p.out, cancelStyle.Render(message))
}

// Printf writes plain output next to the styled prompts.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}
