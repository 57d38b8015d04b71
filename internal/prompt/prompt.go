// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/stationctl/stationctl/model"
)

// Prompt asks the operator questions on the terminal. In non interactive
// mode, or when stdin is not a terminal, every question short-circuits to
// the supplied default without any I/O
type Prompt struct {
	interactive bool
	in          io.Reader
	out         io.Writer
	log         model.Logger
}

var _ model.Prompter = (*Prompt)(nil)

// New creates a prompt resolver, interactive false forces default answers
func New(interactive bool, log model.Logger) *Prompt {
	if interactive && !term.IsTerminal(int(os.Stdin.Fd())) {
		interactive = false
	}

	return &Prompt{
		interactive: interactive,
		in:          os.Stdin,
		out:         os.Stdout,
		log:         log,
	}
}

// NewWithStreams creates a prompt resolver reading and writing the given streams, used in tests
func NewWithStreams(interactive bool, in io.Reader, out io.Writer, log model.Logger) *Prompt {
	return &Prompt{
		interactive: interactive,
		in:          in,
		out:         out,
		log:         log,
	}
}

// Confirm asks a yes/no question, empty input selects the default
func (p *Prompt) Confirm(question string, dflt bool) (bool, error) {
	if !p.interactive {
		p.log.Debug("Non-interactive confirm", "question", question, "answer", dflt)
		return dflt, nil
	}

	hint := "y/N"
	if dflt {
		hint = "Y/n"
	}

	fmt.Fprintf(p.out, "%s [%s] ", question, hint)

	line, err := p.readLine()
	if err != nil {
		return dflt, err
	}

	switch strings.ToLower(line) {
	case "":
		return dflt, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("unrecognized answer %q", line)
	}
}

// Value asks for a string value, empty input selects the default
func (p *Prompt) Value(question string, dflt string) (string, error) {
	if !p.interactive {
		p.log.Debug("Non-interactive value", "question", question, "answer", dflt)
		return dflt, nil
	}

	if dflt != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", question, dflt)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}

	line, err := p.readLine()
	if err != nil {
		return dflt, err
	}

	if line == "" {
		return dflt, nil
	}

	return line, nil
}

func (p *Prompt) readLine() (string, error) {
	scanner := bufio.NewScanner(p.in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}

	return strings.TrimSpace(scanner.Text()), nil
}
