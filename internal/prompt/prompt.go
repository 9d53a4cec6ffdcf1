// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package prompt implements the sequential stdin prompts for the
// provisioning flow: free text with defaults, numbered selection and
// echo-off password entry.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are swapped out in tests, in the same way
// callers patch terminal reads elsewhere in the SDK ecosystem.
var (
	readPassword = func(fd int) ([]byte, error) {
		return term.ReadPassword(fd)
	}
	isTerminal = term.IsTerminal
)

// ErrNoInput is returned when input is exhausted before an answer is given.
var ErrNoInput = errors.New("no input")

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	// rawIn is retained so password entry can detect a real terminal.
	rawIn io.Reader
}

// New creates a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, rawIn: in}
}

// Line asks for a single line. An empty answer returns def; when def is
// empty the question is repeated until a non-empty answer arrives.
func (p *Prompter) Line(label, def string) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(p.out, "%s [%s]: ", label, def)
		} else {
			fmt.Fprintf(p.out, "%s: ", label)
		}
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			if def != "" {
				return def, nil
			}
			continue
		}
		return answer, nil
	}
}

// Select prints a numbered list and returns the index of the chosen option.
// Invalid or out-of-range answers repeat the question.
func (p *Prompter) Select(label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("prompt.Select: no options")
	}
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}
	for {
		fmt.Fprintf(p.out, "%s [1-%d]: ", label, len(options))
		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(p.out, "please enter a number between 1 and %d\n", len(options))
			continue
		}
		return n - 1, nil
	}
}

// Password asks for a password twice with echo disabled when in is a
// terminal. Empty or mismatched entries repeat the question.
func (p *Prompter) Password(label string) (string, error) {
	for {
		first, err := p.readSecret(label + ": ")
		if err != nil {
			return "", err
		}
		if first == "" {
			fmt.Fprintln(p.out, "password must not be empty")
			continue
		}
		second, err := p.readSecret(label + " (confirm): ")
		if err != nil {
			return "", err
		}
		if first != second {
			fmt.Fprintln(p.out, "passwords do not match, try again")
			continue
		}
		return first, nil
	}
}

func (p *Prompter) readSecret(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if f, ok := p.rawIn.(*os.File); ok && isTerminal(int(f.Fd())) {
		b, err := readPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("prompt.readSecret: %w", err)
		}
		return string(b), nil
	}
	// Not a terminal (tests, pipes): fall back to a plain line read.
	return p.readLine()
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			return "", ErrNoInput
		}
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("prompt.readLine: %w", err)
		}
	}
	return strings.TrimSpace(line), nil
}
