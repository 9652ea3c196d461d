// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Prompter asks the user for secrets such as passphrases and passwords.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	interactive bool
	terminal    bool
}

// NewPrompter builds a Prompter reading from in and drawing to out. When
// interactive is false every prompt fails with [ErrSecretRequired].
//
// The masked Bubble Tea input is used only if in is a terminal; otherwise a
// single line is read from in, which keeps piping secrets possible.
func NewPrompter(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{
		in:          in,
		out:         out,
		interactive: interactive,
		terminal:    isTerminal(in),
	}
}

// Secret returns value when it is not empty. Otherwise it prompts for the
// secret described by label.
func (p *Prompter) Secret(label, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	if !p.interactive {
		return "", fmt.Errorf("%w: %s", ErrSecretRequired, strings.ToLower(label))
	}
	if !p.terminal {
		return p.readLine(label)
	}
	return p.runSecretProgram(label)
}

func (p *Prompter) readLine(label string) (string, error) {
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}

	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("%w: %s", ErrSecretRequired, strings.ToLower(label))
	}
	return line, nil
}

func (p *Prompter) runSecretProgram(label string) (string, error) {
	program := tea.NewProgram(newSecretModel(label), tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("prompt %s: %w", strings.ToLower(label), err)
	}

	result, ok := final.(secretModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.cancelled {
		return "", ErrUserQuit
	}
	return result.input.Value(), nil
}

// secretModel is a single masked input. Enter submits a non-empty value,
// esc and ctrl+c cancel.
type secretModel struct {
	label     string
	input     textinput.Model
	errMsg    string
	done      bool
	cancelled bool
}

func newSecretModel(label string) secretModel {
	input := textinput.New()
	input.Placeholder = strings.ToLower(label)
	input.CharLimit = 1024
	input.Width = 48
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return secretModel{label: label, input: input}
}

func (m secretModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m secretModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.submit):
			if m.input.Value() == "" {
				m.errMsg = m.label + " cannot be empty"
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m secretModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(m.label + ":"))
	b.WriteString(" ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(warnStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: confirm, esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
