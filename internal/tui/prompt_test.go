// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_FlagValueWins(t *testing.T) {
	p := NewPrompter(strings.NewReader("typed\n"), &bytes.Buffer{}, true)

	got, err := p.Secret("Passphrase", "from-flag")

	require.NoError(t, err)
	assert.Equal(t, "from-flag", got)
}

func TestPrompter_NonInteractive(t *testing.T) {
	p := NewPrompter(strings.NewReader("typed\n"), &bytes.Buffer{}, false)

	_, err := p.Secret("Passphrase", "")

	assert.ErrorIs(t, err, ErrSecretRequired)
}

func TestPrompter_ReadsLineWhenNotTerminal(t *testing.T) {
	p := NewPrompter(strings.NewReader("correct horse\r\nignored\n"), &bytes.Buffer{}, true)

	got, err := p.Secret("Passphrase", "")

	require.NoError(t, err)
	assert.Equal(t, "correct horse", got)
}

func TestPrompter_EmptyLine(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{}, true)

	_, err := p.Secret("Password", "")

	assert.ErrorIs(t, err, ErrSecretRequired)
}

func TestSecretModel_Submit(t *testing.T) {
	m := newSecretModel("Passphrase")

	var model tea.Model = m
	for _, r := range "abc" {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	result := model.(secretModel)
	assert.True(t, result.done)
	assert.Equal(t, "abc", result.input.Value())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, result.View())
}

func TestSecretModel_EmptySubmitShowsError(t *testing.T) {
	model, cmd := newSecretModel("Password").Update(tea.KeyMsg{Type: tea.KeyEnter})

	result := model.(secretModel)
	assert.Nil(t, cmd)
	assert.False(t, result.done)
	assert.Contains(t, result.View(), "Password cannot be empty")
}

func TestSecretModel_Cancel(t *testing.T) {
	model, _ := newSecretModel("Password").Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, model.(secretModel).cancelled)
}

func TestSecretModel_ViewMasksInput(t *testing.T) {
	var model tea.Model = newSecretModel("Password")
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hunter2")})

	view := model.View()
	assert.NotContains(t, view, "hunter2")
	assert.Contains(t, view, "*")
}
