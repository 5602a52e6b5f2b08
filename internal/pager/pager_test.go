package pager

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(n int) string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = fmt.Sprintf("row %02d", i)
	}
	return strings.Join(rows, "\n")
}

func sized(t *testing.T, content string, w, h int) model {
	t.Helper()
	next, _ := newModel("data.yaml", content).Update(tea.WindowSizeMsg{Width: w, Height: h})
	m, ok := next.(model)
	require.True(t, ok)
	return m
}

func TestModel_NotReadyBeforeSize(t *testing.T) {
	m := newModel("x", "content")
	assert.Equal(t, "", m.View())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.False(t, next.(model).ready)
}

func TestModel_WindowSize(t *testing.T) {
	m := sized(t, lines(3), 40, 11)
	assert.True(t, m.ready)
	assert.Equal(t, 40, m.viewport.Width)
	assert.Equal(t, 10, m.viewport.Height)
	view := m.View()
	assert.Contains(t, view, "row 00")
	assert.Contains(t, view, "data.yaml")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 0})
	m = next.(model)
	assert.Equal(t, 20, m.viewport.Width)
	assert.Equal(t, 1, m.viewport.Height)
}

func TestModel_QuitKeys(t *testing.T) {
	m := sized(t, lines(3), 40, 10)
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, key.String())
		assert.IsType(t, tea.QuitMsg{}, cmd(), key.String())
	}
}

func TestModel_Scroll(t *testing.T) {
	m := sized(t, lines(50), 40, 6)
	assert.Equal(t, 0, m.viewport.YOffset)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	assert.Equal(t, 1, m.viewport.YOffset)
	assert.Contains(t, m.View(), "row 01")
	assert.NotContains(t, m.View(), "row 00")
}
