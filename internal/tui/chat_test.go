package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/margdarshak/disha/internal/agent"
	"github.com/margdarshak/disha/internal/dataset"
)

func testModel(t *testing.T) *ChatModel {
	t.Helper()
	d, warnings, err := dataset.Load("../../data/careers.json")
	require.NoError(t, err)
	require.Empty(t, warnings)

	m := NewChatModel(agent.New(d, nil, nil))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func TestSubmitRendersBothSides(t *testing.T) {
	m := testModel(t)

	m.input.SetValue("hello")
	m.submit()

	require.Len(t, m.turns, 2)
	assert.Contains(t, m.turns[0], "hello")
	assert.Contains(t, m.turns[1], "career guidance assistant")
	assert.Empty(t, m.input.Value(), "input clears after sending")

	view := m.View()
	assert.Contains(t, view, "career guidance assistant")
}

func TestSubmitIgnoresBlankInput(t *testing.T) {
	m := testModel(t)

	m.input.SetValue("   ")
	m.submit()
	assert.Empty(t, m.turns)
}

func TestCtrlRRestartsConversation(t *testing.T) {
	m := testModel(t)

	m.input.SetValue("hello")
	m.submit()
	require.NotEmpty(t, m.turns)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Empty(t, m.turns)
	assert.False(t, m.complete)

	// The restarted conversation replays from the welcome.
	m.input.SetValue("hello")
	m.submit()
	assert.Contains(t, m.turns[1], "career guidance assistant")
}

func TestHintReflectsCompletion(t *testing.T) {
	m := testModel(t)

	assert.Contains(t, m.View(), "enter: send")

	for _, in := range []string{
		"hello", "physics, chemistry and maths", "history",
		"85-90%", "robots and coding", "yes", "very high", "building things",
	} {
		m.input.SetValue(in)
		m.submit()
	}
	require.True(t, m.complete)
	assert.True(t, strings.Contains(m.View(), "conversation complete"))
}
