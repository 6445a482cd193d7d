package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/margdarshak/disha/internal/agent"
)

var (
	studentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	agentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	borderStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ChatModel is the terminal conversation view: a scrollback viewport over the
// transcript and a single-line input for the next utterance.
type ChatModel struct {
	agent *agent.Agent

	viewport viewport.Model
	input    textinput.Model
	turns    []string
	complete bool
	ready    bool
}

// NewChatModel wraps an agent for interactive terminal use.
func NewChatModel(a *agent.Agent) *ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Say hello to begin..."
	ti.CharLimit = 500
	ti.Focus()

	return &ChatModel{agent: a, input: ti}
}

func (m *ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		inputHeight := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-inputHeight-1)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - inputHeight - 1
		}
		m.input.Width = msg.Width - 6
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			m.agent.Reset()
			m.turns = nil
			m.complete = false
			m.input.SetValue("")
			m.input.Placeholder = "Say hello to begin..."
			m.refresh()
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit sends the typed utterance through the agent and appends both sides
// of the exchange to the transcript.
func (m *ChatModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	m.input.SetValue("")
	m.input.Placeholder = "Type your answer..."

	reply, complete := m.agent.ProcessInput(context.Background(), text)
	m.turns = append(m.turns,
		studentStyle.Render("You: ")+text,
		agentStyle.Render("Disha: ")+reply,
	)
	m.complete = complete
	m.refresh()
	return m, nil
}

func (m *ChatModel) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.turns, "\n\n"))
	m.viewport.GotoBottom()
}

func (m *ChatModel) View() string {
	if !m.ready {
		return "loading..."
	}

	hint := "enter: send • ctrl+r: restart • esc: quit"
	if m.complete {
		hint = "conversation complete • ctrl+r: restart • esc: quit"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		borderStyle.Width(m.viewport.Width-2).Render(m.input.View()),
		hintStyle.Render(hint),
	)
}
