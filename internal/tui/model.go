package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxLogLines = 200

type Model struct {
	cmd *Commander

	input    textinput.Model
	logView  viewport.Model
	logLines []string
	quitting bool

	width  int
	height int
}

func NewModel(cmd *Commander) Model {
	ti := textinput.New()
	ti.Placeholder = "e7 e6, moves e7, pass, help..."
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	m := Model{
		cmd:     cmd,
		input:   ti,
		logView: viewport.New(40, 12),
	}
	m.appendLog(fmt.Sprintf("game %s, %v to move (help for commands)", shortID(cmd.Game().ID), cmd.Game().Turn()))
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.logView.Width = max(20, m.width-boardWidth-6)
		m.logView.Height = max(5, m.height-8)
		m.input.Width = min(80, max(20, m.width-6))
		m.logView.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.input.SetValue("")
			m.cmd.ClearMarks()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.logView, cmd = m.logView.Update(msg)
			return m, cmd
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			m.appendLog("> " + line)
			out, quit := m.cmd.Exec(line)
			for _, s := range out {
				m.appendLog(s)
			}
			if quit {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
	m.logView.SetContent(strings.Join(m.logLines, "\n"))
	m.logView.GotoBottom()
}

// 4 columns of rank labels plus 9 points of 3.
const boardWidth = 4 + 3*9

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	g := m.cmd.Game()
	header := titleStyle.Render(fmt.Sprintf("janggi  [%s]  %s", shortID(g.ID), status(g)))

	board := boxStyle.Render(RenderBoard(g, m.cmd.Marks()))
	logBox := boxStyle.Render(m.logView.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, board, logBox)

	inputBox := boxStyle.Render(m.input.View())
	return header + "\n" + body + "\n" + inputBox + "\n"
}

// Run starts the full-screen program on the terminal.
func Run(cmd *Commander) error {
	p := tea.NewProgram(NewModel(cmd), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
