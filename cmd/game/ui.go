package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/hmseo/gungwol/pkg/game"
	"github.com/hmseo/gungwol/pkg/world"
)

const PlaceholderText = "What do you do?"

var (
	storyPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	storyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	endingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // yellow
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

// lineBuffer implements game.Host. The controller writes into it
// synchronously while handling one input line; the UI drains it after
// each call.
type lineBuffer struct {
	lines []string
	ended bool
}

func (b *lineBuffer) Write(line string) { b.lines = append(b.lines, line) }

func (b *lineBuffer) EndGame() { b.ended = true }

func (b *lineBuffer) drain() []string {
	lines := b.lines
	b.lines = nil
	return lines
}

// GameUI is the BubbleTea model that runs the terminal host.
// https://github.com/charmbracelet/bubbletea
type GameUI struct {
	controller *game.Controller
	buf        *lineBuffer

	transcript    []string // raw, unstyled lines; "> " marks player input
	storyViewport viewport.Model
	metaViewport  viewport.Model
	textinput     textinput.Model
	ready         bool
	width         int
	height        int
	turns         int
	copied        bool

	showQuitModal bool
}

func NewGameUI(log *slog.Logger) GameUI {
	ti := textinput.New()
	ti.Placeholder = PlaceholderText
	ti.Focus()
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = 200

	buf := &lineBuffer{}
	ctrl := game.NewController(buf, log)
	ctrl.Begin()

	ui := GameUI{
		controller:    ctrl,
		buf:           buf,
		textinput:     ti,
		storyViewport: viewport.New(50, 20),
		metaViewport:  viewport.New(20, 20),
	}
	ui.transcript = append(ui.transcript, buf.drain()...)
	return ui
}

func (m GameUI) Init() tea.Cmd {
	return textinput.Blink
}

func (m GameUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.storyViewport, vpCmd = m.storyViewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		storyWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - storyWidth - 6

		m.storyViewport.Width = storyWidth - 2
		m.storyViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textinput.Width = storyWidth - 8

		m.ready = true
		m.writeStoryContent()
		m.metaViewport.SetContent(m.writeStatus())

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil

		case tea.KeyCtrlY:
			// Copy the raw transcript, without styling.
			if err := clipboard.WriteAll(strings.Join(m.transcript, "\n")); err == nil {
				m.copied = true
				m.metaViewport.SetContent(m.writeStatus())
			}
			return m, nil

		case tea.KeyEnter:
			if m.controller.Ended() {
				return m, nil
			}
			input := strings.TrimSpace(m.textinput.Value())
			if input == "" {
				return m, nil
			}
			m.textinput.Reset()
			m.turns++

			m.transcript = append(m.transcript, "", "> "+input)
			m.controller.Handle(input)
			m.transcript = append(m.transcript, m.buf.drain()...)

			if m.controller.Ended() {
				m.textinput.Blur()
				m.textinput.Placeholder = "The story has ended."
			}

			m.writeStoryContent()
			m.metaViewport.SetContent(m.writeStatus())
			return m, nil
		}
	}

	m.textinput, tiCmd = m.textinput.Update(msg)
	m.storyViewport, vpCmd = m.storyViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

// writeStoryContent reformats the whole transcript for the current
// viewport width.
func (m *GameUI) writeStoryContent() {
	storyWidth := m.storyViewport.Width - 6
	if storyWidth < 20 {
		storyWidth = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("GUNGWOL") + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", storyWidth)) + "\n\n")

	for _, line := range m.transcript {
		if strings.HasPrefix(line, "> ") {
			content.WriteString(userStyle.Render(line) + "\n")
			continue
		}
		content.WriteString(storyStyle.Render(wordwrap.String(line, storyWidth)) + "\n")
	}

	if m.controller.Ended() {
		content.WriteString("\n" + endingStyle.Render("THE END") + "\n")
	}

	m.storyViewport.SetContent(content.String())
	m.storyViewport.GotoBottom()
}

func (m *GameUI) writeStatus() string {
	gs := m.controller.State()

	var content strings.Builder
	content.WriteString(titleStyle.Render("STATUS") + "\n\n")

	content.WriteString("Location:\n")
	content.WriteString(gs.CurrentLocation.DisplayName() + "\n\n")

	content.WriteString(fmt.Sprintf("Turns: %d\n\n", m.turns))

	content.WriteString("Inventory:\n")
	if len(gs.Inventory) == 0 {
		content.WriteString("(empty)\n")
	} else {
		for _, item := range gs.Inventory {
			content.WriteString("• " + item.DisplayName() + "\n")
		}
	}
	content.WriteString("\n")

	content.WriteString("Blessed:\n")
	blessedAny := false
	for _, loc := range []world.Location{world.ThroneHall, world.Temple} {
		if gs.IsBlessed(loc) {
			content.WriteString("• " + loc.DisplayName() + "\n")
			blessedAny = true
		}
	}
	if !blessedAny {
		content.WriteString("(none)\n")
	}
	content.WriteString("\n")

	content.WriteString("Keys:\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• Ctrl+Y: Copy transcript\n")
	content.WriteString("• Ctrl+C: Quit\n")

	if m.copied {
		content.WriteString("\nTranscript copied.\n")
	}

	return content.String()
}

func (m GameUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				if !m.controller.Ended() {
					m.textinput.Focus()
					return m, textinput.Blink
				}
				return m, nil
			}
		}
	}

	return m, nil
}

func (m GameUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Leave the Palace?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to quit?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	storyWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - storyWidth - 6

	storyPanel := storyPanelStyle.Width(storyWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.storyViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", storyWidth-4)),
			m.textinput.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, storyPanel, metaPanel)
}
