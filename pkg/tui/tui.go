// Package tui is the interactive probe panel: one selectable entry per roster
// credential and a result panel showing the most recent outcome.
package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wastetrack/authprobe/pkg/context"
	"github.com/wastetrack/authprobe/pkg/probe"
	"github.com/wastetrack/authprobe/pkg/tui/keymap"
	"github.com/wastetrack/authprobe/pkg/tui/styles"
)

// outcomeMsg delivers a finished probe back to the update loop.
type outcomeMsg struct {
	outcome probe.Outcome
}

// Model is the bubbletea model for the panel. It retains at most one outcome:
// the most recent.
type Model struct {
	engine *probe.Engine
	roster []probe.Credential

	styles  *styles.Styles
	keymap  *keymap.KeyMap
	help    help.Model
	spinner spinner.Model

	cursor  int
	loading bool
	latest  probe.Outcome

	baseURL  string
	hostname string
}

// NewModel creates the panel model. baseURL is shown as diagnostic metadata
// in the footer alongside the local hostname.
func NewModel(engine *probe.Engine, roster []probe.Credential, baseURL string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return Model{
		engine:   engine,
		roster:   roster,
		styles:   styles.DefaultStyles(),
		keymap:   keymap.DefaultKeyMap(),
		help:     help.New(),
		spinner:  sp,
		baseURL:  baseURL,
		hostname: hostname,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case outcomeMsg:
		m.loading = false
		m.latest = msg.outcome
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keymap.Up):
			if m.loading {
				return m, nil
			}
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.roster) - 1
			}

		case key.Matches(msg, m.keymap.Down):
			if m.loading {
				return m, nil
			}
			m.cursor++
			if m.cursor >= len(m.roster) {
				m.cursor = 0
			}

		case key.Matches(msg, m.keymap.Probe):
			// Probes never overlap; input is disabled while one is in flight.
			if m.loading || len(m.roster) == 0 {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.probeCmd(m.roster[m.cursor]))
		}
	}

	return m, nil
}

func (m Model) probeCmd(cred probe.Credential) tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg{outcome: m.engine.ProbeOne(context.Background(), cred)}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Waste Management auth smoke test"))
	b.WriteString("\n\n")

	for i, cred := range m.roster {
		style := m.styles.CredNormal
		marker := "( ) "
		if m.loading {
			style = m.styles.CredDisabled
		} else if i == m.cursor {
			style = m.styles.CredCursor
			marker = "(•) "
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s (%s)", marker, cred.Role, cred.Email)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.styles.Loading.Render(m.spinner.View() + "probing login endpoint..."))
		b.WriteString("\n")
	} else if m.latest != nil {
		b.WriteString(m.renderOutcome())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(fmt.Sprintf("API: %s • host: %s", m.baseURL, m.hostname)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))

	return m.styles.App.Render(b.String())
}

func (m Model) renderOutcome() string {
	cred := m.latest.Credential()

	switch o := m.latest.(type) {
	case probe.Success:
		var b strings.Builder
		b.WriteString("✅ Login successful\n\n")
		fmt.Fprintf(&b, "Email:    %s\n", cred.Email)
		fmt.Fprintf(&b, "Password: %s\n", cred.Password)
		fmt.Fprintf(&b, "Username: %s\n", o.Username)
		fmt.Fprintf(&b, "Role:     %s\n", o.Role)
		fmt.Fprintf(&b, "Token:    %s", o.TokenPrefix)
		return m.styles.SuccessPanel.Render(b.String())

	case probe.Rejected:
		payload := prettyJSON(struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		}{o.StatusCode, o.Message})
		return m.styles.ErrorPanel.Render(fmt.Sprintf(
			"❌ Login failed\n\nEmail:    %s\nPassword: %s\n\n%s",
			cred.Email, cred.Password, payload,
		))

	case probe.TransportFailed:
		payload := prettyJSON(struct {
			Error string `json:"error"`
		}{o.Reason})
		return m.styles.ErrorPanel.Render(fmt.Sprintf(
			"❌ Login failed\n\nEmail:    %s\nPassword: %s\n\n%s",
			cred.Email, cred.Password, payload,
		))
	}
	return ""
}

func prettyJSON(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(out)
}

// Run launches the interactive panel and blocks until the user quits.
func Run(engine *probe.Engine, roster []probe.Credential, baseURL string) error {
	p := tea.NewProgram(NewModel(engine, roster, baseURL))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive panel: %w", err)
	}
	return nil
}
