package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/palette"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type state int

const (
	stateMenu state = iota
	stateConfig
)

const nudge = 0.01

var fieldNames = []string{"a", "b", "c", "d", "hue"}

type model struct {
	state   state
	cursor  int
	presets []config.Preset

	field   int
	editing bool
	editBuf string

	chosen bool
	width  int
	height int
}

// Selection is the outcome of the picker.
type Selection struct {
	Index   int
	Presets []config.Preset
	Chosen  bool
}

func newModel(presets []config.Preset, start int) model {
	table := make([]config.Preset, len(presets))
	copy(table, presets)
	if start < 0 || start >= len(table) {
		start = 0
	}
	return model{presets: table, cursor: start, width: 80, height: 24}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateConfig {
			return m.configKey(msg)
		}
		return m.menuKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "e", "tab":
		m.state = stateConfig
		m.field = 0
	case "enter", " ":
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
				m.set(m.field, v)
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 && strings.ContainsAny(s, "0123456789.-") {
				m.editBuf += s
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.state = stateMenu
	case "up", "k":
		if m.field > 0 {
			m.field--
		}
	case "down", "j":
		if m.field < len(fieldNames)-1 {
			m.field++
		}
	case "left", "h":
		m.set(m.field, m.get(m.field)-nudge)
	case "right", "l":
		m.set(m.field, m.get(m.field)+nudge)
	case "enter":
		m.editing = true
		m.editBuf = ""
	case "s":
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) get(field int) float64 {
	p := m.presets[m.cursor]
	return [...]float64{p.Params.A, p.Params.B, p.Params.C, p.Params.D, p.Hue}[field]
}

// set edits a coefficient of the highlighted preset. Hue wraps into
// [0, 1).
func (m *model) set(field int, v float64) {
	p := &m.presets[m.cursor]
	switch field {
	case 0:
		p.Params.A = v
	case 1:
		p.Params.B = v
	case 2:
		p.Params.C = v
	case 3:
		p.Params.D = v
	case 4:
		v -= float64(int(v))
		if v < 0 {
			v++
		}
		p.Hue = v
	}
}

func (m model) View() string {
	if m.state == stateConfig {
		return m.viewConfig()
	}
	return m.viewMenu()
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("a t t r a c t o r") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, p := range m.presets {
		name := fmt.Sprintf("%-20s", p.Name)
		desc := p.Pattern.String()
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + Swatch(p.Hue) + " " + white.Render(name) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + Swatch(p.Hue) + " " + dim.Render(name) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter start   e edit   q quit") + "\n")
	return b.String()
}

func (m model) viewConfig() string {
	p := m.presets[m.cursor]
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + Swatch(p.Hue) + " " + cyan.Render(p.Name) + "  " + dim.Render(p.Pattern.String()) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	for i, name := range fieldNames {
		val := fmt.Sprintf("%8.3f", m.get(i))
		if m.editing && i == m.field {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.field {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s start  esc back") + "\n")
	return b.String()
}

// Swatch renders a two-cell block in the preset's base hue.
func Swatch(hue float64) string {
	r, g, bl := palette.HSLToRGB(hue, 0.8, 0.55)
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(bl) / 255}
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
}

func (m model) selection() Selection {
	return Selection{Index: m.cursor, Presets: m.presets, Chosen: m.chosen}
}

// Pick shows the preset menu and returns the highlighted preset and the
// possibly edited table. The input table is not modified.
func Pick(presets []config.Preset, start int) (Selection, error) {
	final, err := tea.NewProgram(newModel(presets, start), tea.WithAltScreen()).Run()
	if err != nil {
		return Selection{}, err
	}
	return final.(model).selection(), nil
}
