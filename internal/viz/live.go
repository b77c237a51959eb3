package viz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/attractor/internal/render"
)

const (
	sidebarWidth    = 36
	minSidebarCols  = 100
	historyCapacity = 240
	brailleLevel    = 48
)

// Options configure the live terminal host.
type Options struct {
	FPS         int
	Supersample int
	Braille     bool
	Theme       string
}

type TickMsg time.Time

// Model is the Bubble Tea model that animates a compositor in the
// terminal.
type Model struct {
	comp     *render.Compositor
	canvas   *render.Canvas
	interval time.Duration
	super    int
	braille  bool
	theme    Theme
	styles   styles

	width, height int
	cols, rows    int
	sidebar       bool

	last      time.Time
	fps       float64
	frames    int
	drift     [4][]float64
	drawn     []float64
	showHelp  bool
	lastStats render.FrameStats
}

// NewModel wraps a compositor whose surface is a raster canvas.
func NewModel(comp *render.Compositor, opts Options) (Model, error) {
	canvas, ok := comp.Surface().(*render.Canvas)
	if !ok {
		return Model{}, errors.New("live view needs a raster canvas surface")
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}

	theme := GetTheme(opts.Theme)
	m := Model{
		comp:     comp,
		canvas:   canvas,
		interval: time.Second / time.Duration(opts.FPS),
		super:    opts.Supersample,
		braille:  opts.Braille,
		theme:    theme,
		styles:   newStyles(theme),
		width:    80,
		height:   24,
	}
	m.layout()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update maps input onto compositor events and advances the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "enter", "n":
			m.comp.AdvancePreset()
		case "c":
			m.comp.ToggleColor()
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
		case "b":
			m.braille = !m.braille
			m.layout()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.comp.AdvancePreset()
		}
	case TickMsg:
		m.step(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step(now time.Time) {
	elapsed := m.interval
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now

	m.lastStats = m.comp.Frame(elapsed)
	m.frames++
	if s := elapsed.Seconds(); s > 0 {
		if m.fps == 0 {
			m.fps = 1 / s
		} else {
			m.fps = 0.9*m.fps + 0.1/s
		}
	}

	p := m.comp.State().Params
	for i, v := range [4]float64{p.A, p.B, p.C, p.D} {
		m.drift[i] = pushHistory(m.drift[i], v)
	}
	m.drawn = pushHistory(m.drawn, float64(m.lastStats.Drawn))
}

func pushHistory(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[len(h)-historyCapacity:]
	}
	return h
}

// layout splits the terminal between the attractor and the sidebar and
// resizes the raster to match the cell grid.
func (m *Model) layout() {
	m.sidebar = m.width >= minSidebarCols
	m.cols = m.width
	if m.sidebar {
		m.cols -= sidebarWidth
	}
	m.rows = m.height - 2
	m.cols, m.rows = max(m.cols, 1), max(m.rows, 1)

	pw, ph := m.cols, m.rows*2
	if m.braille {
		pw, ph = m.cols*2, m.rows*4
	}
	m.comp.Resize(pw*m.super, ph*m.super)
}

// View renders the name label, the attractor and the sidebar.
func (m Model) View() string {
	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.styles.help.Render(helpText))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.nameLine(),
		m.frame(),
		m.styles.hint.Render(truncate("click/space next · c color · b braille · t theme · ? help · q quit", m.cols)),
	)
	if !m.sidebar {
		return body
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, body, m.styles.sidebar.Height(m.height).Render(m.stats()))
}

func (m Model) nameLine() string {
	name, visible := m.comp.NameLabel()
	if !visible {
		return strings.Repeat(" ", m.cols)
	}
	return lipgloss.PlaceHorizontal(m.cols, lipgloss.Center, GradientText(name, m.theme.Primary, m.theme.Secondary))
}

func (m Model) frame() string {
	img := m.canvas.Image()
	if !m.braille {
		return HalfBlocks(img, m.cols, m.rows)
	}
	b := NewCanvas(m.cols, m.rows)
	b.Plot(img, brailleLevel)
	return m.styles.graph.Render(b.String())
}

func (m Model) stats() string {
	st := m.comp.State()
	p := m.comp.Preset()
	row := func(label, value string) string {
		return m.styles.label.Render(label) + m.styles.value.Render(value) + "\n"
	}

	var s strings.Builder
	s.WriteString(m.styles.header.Render(p.Name) + "\n\n")
	s.WriteString(row("pattern", p.Pattern.String()))
	s.WriteString(row("phase", fmt.Sprintf("%.2f", st.Phase)))
	s.WriteString(row("a b", fmt.Sprintf("%+.3f %+.3f", st.Params.A, st.Params.B)))
	s.WriteString(row("c d", fmt.Sprintf("%+.3f %+.3f", st.Params.C, st.Params.D)))
	s.WriteString(row("fps", fmt.Sprintf("%.1f", m.fps)))
	s.WriteString(row("drawn", fmt.Sprintf("%d culled %d", m.lastStats.Drawn, m.lastStats.Culled)))

	mode := "color"
	if !st.Color {
		mode = "grey"
	}
	if m.braille {
		mode += " braille"
	}
	s.WriteString(row("mode", mode))
	s.WriteString(row("theme", m.theme.Name))
	s.WriteString("\n" + Separator(sidebarWidth-4, m.styles.hint) + "\n")

	if len(m.drift[0]) > 1 {
		chart := asciigraph.PlotMany(m.drift[:],
			asciigraph.Height(6),
			asciigraph.Width(sidebarWidth-12),
			asciigraph.Precision(2),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue, asciigraph.Yellow),
			asciigraph.Caption("a b c d drift"),
		)
		s.WriteString(chart + "\n\n")
	}
	s.WriteString(m.styles.label.Render("drawn") + SparklineChart(m.drawn, sidebarWidth-14, m.styles.graph) + "\n")
	return s.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:max(n, 0)])
}

const helpText = `KEYBOARD SHORTCUTS

Click / Space / Enter / N   next pattern
C                           color / greyscale
B                           braille view
T                           cycle themes
?                           toggle this help
Q / Esc                     quit`

// Run starts the live view and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, comp *render.Compositor, opts Options) error {
	m, err := NewModel(comp, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("live view: %w", err)
	}
	return nil
}
