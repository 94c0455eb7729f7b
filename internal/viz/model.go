package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/bouncebox/internal/loop"
	"github.com/san-kum/bouncebox/internal/world"
)

const (
	// PixelsPerDot is how many viewport pixels one braille dot covers.
	PixelsPerDot = 2.5

	historyCapacity = 120
	trailLength     = 12
)

type TickMsg time.Time

type Options struct {
	Interval  time.Duration
	Theme     string
	Observers []loop.Observer
}

// Model is the bubbletea model. It owns the world for the lifetime of the
// program.
type Model struct {
	world     *world.World
	interval  time.Duration
	observers []loop.Observer

	canvas      *Canvas
	trail       []world.Vec2
	freqHistory []float64

	theme    Theme
	styles   styles
	showHelp bool
	quitting bool
}

func NewModel(w *world.World, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = loop.DefaultInterval
	}
	theme := GetTheme(opts.Theme)
	cols, rows := cellsFor(w.Viewport)
	return Model{
		world:       w,
		interval:    opts.Interval,
		observers:   opts.Observers,
		canvas:      NewCanvas(cols, rows),
		trail:       make([]world.Vec2, 0, trailLength),
		freqHistory: make([]float64, 0, historyCapacity),
		theme:       theme,
		styles:      stylesFor(theme),
	}
}

// cellsFor returns the canvas size in terminal cells for a viewport.
func cellsFor(vp world.Viewport) (cols, rows int) {
	cols = int(math.Ceil(float64(vp.Width) / (2 * PixelsPerDot)))
	rows = int(math.Ceil(float64(vp.Height) / (4 * PixelsPerDot)))
	return max(cols, 1), max(rows, 1)
}

// viewportFor is the inverse of cellsFor.
func viewportFor(cols, rows int) (width, height int) {
	return int(float64(cols) * 2 * PixelsPerDot), int(float64(rows) * 4 * PixelsPerDot)
}

func (m Model) World() *world.World { return m.world }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update applies input as it arrives and advances the world on ticks, so
// all input queued before a tick is applied before that tick's physics.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = stylesFor(m.theme)
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		}
		if world.Dispatch(m.world, world.Press(keyFor(msg))) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		cols := msg.Width - panelWidth - 5
		rows := msg.Height - 2
		cols, rows = max(cols, 1), max(rows, 1)
		m.canvas.Resize(cols, rows)
		world.Dispatch(m.world, world.Resized(viewportFor(cols, rows)))
	case TickMsg:
		m.step()
		return m, m.tick()
	}
	return m, nil
}

func keyFor(msg tea.KeyMsg) world.Key {
	if msg.Type == tea.KeyEsc {
		return world.KeyExit
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return world.KeyForRune(msg.Runes[0])
	}
	return world.KeyOther
}

func (m *Model) step() {
	world.Advance(m.world)
	for _, o := range m.observers {
		o.OnTick(m.world)
	}

	m.freqHistory = append(m.freqHistory, m.world.Tracker.Freq)
	if len(m.freqHistory) > historyCapacity {
		m.freqHistory = m.freqHistory[1:]
	}
	m.trail = append(m.trail, m.world.Box.Pos)
	if len(m.trail) > trailLength {
		m.trail = m.trail[1:]
	}
	m.draw()
}

// dot converts a viewport point to canvas dot coordinates. The canvas has
// its origin at the top left.
func (m *Model) dot(x, y float64) (int, int) {
	h := m.canvas.Height * 4
	return int(math.Floor(x / PixelsPerDot)), h - 1 - int(math.Floor(y/PixelsPerDot))
}

func (m *Model) draw() {
	m.canvas.Clear()
	if !world.ShouldDraw(m.world) {
		return
	}
	for i := 1; i < len(m.trail); i++ {
		x0, y0 := m.dot(m.trail[i-1].X, m.trail[i-1].Y)
		x1, y1 := m.dot(m.trail[i].X, m.trail[i].Y)
		m.canvas.DrawLine(x0, y0, x1, y1)
	}
	r := world.DrawIntent(m.world).Rect
	x0, y1 := m.dot(r.MinX, r.MinY)
	x1, y0 := m.dot(r.MaxX-1e-9, r.MaxY-1e-9)
	m.canvas.FillRect(x0, y0, x1, y1)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	st, w := m.styles, m.world
	box := w.Box

	var canvas string
	if world.ShouldDraw(w) {
		canvas = lipgloss.NewStyle().Foreground(lipgloss.Color(box.Color.Hex())).Render(m.canvas.String())
	} else {
		canvas = st.hidden.Render(placeholder(m.canvas.Width, m.canvas.Height, "window too narrow"))
	}
	canvasView := st.frame.Render(canvas)

	var s strings.Builder
	s.WriteString(st.header.Render("BOUNCEBOX") + "\n")
	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Tick", fmt.Sprintf("%d", w.Tracker.Frames))
	row("Position", fmt.Sprintf("%.0f, %.0f", box.Pos.X, box.Pos.Y))
	row("Velocity", fmt.Sprintf("%.0f, %.0f", box.Vel.X, box.Vel.Y))
	row("Viewport", fmt.Sprintf("%dx%d", w.Viewport.Width, w.Viewport.Height))
	row("Bounce", fmt.Sprintf("%.4f /tick", w.Tracker.Freq))
	row("Heat", HeatBar(world.Heat(w.Tracker.Freq), 12))
	row("Color", Swatch(box.Color)+" "+box.Color.Hex())

	if len(m.freqHistory) > 1 {
		chart := asciigraph.Plot(m.freqHistory,
			asciigraph.Height(4),
			asciigraph.Width(panelWidth-10),
			asciigraph.Caption("bounce freq"))
		s.WriteString("\n" + st.graph.Render(chart) + "\n")
	}

	s.WriteString(st.help.Render("W:Faster S:Slower Esc:Quit\nT:Theme ?:Help"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Render(s.String()))

	if m.showHelp {
		return fmt.Sprintf(helpText, strings.Join(ThemeNames(), ", ")) + "\n" + mainView
	}
	return mainView
}

const helpText = `  W      speed up (+2 horizontal, +1 vertical)
  S      slow down (never below zero)
  Esc    quit
  T      cycle theme (%s)
  ?      toggle this help`

func placeholder(cols, rows int, msg string) string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(" ", cols)
	}
	if rows > 0 && len(msg) <= cols {
		lines[rows/2] = lipgloss.PlaceHorizontal(cols, lipgloss.Center, msg)
	}
	return strings.Join(lines, "\n")
}

// Run starts the terminal UI and blocks until the user quits.
func Run(w *world.World, opts Options) error {
	_, err := tea.NewProgram(NewModel(w, opts), tea.WithAltScreen()).Run()
	return err
}
