package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"planetoids/internal/config"
	"planetoids/internal/geom"
	"planetoids/internal/pick"
	"planetoids/internal/scene"
	"planetoids/internal/sim"
)

const (
	canvasWidth  = 80
	canvasHeight = 30
	tickHistory  = 120
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 0)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).Width(42)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true)
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model runs the orbital system in the terminal: braille canvas on the
// left, stats panel on the right, left click to highlight the nearest body.
type Model struct {
	cfg    *config.Config
	sys    *scene.Scene
	runner *sim.Runner
	proj   Projection
	canvas *Canvas

	running   bool
	lastTick  time.Time
	tickTimes []float64 // frame intervals, ms

	selected int
	pickDist float64
}

// NewModel builds the system from cfg and prepares the terminal view.
func NewModel(cfg *config.Config) (Model, error) {
	sys, err := scene.Build(cfg.Planets, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return Model{}, err
	}
	return Model{
		cfg:       cfg,
		sys:       sys,
		runner:    sim.NewRunner(sys),
		proj:      NewProjection(canvasWidth, canvasHeight, systemRadius(sys)),
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		running:   true,
		tickTimes: make([]float64, 0, tickHistory),
		selected:  -1,
	}, nil
}

// systemRadius is the outermost reach of any orbit, for fitting the view.
func systemRadius(s *scene.Scene) float64 {
	max := 0.0
	for _, p := range s.Planets {
		reach := p.Radius
		for _, m := range p.Moons {
			if p.Radius+m.Radius > reach {
				reach = p.Radius + m.Radius
			}
		}
		if reach > max {
			max = reach
		}
	}
	return max
}

func (m Model) Init() tea.Cmd {
	return tick(m.cfg.FPS)
}

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			m.lastTick = time.Time{}
		case "r":
			m.rebuild(time.Now().UnixNano())
		case "+", "=":
			m.proj.Scale *= 1.2
		case "-", "_":
			m.proj.Scale /= 1.2
		}

	case tea.MouseMsg:
		// The pick source follows the cursor; selection happens on the
		// press edge only.
		m.sys.Camera.Pick.CursorX = float64(msg.X)
		m.sys.Camera.Pick.CursorY = float64(msg.Y)
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			point := m.proj.CellToWorld(msg.X, msg.Y)
			m.selected = pick.Select(m.sys, point)
			if m.selected >= 0 {
				m.pickDist = m.sys.Bodies()[m.selected].Position.Distance(point)
			}
		}

	case TickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			elapsed := now.Sub(m.lastTick)
			if m.running {
				m.runner.Advance(elapsed.Seconds())
			}
			m.tickTimes = append(m.tickTimes, float64(elapsed.Microseconds())/1000)
			if len(m.tickTimes) > tickHistory {
				m.tickTimes = m.tickTimes[1:]
			}
		}
		m.lastTick = now
		return m, tick(m.cfg.FPS)
	}
	return m, nil
}

func (m *Model) rebuild(seed int64) {
	sys, err := scene.Build(m.cfg.Planets, rand.New(rand.NewSource(seed)))
	if err != nil {
		return
	}
	m.sys = sys
	m.runner = sim.NewRunner(sys)
	m.proj = NewProjection(canvasWidth, canvasHeight, systemRadius(sys))
	m.selected = -1
}

func (m Model) View() string {
	m.draw()

	var s strings.Builder
	s.WriteString(headerStyle.Render("PLANETOIDS") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.runner.Time())) + "\n")
	s.WriteString(labelStyle.Render("Planets") + valueStyle.Render(fmt.Sprintf("%d", len(m.sys.Planets))) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", len(m.sys.Bodies()))) + "\n")

	if m.selected >= 0 {
		s.WriteString(labelStyle.Render("Picked") +
			selectedStyle.Render(fmt.Sprintf("body %d (%.3f away)", m.selected, m.pickDist)) + "\n")
	} else {
		s.WriteString(labelStyle.Render("Picked") + valueStyle.Render("nothing") + "\n")
	}

	if len(m.tickTimes) > 1 {
		chart := asciigraph.Plot(m.tickTimes,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("frame ms"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("click: pick  SP: pause  R: reshuffle\n+/-: zoom    Q: quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(s.String()),
	)
}

// draw renders the system top-down, the same view as the windowed camera.
func (m *Model) draw() {
	m.canvas.Clear()

	// Orbit rings, then the sun, then bodies over them.
	cx, cy := m.proj.ToDots(geom.Vec3{})
	for _, p := range m.sys.Planets {
		m.canvas.StrokeCircle(cx, cy, p.Radius*m.proj.Scale)
	}
	m.canvas.FillCircle(cx, cy, dotRadius(m.sys.Sun.DrawRadius, m.proj.Scale))

	for i, b := range m.sys.Bodies() {
		x, y := m.proj.ToDots(b.Position)
		r := dotRadius(b.DrawRadius, m.proj.Scale)
		m.canvas.FillCircle(x, y, r)
		if i == m.selected {
			m.canvas.StrokeCircle(x, y, float64(r)+3)
		}
	}
}

// dotRadius keeps tiny bodies visible at terminal resolution.
func dotRadius(drawRadius, scale float64) int {
	r := int(drawRadius * scale)
	if r < 1 {
		r = 1
	}
	return r
}

// Run starts the terminal front end and blocks until the user quits.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
