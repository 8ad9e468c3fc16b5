// Package tui renders a life session in the terminal with bubbletea. Every
// character cell covers a fixed square of viewport pixels, so shrinking the
// simulated cells packs more of the board into each character.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mad-life/internal/app"
	"mad-life/internal/ui"
)

const (
	aliveGlyph = "█"
	deadGlyph  = "·"
)

type frameMsg time.Time

// Model is the bubbletea model driving a Session.
type Model struct {
	session  *app.Session
	pixels   int
	interval time.Duration
	styles   Styles

	width, height int
	sized         bool
	help          bool
}

// New returns a model where each character stands for a pixels×pixels square
// of the viewport, refreshed every interval.
func New(s *app.Session, pixels int, interval time.Duration) Model {
	if pixels <= 0 {
		pixels = 1
	}
	if interval <= 0 {
		interval = time.Second / 60
	}
	return Model{
		session:  s,
		pixels:   pixels,
		interval: interval,
		styles:   DefaultStyles(),
	}
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnableMouseCellMotion, m.frame())
}

// Update handles input, resizes and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.session.Update()
		return m, m.frame()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		rows := max(m.height-1, 1)
		m.session.Resize(m.width*m.pixels, rows*m.pixels)
		if !m.sized {
			m.sized = true
			if err := m.session.Replant(); err != nil {
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.help {
			m.session.Click(msg.X*m.pixels+m.pixels/2, msg.Y*m.pixels+m.pixels/2)
		}
		return m, nil

	case tea.KeyMsg:
		ctrl := m.session.Ctrl
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.session.Close()
			return m, tea.Quit
		case " ":
			ctrl.ToggleRunning()
		case "n":
			ctrl.Advance()
		case "r":
			ctrl.ResetDefault()
		case "s":
			m.session.Reseed()
		case "h", "?":
			m.help = !m.help
		}
		return m, nil
	}
	return m, nil
}

// View renders the board with a status line underneath.
func (m Model) View() string {
	status := ui.StatusLine(m.session.Ctrl.State(), m.session.Ctrl.Geometry()) + "  h help"
	if m.help {
		return m.styles.Help.Render(strings.Join(ui.HelpLines(), "\n")) + "\n" + m.styles.Status.Render(status)
	}
	if !m.sized {
		return m.styles.Status.Render(status)
	}
	var b strings.Builder
	for _, line := range m.board() {
		b.WriteString(m.renderRow(line))
		b.WriteByte('\n')
	}
	b.WriteString(m.styles.Status.Render(status))
	return b.String()
}

// board samples the frame into one bool per character. A character is alive
// when any simulated cell inside its square is.
func (m Model) board() [][]bool {
	rows := max(m.height-1, 1)
	frame := m.session.Frame
	size := max(frame.CellSize, 1)
	out := make([][]bool, rows)
	for y := range out {
		out[y] = make([]bool, m.width)
		r0, r1 := y*m.pixels/size, ((y+1)*m.pixels-1)/size
		for x := range out[y] {
			c0, c1 := x*m.pixels/size, ((x+1)*m.pixels-1)/size
			out[y][x] = anyAlive(frame.At, r0, r1, c0, c1)
		}
	}
	return out
}

func anyAlive(at func(x, y int) bool, r0, r1, c0, c1 int) bool {
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if at(c, r) {
				return true
			}
		}
	}
	return false
}

func (m Model) renderRow(cells []bool) string {
	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		for j < len(cells) && cells[j] == cells[i] {
			j++
		}
		if cells[i] {
			b.WriteString(m.styles.Alive.Render(strings.Repeat(aliveGlyph, j-i)))
		} else {
			b.WriteString(m.styles.Dead.Render(strings.Repeat(deadGlyph, j-i)))
		}
		i = j
	}
	return b.String()
}
