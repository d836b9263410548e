package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"schrod/internal/analysis"
	"schrod/internal/evolve"
	"schrod/internal/quantum"
)

const stepsPerTick = 5

type TickMsg time.Time

// LiveModel steps a wave packet in real time and redraws its density.
type LiveModel struct {
	stepper *evolve.Stepper
	grid    quantum.Grid
	initial quantum.Packet
	packet  quantum.Packet
	dt      float64
	t       float64
	steps   int
	running bool
	err     error
	title   string
	drift   *analysis.NormDrift
}

func NewLiveModel(title string, st *evolve.Stepper, g quantum.Grid, psi0 quantum.Packet, dt float64) LiveModel {
	drift := analysis.NewNormDrift(g.Dx)
	drift.Observe(evolve.Frame{Psi: psi0})
	return LiveModel{
		stepper: st,
		grid:    g,
		initial: psi0.Clone(),
		packet:  psi0.Clone(),
		dt:      dt,
		running: true,
		title:   title,
		drift:   drift,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LiveModel) Init() tea.Cmd { return tick() }

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.packet = m.initial.Clone()
			m.t = 0
			m.steps = 0
			m.err = nil
			m.drift.Reset()
			m.drift.Observe(evolve.Frame{Psi: m.packet})
		}
	case TickMsg:
		if m.running && m.err == nil {
			for i := 0; i < stepsPerTick; i++ {
				next, err := m.stepper.Step(m.packet)
				if err != nil {
					m.err = err
					break
				}
				m.packet = next
				m.steps++
				m.t += m.dt
			}
			m.drift.Observe(evolve.Frame{Step: m.steps, Time: m.t, Psi: m.packet})
		}
		return m, tick()
	}
	return m, nil
}

func (m LiveModel) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(m.title) + "\n")
	b.WriteString(GraphStyle.Render(Density(m.packet, m.t)) + "\n")

	status := StatusRunning.Render("running")
	if !m.running {
		status = StatusPaused.Render("paused")
	}
	mean, _ := analysis.MeanX(m.grid, m.packet.Density())

	stats := []string{
		LabelStyle.Render("status") + ValueStyle.Render(status),
		LabelStyle.Render("time") + ValueStyle.Render(fmt.Sprintf("%.3f", m.t)),
		LabelStyle.Render("steps") + ValueStyle.Render(fmt.Sprintf("%d", m.steps)),
		LabelStyle.Render("norm") + ValueStyle.Render(fmt.Sprintf("%.9f", m.drift.Current())),
		LabelStyle.Render("drift") + ValueStyle.Render(fmt.Sprintf("%.2e", m.drift.Value())),
		LabelStyle.Render("<x>") + ValueStyle.Render(fmt.Sprintf("%.4f", mean)),
	}
	b.WriteString(StatsStyle.Render(strings.Join(stats, "\n")) + "\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("error: %v\n", m.err))
	}
	b.WriteString(HelpStyle.Render("space pause · r reset · q quit"))
	return b.String()
}

// RunLive blocks in the live view until the user quits.
func RunLive(title string, st *evolve.Stepper, g quantum.Grid, psi0 quantum.Packet, dt float64) error {
	_, err := tea.NewProgram(NewLiveModel(title, st, g, psi0, dt)).Run()
	return err
}
