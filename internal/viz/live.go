package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amaren/dynlab/internal/basin"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type cellMsg struct{ i, j, label int }

type runDoneMsg struct{ err error }

// LiveModel is a bubbletea model that shows a basin classification
// filling in cell by cell.
type LiveModel struct {
	name     string
	clf      *basin.Classifier
	nx, ny   int
	cells    [][]int
	done     int
	total    int
	started  time.Time
	finished bool
	err      error
	updates  chan tea.Msg
	runDone  chan struct{}
	cancel   context.CancelFunc
}

// NewLive prepares a live view for one classification run. The run
// itself starts when the program calls Init.
func NewLive(name string, clf *basin.Classifier, cfg basin.Config) (*LiveModel, error) {
	grid, err := basin.NewGrid(cfg.Region, cfg.Delta)
	if err != nil {
		return nil, err
	}

	cells := make([][]int, grid.NX)
	for i := range cells {
		cells[i] = make([]int, grid.NY)
		for j := range cells[i] {
			cells[i][j] = -1 // pending
		}
	}

	return &LiveModel{
		name:    name,
		clf:     clf,
		nx:      grid.NX,
		ny:      grid.NY,
		cells:   cells,
		total:   grid.Len(),
		updates: make(chan tea.Msg, 512),
		runDone: make(chan struct{}),
	}, nil
}

func (m *LiveModel) Init() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.started = time.Now()

	go func() {
		// Sends race against cancellation: once the user quits, nothing
		// drains updates, so every send must abort with the context.
		_, err := m.clf.RunObserved(ctx, func(i, j, label int) {
			select {
			case m.updates <- cellMsg{i, j, label}:
			case <-ctx.Done():
			}
		})
		select {
		case m.updates <- runDoneMsg{err}:
		case <-ctx.Done():
		}
		close(m.runDone)
	}()

	return m.wait()
}

func (m *LiveModel) wait() tea.Cmd {
	return func() tea.Msg { return <-m.updates }
}

func (m *LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cellMsg:
		if msg.i < m.nx && msg.j < m.ny {
			m.cells[msg.i][msg.j] = msg.label
			m.done++
		}
		return m, m.wait()

	case runDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *LiveModel) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("basin · %s", m.name)))
	sb.WriteByte('\n')

	for j := m.ny - 1; j >= 0; j-- {
		for i := 0; i < m.nx; i++ {
			label := m.cells[i][j]
			if label < 0 {
				sb.WriteString(cellStyles[0].Render("··"))
				continue
			}
			if label >= len(cellStyles) {
				label = 0
			}
			sb.WriteString(cellStyles[label].Render("██"))
		}
		sb.WriteByte('\n')
	}

	pct := 0.0
	if m.total > 0 {
		pct = 100 * float64(m.done) / float64(m.total)
	}
	sb.WriteString(labelStyle.Render("progress"))
	sb.WriteString(valueStyle.Render(fmt.Sprintf("%6.1f%% (%d/%d)", pct, m.done, m.total)))
	sb.WriteByte('\n')
	sb.WriteString(labelStyle.Render("elapsed"))
	sb.WriteString(valueStyle.Render(time.Since(m.started).Round(time.Millisecond).String()))
	sb.WriteByte('\n')

	if m.finished {
		if m.err != nil {
			sb.WriteString(valueStyle.Render("error: " + m.err.Error()))
		} else {
			sb.WriteString(valueStyle.Render("done"))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(helpStyle.Render("q quit"))
	return sb.String()
}
