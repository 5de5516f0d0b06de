package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dropfour/dropfour/config"
	"github.com/dropfour/dropfour/engine"
	"github.com/dropfour/dropfour/game"
	"github.com/dropfour/dropfour/play"
)

var (
	humanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))   // red
	computerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))  // yellow
	frameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // grey
	statusStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type computerMovedMsg struct {
	col int
	err error
}

type model struct {
	match         *play.Match
	cursor        int
	thinking      bool
	status        string
	computerFirst bool
}

func newModel(match *play.Match, computerFirst bool) model {
	return model{
		match:         match,
		cursor:        game.Cols / 2,
		status:        "your move",
		computerFirst: computerFirst,
	}
}

func (m model) thinkCmd() tea.Cmd {
	return func() tea.Msg {
		col, err := m.match.RequestComputerMove()
		return computerMovedMsg{col: col, err: err}
	}
}

func (m model) Init() tea.Cmd {
	if m.computerFirst {
		return m.thinkCmd()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "left":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right":
			if m.cursor < game.Cols-1 {
				m.cursor++
			}

		case "1", "2", "3", "4", "5", "6", "7":
			m.cursor = int(key[0] - '1')
			return m.drop()

		case "enter", " ":
			return m.drop()

		case "u":
			return m.takeBack(), nil

		case "n":
			m.match.Reset()
			if m.computerFirst {
				m.match.SetComputerFirst()
			}
			m.thinking = m.computerFirst
			m.status = "new game"
			if m.computerFirst {
				return m, m.thinkCmd()
			}
		}

	case computerMovedMsg:
		m.thinking = false
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("computer played column %d (%.2fs)",
			msg.col+1, m.match.ThinkTime().Seconds())
		if m.match.IsGameOver() {
			m.status = gameOverStatus(m.match)
		}
	}

	return m, nil
}

func (m model) drop() (tea.Model, tea.Cmd) {
	if m.thinking || m.match.IsGameOver() {
		return m, nil
	}
	if _, err := m.match.ApplyHumanMove(m.cursor); err != nil {
		m.status = err.Error()
		return m, nil
	}
	if m.match.IsGameOver() {
		m.status = gameOverStatus(m.match)
		return m, nil
	}
	m.thinking = true
	m.status = "thinking..."
	return m, m.thinkCmd()
}

// takeBack undoes the last move, then one more if that leaves the
// computer to move, so the human is always back on turn.
func (m model) takeBack() model {
	if m.thinking {
		return m
	}
	if _, err := m.match.UndoLastMove(); err != nil {
		m.status = err.Error()
		return m
	}
	if m.match.ComputerTurn() && m.match.MoveCount() > 0 {
		_, _ = m.match.UndoLastMove()
	}
	m.status = "took back move"
	return m
}

func gameOverStatus(match *play.Match) string {
	switch match.Winner() {
	case play.WinnerComputer:
		return "the computer wins - press n for a new game"
	case play.WinnerHuman:
		return "you win! press n for a new game"
	default:
		return "draw - press n for a new game"
	}
}

func (m model) View() string {
	cells := m.match.Snapshot()

	var b strings.Builder
	b.WriteString(statusStyle.Render("Drop Four"))
	b.WriteString("\n\n")

	// Cursor row.
	for col := 0; col < game.Cols; col++ {
		if col == m.cursor && !m.match.IsGameOver() {
			b.WriteString("  ▼ ")
		} else {
			b.WriteString("    ")
		}
	}
	b.WriteString("\n")

	for row := 0; row < game.Rows; row++ {
		b.WriteString(frameStyle.Render("|"))
		for col := 0; col < game.Cols; col++ {
			var disc string
			switch cells[row*game.Cols+col] {
			case game.Human:
				disc = humanStyle.Render("●")
			case game.Computer:
				disc = computerStyle.Render("●")
			default:
				disc = frameStyle.Render("·")
			}
			b.WriteString(" " + disc + " ")
			b.WriteString(frameStyle.Render("|"))
		}
		b.WriteString("\n")
	}
	b.WriteString(frameStyle.Render(strings.Repeat("-", game.Cols*4+1)))
	b.WriteString("\n  1   2   3   4   5   6   7\n\n")

	b.WriteString(m.status)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("←/→ move  enter/1-7 drop  u take back  n new game  q quit"))
	b.WriteString("\n")
	return b.String()
}

func main() {
	cfg := config.Load()

	level := flag.Int("level", cfg.Difficulty, "Difficulty 0-9")
	computerFirst := flag.Bool("computer-first", cfg.ComputerFirst, "Computer moves first")
	parallel := flag.Bool("parallel", cfg.Parallel, "Use the parallel searcher")
	workers := flag.Int("workers", cfg.Workers, "Parallel search workers (0 = GOMAXPROCS)")
	flag.Parse()

	var searcher play.Searcher
	if *parallel {
		searcher = engine.NewParallel(*level, *workers)
	} else {
		searcher = engine.New(*level)
	}
	if cfg.Seed != 0 {
		if s, ok := searcher.(interface{ Seed(int64) }); ok {
			s.Seed(cfg.Seed)
		}
	}

	match := play.NewMatch(searcher)
	if *computerFirst {
		match.SetComputerFirst()
	}

	if _, err := tea.NewProgram(newModel(match, *computerFirst)).Run(); err != nil {
		log.Fatalf("dropfour: %v", err)
	}
}
