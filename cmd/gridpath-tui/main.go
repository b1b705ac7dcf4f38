// Command gridpath-tui is an interactive terminal front-end for the gridpath
// library: paint walls and weights on a board, carve mazes, and watch the six
// search algorithms race across it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/history"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(1)

	boardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	statsStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1).
			MarginLeft(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginLeft(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true).
			MarginLeft(1)

	startStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	endStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	wallStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	heavyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AA8800"))
	visitedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0088FF"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Wall      key.Binding
	Weight    key.Binding
	Start     key.Binding
	End       key.Binding
	Algorithm key.Binding
	MazeType  key.Binding
	Carve     key.Binding
	Run       key.Binding
	Cancel    key.Binding
	Clear     key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Wall:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle wall")),
	Weight:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "toggle weight")),
	Start:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "place start")),
	End:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "place end")),
	Algorithm: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "next algorithm")),
	MazeType:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "next maze type")),
	Carve:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate maze")),
	Run:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run search")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel run")),
	Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear walls")),
	Faster:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
	Slower:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "slower")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Carve, k.Algorithm, k.Wall, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Wall, k.Weight, k.Start, k.End},
		{k.Algorithm, k.MazeType, k.Carve, k.Run},
		{k.Cancel, k.Clear, k.Faster, k.Slower},
		{k.Help, k.Quit},
	}
}

// frameMsg carries one animation snapshot from a run goroutine.
type frameMsg struct{ frame *grid.Grid }

// searchDoneMsg ends a search run.
type searchDoneMsg struct {
	res *search.Result
	err error
}

// carveDoneMsg ends a maze generation run.
type carveDoneMsg struct {
	board *grid.Grid
	err   error
}

type model struct {
	cfg    Config
	board  *grid.Grid
	frame  *grid.Grid // latest snapshot while a run animates, nil otherwise
	cursor grid.Coord

	algo     search.Algorithm
	mazeType maze.Type
	speed    int
	rng      *rand.Rand

	runs *history.Ring

	running bool
	cancel  context.CancelFunc
	events  chan tea.Msg

	help    help.Model
	keys    keyMap
	message string
	failed  bool
}

func initialModel(cfg Config) (model, error) {
	g, err := grid.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return model{}, err
	}
	if err := g.SetStart(grid.Coord{Row: cfg.Rows / 2, Col: cfg.Cols / 4}); err != nil {
		return model{}, err
	}
	if err := g.SetEnd(grid.Coord{Row: cfg.Rows / 2, Col: 3 * cfg.Cols / 4}); err != nil {
		return model{}, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return model{
		cfg:    cfg,
		board:  g,
		cursor: grid.Coord{Row: cfg.Rows / 2, Col: cfg.Cols / 2},
		speed:  cfg.Speed,
		rng:    rand.New(rand.NewSource(seed)),
		runs:   history.New(cfg.HistorySize),
		events: make(chan tea.Msg, 64),
		help:   help.New(),
		keys:   keys,
	}, nil
}

func (m model) Init() tea.Cmd { return nil }

// waitForEvent relays the next message from a run goroutine into the program.
func (m model) waitForEvent() tea.Cmd {
	return func() tea.Msg { return <-m.events }
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil

	case frameMsg:
		m.frame = msg.frame

		return m, m.waitForEvent()

	case searchDoneMsg:
		m.running = false
		m.cancel = nil
		if msg.err != nil {
			m.message = fmt.Sprintf("search failed: %v", msg.err)
			m.failed = true

			return m, nil
		}
		entry := m.runs.Record(msg.res)
		m.failed = false
		if msg.res.Stats.PathFound {
			m.message = fmt.Sprintf("%s: path of %d cells, %d visited, %s",
				entry.Algorithm, entry.Stats.NodesInPath, entry.Stats.NodesVisited,
				entry.Stats.Duration.Round(time.Millisecond))
		} else {
			m.message = fmt.Sprintf("%s: no path (%d visited)",
				entry.Algorithm, entry.Stats.NodesVisited)
		}

		return m, nil

	case carveDoneMsg:
		m.running = false
		m.cancel = nil
		m.frame = nil
		if msg.err != nil {
			m.message = fmt.Sprintf("maze failed: %v", msg.err)
			m.failed = true

			return m, nil
		}
		m.board = msg.board
		m.failed = false
		m.message = fmt.Sprintf("%s maze carved", m.mazeType)

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.cancel != nil {
			m.cancel()
		}

		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if m.cancel != nil {
			m.cancel()
		}

		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

		return m, nil
	}

	// Everything below edits the board or launches a run; locked out while
	// an animation owns it.
	if m.running {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)

	case key.Matches(msg, m.keys.Wall):
		m.frame = nil
		if err := m.board.ToggleWall(m.cursor); err != nil {
			m.message, m.failed = err.Error(), true
		}
	case key.Matches(msg, m.keys.Weight):
		m.frame = nil
		w := grid.HeavyWeight
		if c := m.board.At(m.cursor); c != nil && c.Weight == grid.HeavyWeight {
			w = grid.DefaultWeight
		}
		if err := m.board.SetWeight(m.cursor, w); err != nil {
			m.message, m.failed = err.Error(), true
		}
	case key.Matches(msg, m.keys.Start):
		m.frame = nil
		if err := m.board.SetStart(m.cursor); err != nil {
			m.message, m.failed = err.Error(), true
		}
	case key.Matches(msg, m.keys.End):
		m.frame = nil
		if err := m.board.SetEnd(m.cursor); err != nil {
			m.message, m.failed = err.Error(), true
		}

	case key.Matches(msg, m.keys.Algorithm):
		m.algo = search.Algorithms()[(int(m.algo)+1)%len(search.Algorithms())]
	case key.Matches(msg, m.keys.MazeType):
		m.mazeType = maze.Types()[(int(m.mazeType)+1)%len(maze.Types())]
	case key.Matches(msg, m.keys.Faster):
		if m.speed < search.MaxSpeed {
			m.speed++
		}
	case key.Matches(msg, m.keys.Slower):
		if m.speed > search.MinSpeed {
			m.speed--
		}

	case key.Matches(msg, m.keys.Clear):
		m.frame = nil
		m.board.ClearWalls()
		m.board.ClearRunState()
		m.message, m.failed = "board cleared", false

	case key.Matches(msg, m.keys.Carve):
		return m.startCarve()
	case key.Matches(msg, m.keys.Run):
		return m.startSearch()
	}

	return m, nil
}

func (m *model) moveCursor(dr, dc int) {
	next := grid.Coord{Row: m.cursor.Row + dr, Col: m.cursor.Col + dc}
	if m.board.InBounds(next) {
		m.cursor = next
	}
}

// startSearch launches the selected algorithm on a working copy of the board,
// streaming snapshots back through the events channel.
func (m model) startSearch() (tea.Model, tea.Cmd) {
	start, ok := m.board.Start()
	if !ok {
		m.message, m.failed = "place a start cell first", true

		return m, nil
	}
	end, ok := m.board.End()
	if !ok {
		m.message, m.failed = "place an end cell first", true

		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.running = true
	m.cancel = cancel
	m.failed = false
	m.message = fmt.Sprintf("running %s...", m.algo)

	board := m.board.Clone()
	events := m.events
	algo, speed := m.algo, m.speed
	go func() {
		res, err := search.Run(board, algo, start, end,
			search.WithContext(ctx),
			search.WithSpeed(speed),
			search.WithOnUpdate(func(snap *grid.Grid) {
				events <- frameMsg{frame: snap}
			}))
		events <- searchDoneMsg{res: res, err: err}
	}()

	return m, m.waitForEvent()
}

// startCarve launches maze generation, streaming snapshots the same way.
func (m model) startCarve() (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithCancel(context.Background())
	m.running = true
	m.cancel = cancel
	m.failed = false
	m.message = fmt.Sprintf("carving %s maze...", m.mazeType)

	events := m.events
	typ, speed := m.mazeType, m.speed
	seeded := rand.New(rand.NewSource(m.rng.Int63()))
	board := m.board
	go func() {
		out, err := maze.Generate(board, typ,
			maze.WithContext(ctx),
			maze.WithSpeed(speed),
			maze.WithRand(seeded),
			maze.WithOnUpdate(func(snap *grid.Grid) {
				events <- frameMsg{frame: snap}
			}))
		events <- carveDoneMsg{board: out, err: err}
	}()

	return m, m.waitForEvent()
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("gridpath"))
	s.WriteString("\n")

	board := lipgloss.JoinHorizontal(lipgloss.Top,
		boardStyle.Render(m.renderBoard()),
		statsStyle.Render(m.renderStats()),
	)
	s.WriteString(board)
	s.WriteString("\n")

	if m.message != "" {
		if m.failed {
			s.WriteString(errorStyle.Render("✗ " + m.message))
		} else {
			s.WriteString(statusStyle.Render(m.message))
		}
		s.WriteString("\n")
	}
	s.WriteString(statusStyle.Render(m.help.View(m.keys)))

	return s.String()
}

// renderBoard draws the animation frame when a run is live, the editable
// board otherwise.
func (m model) renderBoard() string {
	g := m.board
	if m.frame != nil {
		g = m.frame
	}

	var s strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			coord := grid.Coord{Row: r, Col: c}
			glyph := m.cellGlyph(g.At(coord))
			if coord == m.cursor && !m.running {
				glyph = cursorStyle.Render(glyph)
			}
			s.WriteString(glyph)
		}
		if r < g.Rows()-1 {
			s.WriteString("\n")
		}
	}

	return s.String()
}

func (m model) cellGlyph(c *grid.Cell) string {
	switch {
	case c == nil:
		return "  "
	case c.Start:
		return startStyle.Render("S ")
	case c.End:
		return endStyle.Render("E ")
	case c.Wall:
		return wallStyle.Render("██")
	case c.Path:
		return pathStyle.Render("● ")
	case c.Visited:
		return visitedStyle.Render("· ")
	case c.Weight == grid.HeavyWeight:
		return heavyStyle.Render("≈ ")
	default:
		return "  "
	}
}

func (m model) renderStats() string {
	var s strings.Builder
	fmt.Fprintf(&s, "algorithm  %s\n", m.algo)
	fmt.Fprintf(&s, "maze       %s\n", m.mazeType)
	fmt.Fprintf(&s, "speed      %d\n\n", m.speed)

	s.WriteString("history\n")
	entries := m.runs.Entries()
	if len(entries) == 0 {
		s.WriteString("  no runs yet\n")
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		mark := "✓"
		if !e.Stats.PathFound {
			mark = "✗"
		}
		fmt.Fprintf(&s, "  %s %-8s path %-3d visited %-4d %s\n",
			mark, e.Algorithm, e.Stats.NodesInPath, e.Stats.NodesVisited,
			e.Stats.Duration.Round(time.Millisecond))
	}

	return s.String()
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	m, err := initialModel(cfg)
	if err != nil {
		log.Fatalf("Failed to build board: %v", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
