// Package tui is the interactive terminal interface: browse the game
// catalog, edit parameters in a schema-generated form, run simulations
// and inspect the charts.
package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/khushi2704rj-sephora/GameForge/internal/charts"
	"github.com/khushi2704rj-sephora/GameForge/internal/client"
	"github.com/khushi2704rj-sephora/GameForge/internal/config"
	"github.com/khushi2704rj-sephora/GameForge/internal/form"
	"github.com/khushi2704rj-sephora/GameForge/internal/format"
	"github.com/khushi2704rj-sephora/GameForge/internal/result"
	"github.com/khushi2704rj-sephora/GameForge/internal/schema"
	"github.com/khushi2704rj-sephora/GameForge/internal/theory"
)

type phase int

const (
	phaseCatalog phase = iota
	phaseForm
	phaseResults
	phaseTheory
)

type catalogMsg struct {
	games []schema.GameInfo
	err   error
}

type gameMsg struct {
	game *schema.GameInfo
	err  error
}

type runMsg struct {
	seq int
	res *result.Result
	err error
}

type model struct {
	client   *client.Client
	registry *charts.Registry
	settings *config.Settings

	phase  phase
	loaded bool
	games  []schema.GameInfo
	cursor int
	game   *schema.GameInfo

	cfg         form.Configuration
	paramCursor int
	editing     bool
	editBuf     string

	// runSeq tags each run request; responses carrying an older tag are
	// discarded so a slow earlier request cannot clobber a newer result.
	runSeq  int
	running bool
	res     *result.Result
	errMsg  string

	width  int
	height int
}

func newModel(c *client.Client, reg *charts.Registry, s *config.Settings) model {
	return model{
		client:   c,
		registry: reg,
		settings: s,
		width:    80,
		height:   24,
	}
}

// Run starts the interactive interface.
func Run(c *client.Client, reg *charts.Registry, s *config.Settings) error {
	p := tea.NewProgram(newModel(c, reg, s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd {
	cl := m.client
	return func() tea.Msg {
		games, err := cl.ListGames(context.Background())
		return catalogMsg{games: games, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case catalogMsg:
		m.loaded = true
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.games = msg.games
			m.errMsg = ""
		}
		return m, nil
	case gameMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.game = msg.game
		m.cfg = form.Initialize(msg.game.Parameters)
		m.paramCursor = 0
		m.errMsg = ""
		m.res = nil
		m.phase = phaseForm
		return m, nil
	case runMsg:
		if msg.seq != m.runSeq {
			// Stale response from a superseded request.
			return m, nil
		}
		m.running = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.res = msg.res
		m.phase = phaseResults
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseCatalog:
		return m.catalogKey(msg)
	case phaseForm:
		return m.formKey(msg)
	case phaseResults:
		return m.resultsKey(msg)
	case phaseTheory:
		return m.theoryKey(msg)
	}
	return m, nil
}

func (m model) catalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.games)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.games) == 0 {
			return m, nil
		}
		picked := m.games[m.cursor]
		if !picked.Available {
			m.errMsg = fmt.Sprintf("%s is coming soon", picked.Name)
			return m, nil
		}
		cl := m.client
		id := picked.ID
		return m, func() tea.Msg {
			game, err := cl.GetGame(context.Background(), id)
			return gameMsg{game: game, err: err}
		}
	}
	return m, nil
}

func (m model) formKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			name := m.game.Parameters[m.paramCursor].Name
			cfg, err := form.Update(m.cfg, m.game.Parameters, name, m.editBuf)
			if err == nil {
				m.cfg = cfg
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
			if len(msg.Runes) == 1 {
				m.editBuf += string(msg.Runes)
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.phase = phaseCatalog
		m.game = nil
		m.res = nil
		m.errMsg = ""
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.game.Parameters)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		if len(m.game.Parameters) == 0 {
			return m, nil
		}
		p := m.game.Parameters[m.paramCursor]
		if p.Kind != schema.KindSelect {
			m.editing = true
			m.editBuf = m.cfg[p.Name].String()
		}
	case "left", "h":
		m = m.stepParam(-1)
	case "right", "l":
		m = m.stepParam(1)
	case "t":
		m.phase = phaseTheory
	case "r", "s":
		return m.startRun()
	}
	return m, nil
}

func (m model) resultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "e", "c":
		m.phase = phaseForm
	case "t":
		m.phase = phaseTheory
	case "r":
		return m.startRun()
	}
	return m, nil
}

func (m model) theoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	default:
		if m.res != nil {
			m.phase = phaseResults
		} else {
			m.phase = phaseForm
		}
	}
	return m, nil
}

// startRun issues an asynchronous run request tagged with the next
// sequence number. The interface stays responsive; re-running while a
// request is in flight simply supersedes it.
func (m model) startRun() (tea.Model, tea.Cmd) {
	m.runSeq++
	m.running = true
	m.errMsg = ""
	seq := m.runSeq
	cl := m.client
	id := m.game.ID
	cfg := m.cfg
	return m, func() tea.Msg {
		res, err := cl.Run(context.Background(), id, cfg)
		return runMsg{seq: seq, res: res, err: err}
	}
}

// stepParam adjusts the cursored parameter by one widget step, clamped
// to declared bounds. Bound clamping lives here, at the edit surface,
// not in the synthesizer.
func (m model) stepParam(dir int) model {
	if len(m.game.Parameters) == 0 {
		return m
	}
	p := m.game.Parameters[m.paramCursor]
	cur := m.cfg[p.Name]
	var raw string
	switch p.Kind {
	case schema.KindInt:
		next := cur.Int() + int64(dir)
		if p.Min != nil && float64(next) < *p.Min {
			next = int64(*p.Min)
		}
		if p.Max != nil && float64(next) > *p.Max {
			next = int64(*p.Max)
		}
		raw = fmt.Sprintf("%d", next)
	case schema.KindFloat:
		step := 0.1
		if p.Min != nil && p.Max != nil {
			step = (*p.Max - *p.Min) / 100
		}
		next := cur.Float() + float64(dir)*step
		if p.Min != nil && next < *p.Min {
			next = *p.Min
		}
		if p.Max != nil && next > *p.Max {
			next = *p.Max
		}
		raw = fmt.Sprintf("%g", next)
	case schema.KindSelect:
		if len(p.Options) == 0 {
			return m
		}
		idx := 0
		for i, opt := range p.Options {
			if opt == cur.Str() {
				idx = i
				break
			}
		}
		idx = (idx + dir + len(p.Options)) % len(p.Options)
		raw = p.Options[idx]
	default:
		return m
	}
	if cfg, err := form.Update(m.cfg, m.game.Parameters, p.Name, raw); err == nil {
		m.cfg = cfg
	}
	return m
}

func (m model) View() string {
	switch m.phase {
	case phaseCatalog:
		return m.viewCatalog()
	case phaseForm:
		return m.viewForm()
	case phaseResults:
		return m.viewResults()
	case phaseTheory:
		return m.viewTheory()
	}
	return ""
}

func (m model) viewCatalog() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + cyan.Render("g a m e f o r g e") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	if !m.loaded {
		b.WriteString(dim.Render("      loading catalog...") + "\n")
		return b.String()
	}
	if len(m.games) == 0 && m.errMsg != "" {
		b.WriteString("      " + red.Render(m.errMsg) + "\n")
		b.WriteString(dim.Render("      q quit") + "\n")
		return b.String()
	}

	for i, g := range m.games {
		tier := tierLabels[g.Tier]
		label := fmt.Sprintf("%-24s", g.Name)
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(label) + dim.Render(tier) + "\n")
		} else if g.Available {
			b.WriteString("        " + dim.Render(label) + dimmer.Render(tier) + "\n")
		} else {
			b.WriteString("        " + dimmer.Render(label+"coming soon") + "\n")
		}
	}

	if i := m.cursor; i < len(m.games) {
		b.WriteString("\n      " + dim.Render(m.games[i].ShortDescription) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("      " + yellow.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter configure   q quit") + "\n")
	return b.String()
}

func (m model) viewForm() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.game.Name) + "  " + dim.Render(m.game.ShortDescription) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 40)) + "\n\n")

	for i, p := range m.game.Parameters {
		val := fmt.Sprintf("%14s", m.cfg[p.Name].String())
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%14s", m.editBuf+"▋")
		}
		hint := m.paramHint(p)
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-16s", p.Name)) + magenta.Render(val) + "  " + dimmer.Render(hint) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-16s", p.Name)) + dim.Render(val) + "  " + dimmer.Render(hint) + "\n")
		}
	}

	if len(m.game.Parameters) > 0 {
		b.WriteString("\n      " + dim.Render(m.game.Parameters[m.paramCursor].Description) + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.running:
		b.WriteString("      " + green.Render("● running...") + "\n")
	case m.errMsg != "":
		b.WriteString("      " + red.Render(m.errMsg) + "\n")
	}
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  r run  t theory  esc back") + "\n")
	return b.String()
}

func (m model) paramHint(p schema.ParameterSpec) string {
	switch p.Kind {
	case schema.KindSelect:
		return fmt.Sprintf("1 of %d options", len(p.Options))
	case schema.KindInt, schema.KindFloat:
		if p.Min != nil && p.Max != nil {
			return fmt.Sprintf("[%g, %g]", *p.Min, *p.Max)
		}
	}
	return ""
}

func (m model) viewResults() string {
	var b strings.Builder
	res := m.res

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.game.Name) + "  " +
		dim.Render(fmt.Sprintf("%d rounds · %.1fms · %s", len(res.Rounds), res.Metadata.ComputeTimeMs, res.Metadata.Engine)) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 40)) + "\n\n")

	specs := m.registry.Resolve(res.GameID)(res)
	if len(specs) == 0 {
		b.WriteString("      " + dim.Render("no rounds to plot") + "\n")
	}
	for _, c := range specs {
		b.WriteString(charts.Render(c, m.settings.ChartWidth, m.settings.ChartHeight))
		b.WriteString("\n\n")
	}

	if len(res.Summary) > 0 {
		b.WriteString("      " + white.Render("summary") + "\n")
		keys := make([]string, 0, len(res.Summary))
		for k := range res.Summary {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("        %s %s\n",
				dim.Render(fmt.Sprintf("%-24s", format.PrettyKey(k))),
				white.Render(format.Format(k, res.Summary[k]))))
		}
	}

	if len(res.Equilibria) > 0 {
		b.WriteString("\n      " + white.Render("equilibria") + "\n")
		for _, eq := range res.Equilibria {
			b.WriteString("        " + yellow.Render(eq.Name))
			if len(eq.Strategies) > 0 {
				b.WriteString(dim.Render("  (" + strings.Join(eq.Strategies, ", ") + ")"))
			}
			b.WriteString("\n")
			if eq.Description != "" {
				b.WriteString("          " + dim.Render(eq.Description) + "\n")
			}
		}
	}

	b.WriteString("\n")
	if m.running {
		b.WriteString("      " + green.Render("● running...") + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("      " + red.Render(m.errMsg) + "\n")
	}
	b.WriteString(dim.Render("      r rerun  e edit  t theory  esc back  q quit") + "\n")
	return b.String()
}

func (m model) viewTheory() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.game.Name) + "  " + dim.Render("theory") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 40)) + "\n\n")
	if m.game.TheoryCard == "" {
		b.WriteString("      " + dim.Render("no theory notes for this game") + "\n")
	} else {
		for _, line := range strings.Split(theory.Render(m.game.TheoryCard), "\n") {
			b.WriteString("      " + line + "\n")
		}
	}
	b.WriteString("\n" + dim.Render("      any key to go back") + "\n")
	return b.String()
}
