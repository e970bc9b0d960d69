package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hearth/internal/engine"
	"hearth/internal/storage"
)

type dashModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	habits      []storage.Habit
	decorations map[int64]storage.Decoration
	butlerLine  string

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	habits      []storage.Habit
	decorations map[int64]storage.Decoration
	butlerLine  string
	err         error
}

type checkedInMsg struct {
	id  int64
	res *engine.CheckInResult
	err error
}

func newDashModel(ctx context.Context, svc *engine.Service) dashModel {
	return dashModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		habits, err := m.svc.HabitRepo().ListAll(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		all, err := m.svc.DecorationRepo().ListAll(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		decorations := map[int64]storage.Decoration{}
		for _, d := range all {
			decorations[d.ID] = d
		}
		line, err := m.svc.ButlerTalk(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{habits: habits, decorations: decorations, butlerLine: line}
	}
}

func (m dashModel) checkInCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CheckIn(m.ctx, id, time.Now().UTC())
		return checkedInMsg{id: id, res: res, err: err}
	}
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.habits = msg.habits
		m.decorations = msg.decorations
		m.butlerLine = msg.butlerLine
		if m.selected >= len(m.habits) {
			m.selected = len(m.habits) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case checkedInMsg:
		if msg.err != nil {
			m.lastLog = "Check-in failed: " + msg.err.Error()
			return m, nil
		}
		switch {
		case msg.res.AlreadyChecked:
			m.lastLog = fmt.Sprintf("Habit %d already checked in this period.", msg.id)
		case msg.res.TierUpgraded:
			m.lastLog = fmt.Sprintf("Checked in %d: +%d EXP, decoration upgraded to %s!", msg.id, msg.res.EXPAwarded, msg.res.TierAfter)
		case msg.res.Missed > 0:
			m.lastLog = fmt.Sprintf("Checked in %d after missing %d period(s); streak restarts at 1.", msg.id, msg.res.Missed)
		default:
			m.lastLog = fmt.Sprintf("Checked in %d: streak %d, +%d EXP.", msg.id, msg.res.StreakAfter, msg.res.EXPAwarded)
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.habits)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.habits) {
				return m, nil
			}
			h := m.habits[m.selected]
			m.lastLog = fmt.Sprintf("Checking in %d…", h.ID)
			return m, m.checkInCmd(h.ID)
		}
	}
	return m, nil
}

func (m dashModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashModel) renderHeader() string {
	failing := engine.CurrentlyFailing(m.habits, time.Now().UTC())
	return fmt.Sprintf("Hearth | %d habit(s) | %d failing | total fails %d",
		len(m.habits), len(failing), engine.AggregateFailCount(m.habits))
}

func (m dashModel) renderSidebar() string {
	lines := []string{"Decorations"}
	for _, h := range m.habits {
		d, ok := m.decorations[h.DecorationID]
		if !ok {
			continue
		}
		lines = append(lines, renderDecoration(d))
	}
	if len(lines) == 1 {
		lines = append(lines, "(none attached)")
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space/enter: check in")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m dashModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Habits")
	if len(m.habits) == 0 {
		out = append(out, "(empty — `hearth add` creates one)")
		return strings.Join(out, "\n")
	}
	now := time.Now().UTC()
	failing := map[int64]bool{}
	for _, h := range engine.CurrentlyFailing(m.habits, now) {
		failing[h.ID] = true
	}
	for i, h := range m.habits {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "  "
		if failing[h.ID] {
			mark = "! "
		}
		out = append(out, fmt.Sprintf("%s%s%d %s (%s, streak %d, best %d, fails %d)",
			cursor, mark, h.ID, h.Name, h.Periodicity, h.Streak, h.LongestStreak, h.Fails))
	}
	return strings.Join(out, "\n")
}

func (m dashModel) renderFooter() string {
	return "\n" + m.butlerLine + "\n" + m.lastLog
}

func renderDecoration(d storage.Decoration) string {
	tier := engine.TierForEXP(d.EXP)
	next, ok := engine.NextTierEXP(d.EXP)
	bar := "[##########]"
	if ok {
		bar = progressBar(d.EXP, next, 10)
	}
	return fmt.Sprintf("- %s (%s) %s %s", d.Name, tier, bar, d.Room)
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
