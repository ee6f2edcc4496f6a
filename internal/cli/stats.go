package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"pomo/internal/storage"
	"pomo/pkg/models"
)

// statsDays is how many recent days get a bar in the dashboard.
const statsDays = 7

// Style definitions for the stats dashboard.
var (
	statsTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("203")).
			Padding(0, 1)

	statsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("203")).
				MarginBottom(1)

	statsBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	statsHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// statsSnapshot aggregates the history log for display.
type statsSnapshot struct {
	today    int
	lastWeek int
	allTime  int
	// perDay holds one count per day, oldest first, ending today.
	perDay []dayCount
}

type dayCount struct {
	day   time.Time
	count int
}

// statsLoadedMsg carries loaded data back to the model.
type statsLoadedMsg struct {
	snapshot statsSnapshot
	err      error
}

type statsModel struct {
	snapshot statsSnapshot
	loading  bool
	err      error
}

func newStatsModel() statsModel {
	return statsModel{loading: true}
}

func (m statsModel) Init() tea.Cmd {
	return loadStats
}

// loadStats reads the whole history log and aggregates it.
func loadStats() tea.Msg {
	records, err := History.Read(storage.HistoryFilter{})
	if err != nil {
		return statsLoadedMsg{err: err}
	}
	return statsLoadedMsg{snapshot: aggregateStats(records, time.Now())}
}

func (m statsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, loadStats
		}

	case statsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.snapshot = msg.snapshot
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m statsModel) View() string {
	title := statsTitleStyle.Render(" pomo stats ")
	help := statsHelpStyle.Render("r: refresh | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading history...\n\n%s", title, help)
	}
	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	var b strings.Builder
	b.WriteString(statsHeaderStyle.Render("Completed pomodoros"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %-12s %d\n", "Today", m.snapshot.today))
	b.WriteString(fmt.Sprintf("  %-12s %d\n", "Last 7 days", m.snapshot.lastWeek))
	b.WriteString(fmt.Sprintf("  %-12s %d\n", "All time", m.snapshot.allTime))
	b.WriteString("\n")
	b.WriteString(statsHeaderStyle.Render("Recent days"))
	b.WriteString("\n")
	for _, dc := range m.snapshot.perDay {
		bar := statsBarStyle.Render(strings.Repeat("█", dc.count))
		b.WriteString(fmt.Sprintf("  %s %s %d\n", dc.day.Format("Mon 02"), bar, dc.count))
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, b.String(), help)
}

// aggregateStats buckets completion records by calendar day around now.
func aggregateStats(records []models.CompletionRecord, now time.Time) statsSnapshot {
	snap := statsSnapshot{allTime: len(records)}

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := startOfToday.AddDate(0, 0, -(statsDays - 1))

	counts := make(map[string]int)
	for _, rec := range records {
		at := rec.CompletedAt.In(now.Location())
		if !at.Before(startOfToday) {
			snap.today++
		}
		if !at.Before(weekStart) {
			snap.lastWeek++
			counts[at.Format("2006-01-02")]++
		}
	}

	for i := 0; i < statsDays; i++ {
		day := weekStart.AddDate(0, 0, i)
		snap.perDay = append(snap.perDay, dayCount{day: day, count: counts[day.Format("2006-01-02")]})
	}

	return snap
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a dashboard of completed sessions",
	Long: `Show an interactive dashboard summarizing the history log: sessions
completed today, over the last seven days, and all time, with a bar per
recent day.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if History == nil {
			return fmt.Errorf("history log not initialized")
		}

		p := tea.NewProgram(newStatsModel(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running stats dashboard: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
