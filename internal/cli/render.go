package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"pomo/internal/core"
	"pomo/internal/motivate"
	"pomo/pkg/models"
)

// breakCaption is shown on the countdown line during break intervals,
// which carry no task description.
const breakCaption = "Time to relax"

// Style definitions.
var (
	introStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("203")).
			Padding(0, 1)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	workStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	shortBreakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	longBreakStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

	successStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	cancelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	farewellStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
)

// styleForKind picks the countdown line color for an interval kind.
func styleForKind(kind models.IntervalKind) lipgloss.Style {
	switch kind {
	case models.KindShortBreak:
		return shortBreakStyle
	case models.KindLongBreak:
		return longBreakStyle
	default:
		return workStyle
	}
}

// terminalRenderer implements core.ProgressRenderer by rewriting a single
// terminal line per tick and printing banners between intervals.
type terminalRenderer struct {
	out io.Writer
}

// NewRenderer creates the production renderer writing to stdout.
func NewRenderer() core.ProgressRenderer {
	return &terminalRenderer{out: os.Stdout}
}

func (r *terminalRenderer) SessionBanner(current, total int) {
	fmt.Fprintf(r.out, "\n%s %s\n",
		bannerStyle.Render(fmt.Sprintf("%s Session %d of %d", motivate.WorkEmoji(), current, total)),
		motivate.StartWork())
}

func (r *terminalRenderer) LongBreakBanner() {
	fmt.Fprintf(r.out, "\n%s %s\n",
		bannerStyle.Render(fmt.Sprintf("%s Long break!", motivate.BreakEmoji(true))),
		motivate.StartBreak())
}

// Tick rewrites the countdown line in place: kind, projected end time,
// time left, and what the interval is for.
func (r *terminalRenderer) Tick(st core.CountdownState) {
	caption := st.Interval.Task
	if st.Interval.Kind.IsBreak() {
		caption = breakCaption
	}

	line := fmt.Sprintf("%s: ends %s | %s | %s",
		st.Interval.Kind.Label(),
		st.EndsAt.Format("15:04:05"),
		formatRemaining(st.Remaining),
		caption)
	fmt.Fprintf(r.out, "\r%s", styleForKind(st.Interval.Kind).Render(line))
}

func (r *terminalRenderer) Completed(iv models.Interval) {
	line := motivate.EndBreak()
	if iv.Kind == models.KindWork {
		line = motivate.EndWork()
	}
	fmt.Fprintf(r.out, "\n%s\n",
		successStyle.Render(fmt.Sprintf("%s %s completed! %s", motivate.SuccessEmoji(), iv.Kind.Label(), line)))
}

func (r *terminalRenderer) Cancelled(iv models.Interval) {
	fmt.Fprintf(r.out, "\n%s\n",
		cancelStyle.Render(fmt.Sprintf("%s cancelled.", iv.Kind.Label())))
}

func (r *terminalRenderer) PlanCompleted(sessions int) {
	fmt.Fprintf(r.out, "\n%s\n",
		successStyle.Render(fmt.Sprintf("%s All %d sessions completed. Great work!", motivate.SuccessEmoji(), sessions)))
}

// formatRemaining renders a remaining duration as MM:SS.
func formatRemaining(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// printCycleIntro opens the interactive mode with a banner.
func printCycleIntro() {
	fmt.Printf("%s %s\n", introStyle.Render(" pomo "), motivate.StartWork())
}
