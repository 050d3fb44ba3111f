package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studylit/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	breakStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	statsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD, 'today', or 'tomorrow')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	plan, err := ctx.loadPlan(date)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Plan for %s", date)))
	fmt.Println()

	if len(plan.Blocks) == 0 {
		fmt.Println("  No blocks scheduled")
		return nil
	}

	for _, b := range plan.Blocks {
		fmt.Println(renderBlock(b))
	}

	fmt.Println()
	fmt.Println(statsStyle.Render(fmt.Sprintf(
		"Study: %dm planned  Break: %dm  Window: %s-%s",
		plan.TotalStudyMinutesPlanned, plan.TotalBreakMinutes,
		plan.StartTimePlanned, plan.EstimatedEndTime)))
	return nil
}

func renderBlock(b models.Block) string {
	line := fmt.Sprintf("%2d  %s-%s  %-40s %s",
		b.Index, b.PlannedStartTime, b.PlannedEndTime, truncate(b.Title, 40), statusLabel(b))

	switch {
	case b.Type == models.BlockTypeBreak:
		return breakStyle.Render(line)
	case b.Status == models.BlockInProgress:
		return activeStyle.Render(line)
	case b.Status == models.BlockPaused:
		return pausedStyle.Render(line)
	case b.Status.Terminal():
		return doneStyle.Render(line)
	default:
		return line
	}
}

func statusLabel(b models.Block) string {
	switch b.Status {
	case models.BlockInProgress:
		return "[active]"
	case models.BlockPaused:
		return "[paused]"
	case models.BlockDone:
		if b.CompletionStatus != "" && b.CompletionStatus != models.CompletionCompleted {
			return fmt.Sprintf("[done, %s]", b.CompletionStatus)
		}
		return "[done]"
	case models.BlockSkipped:
		return "[skipped]"
	default:
		return ""
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max-1]) + "…"
}
