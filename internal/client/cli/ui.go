package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/models"
)

// Severity grades a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier is the notification surface the orchestrator talks to. The core
// components never render output themselves; every user-visible message
// goes through here.
type Notifier interface {
	Notify(message string, severity Severity)
}

// ChartRenderer is the rendering surface for the progress chart.
type ChartRenderer interface {
	RenderProgress(summary models.ProgressSummary)
}

// ConsoleNotifier writes notifications to a terminal.
type ConsoleNotifier struct {
	W io.Writer
}

func (n *ConsoleNotifier) Notify(message string, severity Severity) {
	switch severity {
	case SeverityError:
		fmt.Fprintf(n.W, "error: %s\n", message)
	case SeverityWarning:
		fmt.Fprintf(n.W, "warning: %s\n", message)
	default:
		fmt.Fprintln(n.W, message)
	}
}

// ConsoleChart renders the progress summary as plain text with a
// character-cell bar per interview.
type ConsoleChart struct {
	W io.Writer
}

func (c *ConsoleChart) RenderProgress(summary models.ProgressSummary) {
	fmt.Fprintf(c.W, "Interviews completed: %d\n", summary.TotalInterviews)
	fmt.Fprintf(c.W, "Average score: %.1f\n", summary.AverageScore)
	for _, p := range summary.History {
		date := p.Date
		if len(date) > 10 {
			date = date[:10]
		}
		bar := strings.Repeat("#", int(p.Score))
		fmt.Fprintf(c.W, "%-12s %-24s %5.1f %s\n", date, p.Topic, p.Score, bar)
	}
}
