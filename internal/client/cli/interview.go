package cli

import (
	"context"
	"fmt"

	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/models"
)

func (a *App) StartInterview(ctx context.Context, topic string) {
	if !a.isLoggedIn() {
		a.notifier.Notify("please login first", SeverityWarning)
		return
	}

	skills, err := GetList(a.reader, "CV skills to focus on (comma-separated, optional)", a.out)
	if err != nil {
		a.fail(ctx, err)
		return
	}

	sess, err := a.interview.Start(ctx, a.cred.Token, topic, skills)
	if err != nil {
		a.fail(ctx, err)
		return
	}

	a.notifier.Notify("Interview started: "+sess.Topic, SeveritySuccess)
	for _, turn := range a.interview.Turns() {
		a.printTurn(turn)
	}
}

func (a *App) Say(ctx context.Context, message string) {
	if message == "" {
		var err error
		message, err = GetSimpleText(a.reader, "Your answer", a.out)
		if err != nil {
			a.fail(ctx, err)
			return
		}
	}
	if message == "" {
		a.notifier.Notify("nothing to send", SeverityWarning)
		return
	}

	sess := a.interview.Session()
	if sess == nil {
		a.notifier.Notify("no interview in progress, type 'start' to begin", SeverityWarning)
		return
	}

	turn, err := a.interview.SendMessage(ctx, a.cred.Token, sess.ID, message)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.printTurn(turn)
}

func (a *App) EndInterview(ctx context.Context) {
	sess := a.interview.Session()
	if sess == nil {
		a.notifier.Notify("no interview in progress, type 'start' to begin", SeverityWarning)
		return
	}

	res, err := a.interview.End(ctx, a.cred.Token, sess.ID)
	if err != nil {
		a.fail(ctx, err)
		return
	}

	a.notifier.Notify("Interview ended", SeveritySuccess)
	fmt.Fprintf(a.out, "Score: %.1f\n", res.Rating.Score)
	a.printList("Strengths", res.Rating.Strengths)
	a.printList("Weaknesses", res.Rating.Weaknesses)
	a.printList("Tips", res.Rating.Tips)
}

func (a *App) History(ctx context.Context) {
	turns := a.interview.Turns()
	if len(turns) == 0 {
		a.notifier.Notify("no transcript yet", SeverityInfo)
		return
	}
	for _, turn := range turns {
		a.printTurn(turn)
	}
}

func (a *App) Progress(ctx context.Context) {
	if !a.isLoggedIn() {
		a.notifier.Notify("please login first", SeverityWarning)
		return
	}

	summary, err := a.interview.Progress(ctx, a.cred.Token)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.chart.RenderProgress(summary)
}

func (a *App) printTurn(turn models.Turn) {
	speaker := "you"
	if turn.Role == models.RoleAssistant {
		speaker = "interviewer"
	}
	fmt.Fprintf(a.out, "[%s] %s\n", speaker, turn.Content)
}

func (a *App) printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(a.out, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(a.out, "  - %s\n", item)
	}
}
