package doctorcli

import (
	"context"
	"fmt"

	"github.com/gramcare/caselink/internal/cli"
	"github.com/gramcare/caselink/internal/models"
	"github.com/gramcare/caselink/internal/watch"
)

// Watch re-renders the whole inbox every poll interval until the user
// presses Enter, making new patient submissions visible without a push
// channel.
func (a *App) Watch(ctx context.Context) error {
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	render := func(cases []models.Case) {
		cli.ClearScreen(a.out)
		cli.WriteCaseList(a.out, "Case inbox (watching, press Enter to stop)", cases, "No cases submitted yet")
	}

	p := watch.New(a.config.PollInterval, a.store.AllCases, render, a.log)
	go p.Run(wctx)

	if _, err := a.reader.ReadString('\n'); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Stopped watching")
	return nil
}
