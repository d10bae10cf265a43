package patientcli

import (
	"context"
	"fmt"

	"github.com/gramcare/caselink/internal/cli"
	"github.com/gramcare/caselink/internal/models"
	"github.com/gramcare/caselink/internal/watch"
)

// Watch re-reads and re-renders the patient's cases every poll interval
// until the user presses Enter. This is how doctor replies written from
// another process become visible here.
func (a *App) Watch(ctx context.Context) error {
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	snapshot := func(ctx context.Context) ([]models.Case, error) {
		return a.store.CasesByPatient(ctx, a.patient.ID)
	}
	render := func(cases []models.Case) {
		cli.ClearScreen(a.out)
		cli.WriteCaseList(a.out, "My cases (watching, press Enter to stop)", cases, "No symptoms recorded yet")
	}

	p := watch.New(a.config.PollInterval, snapshot, render, a.log)
	go p.Run(wctx)

	if _, err := a.reader.ReadString('\n'); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Stopped watching")
	return nil
}
