package doctorcli

import (
	"context"
	"fmt"

	"github.com/gramcare/caselink/internal/cli"
	"github.com/gramcare/caselink/internal/models"
)

// Inbox prints every case in the store, oldest first.
func (a *App) Inbox(ctx context.Context) error {
	cases, err := a.store.AllCases(ctx)
	if err != nil {
		return err
	}
	cli.WriteCaseList(a.out, "Case inbox", cases, "No cases submitted yet")
	return nil
}

// Show prints one case with its reply thread.
func (a *App) Show(ctx context.Context) error {
	caseID, err := cli.GetSimpleText(a.reader, "Case id", a.out)
	if err != nil {
		return err
	}
	c, err := a.store.CaseByID(ctx, caseID)
	if err != nil {
		return err
	}
	cli.WriteCaseDetail(a.out, *c)
	return nil
}

// Reply appends a note or prescription to a case. The first reply moves
// the case from pending to reviewed.
func (a *App) Reply(ctx context.Context) error {
	caseID, err := cli.GetSimpleText(a.reader, "Case id", a.out)
	if err != nil {
		return err
	}

	kindInput, err := cli.GetSimpleText(a.reader, "Reply type: (p)rescription or (n)ote", a.out)
	if err != nil {
		return err
	}
	kind := models.ReplyTypeDoctorNote
	if kindInput == "p" || kindInput == "prescription" {
		kind = models.ReplyTypePrescription
	}

	content, err := cli.GetMultiline(a.reader, "Reply", a.out)
	if err != nil {
		return err
	}

	medication, err := cli.GetSimpleText(a.reader, "Medication (optional)", a.out)
	if err != nil {
		return err
	}

	updated, err := a.store.AddDoctorReply(ctx, caseID, a.doctor, content, kind, medication)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Reply sent, case %s is now %s\n", updated.CaseID, updated.Status)
	return nil
}

// Resolve moves a case to its terminal state.
func (a *App) Resolve(ctx context.Context) error {
	caseID, err := cli.GetSimpleText(a.reader, "Case id", a.out)
	if err != nil {
		return err
	}
	updated, err := a.store.MarkResolved(ctx, caseID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Case %s resolved\n", updated.CaseID)
	return nil
}
