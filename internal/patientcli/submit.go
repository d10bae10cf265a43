package patientcli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gramcare/caselink/internal/cli"
	"github.com/gramcare/caselink/internal/filex"
	"github.com/gramcare/caselink/internal/models"
	"github.com/gramcare/caselink/internal/shared"
)

// Submit records a free-text symptom case. The store itself accepts blank
// text, so the refusal lives here.
func (a *App) Submit(ctx context.Context) error {
	text, err := cli.GetMultiline(a.reader, "Describe your symptoms", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		return shared.ErrorEmptySubmission
	}

	c, err := a.store.CreateSymptomCase(ctx, a.patient, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Submitted case %s\n", c.CaseID)
	return nil
}

// Attach records a case from one or more image files plus optional text.
// Paths are read one per prompt until an empty line.
func (a *App) Attach(ctx context.Context) error {
	var images []models.ImageAttachment
	for {
		path, err := cli.GetSimpleText(a.reader, "Image file path (empty to finish)", a.out)
		if err != nil {
			return err
		}
		if path == "" {
			break
		}
		filename, data, err := filex.ReadBase64(path)
		if err != nil {
			fmt.Fprintf(a.out, "Skipping: %s\n", err)
			continue
		}
		images = append(images, models.ImageAttachment{
			ImageID:    uuid.NewString(),
			Filename:   filename,
			Base64Data: data,
		})
	}

	text, err := cli.GetMultiline(a.reader, "Anything to add? (optional)", a.out)
	if err != nil {
		return err
	}
	if len(images) == 0 && text == "" {
		return shared.ErrorEmptySubmission
	}

	c, err := a.store.CreateImageCase(ctx, a.patient, text, images)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Submitted case %s with %d image(s)\n", c.CaseID, len(c.Images))
	return nil
}

// List prints the patient's own cases.
func (a *App) List(ctx context.Context) error {
	cases, err := a.store.CasesByPatient(ctx, a.patient.ID)
	if err != nil {
		return err
	}
	cli.WriteCaseList(a.out, "My cases", cases, "No symptoms recorded yet")
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
