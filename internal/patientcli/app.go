// Package patientcli implements the patient-facing terminal: submit a
// symptom report, attach images, and watch for doctor replies.
package patientcli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/gramcare/caselink/internal/casestore"
	"github.com/gramcare/caselink/internal/config"
	"github.com/gramcare/caselink/internal/logging"
	"github.com/gramcare/caselink/internal/profile"
)

type App struct {
	config  *config.Config
	store   *casestore.Store
	patient *profile.Patient
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config, store *casestore.Store, patient *profile.Patient, log logging.Logger) *App {
	return &App{
		config:  cfg,
		store:   store,
		patient: patient,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	a.log.Info(ctx, "patient session started", "patientId", a.patient.ID)
	runREPL(ctx, a, a.reader)
}
