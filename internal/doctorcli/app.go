// Package doctorcli implements the doctor-facing terminal: review the
// case inbox, reply with notes or prescriptions, and resolve cases.
package doctorcli

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
	config *config.Config
	store  *casestore.Store
	doctor *profile.Doctor
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, store *casestore.Store, doctor *profile.Doctor, log logging.Logger) *App {
	return &App{
		config: cfg,
		store:  store,
		doctor: doctor,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	a.log.Info(ctx, "doctor session started", "doctorId", a.doctor.ID)
	runREPL(ctx, a, a.reader)
}
