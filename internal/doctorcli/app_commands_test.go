package doctorcli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramcare/caselink/internal/casestore"
	"github.com/gramcare/caselink/internal/config"
	"github.com/gramcare/caselink/internal/logging"
	"github.com/gramcare/caselink/internal/models"
	"github.com/gramcare/caselink/internal/profile"
	"github.com/gramcare/caselink/internal/shared"
	"github.com/gramcare/caselink/internal/storage"
)

var testPatient = &profile.Patient{ID: "PAT-1", Name: "Asha Kumari", Age: 34}

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *casestore.Store) {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store := casestore.New(storage.NewMemory(), log)
	out := &bytes.Buffer{}

	app := &App{
		config: &config.Config{PollInterval: 5 * time.Millisecond},
		store:  store,
		doctor: &profile.Doctor{ID: "DOC-1", Name: "Dr. Smith", Specialization: "Pulmonologist"},
		log:    log,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
	}
	return app, out, store
}

func TestInbox_EmptyState(t *testing.T) {
	app, out, _ := newTestApp(t, "")

	require.NoError(t, app.Inbox(context.Background()))
	assert.Contains(t, out.String(), "No cases submitted yet")
}

func TestReply(t *testing.T) {
	ctx := context.Background()
	app, out, store := newTestApp(t, "")

	created, err := store.CreateSymptomCase(ctx, testPatient, "cough and cold")
	require.NoError(t, err)

	input := created.CaseID + "\nn\nSounds like viral infection\n\nAspirin 500mg\n"
	app.reader = bufio.NewReader(strings.NewReader(input))

	require.NoError(t, app.Reply(ctx))
	assert.Contains(t, out.String(), "REVIEWED")

	got, err := store.CaseByID(ctx, created.CaseID)
	require.NoError(t, err)
	require.Len(t, got.Replies, 1)
	assert.Equal(t, models.ReplyTypeDoctorNote, got.Replies[0].Type)
	assert.Equal(t, "Sounds like viral infection", got.Replies[0].Content)
	assert.Equal(t, "Aspirin 500mg", got.Replies[0].Medication)
	assert.Equal(t, models.StatusReviewed, got.Status)
}

func TestReply_PrescriptionKind(t *testing.T) {
	ctx := context.Background()
	app, _, store := newTestApp(t, "")

	created, err := store.CreateSymptomCase(ctx, testPatient, "rash")
	require.NoError(t, err)

	input := created.CaseID + "\np\nApply twice daily\n\nCalamine lotion\n"
	app.reader = bufio.NewReader(strings.NewReader(input))

	require.NoError(t, app.Reply(ctx))

	got, err := store.CaseByID(ctx, created.CaseID)
	require.NoError(t, err)
	assert.Equal(t, models.ReplyTypePrescription, got.Replies[0].Type)
}

func TestReply_UnknownCase(t *testing.T) {
	app, _, store := newTestApp(t, "CASE-DOES-NOT-EXIST\nn\nhello\n\n\n")
	ctx := context.Background()

	err := app.Reply(ctx)
	assert.ErrorIs(t, err, shared.ErrorCaseNotFound)

	cases, err := store.AllCases(ctx)
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	app, out, store := newTestApp(t, "")

	created, err := store.CreateSymptomCase(ctx, testPatient, "sore throat")
	require.NoError(t, err)

	app.reader = bufio.NewReader(strings.NewReader(created.CaseID + "\n"))
	require.NoError(t, app.Resolve(ctx))
	assert.Contains(t, out.String(), "resolved")

	got, err := store.CaseByID(ctx, created.CaseID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, got.Status)

	app.reader = bufio.NewReader(strings.NewReader(created.CaseID + "\n"))
	err = app.Resolve(ctx)
	assert.ErrorIs(t, err, models.ErrAlreadyResolved)
}

func TestShow(t *testing.T) {
	ctx := context.Background()
	app, out, store := newTestApp(t, "")

	created, err := store.CreateSymptomCase(ctx, testPatient, "fever since yesterday")
	require.NoError(t, err)

	app.reader = bufio.NewReader(strings.NewReader(created.CaseID + "\n"))
	require.NoError(t, app.Show(ctx))
	assert.Contains(t, out.String(), "fever since yesterday")
	assert.Contains(t, out.String(), "Waiting for doctor response...")
}
