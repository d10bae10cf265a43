package casestore

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramcare/caselink/internal/models"
	"github.com/gramcare/caselink/internal/storage"
	"github.com/gramcare/caselink/internal/watch"
)

// Two stores over independent handles to the same database file stand in
// for the patient and doctor processes sharing one persisted collection.
func TestTwoHandlesShareOneCollection(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "cases.db")

	patientSlot, err := storage.Open(ctx, dsn)
	require.NoError(t, err)
	defer patientSlot.Close()

	doctorSlot, err := storage.Open(ctx, dsn)
	require.NoError(t, err)
	defer doctorSlot.Close()

	patientStore := New(patientSlot, discardLogger())
	doctorStore := New(doctorSlot, discardLogger())

	created, err := patientStore.CreateSymptomCase(ctx, testPatient, "cough and cold")
	require.NoError(t, err)

	// the doctor's handle sees the submission
	inbox, err := doctorStore.AllCases(ctx)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, created.CaseID, inbox[0].CaseID)

	_, err = doctorStore.AddDoctorReply(ctx, created.CaseID, testDoctor,
		"Sounds like viral infection", models.ReplyTypeDoctorNote, "Aspirin 500mg")
	require.NoError(t, err)

	// and the patient's handle sees the reply
	mine, err := patientStore.CasesByPatient(ctx, testPatient.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Len(t, mine[0].Replies, 1)
	assert.Equal(t, "Aspirin 500mg", mine[0].Replies[0].Medication)
	assert.Equal(t, models.StatusReviewed, mine[0].Status)
}

func TestPatientWatcherObservesDoctorReply(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	dsn := filepath.Join(t.TempDir(), "cases.db")

	patientSlot, err := storage.Open(ctx, dsn)
	require.NoError(t, err)
	defer patientSlot.Close()

	doctorSlot, err := storage.Open(ctx, dsn)
	require.NoError(t, err)
	defer doctorSlot.Close()

	patientStore := New(patientSlot, discardLogger())
	doctorStore := New(doctorSlot, discardLogger())

	created, err := patientStore.CreateSymptomCase(ctx, testPatient, "fever")
	require.NoError(t, err)

	replySeen := make(chan struct{})
	var once sync.Once
	render := func(cases []models.Case) {
		if len(cases) == 1 && len(cases[0].Replies) == 1 {
			once.Do(func() { close(replySeen) })
		}
	}
	snapshot := func(ctx context.Context) ([]models.Case, error) {
		return patientStore.CasesByPatient(ctx, testPatient.ID)
	}

	go watch.New(10*time.Millisecond, snapshot, render, discardLogger()).Run(ctx)

	_, err = doctorStore.AddDoctorReply(ctx, created.CaseID, testDoctor, "rest and fluids", models.ReplyTypeDoctorNote, "")
	require.NoError(t, err)

	select {
	case <-replySeen:
	case <-time.After(5 * time.Second):
		t.Fatal("patient watcher never observed the doctor's reply")
	}
}
