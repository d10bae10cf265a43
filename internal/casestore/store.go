// Package casestore owns the persisted collection of case records. Every
// read and write in the system funnels through a Store; writers persist
// the full collection back with a compare-and-swap so two processes
// cannot silently clobber each other's appends.
package casestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gramcare/caselink/internal/logging"
	"github.com/gramcare/caselink/internal/models"
	"github.com/gramcare/caselink/internal/profile"
	"github.com/gramcare/caselink/internal/shared"
	"github.com/gramcare/caselink/internal/storage"
)

// casWriteAttempts bounds how many times a write retries its whole
// read-modify-write sequence after losing a revision race.
const casWriteAttempts = 3

type Store struct {
	slot storage.Slot
	log  logging.Logger

	// test seams
	now   func() time.Time
	newID func() string
}

func New(slot storage.Slot, log logging.Logger) *Store {
	return &Store{
		slot:  slot,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// load reads the collection and its revision. A missing or unreadable
// stored value degrades to an empty collection; the error is logged, not
// surfaced.
func (s *Store) load(ctx context.Context) ([]models.Case, int64, error) {
	value, revision, err := s.slot.Get(ctx, storage.CasesKey)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read case collection: %w", err)
	}

	cases, err := models.DecodeCollection(value)
	if err != nil {
		s.log.Error(ctx, "stored case collection unreadable, treating as empty", "error", err)
		return []models.Case{}, revision, nil
	}
	return cases, revision, nil
}

func (s *Store) persist(ctx context.Context, cases []models.Case, revision int64) error {
	value, err := models.EncodeCollection(cases)
	if err != nil {
		return fmt.Errorf("failed to encode case collection: %w", err)
	}
	if _, err := s.slot.Put(ctx, storage.CasesKey, value, revision); err != nil {
		return err
	}
	return nil
}

// CreateSymptomCase appends a new pending case built from the patient's
// profile and free-text symptom description.
func (s *Store) CreateSymptomCase(ctx context.Context, p *profile.Patient, symptomText string) (*models.Case, error) {
	return s.createCase(ctx, p, symptomText, nil)
}

// CreateImageCase appends a new pending case carrying inline-encoded
// image attachments, with optional accompanying text.
func (s *Store) CreateImageCase(ctx context.Context, p *profile.Patient, symptomText string, images []models.ImageAttachment) (*models.Case, error) {
	return s.createCase(ctx, p, symptomText, images)
}

func (s *Store) createCase(ctx context.Context, p *profile.Patient, symptomText string, images []models.ImageAttachment) (*models.Case, error) {
	if images == nil {
		images = []models.ImageAttachment{}
	}

	for attempt := 0; attempt < casWriteAttempts; attempt++ {
		cases, revision, err := s.load(ctx)
		if err != nil {
			return nil, err
		}

		now := s.now().UnixMilli()
		c := models.Case{
			CaseID:          s.newID(),
			PatientID:       p.ID,
			PatientName:     p.Name,
			PatientAge:      p.Age,
			PatientPhone:    p.Phone,
			PatientDistrict: p.District,
			PatientState:    p.State,
			SymptomText:     symptomText,
			Images:          images,
			Replies:         []models.Reply{},
			Status:          models.StatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		cases = append(cases, c)
		if err := s.persist(ctx, cases, revision); err != nil {
			if errors.Is(err, shared.ErrorStaleRevision) {
				continue
			}
			return nil, fmt.Errorf("failed to save case: %w", err)
		}
		return &c, nil
	}
	return nil, fmt.Errorf("create case: %w", shared.ErrorStaleRevision)
}

// AllCases returns the full collection in storage (insertion) order.
func (s *Store) AllCases(ctx context.Context) ([]models.Case, error) {
	cases, _, err := s.load(ctx)
	return cases, err
}

// CasesByPatient returns the subsequence of AllCases belonging to one
// patient, order preserved.
func (s *Store) CasesByPatient(ctx context.Context, patientID string) ([]models.Case, error) {
	cases, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		if c.PatientID == patientID {
			result = append(result, c)
		}
	}
	return result, nil
}

// CaseByID looks a case up by id, returning shared.ErrorCaseNotFound when
// no such case exists.
func (s *Store) CaseByID(ctx context.Context, caseID string) (*models.Case, error) {
	cases, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cases {
		if cases[i].CaseID == caseID {
			return &cases[i], nil
		}
	}
	return nil, fmt.Errorf("case %s: %w", caseID, shared.ErrorCaseNotFound)
}

// AddDoctorReply appends a reply to the case with the given id. The first
// reply advances a pending case to reviewed; a resolved case stays
// resolved. A missing case id is reported, never silently dropped.
func (s *Store) AddDoctorReply(ctx context.Context, caseID string, d *profile.Doctor, content string, kind models.ReplyType, medication string) (*models.Case, error) {
	return s.mutateCase(ctx, caseID, func(c *models.Case, now int64) error {
		c.Replies = append(c.Replies, models.Reply{
			ReplyID:        s.newID(),
			DoctorID:       d.ID,
			DoctorName:     d.Name,
			Specialization: d.Specialization,
			Content:        content,
			Type:           kind,
			Medication:     medication,
			Timestamp:      now,
		})
		c.MarkReviewed()
		return nil
	})
}

// MarkResolved moves a case to its terminal resolved state.
func (s *Store) MarkResolved(ctx context.Context, caseID string) (*models.Case, error) {
	return s.mutateCase(ctx, caseID, func(c *models.Case, _ int64) error {
		return c.MarkResolved()
	})
}

// mutateCase runs the locate-mutate-persist sequence under the CAS retry
// loop. The mutation sees the case at the freshly read revision on every
// attempt, so a retry never re-applies a stale in-memory change.
func (s *Store) mutateCase(ctx context.Context, caseID string, mutate func(c *models.Case, now int64) error) (*models.Case, error) {
	for attempt := 0; attempt < casWriteAttempts; attempt++ {
		cases, revision, err := s.load(ctx)
		if err != nil {
			return nil, err
		}

		idx := -1
		for i := range cases {
			if cases[i].CaseID == caseID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("case %s: %w", caseID, shared.ErrorCaseNotFound)
		}

		now := s.now().UnixMilli()
		if err := mutate(&cases[idx], now); err != nil {
			return nil, err
		}
		cases[idx].UpdatedAt = now

		if err := s.persist(ctx, cases, revision); err != nil {
			if errors.Is(err, shared.ErrorStaleRevision) {
				continue
			}
			return nil, fmt.Errorf("failed to save case %s: %w", caseID, err)
		}
		updated := cases[idx]
		return &updated, nil
	}
	return nil, fmt.Errorf("update case %s: %w", caseID, shared.ErrorStaleRevision)
}
