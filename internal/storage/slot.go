// Package storage implements the persisted key-value area holding the
// case collection. The whole collection lives under one key; every value
// carries a monotonic revision so writers can detect stale
// read-modify-write sequences.
package storage

import "context"

// CasesKey is the slot under which the case collection is persisted.
const CasesKey = "medicalCases"

// Slot is a revisioned key-value slot.
type Slot interface {
	// Get returns the current value and revision for key. A missing key
	// yields an empty value and revision 0 with no error.
	Get(ctx context.Context, key string) (value string, revision int64, err error)

	// Put stores value under key if the persisted revision still equals
	// expectRevision, and returns the new revision. On a mismatch it
	// returns shared.ErrorStaleRevision and leaves the slot unchanged.
	Put(ctx context.Context, key, value string, expectRevision int64) (int64, error)
}
