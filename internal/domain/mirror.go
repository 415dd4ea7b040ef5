package domain

import (
	"context"
	"time"
)

// MirrorStore is the persistent client-local key-value store behind the
// two wishful-cache entities (saved jobs, applied-job shadow copies) and
// the session. Every write replaces the whole value for a key; there are
// no partial or merge semantics, so the last writer wins.
type MirrorStore interface {
	// Read returns the stored payload and its write time. A missing or
	// unreadable key reports ok=false; it never fails the caller.
	Read(key string) (payload []byte, storedAt time.Time, ok bool)
	Write(key string, payload []byte) error
	Clear(key string) error
}

type SavedJobsUsecase interface {
	// ToggleBookmark adds or removes the job's snapshot. Requires a
	// session; no network call is involved, the entity is client-local.
	ToggleBookmark(ctx context.Context, job *JobPosting) (saved bool, err error)
	// SavedJobs lists the snapshots, optionally filtered by criteria
	SavedJobs(criteria JobCriteria) ([]SavedJob, error)
	SavedIDs() map[ID]bool
	Remove(id ID) error
	// Refresh re-fetches snapshots older than the staleness threshold.
	// Postings deleted server-side keep their last snapshot.
	Refresh(ctx context.Context) error
}
