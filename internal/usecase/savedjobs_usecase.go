package usecase

import (
	"context"
	"time"

	"go-jobportal-client/internal/domain"
	"go-jobportal-client/internal/filter"
	"go-jobportal-client/internal/repository/localstore"
	"go-jobportal-client/pkg/apperror"
	"go-jobportal-client/pkg/logger"
)

type savedJobsUsecase struct {
	mirror   domain.MirrorStore
	jobRepo  domain.JobRepository
	sessions *Sessions
	maxAge   time.Duration
}

func NewSavedJobsUsecase(mirror domain.MirrorStore, jobRepo domain.JobRepository, sessions *Sessions, maxAge time.Duration) domain.SavedJobsUsecase {
	return &savedJobsUsecase{
		mirror:   mirror,
		jobRepo:  jobRepo,
		sessions: sessions,
		maxAge:   maxAge,
	}
}

// ToggleBookmark adds or removes the job's snapshot in the mirror. The
// whole array is read, modified and written back; the entity is
// client-local, so no remote call is involved.
func (u *savedJobsUsecase) ToggleBookmark(ctx context.Context, job *domain.JobPosting) (bool, error) {
	if !u.sessions.Current().SignedIn() {
		return false, apperror.AuthRequired("You need to sign in to perform this action.")
	}

	saved := localstore.ReadList[domain.SavedJob](u.mirror, domain.KeySavedJobs)

	for i := range saved {
		if saved[i].ID == job.ID {
			// Toggle off: remove by id
			saved = append(saved[:i], saved[i+1:]...)
			return false, localstore.WriteList(u.mirror, domain.KeySavedJobs, saved)
		}
	}

	// Toggle on: full denormalized snapshot
	saved = append(saved, domain.SavedJob{JobPosting: *job, SavedAt: time.Now().UTC()})
	return true, localstore.WriteList(u.mirror, domain.KeySavedJobs, saved)
}

func (u *savedJobsUsecase) SavedJobs(criteria domain.JobCriteria) ([]domain.SavedJob, error) {
	saved := localstore.ReadList[domain.SavedJob](u.mirror, domain.KeySavedJobs)
	if age, ok := localstore.Age(u.mirror, domain.KeySavedJobs); ok && age > u.maxAge {
		logger.Log.Info("saved-job snapshots are stale", "age", age.String())
	}

	out := make([]domain.SavedJob, 0, len(saved))
	for i := range saved {
		if filter.Matches(&saved[i].JobPosting, criteria) {
			out = append(out, saved[i])
		}
	}
	return out, nil
}

func (u *savedJobsUsecase) SavedIDs() map[domain.ID]bool {
	saved := localstore.ReadList[domain.SavedJob](u.mirror, domain.KeySavedJobs)
	ids := make(map[domain.ID]bool, len(saved))
	for i := range saved {
		ids[saved[i].ID] = true
	}
	return ids
}

func (u *savedJobsUsecase) Remove(id domain.ID) error {
	saved := localstore.ReadList[domain.SavedJob](u.mirror, domain.KeySavedJobs)
	kept := saved[:0]
	for i := range saved {
		if saved[i].ID != id {
			kept = append(kept, saved[i])
		}
	}
	return localstore.WriteList(u.mirror, domain.KeySavedJobs, kept)
}

// Refresh re-fetches each snapshot when the stored array has crossed the
// staleness threshold. A posting the server no longer knows keeps its
// last snapshot: a stale bookmark beats a vanished one.
func (u *savedJobsUsecase) Refresh(ctx context.Context) error {
	age, ok := localstore.Age(u.mirror, domain.KeySavedJobs)
	if !ok || age <= u.maxAge {
		return nil
	}

	saved := localstore.ReadList[domain.SavedJob](u.mirror, domain.KeySavedJobs)
	for i := range saved {
		fresh, err := u.jobRepo.GetByID(ctx, saved[i].ID)
		if err != nil {
			logger.Log.Warn("could not refresh saved job", "id", saved[i].ID, "error", err)
			continue
		}
		saved[i].JobPosting = *fresh
	}
	return localstore.WriteList(u.mirror, domain.KeySavedJobs, saved)
}
