package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-jobportal-client/internal/domain"
	"go-jobportal-client/internal/repository/localstore"
	"go-jobportal-client/pkg/apperror"
)

func TestToggleBookmark(t *testing.T) {
	job := &domain.JobPosting{ID: "42", Role: "Engineer", CompanyName: "Acme", Location: "Pune"}

	t.Run("Should abort with sign-in required when no session exists", func(t *testing.T) {
		mirror := newMemMirror()
		uc := NewSavedJobsUsecase(mirror, nil, NewSessions(mirror, nil), time.Hour)

		_, err := uc.ToggleBookmark(context.Background(), job)
		assert.Error(t, err)
		assert.True(t, apperror.Is(err, apperror.KindAuthRequired))
		// Nothing was written
		_, _, ok := mirror.Read(domain.KeySavedJobs)
		assert.False(t, ok)
	})

	t.Run("Double toggle restores the stored array to its original contents", func(t *testing.T) {
		mirror := newMemMirror()
		uc := NewSavedJobsUsecase(mirror, nil, signedIn(mirror, "user@example.com", "user"), time.Hour)

		saved, err := uc.ToggleBookmark(context.Background(), job)
		assert.NoError(t, err)
		assert.True(t, saved)
		assert.Len(t, localstore.ReadList[domain.SavedJob](mirror, domain.KeySavedJobs), 1)
		assert.True(t, uc.SavedIDs()["42"])

		saved, err = uc.ToggleBookmark(context.Background(), job)
		assert.NoError(t, err)
		assert.False(t, saved)
		assert.Empty(t, localstore.ReadList[domain.SavedJob](mirror, domain.KeySavedJobs))
		assert.False(t, uc.SavedIDs()["42"])
	})

	t.Run("Toggling twice never leaves duplicate entries", func(t *testing.T) {
		mirror := newMemMirror()
		uc := NewSavedJobsUsecase(mirror, nil, signedIn(mirror, "user@example.com", "user"), time.Hour)

		_, _ = uc.ToggleBookmark(context.Background(), job)
		other := &domain.JobPosting{ID: "7", Role: "Designer"}
		_, _ = uc.ToggleBookmark(context.Background(), other)
		_, _ = uc.ToggleBookmark(context.Background(), job)
		_, _ = uc.ToggleBookmark(context.Background(), job)

		list := localstore.ReadList[domain.SavedJob](mirror, domain.KeySavedJobs)
		assert.Len(t, list, 2)
		assert.Equal(t, map[domain.ID]bool{"7": true, "42": true}, uc.SavedIDs())
	})
}

func TestSavedJobsFiltering(t *testing.T) {
	mirror := newMemMirror()
	uc := NewSavedJobsUsecase(mirror, nil, signedIn(mirror, "user@example.com", "user"), time.Hour)

	_, _ = uc.ToggleBookmark(context.Background(), &domain.JobPosting{ID: "1", Role: "Engineer", Location: "Pune"})
	_, _ = uc.ToggleBookmark(context.Background(), &domain.JobPosting{ID: "2", Role: "Designer", Location: "Pune"})

	jobs, err := uc.SavedJobs(domain.JobCriteria{Role: "eng"})
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, domain.ID("1"), jobs[0].ID)
}

func TestSavedJobsRefresh(t *testing.T) {
	t.Run("Fresh snapshots are left alone", func(t *testing.T) {
		mirror := newMemMirror()
		jobRepo := new(MockJobRepo)
		uc := NewSavedJobsUsecase(mirror, jobRepo, signedIn(mirror, "user@example.com", "user"), time.Hour)

		_, _ = uc.ToggleBookmark(context.Background(), &domain.JobPosting{ID: "1", Role: "Engineer"})
		assert.NoError(t, uc.Refresh(context.Background()))
		jobRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Stale snapshots are re-fetched, vanished postings keep the old copy", func(t *testing.T) {
		mirror := newMemMirror()
		jobRepo := new(MockJobRepo)
		uc := NewSavedJobsUsecase(mirror, jobRepo, signedIn(mirror, "user@example.com", "user"), time.Nanosecond)

		_, _ = uc.ToggleBookmark(context.Background(), &domain.JobPosting{ID: "1", Role: "Engineer", Openings: 2})
		_, _ = uc.ToggleBookmark(context.Background(), &domain.JobPosting{ID: "2", Role: "Designer"})
		time.Sleep(time.Millisecond)

		jobRepo.On("GetByID", mock.Anything, domain.ID("1")).
			Return(&domain.JobPosting{ID: "1", Role: "Engineer", Openings: 5}, nil)
		jobRepo.On("GetByID", mock.Anything, domain.ID("2")).
			Return(nil, apperror.NotFound("Job not found"))

		assert.NoError(t, uc.Refresh(context.Background()))

		list := localstore.ReadList[domain.SavedJob](mirror, domain.KeySavedJobs)
		assert.Len(t, list, 2)
		assert.Equal(t, 5, list[0].Openings)
		assert.Equal(t, "Designer", list[1].Role)
	})
}
