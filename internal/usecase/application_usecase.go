package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"go-jobportal-client/internal/domain"
	"go-jobportal-client/internal/repository/localstore"
	"go-jobportal-client/pkg/apperror"
	"go-jobportal-client/pkg/logger"
	"go-jobportal-client/pkg/validation"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	mirror          domain.MirrorStore
	sessions        *Sessions
	validate        *validator.Validate
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, mirror domain.MirrorStore, sessions *Sessions, validate *validator.Validate) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		mirror:          mirror,
		sessions:        sessions,
		validate:        validate,
	}
}

// Apply submits one application for the signed-in user.
func (u *applicationUsecase) Apply(ctx context.Context, app *domain.Application, resumeName string, resume []byte) (*domain.Application, error) {
	// 1. Session gate: the form never opens unauthenticated, but the op
	// enforces it regardless
	sess := u.sessions.Current()
	if !sess.SignedIn() {
		return nil, apperror.AuthRequired("You need to be logged in to apply for jobs")
	}
	app.ApplicantEmail = sess.Email

	// 2. Form validation, no network call on failure
	if err := u.validate.Struct(app); err != nil {
		return nil, apperror.Validation(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	// 3. Idempotence guard: one application per (email, jobTitle, company)
	existing, err := u.applicationRepo.FetchByUser(ctx, sess.Email)
	if err != nil {
		// The pre-check is best effort; the server still rejects duplicates
		logger.Log.Warn("duplicate pre-check failed", "error", err)
	}
	for i := range existing {
		if existing[i].SameTuple(app) {
			return nil, apperror.Conflict("You have already applied for this job")
		}
	}

	// 4. Submit
	app.Status = domain.ApplicationStatusPending
	app.ApplicationDate = time.Now().UTC().Format(time.RFC3339)
	if err := u.applicationRepo.Create(ctx, app, resumeName, resume); err != nil {
		return nil, err
	}

	// 5. Shadow copy for offline display. A UUID stands in when the
	// server did not echo an id.
	if app.ID == "" {
		app.ID = domain.ID(uuid.NewString())
	}
	applied := localstore.ReadList[domain.Application](u.mirror, domain.KeyAppliedJobs)
	duplicate := false
	for i := range applied {
		if applied[i].SameTuple(app) {
			duplicate = true
			break
		}
	}
	if !duplicate {
		applied = append(applied, *app)
		if err := localstore.WriteList(u.mirror, domain.KeyAppliedJobs, applied); err != nil {
			// The server accepted the application; a mirror failure only
			// costs offline display
			logger.Log.Warn("could not store applied-job shadow copy", "error", err)
		}
	}

	return app, nil
}

// MyApplications merges the server list with the mirror's shadow copies,
// deduped by tuple with the server winning. A server failure degrades to
// the shadow copies alone.
func (u *applicationUsecase) MyApplications(ctx context.Context, email string) ([]domain.Application, error) {
	shadow := localstore.ReadList[domain.Application](u.mirror, domain.KeyAppliedJobs)

	remote, err := u.applicationRepo.FetchByUser(ctx, email)
	if err != nil {
		logger.Log.Warn("falling back to applied-job shadow copies", "error", err)
		return filterByEmail(shadow, email), nil
	}

	merged := make([]domain.Application, 0, len(remote)+len(shadow))
	merged = append(merged, remote...)
	for i := range shadow {
		if shadow[i].ApplicantEmail != email {
			continue
		}
		known := false
		for j := range remote {
			if remote[j].SameTuple(&shadow[i]) {
				known = true
				break
			}
		}
		if !known {
			merged = append(merged, shadow[i])
		}
	}
	return merged, nil
}

func filterByEmail(apps []domain.Application, email string) []domain.Application {
	out := make([]domain.Application, 0, len(apps))
	for i := range apps {
		if apps[i].ApplicantEmail == email {
			out = append(out, apps[i])
		}
	}
	return out
}

func (u *applicationUsecase) RemoveApplied(email string, id domain.ID) error {
	applied := localstore.ReadList[domain.Application](u.mirror, domain.KeyAppliedJobs)
	kept := applied[:0]
	for i := range applied {
		if applied[i].ID != id {
			kept = append(kept, applied[i])
		}
	}
	return localstore.WriteList(u.mirror, domain.KeyAppliedJobs, kept)
}

func (u *applicationUsecase) ListAll(ctx context.Context) ([]domain.Application, error) {
	return u.applicationRepo.FetchAll(ctx)
}

// SetStatus flips the in-memory item immediately and reverts it if the
// server rejects the update.
func (u *applicationUsecase) SetStatus(ctx context.Context, apps []domain.Application, id domain.ID, status string) ([]domain.Application, error) {
	if !domain.ValidApplicationStatus(status) {
		return apps, apperror.Validation("Invalid status. Must be: PENDING, REVIEWED, SHORTLISTED or REJECTED")
	}

	idx := -1
	for i := range apps {
		if apps[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apps, apperror.NotFound("Application not found")
	}

	prior := apps[idx].Status
	err := runOptimistic(ctx,
		func() { apps[idx].Status = status },
		func() { apps[idx].Status = prior },
		func(ctx context.Context) error {
			return u.applicationRepo.UpdateStatus(ctx, id, status)
		},
	)
	return apps, err
}

// DeleteApplication is destructive, so nothing is removed from memory
// until the server confirms.
func (u *applicationUsecase) DeleteApplication(ctx context.Context, apps []domain.Application, id domain.ID) ([]domain.Application, error) {
	if err := u.applicationRepo.Delete(ctx, id); err != nil {
		return apps, err
	}
	for i := range apps {
		if apps[i].ID == id {
			return append(apps[:i], apps[i+1:]...), nil
		}
	}
	return apps, nil
}

// StatusCounts is the dashboard's per-status breakdown. A blank status
// counts as pending, the server's default.
func (u *applicationUsecase) StatusCounts(apps []domain.Application) map[string]int {
	counts := make(map[string]int, 4)
	for i := range apps {
		status := apps[i].Status
		if status == "" {
			status = domain.ApplicationStatusPending
		}
		counts[status]++
	}
	return counts
}
