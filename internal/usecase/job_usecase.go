package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"go-jobportal-client/internal/domain"
	"go-jobportal-client/internal/filter"
	"go-jobportal-client/pkg/apperror"
	"go-jobportal-client/pkg/validation"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, validate: validate}
}

func (u *jobUsecase) BrowseJobs(ctx context.Context, criteria domain.JobCriteria) ([]domain.JobPosting, error) {
	jobs, err := u.jobRepo.FetchPublic(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(jobs, criteria), nil
}

func (u *jobUsecase) Spotlight(ctx context.Context, role, location string) ([]domain.JobPosting, error) {
	jobs, err := u.jobRepo.FetchPublic(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Promote(jobs, role, location), nil
}

func (u *jobUsecase) ManageJobs(ctx context.Context) ([]domain.JobPosting, error) {
	return u.jobRepo.FetchAll(ctx)
}

func (u *jobUsecase) JobDetails(ctx context.Context, id domain.ID) (*domain.JobPosting, error) {
	return u.jobRepo.GetByID(ctx, id)
}

func (u *jobUsecase) PostJob(ctx context.Context, job *domain.JobPosting) error {
	if err := u.validateJob(job); err != nil {
		return err
	}
	job.DatePosted = time.Now().UTC().Format(time.RFC3339)
	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) EditJob(ctx context.Context, job *domain.JobPosting) error {
	if job.ID == "" {
		return apperror.Validation("Job id is required for editing")
	}
	if err := u.validateJob(job); err != nil {
		return err
	}
	return u.jobRepo.Update(ctx, job)
}

// SubmitJobForm validates the raw form and routes it by id presence.
func (u *jobUsecase) SubmitJobForm(ctx context.Context, form *domain.JobForm) (*domain.JobPosting, error) {
	if err := u.validate.Struct(form); err != nil {
		return nil, apperror.Validation(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	job := form.Posting()
	if job.ID == "" {
		if err := u.PostJob(ctx, job); err != nil {
			return nil, err
		}
		return job, nil
	}
	if err := u.EditJob(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) validateJob(job *domain.JobPosting) error {
	if err := u.validate.Struct(job); err != nil {
		return apperror.Validation(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if job.MinSalary.Disclosed && job.MaxSalary.Disclosed && job.MinSalary.Amount > job.MaxSalary.Amount {
		return apperror.Validation("Minimum Salary cannot be greater than Maximum Salary")
	}
	return nil
}

// DeleteJob is destructive: the remote delete goes first, and the
// in-memory list loses exactly one entry only on success. A non-existent
// id surfaces the server's rejection and leaves the list unchanged.
func (u *jobUsecase) DeleteJob(ctx context.Context, jobs []domain.JobPosting, id domain.ID) ([]domain.JobPosting, error) {
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		return jobs, err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			return append(jobs[:i], jobs[i+1:]...), nil
		}
	}
	return jobs, nil
}

// Stats is the admin dashboard's per-type breakdown.
func (u *jobUsecase) Stats(jobs []domain.JobPosting) domain.JobStats {
	stats := domain.JobStats{Total: len(jobs)}
	for i := range jobs {
		jobType := filter.Normalize(jobs[i].JobType)
		workMode := filter.Normalize(jobs[i].WorkMode)
		if strings.Contains(jobType, "full") {
			stats.FullTime++
		}
		if strings.Contains(jobType, "part") {
			stats.PartTime++
		}
		if strings.Contains(workMode, "remote") || strings.Contains(jobType, "remote") {
			stats.Remote++
		}
	}
	return stats
}
