package usecase

import (
	"context"

	"go-jobportal-client/internal/domain"
	"go-jobportal-client/pkg/apperror"
	"go-jobportal-client/pkg/logger"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
}

func NewProfileUsecase(profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

// GetOrCreate loads the profile for an email, creating an empty one on
// first visit. Not-found is a creation signal here, never an error the
// caller shows.
func (u *profileUsecase) GetOrCreate(ctx context.Context, email string) (*domain.CandidateProfile, error) {
	if email == "" {
		return nil, apperror.AuthRequired("Sign in to view your profile")
	}

	profile, err := u.profileRepo.GetByEmail(ctx, email)
	if err == nil {
		return profile, nil
	}
	if !apperror.Is(err, apperror.KindNotFound) {
		return nil, err
	}

	fresh := &domain.CandidateProfile{Email: email}
	if err := u.profileRepo.Create(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// Save persists the profile. A profile without a server id degrades to
// creation; that absence is the new-profile sentinel, not an error.
// Once the completion rule is satisfied the server-stored percentage is
// pushed to 100; the client never writes a partial value.
func (u *profileUsecase) Save(ctx context.Context, profile *domain.CandidateProfile) error {
	if profile.Email == "" {
		return apperror.Validation("Profile email is required")
	}

	if profile.ID == "" {
		if err := u.profileRepo.Create(ctx, profile); err != nil {
			return err
		}
	} else {
		if err := u.profileRepo.Save(ctx, profile); err != nil {
			return err
		}
	}

	if profile.Complete() && profile.CompletionPercentage != 100 && profile.ID != "" {
		if err := u.profileRepo.UpdateCompletion(ctx, profile.ID, 100); err != nil {
			// The save itself succeeded; the percentage catches up on the
			// next complete save
			logger.Log.Warn("could not update completion percentage", "id", profile.ID, "error", err)
		} else {
			profile.CompletionPercentage = 100
		}
	}
	return nil
}

func (u *profileUsecase) UploadImage(ctx context.Context, profile *domain.CandidateProfile, filename string, content []byte) error {
	if profile.ID == "" {
		return apperror.Validation("Save your profile before uploading an image")
	}
	url, err := u.profileRepo.UploadImage(ctx, profile.ID, filename, content)
	if err != nil {
		return err
	}
	profile.ImageURL = url
	return nil
}

func (u *profileUsecase) UploadResume(ctx context.Context, profile *domain.CandidateProfile, filename string, content []byte) error {
	if profile.ID == "" {
		return apperror.Validation("Save your profile before uploading a resume")
	}
	url, err := u.profileRepo.UploadResume(ctx, profile.ID, filename, content)
	if err != nil {
		return err
	}
	profile.ResumeURL = url
	return nil
}
