package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"go-jobportal-client/internal/domain"
	"go-jobportal-client/pkg/apperror"
	"go-jobportal-client/pkg/validation"
)

type feedbackUsecase struct {
	reviewRepo  domain.ReviewRepository
	contactRepo domain.ContactRepository
	validate    *validator.Validate
}

func NewFeedbackUsecase(reviewRepo domain.ReviewRepository, contactRepo domain.ContactRepository, validate *validator.Validate) domain.FeedbackUsecase {
	return &feedbackUsecase{
		reviewRepo:  reviewRepo,
		contactRepo: contactRepo,
		validate:    validate,
	}
}

func (u *feedbackUsecase) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return u.reviewRepo.FetchAll(ctx)
}

func (u *feedbackUsecase) SubmitReview(ctx context.Context, review *domain.Review) error {
	if err := u.validate.Struct(review); err != nil {
		return apperror.Validation(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	review.Date = time.Now().UTC().Format(time.RFC3339)
	return u.reviewRepo.Create(ctx, review)
}

func (u *feedbackUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if err := u.validate.Struct(req); err != nil {
		return apperror.Validation(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	return u.contactRepo.Send(ctx, req)
}
