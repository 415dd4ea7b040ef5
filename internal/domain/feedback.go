package domain

import "context"

// Review is a public site review
type Review struct {
	ID      ID     `json:"id"`
	Name    string `json:"name" validate:"required"`
	Role    string `json:"role"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
	Date    string `json:"date"`
}

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type ReviewRepository interface {
	FetchAll(ctx context.Context) ([]Review, error)
	Create(ctx context.Context, review *Review) error
}

type ContactRepository interface {
	Send(ctx context.Context, req *ContactRequest) error
}

type FeedbackUsecase interface {
	ListReviews(ctx context.Context) ([]Review, error)
	SubmitReview(ctx context.Context, review *Review) error
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
