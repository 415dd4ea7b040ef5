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

type blogUsecase struct {
	blogRepo domain.BlogRepository
	validate *validator.Validate
}

func NewBlogUsecase(blogRepo domain.BlogRepository, validate *validator.Validate) domain.BlogUsecase {
	return &blogUsecase{blogRepo: blogRepo, validate: validate}
}

// ReaderFeed lists published posts, optionally one category.
func (u *blogUsecase) ReaderFeed(ctx context.Context, category string) ([]domain.BlogPost, error) {
	posts, err := u.blogRepo.FetchAll(ctx, false)
	if err != nil {
		return nil, err
	}
	out := make([]domain.BlogPost, 0, len(posts))
	for i := range posts {
		if posts[i].Status != domain.BlogStatusPublished {
			continue
		}
		if category != "" && !strings.EqualFold(posts[i].Category, category) {
			continue
		}
		out = append(out, posts[i])
	}
	return out, nil
}

func (u *blogUsecase) AdminList(ctx context.Context) ([]domain.BlogPost, error) {
	return u.blogRepo.FetchAll(ctx, true)
}

func (u *blogUsecase) GetPost(ctx context.Context, id domain.ID) (*domain.BlogPost, error) {
	return u.blogRepo.GetByID(ctx, id)
}

// SavePost creates or updates depending on whether the post already has
// a server id.
func (u *blogUsecase) SavePost(ctx context.Context, post *domain.BlogPost) error {
	if err := u.validate.Struct(post); err != nil {
		return apperror.Validation(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if post.Status == "" {
		post.Status = domain.BlogStatusDraft
	}
	if post.Status == domain.BlogStatusPublished && post.PublishDate == "" {
		post.PublishDate = time.Now().UTC().Format(time.RFC3339)
	}
	if post.ID == "" {
		return u.blogRepo.Create(ctx, post)
	}
	return u.blogRepo.Update(ctx, post)
}

func (u *blogUsecase) DeletePost(ctx context.Context, posts []domain.BlogPost, id domain.ID) ([]domain.BlogPost, error) {
	if err := u.blogRepo.Delete(ctx, id); err != nil {
		return posts, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return append(posts[:i], posts[i+1:]...), nil
		}
	}
	return posts, nil
}

// ToggleFeatured flips the flag optimistically and reverts on failure.
func (u *blogUsecase) ToggleFeatured(ctx context.Context, posts []domain.BlogPost, id domain.ID) ([]domain.BlogPost, error) {
	idx := indexOfPost(posts, id)
	if idx < 0 {
		return posts, apperror.NotFound("Blog post not found")
	}

	prior := posts[idx].Featured
	err := runOptimistic(ctx,
		func() { posts[idx].Featured = !prior },
		func() { posts[idx].Featured = prior },
		func(ctx context.Context) error {
			return u.blogRepo.SetFeatured(ctx, id, !prior)
		},
	)
	return posts, err
}

// ToggleStatus flips draft/published optimistically and reverts on failure.
func (u *blogUsecase) ToggleStatus(ctx context.Context, posts []domain.BlogPost, id domain.ID) ([]domain.BlogPost, error) {
	idx := indexOfPost(posts, id)
	if idx < 0 {
		return posts, apperror.NotFound("Blog post not found")
	}

	prior := posts[idx].Status
	next := domain.BlogStatusPublished
	if prior == domain.BlogStatusPublished {
		next = domain.BlogStatusDraft
	}

	err := runOptimistic(ctx,
		func() { posts[idx].Status = next },
		func() { posts[idx].Status = prior },
		func(ctx context.Context) error {
			return u.blogRepo.SetStatus(ctx, id, next)
		},
	)
	return posts, err
}

func indexOfPost(posts []domain.BlogPost, id domain.ID) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}
