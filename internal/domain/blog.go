package domain

import "context"

// Blog status values
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// BlogPost is an admin-owned CRUD entity. Category is an open string set.
type BlogPost struct {
	ID          ID     `json:"id"`
	Title       string `json:"title" validate:"required"`
	Summary     string `json:"summary" validate:"required"`
	Content     string `json:"content" validate:"required"` // HTML
	Category    string `json:"category" validate:"required"`
	CoverImage  string `json:"coverImage"`
	Author      string `json:"author" validate:"required"`
	PublishDate string `json:"publishDate"`
	Status      string `json:"status"`
	Featured    bool   `json:"featured"`
}

type BlogRepository interface {
	// FetchAll returns published posts; includeDrafts widens it to every
	// status (admin listing)
	FetchAll(ctx context.Context, includeDrafts bool) ([]BlogPost, error)
	GetByID(ctx context.Context, id ID) (*BlogPost, error)
	Create(ctx context.Context, post *BlogPost) error
	Update(ctx context.Context, post *BlogPost) error
	Delete(ctx context.Context, id ID) error
	SetFeatured(ctx context.Context, id ID, featured bool) error
	SetStatus(ctx context.Context, id ID, status string) error
}

type BlogUsecase interface {
	// ReaderFeed returns published posts, optionally narrowed to one category
	ReaderFeed(ctx context.Context, category string) ([]BlogPost, error)
	AdminList(ctx context.Context) ([]BlogPost, error)
	GetPost(ctx context.Context, id ID) (*BlogPost, error)
	SavePost(ctx context.Context, post *BlogPost) error
	// DeletePost removes from memory only after the remote delete succeeds
	DeletePost(ctx context.Context, posts []BlogPost, id ID) ([]BlogPost, error)
	// ToggleFeatured / ToggleStatus flip optimistically and revert the
	// in-memory item on remote failure
	ToggleFeatured(ctx context.Context, posts []BlogPost, id ID) ([]BlogPost, error)
	ToggleStatus(ctx context.Context, posts []BlogPost, id ID) ([]BlogPost, error)
}
