package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-jobportal-client/internal/domain"
	"go-jobportal-client/pkg/apperror"
)

func blogFixtures() []domain.BlogPost {
	return []domain.BlogPost{
		{ID: "1", Title: "Interview prep", Status: domain.BlogStatusPublished, Featured: false},
		{ID: "2", Title: "Resume tips", Status: domain.BlogStatusDraft, Featured: true},
	}
}

func TestToggleFeatured(t *testing.T) {
	t.Run("Flips optimistically and sticks on success", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		uc := NewBlogUsecase(blogRepo, newValidate())

		blogRepo.On("SetFeatured", mock.Anything, domain.ID("1"), true).Return(nil)

		posts, err := uc.ToggleFeatured(context.Background(), blogFixtures(), "1")
		assert.NoError(t, err)
		assert.True(t, posts[0].Featured)
	})

	t.Run("Reverts the in-memory flag when the server rejects", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		uc := NewBlogUsecase(blogRepo, newValidate())

		blogRepo.On("SetFeatured", mock.Anything, domain.ID("2"), false).
			Return(apperror.Server(500, "Internal Server Error"))

		posts, err := uc.ToggleFeatured(context.Background(), blogFixtures(), "2")
		assert.Error(t, err)
		assert.True(t, posts[1].Featured)
	})
}

func TestToggleStatus(t *testing.T) {
	t.Run("Published goes to draft and back", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		uc := NewBlogUsecase(blogRepo, newValidate())

		blogRepo.On("SetStatus", mock.Anything, domain.ID("1"), domain.BlogStatusDraft).Return(nil)
		blogRepo.On("SetStatus", mock.Anything, domain.ID("1"), domain.BlogStatusPublished).Return(nil)

		posts, err := uc.ToggleStatus(context.Background(), blogFixtures(), "1")
		assert.NoError(t, err)
		assert.Equal(t, domain.BlogStatusDraft, posts[0].Status)

		posts, err = uc.ToggleStatus(context.Background(), posts, "1")
		assert.NoError(t, err)
		assert.Equal(t, domain.BlogStatusPublished, posts[0].Status)
	})

	t.Run("Remote failure restores the prior status", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		uc := NewBlogUsecase(blogRepo, newValidate())

		blogRepo.On("SetStatus", mock.Anything, domain.ID("2"), domain.BlogStatusPublished).
			Return(apperror.Network(nil))

		posts, err := uc.ToggleStatus(context.Background(), blogFixtures(), "2")
		assert.Error(t, err)
		assert.Equal(t, domain.BlogStatusDraft, posts[1].Status)
	})
}

func TestReaderFeed(t *testing.T) {
	blogRepo := new(MockBlogRepo)
	uc := NewBlogUsecase(blogRepo, newValidate())

	posts := []domain.BlogPost{
		{ID: "1", Category: "Career", Status: domain.BlogStatusPublished},
		{ID: "2", Category: "Career", Status: domain.BlogStatusDraft},
		{ID: "3", Category: "Industry", Status: domain.BlogStatusPublished},
	}
	blogRepo.On("FetchAll", mock.Anything, false).Return(posts, nil)

	t.Run("Only published posts appear", func(t *testing.T) {
		feed, err := uc.ReaderFeed(context.Background(), "")
		assert.NoError(t, err)
		assert.Len(t, feed, 2)
	})

	t.Run("Category narrows the feed", func(t *testing.T) {
		feed, err := uc.ReaderFeed(context.Background(), "career")
		assert.NoError(t, err)
		assert.Len(t, feed, 1)
		assert.Equal(t, domain.ID("1"), feed[0].ID)
	})
}

func TestSavePost(t *testing.T) {
	t.Run("Missing id means create", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		uc := NewBlogUsecase(blogRepo, newValidate())

		blogRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.BlogPost")).Return(nil)

		post := &domain.BlogPost{Title: "T", Summary: "S", Content: "<p>c</p>", Category: "Career", Author: "A"}
		assert.NoError(t, uc.SavePost(context.Background(), post))
		assert.Equal(t, domain.BlogStatusDraft, post.Status)
		blogRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Existing id means update", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		uc := NewBlogUsecase(blogRepo, newValidate())

		blogRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.BlogPost")).Return(nil)

		post := &domain.BlogPost{ID: "9", Title: "T", Summary: "S", Content: "c", Category: "Career", Author: "A", Status: domain.BlogStatusPublished}
		assert.NoError(t, uc.SavePost(context.Background(), post))
		assert.NotEmpty(t, post.PublishDate)
		blogRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Validation failure makes no call", func(t *testing.T) {
		blogRepo := new(MockBlogRepo)
		uc := NewBlogUsecase(blogRepo, newValidate())

		err := uc.SavePost(context.Background(), &domain.BlogPost{Title: "only a title"})
		assert.True(t, apperror.Is(err, apperror.KindValidation))
		blogRepo.AssertNotCalled(t, "Create")
	})
}
