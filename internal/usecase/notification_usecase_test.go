package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-jobportal-client/internal/domain"
	"go-jobportal-client/pkg/apperror"
)

func notificationFixtures(n int) []domain.Notification {
	items := make([]domain.Notification, n)
	for i := range items {
		items[i] = domain.Notification{
			ID:    domain.ID(fmt.Sprintf("%d", i+1)),
			Title: fmt.Sprintf("Notice %d", i+1),
		}
	}
	return items
}

func TestNotificationFeed(t *testing.T) {
	repo := new(MockNotificationRepo)
	uc := NewNotificationUsecase(repo, signedIn(newMemMirror(), "jane@example.com", "user"), 5)

	repo.On("FetchAll", mock.Anything, "jane@example.com").Return(notificationFixtures(12), nil)

	t.Run("First page holds the first five", func(t *testing.T) {
		page, err := uc.UserFeed(context.Background(), "jane@example.com", 1)
		assert.NoError(t, err)
		assert.Len(t, page.Items, 5)
		assert.Equal(t, domain.ID("1"), page.Items[0].ID)
		assert.Equal(t, domain.ID("5"), page.Items[4].ID)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 12, page.Total)
	})

	t.Run("Last page holds the remainder", func(t *testing.T) {
		page, err := uc.UserFeed(context.Background(), "jane@example.com", 3)
		assert.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, domain.ID("11"), page.Items[0].ID)
		assert.Equal(t, domain.ID("12"), page.Items[1].ID)
	})

	t.Run("Page past the end is empty", func(t *testing.T) {
		page, err := uc.UserFeed(context.Background(), "jane@example.com", 4)
		assert.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 3, page.TotalPages)
	})
}

func TestBroadcast(t *testing.T) {
	t.Run("Admin can broadcast", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		uc := NewNotificationUsecase(repo, signedIn(newMemMirror(), "admin@example.com", "admin"), 5)

		repo.On("Broadcast", mock.Anything, "Maintenance", "Back at noon").Return(nil)

		assert.NoError(t, uc.Broadcast(context.Background(), "Maintenance", "Back at noon"))
		repo.AssertExpectations(t)
	})

	t.Run("Regular user is refused", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		uc := NewNotificationUsecase(repo, signedIn(newMemMirror(), "jane@example.com", "user"), 5)

		err := uc.Broadcast(context.Background(), "Maintenance", "Back at noon")
		assert.True(t, apperror.Is(err, apperror.KindAuthRequired))
		repo.AssertNotCalled(t, "Broadcast")
	})

	t.Run("Empty title or message is rejected before sending", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		uc := NewNotificationUsecase(repo, signedIn(newMemMirror(), "admin@example.com", "admin"), 5)

		err := uc.Broadcast(context.Background(), "", "body only")
		assert.True(t, apperror.Is(err, apperror.KindValidation))
		repo.AssertNotCalled(t, "Broadcast")
	})
}
