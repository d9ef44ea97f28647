package services

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinculo-social/vinculo/pkg/internal/fault"
	"github.com/vinculo-social/vinculo/pkg/internal/models"
)

func TestNewPostValidation(t *testing.T) {
	useTestDatabase(t)
	author := seedAccount(t, "ada")

	_, err := NewPost(author, models.Post{Title: "", Message: "hola"})
	assert.ErrorIs(t, err, fault.ErrValidation)

	_, err = NewPost(author, models.Post{Title: "Hola", Message: ""})
	assert.ErrorIs(t, err, fault.ErrValidation)

	item, err := NewPost(author, models.Post{Title: "Hola", Message: "mundo"})
	require.NoError(t, err)
	assert.True(t, item.Active)
	assert.Equal(t, author.ID, item.AuthorID)
	assert.NotEqual(t, uuid.Nil, item.ID)
}

func TestGetPostHidesInactive(t *testing.T) {
	useTestDatabase(t)
	author := seedAccount(t, "ada")
	item := seedPost(t, author, "Hola", time.Now().UTC())

	got, err := GetPost(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, author.Username, got.Author.Username)

	require.NoError(t, DeletePost(item.ID, author.ID, false))

	_, err = GetPost(item.ID)
	assert.ErrorIs(t, err, fault.ErrNotFound)

	_, err = GetPost(uuid.New())
	assert.ErrorIs(t, err, fault.ErrNotFound)
}

func TestDeletePostAuthorization(t *testing.T) {
	useTestDatabase(t)
	author := seedAccount(t, "ada")
	stranger := seedAccount(t, "eva")
	admin := seedAdmin(t, "grace")

	mine := seedPost(t, author, "Mio", time.Now().UTC())
	err := DeletePost(mine.ID, stranger.ID, false)
	assert.ErrorIs(t, err, fault.ErrForbidden)

	require.NoError(t, DeletePost(mine.ID, author.ID, false))

	// Deleting again reports not found, never a silent no-op.
	err = DeletePost(mine.ID, author.ID, false)
	assert.ErrorIs(t, err, fault.ErrNotFound)

	other := seedPost(t, author, "Otro", time.Now().UTC())
	require.NoError(t, DeletePost(other.ID, admin.ID, admin.IsAdmin()))
}

func TestLikePostConflictSemantics(t *testing.T) {
	useTestDatabase(t)
	author := seedAccount(t, "ada")
	fan := seedAccount(t, "eva")
	item := seedPost(t, author, "Hola", time.Now().UTC())

	require.NoError(t, LikePost(item.ID, fan.ID))

	err := LikePost(item.ID, fan.ID)
	assert.ErrorIs(t, err, fault.ErrConflict)

	require.NoError(t, UnlikePost(item.ID, fan.ID))

	err = UnlikePost(item.ID, fan.ID)
	assert.ErrorIs(t, err, fault.ErrConflict)

	// A user who never liked cannot unlike.
	err = UnlikePost(item.ID, author.ID)
	assert.ErrorIs(t, err, fault.ErrConflict)
}

func TestLikePostHiddenOrMissing(t *testing.T) {
	useTestDatabase(t)
	author := seedAccount(t, "ada")
	fan := seedAccount(t, "eva")

	err := LikePost(uuid.New(), fan.ID)
	assert.ErrorIs(t, err, fault.ErrNotFound)

	item := seedPost(t, author, "Hola", time.Now().UTC())
	require.NoError(t, DeletePost(item.ID, author.ID, false))

	err = LikePost(item.ID, fan.ID)
	assert.ErrorIs(t, err, fault.ErrNotFound)
	err = UnlikePost(item.ID, fan.ID)
	assert.ErrorIs(t, err, fault.ErrNotFound)
}

func TestLikeSetStaysDuplicateFree(t *testing.T) {
	useTestDatabase(t)
	author := seedAccount(t, "ada")
	item := seedPost(t, author, "Hola", time.Now().UTC())

	fans := []models.Account{
		seedAccount(t, "eva"),
		seedAccount(t, "tom"),
		seedAccount(t, "liz"),
	}

	// Every fan fires the same like a few times concurrently; exactly one
	// attempt per fan may win.
	var wg sync.WaitGroup
	succeeded := make([]int, len(fans))
	var mu sync.Mutex
	for idx, fan := range fans {
		for attempt := 0; attempt < 3; attempt++ {
			wg.Add(1)
			go func(idx int, accountID uuid.UUID) {
				defer wg.Done()
				if err := LikePost(item.ID, accountID); err == nil {
					mu.Lock()
					succeeded[idx]++
					mu.Unlock()
				}
			}(idx, fan.ID)
		}
	}
	wg.Wait()

	for idx := range fans {
		assert.EqualValues(t, 1, succeeded[idx])
	}

	got, err := GetPost(item.ID)
	require.NoError(t, err)
	assert.EqualValues(t, len(fans), got.LikeCount)
	assert.Len(t, got.Likes, len(fans))
}

func TestListPostByAuthor(t *testing.T) {
	useTestDatabase(t)
	author := seedAccount(t, "ada")
	other := seedAccount(t, "eva")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	first := seedPost(t, author, "Primero", base)
	second := seedPost(t, author, "Segundo", base.Add(time.Hour))
	third := seedPost(t, author, "Tercero", base.Add(2*time.Hour))
	seedPost(t, other, "Ajeno", base.Add(3*time.Hour))

	require.NoError(t, DeletePost(first.ID, author.ID, false))

	items, err := ListPostByAuthor(author.ID, 3)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, third.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)

	items, err = ListPostByAuthor(author.ID, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, third.ID, items[0].ID)
}
