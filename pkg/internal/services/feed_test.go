package services

import (
	"fmt"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinculo-social/vinculo/pkg/internal/fault"
	"github.com/vinculo-social/vinculo/pkg/internal/models"
)

func TestListFeedValidation(t *testing.T) {
	useTestDatabase(t)

	_, err := ListFeed(FeedSortDate, nil, 0, 0)
	assert.ErrorIs(t, err, fault.ErrValidation)

	_, err = ListFeed(FeedSortDate, nil, 10, -1)
	assert.ErrorIs(t, err, fault.ErrValidation)
}

func TestListFeedChronologicalPaging(t *testing.T) {
	useTestDatabase(t)
	author := seedAccount(t, "ada")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seedPost(t, author, "T1", base)
	second := seedPost(t, author, "T2", base.Add(time.Hour))
	third := seedPost(t, author, "T3", base.Add(2*time.Hour))
	seedPost(t, author, "T4", base.Add(3*time.Hour))

	// The second page of a newest-first feed.
	page, err := ListFeed(FeedSortDate, nil, 2, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 4, page.Total)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, third.ID, page.Posts[0].ID)
	assert.Equal(t, second.ID, page.Posts[1].ID)
}

func likeTimes(t *testing.T, post models.Post, prefix string, count int) {
	t.Helper()
	for n := 0; n < count; n++ {
		fan := seedAccount(t, fmt.Sprintf("%s-fan-%d", prefix, n))
		require.NoError(t, LikePost(post.ID, fan.ID))
	}
}

func TestListFeedPopularityRanking(t *testing.T) {
	useTestDatabase(t)
	author := seedAccount(t, "ada")

	t2 := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	t1 := t2.Add(time.Hour)
	t3 := t1.Add(time.Hour)

	postA := seedPost(t, author, "A", t1)
	postB := seedPost(t, author, "B", t2)
	postC := seedPost(t, author, "C", t3)

	likeTimes(t, postA, "a", 3)
	likeTimes(t, postB, "b", 5)
	likeTimes(t, postC, "c", 3)

	// Most liked first; among equal counts, newest first.
	page, err := ListFeed(FeedSortPopularity, nil, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Total)
	require.Len(t, page.Posts, 3)
	assert.Equal(t, postB.ID, page.Posts[0].ID)
	assert.Equal(t, postC.ID, page.Posts[1].ID)
	assert.Equal(t, postA.ID, page.Posts[2].ID)
	assert.EqualValues(t, 5, page.Posts[0].LikeCount)
}

func TestListFeedFiltersAuthorAndActive(t *testing.T) {
	useTestDatabase(t)
	author := seedAccount(t, "ada")
	other := seedAccount(t, "eva")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mine := seedPost(t, author, "Mio", base)
	gone := seedPost(t, author, "Borrado", base.Add(time.Hour))
	seedPost(t, other, "Ajeno", base.Add(2*time.Hour))

	require.NoError(t, DeletePost(gone.ID, author.ID, false))

	page, err := ListFeed(FeedSortDate, &author.ID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, mine.ID, page.Posts[0].ID)

	// Without the author filter the soft-deleted post stays hidden too.
	page, err = ListFeed(FeedSortDate, nil, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
}

func TestListFeedEmbedsAuthorWithoutCredentials(t *testing.T) {
	useTestDatabase(t)
	author := seedAccount(t, "ada")
	seedPost(t, author, "Hola", time.Now().UTC())

	page, err := ListFeed(FeedSortDate, nil, 10, 0)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "ada", page.Posts[0].Author.Username)

	raw, err := jsoniter.Marshal(page.Posts[0])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), author.Password)
	assert.NotContains(t, string(raw), "password")
}
