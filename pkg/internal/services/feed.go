package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vinculo-social/vinculo/pkg/internal/database"
	"github.com/vinculo-social/vinculo/pkg/internal/fault"
	"github.com/vinculo-social/vinculo/pkg/internal/models"
)

const (
	FeedSortDate       = "date"
	FeedSortPopularity = "likes"
)

type FeedPage struct {
	Posts  []models.Post `json:"posts"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

func feedBaseFilter(authorID *uuid.UUID) *gorm.DB {
	tx := FilterPostActive(database.C.Model(&models.Post{}))
	if authorID != nil {
		tx = FilterPostWithAuthor(tx, *authorID)
	}
	return tx
}

// ListFeed pages over active posts under one of two orderings. The
// popularity rank is projected from the like set at query time, so nothing
// denormalized has to be kept in sync on every like toggle.
func ListFeed(sort string, authorID *uuid.UUID, take int, offset int) (FeedPage, error) {
	page := FeedPage{Limit: take, Offset: offset}

	if take < 1 {
		return page, fault.Validation("El límite debe ser al menos 1")
	}
	if offset < 0 {
		return page, fault.Validation("El offset no puede ser negativo")
	}

	total, err := CountPost(feedBaseFilter(authorID))
	if err != nil {
		return page, err
	}
	page.Total = total

	tx := feedBaseFilter(authorID)
	switch sort {
	case FeedSortPopularity:
		tx = tx.
			Select("posts.*").
			Joins("LEFT JOIN post_likes ON post_likes.post_id = posts.id").
			Group("posts.id").
			Order("COUNT(post_likes.account_id) DESC, posts.created_at DESC")
	default:
		tx = tx.Order("posts.created_at DESC, posts.id")
	}

	var items []models.Post
	if err := PreloadPostGeneral(tx).
		Limit(take).Offset(offset).
		Find(&items).Error; err != nil {
		return page, err
	}

	for idx := range items {
		items[idx].LikeCount = int64(len(items[idx].Likes))
	}

	page.Posts = items
	return page, nil
}
