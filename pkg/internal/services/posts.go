package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vinculo-social/vinculo/pkg/internal/database"
	"github.com/vinculo-social/vinculo/pkg/internal/fault"
	"github.com/vinculo-social/vinculo/pkg/internal/models"
)

func FilterPostActive(tx *gorm.DB) *gorm.DB {
	return tx.Where("active = ?", true)
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uuid.UUID) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

func PreloadPostGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Likes", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("post_likes.created_at ASC")
		})
}

func NewPost(author models.Account, item models.Post) (models.Post, error) {
	if len(item.Title) == 0 {
		return item, fault.Validation("El título es requerido")
	}
	if len(item.Message) == 0 {
		return item, fault.Validation("El mensaje es requerido")
	}

	item.AuthorID = author.ID
	item.Active = true

	if err := database.C.Omit(clause.Associations).Create(&item).Error; err != nil {
		return item, err
	}
	item.Author = author

	log.Debug().Str("id", item.ID.String()).Str("author", author.Username).Msg("Created a new post.")
	return item, nil
}

// GetPost returns an active post. An inactive post is indistinguishable
// from an absent one here.
func GetPost(id uuid.UUID) (models.Post, error) {
	var item models.Post
	if err := PreloadPostGeneral(FilterPostActive(database.C)).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fault.NotFound("Publicación no encontrada")
		}
		return item, err
	}

	item.LikeCount = int64(len(item.Likes))
	return item, nil
}

// DeletePost flips the active flag off. A second attempt reports not found
// rather than succeeding as a no-op.
func DeletePost(id uuid.UUID, requester uuid.UUID, requesterIsAdmin bool) error {
	var item models.Post
	if err := FilterPostActive(database.C).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.NotFound("Publicación no encontrada")
		}
		return err
	}

	if !Allowed(ActionPostDelete, requester, requesterIsAdmin, item.AuthorID) {
		return fault.Forbidden("No tienes permisos para eliminar esta publicación")
	}

	item.Active = false
	if err := database.C.Save(&item).Error; err != nil {
		return err
	}

	log.Info().Str("id", item.ID.String()).Str("requester", requester.String()).Msg("Post was taken down.")
	return nil
}

func ensurePostActive(id uuid.UUID) error {
	var count int64
	if err := FilterPostActive(database.C.Model(&models.Post{})).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fault.NotFound("Publicación no encontrada")
	}
	return nil
}

func touchPost(id uuid.UUID) {
	database.C.Model(&models.Post{}).Where("id = ?", id).Update("updated_at", time.Now())
}

// LikePost inserts the caller into the post's like set. The insert is a
// single conditional statement, so two concurrent likes from the same user
// cannot both land; the loser reports a conflict.
func LikePost(postID uuid.UUID, accountID uuid.UUID) error {
	if err := ensurePostActive(postID); err != nil {
		return err
	}

	res := database.C.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.PostLike{PostID: postID, AccountID: accountID})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fault.Conflict("Ya le diste me gusta a esta publicación")
	}

	touchPost(postID)
	return nil
}

// UnlikePost removes the caller from the like set; removing an entry that
// was never there is a conflict, not a no-op.
func UnlikePost(postID uuid.UUID, accountID uuid.UUID) error {
	if err := ensurePostActive(postID); err != nil {
		return err
	}

	res := database.C.
		Where("post_id = ? AND account_id = ?", postID, accountID).
		Delete(&models.PostLike{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fault.Conflict("No habías dado me gusta a esta publicación")
	}

	touchPost(postID)
	return nil
}

func ListPostByAuthor(authorID uuid.UUID, take int) ([]models.Post, error) {
	var items []models.Post
	if err := PreloadPostGeneral(
		FilterPostWithAuthor(FilterPostActive(database.C), authorID),
	).
		Order("created_at DESC").
		Limit(take).
		Find(&items).Error; err != nil {
		return items, err
	}

	for idx := range items {
		items[idx].LikeCount = int64(len(items[idx].Likes))
	}

	return items, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}
