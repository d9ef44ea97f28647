package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/vinculo-social/vinculo/pkg/internal/database"
	"github.com/vinculo-social/vinculo/pkg/internal/fault"
	"github.com/vinculo-social/vinculo/pkg/internal/models"
)

// NewComment attaches a comment to a post id. Only the shape of the id is
// checked here; the post does not have to be active, or even exist.
func NewComment(postID uuid.UUID, author models.Account, message string) (models.Comment, error) {
	var item models.Comment
	if len(message) == 0 {
		return item, fault.Validation("El mensaje es requerido")
	}

	item = models.Comment{
		PostID:   postID,
		AuthorID: author.ID,
		Message:  message,
	}

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	item.Author = author.MinimalProfile()
	return item, nil
}

func annotateCommentAuthors(items []models.Comment) {
	authorIdx := lo.Uniq(lo.Map(items, func(item models.Comment, _ int) uuid.UUID {
		return item.AuthorID
	}))

	profiles := map[uuid.UUID]models.MinimalProfile{}
	for _, id := range authorIdx {
		if profile, err := GetMinimalProfile(id); err == nil {
			profiles[id] = profile
		}
	}

	for idx := range items {
		items[idx].Author = profiles[items[idx].AuthorID]
	}
}

// ListCommentByPost pages through a post's comments, newest first. The
// returned count covers the whole post, not just the requested window.
func ListCommentByPost(postID uuid.UUID, take int, offset int) ([]models.Comment, int64, error) {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return nil, count, err
	}

	var items []models.Comment
	if err := database.C.
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(take).Offset(offset).
		Find(&items).Error; err != nil {
		return items, count, err
	}

	annotateCommentAuthors(items)
	return items, count, nil
}

func getComment(id uuid.UUID) (models.Comment, error) {
	var item models.Comment
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fault.NotFound("Comentario no encontrado")
		}
		return item, err
	}
	return item, nil
}

// EditComment replaces the message and marks the comment as edited. There
// is no administrator override on comments.
func EditComment(id uuid.UUID, requester uuid.UUID, requesterIsAdmin bool, message string) (models.Comment, error) {
	item, err := getComment(id)
	if err != nil {
		return item, err
	}

	if !Allowed(ActionCommentUpdate, requester, requesterIsAdmin, item.AuthorID) {
		return item, fault.Forbidden("No tienes permisos para modificar este comentario")
	}

	if len(message) == 0 {
		return item, fault.Validation("El mensaje es requerido")
	}

	item.Message = message
	item.Edited = true

	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	if profile, err := GetMinimalProfile(item.AuthorID); err == nil {
		item.Author = profile
	}
	return item, nil
}

// DeleteComment removes the row for good.
func DeleteComment(id uuid.UUID, requester uuid.UUID, requesterIsAdmin bool) error {
	item, err := getComment(id)
	if err != nil {
		return err
	}

	if !Allowed(ActionCommentDelete, requester, requesterIsAdmin, item.AuthorID) {
		return fault.Forbidden("No tienes permisos para eliminar este comentario")
	}

	return database.C.Delete(&item).Error
}
