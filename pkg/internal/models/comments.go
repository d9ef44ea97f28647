package models

import "github.com/google/uuid"

// Comment lives under a post. Unlike posts there is no soft-delete here,
// removal is physical, and a comment may outlive the visibility of its post.
type Comment struct {
	BaseModel

	PostID   uuid.UUID `json:"post_id" gorm:"type:uuid;index"`
	AuthorID uuid.UUID `json:"author_id" gorm:"type:uuid;index"`
	Message  string    `json:"message"`
	Edited   bool      `json:"edited" gorm:"default:false"`

	// Author is resolved through the identity lookup, not preloaded.
	Author MinimalProfile `json:"author" gorm:"-"`
}
