package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	BaseModel

	Title    string     `json:"title"`
	Message  string     `json:"message"`
	ImageURL *string    `json:"image_url"`
	AuthorID uuid.UUID  `json:"author_id" gorm:"type:uuid;index"`
	Author   Account    `json:"author"`
	Likes    []PostLike `json:"likes" gorm:"foreignKey:PostID"`

	// Active is the soft-delete marker. Inactive posts disappear from every
	// end-user read path but stay on disk for referential integrity.
	Active bool `json:"active" gorm:"default:true;index"`

	// LikeCount is derived from the like set at query time, never stored.
	LikeCount int64 `json:"like_count" gorm:"->;-:migration"`
}

// PostLike is one membership entry of a post's like set. The composite
// primary key is what enforces the at-most-once invariant; all mutations
// go through conditional single-statement inserts and deletes.
type PostLike struct {
	PostID    uuid.UUID `json:"post_id" gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `json:"account_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
