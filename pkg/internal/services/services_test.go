package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	localCache "github.com/vinculo-social/vinculo/pkg/internal/cache"
	"github.com/vinculo-social/vinculo/pkg/internal/database"
	"github.com/vinculo-social/vinculo/pkg/internal/models"
)

// useTestDatabase swaps the global connection for a throwaway in-memory
// sqlite database. The pool is pinned to one connection, otherwise every
// connection would see its own empty :memory: database.
func useTestDatabase(t *testing.T) {
	t.Helper()

	require.NoError(t, localCache.NewStore())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigration(db))

	prev := database.C
	database.C = db
	t.Cleanup(func() {
		database.C = prev
		_ = sqlDB.Close()
	})
}

func seedAccount(t *testing.T, username string) models.Account {
	t.Helper()

	account, err := NewAccount(models.Account{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       fmt.Sprintf("%s@example.com", username),
		Username:    username,
		Birthday:    time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
		Description: "Le gusta programar.",
	}, "sup3r-secreta")
	require.NoError(t, err)

	return account
}

func seedAdmin(t *testing.T, username string) models.Account {
	t.Helper()

	account, err := NewAccount(models.Account{
		FirstName:   "Grace",
		LastName:    "Hopper",
		Email:       fmt.Sprintf("%s@example.com", username),
		Username:    username,
		Birthday:    time.Date(1985, 3, 2, 0, 0, 0, 0, time.UTC),
		Description: "Modera la comunidad.",
		Role:        models.RoleAdministrator,
	}, "sup3r-secreta")
	require.NoError(t, err)

	return account
}

func seedPost(t *testing.T, author models.Account, title string, createdAt time.Time) models.Post {
	t.Helper()

	item := models.Post{
		Title:   title,
		Message: "Hola mundo",
	}
	item.CreatedAt = createdAt

	item, err := NewPost(author, item)
	require.NoError(t, err)

	return item
}

func seedComment(t *testing.T, author models.Account, post models.Post, createdAt time.Time) models.Comment {
	t.Helper()

	item, err := NewComment(post.ID, author, "Muy buena publicación")
	require.NoError(t, err)

	if !createdAt.IsZero() {
		require.NoError(t, database.C.Model(&models.Comment{}).
			Where("id = ?", item.ID).
			Update("created_at", createdAt).Error)
		item.CreatedAt = createdAt
	}

	return item
}
