package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vinculo-social/vinculo/pkg/internal/database"
	"github.com/vinculo-social/vinculo/pkg/internal/fault"
	"github.com/vinculo-social/vinculo/pkg/internal/models"
)

const statsDateLayout = "2006-01-02"

// StatsInterval is a closed interval over creation timestamps. Both bounds
// sit at midnight UTC of their calendar day, and the end bound is
// inclusive. An inverted interval is not rejected; it simply matches
// nothing.
type StatsInterval struct {
	Start time.Time
	End   time.Time
}

func ParseStatsInterval(start string, end string) (StatsInterval, error) {
	var interval StatsInterval
	if len(start) == 0 || len(end) == 0 {
		return interval, fault.Validation("La fecha de inicio y la fecha de fin son requeridas")
	}

	var err error
	if interval.Start, err = time.ParseInLocation(statsDateLayout, start, time.UTC); err != nil {
		return interval, fault.Validation("La fecha de inicio es inválida")
	}
	if interval.End, err = time.ParseInLocation(statsDateLayout, end, time.UTC); err != nil {
		return interval, fault.Validation("La fecha de fin es inválida")
	}

	return interval, nil
}

// The column is qualified by the caller because half of these queries join
// tables that all carry a created_at of their own.
func filterCreatedWithin(tx *gorm.DB, column string, interval StatsInterval) *gorm.DB {
	return tx.Where(column+" >= ? AND "+column+" <= ?", interval.Start, interval.End)
}

type AuthorPostCount struct {
	AuthorID  uuid.UUID `json:"author_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Total     int64     `json:"total"`
}

// CountPostsByAuthor groups the active posts created in the window by
// author, busiest author first.
func CountPostsByAuthor(interval StatsInterval) ([]AuthorPostCount, error) {
	var results []AuthorPostCount
	if err := filterCreatedWithin(database.C.Model(&models.Post{}), "posts.created_at", interval).
		Select("posts.author_id, accounts.username, accounts.first_name, accounts.last_name, COUNT(posts.id) AS total").
		Joins("JOIN accounts ON accounts.id = posts.author_id").
		Where("posts.active = ?", true).
		Group("posts.author_id, accounts.username, accounts.first_name, accounts.last_name").
		Order("total DESC").
		Scan(&results).Error; err != nil {
		return results, err
	}

	return results, nil
}

type DayCount struct {
	Day   string `json:"day"`
	Total int64  `json:"total"`
}

type DailyBreakdown struct {
	Total int64      `json:"total"`
	Days  []DayCount `json:"days"`
}

func countByDay(model any, interval StatsInterval) (DailyBreakdown, error) {
	var breakdown DailyBreakdown

	if err := filterCreatedWithin(database.C.Model(model), "created_at", interval).
		Count(&breakdown.Total).Error; err != nil {
		return breakdown, err
	}

	if err := filterCreatedWithin(database.C.Model(model), "created_at", interval).
		Select(database.DayBucket("created_at") + " AS day, COUNT(id) AS total").
		Group("day").
		Order("day ASC").
		Scan(&breakdown.Days).Error; err != nil {
		return breakdown, err
	}

	return breakdown, nil
}

// CountCommentsByDay buckets comment traffic by UTC calendar day. Comments
// under soft-deleted posts still count as traffic here.
func CountCommentsByDay(interval StatsInterval) (DailyBreakdown, error) {
	return countByDay(&models.Comment{}, interval)
}

// CountSignupsByDay buckets account creation by UTC calendar day.
func CountSignupsByDay(interval StatsInterval) (DailyBreakdown, error) {
	return countByDay(&models.Account{}, interval)
}

const commentsByPostLimit = 20

type PostCommentCount struct {
	PostID uuid.UUID `json:"post_id"`
	Title  string    `json:"title"`
	Total  int64     `json:"total"`
}

// CountCommentsByPost lists the most commented posts of the window.
func CountCommentsByPost(interval StatsInterval) ([]PostCommentCount, error) {
	var results []PostCommentCount
	if err := filterCreatedWithin(database.C.Model(&models.Comment{}), "comments.created_at", interval).
		Select("comments.post_id, posts.title, COUNT(comments.id) AS total").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Group("comments.post_id, posts.title").
		Order("total DESC").
		Limit(commentsByPostLimit).
		Scan(&results).Error; err != nil {
		return results, err
	}

	return results, nil
}
