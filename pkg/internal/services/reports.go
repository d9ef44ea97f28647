package services

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vinculo-social/vinculo/pkg/internal/database"
	"github.com/vinculo-social/vinculo/pkg/internal/models"
)

// ReportDailyUsage logs yesterday's activity totals. Wired into the
// scheduler from main.
func ReportDailyUsage() {
	day := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	interval := StatsInterval{Start: day, End: day.AddDate(0, 0, 1)}

	posts, err := CountPost(filterCreatedWithin(
		FilterPostActive(database.C.Model(&models.Post{})), "created_at", interval,
	))
	if err != nil {
		log.Warn().Err(err).Msg("An error occurred when counting posts for the daily report...")
		return
	}

	comments, err := CountCommentsByDay(interval)
	if err != nil {
		log.Warn().Err(err).Msg("An error occurred when counting comments for the daily report...")
		return
	}

	signups, err := CountSignupsByDay(interval)
	if err != nil {
		log.Warn().Err(err).Msg("An error occurred when counting signups for the daily report...")
		return
	}

	log.Info().
		Str("day", day.Format(statsDateLayout)).
		Int64("posts", posts).
		Int64("comments", comments.Total).
		Int64("signups", signups.Total).
		Msg("Daily usage report.")
}
