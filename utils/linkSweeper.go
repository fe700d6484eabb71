package utils

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	courseModels "lms/models/course"
)

func logSweeper(message string) {
	log.Printf("[LINK-SWEEPER] %s", message)
}

// SweepOrphanedLinks deletes content links whose chapter or resource row no
// longer exists. Deletes cascade in the request path, so this is a backstop for
// links that briefly outlive their endpoints under concurrent edits.
func SweepOrphanedLinks(db *gorm.DB) {
	res := db.Where(
		"chapter_id NOT IN (?)",
		db.Model(&courseModels.Chapter{}).Select("id"),
	).Delete(&courseModels.ChapterContentLink{})
	if res.Error != nil {
		logSweeper("Failed to sweep links with missing chapters: " + res.Error.Error())
	} else if res.RowsAffected > 0 {
		logSweeper("Removed links pointing at deleted chapters")
	}

	res = db.Where(
		"resource_id NOT IN (SELECT id FROM resources)",
	).Delete(&courseModels.ChapterContentLink{})
	if res.Error != nil {
		logSweeper("Failed to sweep links with missing resources: " + res.Error.Error())
	} else if res.RowsAffected > 0 {
		logSweeper("Removed links pointing at deleted resources")
	}
}

// InitializeLinkSweeper schedules the hourly orphan sweep
func InitializeLinkSweeper(db *gorm.DB) *cron.Cron {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		SweepOrphanedLinks(db)
	})

	c.Start()
	logSweeper("Orphaned link sweeper started - runs hourly")
	return c
}
