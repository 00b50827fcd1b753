package utils

import (
	"log"
	"quizapp/config"
	"quizapp/database"
	"quizapp/models"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializePurgeScheduler sets up the daily cleanup of soft-deleted quizzes
func InitializePurgeScheduler() *cron.Cron {
	log.Println("[PURGE-SCHEDULER] Initializing purge scheduler...")

	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		log.Println("[PURGE-SCHEDULER] Running daily purge...")
		PurgeDeletedQuizzes()
	})

	c.Start()
	log.Println("[PURGE-SCHEDULER] Purge scheduler started - runs daily at 3 AM")

	return c
}

// PurgeDeletedQuizzes hard-deletes quizzes that were soft-deleted longer than
// the retention window ago, cascading to their questions and responses.
func PurgeDeletedQuizzes() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.PurgeAfterDays)

	var quizzes []models.Quiz
	if err := db.Where("is_deleted = ? AND updated_at < ?", true, cutoff).Find(&quizzes).Error; err != nil {
		log.Printf("[PURGE-SCHEDULER] Failed to list deleted quizzes: %v", err)
		return
	}

	for _, quiz := range quizzes {
		if err := db.Unscoped().Where("quiz_id = ?", quiz.ID).Delete(&models.Response{}).Error; err != nil {
			log.Printf("[PURGE-SCHEDULER] Failed to purge responses of quiz %d: %v", quiz.ID, err)
			continue
		}
		if err := db.Unscoped().Where("quiz_id = ?", quiz.ID).Delete(&models.Question{}).Error; err != nil {
			log.Printf("[PURGE-SCHEDULER] Failed to purge questions of quiz %d: %v", quiz.ID, err)
			continue
		}
		if err := db.Unscoped().Delete(&quiz).Error; err != nil {
			log.Printf("[PURGE-SCHEDULER] Failed to purge quiz %d: %v", quiz.ID, err)
			continue
		}
		log.Printf("[PURGE-SCHEDULER] Purged quiz %d (%s)", quiz.ID, quiz.Title)
	}

	if len(quizzes) > 0 {
		log.Printf("[PURGE-SCHEDULER] Purge complete, %d quizzes processed", len(quizzes))
	}
}
