package utils

import (
	"log"
	"quizapp/config"
	"quizapp/database"
	"quizapp/models"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifySubmission fans a new response out to the quiz owner's email and the
// configured webhook, if any. Both are best-effort: failures are logged and
// the submission itself is already committed.
func NotifySubmission(quiz models.Quiz, response models.Response) {
	var owner models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quiz.CreatedBy, false).First(&owner).Error; err != nil {
		log.Printf("Notify: owner %d not found for quiz %d", quiz.CreatedBy, quiz.ID)
	} else if config.AppConfig.EmailSender != "" {
		if err := SendResponseNotificationEmail(owner.Email, quiz.Title, response.StudentName, response.Score, response.TotalQuestions); err != nil {
			log.Printf("Notify: email to %s failed: %v", owner.Email, err)
		}
	}

	webhookURL := config.AppConfig.ResponseWebhookURL
	if webhookURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":           "response.submitted",
			"quiz_id":         quiz.PublicID,
			"quiz_title":      quiz.Title,
			"student_name":    response.StudentName,
			"score":           response.Score,
			"total_questions": response.TotalQuestions,
			"submitted_at":    response.SubmittedAt,
		}).
		Post(webhookURL)
	if err != nil {
		log.Printf("Notify: webhook call failed: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("Notify: webhook returned %d", resp.StatusCode())
	}
}
