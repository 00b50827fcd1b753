package quizController

import (
	"encoding/json"
	"log"
	"quizapp/config"
	"quizapp/database"
	"quizapp/draft"
	"quizapp/middleware"
	"quizapp/models"
	"quizapp/results"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateQuiz persists a validated draft: the quiz row first, then its
// question rows tagged with the new quiz id.
func CreateQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	d, ok := c.Locals("validatedDraft").(*draft.Draft)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	quiz := models.Quiz{
		PublicID:    uuid.NewString(),
		Title:       d.Title,
		Description: d.Description,
		CreatedBy:   userID,
		IsActive:    true,
	}

	if err := db.Create(&quiz).Error; err != nil {
		log.Printf("Error creating quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	questions, err := questionRows(quiz.ID, d)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}
	if err := db.Create(&questions).Error; err != nil {
		log.Printf("Error creating questions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully.", fiber.Map{
		"quiz":       quiz,
		"share_link": config.AppConfig.BaseURL + "/take/" + quiz.PublicID,
	})
}

// UpdateQuiz updates the quiz row, then replaces the full question set:
// every existing question row is deleted and the current set re-inserted.
// Question ids are ephemeral across edits; answers in stored responses stay
// meaningful because they are positional, never keyed by question id.
func UpdateQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	d, ok := c.Locals("validatedDraft").(*draft.Draft)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("id = ? AND created_by = ? AND is_deleted = ?", c.Params("id"), userID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	questions, err := questionRows(quiz.ID, d)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		quiz.Title = d.Title
		quiz.Description = d.Description
		if err := tx.Save(&quiz).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("quiz_id = ?", quiz.ID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		log.Printf("Error updating quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully.", quiz)
}

// GetMyQuizzes lists the caller's quizzes, newest first, with response counts.
func GetMyQuizzes(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var quizzes []models.Quiz
	if err := db.Where("created_by = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&quizzes).Error; err != nil {
		log.Printf("Error listing quizzes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	type quizSummary struct {
		models.Quiz
		QuestionCount int64  `json:"question_count"`
		ResponseCount int64  `json:"response_count"`
		ShareLink     string `json:"share_link"`
	}

	summaries := make([]quizSummary, len(quizzes))
	for i, q := range quizzes {
		var questionCount, responseCount int64
		db.Model(&models.Question{}).Where("quiz_id = ?", q.ID).Count(&questionCount)
		db.Model(&models.Response{}).Where("quiz_id = ?", q.ID).Count(&responseCount)
		summaries[i] = quizSummary{
			Quiz:          q,
			QuestionCount: questionCount,
			ResponseCount: responseCount,
			ShareLink:     config.AppConfig.BaseURL + "/take/" + q.PublicID,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully.", summaries)
}

// GetQuiz returns one of the caller's quizzes with its ordered questions,
// correct answers included (owner view, used to re-open the editor).
func GetQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("id = ? AND created_by = ? AND is_deleted = ?", c.Params("id"), userID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []models.Question
	db.Where("quiz_id = ?", quiz.ID).Order("order_index asc").Find(&questions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully.", fiber.Map{
		"quiz":      quiz,
		"questions": questions,
	})
}

// ToggleQuizStatus flips or sets the is_active flag on the caller's quiz.
func ToggleQuizStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		IsActive *bool `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("id = ? AND created_by = ? AND is_deleted = ?", c.Params("id"), userID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if reqData.IsActive != nil {
		quiz.IsActive = *reqData.IsActive
	} else {
		quiz.IsActive = !quiz.IsActive
	}

	if err := db.Model(&quiz).Update("is_active", quiz.IsActive).Error; err != nil {
		log.Printf("Error toggling quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz status updated.", quiz)
}

// DeleteQuiz soft deletes the caller's quiz. Its questions and responses go
// with it when the purge job hard-deletes the row later.
func DeleteQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("id = ? AND created_by = ? AND is_deleted = ?", c.Params("id"), userID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if err := db.Model(&quiz).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully.", nil)
}

// GetQuizResults returns the quiz's responses, newest first, with summary
// statistics. The average percentage divides by the current question count;
// each row's percentage divides by the total stored on that response.
func GetQuizResults(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("id = ? AND created_by = ? AND is_deleted = ?", c.Params("id"), userID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questionCount int64
	db.Model(&models.Question{}).Where("quiz_id = ?", quiz.ID).Count(&questionCount)

	var responses []models.Response
	if err := db.Where("quiz_id = ?", quiz.ID).Order("submitted_at desc").Find(&responses).Error; err != nil {
		log.Printf("Error fetching responses for quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch results!", nil)
	}

	type responseRow struct {
		models.Response
		Percentage int `json:"percentage"`
	}
	rows := make([]responseRow, len(responses))
	for i, r := range responses {
		rows[i] = responseRow{Response: r, Percentage: results.ResponsePercentage(r)}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results fetched successfully.", fiber.Map{
		"quiz":      quiz,
		"stats":     results.ComputeStats(responses, int(questionCount)),
		"responses": rows,
	})
}

// ExportQuizResults streams the quiz's responses as a CSV download.
func ExportQuizResults(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("id = ? AND created_by = ? AND is_deleted = ?", c.Params("id"), userID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []models.Question
	db.Where("quiz_id = ?", quiz.ID).Order("order_index asc").Find(&questions)

	var responses []models.Response
	if err := db.Where("quiz_id = ?", quiz.ID).Order("submitted_at desc").Find(&responses).Error; err != nil {
		log.Printf("Error fetching responses for quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to export results!", nil)
	}

	csv := results.ExportCSV(responses, questions)

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+results.CSVFilename(quiz.Title)+`"`)
	return c.SendString(csv)
}

// questionRows converts a validated draft into question rows for a quiz.
func questionRows(quizID uint, d *draft.Draft) ([]models.Question, error) {
	rows := make([]models.Question, len(d.Questions))
	for i, q := range d.Questions {
		opts, err := json.Marshal(q.Options)
		if err != nil {
			return nil, err
		}
		rows[i] = models.Question{
			QuizID:        quizID,
			QuestionText:  q.QuestionText,
			Options:       opts,
			CorrectAnswer: q.CorrectAnswer,
			OrderIndex:    i,
		}
	}
	return rows, nil
}
