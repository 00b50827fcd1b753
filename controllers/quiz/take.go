package quizController

import (
	"encoding/json"
	"errors"
	"log"
	"quizapp/database"
	"quizapp/middleware"
	"quizapp/models"
	"quizapp/taking"
	"quizapp/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetPublicQuiz returns an active quiz and its questions for a taker, looked
// up by the opaque id from the shareable link. Correct answers are never
// included. Inactive, deleted, unknown or question-less quizzes all present
// the same not-found response.
func GetPublicQuiz(c *fiber.Ctx) error {
	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("public_id = ? AND is_active = ? AND is_deleted = ?", c.Params("publicId"), true, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found or no longer available!", nil)
	}

	var questions []models.Question
	db.Where("quiz_id = ?", quiz.ID).Order("order_index asc").Find(&questions)

	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found or no longer available!", nil)
	}

	type publicQuestion struct {
		QuestionText string          `json:"question_text"`
		Options      json.RawMessage `json:"options"`
		OrderIndex   int             `json:"order_index"`
	}
	publicQuestions := make([]publicQuestion, len(questions))
	for i, q := range questions {
		publicQuestions[i] = publicQuestion{
			QuestionText: q.QuestionText,
			Options:      json.RawMessage(q.Options),
			OrderIndex:   q.OrderIndex,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully.", fiber.Map{
		"title":       quiz.Title,
		"description": quiz.Description,
		"questions":   publicQuestions,
	})
}

// SubmitResponse accepts a taker's completed attempt. The answers are walked
// through the taking session so the same gating applies as in the step-by-step
// form: every question answered, student identity filled in. The score is
// computed here, never trusted from the client.
func SubmitResponse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubmission").(*struct {
		StudentName           string   `json:"student_name"`
		StudentEmail          string   `json:"student_email"`
		StudentRegisterNumber string   `json:"student_register_number"`
		Answers               []string `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("public_id = ? AND is_active = ? AND is_deleted = ?", c.Params("publicId"), true, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found or no longer available!", nil)
	}

	var questions []models.Question
	db.Where("quiz_id = ?", quiz.ID).Order("order_index asc").Find(&questions)

	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found or no longer available!", nil)
	}

	if len(reqData.Answers) != len(questions) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please answer all questions before submitting!", nil)
	}

	sessionQuestions := make([]taking.Question, len(questions))
	for i, q := range questions {
		var opts []string
		if err := json.Unmarshal(q.Options, &opts); err != nil {
			log.Printf("Error decoding options for question %d: %v", q.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit response!", nil)
		}
		sessionQuestions[i] = taking.Question{
			Text:          q.QuestionText,
			Options:       opts,
			CorrectAnswer: q.CorrectAnswer,
		}
	}

	session, err := taking.NewSession(sessionQuestions)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found or no longer available!", nil)
	}
	session.StudentName = reqData.StudentName
	session.StudentEmail = reqData.StudentEmail
	session.StudentRegisterNumber = reqData.StudentRegisterNumber

	for i, answer := range reqData.Answers {
		if err := session.SelectAnswer(answer); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please answer all questions before submitting!", nil)
		}
		if i < len(reqData.Answers)-1 {
			if err := session.Next(); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please answer all questions before submitting!", nil)
			}
		}
	}

	score, err := session.Submit()
	if err != nil {
		if errors.Is(err, taking.ErrMissingStudent) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Name and email are required!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please answer all questions before submitting!", nil)
	}

	answersJSON, err := json.Marshal(reqData.Answers)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit response!", nil)
	}

	response := models.Response{
		QuizID:                quiz.ID,
		StudentName:           reqData.StudentName,
		StudentEmail:          reqData.StudentEmail,
		StudentRegisterNumber: reqData.StudentRegisterNumber,
		Answers:               answersJSON,
		Score:                 score,
		TotalQuestions:        len(questions),
		SubmittedAt:           time.Now(),
	}

	if err := db.Create(&response).Error; err != nil {
		log.Printf("Error saving response for quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit response!", nil)
	}

	// Notify the owner off the request path; failures are logged only.
	go utils.NotifySubmission(quiz, response)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Response submitted successfully.", fiber.Map{
		"score":           score,
		"total_questions": len(questions),
	})
}
