package quizRoutes

import (
	quizController "quizapp/controllers/quiz"
	"quizapp/middleware"
	quizValidator "quizapp/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up owner-facing quiz routes and the public taking routes
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz")

	// Authoring
	quizGroup.Post("/create", middleware.JWTMiddleware, quizValidator.QuizDraft(), quizController.CreateQuiz)
	quizGroup.Get("/list", middleware.JWTMiddleware, quizController.GetMyQuizzes)
	quizGroup.Get("/:id", middleware.JWTMiddleware, quizController.GetQuiz)
	quizGroup.Post("/:id/update", middleware.JWTMiddleware, quizValidator.QuizDraft(), quizController.UpdateQuiz)
	quizGroup.Patch("/:id/status", middleware.JWTMiddleware, quizController.ToggleQuizStatus)
	quizGroup.Delete("/:id", middleware.JWTMiddleware, quizController.DeleteQuiz)

	// Results
	quizGroup.Get("/:id/results", middleware.JWTMiddleware, quizController.GetQuizResults)
	quizGroup.Get("/:id/results/export", middleware.JWTMiddleware, quizController.ExportQuizResults)

	// Taking (no authentication; the shareable link is the only access control)
	takeGroup := app.Group("/take")
	takeGroup.Get("/:publicId", quizController.GetPublicQuiz)
	takeGroup.Post("/:publicId/submit", quizValidator.SubmitResponse(), quizController.SubmitResponse)
}
