package quizValidator

import (
	"quizapp/draft"
	"quizapp/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// QuizDraft parses and validates the authoring payload for both create and
// update. The structural rules (title, question text, options, correct
// answer) live in the draft package; the first violated rule is reported.
func QuizDraft() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Questions   []struct {
				QuestionText  string   `json:"question_text"`
				Options       []string `json:"options"`
				CorrectAnswer string   `json:"correct_answer"`
			} `json:"questions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Questions) == 0 {
			errors["questions"] = "A quiz must have at least one question!"
		}

		for i, q := range reqData.Questions {
			if len(q.Options) < draft.MinOptions || len(q.Options) > draft.MaxOptions {
				errors["questions["+strconv.Itoa(i)+"]"] = "Each question must have between 2 and 5 options!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		d := &draft.Draft{
			Title:       strings.TrimSpace(reqData.Title),
			Description: strings.TrimSpace(reqData.Description),
		}
		for i, q := range reqData.Questions {
			d.Questions = append(d.Questions, draft.Question{
				QuestionText:  strings.TrimSpace(q.QuestionText),
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				OrderIndex:    i,
			})
		}

		if err := d.Validate(); err != nil {
			verr := err.(*draft.ValidationError)
			errors[verr.Field] = verr.Message
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDraft", d)
		return c.Next()
	}
}

// SubmitResponse validates a taker's submission payload. Completeness of the
// answers against the quiz's questions is checked by the controller, which
// knows the question count.
func SubmitResponse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			StudentName           string   `json:"student_name"`
			StudentEmail          string   `json:"student_email"`
			StudentRegisterNumber string   `json:"student_register_number"`
			Answers               []string `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.StudentName) == "" {
			errors["student_name"] = "Name is required!"
		}

		if strings.TrimSpace(reqData.StudentEmail) == "" {
			errors["student_email"] = "Email is required!"
		} else if err := validate.Var(reqData.StudentEmail, "email"); err != nil {
			errors["student_email"] = "Email must be a valid email address!"
		}

		if len(reqData.Answers) == 0 {
			errors["answers"] = "Answers are required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
