package handlers

import (
	"errors"
	"time"

	"github.com/bsmlab/bsm_quiz/database"
	"github.com/bsmlab/bsm_quiz/models"
	"github.com/bsmlab/bsm_quiz/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChoiceRequest struct {
	ChoiceText string `json:"choice_text" validate:"required"`
	IsCorrect  bool   `json:"is_correct"`
}

type QuestionRequest struct {
	QuestionText string          `json:"question_text" validate:"required"`
	Choices      []ChoiceRequest `json:"choices" validate:"required"`
}

type CreateQuizRequest struct {
	Title            string            `json:"title" validate:"required"`
	Description      string            `json:"description"`
	QuestionsPerPage *int              `json:"questions_per_page" validate:"omitempty,min=1"`
	Questions        []QuestionRequest `json:"questions" validate:"omitempty,dive"`
}

type AddQuestionsRequest struct {
	Questions []QuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

// validateQuestions enforces the structural rules for new questions: at
// least two choices, at least one of them correct.
func validateQuestions(questions []QuestionRequest) error {
	for _, question := range questions {
		if len(question.Choices) < 2 {
			return errors.New("each question must have at least 2 choices")
		}
		correctCount := 0
		for _, choice := range question.Choices {
			if choice.IsCorrect {
				correctCount++
			}
		}
		if correctCount < 1 {
			return errors.New("each question must have at least 1 correct choice")
		}
	}
	return nil
}

func buildQuestionModels(questions []QuestionRequest) []models.Question {
	out := make([]models.Question, 0, len(questions))
	for _, question := range questions {
		choices := make([]models.Choice, 0, len(question.Choices))
		for _, choice := range question.Choices {
			choices = append(choices, models.Choice{
				ChoiceText: choice.ChoiceText,
				IsCorrect:  choice.IsCorrect,
			})
		}
		out = append(out, models.Question{
			QuestionText: question.QuestionText,
			Choices:      choices,
		})
	}
	return out
}

func CreateQuiz(c *fiber.Ctx) error {
	var req CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validateQuestions(req.Questions); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	if err := database.DB.Model(&models.Quiz{}).Where("title = ?", req.Title).Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create quiz"})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": services.ErrDuplicateTitle.Error()})
	}

	quiz := models.Quiz{
		Title:            req.Title,
		Description:      req.Description,
		QuestionsPerPage: services.DefaultPageSize,
		Questions:        buildQuestionModels(req.Questions),
	}
	if req.QuestionsPerPage != nil {
		quiz.QuestionsPerPage = *req.QuestionsPerPage
	}

	if err := database.DB.Create(&quiz).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create quiz"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":          quiz.ID,
		"title":       quiz.Title,
		"description": quiz.Description,
	})
}

func AddQuestions(c *fiber.Ctx) error {
	quizID := c.Params("quizId")

	var req AddQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validateQuestions(req.Questions); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		questions := buildQuestionModels(req.Questions)
		for i := range questions {
			questions[i].QuizID = quiz.ID
		}
		if err := tx.Create(&questions).Error; err != nil {
			return err
		}
		return tx.Model(&quiz).Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add questions"})
	}

	return c.JSON(fiber.Map{
		"id":          quiz.ID,
		"title":       quiz.Title,
		"description": quiz.Description,
	})
}

type QuizListItem struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	NumQuestions int64     `json:"num_questions"`
}

func ListQuizzes(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", services.DefaultPageSize)
	if pageSize < 1 {
		pageSize = services.DefaultPageSize
	}
	sortBy := c.Query("sort_by", "created_at")
	order := c.Query("order", "desc")

	var items []QuizListItem
	err := database.DB.Model(&models.Quiz{}).
		Select("quizzes.id, quizzes.title, quizzes.description, quizzes.created_at, count(questions.id) as num_questions").
		Joins("LEFT JOIN questions ON questions.quiz_id = quizzes.id").
		Group("quizzes.id").
		Order(services.QuizOrderClause(sortBy, order)).
		Limit(pageSize).
		Offset(services.PageOffset(page, pageSize)).
		Scan(&items).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list quizzes"})
	}

	return c.JSON(items)
}

func GetQuizDetail(c *fiber.Ctx) error {
	quizID := c.Params("quizId")
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", services.DefaultPageSize)
	if pageSize < 1 {
		pageSize = services.DefaultPageSize
	}
	sortBy := c.Query("sort_by", "created_at")
	order := c.Query("order", "desc")

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	var totalQuestions int64
	if err := database.DB.Model(&models.Question{}).Where("quiz_id = ?", quiz.ID).Count(&totalQuestions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load questions"})
	}

	var questions []models.Question
	err := database.DB.
		Where("quiz_id = ?", quiz.ID).
		Order(services.QuestionOrderClause(sortBy, order)).
		Limit(pageSize).
		Offset(services.PageOffset(page, pageSize)).
		Preload("Choices").
		Find(&questions).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load questions"})
	}

	return c.JSON(fiber.Map{
		"id":              quiz.ID,
		"title":           quiz.Title,
		"description":     quiz.Description,
		"created_at":      quiz.CreatedAt,
		"updated_at":      quiz.UpdatedAt,
		"total_questions": totalQuestions,
		"questions":       questions,
	})
}

type UpdateQuizSettingsRequest struct {
	IsRandomQuestions *bool `json:"is_random_questions"`
	IsRandomChoices   *bool `json:"is_random_choices"`
	QuestionsPerPage  *int  `json:"questions_per_page"`
}

func UpdateQuizSettings(c *fiber.Ctx) error {
	quizID := c.Params("quizId")

	var req UpdateQuizSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	if req.IsRandomQuestions != nil {
		quiz.IsRandomQuestions = *req.IsRandomQuestions
	}
	if req.IsRandomChoices != nil {
		quiz.IsRandomChoices = *req.IsRandomChoices
	}
	if req.QuestionsPerPage != nil {
		if *req.QuestionsPerPage < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "questions_per_page must be at least 1"})
		}
		quiz.QuestionsPerPage = *req.QuestionsPerPage
	}

	if err := database.DB.Save(&quiz).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update quiz settings"})
	}

	return c.JSON(fiber.Map{
		"id":                  quiz.ID,
		"title":               quiz.Title,
		"is_random_questions": quiz.IsRandomQuestions,
		"is_random_choices":   quiz.IsRandomChoices,
		"questions_per_page":  quiz.QuestionsPerPage,
	})
}
