package handlers

import (
	"errors"
	"fmt"

	"github.com/bsmlab/bsm_quiz/database"
	"github.com/bsmlab/bsm_quiz/middleware"
	"github.com/bsmlab/bsm_quiz/models"
	"github.com/bsmlab/bsm_quiz/notifications"
	"github.com/bsmlab/bsm_quiz/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserQuizListItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Score       *float64  `json:"score"`
}

// ListUserQuizzes splits the catalog by whether the caller has attempted
// each quiz. Attempted quizzes carry the recorded score, one row per
// attempt.
func ListUserQuizzes(c *fiber.Ctx) error {
	user := middleware.Identity(c)
	completed := c.QueryBool("completed", false)

	if completed {
		var items []UserQuizListItem
		err := database.DB.Model(&models.QuizRecord{}).
			Select("quizzes.id, quizzes.title, quizzes.description, quiz_records.score").
			Joins("JOIN quizzes ON quizzes.id = quiz_records.quiz_id").
			Where("quiz_records.user_id = ?", user.UserID).
			Scan(&items).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list quizzes"})
		}
		return c.JSON(items)
	}

	attempted := database.DB.Model(&models.QuizRecord{}).
		Select("quiz_id").
		Where("user_id = ?", user.UserID)

	var quizzes []models.Quiz
	if err := database.DB.Where("id NOT IN (?)", attempted).Find(&quizzes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list quizzes"})
	}

	items := make([]UserQuizListItem, 0, len(quizzes))
	for _, quiz := range quizzes {
		items = append(items, UserQuizListItem{
			ID:          quiz.ID,
			Title:       quiz.Title,
			Description: quiz.Description,
		})
	}
	return c.JSON(items)
}

// GetQuizPage serves the test-taker view of one quiz page: the page window
// is cut from the stored question order, then questions and choices are
// shuffled per the quiz settings. Correct answers are never included.
func GetQuizPage(c *fiber.Ctx) error {
	quizID := c.Params("quizId")
	page := services.ClampPage(c.QueryInt("page", 1))

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	pageSize := quiz.QuestionsPerPage
	if pageSize < 1 {
		pageSize = services.DefaultPageSize
	}

	var totalQuestions int64
	if err := database.DB.Model(&models.Question{}).Where("quiz_id = ?", quiz.ID).Count(&totalQuestions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load questions"})
	}

	var questions []models.Question
	err := database.DB.
		Where("quiz_id = ?", quiz.ID).
		Order(services.QuestionWindowOrder).
		Limit(pageSize).
		Offset(services.PageOffset(page, pageSize)).
		Preload("Choices").
		Find(&questions).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load questions"})
	}

	return c.JSON(fiber.Map{
		"id":           quiz.ID,
		"title":        quiz.Title,
		"description":  quiz.Description,
		"questions":    services.BuildUserQuestions(questions, quiz.IsRandomQuestions, quiz.IsRandomChoices),
		"current_page": page,
		"total_pages":  services.TotalPages(totalQuestions, pageSize),
	})
}

type QuizRecordResponse struct {
	ID     uuid.UUID `json:"id"`
	QuizID uuid.UUID `json:"quiz_id"`
	UserID uuid.UUID `json:"user_id"`
	Score  float64   `json:"score"`
}

func recordResponse(record models.QuizRecord) QuizRecordResponse {
	return QuizRecordResponse{
		ID:     record.ID,
		QuizID: record.QuizID,
		UserID: record.UserID,
		Score:  record.Score,
	}
}

func StartQuizRecord(c *fiber.Ctx) error {
	user := middleware.Identity(c)
	quizID := c.Params("quizId")

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	record := models.QuizRecord{
		QuizID: quiz.ID,
		UserID: user.UserID,
		Score:  0,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start quiz"})
	}

	return c.Status(fiber.StatusCreated).JSON(recordResponse(record))
}

// recordMatchesQuiz reports whether the record belongs to the quiz named
// in the URL. The param is parsed rather than string-compared so a
// differently-cased UUID does not mask a match.
func recordMatchesQuiz(record models.QuizRecord, rawQuizID string) bool {
	quizID, err := uuid.Parse(rawQuizID)
	if err != nil {
		return false
	}
	return record.QuizID == quizID
}

type SubmitAnswersRequest struct {
	Answers []struct {
		QuestionID string `json:"question_id" validate:"required,uuid"`
		ChoiceID   string `json:"choice_id" validate:"required,uuid"`
	} `json:"answers" validate:"required,min=1,dive"`
}

func SubmitAnswers(c *fiber.Ctx) error {
	user := middleware.Identity(c)
	quizID := c.Params("quizId")
	recordID := c.Params("recordId")

	var req SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var record models.QuizRecord
	if err := database.DB.Preload("Quiz").Preload("User").First(&record, "id = ?", recordID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz record not found"})
	}
	if !recordMatchesQuiz(record, quizID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz record not found"})
	}
	if err := services.CheckRecordAccess(record, user); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Quiz record belongs to another user"})
	}

	pairs := make([]services.AnswerPair, 0, len(req.Answers))
	for _, answer := range req.Answers {
		questionID, _ := uuid.Parse(answer.QuestionID)
		choiceID, _ := uuid.Parse(answer.ChoiceID)
		pairs = append(pairs, services.AnswerPair{QuestionID: questionID, ChoiceID: choiceID})
	}

	if err := services.SubmitAnswers(database.DB, &record, pairs); err != nil {
		if errors.Is(err, services.ErrInvalidAnswer) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit answers"})
	}

	go notifications.SendEmail(
		record.User.Username,
		record.User.Email,
		"Your Quiz Score",
		fmt.Sprintf("<h1>Quiz Graded</h1><p>You scored <b>%.2f</b> on <b>%s</b>.</p>", record.Score, record.Quiz.Title),
	)

	return c.JSON(recordResponse(record))
}

func GetQuizRecord(c *fiber.Ctx) error {
	user := middleware.Identity(c)
	recordID := c.Params("recordId")

	var record models.QuizRecord
	if err := database.DB.First(&record, "id = ?", recordID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz record not found"})
	}
	if err := services.CheckRecordAccess(record, user); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Quiz record belongs to another user"})
	}

	return c.JSON(recordResponse(record))
}
