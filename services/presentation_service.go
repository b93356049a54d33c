package services

import (
	"math/rand"
	"strings"

	"github.com/bsmlab/bsm_quiz/models"
	"github.com/bsmlab/bsm_quiz/utils"
	"github.com/google/uuid"
)

const DefaultPageSize = 10

// Sortable columns for the admin views. Anything outside these maps falls
// back to creation time; callers never reach arbitrary column names.
var quizSortColumns = map[string]string{
	"created_at": "quizzes.created_at",
	"updated_at": "quizzes.updated_at",
	"title":      "quizzes.title",
}

var questionSortColumns = map[string]string{
	"created_at":    "questions.created_at",
	"updated_at":    "questions.updated_at",
	"question_text": "questions.question_text",
}

// QuestionWindowOrder fixes the stored question order pages are cut from.
// The id tie-breaker keeps batch-inserted questions, which share a
// creation timestamp, from drifting between pages across requests.
const QuestionWindowOrder = "created_at asc, id asc"

func QuizOrderClause(sortBy, order string) string {
	return orderClause(quizSortColumns, sortBy, order, "quizzes.id")
}

func QuestionOrderClause(sortBy, order string) string {
	return orderClause(questionSortColumns, sortBy, order, "questions.id")
}

func orderClause(columns map[string]string, sortBy, order, tieBreaker string) string {
	column, ok := columns[sortBy]
	if !ok {
		column = columns["created_at"]
	}
	direction := " desc"
	if strings.EqualFold(order, "asc") {
		direction = " asc"
	}
	return column + direction + ", " + tieBreaker
}

// TotalPages returns ceil(totalQuestions / pageSize), 0 for an empty quiz.
func TotalPages(totalQuestions int64, pageSize int) int {
	if pageSize < 1 || totalQuestions <= 0 {
		return 0
	}
	return int((totalQuestions + int64(pageSize) - 1) / int64(pageSize))
}

// ClampPage normalizes a 1-based page index; anything below 1 means the
// first page. Callers echo the clamped value back as current_page so the
// label always matches the content served.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// PageOffset converts a 1-based page index into a row offset. Pages past
// the end simply produce an offset beyond the data; the query then returns
// no rows, which is the intended "empty page" behavior.
func PageOffset(page, pageSize int) int {
	return (ClampPage(page) - 1) * pageSize
}

// UserChoice deliberately has no correctness field; the test-taker view is
// built exclusively from this type.
type UserChoice struct {
	ID         uuid.UUID `json:"id"`
	ChoiceText string    `json:"choice_text"`
}

type UserQuestion struct {
	ID           uuid.UUID    `json:"id"`
	QuestionText string       `json:"question_text"`
	Choices      []UserChoice `json:"choices"`
}

// BuildUserQuestions renders an already-windowed slice of questions for a
// test taker. The window itself is always taken from the stored question
// order, so shuffling here never moves a question onto another page.
func BuildUserQuestions(questions []models.Question, randomQuestions, randomChoices bool) []UserQuestion {
	return buildUserQuestions(utils.NewSeededRand(), questions, randomQuestions, randomChoices)
}

func buildUserQuestions(rng *rand.Rand, questions []models.Question, randomQuestions, randomChoices bool) []UserQuestion {
	page := make([]models.Question, len(questions))
	copy(page, questions)
	if randomQuestions {
		utils.Shuffle(rng, page)
	}

	out := make([]UserQuestion, 0, len(page))
	for _, question := range page {
		choices := make([]UserChoice, 0, len(question.Choices))
		for _, choice := range question.Choices {
			choices = append(choices, UserChoice{ID: choice.ID, ChoiceText: choice.ChoiceText})
		}
		if randomChoices {
			utils.Shuffle(rng, choices)
		}
		out = append(out, UserQuestion{
			ID:           question.ID,
			QuestionText: question.QuestionText,
			Choices:      choices,
		})
	}
	return out
}
