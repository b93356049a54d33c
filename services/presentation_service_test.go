package services

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/bsmlab/bsm_quiz/models"
	"github.com/google/uuid"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{2, 1, 2},
		{5, 2, 3},
		{3, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.pageSize); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}

func TestPageOffset(t *testing.T) {
	cases := []struct {
		page     int
		pageSize int
		want     int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 1, 2},
		{0, 10, 0},
		{-5, 10, 0},
	}
	for _, tc := range cases {
		if got := PageOffset(tc.page, tc.pageSize); got != tc.want {
			t.Errorf("PageOffset(%d, %d) = %d, want %d", tc.page, tc.pageSize, got, tc.want)
		}
	}
}

func TestOrderClauseAllowList(t *testing.T) {
	cases := []struct {
		clause string
		want   string
	}{
		{QuizOrderClause("title", "asc"), "quizzes.title asc, quizzes.id"},
		{QuizOrderClause("created_at", "desc"), "quizzes.created_at desc, quizzes.id"},
		{QuizOrderClause("password_hash", "desc"), "quizzes.created_at desc, quizzes.id"},
		{QuizOrderClause("", ""), "quizzes.created_at desc, quizzes.id"},
		{QuestionOrderClause("question_text", "ASC"), "questions.question_text asc, questions.id"},
		{QuestionOrderClause("id; DROP TABLE quizzes", "asc"), "questions.created_at asc, questions.id"},
	}
	for _, tc := range cases {
		if tc.clause != tc.want {
			t.Errorf("order clause = %q, want %q", tc.clause, tc.want)
		}
	}
}

func TestQuestionWindowOrderIsTotal(t *testing.T) {
	// Timestamps alone can collide within an insert batch; the window
	// order must carry a unique tie-breaker.
	if !strings.HasSuffix(QuestionWindowOrder, "id asc") {
		t.Errorf("QuestionWindowOrder = %q, want an id tie-breaker", QuestionWindowOrder)
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page int
		want int
	}{
		{1, 1},
		{7, 7},
		{0, 1},
		{-3, 1},
	}
	for _, tc := range cases {
		if got := ClampPage(tc.page); got != tc.want {
			t.Errorf("ClampPage(%d) = %d, want %d", tc.page, got, tc.want)
		}
	}
}

func pageOfQuestions(n, choicesPer int) []models.Question {
	questions := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		questionID := uuid.New()
		choices := make([]models.Choice, 0, choicesPer)
		for j := 0; j < choicesPer; j++ {
			choices = append(choices, models.Choice{
				ID:         uuid.New(),
				QuestionID: questionID,
				IsCorrect:  j == 0,
			})
		}
		questions = append(questions, models.Question{ID: questionID, Choices: choices})
	}
	return questions
}

func TestBuildUserQuestionsKeepsOrderWithoutRandomization(t *testing.T) {
	questions := pageOfQuestions(5, 3)

	out := buildUserQuestions(rand.New(rand.NewSource(1)), questions, false, false)
	if len(out) != len(questions) {
		t.Fatalf("questions = %d, want %d", len(out), len(questions))
	}
	for i := range out {
		if out[i].ID != questions[i].ID {
			t.Errorf("question %d reordered without randomization", i)
		}
		for j := range out[i].Choices {
			if out[i].Choices[j].ID != questions[i].Choices[j].ID {
				t.Errorf("choices of question %d reordered without randomization", i)
			}
		}
	}
}

func TestBuildUserQuestionsShuffleIsAPermutation(t *testing.T) {
	questions := pageOfQuestions(8, 4)

	out := buildUserQuestions(rand.New(rand.NewSource(42)), questions, true, true)
	if len(out) != len(questions) {
		t.Fatalf("questions = %d, want %d", len(out), len(questions))
	}

	byID := make(map[uuid.UUID]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	for _, rendered := range out {
		original, ok := byID[rendered.ID]
		if !ok {
			t.Fatalf("question %s not in input", rendered.ID)
		}
		delete(byID, rendered.ID)

		if len(rendered.Choices) != len(original.Choices) {
			t.Fatalf("question %s lost choices in shuffle", rendered.ID)
		}
		originalChoices := make(map[uuid.UUID]bool, len(original.Choices))
		for _, c := range original.Choices {
			originalChoices[c.ID] = true
		}
		for _, c := range rendered.Choices {
			if !originalChoices[c.ID] {
				t.Errorf("question %s gained choice %s from elsewhere", rendered.ID, c.ID)
			}
		}
	}
	if len(byID) != 0 {
		t.Errorf("%d questions dropped by shuffle", len(byID))
	}
}

func TestBuildUserQuestionsDoesNotMutateInput(t *testing.T) {
	questions := pageOfQuestions(6, 3)
	first := questions[0].ID

	buildUserQuestions(rand.New(rand.NewSource(7)), questions, true, true)
	if questions[0].ID != first {
		t.Errorf("input slice reordered by shuffle")
	}
}
