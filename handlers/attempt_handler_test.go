package handlers

import (
	"strings"
	"testing"

	"github.com/bsmlab/bsm_quiz/models"
	"github.com/google/uuid"
)

func TestRecordMatchesQuiz(t *testing.T) {
	quizID := uuid.New()
	record := models.QuizRecord{ID: uuid.New(), QuizID: quizID}

	if !recordMatchesQuiz(record, quizID.String()) {
		t.Errorf("matching quiz id rejected")
	}
	if !recordMatchesQuiz(record, strings.ToUpper(quizID.String())) {
		t.Errorf("uppercase quiz id rejected despite matching")
	}
	if recordMatchesQuiz(record, uuid.New().String()) {
		t.Errorf("foreign quiz id accepted")
	}
	if recordMatchesQuiz(record, "not-a-uuid") {
		t.Errorf("malformed quiz id accepted")
	}
}
