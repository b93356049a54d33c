package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/bsmlab/bsm_quiz/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerPair is one submitted (question, choice) selection.
type AnswerPair struct {
	QuestionID uuid.UUID
	ChoiceID   uuid.UUID
}

// ChoiceFinder resolves a choice only when it belongs to the given
// question; otherwise it returns ErrNotFound.
type ChoiceFinder interface {
	FindChoice(questionID, choiceID uuid.UUID) (models.Choice, error)
}

type GradeOutcome struct {
	Score   float64
	Answers []models.Answer
}

// GradeSubmission validates every submitted pair against the quiz
// structure and computes the final score. Any pair referencing a choice
// outside its question fails the whole batch. Duplicate pairs for the same
// question are validated but only the first counts, so a batch can never
// score above 100.
func GradeSubmission(finder ChoiceFinder, recordID uuid.UUID, totalQuestions int64, pairs []AnswerPair) (GradeOutcome, error) {
	correct := 0
	answered := make(map[uuid.UUID]bool, len(pairs))
	answers := make([]models.Answer, 0, len(pairs))

	for _, pair := range pairs {
		choice, err := finder.FindChoice(pair.QuestionID, pair.ChoiceID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return GradeOutcome{}, fmt.Errorf("%w: choice %s does not belong to question %s",
					ErrInvalidAnswer, pair.ChoiceID, pair.QuestionID)
			}
			return GradeOutcome{}, err
		}

		if answered[pair.QuestionID] {
			continue
		}
		answered[pair.QuestionID] = true

		answers = append(answers, models.Answer{
			QuizRecordID: recordID,
			QuestionID:   pair.QuestionID,
			ChoiceID:     pair.ChoiceID,
		})
		if choice.IsCorrect {
			correct++
		}
	}

	var score float64
	if totalQuestions > 0 {
		score = Round2(float64(correct) / float64(totalQuestions) * 100)
	}
	return GradeOutcome{Score: score, Answers: answers}, nil
}

// Round2 rounds to two decimal places, the precision scores are stored at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type gormChoiceFinder struct {
	tx *gorm.DB
}

func (f gormChoiceFinder) FindChoice(questionID, choiceID uuid.UUID) (models.Choice, error) {
	var choice models.Choice
	err := f.tx.First(&choice, "id = ? AND question_id = ?", choiceID, questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Choice{}, ErrNotFound
	}
	if err != nil {
		return models.Choice{}, err
	}
	return choice, nil
}

// SubmitAnswers grades a batch against the quiz's current question set and
// commits the answers plus the new score in one transaction. A validation
// failure rolls everything back, leaving the record untouched.
func SubmitAnswers(db *gorm.DB, record *models.QuizRecord, pairs []AnswerPair) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var totalQuestions int64
		if err := tx.Model(&models.Question{}).Where("quiz_id = ?", record.QuizID).Count(&totalQuestions).Error; err != nil {
			return err
		}

		outcome, err := GradeSubmission(gormChoiceFinder{tx: tx}, record.ID, totalQuestions, pairs)
		if err != nil {
			return err
		}

		if len(outcome.Answers) > 0 {
			if err := tx.Create(&outcome.Answers).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.QuizRecord{}).Where("id = ?", record.ID).Update("score", outcome.Score).Error; err != nil {
			return err
		}
		record.Score = outcome.Score
		return nil
	})
}
