package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/bsmlab/bsm_quiz/database"
	"github.com/bsmlab/bsm_quiz/models"
	"github.com/bsmlab/bsm_quiz/notifications"
)

// RemindStaleAttempts nudges users who started a quiz a day ago but never
// submitted anything. The one-hour window keeps each record from being
// reminded more than once as the job repeats.
func RemindStaleAttempts() {
	log.Println("Running job: RemindStaleAttempts...")

	now := time.Now()
	upperBound := now.Add(-24 * time.Hour)
	lowerBound := now.Add(-25 * time.Hour)

	var staleRecords []models.QuizRecord

	err := database.DB.
		Preload("User").
		Preload("Quiz").
		Where("quiz_records.created_at BETWEEN ? AND ?", lowerBound, upperBound).
		Where("NOT EXISTS (SELECT 1 FROM answers WHERE answers.quiz_record_id = quiz_records.id)").
		Find(&staleRecords).Error

	if err != nil {
		log.Printf("Error checking for stale quiz records: %v", err)
		return
	}

	if len(staleRecords) == 0 {
		return
	}

	for _, record := range staleRecords {
		log.Printf("Sending reminder for quiz record ID: %s", record.ID)

		emailSubject := "Reminder: You Have an Unfinished Quiz"
		emailBody := fmt.Sprintf(
			"<h1>Quiz Reminder</h1><p>Hi there,</p><p>You started the quiz <b>%s</b> yesterday but haven't submitted any answers yet. Your attempt is still open.</p>",
			record.Quiz.Title,
		)

		go notifications.SendEmail(record.User.Username, record.User.Email, emailSubject, emailBody)
	}
}
