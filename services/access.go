package services

import (
	"github.com/bsmlab/bsm_quiz/middleware"
	"github.com/bsmlab/bsm_quiz/models"
)

// CheckRecordAccess enforces attempt ownership: only the user who started
// a quiz record may read it or submit answers to it. The admin flag grants
// no access to someone else's record.
func CheckRecordAccess(record models.QuizRecord, user middleware.AuthUser) error {
	if record.UserID != user.UserID {
		return ErrForbidden
	}
	return nil
}
