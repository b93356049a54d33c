package services

import (
	"errors"
	"testing"

	"github.com/bsmlab/bsm_quiz/middleware"
	"github.com/bsmlab/bsm_quiz/models"
	"github.com/google/uuid"
)

func TestCheckRecordAccess(t *testing.T) {
	ownerID := uuid.New()
	record := models.QuizRecord{ID: uuid.New(), QuizID: uuid.New(), UserID: ownerID}

	if err := CheckRecordAccess(record, middleware.AuthUser{UserID: ownerID}); err != nil {
		t.Errorf("owner denied access: %v", err)
	}

	if err := CheckRecordAccess(record, middleware.AuthUser{UserID: uuid.New()}); !errors.Is(err, ErrForbidden) {
		t.Errorf("non-owner err = %v, want ErrForbidden", err)
	}

	// The admin flag must not bypass ownership on someone else's record.
	foreignAdmin := middleware.AuthUser{UserID: uuid.New(), IsAdmin: true}
	if err := CheckRecordAccess(record, foreignAdmin); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign admin err = %v, want ErrForbidden", err)
	}

	if err := CheckRecordAccess(record, middleware.AuthUser{UserID: ownerID, IsAdmin: true}); err != nil {
		t.Errorf("owning admin denied access: %v", err)
	}
}
