package models

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizRecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_record_id"`
	QuestionID   uuid.UUID `gorm:"type:uuid;not null" json:"question_id"`
	ChoiceID     uuid.UUID `gorm:"type:uuid;not null" json:"choice_id"`

	Question Question `gorm:"foreignkey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	Choice   Choice   `gorm:"foreignkey:ChoiceID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
