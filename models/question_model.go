package models

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizID       uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	QuestionText string    `gorm:"type:text;not null" json:"question_text"`

	Choices []Choice `gorm:"constraint:OnDelete:CASCADE" json:"choices,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
