package models

import (
	"time"

	"github.com/google/uuid"
)

type Choice struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	ChoiceText string    `gorm:"type:text;not null" json:"choice_text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
