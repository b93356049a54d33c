package models

import (
	"time"

	"github.com/google/uuid"
)

type Quiz struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title             string    `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Description       string    `gorm:"type:text" json:"description"`
	IsRandomQuestions bool      `gorm:"not null;default:false" json:"is_random_questions"`
	IsRandomChoices   bool      `gorm:"not null;default:false" json:"is_random_choices"`
	QuestionsPerPage  int       `gorm:"not null;default:10" json:"questions_per_page"`

	Questions []Question `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
