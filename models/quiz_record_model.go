package models

import (
	"time"

	"github.com/google/uuid"
)

// QuizRecord is one user's run through a quiz. A user may hold any number
// of records for the same quiz; each is scored independently.
type QuizRecord struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizID uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Score  float64   `gorm:"not null;default:0" json:"score"`

	Quiz    Quiz     `gorm:"foreignkey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	User    User     `gorm:"foreignkey:UserID" json:"-"`
	Answers []Answer `gorm:"foreignkey:QuizRecordID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
