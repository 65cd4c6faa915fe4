package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is a generated multiple-choice item. Questions are embedded in the
// owning QuizSession as JSONB rather than normalized into their own table;
// they are immutable once generated.
type Question struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`      // exactly 4
	CorrectIndex int      `json:"correctIndex"` // 0..3
}

// QuizSession is one completed quiz attempt. Created once at submission time
// and never mutated afterwards.
type QuizSession struct {
	ID        uint                          `gorm:"primarykey" json:"id"`
	UserID    uint                          `json:"user_id" gorm:"not null;index"`
	User      User                          `json:"-" gorm:"foreignKey:UserID"`
	Topic     string                        `json:"topic" gorm:"not null"`
	Questions datatypes.JSONSlice[Question] `json:"questions" gorm:"type:jsonb;not null"`
	Answers   datatypes.JSONSlice[int]      `json:"answers" gorm:"type:jsonb;not null"`
	Score     int                           `json:"score" gorm:"not null"`
	CreatedAt time.Time                     `json:"created_at"`
	UpdatedAt time.Time                     `json:"updated_at"`
	DeletedAt gorm.DeletedAt                `gorm:"index" json:"-"`
}
