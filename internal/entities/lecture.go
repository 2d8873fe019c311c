package entities

import (
	"time"

	"github.com/mrlokans/lexicard/internal/markdown"
)

// Lecture is a generated reading text. Clients never mutate lectures.
type Lecture struct {
	ID              string    `gorm:"primaryKey;size:64" json:"_id"`
	DurationMinutes int       `json:"time"`
	Level           string    `gorm:"size:4" json:"level"` // A1..C2
	WritingStyle    string    `gorm:"size:50" json:"typeWrite"`
	Language        string    `gorm:"size:5" json:"language"`
	ImageURL        string    `gorm:"size:2048" json:"img,omitempty"`
	MarkdownContent string    `gorm:"type:text" json:"content"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Lecture) TableName() string {
	return "lectures"
}

// Title is the first level-1 heading of the lecture body.
func (l Lecture) Title() string {
	return markdown.Title(l.MarkdownContent)
}
