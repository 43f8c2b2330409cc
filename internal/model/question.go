package model

import "time"

// Question rows are deleted permanently; the API exposes no update operation,
// so only the id and the four payload fields ever reach clients.
type Question struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Question   string    `json:"question" gorm:"type:text;not null"`
	Answer     string    `json:"answer" gorm:"type:text;not null"`
	Category   uint      `json:"category" gorm:"index"` // references Category.ID, not enforced
	Difficulty int       `json:"difficulty"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
