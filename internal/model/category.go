package model

import "time"

type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Type      string    `json:"type" gorm:"not null"` // label shown to players, e.g. "Science"
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
