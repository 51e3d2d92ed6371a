package models

import "time"

// Prediction is one classified review kept in the history table.
type Prediction struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Review     string    `json:"review"`
	Label      string    `json:"label" gorm:"index"`
	Class      string    `json:"class"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}
