package domain

import "time"

// Todo represents a to-do item owned by a single user. DueDate is stored
// normalized to start-of-day UTC.
type Todo struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"dueDate" gorm:"index;not null"`
	Completed   bool      `json:"completed" gorm:"default:false"`
	UserID      string    `json:"userId" gorm:"index;not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
