package entities

import "time"

// Question is a top-level content item owned by the posting user.
type Question struct {
	QuestionID string    `json:"question_id"`
	UserID     string    `json:"user_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
