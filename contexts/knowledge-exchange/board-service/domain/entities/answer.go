package entities

import "time"

// Answer belongs to exactly one question and is owned by the posting user.
type Answer struct {
	AnswerID   string    `json:"answer_id"`
	QuestionID string    `json:"question_id"`
	UserID     string    `json:"user_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
