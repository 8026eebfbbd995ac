package ports

import (
	"context"
	"time"

	"askboard/contexts/knowledge-exchange/board-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for new content rows.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// QuestionRepository is the persistence boundary for questions.
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, question entities.Question) error
	UpdateQuestion(ctx context.Context, question entities.Question) error
	DeleteQuestion(ctx context.Context, questionID string) error
	FindQuestion(ctx context.Context, questionID string) (entities.Question, bool, error)
	ListQuestions(ctx context.Context) ([]entities.Question, error)
	ListQuestionsByUser(ctx context.Context, userID string) ([]entities.Question, error)
}

// AnswerRepository is the persistence boundary for answers.
type AnswerRepository interface {
	CreateAnswer(ctx context.Context, answer entities.Answer) error
	UpdateAnswer(ctx context.Context, answer entities.Answer) error
	DeleteAnswer(ctx context.Context, answerID string) error
	FindAnswer(ctx context.Context, answerID string) (entities.Answer, bool, error)
	ListAnswersByQuestion(ctx context.Context, questionID string) ([]entities.Answer, error)
}

// UserDirectory answers existence checks against platform accounts. The
// board never reads credentials or roles; those belong to identity-access.
type UserDirectory interface {
	UserExists(ctx context.Context, userID string) (bool, error)
}
