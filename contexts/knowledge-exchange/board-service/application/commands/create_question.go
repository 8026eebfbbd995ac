package commands

import (
	"context"
	"log/slog"

	application "askboard/contexts/knowledge-exchange/board-service/application"
	"askboard/contexts/knowledge-exchange/board-service/domain/entities"
	"askboard/contexts/knowledge-exchange/board-service/ports"
)

// CreateQuestionCommand carries the authorized actor and the new content.
type CreateQuestionCommand struct {
	UserID  string
	Content string
}

// CreateQuestionUseCase persists a new question with a generated uuid and
// timestamps. Authorization happened before this point; any authenticated
// user may create.
type CreateQuestionUseCase struct {
	Questions   ports.QuestionRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CreateQuestionUseCase) Execute(ctx context.Context, cmd CreateQuestionCommand) (entities.Question, error) {
	logger := application.ResolveLogger(u.Logger)

	questionID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Question{}, err
	}
	now := u.Clock.Now().UTC()

	question := entities.Question{
		QuestionID: questionID,
		UserID:     cmd.UserID,
		Content:    cmd.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.Questions.CreateQuestion(ctx, question); err != nil {
		logger.Error("question create failed",
			"event", "board_question_create_failed",
			"module", "knowledge-exchange/board-service",
			"layer", "application",
			"user_id", cmd.UserID,
			"error", err.Error(),
		)
		return entities.Question{}, err
	}

	logger.Info("question created",
		"event", "board_question_created",
		"module", "knowledge-exchange/board-service",
		"layer", "application",
		"question_id", question.QuestionID,
		"user_id", cmd.UserID,
	)
	return question, nil
}
