package commands

import (
	"context"
	"log/slog"

	application "askboard/contexts/knowledge-exchange/board-service/application"
	"askboard/contexts/knowledge-exchange/board-service/domain/entities"
	domainerrors "askboard/contexts/knowledge-exchange/board-service/domain/errors"
	"askboard/contexts/knowledge-exchange/board-service/ports"
)

// EditQuestionCommand replaces a question's content.
type EditQuestionCommand struct {
	QuestionID string
	Content    string
}

// EditQuestionUseCase rewrites content and refreshes the question date.
// Ownership was already enforced by the gate; the question may still have
// vanished between decision and mutation.
type EditQuestionUseCase struct {
	Questions ports.QuestionRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (u EditQuestionUseCase) Execute(ctx context.Context, cmd EditQuestionCommand) (entities.Question, error) {
	logger := application.ResolveLogger(u.Logger)

	question, found, err := u.Questions.FindQuestion(ctx, cmd.QuestionID)
	if err != nil {
		return entities.Question{}, err
	}
	if !found {
		return entities.Question{}, domainerrors.ErrQuestionNotFound
	}

	question.Content = cmd.Content
	question.UpdatedAt = u.Clock.Now().UTC()
	if err := u.Questions.UpdateQuestion(ctx, question); err != nil {
		logger.Error("question edit failed",
			"event", "board_question_edit_failed",
			"module", "knowledge-exchange/board-service",
			"layer", "application",
			"question_id", cmd.QuestionID,
			"error", err.Error(),
		)
		return entities.Question{}, err
	}

	logger.Info("question edited",
		"event", "board_question_edited",
		"module", "knowledge-exchange/board-service",
		"layer", "application",
		"question_id", cmd.QuestionID,
	)
	return question, nil
}
