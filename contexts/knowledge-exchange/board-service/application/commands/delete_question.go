package commands

import (
	"context"
	"log/slog"

	application "askboard/contexts/knowledge-exchange/board-service/application"
	"askboard/contexts/knowledge-exchange/board-service/domain/entities"
	domainerrors "askboard/contexts/knowledge-exchange/board-service/domain/errors"
	"askboard/contexts/knowledge-exchange/board-service/ports"
)

// DeleteQuestionUseCase removes a question after an Allow decision.
type DeleteQuestionUseCase struct {
	Questions ports.QuestionRepository
	Logger    *slog.Logger
}

func (u DeleteQuestionUseCase) Execute(ctx context.Context, questionID string) (entities.Question, error) {
	logger := application.ResolveLogger(u.Logger)

	question, found, err := u.Questions.FindQuestion(ctx, questionID)
	if err != nil {
		return entities.Question{}, err
	}
	if !found {
		return entities.Question{}, domainerrors.ErrQuestionNotFound
	}

	if err := u.Questions.DeleteQuestion(ctx, questionID); err != nil {
		logger.Error("question delete failed",
			"event", "board_question_delete_failed",
			"module", "knowledge-exchange/board-service",
			"layer", "application",
			"question_id", questionID,
			"error", err.Error(),
		)
		return entities.Question{}, err
	}

	logger.Info("question deleted",
		"event", "board_question_deleted",
		"module", "knowledge-exchange/board-service",
		"layer", "application",
		"question_id", questionID,
	)
	return question, nil
}
