package commands

import (
	"context"
	"log/slog"

	application "askboard/contexts/knowledge-exchange/board-service/application"
	"askboard/contexts/knowledge-exchange/board-service/domain/entities"
	domainerrors "askboard/contexts/knowledge-exchange/board-service/domain/errors"
	"askboard/contexts/knowledge-exchange/board-service/ports"
)

// DeleteAnswerUseCase removes an answer after an Allow decision.
type DeleteAnswerUseCase struct {
	Answers ports.AnswerRepository
	Logger  *slog.Logger
}

func (u DeleteAnswerUseCase) Execute(ctx context.Context, answerID string) (entities.Answer, error) {
	logger := application.ResolveLogger(u.Logger)

	answer, found, err := u.Answers.FindAnswer(ctx, answerID)
	if err != nil {
		return entities.Answer{}, err
	}
	if !found {
		return entities.Answer{}, domainerrors.ErrAnswerNotFound
	}

	if err := u.Answers.DeleteAnswer(ctx, answerID); err != nil {
		logger.Error("answer delete failed",
			"event", "board_answer_delete_failed",
			"module", "knowledge-exchange/board-service",
			"layer", "application",
			"answer_id", answerID,
			"error", err.Error(),
		)
		return entities.Answer{}, err
	}

	logger.Info("answer deleted",
		"event", "board_answer_deleted",
		"module", "knowledge-exchange/board-service",
		"layer", "application",
		"answer_id", answerID,
	)
	return answer, nil
}
