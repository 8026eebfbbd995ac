package commands

import (
	"context"
	"log/slog"

	application "askboard/contexts/knowledge-exchange/board-service/application"
	"askboard/contexts/knowledge-exchange/board-service/domain/entities"
	domainerrors "askboard/contexts/knowledge-exchange/board-service/domain/errors"
	"askboard/contexts/knowledge-exchange/board-service/ports"
)

// EditAnswerCommand replaces an answer's content.
type EditAnswerCommand struct {
	AnswerID string
	Content  string
}

// EditAnswerUseCase rewrites content and refreshes the answer date.
type EditAnswerUseCase struct {
	Answers ports.AnswerRepository
	Clock   ports.Clock
	Logger  *slog.Logger
}

func (u EditAnswerUseCase) Execute(ctx context.Context, cmd EditAnswerCommand) (entities.Answer, error) {
	logger := application.ResolveLogger(u.Logger)

	answer, found, err := u.Answers.FindAnswer(ctx, cmd.AnswerID)
	if err != nil {
		return entities.Answer{}, err
	}
	if !found {
		return entities.Answer{}, domainerrors.ErrAnswerNotFound
	}

	answer.Content = cmd.Content
	answer.UpdatedAt = u.Clock.Now().UTC()
	if err := u.Answers.UpdateAnswer(ctx, answer); err != nil {
		logger.Error("answer edit failed",
			"event", "board_answer_edit_failed",
			"module", "knowledge-exchange/board-service",
			"layer", "application",
			"answer_id", cmd.AnswerID,
			"error", err.Error(),
		)
		return entities.Answer{}, err
	}

	logger.Info("answer edited",
		"event", "board_answer_edited",
		"module", "knowledge-exchange/board-service",
		"layer", "application",
		"answer_id", cmd.AnswerID,
	)
	return answer, nil
}
