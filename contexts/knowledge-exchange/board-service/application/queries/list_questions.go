package queries

import (
	"context"
	"log/slog"

	application "askboard/contexts/knowledge-exchange/board-service/application"
	"askboard/contexts/knowledge-exchange/board-service/domain/entities"
	domainerrors "askboard/contexts/knowledge-exchange/board-service/domain/errors"
	"askboard/contexts/knowledge-exchange/board-service/ports"
)

// ListQuestionsUseCase returns every question on the platform.
type ListQuestionsUseCase struct {
	Questions ports.QuestionRepository
	Logger    *slog.Logger
}

func (u ListQuestionsUseCase) Execute(ctx context.Context) ([]entities.Question, error) {
	items, err := u.Questions.ListQuestions(ctx)
	if err != nil {
		application.ResolveLogger(u.Logger).Error("question list failed",
			"event", "board_question_list_failed",
			"module", "knowledge-exchange/board-service",
			"layer", "application",
			"error", err.Error(),
		)
		return nil, err
	}
	return items, nil
}

// ListQuestionsByUserUseCase returns the questions posted by one user,
// failing with ErrUserNotFound for unknown user ids.
type ListQuestionsByUserUseCase struct {
	Questions ports.QuestionRepository
	Users     ports.UserDirectory
	Logger    *slog.Logger
}

func (u ListQuestionsByUserUseCase) Execute(ctx context.Context, userID string) ([]entities.Question, error) {
	exists, err := u.Users.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domainerrors.ErrUserNotFound
	}

	items, err := u.Questions.ListQuestionsByUser(ctx, userID)
	if err != nil {
		application.ResolveLogger(u.Logger).Error("question list by user failed",
			"event", "board_question_list_by_user_failed",
			"module", "knowledge-exchange/board-service",
			"layer", "application",
			"user_id", userID,
			"error", err.Error(),
		)
		return nil, err
	}
	return items, nil
}
