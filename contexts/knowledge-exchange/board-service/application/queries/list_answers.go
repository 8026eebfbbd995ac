package queries

import (
	"context"
	"log/slog"

	application "askboard/contexts/knowledge-exchange/board-service/application"
	"askboard/contexts/knowledge-exchange/board-service/domain/entities"
	domainerrors "askboard/contexts/knowledge-exchange/board-service/domain/errors"
	"askboard/contexts/knowledge-exchange/board-service/ports"
)

// ListAnswersUseCase returns a question's answers together with the
// question itself; responses echo the question content next to each
// answer.
type ListAnswersUseCase struct {
	Answers   ports.AnswerRepository
	Questions ports.QuestionRepository
	Logger    *slog.Logger
}

func (u ListAnswersUseCase) Execute(ctx context.Context, questionID string) (entities.Question, []entities.Answer, error) {
	question, found, err := u.Questions.FindQuestion(ctx, questionID)
	if err != nil {
		return entities.Question{}, nil, err
	}
	if !found {
		return entities.Question{}, nil, domainerrors.ErrQuestionNotFound
	}

	items, err := u.Answers.ListAnswersByQuestion(ctx, questionID)
	if err != nil {
		application.ResolveLogger(u.Logger).Error("answer list failed",
			"event", "board_answer_list_failed",
			"module", "knowledge-exchange/board-service",
			"layer", "application",
			"question_id", questionID,
			"error", err.Error(),
		)
		return entities.Question{}, nil, err
	}
	return question, items, nil
}
