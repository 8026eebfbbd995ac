package commands

import (
	"context"
	"log/slog"

	application "askboard/contexts/knowledge-exchange/board-service/application"
	"askboard/contexts/knowledge-exchange/board-service/domain/entities"
	domainerrors "askboard/contexts/knowledge-exchange/board-service/domain/errors"
	"askboard/contexts/knowledge-exchange/board-service/ports"
)

// CreateAnswerCommand carries the authorized actor, the parent question,
// and the new content.
type CreateAnswerCommand struct {
	QuestionID string
	UserID     string
	Content    string
}

// CreateAnswerUseCase persists a new answer under an existing question.
// The parent is re-validated at mutation time; it may have been deleted
// after the gate's subject check.
type CreateAnswerUseCase struct {
	Answers     ports.AnswerRepository
	Questions   ports.QuestionRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CreateAnswerUseCase) Execute(ctx context.Context, cmd CreateAnswerCommand) (entities.Answer, error) {
	logger := application.ResolveLogger(u.Logger)

	_, found, err := u.Questions.FindQuestion(ctx, cmd.QuestionID)
	if err != nil {
		return entities.Answer{}, err
	}
	if !found {
		return entities.Answer{}, domainerrors.ErrQuestionNotFound
	}

	answerID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Answer{}, err
	}
	now := u.Clock.Now().UTC()

	answer := entities.Answer{
		AnswerID:   answerID,
		QuestionID: cmd.QuestionID,
		UserID:     cmd.UserID,
		Content:    cmd.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.Answers.CreateAnswer(ctx, answer); err != nil {
		logger.Error("answer create failed",
			"event", "board_answer_create_failed",
			"module", "knowledge-exchange/board-service",
			"layer", "application",
			"question_id", cmd.QuestionID,
			"user_id", cmd.UserID,
			"error", err.Error(),
		)
		return entities.Answer{}, err
	}

	logger.Info("answer created",
		"event", "board_answer_created",
		"module", "knowledge-exchange/board-service",
		"layer", "application",
		"answer_id", answer.AnswerID,
		"question_id", cmd.QuestionID,
		"user_id", cmd.UserID,
	)
	return answer, nil
}
