package queries

import (
	"context"

	"askboard/contexts/knowledge-exchange/board-service/domain/entities"
	"askboard/contexts/knowledge-exchange/board-service/ports"
)

// The lookup use-cases back the authorization gate's subject resolution:
// they report existence and ownership without touching content.

type GetQuestionUseCase struct {
	Questions ports.QuestionRepository
}

func (u GetQuestionUseCase) Execute(ctx context.Context, questionID string) (entities.Question, bool, error) {
	return u.Questions.FindQuestion(ctx, questionID)
}

type GetAnswerUseCase struct {
	Answers ports.AnswerRepository
}

func (u GetAnswerUseCase) Execute(ctx context.Context, answerID string) (entities.Answer, bool, error) {
	return u.Answers.FindAnswer(ctx, answerID)
}

type CheckUserUseCase struct {
	Users ports.UserDirectory
}

func (u CheckUserUseCase) Execute(ctx context.Context, userID string) (bool, error) {
	return u.Users.UserExists(ctx, userID)
}
