package httpadapter

import (
	"context"
	"log/slog"

	application "askboard/contexts/knowledge-exchange/board-service/application"
	"askboard/contexts/knowledge-exchange/board-service/application/commands"
	"askboard/contexts/knowledge-exchange/board-service/application/queries"
	httptransport "askboard/contexts/knowledge-exchange/board-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries. The actor id it
// receives has already passed the authorization gate.
type Handler struct {
	CreateQuestion      commands.CreateQuestionUseCase
	EditQuestion        commands.EditQuestionUseCase
	DeleteQuestion      commands.DeleteQuestionUseCase
	CreateAnswer        commands.CreateAnswerUseCase
	EditAnswer          commands.EditAnswerUseCase
	DeleteAnswer        commands.DeleteAnswerUseCase
	ListQuestions       queries.ListQuestionsUseCase
	ListQuestionsByUser queries.ListQuestionsByUserUseCase
	ListAnswers         queries.ListAnswersUseCase
	GetQuestion         queries.GetQuestionUseCase
	GetAnswer           queries.GetAnswerUseCase
	CheckUser           queries.CheckUserUseCase
	Logger              *slog.Logger
}

func (h Handler) CreateQuestionHandler(
	ctx context.Context,
	userID string,
	request httptransport.QuestionRequest,
) (httptransport.QuestionResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http question create received",
		"event", "board_http_question_create_received",
		"module", "knowledge-exchange/board-service",
		"layer", "transport",
		"user_id", userID,
	)

	question, err := h.CreateQuestion.Execute(ctx, commands.CreateQuestionCommand{
		UserID:  userID,
		Content: request.Content,
	})
	if err != nil {
		return httptransport.QuestionResponse{}, err
	}
	return httptransport.QuestionResponse{
		ID:     question.QuestionID,
		Status: "QUESTION CREATED",
	}, nil
}

func (h Handler) EditQuestionHandler(
	ctx context.Context,
	questionID string,
	request httptransport.QuestionEditRequest,
) (httptransport.QuestionResponse, error) {
	question, err := h.EditQuestion.Execute(ctx, commands.EditQuestionCommand{
		QuestionID: questionID,
		Content:    request.Content,
	})
	if err != nil {
		return httptransport.QuestionResponse{}, err
	}
	return httptransport.QuestionResponse{
		ID:     question.QuestionID,
		Status: "QUESTION EDITED",
	}, nil
}

func (h Handler) DeleteQuestionHandler(ctx context.Context, questionID string) (httptransport.QuestionResponse, error) {
	question, err := h.DeleteQuestion.Execute(ctx, questionID)
	if err != nil {
		return httptransport.QuestionResponse{}, err
	}
	return httptransport.QuestionResponse{
		ID:     question.QuestionID,
		Status: "QUESTION DELETED",
	}, nil
}

func (h Handler) ListQuestionsHandler(ctx context.Context) ([]httptransport.QuestionDetailsResponse, error) {
	questions, err := h.ListQuestions.Execute(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.QuestionDetailsResponse, 0, len(questions))
	for _, question := range questions {
		items = append(items, httptransport.QuestionDetailsResponse{
			ID:      question.QuestionID,
			Content: question.Content,
		})
	}
	return items, nil
}

func (h Handler) ListQuestionsByUserHandler(ctx context.Context, userID string) ([]httptransport.QuestionDetailsResponse, error) {
	questions, err := h.ListQuestionsByUser.Execute(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.QuestionDetailsResponse, 0, len(questions))
	for _, question := range questions {
		items = append(items, httptransport.QuestionDetailsResponse{
			ID:      question.QuestionID,
			Content: question.Content,
		})
	}
	return items, nil
}

func (h Handler) CreateAnswerHandler(
	ctx context.Context,
	questionID string,
	userID string,
	request httptransport.AnswerRequest,
) (httptransport.AnswerResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http answer create received",
		"event", "board_http_answer_create_received",
		"module", "knowledge-exchange/board-service",
		"layer", "transport",
		"question_id", questionID,
		"user_id", userID,
	)

	answer, err := h.CreateAnswer.Execute(ctx, commands.CreateAnswerCommand{
		QuestionID: questionID,
		UserID:     userID,
		Content:    request.Answer,
	})
	if err != nil {
		return httptransport.AnswerResponse{}, err
	}
	return httptransport.AnswerResponse{
		ID:     answer.AnswerID,
		Status: "ANSWER CREATED",
	}, nil
}

func (h Handler) EditAnswerHandler(
	ctx context.Context,
	answerID string,
	request httptransport.AnswerEditRequest,
) (httptransport.AnswerResponse, error) {
	answer, err := h.EditAnswer.Execute(ctx, commands.EditAnswerCommand{
		AnswerID: answerID,
		Content:  request.Content,
	})
	if err != nil {
		return httptransport.AnswerResponse{}, err
	}
	return httptransport.AnswerResponse{
		ID:     answer.AnswerID,
		Status: "ANSWER EDITED",
	}, nil
}

func (h Handler) DeleteAnswerHandler(ctx context.Context, answerID string) (httptransport.AnswerDeleteResponse, error) {
	answer, err := h.DeleteAnswer.Execute(ctx, answerID)
	if err != nil {
		return httptransport.AnswerDeleteResponse{}, err
	}
	return httptransport.AnswerDeleteResponse{
		ID:     answer.AnswerID,
		Status: "ANSWER DELETED",
	}, nil
}

func (h Handler) ListAnswersHandler(ctx context.Context, questionID string) ([]httptransport.AnswerDetailsResponse, error) {
	question, answers, err := h.ListAnswers.Execute(ctx, questionID)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.AnswerDetailsResponse, 0, len(answers))
	for _, answer := range answers {
		items = append(items, httptransport.AnswerDetailsResponse{
			ID:              answer.AnswerID,
			QuestionContent: question.Content,
			AnswerContent:   answer.Content,
		})
	}
	return items, nil
}

// QuestionSubjectHandler resolves a question's identity/ownership view for
// the authorization gate. found=false means no such question.
func (h Handler) QuestionSubjectHandler(ctx context.Context, questionID string) (httptransport.SubjectDTO, bool, error) {
	question, found, err := h.GetQuestion.Execute(ctx, questionID)
	if err != nil || !found {
		return httptransport.SubjectDTO{}, false, err
	}
	return httptransport.SubjectDTO{
		ID:      question.QuestionID,
		OwnerID: question.UserID,
	}, true, nil
}

// AnswerSubjectHandler resolves an answer's identity/ownership view for
// the authorization gate.
func (h Handler) AnswerSubjectHandler(ctx context.Context, answerID string) (httptransport.SubjectDTO, bool, error) {
	answer, found, err := h.GetAnswer.Execute(ctx, answerID)
	if err != nil || !found {
		return httptransport.SubjectDTO{}, false, err
	}
	return httptransport.SubjectDTO{
		ID:         answer.AnswerID,
		OwnerID:    answer.UserID,
		QuestionID: answer.QuestionID,
	}, true, nil
}

// UserSubjectHandler reports whether a platform account exists.
func (h Handler) UserSubjectHandler(ctx context.Context, userID string) (bool, error) {
	return h.CheckUser.Execute(ctx, userID)
}
