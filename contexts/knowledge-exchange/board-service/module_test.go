package boardservice

import (
	"context"
	"errors"
	"testing"

	domainerrors "askboard/contexts/knowledge-exchange/board-service/domain/errors"
	httptransport "askboard/contexts/knowledge-exchange/board-service/transport/http"
)

func TestQuestionLifecycle(t *testing.T) {
	module := NewInMemoryModule(nil)
	module.Store.PutUser("user-1")

	created, err := module.Handler.CreateQuestionHandler(
		context.Background(),
		"user-1",
		httptransport.QuestionRequest{Content: "What is a bounded context?"},
	)
	if err != nil {
		t.Fatalf("create question failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated question id")
	}
	if created.Status != "QUESTION CREATED" {
		t.Fatalf("unexpected status %q", created.Status)
	}

	edited, err := module.Handler.EditQuestionHandler(
		context.Background(),
		created.ID,
		httptransport.QuestionEditRequest{Content: "What is a bounded context, exactly?"},
	)
	if err != nil {
		t.Fatalf("edit question failed: %v", err)
	}
	if edited.Status != "QUESTION EDITED" {
		t.Fatalf("unexpected status %q", edited.Status)
	}

	listed, err := module.Handler.ListQuestionsHandler(context.Background())
	if err != nil {
		t.Fatalf("list questions failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Content != "What is a bounded context, exactly?" {
		t.Fatalf("unexpected question list: %+v", listed)
	}

	deleted, err := module.Handler.DeleteQuestionHandler(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("delete question failed: %v", err)
	}
	if deleted.Status != "QUESTION DELETED" {
		t.Fatalf("unexpected status %q", deleted.Status)
	}

	listed, err = module.Handler.ListQuestionsHandler(context.Background())
	if err != nil {
		t.Fatalf("list questions after delete failed: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty list after delete, got %+v", listed)
	}
}

func TestEditMissingQuestionFails(t *testing.T) {
	module := NewInMemoryModule(nil)

	_, err := module.Handler.EditQuestionHandler(
		context.Background(),
		"missing",
		httptransport.QuestionEditRequest{Content: "irrelevant"},
	)
	if !errors.Is(err, domainerrors.ErrQuestionNotFound) {
		t.Fatalf("expected question-not-found, got %v", err)
	}
}

func TestListQuestionsByUserChecksUserExists(t *testing.T) {
	module := NewInMemoryModule(nil)
	module.Store.PutUser("user-1")

	if _, err := module.Handler.CreateQuestionHandler(
		context.Background(),
		"user-1",
		httptransport.QuestionRequest{Content: "first"},
	); err != nil {
		t.Fatalf("create question failed: %v", err)
	}

	items, err := module.Handler.ListQuestionsByUserHandler(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one question for user-1, got %d", len(items))
	}

	_, err = module.Handler.ListQuestionsByUserHandler(context.Background(), "ghost")
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected user-not-found for unknown user, got %v", err)
	}
}

func TestAnswerLifecycle(t *testing.T) {
	module := NewInMemoryModule(nil)
	module.Store.PutUser("user-1")
	module.Store.PutUser("user-2")

	question, err := module.Handler.CreateQuestionHandler(
		context.Background(),
		"user-1",
		httptransport.QuestionRequest{Content: "How do goroutines leak?"},
	)
	if err != nil {
		t.Fatalf("create question failed: %v", err)
	}

	created, err := module.Handler.CreateAnswerHandler(
		context.Background(),
		question.ID,
		"user-2",
		httptransport.AnswerRequest{Answer: "Blocked channel receives, mostly."},
	)
	if err != nil {
		t.Fatalf("create answer failed: %v", err)
	}
	if created.Status != "ANSWER CREATED" {
		t.Fatalf("unexpected status %q", created.Status)
	}

	edited, err := module.Handler.EditAnswerHandler(
		context.Background(),
		created.ID,
		httptransport.AnswerEditRequest{Content: "Blocked channel operations, mostly."},
	)
	if err != nil {
		t.Fatalf("edit answer failed: %v", err)
	}
	if edited.Status != "ANSWER EDITED" {
		t.Fatalf("unexpected status %q", edited.Status)
	}

	answers, err := module.Handler.ListAnswersHandler(context.Background(), question.ID)
	if err != nil {
		t.Fatalf("list answers failed: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("expected one answer, got %d", len(answers))
	}
	if answers[0].QuestionContent != "How do goroutines leak?" {
		t.Fatalf("expected question content echoed, got %q", answers[0].QuestionContent)
	}
	if answers[0].AnswerContent != "Blocked channel operations, mostly." {
		t.Fatalf("unexpected answer content %q", answers[0].AnswerContent)
	}

	deleted, err := module.Handler.DeleteAnswerHandler(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("delete answer failed: %v", err)
	}
	if deleted.Status != "ANSWER DELETED" {
		t.Fatalf("unexpected status %q", deleted.Status)
	}
}

func TestCreateAnswerRevalidatesParentQuestion(t *testing.T) {
	module := NewInMemoryModule(nil)
	module.Store.PutUser("user-1")

	_, err := module.Handler.CreateAnswerHandler(
		context.Background(),
		"missing-question",
		"user-1",
		httptransport.AnswerRequest{Answer: "orphan"},
	)
	if !errors.Is(err, domainerrors.ErrQuestionNotFound) {
		t.Fatalf("expected question-not-found, got %v", err)
	}
}

func TestListAnswersForMissingQuestionFails(t *testing.T) {
	module := NewInMemoryModule(nil)

	_, err := module.Handler.ListAnswersHandler(context.Background(), "missing")
	if !errors.Is(err, domainerrors.ErrQuestionNotFound) {
		t.Fatalf("expected question-not-found, got %v", err)
	}
}

func TestSubjectHandlersExposeOwnership(t *testing.T) {
	module := NewInMemoryModule(nil)
	module.Store.PutUser("user-1")

	question, err := module.Handler.CreateQuestionHandler(
		context.Background(),
		"user-1",
		httptransport.QuestionRequest{Content: "subject"},
	)
	if err != nil {
		t.Fatalf("create question failed: %v", err)
	}
	answer, err := module.Handler.CreateAnswerHandler(
		context.Background(),
		question.ID,
		"user-1",
		httptransport.AnswerRequest{Answer: "subject answer"},
	)
	if err != nil {
		t.Fatalf("create answer failed: %v", err)
	}

	qSubject, found, err := module.Handler.QuestionSubjectHandler(context.Background(), question.ID)
	if err != nil || !found {
		t.Fatalf("question subject lookup failed: found=%v err=%v", found, err)
	}
	if qSubject.OwnerID != "user-1" {
		t.Fatalf("expected owner user-1, got %s", qSubject.OwnerID)
	}

	aSubject, found, err := module.Handler.AnswerSubjectHandler(context.Background(), answer.ID)
	if err != nil || !found {
		t.Fatalf("answer subject lookup failed: found=%v err=%v", found, err)
	}
	if aSubject.QuestionID != question.ID {
		t.Fatalf("expected parent %s, got %s", question.ID, aSubject.QuestionID)
	}

	if _, found, err = module.Handler.QuestionSubjectHandler(context.Background(), "missing"); err != nil || found {
		t.Fatalf("missing question subject should be found=false err=nil, got found=%v err=%v", found, err)
	}

	exists, err := module.Handler.UserSubjectHandler(context.Background(), "user-1")
	if err != nil || !exists {
		t.Fatalf("seeded user should exist: exists=%v err=%v", exists, err)
	}
	exists, err = module.Handler.UserSubjectHandler(context.Background(), "ghost")
	if err != nil || exists {
		t.Fatalf("unknown user should not exist: exists=%v err=%v", exists, err)
	}
}
