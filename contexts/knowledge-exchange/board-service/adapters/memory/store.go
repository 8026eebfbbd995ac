package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"askboard/contexts/knowledge-exchange/board-service/domain/entities"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing the board repositories plus
// the clock and id-generator ports. It is intended for tests and local
// development wiring.
type Store struct {
	mu        sync.RWMutex
	questions map[string]entities.Question
	answers   map[string]entities.Answer
	users     map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		questions: make(map[string]entities.Question),
		answers:   make(map[string]entities.Answer),
		users:     make(map[string]struct{}),
	}
}

// PutUser seeds a known platform account id.
func (s *Store) PutUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = struct{}{}
}

func (s *Store) UserExists(_ context.Context, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID]
	return ok, nil
}

func (s *Store) CreateQuestion(_ context.Context, question entities.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions[question.QuestionID] = question
	return nil
}

func (s *Store) UpdateQuestion(_ context.Context, question entities.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions[question.QuestionID] = question
	return nil
}

func (s *Store) DeleteQuestion(_ context.Context, questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.questions, questionID)
	return nil
}

func (s *Store) FindQuestion(_ context.Context, questionID string) (entities.Question, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	question, ok := s.questions[questionID]
	return question, ok, nil
}

func (s *Store) ListQuestions(_ context.Context) ([]entities.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Question, 0, len(s.questions))
	for _, question := range s.questions {
		items = append(items, question)
	}
	sortQuestions(items)
	return items, nil
}

func (s *Store) ListQuestionsByUser(_ context.Context, userID string) ([]entities.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Question, 0)
	for _, question := range s.questions {
		if question.UserID == userID {
			items = append(items, question)
		}
	}
	sortQuestions(items)
	return items, nil
}

func (s *Store) CreateAnswer(_ context.Context, answer entities.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[answer.AnswerID] = answer
	return nil
}

func (s *Store) UpdateAnswer(_ context.Context, answer entities.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[answer.AnswerID] = answer
	return nil
}

func (s *Store) DeleteAnswer(_ context.Context, answerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.answers, answerID)
	return nil
}

func (s *Store) FindAnswer(_ context.Context, answerID string) (entities.Answer, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	answer, ok := s.answers[answerID]
	return answer, ok, nil
}

func (s *Store) ListAnswersByQuestion(_ context.Context, questionID string) ([]entities.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Answer, 0)
	for _, answer := range s.answers {
		if answer.QuestionID == questionID {
			items = append(items, answer)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].AnswerID < items[j].AnswerID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func sortQuestions(items []entities.Question) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].QuestionID < items[j].QuestionID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}
