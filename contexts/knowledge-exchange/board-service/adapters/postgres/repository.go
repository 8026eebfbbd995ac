package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"askboard/contexts/knowledge-exchange/board-service/domain/entities"
	domainerrors "askboard/contexts/knowledge-exchange/board-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repository adapts the board ports onto PostgreSQL via gorm.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) UserExists(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&boardUserModel{}).
		Where("uuid = ?", userID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreateQuestion(ctx context.Context, question entities.Question) error {
	row := questionModelFromEntity(question)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return classifyWriteError(err)
	}
	return nil
}

func (r *Repository) UpdateQuestion(ctx context.Context, question entities.Question) error {
	result := r.db.WithContext(ctx).
		Model(&questionModel{}).
		Where("uuid = ?", question.QuestionID).
		Updates(map[string]any{
			"content": question.Content,
			"date":    question.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		return classifyWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrQuestionNotFound
	}
	return nil
}

func (r *Repository) DeleteQuestion(ctx context.Context, questionID string) error {
	result := r.db.WithContext(ctx).
		Where("uuid = ?", questionID).
		Delete(&questionModel{})
	if result.Error != nil {
		return classifyWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrQuestionNotFound
	}
	return nil
}

func (r *Repository) FindQuestion(ctx context.Context, questionID string) (entities.Question, bool, error) {
	var row questionModel
	err := r.db.WithContext(ctx).
		Where("uuid = ?", questionID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Question{}, false, nil
		}
		return entities.Question{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListQuestions(ctx context.Context) ([]entities.Question, error) {
	var rows []questionModel
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Question, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListQuestionsByUser(ctx context.Context, userID string) ([]entities.Question, error) {
	var rows []questionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Question, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CreateAnswer(ctx context.Context, answer entities.Answer) error {
	row := answerModelFromEntity(answer)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return classifyWriteError(err)
	}
	return nil
}

func (r *Repository) UpdateAnswer(ctx context.Context, answer entities.Answer) error {
	result := r.db.WithContext(ctx).
		Model(&answerModel{}).
		Where("uuid = ?", answer.AnswerID).
		Updates(map[string]any{
			"ans":  answer.Content,
			"date": answer.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		return classifyWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAnswerNotFound
	}
	return nil
}

func (r *Repository) DeleteAnswer(ctx context.Context, answerID string) error {
	result := r.db.WithContext(ctx).
		Where("uuid = ?", answerID).
		Delete(&answerModel{})
	if result.Error != nil {
		return classifyWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAnswerNotFound
	}
	return nil
}

func (r *Repository) FindAnswer(ctx context.Context, answerID string) (entities.Answer, bool, error) {
	var row answerModel
	err := r.db.WithContext(ctx).
		Where("uuid = ?", answerID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Answer{}, false, nil
		}
		return entities.Answer{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListAnswersByQuestion(ctx context.Context, questionID string) ([]entities.Answer, error) {
	var rows []answerModel
	if err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("date ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Answer, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// SystemClock implements ports.Clock using wall-clock UTC time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type questionModel struct {
	UUID      string    `gorm:"column:uuid;primaryKey"`
	UserID    string    `gorm:"column:user_id"`
	Content   string    `gorm:"column:content"`
	CreatedAt time.Time `gorm:"column:created_at"`
	Date      time.Time `gorm:"column:date"`
}

func (questionModel) TableName() string {
	return "question"
}

func questionModelFromEntity(question entities.Question) questionModel {
	return questionModel{
		UUID:      question.QuestionID,
		UserID:    question.UserID,
		Content:   question.Content,
		CreatedAt: question.CreatedAt.UTC(),
		Date:      question.UpdatedAt.UTC(),
	}
}

func (m questionModel) toEntity() entities.Question {
	return entities.Question{
		QuestionID: m.UUID,
		UserID:     m.UserID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.Date.UTC(),
	}
}

type answerModel struct {
	UUID       string    `gorm:"column:uuid;primaryKey"`
	QuestionID string    `gorm:"column:question_id"`
	UserID     string    `gorm:"column:user_id"`
	Answer     string    `gorm:"column:ans"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	Date       time.Time `gorm:"column:date"`
}

func (answerModel) TableName() string {
	return "answer"
}

func answerModelFromEntity(answer entities.Answer) answerModel {
	return answerModel{
		UUID:       answer.AnswerID,
		QuestionID: answer.QuestionID,
		UserID:     answer.UserID,
		Answer:     answer.Content,
		CreatedAt:  answer.CreatedAt.UTC(),
		Date:       answer.UpdatedAt.UTC(),
	}
}

func (m answerModel) toEntity() entities.Answer {
	return entities.Answer{
		AnswerID:   m.UUID,
		QuestionID: m.QuestionID,
		UserID:     m.UserID,
		Content:    m.Answer,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.Date.UTC(),
	}
}

type boardUserModel struct {
	UUID string `gorm:"column:uuid;primaryKey"`
}

func (boardUserModel) TableName() string {
	return "users"
}

// classifyWriteError folds postgres integrity-class failures (SQLSTATE
// 23xxx) into the constraint-violation domain error; everything else
// propagates as an unexpected store fault.
func classifyWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) == 5 && pgErr.Code[:2] == "23" {
		return domainerrors.ErrConstraintViolation
	}
	return err
}
