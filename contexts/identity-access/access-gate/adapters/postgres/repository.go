package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"askboard/contexts/identity-access/access-gate/domain/entities"

	"gorm.io/gorm"
)

// Repository reads session and account rows via gorm. The gate never
// writes either table; login/logout own the mutations.
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

func (r *Repository) FindByToken(ctx context.Context, token string) (entities.Session, bool, error) {
	var row userAuthModel
	err := r.db.WithContext(ctx).
		Where("access_token = ?", token).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Session{}, false, nil
		}
		return entities.Session{}, false, err
	}

	var user userModel
	err = r.db.WithContext(ctx).
		Where("uuid = ?", row.UserID).
		First(&user).
		Error
	if err != nil {
		// A session row without its account row is a store integrity
		// fault, not an authorization outcome.
		return entities.Session{}, false, err
	}

	return entities.Session{
		Token: row.AccessToken,
		User: entities.UserAccount{
			UserID: user.UUID,
			Role:   entities.Role(user.Role),
		},
		IssuedAt:     row.LoginAt.UTC(),
		TerminatedAt: utcOrNil(row.LogoutAt),
	}, true, nil
}

type userAuthModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	UserID      string     `gorm:"column:user_id"`
	AccessToken string     `gorm:"column:access_token"`
	LoginAt     time.Time  `gorm:"column:login_at"`
	LogoutAt    *time.Time `gorm:"column:logout_at"`
}

func (userAuthModel) TableName() string {
	return "user_auth"
}

type userModel struct {
	UUID string `gorm:"column:uuid;primaryKey"`
	Role string `gorm:"column:role"`
}

func (userModel) TableName() string {
	return "users"
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
