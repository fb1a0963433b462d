package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/attendance/model"
)

// UserStore is the user directory and account store.
type UserStore struct {
	ex Executor
}

func NewUserStore(ex Executor) *UserStore {
	return &UserStore{ex: ex}
}

func (s *UserStore) CreateUser(ctx context.Context, user *model.User) error {
	err := s.ex.Exec(ctx, func(db *gorm.DB) error {
		return db.Create(user).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return core.ErrDuplicateUser
	}
	return err
}

func (s *UserStore) findOne(ctx context.Context, query string, arg string) (*model.User, error) {
	var user model.User
	err := s.ex.Exec(ctx, func(db *gorm.DB) error {
		return db.Where(query, arg).First(&user).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findOne(ctx, "email = ?", email)
}

func (s *UserStore) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	return s.findOne(ctx, "id = ?", id)
}

func usersByID(db *gorm.DB, ids []string) *gorm.DB {
	return db.Select("id", "name", "email", "employee_id", "department", "role").Where("id IN ?", ids)
}

// Resolve implements core.Directory.
func (s *UserStore) Resolve(ctx context.Context, ids []string) (map[string]model.UserView, error) {
	out := make(map[string]model.UserView, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var users []model.User
	if err := s.ex.Exec(ctx, func(db *gorm.DB) error {
		return usersByID(db, ids).Find(&users).Error
	}); err != nil {
		return nil, err
	}

	for i := range users {
		out[users[i].ID] = users[i].View()
	}
	return out, nil
}

func upsertUsers(db *gorm.DB, users []model.User) *gorm.DB {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "password_hash", "employee_id", "department", "role"}),
	}).Create(&users)
}

// Upsert inserts or refreshes users by id, used for seeding.
func (s *UserStore) Upsert(ctx context.Context, users []model.User) error {
	if len(users) == 0 {
		return nil
	}
	return s.ex.Exec(ctx, func(db *gorm.DB) error {
		return upsertUsers(db, users).Error
	})
}
