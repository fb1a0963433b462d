package core

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"tapacademy.com/attendance/attendance/model"
	"tapacademy.com/attendance/security"
)

var (
	ErrDuplicateUser      = errors.New("a user with this email or employee id already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type UserStore interface {
	// CreateUser returns ErrDuplicateUser when email or employee id is taken.
	CreateUser(ctx context.Context, user *model.User) error
	// FindUserByEmail and FindUserByID return nil, nil when no user matches.
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByID(ctx context.Context, id string) (*model.User, error)
}

type Registration struct {
	Name       string  `json:"name" binding:"required,max=120"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=6"`
	EmployeeID string  `json:"employeeId" binding:"required,max=32"`
	Department *string `json:"department" binding:"omitempty,max=120"`
}

type Accounts struct {
	users UserStore
	newID func() string
}

func NewAccounts(users UserStore) *Accounts {
	return &Accounts{users: users, newID: uuid.NewString}
}

// Register creates an employee account. Managers are only created by seeding.
func (a *Accounts) Register(ctx context.Context, r Registration) (*model.User, error) {
	hash, err := security.HashPassword(r.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           a.newID(),
		Name:         strings.TrimSpace(r.Name),
		Email:        normalizeEmail(r.Email),
		PasswordHash: hash,
		EmployeeID:   strings.TrimSpace(r.EmployeeID),
		Department:   r.Department,
		Role:         model.RoleEmployee,
	}

	if err := a.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			return nil, ErrDuplicateUser
		}
		return nil, storeErr("create user", err)
	}
	return user, nil
}

func (a *Accounts) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := a.users.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, storeErr("find user", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := security.CheckPassword(user.PasswordHash, password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (a *Accounts) Profile(ctx context.Context, id string) (*model.User, error) {
	user, err := a.users.FindUserByID(ctx, id)
	if err != nil {
		return nil, storeErr("find user", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
