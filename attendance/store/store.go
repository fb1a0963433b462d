package store

import (
	"context"

	"gorm.io/gorm"
	"tapacademy.com/attendance/attendance/model"
)

// Executor runs fn with a gorm session. core.DatabaseManager implements it.
type Executor interface {
	Exec(ctx context.Context, fn func(db *gorm.DB) error) error
}

// Models lists every table owned by the attendance service, in creation order.
var Models = []interface{}{
	&model.User{},
	&model.AttendanceRecord{},
}

func Migrate(ctx context.Context, ex Executor) error {
	return ex.Exec(ctx, func(db *gorm.DB) error {
		return db.AutoMigrate(Models...)
	})
}

// Direct runs every call on one gorm handle, used by the command line tools.
type Direct struct {
	DB *gorm.DB
}

func (d Direct) Exec(ctx context.Context, fn func(db *gorm.DB) error) error {
	return fn(d.DB.WithContext(ctx))
}
