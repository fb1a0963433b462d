package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/attendance/model"
)

type AttendanceStore struct {
	ex Executor
}

func NewAttendanceStore(ex Executor) *AttendanceStore {
	return &AttendanceStore{ex: ex}
}

func byUserAndDate(db *gorm.DB, userID, date string) *gorm.DB {
	return db.Where("user_id = ? AND date = ?", userID, date)
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC").Order("check_in_time DESC")
}

// completeCheckOut only matches a record that has not been checked out.
func completeCheckOut(db *gorm.DB, rec *model.AttendanceRecord) *gorm.DB {
	return db.Model(&model.AttendanceRecord{}).
		Where("id = ? AND check_out_time IS NULL", rec.ID).
		Updates(map[string]interface{}{
			"check_out_time": rec.CheckOutTime,
			"total_hours":    rec.TotalHours,
			"status":         rec.Status,
		})
}

func (s *AttendanceStore) FindByUserAndDate(ctx context.Context, userID, date string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := s.ex.Exec(ctx, func(db *gorm.DB) error {
		return byUserAndDate(db, userID, date).First(&rec).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *AttendanceStore) Create(ctx context.Context, rec *model.AttendanceRecord) error {
	err := s.ex.Exec(ctx, func(db *gorm.DB) error {
		return db.Create(rec).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return core.ErrAlreadyCheckedIn
	}
	return err
}

func (s *AttendanceStore) CompleteCheckOut(ctx context.Context, rec *model.AttendanceRecord) error {
	return s.ex.Exec(ctx, func(db *gorm.DB) error {
		res := completeCheckOut(db, rec)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return core.ErrAlreadyCheckedOut
		}
		return nil
	})
}

func (s *AttendanceStore) ListByUser(ctx context.Context, userID string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := s.ex.Exec(ctx, func(db *gorm.DB) error {
		return newestFirst(db.Where("user_id = ?", userID)).Find(&records).Error
	})
	return records, err
}

func (s *AttendanceStore) ListAll(ctx context.Context) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := s.ex.Exec(ctx, func(db *gorm.DB) error {
		return newestFirst(db).Find(&records).Error
	})
	return records, err
}
