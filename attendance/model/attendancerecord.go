package model

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusHalfDay Status = "Half Day"
	// StatusAbsent is never written by check-in/check-out.
	StatusAbsent Status = "Absent"
)

var Statuses = []Status{StatusPresent, StatusLate, StatusHalfDay, StatusAbsent}

// ParseStatus accepts the display form of a status, e.g. "Half Day".
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// AttendanceRecord is one user's attendance for one calendar day.
type AttendanceRecord struct {
	ID           string     `gorm:"primaryKey;column:id;type:char(36)" json:"id"`
	UserID       string     `gorm:"column:user_id;type:char(36);not null;uniqueIndex:idx_attendance_user_date,priority:1" json:"userId"`
	Date         string     `gorm:"column:date;type:char(10);not null;uniqueIndex:idx_attendance_user_date,priority:2;index:idx_attendance_date" json:"date"`
	CheckInTime  time.Time  `gorm:"column:check_in_time;not null" json:"checkInTime"`
	CheckOutTime *time.Time `gorm:"column:check_out_time" json:"checkOutTime"`
	Status       Status     `gorm:"column:status;type:varchar(16);not null" json:"status"`
	TotalHours   float64    `gorm:"column:total_hours;type:decimal(6,2);not null;default:0" json:"totalHours"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

func (r *AttendanceRecord) CheckedOut() bool {
	return r.CheckOutTime != nil
}
