package core

import (
	"tapacademy.com/attendance/attendance/model"
	"tapacademy.com/attendance/utils"
)

// RecordFilter selects joined records. Empty fields match everything.
// Name, EmployeeID and Department are case-insensitive substring matches;
// Date and Status are exact. A record without a directory entry has empty
// directory fields, so it only passes when those filters are empty.
type RecordFilter struct {
	Name       string `form:"name" json:"name,omitempty"`
	EmployeeID string `form:"employeeId" json:"employeeId,omitempty"`
	Department string `form:"department" json:"department,omitempty"`
	Date       string `form:"date" json:"date,omitempty"`
	Status     string `form:"status" json:"status,omitempty"`
}

func (f RecordFilter) IsEmpty() bool {
	return f == RecordFilter{}
}

func (f RecordFilter) Match(r JoinedRecord) bool {
	var name, employeeID string
	if r.User != nil {
		name = r.User.Name
		employeeID = r.User.EmployeeID
	}

	if f.Name != "" && (r.User == nil || !utils.ContainsFold(name, f.Name)) {
		return false
	}
	if f.EmployeeID != "" && (r.User == nil || !utils.ContainsFold(employeeID, f.EmployeeID)) {
		return false
	}
	if !utils.ContainsFold(r.User.DepartmentName(), f.Department) {
		return false
	}
	if f.Date != "" && r.Date != f.Date {
		return false
	}
	if f.Status != "" && r.Status != model.Status(f.Status) {
		return false
	}
	return true
}

func (f RecordFilter) Apply(records []JoinedRecord) []JoinedRecord {
	if f.IsEmpty() {
		return records
	}
	return utils.Filter(records, f.Match)
}
