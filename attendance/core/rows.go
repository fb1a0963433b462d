package core

import (
	"tapacademy.com/attendance/utils"
)

var ReportHeader = []string{"Name", "Employee ID", "Date", "Status", "Total Hours"}

// ReportRow is one line of the attendance export.
type ReportRow struct {
	Name       string
	EmployeeID string
	Date       string
	Status     string
	TotalHours float64
}

func (r ReportRow) Strings() []string {
	return []string{r.Name, r.EmployeeID, r.Date, r.Status, utils.FormatHours(r.TotalHours)}
}

// BuildReportRows renders records whose owner is missing as "Unknown" / "N/A".
func BuildReportRows(records []JoinedRecord) []ReportRow {
	return utils.Map(records, func(r JoinedRecord) ReportRow {
		row := ReportRow{
			Name:       "Unknown",
			EmployeeID: "N/A",
			Date:       r.Date,
			Status:     string(r.Status),
			TotalHours: r.TotalHours,
		}
		if r.User != nil {
			row.Name = r.User.Name
			row.EmployeeID = r.User.EmployeeID
		}
		return row
	})
}
