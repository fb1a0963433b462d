package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/utils"
)

const SheetName = "Attendance"

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat defaults to CSV when s is empty.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported report format %q", s)
}

func (f Format) FileName() string {
	return "attendance_report." + string(f)
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

func Write(w io.Writer, f Format, rows []core.ReportRow) error {
	if f == FormatXLSX {
		return WriteXLSX(w, rows)
	}
	return WriteCSV(w, rows)
}

func WriteCSV(w io.Writer, rows []core.ReportRow) error {
	return utils.WriteCSV(w, core.ReportHeader, utils.Map(rows, core.ReportRow.Strings))
}

// WriteXLSX writes a single "Attendance" sheet with hours as numbers.
func WriteXLSX(w io.Writer, rows []core.ReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}

	header := utils.Map(core.ReportHeader, func(h string) interface{} { return h })
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{r.Name, r.EmployeeID, r.Date, r.Status, r.TotalHours}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "B", "E", 14); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}
