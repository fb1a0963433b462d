// Package export renders the attendance report, archives it and
// optionally mails it. Both the exportreport command and the scheduled
// lambda run through Exporter.
package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/attendance/report"
	"tapacademy.com/attendance/infrastructure/communication"
	"tapacademy.com/attendance/infrastructure/filesystem"
)

type Request struct {
	Format string            `json:"format"`
	Filter core.RecordFilter `json:"filter"`
}

type Result struct {
	Key  string `json:"key"`
	Rows int    `json:"rows"`
}

// Delivery addresses the report email. A zero Delivery sends nothing.
type Delivery struct {
	From string
	To   []string
}

func (d Delivery) enabled() bool {
	return d.From != "" && len(d.To) > 0
}

type Exporter struct {
	Manager  *core.Manager
	Archive  filesystem.Archive
	Notifier communication.Notifier
	Mailer   communication.Mailer
	Delivery Delivery
	Clock    func() time.Time
}

func (e *Exporter) now() time.Time {
	if e.Clock != nil {
		return e.Clock()
	}
	return time.Now()
}

func (e *Exporter) notifier() communication.Notifier {
	if e.Notifier == nil {
		return communication.Nop{}
	}
	return e.Notifier
}

// Run exports and reports the outcome to the notifier.
func (e *Exporter) Run(ctx context.Context, req Request) (Result, error) {
	res, err := e.export(ctx, req)
	if err != nil {
		_ = e.notifier().Error(fmt.Sprintf("attendance export failed: %v", err))
		return res, err
	}
	_ = e.notifier().Info(fmt.Sprintf("attendance report ready: %s (%d rows)", res.Key, res.Rows))
	return res, nil
}

func (e *Exporter) export(ctx context.Context, req Request) (Result, error) {
	format, err := report.ParseFormat(req.Format)
	if err != nil {
		return Result{}, err
	}

	records, err := e.Manager.All(ctx)
	if err != nil {
		return Result{}, err
	}
	rows := core.BuildReportRows(req.Filter.Apply(records))

	var buf bytes.Buffer
	if err := report.Write(&buf, format, rows); err != nil {
		return Result{}, err
	}
	content := buf.Bytes()

	day := e.Manager.Rules().Today(e.now())
	res := Result{Key: Key(day, format), Rows: len(rows)}
	if err := e.Archive.Save(ctx, res.Key, bytes.NewReader(content), format.ContentType()); err != nil {
		return res, fmt.Errorf("archive report: %w", err)
	}

	if e.Mailer != nil && e.Delivery.enabled() {
		err := e.Mailer.Send(ctx, communication.Email{
			From:    e.Delivery.From,
			To:      e.Delivery.To,
			Subject: fmt.Sprintf("Attendance report %s", day),
			Text:    fmt.Sprintf("The attendance report for %s has %d rows.", day, len(rows)),
			Attachments: []communication.Attachment{
				{Filename: format.FileName(), ContentType: format.ContentType(), Content: content},
			},
		})
		if err != nil {
			return res, fmt.Errorf("mail report: %w", err)
		}
	}
	return res, nil
}

// Key is the archive key of a report generated on day.
func Key(day string, format report.Format) string {
	return fmt.Sprintf("%s/%s", day, format.FileName())
}
